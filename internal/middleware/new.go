package middleware

import (
	"krishimitra-backend/pkg/log"
)

type Middleware struct {
	l           log.Logger
	environment string
}

func New(l log.Logger, environment string) Middleware {
	return Middleware{
		l:           l,
		environment: environment,
	}
}
