package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	advisoryHTTP "krishimitra-backend/internal/advisory/delivery/http"
	"krishimitra-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	advisoryHandler advisoryHTTP.Handler

	// indexReady gates the readiness probe on the crop index being loaded.
	indexReady func() bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AdvisoryHandler advisoryHTTP.Handler

	IndexReady func() bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		advisoryHandler: cfg.AdvisoryHandler,
		indexReady:      cfg.IndexReady,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.advisoryHandler == nil {
		return errors.New("advisory handler is required")
	}
	return nil
}
