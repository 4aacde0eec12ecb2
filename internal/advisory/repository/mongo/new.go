package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	pkgLog "krishimitra-backend/pkg/log"
)

// Collection names match the ingested soil health card dataset.
const (
	farmerCollection = "aadhar"
	soilCollection   = "shc_norm"
)

type implRepository struct {
	l  pkgLog.Logger
	db *mongo.Database
}

// New creates a new Mongo-backed farmer repository.
func New(l pkgLog.Logger, db *mongo.Database) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
