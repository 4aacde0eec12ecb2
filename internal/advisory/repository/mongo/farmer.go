package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"krishimitra-backend/internal/advisory/repository"
	"krishimitra-backend/internal/model"
)

// farmerDoc mirrors the aadhar collection schema.
type farmerDoc struct {
	AadhaarNo string   `bson:"aadhar_no"`
	Name      string   `bson:"name"`
	District  string   `bson:"district"`
	State     string   `bson:"state"`
	Lat       *float64 `bson:"lat,omitempty"`
	Lon       *float64 `bson:"lon,omitempty"`
}

// GetFarmer fetches a farmer profile by Aadhaar number
func (r *implRepository) GetFarmer(ctx context.Context, aadhaarNo string) (model.FarmerProfile, error) {
	var doc farmerDoc
	err := r.db.Collection(farmerCollection).
		FindOne(ctx, bson.M{"aadhar_no": aadhaarNo}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.FarmerProfile{}, repository.ErrNotFound
		}
		return model.FarmerProfile{}, fmt.Errorf("mongo: get farmer: %w", err)
	}

	return model.FarmerProfile{
		AadhaarNo: doc.AadhaarNo,
		Name:      doc.Name,
		District:  doc.District,
		State:     doc.State,
		Lat:       doc.Lat,
		Lon:       doc.Lon,
	}, nil
}
