package repository

import (
	"context"

	"krishimitra-backend/internal/model"
)

// FarmerRepository is the interface for farmer and soil data access.
type FarmerRepository interface {
	// GetFarmer fetches a farmer profile by Aadhaar number
	GetFarmer(ctx context.Context, aadhaarNo string) (model.FarmerProfile, error)

	// ListSoilRecords fetches all soil health card records for a farmer
	ListSoilRecords(ctx context.Context, aadhaarNo string) ([]model.SoilRecord, error)
}
