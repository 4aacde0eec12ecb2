package mongo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"krishimitra-backend/internal/model"
)

// Soil health card column names as ingested from the government export.
const (
	fieldSurveyNo   = "SURVEY_NO"
	fieldAadhaarNo  = "AADHAR_NO"
	fieldPH         = "PH"
	fieldNitrogen   = "N_(KG/HA)"
	fieldPhosphorus = "P_(KG/HA)"
	fieldPotassium  = "K_(KG/HA)"
	fieldSoilType   = "SOIL_TYPE"
)

// ListSoilRecords fetches all soil health card records for a farmer
func (r *implRepository) ListSoilRecords(ctx context.Context, aadhaarNo string) ([]model.SoilRecord, error) {
	cur, err := r.db.Collection(soilCollection).Find(ctx, bson.M{fieldAadhaarNo: aadhaarNo})
	if err != nil {
		return nil, fmt.Errorf("mongo: list soil records: %w", err)
	}
	defer cur.Close(ctx)

	var records []model.SoilRecord
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo: decode soil record: %w", err)
		}
		records = append(records, normalizeSoilDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo: iterate soil records: %w", err)
	}
	return records, nil
}

// normalizeSoilDoc coerces a raw card document into the domain record.
// The ingested export mixes numeric readings stored as numbers and as
// strings, so all coercion happens here at the boundary.
func normalizeSoilDoc(doc bson.M) model.SoilRecord {
	return model.SoilRecord{
		SurveyNo:   stringField(doc, fieldSurveyNo),
		PH:         numericField(doc, fieldPH),
		Nitrogen:   numericField(doc, fieldNitrogen),
		Phosphorus: numericField(doc, fieldPhosphorus),
		Potassium:  numericField(doc, fieldPotassium),
		SoilType:   strings.ToLower(stringField(doc, fieldSoilType)),
	}
}

func stringField(doc bson.M, key string) string {
	switch v := doc[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func numericField(doc bson.M, key string) *float64 {
	switch v := doc[key].(type) {
	case float64:
		return &v
	case int32:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return &f
		}
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}
