package cropindex

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"krishimitra-backend/internal/model"
)

// DatasetRow is one labeled training example: the soil and context
// features a crop was grown under, plus the crop itself.
type DatasetRow struct {
	PH          *float64
	Nitrogen    *float64
	Phosphorus  *float64
	Potassium   *float64
	SoilType    string
	Season      string
	CropType    string
	WaterSource string
	Crop        string
}

// Fit derives transform parameters from the dataset: per-numeric median
// imputation with standardization, and one-hot category sets in sorted
// order with handle_unknown="ignore". Feature layout matches what Encode
// consumes.
func Fit(rows []DatasetRow) (TransformParams, error) {
	if len(rows) == 0 {
		return TransformParams{}, fmt.Errorf("empty dataset")
	}

	numeric := []struct {
		name string
		get  func(DatasetRow) *float64
	}{
		{"ph", func(r DatasetRow) *float64 { return r.PH }},
		{"n", func(r DatasetRow) *float64 { return r.Nitrogen }},
		{"p", func(r DatasetRow) *float64 { return r.Phosphorus }},
		{"k", func(r DatasetRow) *float64 { return r.Potassium }},
	}
	var params TransformParams
	for _, nf := range numeric {
		var vals []float64
		for _, r := range rows {
			if p := nf.get(r); p != nil {
				vals = append(vals, *p)
			}
		}
		if len(vals) == 0 {
			return TransformParams{}, fmt.Errorf("numeric feature %s has no observed values", nf.name)
		}
		med := median(vals)
		// Impute before computing scale so missing values do not skew it.
		filled := make([]float64, 0, len(rows))
		for _, r := range rows {
			if p := nf.get(r); p != nil {
				filled = append(filled, *p)
			} else {
				filled = append(filled, med)
			}
		}
		mean, scale := meanStd(filled)
		params.Numeric = append(params.Numeric, NumericFeature{
			Name:   nf.name,
			Impute: med,
			Mean:   mean,
			Scale:  scale,
		})
	}

	categorical := []struct {
		name string
		get  func(DatasetRow) string
	}{
		{"soil_type", func(r DatasetRow) string { return r.SoilType }},
		{"season", func(r DatasetRow) string { return r.Season }},
		{"crop_type", func(r DatasetRow) string { return r.CropType }},
		{"water_source", func(r DatasetRow) string { return r.WaterSource }},
	}
	for _, cf := range categorical {
		set := map[string]struct{}{}
		for _, r := range rows {
			if v := cf.get(r); v != "" {
				set[v] = struct{}{}
			}
		}
		cats := make([]string, 0, len(set))
		for c := range set {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		params.Categorical = append(params.Categorical, CategoricalFeature{
			Name:          cf.name,
			Categories:    cats,
			HandleUnknown: HandleUnknownIgnore,
		})
	}

	return params, nil
}

// BuildArtifact writes a complete index artifact to the SQLite database at
// path inside a single transaction: either the full bundle lands or
// nothing does, so a loader never observes a half-built index.
func BuildArtifact(ctx context.Context, path string, params TransformParams, entries []model.CropCatalogEntry, vectors [][]float32) error {
	if len(entries) != len(vectors) {
		return fmt.Errorf("%d catalog entries vs %d vectors", len(entries), len(vectors))
	}
	dim := params.Dim()
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ddl := []string{
		`DROP TABLE IF EXISTS artifact_meta`,
		`DROP TABLE IF EXISTS transform_params`,
		`DROP TABLE IF EXISTS crop_catalog`,
		`DROP TABLE IF EXISTS crop_embeddings`,
		`CREATE TABLE artifact_meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
		`CREATE TABLE transform_params (id INTEGER PRIMARY KEY, params TEXT NOT NULL)`,
		`CREATE TABLE crop_catalog (row_index INTEGER PRIMARY KEY, crop TEXT NOT NULL, season TEXT NOT NULL, crop_type TEXT NOT NULL)`,
		`CREATE TABLE crop_embeddings (row_index INTEGER PRIMARY KEY, embedding BLOB NOT NULL)`,
	}
	for _, stmt := range ddl {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ddl: %w", err)
		}
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode transform: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO transform_params (id, params) VALUES (0, ?)`, string(raw)); err != nil {
		return err
	}

	meta := map[string]string{
		metaKeyVectorSize: fmt.Sprintf("%d", dim),
		metaKeyBuiltAt:    time.Now().UTC().Format(time.RFC3339),
		metaKeyVersion:    artifactVersion,
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO artifact_meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return err
		}
	}

	for i, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO crop_catalog (row_index, crop, season, crop_type) VALUES (?, ?, ?, ?)`,
			i, e.Name, e.Season, e.CropType); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO crop_embeddings (row_index, embedding) VALUES (?, ?)`,
			i, encodeVector(vectors[i])); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func median(vals []float64) float64 {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func meanStd(vals []float64) (mean, std float64) {
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	for _, v := range vals {
		d := v - mean
		std += d * d
	}
	std = math.Sqrt(std / float64(len(vals)))
	if std == 0 {
		std = 1
	}
	return mean, std
}
