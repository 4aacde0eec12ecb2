package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"krishimitra-backend/internal/cropindex"
	"krishimitra-backend/internal/model"
	"krishimitra-backend/pkg/log"
)

// Builds the crop index artifact from a labeled CSV dataset. Expected
// columns (header names, case-insensitive): crop, season, crop_type,
// soil_type, water_source, ph, n, p, k. Empty numeric cells are treated
// as missing and imputed during fitting.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/build-crop-index/main.go <dataset.csv> <output.db>")
		fmt.Println("Example: go run scripts/build-crop-index/main.go data/crop_dataset.csv data/crop_index.db")
		os.Exit(1)
	}
	datasetPath := os.Args[1]
	outputPath := os.Args[2]

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	rows, err := readDataset(datasetPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read dataset: %v", err)
	}
	logger.Infof(ctx, "Loaded %d rows from %s", len(rows), datasetPath)

	params, err := cropindex.Fit(rows)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fit transform: %v", err)
	}
	logger.Infof(ctx, "Fitted transform: vector width %d", params.Dim())

	encoder := cropindex.NewEncoder(params)
	entries := make([]model.CropCatalogEntry, 0, len(rows))
	vectors := make([][]float32, 0, len(rows))
	for i, r := range rows {
		rec := model.SoilRecord{
			PH:         r.PH,
			Nitrogen:   r.Nitrogen,
			Phosphorus: r.Phosphorus,
			Potassium:  r.Potassium,
			SoilType:   r.SoilType,
		}
		qc := model.QueryContext{
			Season:          model.Season(r.Season),
			CropTypeHint:    r.CropType,
			WaterSourceHint: r.WaterSource,
		}
		vec, err := encoder.Encode(rec, qc)
		if err != nil {
			logger.Fatalf(ctx, "Failed to encode row %d (%s): %v", i, r.Crop, err)
		}
		entries = append(entries, model.CropCatalogEntry{
			Name:     r.Crop,
			Season:   model.Season(r.Season),
			CropType: r.CropType,
			RowIndex: i,
		})
		vectors = append(vectors, vec)
	}

	if err := cropindex.BuildArtifact(ctx, outputPath, params, entries, vectors); err != nil {
		logger.Fatalf(ctx, "Failed to build artifact: %v", err)
	}

	logger.Infof(ctx, "Artifact written to %s: %d crops indexed", outputPath, len(entries))
}

func readDataset(path string) ([]cropindex.DatasetRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"crop", "season"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", required)
		}
	}

	cell := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	numeric := func(record []string, name string) (*float64, error) {
		s := cell(record, name)
		if s == "" || strings.EqualFold(s, "na") {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		return &v, nil
	}

	var rows []cropindex.DatasetRow
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		row := cropindex.DatasetRow{
			Crop:        cell(record, "crop"),
			Season:      strings.ToLower(cell(record, "season")),
			CropType:    strings.ToLower(cell(record, "crop_type")),
			SoilType:    strings.ToLower(cell(record, "soil_type")),
			WaterSource: strings.ToLower(cell(record, "water_source")),
		}
		if row.Crop == "" {
			return nil, fmt.Errorf("line %d: empty crop name", line)
		}
		for _, nf := range []struct {
			name string
			dst  **float64
		}{
			{"ph", &row.PH},
			{"n", &row.Nitrogen},
			{"p", &row.Phosphorus},
			{"k", &row.Potassium},
		} {
			v, err := numeric(record, nf.name)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			*nf.dst = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}
	return rows, nil
}
