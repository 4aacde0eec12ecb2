package cropindex

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	_ "modernc.org/sqlite"

	"krishimitra-backend/internal/model"
)

const (
	metaKeyVectorSize = "vector_size"
	metaKeyBuiltAt    = "built_at"
	metaKeyVersion    = "version"

	artifactVersion = "1"
)

// Bundle is a fully loaded, validated crop index artifact.
type Bundle struct {
	Encoder *Encoder
	Index   *Index
	Catalog *Catalog
	BuiltAt string
}

// Load opens the SQLite artifact at path and reconstructs the encoder,
// index, and catalog. Every failure mode, from a missing file to a vector
// width that disagrees with the fitted transform, wraps ErrUnavailable so
// callers can refuse recommendation traffic with one check.
func Load(ctx context.Context, path string) (*Bundle, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	defer db.Close()

	meta, err := loadMeta(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if meta[metaKeyVersion] != artifactVersion {
		return nil, fmt.Errorf("%w: artifact version %q, want %q", ErrUnavailable, meta[metaKeyVersion], artifactVersion)
	}
	vectorSize, err := strconv.Atoi(meta[metaKeyVectorSize])
	if err != nil {
		return nil, fmt.Errorf("%w: bad %s: %v", ErrUnavailable, metaKeyVectorSize, err)
	}

	params, err := loadTransform(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if params.Dim() != vectorSize {
		return nil, fmt.Errorf("%w: transform dim %d, artifact vector_size %d", ErrUnavailable, params.Dim(), vectorSize)
	}

	entries, err := loadCatalog(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	vectors, err := loadEmbeddings(ctx, db, vectorSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(vectors) != len(entries) {
		return nil, fmt.Errorf("%w: %d embeddings vs %d catalog rows", ErrUnavailable, len(vectors), len(entries))
	}

	ix, err := NewIndex(vectorSize, vectors)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Bundle{
		Encoder: NewEncoder(params),
		Index:   ix,
		Catalog: NewCatalog(entries),
		BuiltAt: meta[metaKeyBuiltAt],
	}, nil
}

func loadMeta(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM artifact_meta`)
	if err != nil {
		return nil, fmt.Errorf("read artifact_meta: %v", err)
	}
	defer rows.Close()

	meta := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

func loadTransform(ctx context.Context, db *sql.DB) (TransformParams, error) {
	var raw string
	err := db.QueryRowContext(ctx, `SELECT params FROM transform_params WHERE id = 0`).Scan(&raw)
	if err != nil {
		return TransformParams{}, fmt.Errorf("read transform_params: %v", err)
	}
	var params TransformParams
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return TransformParams{}, fmt.Errorf("decode transform_params: %v", err)
	}
	return params, nil
}

func loadCatalog(ctx context.Context, db *sql.DB) ([]model.CropCatalogEntry, error) {
	rows, err := db.QueryContext(ctx, `SELECT row_index, crop, season, crop_type FROM crop_catalog ORDER BY row_index`)
	if err != nil {
		return nil, fmt.Errorf("read crop_catalog: %v", err)
	}
	defer rows.Close()

	var entries []model.CropCatalogEntry
	for rows.Next() {
		var e model.CropCatalogEntry
		if err := rows.Scan(&e.RowIndex, &e.Name, &e.Season, &e.CropType); err != nil {
			return nil, err
		}
		if e.RowIndex != len(entries) {
			return nil, fmt.Errorf("crop_catalog rows not contiguous at %d", e.RowIndex)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func loadEmbeddings(ctx context.Context, db *sql.DB, vectorSize int) ([][]float32, error) {
	rows, err := db.QueryContext(ctx, `SELECT row_index, embedding FROM crop_embeddings ORDER BY row_index`)
	if err != nil {
		return nil, fmt.Errorf("read crop_embeddings: %v", err)
	}
	defer rows.Close()

	var vectors [][]float32
	for rows.Next() {
		var idx int
		var blob []byte
		if err := rows.Scan(&idx, &blob); err != nil {
			return nil, err
		}
		if idx != len(vectors) {
			return nil, fmt.Errorf("crop_embeddings rows not contiguous at %d", idx)
		}
		vec, err := decodeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("row %d: %v", idx, err)
		}
		if len(vec) != vectorSize {
			return nil, fmt.Errorf("row %d has %d values, want %d", idx, len(vec), vectorSize)
		}
		vectors = append(vectors, vec)
	}
	return vectors, rows.Err()
}

// encodeVector packs a vector as little-endian float32 for BLOB storage.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("embedding blob length %d not a multiple of 4", len(blob))
	}
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return vec, nil
}
