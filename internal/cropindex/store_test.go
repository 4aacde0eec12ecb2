package cropindex

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"krishimitra-backend/internal/model"
)

func TestArtifactRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "crop_index.db")

	params := testParams()
	entries := []model.CropCatalogEntry{
		{Name: "Rice", Season: "kharif", CropType: "cereal", RowIndex: 0},
		{Name: "Wheat", Season: "rabi", CropType: "cereal", RowIndex: 1},
		{Name: "Wheat", Season: "zaid", CropType: "cereal", RowIndex: 2},
	}
	vectors := [][]float32{
		{1, 0, 0, 0, 1, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0, 1},
	}

	if err := BuildArtifact(ctx, path, params, entries, vectors); err != nil {
		t.Fatalf("BuildArtifact() error = %v", err)
	}

	b, err := Load(ctx, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := b.Index.Size(), 3; got != want {
		t.Errorf("Index.Size() = %d, want %d", got, want)
	}
	if got, want := b.Encoder.Dim(), b.Index.Dim(); got != want {
		t.Errorf("Encoder.Dim() = %d, Index.Dim() = %d", got, want)
	}
	if b.BuiltAt == "" {
		t.Error("BuiltAt empty")
	}

	t.Run("catalog preserved", func(t *testing.T) {
		if got := b.Catalog.Lookup(1); got.Name != "Wheat" || got.Season != "rabi" {
			t.Errorf("Lookup(1) = %+v", got)
		}
		names := b.Catalog.Names()
		if len(names) != 2 || names[0] != "Rice" || names[1] != "Wheat" {
			t.Errorf("Names() = %v", names)
		}
	})

	t.Run("season preferred entry", func(t *testing.T) {
		e, ok := b.Catalog.EntryFor("Wheat", model.SeasonZaid)
		if !ok || e.RowIndex != 2 {
			t.Errorf("EntryFor(Wheat, zaid) = %+v, %v", e, ok)
		}
		e, ok = b.Catalog.EntryFor("Wheat", model.SeasonKharif)
		if !ok || e.RowIndex != 1 {
			t.Errorf("EntryFor(Wheat, kharif) fallback = %+v, %v", e, ok)
		}
	})

	t.Run("search over loaded vectors", func(t *testing.T) {
		hits, err := b.Index.Search(vectors[2], 1)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if hits[0].RowIndex != 2 {
			t.Errorf("nearest = %d, want 2", hits[0].RowIndex)
		}
	})
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Load() error = %v, want ErrUnavailable", err)
	}
}

func TestVectorCodec(t *testing.T) {
	in := []float32{0, 1.5, -2.25, 3.125}
	out, err := decodeVector(encodeVector(in))
	if err != nil {
		t.Fatalf("decodeVector() error = %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
	if _, err := decodeVector([]byte{1, 2, 3}); err == nil {
		t.Error("decodeVector(3 bytes) should fail")
	}
}
