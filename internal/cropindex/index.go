package cropindex

import (
	"fmt"
	"math"
	"sort"
)

// Index holds the crop embedding matrix and answers nearest-neighbor
// queries by exhaustive L2 scan. At catalog scale (tens of rows) a flat
// scan beats any ANN structure. Immutable after load.
type Index struct {
	dim     int
	vectors [][]float32
}

// NewIndex validates that every vector has width dim.
func NewIndex(dim int, vectors [][]float32) (*Index, error) {
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
	}
	return &Index{dim: dim, vectors: vectors}, nil
}

// Dim returns the vector width the index was built with.
func (ix *Index) Dim() int {
	return ix.dim
}

// Size returns the number of indexed rows.
func (ix *Index) Size() int {
	return len(ix.vectors)
}

// Search returns the k nearest rows to query by L2 distance, ascending.
// Ties break on row index so results are deterministic. Returns at most
// Size() hits.
func (ix *Index) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: query has %d values, want %d", ErrDimensionMismatch, len(query), ix.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	hits := make([]Hit, 0, len(ix.vectors))
	for i, v := range ix.vectors {
		hits = append(hits, Hit{RowIndex: i, Distance: l2(query, v)})
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

func l2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
