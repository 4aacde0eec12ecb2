package model

// CropCatalogEntry is one row of the static crop catalog. RowIndex is the
// position of the matching vector in the similarity index; the two row
// spaces must stay aligned 1:1 (the artifact builder writes both together).
type CropCatalogEntry struct {
	Name     string
	Season   Season
	CropType string
	RowIndex int
}
