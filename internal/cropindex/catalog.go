package cropindex

import (
	"krishimitra-backend/internal/model"
)

// Catalog maps index rows back to crop metadata. Row order matches the
// embedding matrix exactly.
type Catalog struct {
	entries []model.CropCatalogEntry
	names   []string
}

// NewCatalog builds a catalog over the given entries. Entries must be in
// row order with RowIndex == position.
func NewCatalog(entries []model.CropCatalogEntry) *Catalog {
	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		names = append(names, e.Name)
	}
	return &Catalog{entries: entries, names: names}
}

// Size returns the number of catalog rows.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Lookup returns the entry at the given row. Callers pass row indices
// produced by the index, so an out-of-range row is a programming error.
func (c *Catalog) Lookup(row int) model.CropCatalogEntry {
	return c.entries[row]
}

// Names returns distinct crop names in first-seen row order, the candidate
// set for fuzzy matching.
func (c *Catalog) Names() []string {
	return c.names
}

// EntriesFor returns every row whose crop name equals name.
func (c *Catalog) EntriesFor(name string) []model.CropCatalogEntry {
	var out []model.CropCatalogEntry
	for _, e := range c.entries {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// EntryFor returns the row for name whose season matches, falling back to
// the first row carrying the name when no season-specific row exists.
func (c *Catalog) EntryFor(name string, season model.Season) (model.CropCatalogEntry, bool) {
	rows := c.EntriesFor(name)
	if len(rows) == 0 {
		return model.CropCatalogEntry{}, false
	}
	for _, e := range rows {
		if e.Season == season {
			return e, true
		}
	}
	return rows[0], true
}
