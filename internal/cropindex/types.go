package cropindex

// TransformParams is the fitted preprocessing transform, persisted as JSON
// in the artifact bundle. The encoder applies these parameters verbatim and
// invents no imputation or scaling policy of its own; refitting happens only
// in the artifact builder, together with an index rebuild.
type TransformParams struct {
	Numeric     []NumericFeature     `json:"numeric"`
	Categorical []CategoricalFeature `json:"categorical"`
}

// NumericFeature holds the fitted scaling parameters for one numeric column.
// Impute replaces the NaN sentinel used for missing readings.
type NumericFeature struct {
	Name   string  `json:"name"`
	Impute float64 `json:"impute"`
	Mean   float64 `json:"mean"`
	Scale  float64 `json:"scale"`
}

// HandleUnknown controls what an unfitted categorical level does: reject the
// record or encode as all-zeros.
const (
	HandleUnknownError  = "error"
	HandleUnknownIgnore = "ignore"
)

// CategoricalFeature holds the fitted one-hot vocabulary for one column.
type CategoricalFeature struct {
	Name          string   `json:"name"`
	Categories    []string `json:"categories"`
	HandleUnknown string   `json:"handle_unknown"`
}

// Dim returns the output width of the fitted transform.
func (p TransformParams) Dim() int {
	dim := len(p.Numeric)
	for _, c := range p.Categorical {
		dim += len(c.Categories)
	}
	return dim
}

// Hit is one similarity search result: a catalog row and its L2 distance
// from the query vector (smaller = more similar).
type Hit struct {
	RowIndex int
	Distance float64
}
