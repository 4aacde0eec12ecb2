package cropindex

import (
	"fmt"
	"math"

	"krishimitra-backend/internal/model"
)

// Encoder converts a soil record plus query context into the fixed-width
// feature vector the similarity index was built on. Read-only after
// construction; safe for concurrent use.
type Encoder struct {
	params TransformParams
}

// NewEncoder wraps fitted transform parameters.
func NewEncoder(params TransformParams) *Encoder {
	return &Encoder{params: params}
}

// Dim returns the fitted output width.
func (e *Encoder) Dim() int {
	return e.params.Dim()
}

// Encode builds the feature vector for one request. Missing numeric readings
// become NaN and are resolved by the transform's fitted imputation values.
// An unknown categorical level under handle_unknown="error" yields
// ErrEncoding; missing categorical values encode as all-zeros.
func (e *Encoder) Encode(rec model.SoilRecord, qc model.QueryContext) ([]float32, error) {
	out := make([]float32, 0, e.Dim())

	for _, nf := range e.params.Numeric {
		v := numericValue(rec, nf.Name)
		if math.IsNaN(v) {
			v = nf.Impute
		}
		scale := nf.Scale
		if scale == 0 {
			scale = 1
		}
		out = append(out, float32((v-nf.Mean)/scale))
	}

	for _, cf := range e.params.Categorical {
		val := categoricalValue(rec, qc, cf.Name)
		oneHot := make([]float32, len(cf.Categories))
		if val != "" {
			idx := -1
			for i, c := range cf.Categories {
				if c == val {
					idx = i
					break
				}
			}
			if idx >= 0 {
				oneHot[idx] = 1
			} else if cf.HandleUnknown == HandleUnknownError {
				return nil, fmt.Errorf("%w: unknown %s level %q", ErrEncoding, cf.Name, val)
			}
			// handle_unknown="ignore": leave the block all-zeros
		}
		out = append(out, oneHot...)
	}

	return out, nil
}

func numericValue(rec model.SoilRecord, name string) float64 {
	var p *float64
	switch name {
	case "ph":
		p = rec.PH
	case "n":
		p = rec.Nitrogen
	case "p":
		p = rec.Phosphorus
	case "k":
		p = rec.Potassium
	}
	if p == nil {
		return math.NaN()
	}
	return *p
}

func categoricalValue(rec model.SoilRecord, qc model.QueryContext, name string) string {
	switch name {
	case "soil_type":
		return rec.SoilType
	case "season":
		return string(qc.Season)
	case "crop_type":
		return qc.CropTypeHint
	case "water_source":
		return qc.WaterSourceHint
	}
	return ""
}
