package usecase

import (
	"context"
	"errors"
	"time"

	"krishimitra-backend/internal/cropindex"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/internal/model"
	"krishimitra-backend/pkg/geocode"
	"krishimitra-backend/pkg/llmprovider"
	"krishimitra-backend/pkg/openweather"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is a function-field fake for the farmer repository
type fakeRepo struct {
	getFarmer       func(ctx context.Context, aadhaarNo string) (model.FarmerProfile, error)
	listSoilRecords func(ctx context.Context, aadhaarNo string) ([]model.SoilRecord, error)
}

func (f *fakeRepo) GetFarmer(ctx context.Context, aadhaarNo string) (model.FarmerProfile, error) {
	return f.getFarmer(ctx, aadhaarNo)
}

func (f *fakeRepo) ListSoilRecords(ctx context.Context, aadhaarNo string) ([]model.SoilRecord, error) {
	return f.listSoilRecords(ctx, aadhaarNo)
}

// fakeClassifier returns a fixed classification
type fakeClassifier struct {
	output intent.ClassifierOutput
	err    error
}

func (f *fakeClassifier) Classify(ctx context.Context, message string) (intent.ClassifierOutput, error) {
	return f.output, f.err
}

// fakeLLM echoes a fixed answer or fails
type fakeLLM struct {
	text    string
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: f.text}},
		},
		Usage: &llmprovider.Usage{},
	}, nil
}

// fakeWeather serves a fixed forecast
type fakeWeather struct {
	forecast *openweather.ForecastResult
	err      error
}

func (f *fakeWeather) Current(ctx context.Context, lat, lon float64) (*openweather.Observation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeWeather) Forecast(ctx context.Context, lat, lon float64) (*openweather.ForecastResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.forecast, nil
}

// fakeGeocode resolves every place to a fixed coordinate
type fakeGeocode struct {
	loc *geocode.Location
	err error
}

func (f *fakeGeocode) Lookup(ctx context.Context, district, state string) (*geocode.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.loc, nil
}

// newTestBundle builds a small in-memory crop index: identity transform
// on the numerics and a one-hot season block.
func newTestBundle() *cropindex.Bundle {
	params := cropindex.TransformParams{
		Numeric: []cropindex.NumericFeature{
			{Name: "ph", Impute: 0, Mean: 0, Scale: 1},
			{Name: "n", Impute: 0, Mean: 0, Scale: 1},
			{Name: "p", Impute: 0, Mean: 0, Scale: 1},
			{Name: "k", Impute: 0, Mean: 0, Scale: 1},
		},
		Categorical: []cropindex.CategoricalFeature{
			{Name: "season", Categories: []string{"kharif", "rabi", "zaid"}, HandleUnknown: cropindex.HandleUnknownIgnore},
		},
	}

	entries := []model.CropCatalogEntry{
		{Name: "Rice", Season: "kharif", CropType: "cereal", RowIndex: 0},
		{Name: "Wheat", Season: "rabi", CropType: "cereal", RowIndex: 1},
		{Name: "Cotton", Season: "kharif", CropType: "fiber", RowIndex: 2},
	}
	vectors := [][]float32{
		{1, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 1, 0},
		{3, 0, 0, 0, 1, 0, 0},
	}

	ix, err := cropindex.NewIndex(params.Dim(), vectors)
	if err != nil {
		panic(err)
	}
	return &cropindex.Bundle{
		Encoder: cropindex.NewEncoder(params),
		Index:   ix,
		Catalog: cropindex.NewCatalog(entries),
	}
}

func ptr(v float64) *float64 { return &v }

// kharifTime is a fixed clock inside the kharif window
func kharifTime() time.Time {
	return time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)
}

func singleRecordRepo(rec model.SoilRecord) *fakeRepo {
	return &fakeRepo{
		getFarmer: func(ctx context.Context, aadhaarNo string) (model.FarmerProfile, error) {
			return model.FarmerProfile{
				AadhaarNo: aadhaarNo,
				Name:      "Ramesh",
				District:  "Nashik",
				State:     "Maharashtra",
			}, nil
		},
		listSoilRecords: func(ctx context.Context, aadhaarNo string) ([]model.SoilRecord, error) {
			return []model.SoilRecord{rec}, nil
		},
	}
}
