package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/cropindex"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/internal/model"
)

type fakeUseCase struct {
	output advisory.QueryOutput
	err    error
	gotSC  model.Scope
	gotIn  advisory.QueryInput
}

func (f *fakeUseCase) Query(ctx context.Context, sc model.Scope, input advisory.QueryInput) (advisory.QueryOutput, error) {
	f.gotSC = sc
	f.gotIn = input
	return f.output, f.err
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(uc advisory.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(noopLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1/advisory"), h)
	return r
}

func postQuery(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/advisory/query", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQueryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &fakeUseCase{output: advisory.QueryOutput{
			Intent: intent.IntentScheme,
			Answer: "PM-KISAN pays Rs 6000 per year.",
		}}
		w := postQuery(t, newTestRouter(uc), `{"aadhaar_no":"123456789012","query":"tell me about PM-KISAN"}`)

		if w.Code != 200 {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data queryResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Intent != "scheme" || resp.Data.Answer == "" {
			t.Errorf("data = %+v", resp.Data)
		}
		if uc.gotSC.AadhaarNo != "123456789012" {
			t.Errorf("scope aadhaar = %q", uc.gotSC.AadhaarNo)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		w := postQuery(t, newTestRouter(&fakeUseCase{}), `{"query":"hello"}`)
		if w.Code != 400 {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("farmer not found maps to 404", func(t *testing.T) {
		uc := &fakeUseCase{err: advisory.ErrFarmerNotFound}
		w := postQuery(t, newTestRouter(uc), `{"aadhaar_no":"123456789012","query":"what to grow"}`)
		if w.Code != 404 {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("crop not found maps to 422", func(t *testing.T) {
		uc := &fakeUseCase{err: advisory.ErrCropNotFound}
		w := postQuery(t, newTestRouter(uc), `{"aadhaar_no":"123456789012","query":"grow xyzzy"}`)
		if w.Code != 422 {
			t.Fatalf("status = %d, want 422", w.Code)
		}
	})

	t.Run("encoding failure maps to 422", func(t *testing.T) {
		uc := &fakeUseCase{err: fmt.Errorf("failed to encode soil record: %w", cropindex.ErrEncoding)}
		w := postQuery(t, newTestRouter(uc), `{"aadhaar_no":"123456789012","query":"what to grow"}`)
		if w.Code != 422 {
			t.Fatalf("status = %d, want 422", w.Code)
		}
	})
}
