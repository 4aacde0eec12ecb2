package intent

import (
	"context"
	"errors"
	"testing"

	"krishimitra-backend/pkg/llmprovider"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
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

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Info(ctx context.Context, arg ...any)                    {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Error(ctx context.Context, arg ...any)                   {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (noopLogger) Panic(ctx context.Context, arg ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("sowing with crop name", func(t *testing.T) {
		c := New(&fakeGenerator{text: `{"intent":"sowing","crop_name":"wheat","reasoning":"asks how to grow wheat"}`}, noopLogger{})
		out, err := c.Classify(ctx, "how do I grow wheat?")
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if out.Intent != IntentSowing {
			t.Errorf("Intent = %q, want sowing", out.Intent)
		}
		if out.CropName != "wheat" {
			t.Errorf("CropName = %q, want wheat", out.CropName)
		}
	})

	t.Run("fenced json", func(t *testing.T) {
		c := New(&fakeGenerator{text: "```json\n{\"intent\":\"pre_sowing\"}\n```"}, noopLogger{})
		out, err := c.Classify(ctx, "what should I plant?")
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if out.Intent != IntentPreSowing {
			t.Errorf("Intent = %q, want pre_sowing", out.Intent)
		}
	})

	t.Run("unknown label coerced to general", func(t *testing.T) {
		c := New(&fakeGenerator{text: `{"intent":"weather_report"}`}, noopLogger{})
		out, err := c.Classify(ctx, "will it rain?")
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if out.Intent != IntentGeneral {
			t.Errorf("Intent = %q, want general", out.Intent)
		}
	})

	t.Run("bad json falls back", func(t *testing.T) {
		c := New(&fakeGenerator{text: "the farmer wants to sow"}, noopLogger{})
		out, err := c.Classify(ctx, "hello")
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if out.Intent != IntentGeneral {
			t.Errorf("Intent = %q, want general", out.Intent)
		}
	})

	t.Run("empty response falls back", func(t *testing.T) {
		c := New(&fakeGenerator{text: ""}, noopLogger{})
		out, err := c.Classify(ctx, "hello")
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if out.Intent != IntentGeneral {
			t.Errorf("Intent = %q, want general", out.Intent)
		}
	})

	t.Run("llm error surfaces", func(t *testing.T) {
		c := New(&fakeGenerator{err: errors.New("provider down")}, noopLogger{})
		if _, err := c.Classify(ctx, "hello"); err == nil {
			t.Fatal("Classify() should surface generation errors")
		}
	})
}
