package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("Validate() should fail without APIKey")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := Config{APIKey: "key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("Model = %q, want %q", cfg.Model, DefaultModel)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
		}
	})
}

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("path = %q", r.URL.Path)
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Role != "user" {
			t.Errorf("contents = %+v", req.Contents)
		}
		if req.SystemInstruction == nil {
			t.Error("system instruction missing")
		}

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Role: "model", Parts: []geminiPart{{Text: "Apply lime."}}}},
			},
			UsageMetadata: &geminiUsageMetadata{PromptTokenCount: 15, CandidatesTokenCount: 3, TotalTokenCount: 18},
		})
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "key", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "You are a farm advisor."}}},
		Messages:          []Content{{Role: "user", Parts: []Part{{Text: "My soil is acidic."}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.Content.Role != "assistant" {
		t.Errorf("role = %q, want assistant", resp.Content.Role)
	}
	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "Apply lime." {
		t.Errorf("Content = %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 18 {
		t.Errorf("TotalTokens = %d, want 18", resp.Usage.TotalTokens)
	}
}
