package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
		cfg := Config{APIKey: "sk-test"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("Model = %q, want %q", cfg.Model, DefaultModel)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("HTTPClient not defaulted")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(chatResponse{
			Model: "gpt-4o-mini",
			Choices: []chatChoice{
				{Message: chatMessage{Role: "assistant", Content: "Sow wheat in November."}},
			},
			Usage: chatUsage{PromptTokens: 20, CompletionTokens: 8, TotalTokens: 28},
		})
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "You are a farm advisor."}}},
		Messages:          []Content{{Role: "user", Parts: []Part{{Text: "When to sow wheat?"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "Sow wheat in November." {
		t.Errorf("Content = %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 28 {
		t.Errorf("TotalTokens = %d, want 28", resp.Usage.TotalTokens)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, _ := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: "user", Parts: []Part{{Text: "hello"}}}},
	})
	if err == nil {
		t.Fatal("GenerateContent() should surface non-200 status")
	}
}
