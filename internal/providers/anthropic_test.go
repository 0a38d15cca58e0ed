package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropic_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("Missing API key header")
		}
		if r.Header.Get("anthropic-version") != anthropicAPIVersion {
			t.Error("Missing anthropic-version header")
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.System == "" {
			t.Error("system prompt should be set")
		}

		resp := anthropicResponse{
			Content: []anthropicBlock{
				{Type: "text", Text: `{"score":90}`},
			},
			Usage: anthropicUsage{InputTokens: 100, OutputTokens: 10},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey:  "test-key",
		model:   "claude-sonnet-4-20250514",
		baseURL: server.URL,
		client:  server.Client(),
	}

	resp, err := a.Generate(context.Background(), Request{
		SystemPrompt: "reviewer",
		UserPrompt:   "review this",
		MaxTokens:    10,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if resp.Content != `{"score":90}` {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensUsed != 110 {
		t.Errorf("TokensUsed = %d, want 110", resp.TokensUsed)
	}
}

func TestAnthropic_Generate_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey:  "bad-key",
		model:   "claude-sonnet-4-20250514",
		baseURL: server.URL,
		client:  server.Client(),
	}

	_, err := a.Generate(context.Background(), Request{UserPrompt: "x"})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError(%v) = false, want true", err)
	}
}

func TestAnthropic_Generate_SingleRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey:  "test-key",
		model:   "claude-sonnet-4-20250514",
		baseURL: server.URL,
		client:  server.Client(),
	}

	_, err := a.Generate(context.Background(), Request{UserPrompt: "x"})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if calls != 1 {
		t.Errorf("server called %d times, want exactly 1 (no implicit retries)", calls)
	}
}

func TestNewAnthropic_MissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropic("claude-sonnet-4-20250514"); err == nil {
		t.Error("expected error when ANTHROPIC_API_KEY is unset")
	}
}
