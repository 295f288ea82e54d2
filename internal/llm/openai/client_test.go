package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.apiURL = srv.URL
	return client
}

func TestNewClientRequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestCompleteReturnsContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %q", req.ResponseFormat.Type)
		}
		if req.Temperature == nil || *req.Temperature != extractionTemperature {
			t.Errorf("temperature = %v", req.Temperature)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"organizationName":"Helping Paws"}`}},
			},
		})
	})

	content, err := client.Complete(context.Background(), "extract fields", "doc text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != `{"organizationName":"Helping Paws"}` {
		t.Errorf("content = %q", content)
	}
}

func TestCompleteDecodesUsage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{}`}},
			},
			"usage": map[string]any{
				"prompt_tokens":     120,
				"completion_tokens": 30,
				"total_tokens":      150,
			},
		})
	})

	if _, err := client.Complete(context.Background(), "sys", "user"); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var parsed chatResponse
	payload := `{"usage":{"prompt_tokens":120,"completion_tokens":30,"total_tokens":150}}`
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := chatUsage{PromptTokens: 120, CompletionTokens: 30, TotalTokens: 150}
	if parsed.Usage == nil || *parsed.Usage != want {
		t.Errorf("usage = %+v, want %+v", parsed.Usage, want)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "rate_limit"},
		})
	})

	if _, err := client.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error from api error payload")
	}
}

func TestCompleteRejectsEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "   "}},
			},
		})
	})

	if _, err := client.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error for empty content")
	}
}
