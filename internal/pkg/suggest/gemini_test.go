package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestProvider(endpoint, apiKey string) *GeminiProvider {
	return NewGeminiProvider(GeminiConfig{
		APIKey:   apiKey,
		Endpoint: endpoint,
		Model:    "gemini-2.0-flash",
		Timeout:  time.Second,
	}, zerolog.Nop())
}

func candidateBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key missing from query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(candidateBody("Vinhos e conversas boas. ")))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "test-key")

	got := p.GenerateVibeDescription(context.Background(), "Wine & Unwind", "Drinks")
	if got != "Vinhos e conversas boas." {
		t.Errorf("expected trimmed candidate text, got %q", got)
	}

	got = p.GenerateIcebreaker(context.Background(), "Wine & Unwind")
	if got != "Vinhos e conversas boas." {
		t.Errorf("expected candidate text, got %q", got)
	}
}

func TestServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "test-key")

	if got := p.GenerateVibeDescription(context.Background(), "Brunch?", "Dining"); got != FallbackVibeDescription {
		t.Errorf("expected fallback description, got %q", got)
	}
	if got := p.GenerateIcebreaker(context.Background(), "Brunch?"); got != FallbackIcebreaker {
		t.Errorf("expected fallback icebreaker, got %q", got)
	}
}

func TestUnreachableEndpointFallsBack(t *testing.T) {
	p := newTestProvider("http://127.0.0.1:1", "test-key")

	if got := p.GenerateVibeDescription(context.Background(), "Brunch?", "Dining"); got != FallbackVibeDescription {
		t.Errorf("expected fallback description, got %q", got)
	}
}

func TestEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "test-key")

	// An empty answer is not a failure; the description degrades to the
	// default line, the icebreaker to the fixed one.
	if got := p.GenerateVibeDescription(context.Background(), "Brunch?", "Dining"); got != DefaultVibeDescription {
		t.Errorf("expected default description, got %q", got)
	}
	if got := p.GenerateIcebreaker(context.Background(), "Brunch?"); got != FallbackIcebreaker {
		t.Errorf("expected fallback icebreaker, got %q", got)
	}
}

func TestMissingAPIKeyFallsBack(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "")

	if got := p.GenerateVibeDescription(context.Background(), "Brunch?", "Dining"); got != FallbackVibeDescription {
		t.Errorf("expected fallback description, got %q", got)
	}
	if called {
		t.Error("provider called the endpoint without an api key")
	}
}
