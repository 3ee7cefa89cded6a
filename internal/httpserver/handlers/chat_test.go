package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestChatProxyForwardsToAgent(t *testing.T) {
	var gotPath, gotBody string
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("X-Agent", "yes")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"reply":"hello"}`))
	}))
	defer agent.Close()

	d := newTestDeps()
	agentURL, err := url.Parse(agent.URL)
	if err != nil {
		t.Fatal(err)
	}
	d.ChatAgent = agentURL

	if _, err := d.Store.AddChatSession(context.Background(), "sess-1", "t"); err != nil {
		t.Fatalf("AddChatSession() error = %v", err)
	}

	r := chi.NewRouter()
	r.HandleFunc("/api/chat/{sessionID}", ChatProxy(d))
	r.HandleFunc("/api/chat/{sessionID}/*", ChatProxy(d))

	req := httptest.NewRequest(http.MethodPost, "/api/chat/sess-1/messages?stream=true",
		strings.NewReader(`{"text":"hi"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want the agent's 202", rec.Code)
	}
	if gotPath != "/sess-1/messages" {
		t.Errorf("agent saw path %q, want /sess-1/messages", gotPath)
	}
	if gotBody != `{"text":"hi"}` {
		t.Errorf("agent saw body %q, want the request body", gotBody)
	}
	if rec.Header().Get("X-Agent") != "yes" {
		t.Error("agent response headers were not copied back")
	}
	if rec.Body.String() != `{"reply":"hello"}` {
		t.Errorf("body = %q, want the agent response", rec.Body.String())
	}
}

func TestChatProxyAgentDown(t *testing.T) {
	d := newTestDeps()
	agentURL, err := url.Parse("http://127.0.0.1:1") // nothing listens there
	if err != nil {
		t.Fatal(err)
	}
	d.ChatAgent = agentURL

	r := chi.NewRouter()
	r.HandleFunc("/api/chat/{sessionID}", ChatProxy(d))

	req := httptest.NewRequest(http.MethodPost, "/api/chat/sess-1", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 when the agent is unreachable", rec.Code)
	}
}
