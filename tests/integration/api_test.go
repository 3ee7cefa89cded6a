package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/auth"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/httpserver/routes"
	"github.com/creziapro/site/internal/logger"
	"github.com/creziapro/site/internal/storage/memory"
	"github.com/creziapro/site/internal/store"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// newTestServer wires the real route registry over in-memory storage.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	kv := memory.New()
	d := deps.Deps{
		Logger:          logger.Nop(),
		StartTime:       time.Now(),
		Store:           store.New(kv, logger.Nop()),
		KV:              kv,
		Credentials:     auth.NewStatic("admin@creziapro.com", "password", ""),
		RateLimitBurst:  100,
		RateLimitPerMin: 100,
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// client wraps an http.Client with a cookie jar and envelope decoding.
type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newClient(t *testing.T, srv *httptest.Server) *client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	return &client{t: t, base: srv.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path, body string) (int, apiEnvelope) {
	c.t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, c.base+path, nil)
	} else {
		req, err = http.NewRequest(method, c.base+path, bytes.NewReader([]byte(body)))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if err != nil {
		c.t.Fatalf("building %s %s: %v", method, path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env apiEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func TestAdminContentLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	// Admin routes are closed before login.
	status, _ := c.do(http.MethodGet, "/api/admin/verify", "")
	if status != http.StatusUnauthorized {
		t.Fatalf("verify before login = %d, want 401", status)
	}
	status, _ = c.do(http.MethodPost, "/api/services", `{"title":"x","description":"d","icon":"i","features":["f"]}`)
	if status != http.StatusUnauthorized {
		t.Fatalf("create service before login = %d, want 401", status)
	}

	// Wrong password is rejected.
	status, _ = c.do(http.MethodPost, "/api/admin/login", `{"email":"admin@creziapro.com","password":"nope"}`)
	if status != http.StatusUnauthorized {
		t.Fatalf("login with wrong password = %d, want 401", status)
	}

	// Login and verify.
	status, _ = c.do(http.MethodPost, "/api/admin/login", `{"email":"admin@creziapro.com","password":"password"}`)
	if status != http.StatusOK {
		t.Fatalf("login = %d, want 200", status)
	}
	status, _ = c.do(http.MethodGet, "/api/admin/verify", "")
	if status != http.StatusOK {
		t.Fatalf("verify after login = %d, want 200", status)
	}

	// Create a service, see it on the public listing.
	status, env := c.do(http.MethodPost, "/api/services",
		`{"title":"Web Development","description":"Full-stack","icon":"code","features":["Responsive"],`+
			`"pricingBands":[{"label":"Basic","min":500,"max":1500}]}`)
	if status != http.StatusCreated {
		t.Fatalf("create service = %d, want 201 (%s)", status, env.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil || created.ID == "" {
		t.Fatalf("create service returned no id: %s", env.Data)
	}

	status, env = c.do(http.MethodGet, "/api/services", "")
	if status != http.StatusOK {
		t.Fatalf("list services = %d, want 200", status)
	}
	var services []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &services); err != nil {
		t.Fatalf("decoding services: %v", err)
	}
	if len(services) != 1 || services[0].Title != "Web Development" {
		t.Fatalf("public services = %+v, want the created one", services)
	}

	// Update, then delete.
	status, _ = c.do(http.MethodPut, "/api/services/"+created.ID, `{"title":"Web Dev"}`)
	if status != http.StatusOK {
		t.Fatalf("update service = %d, want 200", status)
	}
	status, _ = c.do(http.MethodDelete, "/api/services/"+created.ID, "")
	if status != http.StatusOK {
		t.Fatalf("delete service = %d, want 200", status)
	}
	status, _ = c.do(http.MethodDelete, "/api/services/"+created.ID, "")
	if status != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", status)
	}

	// Logout closes the door again.
	status, _ = c.do(http.MethodPost, "/api/admin/logout", "")
	if status != http.StatusOK {
		t.Fatalf("logout = %d, want 200", status)
	}
	status, _ = c.do(http.MethodGet, "/api/admin/verify", "")
	if status != http.StatusUnauthorized {
		t.Fatalf("verify after logout = %d, want 401", status)
	}
}

func TestContactAndReviewModeration(t *testing.T) {
	srv := newTestServer(t)
	visitor := newClient(t, srv)
	admin := newClient(t, srv)

	// Visitor submits a message and a review.
	status, _ := visitor.do(http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"alice@example.com","message":"Need a site"}`)
	if status != http.StatusOK {
		t.Fatalf("submit contact = %d, want 200", status)
	}
	status, env := visitor.do(http.MethodPost, "/api/reviews", `{"name":"Alice","rating":5,"comment":"Great"}`)
	if status != http.StatusCreated {
		t.Fatalf("submit review = %d, want 201", status)
	}
	var review struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &review); err != nil {
		t.Fatalf("decoding review: %v", err)
	}
	if review.Status != "pending" {
		t.Fatalf("new review status = %q, want pending", review.Status)
	}

	// Nothing public until moderation.
	_, env = visitor.do(http.MethodGet, "/api/reviews/approved", "")
	var approved []json.RawMessage
	_ = json.Unmarshal(env.Data, &approved)
	if len(approved) != 0 {
		t.Fatalf("approved reviews before moderation = %d, want 0", len(approved))
	}

	// Admin reads the message and approves the review.
	status, _ = admin.do(http.MethodPost, "/api/admin/login", `{"email":"admin@creziapro.com","password":"password"}`)
	if status != http.StatusOK {
		t.Fatalf("login = %d, want 200", status)
	}

	_, env = admin.do(http.MethodGet, "/api/messages", "")
	var messages []struct {
		ID   string `json:"id"`
		Read bool   `json:"read"`
	}
	if err := json.Unmarshal(env.Data, &messages); err != nil {
		t.Fatalf("decoding messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Read {
		t.Fatalf("messages = %+v, want one unread", messages)
	}
	status, _ = admin.do(http.MethodPut, "/api/messages/"+messages[0].ID+"/read", "")
	if status != http.StatusOK {
		t.Fatalf("mark read = %d, want 200", status)
	}

	status, _ = admin.do(http.MethodPut, "/api/reviews/"+review.ID+"/approve", "")
	if status != http.StatusOK {
		t.Fatalf("approve review = %d, want 200", status)
	}

	// The review is now public.
	_, env = visitor.do(http.MethodGet, "/api/reviews/approved", "")
	approved = nil
	if err := json.Unmarshal(env.Data, &approved); err != nil {
		t.Fatalf("decoding approved reviews: %v", err)
	}
	if len(approved) != 1 {
		t.Fatalf("approved reviews = %d, want 1", len(approved))
	}

	// Dashboard counts the message.
	_, env = admin.do(http.MethodGet, "/api/dashboard/stats", "")
	var stats struct {
		Messages int `json:"messages"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.Messages != 1 {
		t.Fatalf("stats.messages = %d, want 1", stats.Messages)
	}
}

func TestSettingsAndChatbotConfig(t *testing.T) {
	srv := newTestServer(t)
	admin := newClient(t, srv)

	status, _ := admin.do(http.MethodPost, "/api/admin/login", `{"email":"admin@creziapro.com","password":"password"}`)
	if status != http.StatusOK {
		t.Fatalf("login = %d, want 200", status)
	}

	// Defaults are served before anything is saved.
	_, env := admin.do(http.MethodGet, "/api/settings", "")
	var settings struct {
		ContactEmail  string `json:"contactEmail"`
		ChatbotPrompt string `json:"chatbotPrompt"`
	}
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		t.Fatalf("decoding settings: %v", err)
	}
	if settings.ContactEmail != "contact@creziapro.com" {
		t.Fatalf("default contactEmail = %q", settings.ContactEmail)
	}

	// Full replace.
	status, _ = admin.do(http.MethodPut, "/api/settings",
		`{"heroTitle":"New Hero","contactEmail":"hi@example.com","chatbotPrompt":"Be nice."}`)
	if status != http.StatusOK {
		t.Fatalf("update settings = %d, want 200", status)
	}

	_, env = admin.do(http.MethodGet, "/api/chatbot/config", "")
	var cfg struct {
		Prompt   string            `json:"prompt"`
		Services []json.RawMessage `json:"services"`
	}
	if err := json.Unmarshal(env.Data, &cfg); err != nil {
		t.Fatalf("decoding chatbot config: %v", err)
	}
	if cfg.Prompt != "Be nice." {
		t.Fatalf("chatbot prompt = %q, want the saved one", cfg.Prompt)
	}
}

func TestChatSessionRegistry(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	status, env := c.do(http.MethodPost, "/api/sessions", `{"firstMessage":"How much for a landing page?"}`)
	if status != http.StatusOK {
		t.Fatalf("create session = %d, want 200", status)
	}
	var created struct {
		SessionID string `json:"sessionId"`
		Title     string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil || created.SessionID == "" {
		t.Fatalf("create session returned %s", env.Data)
	}

	status, _ = c.do(http.MethodPut, "/api/sessions/"+created.SessionID+"/title", `{"title":"Landing page quote"}`)
	if status != http.StatusOK {
		t.Fatalf("rename session = %d, want 200", status)
	}

	_, env = c.do(http.MethodGet, "/api/sessions", "")
	var sessions []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &sessions); err != nil {
		t.Fatalf("decoding sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Title != "Landing page quote" {
		t.Fatalf("sessions = %+v", sessions)
	}

	status, env = c.do(http.MethodDelete, "/api/sessions", "")
	if status != http.StatusOK {
		t.Fatalf("clear sessions = %d, want 200", status)
	}
	var cleared struct {
		DeletedCount int `json:"deletedCount"`
	}
	if err := json.Unmarshal(env.Data, &cleared); err != nil {
		t.Fatalf("decoding clear result: %v", err)
	}
	if cleared.DeletedCount != 1 {
		t.Fatalf("deletedCount = %d, want 1", cleared.DeletedCount)
	}
}
