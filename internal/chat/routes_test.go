package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

func setupRouter(mock *mockProvider) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, NewProxy(mock))
	return r
}

func postChat(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatEndpointBugFatherScenario(t *testing.T) {
	mock := newMockProvider("That print statement is raw. 🔥")
	r := setupRouter(mock)

	w := postChat(r, `{"messages":[{"role":"user","content":"print('hi')"}],"persona":"BugFather"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content == "" {
		t.Fatalf("unexpected response shape: %+v", resp)
	}

	call := mock.lastCall(t)
	if !strings.Contains(call.Messages[0].Content, persona.Compose(persona.BugFather)) {
		t.Error("system message is missing the BugFather style")
	}
}

func TestChatEndpointResponseShape(t *testing.T) {
	r := setupRouter(newMockProvider("hi"))

	w := postChat(r, `{"messages":[],"persona":"LeetGuru"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if len(raw) != 1 {
		t.Errorf("expected only a choices field, got %v", raw)
	}
	choices, ok := raw["choices"].([]any)
	if !ok || len(choices) != 1 {
		t.Fatalf("unexpected choices: %v", raw["choices"])
	}
}

func TestChatEndpointFallback(t *testing.T) {
	mock := newMockProvider("")
	r := setupRouter(mock)

	w := postChat(r, `{"messages":[{"role":"user","content":"hi"}],"persona":"Meme Lord"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp Response
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Content() != FallbackContent {
		t.Errorf("content = %q, want fallback", resp.Content())
	}
}

func TestChatEndpointUpstreamFailure(t *testing.T) {
	mock := &mockProvider{err: errors.New("401 Unauthorized")}
	r := setupRouter(mock)

	w := postChat(r, `{"messages":[{"role":"user","content":"hi"}],"persona":"LeetGuru"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Type != "upstream" {
		t.Errorf("error type = %q, want upstream", body.Error.Type)
	}
	if strings.Contains(w.Body.String(), FallbackContent) {
		t.Error("provider failure must not be reported as fallback content")
	}
}

func TestChatEndpointRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `hello`},
		{"missing messages", `{"persona":"LeetGuru"}`},
		{"null messages", `{"messages":null}`},
		{"messages not array", `{"messages":"hi"}`},
		{"bad role", `{"messages":[{"role":"robot","content":"hi"}]}`},
		{"missing content", `{"messages":[{"role":"user"}]}`},
		{"content not string", `{"messages":[{"role":"user","content":42}]}`},
		{"persona not string", `{"messages":[],"persona":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockProvider("ok")
			r := setupRouter(mock)

			w := postChat(r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			var body ErrorResponse
			json.NewDecoder(w.Body).Decode(&body)
			if body.Error.Type != "invalid_request" {
				t.Errorf("error type = %q", body.Error.Type)
			}
			if mock.callCount() != 0 {
				t.Error("provider must not be called for a malformed request")
			}
		})
	}
}

func TestChatEndpointConfigurationError(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewProxy(nil))

	w := postChat(r, `{"messages":[]}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body ErrorResponse
	json.NewDecoder(w.Body).Decode(&body)
	if body.Error.Type != "configuration" {
		t.Errorf("error type = %q", body.Error.Type)
	}
}

func TestChatEndpointMethodNotAllowed(t *testing.T) {
	r := setupRouter(newMockProvider("ok"))

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestPersonasEndpoint(t *testing.T) {
	r := setupRouter(newMockProvider("ok"))

	req := httptest.NewRequest(http.MethodGet, "/api/personas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []persona.Info
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 4 {
		t.Errorf("expected 4 personas, got %d", len(list))
	}
}

func TestClassifyUnknownError(t *testing.T) {
	status, body := Classify(errors.New("boom"))
	if status != http.StatusInternalServerError || body.Error.Type != "internal" {
		t.Errorf("Classify = %d %+v", status, body)
	}
}
