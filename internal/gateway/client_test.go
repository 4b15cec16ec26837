package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(Config{BaseURL: baseURL, Token: "test-token"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}
	return client
}

func TestNew_RequiresToken(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(Config{BaseURL: "http://localhost", Token: tc.token}, zap.NewNop())
			if err != ErrMissingToken {
				t.Errorf("expected ErrMissingToken, got %v", err)
			}
		})
	}
}

func TestGet_SendsBearerTokenAndParams(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	payload := client.Get(context.Background(), "/profile", url.Values{"status": {"pending"}})

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotQuery != "status=pending" {
		t.Errorf("expected query passthrough, got %q", gotQuery)
	}
	if payload.IsEmpty() {
		t.Error("expected a non-empty payload")
	}
	if got := len(payload.Objects()); got != 1 {
		t.Errorf("expected 1 object, got %d", got)
	}
}

func TestRequest_ServerErrorDegradesToEmpty(t *testing.T) {
	statuses := []int{
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusInternalServerError,
		http.StatusBadGateway,
	}

	for _, status := range statuses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error": "nope"}`))
		}))

		client := newTestClient(t, srv.URL)
		payload := client.Get(context.Background(), "/rides", nil)
		srv.Close()

		if !payload.IsEmpty() {
			t.Errorf("status %d should degrade to an empty payload", status)
		}
	}
}

func TestRequest_TransportErrorDegradesToEmpty(t *testing.T) {
	// Point at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(t, srv.URL)
	payload := client.Get(context.Background(), "/rides", nil)

	if !payload.IsEmpty() {
		t.Error("transport failure should degrade to an empty payload")
	}
}

func TestRequest_NonJSONSuccessWrappedAsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("all good"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	payload := client.Get(context.Background(), "/ping", nil)

	obj, ok := payload.Object()
	if !ok {
		t.Fatal("expected a wrapped object payload")
	}
	if obj["message"] != "all good" {
		t.Errorf("expected raw body under message, got %v", obj["message"])
	}
}

func TestPut_SendsJSONBody(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"id": 1, "status": "approved"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	payload := client.Put(context.Background(), "/driver/documents/1/status",
		map[string]any{"status": "approved"})

	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if gotBody != `{"status":"approved"}` {
		t.Errorf("unexpected body: %q", gotBody)
	}
	if payload.IsEmpty() {
		t.Error("expected a non-empty payload")
	}
}

func TestPayload_IsEmpty(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty array", []any{}, true},
		{"empty object", map[string]any{}, true},
		{"object", map[string]any{"id": 1}, false},
		{"array", []any{map[string]any{"id": 1}}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Payload{value: tc.value}
			if got := p.IsEmpty(); got != tc.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPayload_ObjectsFlattensShapes(t *testing.T) {
	// An array yields its object elements, skipping non-objects.
	arr := Payload{value: []any{
		map[string]any{"id": float64(1)},
		"noise",
		map[string]any{"id": float64(2)},
	}}
	if got := len(arr.Objects()); got != 2 {
		t.Errorf("expected 2 objects from array, got %d", got)
	}

	// A single object yields a one-element list.
	single := Payload{value: map[string]any{"id": float64(1)}}
	if got := len(single.Objects()); got != 1 {
		t.Errorf("expected 1 object from single, got %d", got)
	}

	// Anything else yields nothing.
	if got := len((Payload{value: "text"}).Objects()); got != 0 {
		t.Errorf("expected no objects from scalar, got %d", got)
	}
}
