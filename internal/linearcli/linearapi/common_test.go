package linearapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
)

// graphqlCall is what the mock server saw for one request
type graphqlCall struct {
	Operation     string
	Variables     map[string]any
	Authorization string
}

// graphqlHandler answers one named operation
type graphqlHandler func(t *testing.T, vars map[string]any) (int, string)

var operationName = regexp.MustCompile(`^\s*(?:query|mutation)\s+(\w+)`)

// mockServer creates a test GraphQL endpoint that dispatches on the operation
// name and records every call. This is shared across all test files in the
// linearapi package.
func mockServer(t *testing.T, handlers map[string]graphqlHandler) (*httptest.Server, *[]graphqlCall) {
	t.Helper()
	calls := &[]graphqlCall{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST method, got %s", r.Method)
		}
		var body graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("invalid request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		m := operationName.FindStringSubmatch(body.Query)
		if m == nil {
			t.Errorf("query has no operation name: %s", body.Query)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		*calls = append(*calls, graphqlCall{
			Operation:     m[1],
			Variables:     body.Variables,
			Authorization: r.Header.Get("Authorization"),
		})
		handler, ok := handlers[m[1]]
		if !ok {
			t.Errorf("unexpected operation %s", m[1])
			w.WriteHeader(http.StatusNotFound)
			return
		}
		status, resp := handler(t, body.Variables)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(server.Close)
	return server, calls
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	c, err := New("sk_test_123", WithURL(server.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}
