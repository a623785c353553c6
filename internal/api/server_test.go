package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"chronicler/internal/store/storetest"
)

const testSecret = "test-secret"

// Caller ids must be uuids because user_id columns validate as such.
const (
	testUser  = "11111111-1111-1111-1111-111111111111"
	otherUser = "22222222-2222-2222-2222-222222222222"
)

func newTestServer() (*storetest.Store, http.Handler) {
	db := storetest.New()
	srv := NewServer(db, testSecret, zerolog.Nop())
	return db, srv.Handler()
}

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

// doJSON performs a request against the handler. A non-empty token is sent
// as a bearer credential; a non-nil body is JSON-encoded.
func doJSON(t *testing.T, handler http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	out := decodeResponse(t, rec)
	code, _ := out["error"].(string)
	return code
}

func TestHealthRequiresNoAuth(t *testing.T) {
	_, handler := newTestServer()

	rec := doJSON(t, handler, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	out := decodeResponse(t, rec)
	if out["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", out)
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	_, handler := newTestServer()

	rec := doJSON(t, handler, http.MethodOptions, "/npcs", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS origin header")
	}
}
