package api

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestAuth_MissingToken(t *testing.T) {
	_, handler := newTestServer()

	rec := doJSON(t, handler, http.MethodGet, "/npcs?campaign_id="+testUser, "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != codeMissingToken {
		t.Fatalf("expected %s, got %s", codeMissingToken, code)
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	_, handler := newTestServer()

	rec := doJSON(t, handler, http.MethodGet, "/npcs", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != codeInvalidToken {
		t.Fatalf("expected %s, got %s", codeInvalidToken, code)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	_, handler := newTestServer()

	token := signToken(t, "some-other-secret", testUser)
	rec := doJSON(t, handler, http.MethodGet, "/npcs", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != codeInvalidToken {
		t.Fatalf("expected %s, got %s", codeInvalidToken, code)
	}
}

func TestAuth_MissingSubject(t *testing.T) {
	_, handler := newTestServer()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	rec := doJSON(t, handler, http.MethodGet, "/npcs", signed, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != codeInvalidToken {
		t.Fatalf("expected %s, got %s", codeInvalidToken, code)
	}
}

func TestAuth_ValidTokenPassesThrough(t *testing.T) {
	_, handler := newTestServer()

	token := signToken(t, testSecret, testUser)
	rec := doJSON(t, handler, http.MethodGet, "/npcs?campaign_id="+testUser, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
