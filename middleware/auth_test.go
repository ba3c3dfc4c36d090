package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"garment-studio/core"
	"garment-studio/handlers/auth"
)

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var gotSubject string
	h := AuthJWT(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ClaimsContextKey).(*auth.AppClaims)
		if !ok {
			t.Error("claims missing from request context")
			return
		}
		gotSubject = claims.Subject
	}))
	return h, &gotSubject
}

func TestAuthJWTMissingHeader(t *testing.T) {
	h, _ := protected(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}

func TestAuthJWTMalformedHeader(t *testing.T) {
	h, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}

func TestAuthJWTValidToken(t *testing.T) {
	auth.SetJWTSecret([]byte("test-secret"))
	token, err := auth.CreateJWT(&core.User{Subject: "github:7", Login: "runner"})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	h, subject := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if *subject != "github:7" {
		t.Errorf("got subject %q, want github:7", *subject)
	}
}

func TestAuthJWTInvalidToken(t *testing.T) {
	auth.SetJWTSecret([]byte("test-secret"))

	h, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}
