package github

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestVerifier stands up a fake GitHub (token + user API) and returns a
// verifier pointed at it. userHandler serves GET /user.
func newTestVerifier(t *testing.T, userHandler http.HandlerFunc) *Verifier {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_test","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", userHandler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	origUserAPIURL := userAPIURL
	userAPIURL = srv.URL + "/user"
	t.Cleanup(func() { userAPIURL = origUserAPIURL })

	v := NewVerifier("client-id", "client-secret", "http://localhost/callback", discardLogger())
	v.config.Endpoint.AuthURL = srv.URL + "/login/oauth/authorize"
	v.config.Endpoint.TokenURL = srv.URL + "/login/oauth/access_token"

	return v
}

func TestVerifier_VerifyCode_Success(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer gho_test" {
			t.Errorf("Authorization header = %q, want %q", got, "Bearer gho_test")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 583231,
			"login": "aarav-dev",
			"name": "Aarav",
			"email": "aarav@echospace.dev",
			"avatar_url": "https://avatars.example.com/u/583231"
		}`))
	})

	identity, err := v.VerifyCode(context.Background(), "valid-code")
	if err != nil {
		t.Fatalf("VerifyCode failed: %v", err)
	}

	if identity.ProviderID != "583231" {
		t.Errorf("ProviderID = %q, want %q", identity.ProviderID, "583231")
	}
	if identity.Name == nil || *identity.Name != "Aarav" {
		t.Errorf("Name = %v, want Aarav", identity.Name)
	}
	if identity.Email == nil || *identity.Email != "aarav@echospace.dev" {
		t.Errorf("Email = %v, want aarav@echospace.dev", identity.Email)
	}
	if identity.AvatarURL == nil || *identity.AvatarURL != "https://avatars.example.com/u/583231" {
		t.Errorf("AvatarURL = %v, want avatar url", identity.AvatarURL)
	}
}

func TestVerifier_VerifyCode_LoginFallback(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42, "login": "ghost", "name": null, "email": null, "avatar_url": ""}`))
	})

	identity, err := v.VerifyCode(context.Background(), "valid-code")
	if err != nil {
		t.Fatalf("VerifyCode failed: %v", err)
	}

	if identity.Name == nil || *identity.Name != "ghost" {
		t.Errorf("Name = %v, want login fallback %q", identity.Name, "ghost")
	}
	if identity.Email != nil {
		t.Errorf("Email = %v, want nil", identity.Email)
	}
	if identity.AvatarURL != nil {
		t.Errorf("AvatarURL = %v, want nil", identity.AvatarURL)
	}
}

func TestVerifier_VerifyCode_MissingUserID(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login": "no-id"}`))
	})

	if _, err := v.VerifyCode(context.Background(), "valid-code"); err == nil {
		t.Fatal("expected error for user response without id")
	}
}

func TestVerifier_VerifyCode_UserAPIError(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	if _, err := v.VerifyCode(context.Background(), "valid-code"); err == nil {
		t.Fatal("expected error for non-200 user API response")
	}
}

func TestVerifier_VerifyCode_BadCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad_verification_code"}`, http.StatusBadRequest)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	v := NewVerifier("client-id", "client-secret", "http://localhost/callback", discardLogger())
	v.config.Endpoint.TokenURL = srv.URL + "/login/oauth/access_token"

	if _, err := v.VerifyCode(context.Background(), "bad-code"); err == nil {
		t.Fatal("expected error for rejected authorization code")
	}
}

func TestVerifier_AuthURL(t *testing.T) {
	v := NewVerifier("client-id", "client-secret", "http://localhost/callback", discardLogger())

	url := v.AuthURL("state-123")
	if url == "" {
		t.Fatal("expected non-empty auth url")
	}
	for _, want := range []string{"client_id=client-id", "state=state-123"} {
		if !strings.Contains(url, want) {
			t.Errorf("AuthURL missing %q: %s", want, url)
		}
	}
}
