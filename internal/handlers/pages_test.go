package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestPageHandler(t *testing.T) (*PageHandler, string) {
	t.Helper()
	issuer := newTestIssuer(t)
	token, err := issuer.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return NewPageHandler(nil, issuer), token
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginPageCapturesToken(t *testing.T) {
	h, token := newTestPageHandler(t)

	req := httptest.NewRequest("GET", "/login?token="+token, nil)
	rec := httptest.NewRecorder()
	h.HandleLoginPage(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatal("token was not persisted to the session cookie")
	}
	if cookie.Value != token {
		t.Error("cookie does not carry the captured token")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	// The redirect strips the token from the visible URL.
	location := rec.Header().Get("Location")
	if location != "/login" {
		t.Errorf("redirect = %q, want /login", location)
	}
	if strings.Contains(location, "token") {
		t.Error("token leaked into the visible URL")
	}
}

func TestLoginPageRedirectsActiveSession(t *testing.T) {
	h, token := newTestPageHandler(t)

	req := httptest.NewRequest("GET", "/login", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.HandleLoginPage(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestLoginPageRendersForm(t *testing.T) {
	h, _ := newTestPageHandler(t)

	rec := httptest.NewRecorder()
	h.HandleLoginPage(rec, httptest.NewRequest("GET", "/login", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/auth/google") {
		t.Error("login page missing Google sign-in link")
	}
}

func TestLoginPageShowsErrorNotice(t *testing.T) {
	h, _ := newTestPageHandler(t)

	rec := httptest.NewRecorder()
	h.HandleLoginPage(rec, httptest.NewRequest("GET", "/login?error=state_mismatch", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sign-in failed") {
		t.Error("error notice not rendered")
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	h, _ := newTestPageHandler(t)

	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestDashboardRejectsInvalidCookie(t *testing.T) {
	h, _ := newTestPageHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestDashboardWithSession(t *testing.T) {
	h, token := newTestPageHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "alice@example.com") {
		t.Error("dashboard missing signed-in identity")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h, token := newTestPageHandler(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.HandleLogout(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatal("logout did not touch the session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Error("session cookie was not cleared")
	}
}
