package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/clientdesk/clientdesk/internal/auth"
	"github.com/clientdesk/clientdesk/internal/common"
)

// sessionCookieName is the durable client-side storage for the bearer
// token on the portal surface.
const sessionCookieName = "clientdesk_session"

// PageHandler is the client session holder: it captures the token handed
// over in the OAuth redirect URL, persists it as a session cookie, and
// gates page access. There is no client-side expiry bookkeeping; an
// expired cookie simply fails verification on the next page load.
type PageHandler struct {
	logger *common.Logger
	issuer *auth.TokenIssuer
}

// NewPageHandler creates a new page handler.
func NewPageHandler(logger *common.Logger, issuer *auth.TokenIssuer) *PageHandler {
	return &PageHandler{logger: logger, issuer: issuer}
}

// IsLoggedIn checks the session cookie and verifies its token.
// Returns (true, claims) if valid, (false, nil) otherwise.
func IsLoggedIn(r *http.Request, issuer *auth.TokenIssuer) (bool, *auth.Claims) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return false, nil
	}

	claims, err := issuer.Verify(cookie.Value)
	if err != nil {
		return false, nil
	}

	return true, claims
}

// HandleLoginPage handles GET /login.
//
// A token query parameter (the OAuth handoff) is persisted as an HttpOnly
// cookie and then stripped from the visible URL by redirecting back to
// /login, keeping the token out of browser history and referrers. With an
// active session the page redirects to the dashboard; otherwise it
// renders the login form.
func (h *PageHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if token := r.URL.Query().Get("token"); token != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if loggedIn, _ := IsLoggedIn(r, h.issuer); loggedIn {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	errCode := r.URL.Query().Get("error")
	notice := ""
	if errCode != "" {
		notice = `<p class="error">Sign-in failed. Please try again.</p>`
	}

	writePage(w, "Sign in", notice+`
		<form method="post" action="/auth/login-form">
			<input name="email" type="email" placeholder="Email" required>
			<input name="password" type="password" placeholder="Password" required>
			<button type="submit">Sign in</button>
		</form>
		<p><a href="/auth/google">Sign in with Google</a></p>
		<p><a href="/signup">Create an account</a></p>`)
}

// HandleSignupPage handles GET /signup. Redirects away when a session is
// already active.
func (h *PageHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	if loggedIn, _ := IsLoggedIn(r, h.issuer); loggedIn {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	notice := ""
	if r.URL.Query().Get("error") != "" {
		notice = `<p class="error">Signup failed. Please try again.</p>`
	}

	writePage(w, "Sign up", notice+`
		<form method="post" action="/auth/signup-form">
			<input name="name" type="text" placeholder="Name" required>
			<input name="email" type="email" placeholder="Email" required>
			<input name="password" type="password" placeholder="Password" required>
			<button type="submit">Create account</button>
		</form>
		<p><a href="/login">Already have an account?</a></p>`)
}

// HandleDashboard handles GET /. Protected: without a valid session the
// browser is sent to the login page.
func (h *PageHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteErrorEnvelope(w, http.StatusNotFound, "Route not found")
		return
	}

	loggedIn, claims := IsLoggedIn(r, h.issuer)
	if !loggedIn {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	writePage(w, "Dashboard", fmt.Sprintf(`
		<p>Signed in as %s.</p>
		<form method="post" action="/logout"><button type="submit">Sign out</button></form>`,
		html.EscapeString(claims.Email)))
}

// HandleLogout clears the session cookie and redirects to the login page.
func (h *PageHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, sessionCookieName)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// writePage renders the minimal portal chrome around a content fragment.
func writePage(w http.ResponseWriter, title, content string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>%s — ClientDesk</title></head>
<body>
<h1>%s</h1>
%s
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), content)
}
