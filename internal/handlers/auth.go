package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clientdesk/clientdesk/internal/auth"
	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/interfaces"
	"github.com/clientdesk/clientdesk/internal/models"
)

// stateCookieName holds the OAuth CSRF state between the consent redirect
// and the provider callback. No server-side state exists for the flow.
const stateCookieName = "oauth_state"

// AuthHandler is the request-handling surface of the auth subsystem:
// password signup/login plus the Google OAuth initiation and callback.
type AuthHandler struct {
	logger      *common.Logger
	users       interfaces.UserStorage
	resolver    *auth.Resolver
	issuer      *auth.TokenIssuer
	google      *auth.GoogleProvider
	frontendURL string
	bcryptCost  int
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(
	logger *common.Logger,
	users interfaces.UserStorage,
	resolver *auth.Resolver,
	issuer *auth.TokenIssuer,
	google *auth.GoogleProvider,
	frontendURL string,
	bcryptCost int,
) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		users:       users,
		resolver:    resolver,
		issuer:      issuer,
		google:      google,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
		bcryptCost:  bcryptCost,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleSignup handles POST /auth/signup.
// Creates a local user and returns it with 201. No token is issued on
// signup; the client logs in separately.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		WriteMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logError("signup", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.users.CreateLocal(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			WriteMessage(w, http.StatusConflict, "Email already exists.")
			return
		}
		h.logError("signup", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /auth/login.
// On success returns {success, token, user:{id,name,email}}.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		WriteMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			WriteMessage(w, http.StatusNotFound, "No user found with this email.")
			return
		}
		h.logError("login", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		WriteMessage(w, http.StatusUnauthorized, "Incorrect password.")
		return
	}

	token, err := h.issuer.Issue(user.ID, user.Email)
	if err != nil {
		h.logError("login", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    user.Public(),
	})
}

// HandleGoogleLogin handles GET /auth/google.
// Redirects the browser to the provider consent screen. The CSRF state
// travels in a short-lived cookie; no server-side state is created.
func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := generateState()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusFound)
}

// HandleGoogleCallback handles GET /auth/google/callback.
// On success redirects to <frontend>/login?token=<jwt>. Every failure on
// this path degrades to a redirect back to the login page with an error
// code parameter; no JSON error is ever returned to the browser here.
func (h *AuthHandler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("error") != "" || query.Get("code") == "" {
		h.redirectLoginError(w, r, "denied")
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != query.Get("state") {
		h.redirectLoginError(w, r, "state_mismatch")
		return
	}
	clearCookie(w, stateCookieName)

	token, err := h.google.Exchange(r.Context(), query.Get("code"))
	if err != nil {
		h.logError("oauth callback", err)
		h.redirectLoginError(w, r, "exchange_failed")
		return
	}

	profile, err := h.google.FetchProfile(r.Context(), token)
	if err != nil {
		h.logError("oauth callback", err)
		h.redirectLoginError(w, r, "profile_failed")
		return
	}

	user, err := h.resolver.Resolve(r.Context(), profile)
	if err != nil {
		h.logError("oauth callback", err)
		h.redirectLoginError(w, r, "resolution_failed")
		return
	}

	jwt, err := h.issuer.Issue(user.ID, user.Email)
	if err != nil {
		h.logError("oauth callback", err)
		h.redirectLoginError(w, r, "token_failed")
		return
	}

	http.Redirect(w, r, h.frontendURL+"/login?token="+url.QueryEscape(jwt), http.StatusFound)
}

// HandleLoginForm handles POST /auth/login-form, the server-rendered
// variant of login. Success starts a session via the session cookie and
// lands on the dashboard; failures bounce back to the login page with an
// error code.
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=invalid_form", http.StatusFound)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error=missing_fields", http.StatusFound)
		return
	}

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			http.Redirect(w, r, "/login?error=not_found", http.StatusFound)
			return
		}
		h.logError("login form", err)
		http.Redirect(w, r, "/login?error=server_error", http.StatusFound)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		http.Redirect(w, r, "/login?error=incorrect_password", http.StatusFound)
		return
	}

	token, err := h.issuer.Issue(user.ID, user.Email)
	if err != nil {
		h.logError("login form", err)
		http.Redirect(w, r, "/login?error=server_error", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleSignupForm handles POST /auth/signup-form. A successful signup
// does not start a session; the browser lands on the login page.
func (h *AuthHandler) HandleSignupForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/signup?error=invalid_form", http.StatusFound)
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if name == "" || email == "" || password == "" {
		http.Redirect(w, r, "/signup?error=missing_fields", http.StatusFound)
		return
	}

	hash, err := auth.HashPassword(password, h.bcryptCost)
	if err != nil {
		h.logError("signup form", err)
		http.Redirect(w, r, "/signup?error=server_error", http.StatusFound)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.users.CreateLocal(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			http.Redirect(w, r, "/signup?error=email_exists", http.StatusFound)
			return
		}
		h.logError("signup form", err)
		http.Redirect(w, r, "/signup?error=server_error", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// redirectLoginError sends the browser back to the login page. The error
// code is the only detail exposed; full context is logged server-side.
func (h *AuthHandler) redirectLoginError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.frontendURL+"/login?error="+url.QueryEscape(code), http.StatusFound)
}

func (h *AuthHandler) logError(op string, err error) {
	if h.logger != nil {
		h.logger.Error().Str("op", op).Str("error", err.Error()).Msg("auth request failed")
	}
}

// generateState creates a random token for OAuth CSRF protection.
func generateState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
