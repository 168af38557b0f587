package session

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieName is the name of the session cookie.
const CookieName = "session-cookie"

// Manager carries the session token in a signed, HttpOnly cookie and
// resolves it against the backing store.
type Manager struct {
	store  Store
	codec  *securecookie.SecureCookie
	maxAge int
}

func NewManager(store Store, secret []byte, ttl time.Duration) *Manager {
	codec := securecookie.New(secret, nil)
	codec.MaxAge(int(ttl.Seconds()))

	return &Manager{
		store:  store,
		codec:  codec,
		maxAge: int(ttl.Seconds()),
	}
}

// Issue creates a session for username and sets the cookie on the response.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, username string) error {
	token, err := m.store.Create(r.Context(), username)
	if err != nil {
		return err
	}

	encoded, err := m.codec.Encode(CookieName, token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   m.maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Current resolves the request's session cookie to a username. ok is false
// for missing, malformed, expired, or destroyed sessions.
func (m *Manager) Current(r *http.Request) (string, bool) {
	token, ok := m.token(r)
	if !ok {
		return "", false
	}

	username, ok, err := m.store.Resolve(r.Context(), token)
	if err != nil || !ok {
		return "", false
	}
	return username, true
}

// Clear destroys the request's session, if any, and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	if token, ok := m.token(r); ok {
		if err := m.store.Destroy(r.Context(), token); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	var token string
	if err := m.codec.Decode(CookieName, cookie.Value, &token); err != nil {
		return "", false
	}
	return token, true
}
