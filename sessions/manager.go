package sessions

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Manager ties the cookie token to the session store. It is the only way
// sessions are created, observed, mutated, or destroyed.
type Manager struct {
	store        Store
	symmetricKey []byte
}

// NewManager creates a session manager. The symmetric key must be 32 bytes.
func NewManager(store Store, symmetricKey []byte) *Manager {
	return &Manager{store: store, symmetricKey: symmetricKey}
}

// Create stores a fresh session and sets the cookie token on the response.
func (m *Manager) Create(c *gin.Context, session *Session) error {
	id := uuid.New().String()
	expiry := time.Now().Add(SessionTTL)

	if err := m.store.Save(c.Request.Context(), id, session, SessionTTL); err != nil {
		return err
	}

	token, err := encryptToken(m.symmetricKey, id, expiry)
	if err != nil {
		return err
	}
	setSessionCookie(c, token, SessionTTL)
	return nil
}

// Load resolves the request's session. An absent, malformed, or expired
// cookie, or a session gone from the store, all observe as anonymous
// (nil, nil); only a store failure is an error.
func (m *Manager) Load(c *gin.Context) (*Session, error) {
	id, ok := m.sessionID(c)
	if !ok {
		return nil, nil
	}
	return m.store.Get(c.Request.Context(), id)
}

// Destroy clears all session state unconditionally: the store entry is
// deleted and the cookie is expired.
func (m *Manager) Destroy(c *gin.Context) error {
	defer clearSessionCookie(c)
	id, ok := m.sessionID(c)
	if !ok {
		return nil
	}
	return m.store.Delete(c.Request.Context(), id)
}

// ToggleTheme flips the theme preference on the stored session and
// returns the new value. Anonymous callers get the default theme back
// with no state change.
func (m *Manager) ToggleTheme(c *gin.Context) (string, error) {
	id, ok := m.sessionID(c)
	if !ok {
		return "", nil
	}
	session, err := m.store.Get(c.Request.Context(), id)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", nil
	}

	if session.Theme == "" {
		session.Theme = ThemeDark
	} else {
		session.Theme = ""
	}
	if err := m.store.Save(c.Request.Context(), id, session, SessionTTL); err != nil {
		return "", err
	}
	return session.Theme, nil
}

// sessionID extracts and authenticates the session identifier from the
// cookie. Invalid tokens are treated as anonymous.
func (m *Manager) sessionID(c *gin.Context) (string, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return "", false
	}
	claims, err := decryptToken(m.symmetricKey, token)
	if err != nil {
		log.Printf("Rejecting session cookie: %v", err)
		return "", false
	}
	return claims.SessionID, true
}
