package sessions

import "time"

const (
	// CookieName is the browser cookie carrying the encrypted session token.
	CookieName = "session_token"

	// SessionTTL bounds how long an authenticated session lives, both in
	// the store and in the cookie token.
	SessionTTL = 24 * time.Hour

	// ThemeDark is the only non-default theme preference.
	ThemeDark = "dark"
)

// Session is the authenticated state tracked for one browser client.
// It exists in exactly two observable states: absent (anonymous) or
// populated with the identity captured at login.
type Session struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Theme    string `json:"theme,omitempty"`
}
