package sessions

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

// tokenClaims is the payload of the cookie token: the opaque session
// identifier plus an expiry mirrored from the store's TTL.
type tokenClaims struct {
	SessionID string    `json:"sessionId"`
	Expiry    time.Time `json:"expiry"`
}

// encryptToken seals the session identifier into a PASETO v2 token.
func encryptToken(symmetricKey []byte, sessionID string, expiry time.Time) (string, error) {
	claims := tokenClaims{
		SessionID: sessionID,
		Expiry:    expiry,
	}
	token, err := paseto.NewV2().Encrypt(symmetricKey, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return token, nil
}

// decryptToken opens a cookie token and rejects it when expired.
func decryptToken(symmetricKey []byte, tokenString string) (*tokenClaims, error) {
	var claims tokenClaims
	if err := paseto.NewV2().Decrypt(tokenString, symmetricKey, &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt session token: %w", err)
	}
	if time.Now().After(claims.Expiry) {
		return nil, errors.New("session token expired")
	}
	return &claims, nil
}
