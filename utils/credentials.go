package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	passwordAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	usernameSuffixDigits = 4

	// GeneratedPasswordLength is the length of auto-provisioned patient passwords.
	GeneratedPasswordLength = 10
)

// UsernameBase derives the username stem for an auto-provisioned patient
// account: the first whitespace-delimited token of the patient's name,
// lower-cased. A name without whitespace is used whole.
func UsernameBase(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// DeriveUsername builds a username candidate from a patient name by
// appending four random decimal digits to the stem.
func DeriveUsername(name string) (string, error) {
	base := UsernameBase(name)
	if base == "" {
		return "", fmt.Errorf("cannot derive username from empty name")
	}
	suffix, err := randomDigits(usernameSuffixDigits)
	if err != nil {
		return "", err
	}
	return base + suffix, nil
}

// GeneratePassword returns a random alphanumeric password of length n.
func GeneratePassword(n int) (string, error) {
	return randomString(n, passwordAlphabet)
}

func randomDigits(n int) (string, error) {
	return randomString(n, "0123456789")
}

func randomString(n int, alphabet string) (string, error) {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random string: %w", err)
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}
