package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameBase(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "first token of a full name", in: "John Smith", want: "john"},
		{name: "single token used whole", in: "Amara", want: "amara"},
		{name: "lowercases", in: "MARIA Lopez Garcia", want: "maria"},
		{name: "leading whitespace ignored", in: "  Chen Wei", want: "chen"},
		{name: "empty name", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UsernameBase(tc.in))
		})
	}
}

func TestDeriveUsername(t *testing.T) {
	username, err := DeriveUsername("John Smith")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^john\d{4}$`), username)

	username, err = DeriveUsername("Amara")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^amara\d{4}$`), username)

	_, err = DeriveUsername("   ")
	assert.Error(t, err)
}

func TestGeneratePassword(t *testing.T) {
	password, err := GeneratePassword(GeneratedPasswordLength)
	require.NoError(t, err)
	assert.Len(t, password, GeneratedPasswordLength)
	for _, r := range password {
		assert.True(t, strings.ContainsRune(passwordAlphabet, r), "unexpected character %q", r)
	}

	// Two generated passwords colliding would be astronomically unlikely.
	other, err := GeneratePassword(GeneratedPasswordLength)
	require.NoError(t, err)
	assert.NotEqual(t, password, other)
}
