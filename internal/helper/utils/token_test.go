package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomToken_LengthAndAlphabet(t *testing.T) {
	token, err := RandomToken(16)
	require.NoError(t, err)

	assert.Len(t, token, 16)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), token)
}

func TestRandomToken_Unique(t *testing.T) {
	a, err := RandomToken(16)
	require.NoError(t, err)
	b, err := RandomToken(16)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
