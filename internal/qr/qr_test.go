package qr

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"folio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	out, err := Generate("https://example.com/u/alice")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/png;base64,"))
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8], "payload must be a PNG")
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate("https://example.com")
	require.NoError(t, err)
	second, err := Generate("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same input yields the same symbol")
}

func TestGenerate_EncodesLiterally(t *testing.T) {
	// Non-URL text is encoded as-is; no validation of the content.
	out, err := Generate("not a url at all")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"))
}

func TestGenerate_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := Generate(input)
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
}
