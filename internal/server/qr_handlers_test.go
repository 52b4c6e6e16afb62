package server

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQR(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/generate-qr", fiber.Map{
		"url": "https://example.com/u/alice",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, body := readBody(t, resp)
	dataURL := body["qrImageUrl"].(string)
	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8])
}

func TestGenerateQR_MissingURL(t *testing.T) {
	_, app := newTestServer(t)

	for _, req := range []fiber.Map{{}, {"url": ""}, {"url": "   "}} {
		resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/generate-qr", req), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		_, body := readBody(t, resp)
		assert.Equal(t, "url is required", body["error"])
	}
}
