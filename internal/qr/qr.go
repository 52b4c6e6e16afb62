// Package qr renders URL strings as QR symbols embedded in data URLs.
package qr

import (
	"encoding/base64"
	"strings"

	"folio/internal/models"

	qrcode "github.com/skip2/go-qrcode"
)

// SymbolSize is the fixed edge length in pixels of generated QR images.
const SymbolSize = 200

// Generate encodes the literal url string as a 200x200 PNG QR symbol and
// returns it as a data URL. Pure and stateless.
func Generate(url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", models.NewValidationError("url is required")
	}

	png, err := qrcode.Encode(url, qrcode.Medium, SymbolSize)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
