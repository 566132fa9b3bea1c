// Package qrimg renders text payloads as square QR symbols.
package qrimg

import (
	"math"

	qrcode "github.com/skip2/go-qrcode"

	"qrsheets/internal/errs"
)

// Oversample is the pixel-per-point factor used when rasterizing, so a
// symbol placed at its target point size stays crisp in print.
const Oversample = 4

// Encode renders payload as a PNG QR symbol sized for placement in a square
// of sidePt points. Error correction is level M and the quiet-zone border is
// kept so the printed symbol scans reliably. Payloads over the symbol
// capacity fail with an encoding error.
func Encode(payload string, sidePt float64) ([]byte, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errs.Encoding(err, "payload %q does not fit a QR symbol", payload)
	}

	px := int(math.Round(sidePt * Oversample))
	png, err := q.PNG(px)
	if err != nil {
		return nil, errs.Encoding(err, "render QR symbol at %dpx", px)
	}
	return png, nil
}
