package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(sessionID uuid.UUID) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the session receipt as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(sessionID uuid.UUID) ([]byte, error) {
	link := fmt.Sprintf("%s/api/tables-sessions/%s", strings.TrimRight(g.BaseURL, "/"), sessionID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
