package share

import (
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/alazarbeyenenew2/fileshare/internal/config"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSizePixels = 300

// Folder links render in the dashboard's accent color on white.
var (
	qrForeground = color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	qrBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Service builds shareable folder links and renders them as QR codes.
// Nothing is persisted; every render is request/response.
type Service struct {
	baseURL string
}

// NewService constructs a share service.
func NewService(cfg config.ShareConfig) *Service {
	return &Service{baseURL: cfg.BaseURL}
}

// FolderURL returns the public URL of the folder view.
func (s *Service) FolderURL(folderID string) string {
	return fmt.Sprintf("%s/folder/%s", s.baseURL, folderID)
}

// QRDataURL renders the URL as a PNG QR code wrapped in a data URL, ready
// for an <img> tag.
func (s *Service) QRDataURL(url string) (string, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	qr.ForegroundColor = qrForeground
	qr.BackgroundColor = qrBackground

	png, err := qr.PNG(qrSizePixels)
	if err != nil {
		return "", fmt.Errorf("render qr code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
