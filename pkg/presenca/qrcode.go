package presenca

import (
	"fmt"

	"github.com/skip2/go-qrcode"
	qrsvg "github.com/wamuir/svg-qr-code"
)

// GenerateQRCodePNG encodes link as a square PNG of size x size pixels.
func GenerateQRCodePNG(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// If generate qr code for pdf file, size 85 (30mm at 72 dpi) matches the footer box
func GenerateQRCodeFile(link, outputPath string, size int) error {
	err := qrcode.WriteFile(link, qrcode.Medium, size, outputPath)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	return nil
}

func GenerateQRCodeSVG(link string) (string, error) {
	qr, err := qrsvg.New(link)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}
	return qr.String(), nil
}
