package presenca

import (
	"fmt"
	"os"
)

type Config struct {
	// Printed on the first line of every PDF
	OrganizationName string
	// Printed on the PDF footer and encoded in its QR code
	VerificationURL string
	// Directory where the temporary files are stored during processing, the file will be deleted after processing
	TmpDir string
	// Side of the footer QR code in pixels, 1px is rendered as 1pt
	QRCodeSize int
}

func NewDefaultConfig(organizationName, verificationURL string) *Config {
	cfg := Config{
		OrganizationName: organizationName,
		VerificationURL:  verificationURL,
		TmpDir:           fmt.Sprintf("%s/presenca/generate/tmp", os.TempDir()),
		QRCodeSize:       85,
	}

	// 0755 mean owner can read, write and execute
	if err := os.MkdirAll(cfg.TmpDir, 0755); err != nil {
		fmt.Printf("Error creating tmp directory: %v\n", err)
	}

	return &cfg
}
