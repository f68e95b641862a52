package mailer

import "embed"

const (
	FROM_NAME                  = "Comitê de Bacias Hidrográficas"
	MAX_RETRY                  = 3
	SIGNATURE_RECEIPT_TEMPLATE = "signature_receipt.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}

// SignatureReceipt is the data of templates/signature_receipt.tmpl
type SignatureReceipt struct {
	OrganizationName string
	SignerName       string
	RecordTitle      string
	SignedAt         string
	ValidationCode   string
	ValidationURL    string
}

// Noop is used when receipts are disabled.
type Noop struct{}

func (Noop) Send(templateFile, toUsername, toEmail string, data any) (int, error) {
	return 0, nil
}
