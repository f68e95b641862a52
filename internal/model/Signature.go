package model

import "time"

// SignatureFields is the signing form draft. All fields are required.
type SignatureFields struct {
	SignerName   string `json:"signerName" form:"signerName" validate:"strNotEmpty"`
	TaxID        string `json:"taxId" form:"taxId" validate:"strNotEmpty"`
	Email        string `json:"email" form:"email" validate:"strNotEmpty"`
	Organization string `json:"organization" form:"organization" validate:"strNotEmpty"`
}

type Signature struct {
	ID       string `json:"id"`
	RecordID string `json:"recordId"`
	// Title of the record at signing time, shown by validation and CSV export.
	RecordTitle    string    `json:"recordTitle"`
	SignerName     string    `json:"signerName"`
	TaxID          string    `json:"taxId"`
	Email          string    `json:"email"`
	Organization   string    `json:"organization"`
	ValidationCode string    `json:"validationCode"`
	SignedAt       time.Time `json:"signedAt"`
}

func (s Signature) SignedAtDisplay(loc *time.Location) string {
	return FormatDisplayTime(s.SignedAt, loc)
}
