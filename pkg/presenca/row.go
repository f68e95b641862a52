package presenca

// SignatureRow is one signature already formatted for export.
type SignatureRow struct {
	SignerName     string
	TaxID          string
	Email          string
	Organization   string
	RecordTitle    string
	SignedAt       string
	ValidationCode string
}

// AttendanceDocument is the input of a PDF export: one record and its signatures in display order.
type AttendanceDocument struct {
	RecordID    string
	RecordTitle string
	// Creation date as it should be printed
	CreatedAt string
	Rows      []SignatureRow
}

// DocumentCode derives the code printed on the PDF footer from the record id.
func DocumentCode(recordID string) string {
	code := recordID
	if len(code) > 8 {
		code = code[:8]
	}
	return "ATA" + upperASCII(code)
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
