package presenca

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const CSVHeader = "Nome,CPF,E-mail,Entidade,ATA,Data/Hora,Código de Validação"

// ExportCSV writes the header followed by one line per row, every value wrapped in double quotes.
// Embedded quotes are written as they are and the last line has no trailing newline.
func ExportCSV(w io.Writer, rows []SignatureRow) error {
	if len(rows) == 0 {
		return ErrEmptyExport
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range rows {
		fields := []string{r.SignerName, r.TaxID, r.Email, r.Organization, r.RecordTitle, r.SignedAt, r.ValidationCode}
		for i := range fields {
			fields[i] = `"` + fields[i] + `"`
		}

		if _, err := bw.WriteString("\n" + strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	return bw.Flush()
}

// CSVBytes is ExportCSV into memory.
func CSVBytes(rows []SignatureRow) ([]byte, error) {
	var sb strings.Builder
	if err := ExportCSV(&sb, rows); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
