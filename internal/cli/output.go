package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/comite-bacias/presenca/internal/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRecords(w io.Writer, records []model.Record, counts map[string]int) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tSIGNATURES\tCREATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.Title, r.Status, counts[r.ID], r.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func writeSignature(w io.Writer, s model.Signature, signedAt string) {
	fmt.Fprintf(w, "Nome: %s\n", s.SignerName)
	fmt.Fprintf(w, "CPF: %s\n", s.TaxID)
	fmt.Fprintf(w, "Órgão/Instituição: %s\n", s.Organization)
	fmt.Fprintf(w, "ATA: %s\n", s.RecordTitle)
	fmt.Fprintf(w, "Data/Hora: %s\n", signedAt)
	fmt.Fprintf(w, "Código de validação: %s\n", s.ValidationCode)
}
