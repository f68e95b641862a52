package presenca

import (
	"fmt"
	"regexp"
	"time"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

func underscoreSpaces(s string) string {
	return whitespaceRun.ReplaceAllString(s, "_")
}

// CSVFilename names a CSV export. An empty recordTitle means the export covers every record.
func CSVFilename(recordTitle string, now time.Time) string {
	if recordTitle == "" {
		return fmt.Sprintf("lista_presenca_%s.csv", now.UTC().Format("2006-01-02"))
	}
	return fmt.Sprintf("lista_presenca_%s.csv", underscoreSpaces(recordTitle))
}

func PDFFilename(recordTitle string) string {
	return fmt.Sprintf("Lista_Presenca_%s.pdf", underscoreSpaces(recordTitle))
}
