package presenca

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCSVFilename(t *testing.T) {
	now := time.Date(2025, 4, 9, 23, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

	assert.Equal(t, "lista_presenca_ATA_01/2025.csv", CSVFilename("ATA 01/2025", now))
	assert.Equal(t, "lista_presenca_Reunião_Ordinária.csv", CSVFilename("Reunião   Ordinária", now))
	// ISO date is taken in UTC
	assert.Equal(t, "lista_presenca_2025-04-10.csv", CSVFilename("", now))
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "Lista_Presenca_ATA_01/2025.pdf", PDFFilename("ATA 01/2025"))
}
