package attendance

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/comite-bacias/presenca/pkg/presenca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExporter(t *testing.T, s *Store) *Exporter {
	t.Helper()
	pdf := presenca.NewPDFGenerator(&presenca.Config{
		OrganizationName: "Comitê de Bacias Hidrográficas",
		VerificationURL:  "http://localhost:5173/",
		TmpDir:           t.TempDir(),
		QRCodeSize:       85,
	})
	e := NewExporter(s, pdf, time.FixedZone("BRT", -3*60*60))
	e.now = func() time.Time { return fixedNow }
	return e
}

func TestExportScenario(t *testing.T) {
	s := newTestStore(newFakePort())
	e := newTestExporter(t, s)

	r, _, err := s.CreateRecord("ATA 01/2025")
	require.NoError(t, err)
	sig, _, err := s.SubmitSignature(r.ID, validFields())
	require.NoError(t, err)

	csv, err := e.CSV(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "lista_presenca_ATA_01/2025.csv", csv.Filename)
	assert.Equal(t, ContentTypeCSV, csv.ContentType)

	lines := strings.Split(string(csv.Content), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, presenca.CSVHeader, lines[0])
	assert.Equal(t,
		`"Maria Silva","123.456.789-01","m@x.com","Secretaria","ATA 01/2025","10/04/2025, 14:30:00","`+sig.ValidationCode+`"`,
		lines[1])

	all, err := e.CSV("")
	require.NoError(t, err)
	assert.Equal(t, "lista_presenca_2025-04-10.csv", all.Filename)

	pdf, err := e.PDF(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lista_Presenca_ATA_01/2025.pdf", pdf.Filename)
	assert.Equal(t, 1, pdf.PageCount)
	assert.True(t, bytes.HasPrefix(pdf.Content, []byte("%PDF")))
}

func TestExportEmpty(t *testing.T) {
	s := newTestStore(newFakePort())
	e := newTestExporter(t, s)

	r, _, err := s.CreateRecord("Vazia")
	require.NoError(t, err)
	before := s.ListRecords()

	_, err = e.CSV(r.ID)
	assert.ErrorIs(t, err, ErrEmptyExport)
	_, err = e.PDF(r.ID)
	assert.ErrorIs(t, err, ErrEmptyExport)
	_, err = e.CSV("")
	assert.ErrorIs(t, err, ErrEmptyExport)

	assert.Equal(t, before, s.ListRecords())
	assert.Empty(t, s.ListSignatures(""))
}

func TestExportUnknownRecord(t *testing.T) {
	e := newTestExporter(t, newTestStore(newFakePort()))

	_, err := e.CSV("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = e.PDF("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
