package presenca

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *PDFGenerator {
	t.Helper()
	return NewPDFGenerator(&Config{
		OrganizationName: "Comitê de Bacias Hidrográficas",
		VerificationURL:  "http://localhost:5173/",
		TmpDir:           t.TempDir(),
		QRCodeSize:       85,
	})
}

func sampleDocument(rows int) AttendanceDocument {
	doc := AttendanceDocument{
		RecordID:    "3f2a9c1b-77aa-4e1d-9a55-0c2b1e7d9f00",
		RecordTitle: "ATA 01/2025",
		CreatedAt:   "10/04/2025, 14:00:00",
	}
	for i := 0; i < rows; i++ {
		r := sampleRow()
		r.SignerName = fmt.Sprintf("Participante %02d", i+1)
		doc.Rows = append(doc.Rows, r)
	}
	return doc
}

func TestPDFGeneratorGenerate(t *testing.T) {
	tests := []struct {
		name         string
		rows         int
		minPageCount int
		maxPageCount int
	}{
		{"Single signature", 1, 1, 1},
		{"Paginated", 80, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t)

			pdf, err := g.Generate(sampleDocument(tt.rows))
			require.NoError(t, err)

			assert.True(t, bytes.HasPrefix(pdf.Content, []byte("%PDF")))
			assert.GreaterOrEqual(t, pdf.PageCount, tt.minPageCount)
			assert.LessOrEqual(t, pdf.PageCount, tt.maxPageCount)
		})
	}
}

func TestPDFGeneratorCleansWorkDir(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.Generate(sampleDocument(2))
	require.NoError(t, err)

	entries, err := os.ReadDir(g.cfg.TmpDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, "fonts", e.Name())
	}
}

func TestPDFGeneratorEmpty(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.Generate(sampleDocument(0))
	assert.ErrorIs(t, err, ErrEmptyExport)
}

func TestPDFGeneratorRequiresVerificationURL(t *testing.T) {
	g := newTestGenerator(t)
	g.cfg.VerificationURL = ""

	_, err := g.Generate(sampleDocument(1))
	assert.Error(t, err)
}

func TestFooterLines(t *testing.T) {
	lines := footerLines(sampleDocument(3), "https://presenca.example.org/")

	assert.Equal(t, []string{
		"A autenticidade deste documento pode ser conferida no site:",
		"https://presenca.example.org/",
		"Código do documento: ATA3F2A9C1B",
		"Total de assinaturas: 3",
	}, lines)
}

func TestLayoutFooterPlacement(t *testing.T) {
	g := newTestGenerator(t)
	f, err := g.loadFaces()
	require.NoError(t, err)

	moved := 0
	for rows := 1; rows <= 80; rows++ {
		lb := &layoutBuilder{cfg: g.cfg, faces: f}
		footerY := lb.build(sampleDocument(rows))

		// the footer is always on the last page
		assert.Equal(t, len(lb.pages)-1, lb.footerPage, "rows=%d", rows)
		assert.True(t, footerFits(footerY), "rows=%d", rows)

		if lb.footerPage == lb.tableEndPage {
			assert.Equal(t, lb.tableEndY+footerGap, footerY, "rows=%d", rows)
			continue
		}

		moved++
		assert.Equal(t, lb.tableEndPage+1, lb.footerPage, "rows=%d", rows)
		assert.Equal(t, footerGap, footerY, "rows=%d", rows)
		assert.False(t, footerFits(lb.tableEndY+footerGap), "rows=%d", rows)
	}

	// a table ending low on a page must push the footer to a page of its own
	assert.Positive(t, moved)
}

var xObjectDraw = regexp.MustCompile(`/[^\s/]+\s+Do\b`)

// drawnImages counts XObject draws in the content stream of every page.
func drawnImages(t *testing.T, content []byte, pageCount int) []int {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(path, content, 0644))

	counts := make([]int, pageCount)
	for i := range counts {
		pageDir := filepath.Join(dir, "page"+strconv.Itoa(i+1))
		require.NoError(t, os.MkdirAll(pageDir, 0755))
		require.NoError(t, api.ExtractContentFile(path, pageDir, []string{strconv.Itoa(i + 1)}, nil))

		entries, err := os.ReadDir(pageDir)
		require.NoError(t, err)
		for _, e := range entries {
			b, err := os.ReadFile(filepath.Join(pageDir, e.Name()))
			require.NoError(t, err)
			counts[i] += len(xObjectDraw.FindAll(b, -1))
		}
	}
	return counts
}

func TestPDFGeneratorQRCodeOnLastPageOnly(t *testing.T) {
	for _, rows := range []int{1, 80} {
		t.Run(strconv.Itoa(rows)+" rows", func(t *testing.T) {
			g := newTestGenerator(t)

			pdf, err := g.Generate(sampleDocument(rows))
			require.NoError(t, err)

			counts := drawnImages(t, pdf.Content, pdf.PageCount)
			last := len(counts) - 1
			assert.Equal(t, 1, counts[last])
			for i := 0; i < last; i++ {
				assert.Zero(t, counts[i], "page %d", i+1)
			}
		})
	}
}
