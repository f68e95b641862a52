package presenca

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

/*
 * Attention: tdewolff/canvas uses mm as the unit of measurement. pdfcpu works in points,
 * so positions are converted with mmToPt right before embedding.
 */

const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	mmToPt       = 72 / 25.4

	tableStartY       = 55.0
	tableContinuedY   = 15.0
	tableBottomLimit  = pageHeightMM - 15
	cellPadding       = 1.5
	footerGap         = 20.0
	footerLineSpacing = 5.0
	footerX           = 20.0
	qrX               = 160.0
	qrSideMM          = 30.0
)

type tableColumn struct {
	title string
	width float64
}

var tableColumns = []tableColumn{
	{"Nome", 40},
	{"CPF", 30},
	{"E-mail", 45},
	{"Entidade", 45},
	{"Código", 25},
}

var (
	headerFill = color.RGBA{R: 41, G: 128, B: 185, A: 255}
	gridColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

func tableWidth() float64 {
	w := 0.0
	for _, c := range tableColumns {
		w += c.width
	}
	return w
}

type PDFGenerator struct {
	cfg   *Config
	fonts *FontLoader
}

type GeneratedPDF struct {
	Content   []byte
	PageCount int
}

func NewPDFGenerator(cfg *Config) *PDFGenerator {
	return &PDFGenerator{
		cfg:   cfg,
		fonts: NewFontLoader(cfg),
	}
}

type faces struct {
	org, label, title, cell, head, link *canvas.FontFace
}

func (g *PDFGenerator) loadFaces() (*faces, error) {
	specs := []Font{
		{Size: 16, Color: "#000000", Weight: FontWeightBold},
		{Size: 14, Color: "#000000", Weight: FontWeightBold},
		{Size: 12, Color: "#000000", Weight: FontWeightRegular},
		{Size: 9, Color: "#000000", Weight: FontWeightRegular},
		{Size: 9, Color: "#FFFFFF", Weight: FontWeightBold},
		{Size: 9, Color: "#0000FF", Weight: FontWeightRegular},
	}

	loaded := make([]*canvas.FontFace, len(specs))
	for i, f := range specs {
		face, err := g.fonts.Face(f)
		if err != nil {
			return nil, err
		}
		loaded[i] = face
	}

	return &faces{
		org:   loaded[0],
		label: loaded[1],
		title: loaded[2],
		cell:  loaded[3],
		head:  loaded[4],
		link:  loaded[5],
	}, nil
}

// Generate renders the attendance list of one record. The QR code of the verification url
// is embedded on the last page, next to the footer.
func (g *PDFGenerator) Generate(doc AttendanceDocument) (*GeneratedPDF, error) {
	if len(doc.Rows) == 0 {
		return nil, ErrEmptyExport
	}
	if g.cfg.VerificationURL == "" {
		return nil, errors.New("verification url is empty")
	}

	f, err := g.loadFaces()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.cfg.TmpDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tmp directory: %w", err)
	}
	workDir, err := os.MkdirTemp(g.cfg.TmpDir, "pdf-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	lb := &layoutBuilder{cfg: g.cfg, faces: f}
	footerY := lb.build(doc)

	pagePaths := make([]string, len(lb.pages))
	for i, c := range lb.pages {
		pagePaths[i] = filepath.Join(workDir, fmt.Sprintf("page_%03d.pdf", i+1))
		if err := renderers.Write(pagePaths[i], c); err != nil {
			return nil, fmt.Errorf("failed to write PDF: %w", err)
		}
	}

	mergedPath := filepath.Join(workDir, "merged.pdf")
	if err := MergePdfFiles(pagePaths, mergedPath); err != nil {
		return nil, err
	}

	qrPath := filepath.Join(workDir, "qrcode.png")
	if err := GenerateQRCodeFile(g.cfg.VerificationURL, qrPath, g.cfg.QRCodeSize); err != nil {
		return nil, err
	}

	outPath := filepath.Join(workDir, "out.pdf")
	lastPage := strconv.Itoa(len(lb.pages))
	if err := EmbedQRCodeToPdf(mergedPath, outPath, qrPath, []string{lastPage}, qrX*mmToPt, (footerY-5)*mmToPt); err != nil {
		return nil, err
	}

	pageCount, err := GetPageCount(outPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read generated PDF: %w", err)
	}

	return &GeneratedPDF{
		Content:   content,
		PageCount: pageCount,
	}, nil
}

type layoutBuilder struct {
	cfg   *Config
	faces *faces
	pages []*canvas.Canvas
	ctx   *canvas.Context
	y     float64

	// where the last table row ended and where the footer went, pages counted from 0
	tableEndY    float64
	tableEndPage int
	footerPage   int
}

func (lb *layoutBuilder) newPage() {
	c := canvas.New(pageWidthMM, pageHeightMM)
	ctx := canvas.NewContext(c)
	// Change coordination from bottom-left to top-left
	ctx.SetCoordSystem(canvas.CartesianIV)

	lb.pages = append(lb.pages, c)
	lb.ctx = ctx
}

// Draws text with its top-left corner at x, y and returns the height it took.
func (lb *layoutBuilder) drawText(face *canvas.FontFace, text string, x, y, width float64, align canvas.TextAlign) float64 {
	textBox := canvas.NewTextBox(face, text, width, 0, align, canvas.Top, 0.0, 0.0)
	lb.ctx.DrawText(x, y, textBox)
	return textBox.Bounds().H()
}

func (lb *layoutBuilder) drawCentered(face *canvas.FontFace, text string, y float64) {
	lb.drawText(face, text, 0, y, pageWidthMM, canvas.Center)
}

// build lays out all pages and returns the y of the footer's first line on the last page.
func (lb *layoutBuilder) build(doc AttendanceDocument) float64 {
	lb.newPage()

	lb.drawCentered(lb.faces.org, lb.cfg.OrganizationName, 14)
	lb.drawCentered(lb.faces.label, "LISTA DE PRESENÇA", 25)
	lb.drawCentered(lb.faces.title, doc.RecordTitle, 33.5)
	lb.drawCentered(lb.faces.title, "Data de criação: "+doc.CreatedAt, 40.5)

	lb.y = tableStartY
	header := make([]string, len(tableColumns))
	for i, c := range tableColumns {
		header[i] = c.title
	}
	lb.drawRow(header, lb.faces.head, headerFill)

	for _, r := range doc.Rows {
		cells := []string{r.SignerName, r.TaxID, r.Email, r.Organization, r.ValidationCode}
		if lb.y+lb.rowHeight(cells, lb.faces.cell) > tableBottomLimit {
			lb.newPage()
			lb.y = tableContinuedY
			lb.drawRow(header, lb.faces.head, headerFill)
		}
		lb.drawRow(cells, lb.faces.cell, canvas.Transparent)
	}

	lb.tableEndY = lb.y
	lb.tableEndPage = len(lb.pages) - 1

	footerY := lb.y + footerGap
	if !footerFits(footerY) {
		lb.newPage()
		footerY = footerGap
	}
	lb.footerPage = len(lb.pages) - 1
	lb.drawFooter(doc, footerY)

	return footerY
}

// The QR code hangs 5mm above the footer and must keep a 10mm bottom margin.
func footerFits(footerY float64) bool {
	return footerY-5+qrSideMM <= pageHeightMM-10
}

func (lb *layoutBuilder) rowHeight(cells []string, face *canvas.FontFace) float64 {
	h := 0.0
	for i, c := range tableColumns {
		textBox := canvas.NewTextBox(face, cells[i], c.width-2*cellPadding, 0, canvas.Left, canvas.Top, 0.0, 0.0)
		h = max(h, textBox.Bounds().H())
	}
	return h + 2*cellPadding
}

func (lb *layoutBuilder) drawRow(cells []string, face *canvas.FontFace, fill color.Color) {
	rowH := lb.rowHeight(cells, face)
	x := (pageWidthMM - tableWidth()) / 2

	lb.ctx.SetStrokeColor(gridColor)
	lb.ctx.SetStrokeWidth(0.1)
	for i, c := range tableColumns {
		lb.ctx.SetFillColor(fill)
		lb.ctx.DrawPath(x, lb.y, canvas.Rectangle(c.width, rowH))
		lb.drawText(face, cells[i], x+cellPadding, lb.y+cellPadding, c.width-2*cellPadding, canvas.Left)
		x += c.width
	}

	lb.y += rowH
}

// footerLines returns the footer text top to bottom. The second line is the verification url.
func footerLines(doc AttendanceDocument, verificationURL string) []string {
	return []string{
		"A autenticidade deste documento pode ser conferida no site:",
		verificationURL,
		"Código do documento: " + DocumentCode(doc.RecordID),
		"Total de assinaturas: " + strconv.Itoa(len(doc.Rows)),
	}
}

func (lb *layoutBuilder) drawFooter(doc AttendanceDocument, y float64) {
	width := qrX - footerX - 5
	for i, line := range footerLines(doc, lb.cfg.VerificationURL) {
		face := lb.faces.cell
		if i == 1 {
			face = lb.faces.link
		}
		lb.drawText(face, line, footerX, y+float64(i)*footerLineSpacing, width, canvas.Left)
	}
}
