package attendance

import (
	"time"

	"github.com/comite-bacias/presenca/internal/model"
	"github.com/comite-bacias/presenca/pkg/presenca"
)

const (
	ContentTypeCSV = "text/csv;charset=utf-8"
	ContentTypePDF = "application/pdf"
)

type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	// Only set for PDF exports
	PageCount int
}

// Exporter turns store contents into CSV and PDF downloads.
type Exporter struct {
	store *Store
	pdf   *presenca.PDFGenerator
	loc   *time.Location
	now   func() time.Time
}

func NewExporter(store *Store, pdf *presenca.PDFGenerator, loc *time.Location) *Exporter {
	return &Exporter{
		store: store,
		pdf:   pdf,
		loc:   loc,
		now:   time.Now,
	}
}

func SignatureRows(signatures []model.Signature, loc *time.Location) []presenca.SignatureRow {
	rows := make([]presenca.SignatureRow, len(signatures))
	for i, s := range signatures {
		rows[i] = presenca.SignatureRow{
			SignerName:     s.SignerName,
			TaxID:          s.TaxID,
			Email:          s.Email,
			Organization:   s.Organization,
			RecordTitle:    s.RecordTitle,
			SignedAt:       s.SignedAtDisplay(loc),
			ValidationCode: s.ValidationCode,
		}
	}
	return rows
}

// CSV exports one record, or every signature when recordID is empty.
func (e *Exporter) CSV(recordID string) (*ExportFile, error) {
	title := ""
	if recordID != "" {
		record, err := e.store.GetRecord(recordID)
		if err != nil {
			return nil, err
		}
		title = record.Title
	}

	content, err := presenca.CSVBytes(SignatureRows(e.store.ListSignatures(recordID), e.loc))
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    presenca.CSVFilename(title, e.now()),
		ContentType: ContentTypeCSV,
		Content:     content,
	}, nil
}

func (e *Exporter) PDF(recordID string) (*ExportFile, error) {
	record, err := e.store.GetRecord(recordID)
	if err != nil {
		return nil, err
	}

	signatures := e.store.ListSignatures(recordID)
	if len(signatures) == 0 {
		return nil, ErrEmptyExport
	}

	pdf, err := e.pdf.Generate(presenca.AttendanceDocument{
		RecordID:    record.ID,
		RecordTitle: record.Title,
		CreatedAt:   record.CreatedAtDisplay(e.loc),
		Rows:        SignatureRows(signatures, e.loc),
	})
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    presenca.PDFFilename(record.Title),
		ContentType: ContentTypePDF,
		Content:     pdf.Content,
		PageCount:   pdf.PageCount,
	}, nil
}
