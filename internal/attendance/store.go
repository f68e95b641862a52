package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/comite-bacias/presenca/internal/constant"
	"github.com/comite-bacias/presenca/internal/model"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/comite-bacias/presenca/pkg/presenca"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCodeAttempts = 16

// Store owns records and signatures. Every command is atomic and returns the Change it made;
// nothing is written to the Port until Persist is called with that Change.
type Store struct {
	mu         sync.RWMutex
	records    []model.Record
	signatures []model.Signature

	// serializes Persist so a stale snapshot never overwrites a newer one
	persistMu sync.Mutex
	port      Port

	logger   *zap.SugaredLogger
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
	newCode  func() (string, error)
}

type Option func(*Store)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Store) { s.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithCodeGenerator(newCode func() (string, error)) Option {
	return func(s *Store) { s.newCode = newCode }
}

func NewStore(port Port, opts ...Option) *Store {
	v := validator.New()
	v.RegisterTagNameFunc(util.JsonTagName)
	if err := util.RegisterCustomValidations(v); err != nil {
		panic(err)
	}

	s := &Store{
		port:     port,
		logger:   zap.NewNop().Sugar(),
		validate: v,
		now:      time.Now,
		newID:    uuid.NewString,
		newCode: func() (string, error) {
			return util.GenerateValidationCode(constant.VALIDATION_CODE_LENGTH)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

// Load rehydrates both collections from the port. A missing key is an empty collection.
func (s *Store) Load(ctx context.Context) error {
	var records []model.Record
	if err := s.loadCollection(ctx, CollectionRecords, &records); err != nil {
		return err
	}

	var signatures []model.Signature
	if err := s.loadCollection(ctx, CollectionSignatures, &signatures); err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.signatures = signatures
	s.mu.Unlock()

	s.logger.Debugf("Loaded %d records and %d signatures", len(records), len(signatures))
	return nil
}

func (s *Store) loadCollection(ctx context.Context, key Collection, out any) error {
	data, err := s.port.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// Persist writes the whole collection named by change to the port.
func (s *Store) Persist(ctx context.Context, change Change) error {
	if change.IsZero() {
		return nil
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	var (
		data []byte
		err  error
	)
	switch change.Collection {
	case CollectionRecords:
		data, err = marshalCollection(s.records)
	case CollectionSignatures:
		data, err = marshalCollection(s.signatures)
	default:
		err = fmt.Errorf("unknown collection %q", change.Collection)
	}
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := s.port.Put(ctx, change.Collection, data); err != nil {
		return fmt.Errorf("persisting %s: %w", change.Collection, err)
	}

	s.logger.Debugf("Persisted %s after %s %s", change.Collection, change.Kind, change.ID)
	return nil
}

// An empty collection is stored as [] rather than null.
func marshalCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func (s *Store) CreateRecord(title string) (model.Record, Change, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Record{}, Change{}, newFieldError("title", "title must not be empty or contain only whitespace characters")
	}

	record := model.Record{
		ID:        s.newID(),
		Title:     title,
		Status:    model.RecordStatusOpen,
		CreatedAt: s.timestamp(),
	}

	s.mu.Lock()
	s.records = append(s.records, record)
	s.mu.Unlock()

	return record, Change{Collection: CollectionRecords, Kind: ChangeCreated, ID: record.ID}, nil
}

func (s *Store) ToggleRecordStatus(id string) (model.Record, Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.recordIndex(id)
	if i < 0 {
		return model.Record{}, Change{}, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}

	if s.records[i].IsOpen() {
		s.records[i].Status = model.RecordStatusClosed
	} else {
		s.records[i].Status = model.RecordStatusOpen
	}

	return s.records[i], Change{Collection: CollectionRecords, Kind: ChangeUpdated, ID: id}, nil
}

// SubmitSignature checks blank fields first, then that the record exists and is open.
// The tax id is stored in its masked form.
func (s *Store) SubmitSignature(recordID string, fields model.SignatureFields) (model.Signature, Change, error) {
	if err := s.validateFields(fields); err != nil {
		return model.Signature{}, Change{}, err
	}

	// masking drops everything but digits, so "abc" ends up blank
	taxID := presenca.FormatCPF(fields.TaxID)
	if taxID == "" {
		return model.Signature{}, Change{}, newFieldError("taxId", "taxId must contain digits")
	}

	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return model.Signature{}, Change{}, newFieldError("recordId", "recordId must not be empty or contain only whitespace characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.recordIndex(recordID)
	if i < 0 {
		return model.Signature{}, Change{}, fmt.Errorf("record %s: %w", recordID, ErrNotFound)
	}
	record := s.records[i]
	if !record.IsOpen() {
		return model.Signature{}, Change{}, fmt.Errorf("record %s: %w", recordID, ErrClosedRecord)
	}

	code, err := s.uniqueCode()
	if err != nil {
		return model.Signature{}, Change{}, err
	}

	sig := model.Signature{
		ID:             s.newID(),
		RecordID:       record.ID,
		RecordTitle:    record.Title,
		SignerName:     strings.TrimSpace(fields.SignerName),
		TaxID:          taxID,
		Email:          strings.TrimSpace(fields.Email),
		Organization:   strings.TrimSpace(fields.Organization),
		ValidationCode: code,
		SignedAt:       s.timestamp(),
	}
	s.signatures = append(s.signatures, sig)

	return sig, Change{Collection: CollectionSignatures, Kind: ChangeCreated, ID: sig.ID}, nil
}

func (s *Store) validateFields(fields model.SignatureFields) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	first := util.GenerateErrorMessages(ve[:1])[0]
	return newFieldError(first.Field, first.Message)
}

// uniqueCode must be called with s.mu held.
func (s *Store) uniqueCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", fmt.Errorf("generating validation code: %w", err)
		}
		code = strings.ToUpper(code)

		if !s.codeTaken(code) {
			return code, nil
		}
		s.logger.Debugf("Validation code collision on attempt %d", attempt+1)
	}
	return "", fmt.Errorf("could not generate a unique validation code after %d attempts", maxCodeAttempts)
}

func (s *Store) codeTaken(code string) bool {
	for _, sig := range s.signatures {
		if strings.EqualFold(sig.ValidationCode, code) {
			return true
		}
	}
	return false
}

// FindSignatureByCode is a case-insensitive exact match. Surrounding whitespace is ignored.
func (s *Store) FindSignatureByCode(code string) (model.Signature, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.Signature{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sig := range s.signatures {
		if strings.EqualFold(sig.ValidationCode, code) {
			return sig, true
		}
	}
	return model.Signature{}, false
}

// ListSignatures returns signatures in insertion order. An empty recordID lists every record.
func (s *Store) ListSignatures(recordID string) []model.Signature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Signature, 0, len(s.signatures))
	for _, sig := range s.signatures {
		if recordID == "" || sig.RecordID == recordID {
			out = append(out, sig)
		}
	}
	return out
}

func (s *Store) CountSignatures(recordID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, sig := range s.signatures {
		if sig.RecordID == recordID {
			n++
		}
	}
	return n
}

func (s *Store) ListRecords() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// OpenRecords is the list offered by the signing view.
func (s *Store) OpenRecords() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.IsOpen() {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) GetRecord(id string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.recordIndex(id)
	if i < 0 {
		return model.Record{}, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	return s.records[i], nil
}

// recordIndex must be called with s.mu held.
func (s *Store) recordIndex(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
