package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/model"
	"github.com/comite-bacias/presenca/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	t      *testing.T
	kv     *repository.MemoryKV
	cfg    *config.Config
	tmpDir string
}

func newHarness(t *testing.T) *harness {
	return &harness{
		t:  t,
		kv: repository.NewMemoryKV(),
		cfg: &config.Config{
			AppURL:           "http://localhost:5173/",
			OrganizationName: "Comitê de Bacias Hidrográficas",
			Timezone:         "America/Sao_Paulo",
		},
		tmpDir: t.TempDir(),
	}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()

	opts := &RootOptions{
		Config: h.cfg,
		OpenPort: func(*config.Config, *zap.SugaredLogger) (attendance.Port, func() error, error) {
			return h.kv, func() error { return nil }, nil
		},
		TmpDir: h.tmpDir,
	}

	cmd := newRootCommand(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) createRecord(title string) model.Record {
	h.t.Helper()

	out, err := h.run("records", "create", title, "--format", "json")
	require.NoError(h.t, err, out)

	var record model.Record
	require.NoError(h.t, json.Unmarshal([]byte(out), &record))
	return record
}

func (h *harness) sign(recordID string) (string, error) {
	return h.run("sign", "--record", recordID, "--name", "Maria Silva", "--cpf", "12345678901",
		"--email", "m@x.com", "--org", "Secretaria", "--format", "json")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(&config.Config{})
	assert.Equal(t, "presenca", cmd.Use)

	for _, path := range [][]string{
		{"records", "list"},
		{"records", "create"},
		{"records", "toggle"},
		{"sign"},
		{"validate"},
		{"export", "csv"},
		{"export", "pdf"},
		{"hash-password"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}
}

func TestInvalidFormat(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("records", "list", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestRecordLifecycle(t *testing.T) {
	h := newHarness(t)
	record := h.createRecord("ATA 01/2025")
	assert.Equal(t, model.RecordStatusOpen, record.Status)

	out, err := h.run("records", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ATA 01/2025")
	assert.Contains(t, out, "open")

	out, err = h.run("records", "toggle", record.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "fechada")

	out, err = h.run("records", "list", "--open")
	require.NoError(t, err)
	assert.NotContains(t, out, record.ID)

	_, err = h.run("records", "create", "   ")
	assert.ErrorIs(t, err, attendance.ErrValidation)

	_, err = h.run("records", "toggle", "missing")
	assert.ErrorIs(t, err, attendance.ErrNotFound)
}

func TestSignAndValidate(t *testing.T) {
	h := newHarness(t)
	record := h.createRecord("ATA 01/2025")

	out, err := h.sign(record.ID)
	require.NoError(t, err, out)

	var sig model.Signature
	require.NoError(t, json.Unmarshal([]byte(out), &sig))
	assert.Equal(t, "123.456.789-01", sig.TaxID)
	assert.Equal(t, "ATA 01/2025", sig.RecordTitle)

	out, err = h.run("validate", strings.ToLower(sig.ValidationCode))
	require.NoError(t, err)
	assert.Contains(t, out, "Maria Silva")
	assert.Contains(t, out, sig.ValidationCode)

	_, err = h.run("validate", "ZZZZZZZZ")
	assert.ErrorIs(t, err, ErrCodeNotFound)

	_, err = h.run("records", "toggle", record.ID)
	require.NoError(t, err)
	_, err = h.sign(record.ID)
	assert.ErrorIs(t, err, attendance.ErrClosedRecord)
}

func TestExport(t *testing.T) {
	h := newHarness(t)
	record := h.createRecord("ATA 01/2025")
	dir := t.TempDir()

	_, err := h.run("export", "csv", record.ID, "--dir", dir)
	assert.ErrorIs(t, err, attendance.ErrEmptyExport)

	_, err = h.sign(record.ID)
	require.NoError(t, err)

	out, err := h.run("export", "csv", record.ID, "--dir", dir)
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "lista_presenca_ATA_01-2025.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"Maria Silva","123.456.789-01"`)

	out, err = h.run("export", "pdf", record.ID, "--dir", dir)
	require.NoError(t, err)
	path = strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "Lista_Presenca_ATA_01-2025.pdf"), path)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestHashPassword(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("hash-password", "comite2025")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "$2"))
}
