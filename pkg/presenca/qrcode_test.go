package presenca

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateQRCodePNG(t *testing.T) {
	png, err := GenerateQRCodePNG("http://localhost:5173/?ata=abc", 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))

	_, err = GenerateQRCodePNG("", 128)
	assert.Error(t, err)
}

func TestGenerateQRCodeFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "qr.png")
	require.NoError(t, GenerateQRCodeFile("http://localhost:5173/", out, 85))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestGenerateQRCodeSVG(t *testing.T) {
	svg, err := GenerateQRCodeSVG("http://localhost:5173/?ata=abc")
	require.NoError(t, err)
	assert.True(t, strings.Contains(svg, "<svg"))
}
