package presenca

import (
	"fmt"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var disablePdfcpuConfig sync.Once

// pdfcpu would otherwise create a config dir under the user's home on first use
func usePdfcpuDefaults() {
	disablePdfcpuConfig.Do(api.DisableConfigDir)
}

// Merge pages rendered as separate files into outFile, in the given order.
func MergePdfFiles(inFiles []string, outFile string) error {
	usePdfcpuDefaults()

	if len(inFiles) == 1 {
		data, err := os.ReadFile(inFiles[0])
		if err != nil {
			return fmt.Errorf("failed to read pdf: %w", err)
		}
		return os.WriteFile(outFile, data, 0644)
	}

	if err := api.MergeCreateFile(inFiles, outFile, false, nil); err != nil {
		return fmt.Errorf("failed to merge pdf files: %w", err)
	}
	return nil
}

// Embed a qr code image at posX, posY (points, measured from the top-left corner) on the selected pages.
// In pdfcpu, y is inverted. As for scale, 1 abs means 1px of the image takes 1pt.
func EmbedQRCodeToPdf(inFile, outFile, qrCodePath string, selectedPages []string, posX, posY float64) error {
	usePdfcpuDefaults()

	description := fmt.Sprintf("pos: tl, off:%.1f %.1f, scale:1 abs, rotation:0", posX, posY*-1)
	err := api.AddImageWatermarksFile(inFile, outFile, selectedPages, true, qrCodePath, description, nil)
	if err != nil {
		return fmt.Errorf("failed to embed QR code in PDF: %w", err)
	}
	return nil
}

func GetPageCount(path string) (int, error) {
	usePdfcpuDefaults()

	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read page count: %w", err)
	}
	return n, nil
}
