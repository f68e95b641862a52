package presenca

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

type FontWeight string

const (
	FontWeightRegular FontWeight = "regular"
	FontWeightBold    FontWeight = "bold"
)

type Font struct {
	Size   float64
	Color  string
	Weight FontWeight
}

// Get font weight of canvas type
func (f *Font) GetFontStyle() canvas.FontStyle {
	switch f.Weight {
	case FontWeightBold:
		return canvas.FontBold
	default:
		return canvas.FontRegular
	}
}

type FontMetadata struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var embeddedFonts = map[FontWeight][]byte{
	FontWeightRegular: goregular.TTF,
	FontWeightBold:    gobold.TTF,
}

func getFontMetadata(fontBytes []byte, fontPath string) (*FontMetadata, error) {
	font, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	name, err := font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("retrieving font name: %w", err)
	}

	return &FontMetadata{
		Name: name,
		Path: fontPath,
	}, nil
}

// FontLoader materializes the embedded Go fonts under the tmp directory once and
// keeps one canvas family per weight.
type FontLoader struct {
	cfg      *Config
	once     sync.Once
	err      error
	families map[FontWeight]*canvas.FontFamily
}

func NewFontLoader(cfg *Config) *FontLoader {
	return &FontLoader{
		cfg:      cfg,
		families: make(map[FontWeight]*canvas.FontFamily, len(embeddedFonts)),
	}
}

func (fl *FontLoader) load() error {
	fl.once.Do(func() {
		dir := filepath.Join(fl.cfg.TmpDir, "fonts")
		if err := os.MkdirAll(dir, 0755); err != nil {
			fl.err = fmt.Errorf("failed to create font directory: %w", err)
			return
		}

		for weight, data := range embeddedFonts {
			path := filepath.Join(dir, fmt.Sprintf("go-%s.ttf", weight))
			if _, err := os.Stat(path); err != nil {
				if err := os.WriteFile(path, data, 0644); err != nil {
					fl.err = fmt.Errorf("failed to write font file: %w", err)
					return
				}
			}

			meta, err := getFontMetadata(data, path)
			if err != nil {
				fl.err = fmt.Errorf("failed to get font metadata: %w", err)
				return
			}

			f := Font{Weight: weight}
			family := canvas.NewFontFamily(meta.Name)
			if err := family.LoadFontFile(meta.Path, f.GetFontStyle()); err != nil {
				fl.err = fmt.Errorf("failed to load font file: %w", err)
				return
			}
			fl.families[weight] = family
		}
	})
	return fl.err
}

func (fl *FontLoader) Face(f Font) (*canvas.FontFace, error) {
	if err := fl.load(); err != nil {
		return nil, err
	}

	family, ok := fl.families[f.Weight]
	if !ok {
		family = fl.families[FontWeightRegular]
	}

	return family.Face(f.Size, canvas.Hex(f.Color), f.GetFontStyle(), canvas.FontNormal), nil
}
