package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label FontName = "label"
	Title FontName = "title"
	Small FontName = "small"
)

// Face returns a loaded face. ok is false until the font has been loaded.
func (f FontName) Face() (font.Face, bool) {
	face, ok := fonts[f]
	return face, ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads every FontName from the Go fonts.
func LoadDefaults() error {
	if err := LoadFontWithSize(Label, goregular.TTF, 16); err != nil {
		return err
	}
	if err := LoadFontWithSize(Small, goregular.TTF, 10); err != nil {
		return err
	}
	return LoadFontWithSize(Title, gobold.TTF, 32)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}
