package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Resource file names looked up under the theme directory.
const (
	frontImageFile = "images/card_front.png"
	backImageFile  = "images/card_back.png"
	titleFontFile  = "fonts/title.ttf"
	wordFontFile   = "fonts/word.ttf"
)

// Spec describes the visual layout of a card as plain comparable data. Two
// Specs with equal fields are the same theme for caching purposes.
type Spec struct {
	CanvasWidth  int
	CanvasHeight int
	TitlePos     image.Point // anchor for the face title, text centered on it
	WordPos      image.Point // anchor for the word, text centered on it

	TitleFontSize float64
	WordFontSize  float64
	TextSpacing   float64 // extra pixels between glyphs

	FrontTitle string // face title on the front, e.g. "French"
	BackTitle  string // face title on the back, e.g. "English"
	TitleColor string
	WordColor  string
}

// DefaultSpec returns the stock card layout.
func DefaultSpec() Spec {
	return Spec{
		CanvasWidth:   800,
		CanvasHeight:  526,
		TitlePos:      image.Pt(400, 175),
		WordPos:       image.Pt(400, 350),
		TitleFontSize: 40,
		WordFontSize:  60,
		TextSpacing:   2,
		FrontTitle:    "French",
		BackTitle:     "English",
		TitleColor:    "red",
		WordColor:     "green",
	}
}

// Theme bundles a Spec with the decoded resources the renderer draws with:
// base imagery masters for both faces and the parsed title/word fonts.
// Loaded once at startup and treated as immutable afterwards.
type Theme struct {
	Spec      Spec
	BaseFront *image.RGBA
	BaseBack  *image.RGBA
	TitleFont *sfnt.Font
	WordFont  *sfnt.Font
}

// LoadTheme loads theme resources from dir, or builds the built-in theme
// (embedded Go fonts, generated flat card faces) when dir is empty. Any
// missing or undecodable resource in an explicit theme directory is a fatal
// startup error; there is no partial fallback rendering.
func LoadTheme(dir string, spec Spec) (*Theme, error) {
	if dir == "" {
		return builtinTheme(spec)
	}

	baseFront, err := loadBaseImage(filepath.Join(dir, frontImageFile), spec)
	if err != nil {
		return nil, err
	}
	baseBack, err := loadBaseImage(filepath.Join(dir, backImageFile), spec)
	if err != nil {
		return nil, err
	}
	titleFont, err := loadFont(filepath.Join(dir, titleFontFile))
	if err != nil {
		return nil, err
	}
	wordFont, err := loadFont(filepath.Join(dir, wordFontFile))
	if err != nil {
		return nil, err
	}

	return &Theme{
		Spec:      spec,
		BaseFront: baseFront,
		BaseBack:  baseBack,
		TitleFont: titleFont,
		WordFont:  wordFont,
	}, nil
}

// builtinTheme needs no files on disk: card faces are flat fills and the
// fonts come embedded with golang.org/x/image.
func builtinTheme(spec Spec) (*Theme, error) {
	titleFont, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in title font: %w", err)
	}
	wordFont, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in word font: %w", err)
	}

	front := flatFace(spec, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	back := flatFace(spec, color.RGBA{R: 240, G: 232, B: 216, A: 255})

	return &Theme{
		Spec:      spec,
		BaseFront: front,
		BaseBack:  back,
		TitleFont: titleFont,
		WordFont:  wordFont,
	}, nil
}

// loadBaseImage decodes a card face image and places it on a canvas-sized
// RGBA master, top-left aligned like the original artwork.
func loadBaseImage(path string, spec Spec) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open card image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode card image %s: %w", path, err)
	}

	base := image.NewRGBA(image.Rect(0, 0, spec.CanvasWidth, spec.CanvasHeight))
	draw.Draw(base, img.Bounds().Sub(img.Bounds().Min), img, img.Bounds().Min, draw.Src)
	return base, nil
}

// loadFont parses a TTF/OTF file.
func loadFont(path string) (*sfnt.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// flatFace generates a solid card face with a thin border.
func flatFace(spec Spec, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.CanvasWidth, spec.CanvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	border := color.RGBA{R: 130, G: 130, B: 130, A: 255}
	for x := 0; x < spec.CanvasWidth; x++ {
		for _, y := range []int{0, 1, spec.CanvasHeight - 2, spec.CanvasHeight - 1} {
			img.SetRGBA(x, y, border)
		}
	}
	for y := 0; y < spec.CanvasHeight; y++ {
		for _, x := range []int{0, 1, spec.CanvasWidth - 2, spec.CanvasWidth - 1} {
			img.SetRGBA(x, y, border)
		}
	}
	return img
}
