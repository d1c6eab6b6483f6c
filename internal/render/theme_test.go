package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"codeberg.org/snonux/milo/internal/testutil"
)

func TestDefaultSpec(t *testing.T) {
	spec := DefaultSpec()

	if spec.CanvasWidth != 800 || spec.CanvasHeight != 526 {
		t.Errorf("Unexpected canvas size %dx%d", spec.CanvasWidth, spec.CanvasHeight)
	}
	if spec.FrontTitle != "French" || spec.BackTitle != "English" {
		t.Errorf("Unexpected face titles %q/%q", spec.FrontTitle, spec.BackTitle)
	}
	if spec.TitleFontSize != 40 || spec.WordFontSize != 60 {
		t.Errorf("Unexpected font sizes %v/%v", spec.TitleFontSize, spec.WordFontSize)
	}
}

func TestLoadThemeBuiltin(t *testing.T) {
	theme, err := LoadTheme("", DefaultSpec())
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}

	want := image.Rect(0, 0, 800, 526)
	if theme.BaseFront.Bounds() != want {
		t.Errorf("Front master bounds = %v, want %v", theme.BaseFront.Bounds(), want)
	}
	if theme.BaseBack.Bounds() != want {
		t.Errorf("Back master bounds = %v, want %v", theme.BaseBack.Bounds(), want)
	}
	if theme.TitleFont == nil || theme.WordFont == nil {
		t.Error("Expected built-in fonts to be parsed")
	}
}

func TestLoadThemeFromDirectory(t *testing.T) {
	dir := writeThemeDir(t)

	theme, err := LoadTheme(dir, DefaultSpec())
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}

	if theme.BaseFront.Bounds().Dx() != 800 {
		t.Errorf("Expected master placed on an 800-wide canvas, got %d", theme.BaseFront.Bounds().Dx())
	}
}

func TestLoadThemeMissingResourceIsFatal(t *testing.T) {
	dir := writeThemeDir(t)

	// Resource-load failures have no partial fallback
	if err := os.Remove(filepath.Join(dir, "fonts", "word.ttf")); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTheme(dir, DefaultSpec()); err == nil {
		t.Error("Expected error for missing font resource")
	}
}

func TestLoadThemeUndecodableImageIsFatal(t *testing.T) {
	dir := writeThemeDir(t)
	testutil.CreateTestFile(t, filepath.Join(dir, "images", "card_front.png"), []byte("not a png"))

	if _, err := LoadTheme(dir, DefaultSpec()); err == nil {
		t.Error("Expected error for undecodable card image")
	}
}

// writeThemeDir lays out a minimal theme resource directory.
func writeThemeDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{"card_front.png", "card_back.png"} {
		path := filepath.Join(dir, "images", name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		file, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(file, image.NewRGBA(image.Rect(0, 0, 100, 80))); err != nil {
			t.Fatal(err)
		}
		file.Close()
	}

	testutil.CreateTestFile(t, filepath.Join(dir, "fonts", "title.ttf"), goregular.TTF)
	testutil.CreateTestFile(t, filepath.Join(dir, "fonts", "word.ttf"), gobold.TTF)

	return dir
}
