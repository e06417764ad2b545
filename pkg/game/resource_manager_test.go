package game

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/agsgui/pkg/config"
	"github.com/decker502/agsgui/pkg/render"
	"golang.org/x/image/font/gofont/goregular"
)

// TestLoadFontBuiltin tests loading the compiled-in font and the face cache.
func TestLoadFontBuiltin(t *testing.T) {
	rm := NewResourceManager(nil)

	if rm.GetFont(BuiltinFontPath, 16) != nil {
		t.Fatal("GetFont returned a face before LoadFont")
	}

	face, err := rm.LoadFont(BuiltinFontPath, 16)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face.Size != 16 {
		t.Errorf("face.Size = %v, want 16", face.Size)
	}

	again, err := rm.LoadFont(BuiltinFontPath, 16)
	if err != nil {
		t.Fatalf("second LoadFont failed: %v", err)
	}
	if again != face {
		t.Error("LoadFont did not return the cached face")
	}
	if rm.GetFont(BuiltinFontPath, 16) != face {
		t.Error("GetFont did not return the cached face")
	}

	other, err := rm.LoadFont(BuiltinFontPath, 24)
	if err != nil {
		t.Fatalf("LoadFont(24) failed: %v", err)
	}
	if other == face {
		t.Error("different sizes share one face")
	}
}

// TestLoadFontFromFile tests loading a font from the OS file system.
func TestLoadFontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewResourceManager(nil).LoadFont(path, 12); err != nil {
		t.Errorf("LoadFont failed: %v", err)
	}
}

// TestLoadFontFromFS tests resolving font paths against a custom file system.
func TestLoadFontFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/regular.ttf": {Data: goregular.TTF},
		"fonts/broken.ttf":  {Data: []byte("not a font")},
	}
	rm := NewResourceManager(fsys)

	if _, err := rm.LoadFont("fonts/regular.ttf", 12); err != nil {
		t.Errorf("LoadFont failed: %v", err)
	}
	if _, err := rm.LoadFont("fonts/broken.ttf", 12); err == nil {
		t.Error("LoadFont accepted a broken font")
	}
	if _, err := rm.LoadFont("fonts/missing.ttf", 12); err == nil {
		t.Error("LoadFont accepted a missing file")
	}
}

// TestLoadFonts tests registering configured fonts into the registry.
func TestLoadFonts(t *testing.T) {
	rm := NewResourceManager(nil)
	fonts := render.NewFonts()

	err := rm.LoadFonts([]config.FontConfig{
		{ID: 0, Kind: config.FontKindMono},
		{ID: 2, Kind: config.FontKindTTF, Path: BuiltinFontPath, Size: 14, Antialiased: true},
	}, fonts)
	if err != nil {
		t.Fatalf("LoadFonts failed: %v", err)
	}

	if !fonts.Has(0) || !fonts.Has(2) {
		t.Fatal("configured fonts not registered")
	}
	if fonts.Has(1) {
		t.Error("unconfigured font 1 registered")
	}
	if fonts.IsAntialiased(0) || !fonts.IsAntialiased(2) {
		t.Error("antialiasing flags not carried over")
	}

	err = rm.LoadFonts([]config.FontConfig{{ID: 5, Kind: config.FontKindTTF, Path: "missing.ttf", Size: 10}}, fonts)
	if err == nil {
		t.Error("LoadFonts accepted a missing font file")
	}
}
