package game

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/agsgui/pkg/config"
	"github.com/decker502/agsgui/pkg/render"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// BuiltinFontPath names the Go Regular font compiled into the binary.
// It can be used as a ttf font path in the runtime config.
const BuiltinFontPath = "builtin:goregular"

// ResourceManager is responsible for loading and caching the fonts used by GUI controls.
// Font files are read once and every (path, size) pair becomes one cached text face.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Load all fonts in the main goroutine
// before the game loop starts.
//
// Usage:
//
//	rm := NewResourceManager(nil)
//	fonts := render.NewFonts()
//	if err := rm.LoadFonts(cfg.Fonts, fonts); err != nil {
//	    log.Printf("Failed to load fonts: %v", err)
//	}
type ResourceManager struct {
	fsys          fs.FS                       // Source of font files; nil reads from the OS file system
	fontDataCache map[string][]byte           // Raw font file data: path -> bytes
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces: "path:size" -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: The file system font paths are resolved against. nil means the OS file system.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:          fsys,
		fontDataCache: make(map[string][]byte),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

func (rm *ResourceManager) readFontData(path string) ([]byte, error) {
	if data, ok := rm.fontDataCache[path]; ok {
		return data, nil
	}

	var data []byte
	var err error
	switch {
	case path == BuiltinFontPath:
		data = goregular.TTF
	case rm.fsys != nil:
		data, err = fs.ReadFile(rm.fsys, path)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	rm.fontDataCache[path] = data
	return data, nil
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates a text face with the given size.
// The font face is cached for future use with a cache key combining path and size.
//
// Parameters:
//   - path: The file path to the font resource, or BuiltinFontPath.
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be opened or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	data, err := rm.readFontData(path)
	if err != nil {
		return nil, err
	}

	face, err := render.LoadFace(data, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", path, err)
	}

	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return rm.fontFaceCache[cacheKey]
}

// LoadFonts registers every configured font into the font registry under its font number.
//
// Parameters:
//   - fontConfigs: The font list from the runtime config.
//   - fonts: The registry that receives the fonts.
//
// Returns:
//   - An error naming the first font that failed to load.
func (rm *ResourceManager) LoadFonts(fontConfigs []config.FontConfig, fonts *render.Fonts) error {
	for _, fc := range fontConfigs {
		switch fc.Kind {
		case config.FontKindTTF:
			face, err := rm.LoadFont(fc.Path, fc.Size)
			if err != nil {
				return fmt.Errorf("font %d: %w", fc.ID, err)
			}
			fonts.RegisterFace(fc.ID, face, fc.Antialiased)
		default:
			fonts.RegisterMono(fc.ID, render.NewMonoFont())
		}
		log.Printf("[ResourceManager] Registered font %d (%s)", fc.ID, fc.Kind)
	}
	return nil
}
