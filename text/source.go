package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	outl   *opentype.Font // outlines and metrics
	shaped *gotext.Font   // shaping tables, safe for concurrent use
	name   string

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outl, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to load shaping tables: %w", err)
	}

	s := &FontSource{
		outl:   outl,
		shaped: face.Font,
		config: config,
	}
	s.addr = s
	s.name = fontName(outl)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// GoRegular returns a FontSource for the Go Regular font bundled with
// golang.org/x/image.
func GoRegular(opts ...SourceOption) (*FontSource, error) {
	return NewFontSource(goregular.TTF, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSource?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Face{
		source: s,
		size:   size,
		config: config,
		glyphs: make(map[sfnt.GlyphIndex]*Glyph),
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close releases the parsed font. Faces created from s fail with ErrClosed
// afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outl = nil
	s.shaped = nil
	return nil
}

// fonts returns the parsed fonts, or ErrClosed.
func (s *FontSource) fonts() (*opentype.Font, *gotext.Font, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.outl == nil {
		return nil, nil, ErrClosed
	}
	return s.outl, s.shaped, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// fontName extracts the family name, falling back to the full name.
func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
