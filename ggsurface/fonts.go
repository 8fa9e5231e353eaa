package ggsurface

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggchart"
)

// variant indexes the four weights/slants of a family.
type variant uint8

const (
	regular variant = iota
	bold
	italic
	boldItalic
)

func variantOf(f ggchart.Font) variant {
	switch {
	case f.Bold() && f.Italic():
		return boldItalic
	case f.Bold():
		return bold
	case f.Italic():
		return italic
	}
	return regular
}

var (
	goSans = [...][]byte{regular: goregular.TTF, bold: gobold.TTF, italic: goitalic.TTF, boldItalic: gobolditalic.TTF}
	goMono = [...][]byte{regular: gomono.TTF, bold: gomonobold.TTF, italic: gomonoitalic.TTF, boldItalic: gomonobolditalic.TTF}
)

// fontCache resolves ggchart fonts to gg text faces. Sources are parsed once
// per file and faces are cached per Font.
type fontCache struct {
	mu      sync.Mutex
	files   map[string]string // lower-case family -> TTF path
	sources map[string]*text.FontSource
	faces   map[ggchart.Font]text.Face
}

func newFontCache() *fontCache {
	return &fontCache{
		files:   make(map[string]string),
		sources: make(map[string]*text.FontSource),
		faces:   make(map[ggchart.Font]text.Face),
	}
}

func (c *fontCache) register(family, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[strings.ToLower(strings.TrimSpace(family))] = path
}

// face returns the face for f, loading its source on first use.
func (c *fontCache) face(f ggchart.Font) (text.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if face, ok := c.faces[f]; ok {
		return face, nil
	}
	src, err := c.source(f)
	if err != nil {
		return nil, err
	}
	face := src.Face(f.Size)
	c.faces[f] = face
	return face, nil
}

func (c *fontCache) source(f ggchart.Font) (*text.FontSource, error) {
	family := strings.ToLower(strings.TrimSpace(f.Family))
	key, load := c.locate(family, variantOf(f))
	if src, ok := c.sources[key]; ok {
		return src, nil
	}
	data, err := load()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, key, err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, key, err)
	}
	c.sources[key] = src
	ggchart.Logger().Debug("ggsurface: font loaded", "font", f.String(), "source", key)
	return src, nil
}

// locate returns the cache key and loader for a family/variant pair.
// Registered files win over the embedded Go fonts.
func (c *fontCache) locate(family string, v variant) (string, func() ([]byte, error)) {
	if path, ok := c.files[family]; ok {
		return path, func() ([]byte, error) { return os.ReadFile(path) }
	}
	set, name := goSans, "go"
	if strings.Contains(family, "mono") {
		set, name = goMono, "gomono"
	}
	return fmt.Sprintf("%s/%d", name, v), func() ([]byte, error) { return set[v], nil }
}

func (c *fontCache) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var first error
	for key, src := range c.sources {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
		delete(c.sources, key)
	}
	clear(c.faces)
	return first
}
