package textmetrics

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Registry is a copy-on-write name -> parsed TrueType font map, builder-
// time registration only (spec §5: templates reference fonts by name, not
// by path). Font() derives a sized Font on every call; Face-level caching
// still happens in faceCache, so repeated calls at the same size are cheap.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*truetype.Font

	// Hinting is applied to every Font this Registry hands out, letting a
	// render.RenderOptions.FontHinting choice reach glyph rasterization
	// without threading a parameter through every Font() call site.
	Hinting font.Hinting
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[string]*truetype.Font)}
}

// Register parses data as a TrueType font and stores it under name,
// overwriting any previous registration for that name.
func (r *Registry) Register(name string, data []byte) error {
	tt, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("textmetrics: register %q: %w", name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make(map[string]*truetype.Font, len(r.fonts)+1)
	for k, v := range r.fonts {
		next[k] = v
	}
	next[name] = tt
	r.fonts = next
	return nil
}

// Font returns a Font for the named registration at sizePt. The zero
// value/"" name resolves to whichever font was registered as the default,
// if one was registered under "".
func (r *Registry) Font(name string, sizePt float64) (*Font, error) {
	r.mu.RLock()
	tt, ok := r.fonts[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("textmetrics: font %q not registered", name)
	}
	return NewFont(tt, sizePt).SetHinting(r.Hinting), nil
}

// Has reports whether name has a registered font.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fonts[name]
	return ok
}
