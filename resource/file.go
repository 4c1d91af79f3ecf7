package resource

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flowglyph/flowglyph/flowerr"
)

// FileLoader reads plain filesystem paths and file:// URIs, priority 100
// (spec §4.6) — grounded on the teacher's LoadFont, which reads a font
// straight off disk via os.ReadFile, generalized here to stream through a
// size cap rather than read the whole file unconditionally.
type FileLoader struct{}

func (FileLoader) CanHandle(uri string) bool {
	return !strings.Contains(uri, "://") || strings.HasPrefix(uri, "file://")
}
func (FileLoader) Priority() int { return 100 }

func (FileLoader) Load(_ context.Context, uri string, maxSize int64) ([]byte, error) {
	path := strings.TrimPrefix(uri, "file://")
	f, err := os.Open(path)
	if err != nil {
		return nil, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("open %q: %v", path, err))
	}
	defer f.Close()
	return readCapped(f, maxSize, path)
}

// readCapped reads up to maxSize+1 bytes from r, erroring with
// CodeResourceTooLarge if the stream didn't end by then — spec §4.6's
// "all loaders stream into a size-capped in-memory buffer".
func readCapped(r io.Reader, maxSize int64, name string) ([]byte, error) {
	limited := io.LimitReader(r, maxSize+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("read %q: %v", name, err))
	}
	if int64(len(data)) > maxSize {
		return nil, flowerr.New(flowerr.CodeResourceTooLarge, fmt.Sprintf("%q exceeds limit %d bytes", name, maxSize))
	}
	return data, nil
}
