package resource

import (
	"context"
	"fmt"
	"strings"

	"github.com/flowglyph/flowglyph/flowerr"
)

// EmbeddedLoader resolves embedded://name/path URIs against a caller-
// supplied in-memory map, priority 75 (spec §4.6). Resources is typically
// populated from a //go:embed file system flattened by the caller; this
// package has no embed directive of its own, since what gets embedded is
// an application concern, not the core's.
type EmbeddedLoader struct {
	Resources map[string][]byte
}

func (EmbeddedLoader) CanHandle(uri string) bool { return strings.HasPrefix(uri, "embedded://") }
func (EmbeddedLoader) Priority() int             { return 75 }

func (l EmbeddedLoader) Load(_ context.Context, uri string, maxSize int64) ([]byte, error) {
	key := strings.TrimPrefix(uri, "embedded://")
	data, ok := l.Resources[key]
	if !ok {
		return nil, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("embedded resource %q not found", key))
	}
	if int64(len(data)) > maxSize {
		return nil, flowerr.New(flowerr.CodeResourceTooLarge, fmt.Sprintf("embedded resource %q is %d bytes, exceeds limit %d", key, len(data), maxSize))
	}
	return data, nil
}
