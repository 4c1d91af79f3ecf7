package resource

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/flowglyph/flowglyph/flowerr"
)

// DataURLLoader decodes RFC 2397 base64 data: URIs, priority 50 (spec
// §4.6: checked first, since a data: URI is self-contained and never
// worth dispatching to the filesystem or network).
type DataURLLoader struct{}

func (DataURLLoader) CanHandle(uri string) bool { return strings.HasPrefix(uri, "data:") }
func (DataURLLoader) Priority() int             { return 50 }

func (DataURLLoader) Load(_ context.Context, uri string, maxSize int64) ([]byte, error) {
	rest := strings.TrimPrefix(uri, "data:")
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return nil, flowerr.New(flowerr.CodeResourceNotFound, "malformed data: URI, missing comma")
	}
	meta, payload := rest[:comma], rest[comma+1:]
	if !strings.Contains(meta, ";base64") {
		return nil, flowerr.New(flowerr.CodeUnsupportedFormat, "data: URI must be base64-encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("data: URI base64 decode failed: %v", err))
	}
	if int64(len(data)) > maxSize {
		return nil, flowerr.New(flowerr.CodeResourceTooLarge, fmt.Sprintf("data: URI payload %d bytes exceeds limit %d", len(data), maxSize))
	}
	return data, nil
}
