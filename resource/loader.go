// Package resource implements the resource-loading contract (spec §4.6):
// a priority-ordered chain of Loaders turns a URI into size-capped bytes,
// the boundary where async I/O and cancellation enter an otherwise
// synchronous, purely computational render (spec §5).
package resource

import (
	"context"
	"fmt"
	"sort"

	"github.com/flowglyph/flowglyph/flowerr"
)

// Loader resolves one class of resource URI into bytes. CanHandle decides
// membership; Priority breaks ties across loaders whose CanHandle might
// both report true (lower runs first, spec §4.6).
type Loader interface {
	CanHandle(uri string) bool
	Priority() int
	Load(ctx context.Context, uri string, maxSize int64) ([]byte, error)
}

// Chain is a priority-sorted, build-once collection of Loaders (spec §5:
// "read-only after construction, safely shareable across concurrent
// renders"). The zero value is an empty chain.
type Chain struct {
	loaders []Loader
}

// NewChain builds a Chain from loaders, sorted by ascending Priority once
// at construction time. A stable sort preserves the caller's relative
// ordering among loaders that share a priority.
func NewChain(loaders ...Loader) *Chain {
	c := &Chain{loaders: append([]Loader(nil), loaders...)}
	sort.SliceStable(c.loaders, func(i, j int) bool {
		return c.loaders[i].Priority() < c.loaders[j].Priority()
	})
	return c
}

// Default builds the chain spec §4.6 names: data: URLs (50), embedded://
// resources (75), the local filesystem (100), then HTTP/S (200, with
// retry). embedded carries the caller's compiled-in resource map (e.g.
// from go:embed); it may be nil if the template never uses embedded://.
func Default(embedded map[string][]byte, httpTimeoutSeconds float64) *Chain {
	return NewChain(
		DataURLLoader{},
		EmbeddedLoader{Resources: embedded},
		FileLoader{},
		NewHTTPLoader(httpTimeoutSeconds),
	)
}

// Load resolves uri through the first loader (in priority order) whose
// CanHandle reports true, capping the result at maxSize bytes.
func (c *Chain) Load(ctx context.Context, uri string, maxSize int64) ([]byte, error) {
	for _, l := range c.loaders {
		if !l.CanHandle(uri) {
			continue
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		data, err := l.Load(ctx, uri, maxSize)
		if err != nil {
			return nil, err
		}
		return data, nil
	}
	return nil, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("no loader can handle %q", uri))
}
