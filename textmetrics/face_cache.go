package textmetrics

import (
	"container/list"
	"sync"

	"golang.org/x/image/font"
)

var faceCache = newFaceLRU(32)

// SetFaceCacheCapacity changes the max number of cached font faces.
func SetFaceCacheCapacity(capacity int) { faceCache = newFaceLRU(capacity) }

// ClearFaceCache releases all cached font.Face objects.
func ClearFaceCache() { faceCache.clear() }

type lruEntry struct {
	key  string
	face font.Face
}

// faceLRU is a thread-safe least-recently-used cache of font.Face objects,
// keyed by (font pointer, size, dpi) so repeated measurement/drawing at the
// same size reuses one hinted face instead of re-rasterizing per call.
type faceLRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func newFaceLRU(capacity int) *faceLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &faceLRU{capacity: capacity, items: make(map[string]*list.Element), order: list.New()}
}

func (c *faceLRU) get(key string) (font.Face, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*lruEntry).face, true
	}
	return nil, false
}

func (c *faceLRU) put(key string, face font.Face) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		el.Value.(*lruEntry).face = face
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			ent := oldest.Value.(*lruEntry)
			if closer, ok := ent.face.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
			delete(c.items, ent.key)
			c.order.Remove(oldest)
		}
	}

	el := c.order.PushBack(&lruEntry{key: key, face: face})
	c.items[key] = el
}

func (c *faceLRU) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, el := range c.items {
		ent := el.Value.(*lruEntry)
		if closer, ok := ent.face.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}
	c.items = make(map[string]*list.Element)
	c.order.Init()
}
