package cache

import "image"
import "container/list"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/hexcave/fract"
import "github.com/tinne26/hexcave/gfx"
import "github.com/tinne26/hexcave/mask"
import "github.com/tinne26/hexcave/internal/logger"

// OutlineSource provides glyph outlines at a fixed size. Satisfied
// by *font.Face.
type OutlineSource interface {
	Outline(index sfnt.GlyphIndex) (sfnt.Segments, error)
}

// A cached glyph. Glyphs without a texture (spaces, failures) must
// not be drawn, but their advances still apply.
type Glyph struct {
	Texture gfx.Texture // nil for empty or failed glyphs
	Width int
	Height int
	Left int // offset from the pen to the left edge of the bitmap
	Top int  // offset from the baseline up to the top edge of the bitmap
}

// Cache usage counters.
type Stats struct {
	Hits int
	Misses int
	Evictions int
	Failures int
}

// Cache maps glyph indices to uploaded glyph textures.
//
// Caches are not safe for concurrent use.
type Cache struct {
	source OutlineSource
	rasterizer mask.Rasterizer
	device gfx.Device
	capacity int
	entries map[sfnt.GlyphIndex]*list.Element
	recency *list.List // front is most recently used, only when bounded
	stats Stats
	byteSize int
	peakByteSize int
}

type entry struct {
	index sfnt.GlyphIndex
	glyph Glyph
}

// Creates a new cache. A capacity of 0 makes the cache unbounded,
// while a positive capacity bounds the number of cached glyphs,
// evicting the least recently used one when necessary. Negative
// capacities and nil arguments will panic.
func New(source OutlineSource, rasterizer mask.Rasterizer, device gfx.Device, capacity int) *Cache {
	if capacity < 0 { panic("capacity < 0") } // likely a dev mistake
	if source == nil || rasterizer == nil || device == nil {
		panic("nil cache dependency")
	}
	return &Cache{
		source: source,
		rasterizer: rasterizer,
		device: device,
		capacity: capacity,
		entries: make(map[sfnt.GlyphIndex]*list.Element, 128),
		recency: list.New(),
	}
}

// Returns the glyph for the given index, rasterizing and uploading
// it on the first request.
//
// Failures are logged and cached as zero-sized glyphs without a
// texture, so they are not retried.
func (self *Cache) Get(index sfnt.GlyphIndex) Glyph {
	element, found := self.entries[index]
	if found {
		self.stats.Hits += 1
		if self.capacity > 0 { self.recency.MoveToFront(element) }
		return element.Value.(*entry).glyph
	}

	self.stats.Misses += 1
	glyph, ok := self.load(index)
	if !ok { self.stats.Failures += 1 }
	self.store(index, glyph)
	return glyph
}

// Returns whether the glyph is currently cached. It doesn't count
// as an access.
func (self *Cache) Contains(index sfnt.GlyphIndex) bool {
	_, found := self.entries[index]
	return found
}

// Returns the number of cached glyphs, failures included.
func (self *Cache) Len() int { return len(self.entries) }

// Returns the cache capacity. Zero means unbounded.
func (self *Cache) Capacity() int { return self.capacity }

// Returns the usage counters.
func (self *Cache) Stats() Stats { return self.stats }

// Returns an approximation of the texture memory in use, assuming
// one byte per texel.
func (self *Cache) ApproxByteSize() int { return self.byteSize }

// Returns the maximum value that [Cache.ApproxByteSize]() has reached
// during the cache lifetime.
func (self *Cache) PeakByteSize() int { return self.peakByteSize }

// Releases all the textures and empties the cache. Stats are kept.
func (self *Cache) Clear() {
	for _, element := range self.entries {
		release(element.Value.(*entry).glyph)
	}
	self.entries = make(map[sfnt.GlyphIndex]*list.Element, 128)
	self.recency.Init()
	self.byteSize = 0
}

func (self *Cache) load(index sfnt.GlyphIndex) (Glyph, bool) {
	outline, err := self.source.Outline(index)
	if err != nil {
		logger.Get().Warn("failed to load glyph outline", "glyph", index, "err", err)
		return Glyph{}, false
	}

	alpha, err := mask.Rasterize(outline, self.rasterizer, fract.Point{})
	if err != nil {
		logger.Get().Warn("failed to rasterize glyph", "glyph", index, "err", err)
		return Glyph{}, false
	}
	if alpha == nil || alpha.Rect.Empty() {
		return Glyph{}, true // empty glyph, like spaces
	}

	texture, err := self.device.NewTexture(alpha)
	if err != nil {
		logger.Get().Warn("failed to upload glyph texture", "glyph", index, "err", err)
		return Glyph{}, false
	}
	return newGlyph(texture, alpha.Rect), true
}

func newGlyph(texture gfx.Texture, bounds image.Rectangle) Glyph {
	return Glyph{
		Texture: texture,
		Width: bounds.Dx(),
		Height: bounds.Dy(),
		Left: bounds.Min.X,
		Top: -bounds.Min.Y,
	}
}

func (self *Cache) store(index sfnt.GlyphIndex, glyph Glyph) {
	if self.capacity > 0 {
		for len(self.entries) >= self.capacity {
			self.evictOldest()
		}
	}

	element := self.recency.PushFront(&entry{ index: index, glyph: glyph })
	self.entries[index] = element
	self.byteSize += glyph.Width*glyph.Height
	if self.byteSize > self.peakByteSize {
		self.peakByteSize = self.byteSize
	}
}

func (self *Cache) evictOldest() {
	element := self.recency.Back()
	if element == nil { return }
	evicted := self.recency.Remove(element).(*entry)
	delete(self.entries, evicted.index)
	self.byteSize -= evicted.glyph.Width*evicted.glyph.Height
	release(evicted.glyph)
	self.stats.Evictions += 1
}

func release(glyph Glyph) {
	if glyph.Texture != nil { glyph.Texture.Release() }
}
