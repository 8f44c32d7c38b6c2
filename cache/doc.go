// The cache subpackage implements the glyph cache used for text
// rendering: glyph indices map to uploaded glyph textures with their
// sizes and bearings.
//
// Since glyph rasterization is an expensive CPU process and texture
// uploads aren't free either, caches are a vital part of any real-time
// text rendering pipeline. With a single font at a single size, the
// set of glyphs in use is small, so by default nothing is ever evicted.
// If the text to display is unbounded (e.g. user generated), a capacity
// can be set to bound the cache with a least-recently-used policy.
//
// The [Cache.ApproxByteSize]() and [Cache.PeakByteSize]() methods can
// be used to figure out reasonable capacities.
package cache
