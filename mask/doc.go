// The mask subpackage defines the [Rasterizer] interface used by the
// glyph cache and provides two implementations.
//
// Glyphs are extracted from font files as outlines (sets of lines and
// curves), and before they can be uploaded as textures they have to be
// rasterized into an alpha mask, a grid of coverage values.
package mask
