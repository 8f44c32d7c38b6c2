// The gfx subpackage defines the small set of GPU contracts used for
// text and wireframe drawing: [Texture], [Device], [Pipeline] and
// [LineDrawer].
//
// Two implementations exist: gfx/glgfx on top of raw OpenGL 3.3, and
// gfx/ebitengfx on top of Ebitengine. Both honor the projection and
// color given to [Pipeline.Begin]().
//
// Vertex coordinates are logical pixels in a y-up space, (0, 0) being
// the bottom-left corner. UV coordinates have (0, 0) at the top-left
// of the texture, matching the row order of [image.Alpha] pixels.
package gfx
