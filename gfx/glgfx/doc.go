// The glgfx subpackage implements the gfx contracts on OpenGL 3.3 core.
//
// All functions and methods must be called from the thread that owns
// the GL context, after gl.Init() has succeeded.
package glgfx
