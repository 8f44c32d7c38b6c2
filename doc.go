// hexcave is a small interactive scene: a hexapod rig wobbling in a
// cave, a free-look camera and a branching text adventure drawn with
// a custom text pipeline.
//
// The [Game] type is the scene controller. It's backend-agnostic: the
// cmd/hexcave binary runs it on Ebitengine, while cmd/hexcave-gl runs
// it on GLFW and raw OpenGL. In both cases, each frame goes through
// the same three steps:
//   game.HandleInput(input)   // choice slots, camera move and look
//   game.Update(elapsed)      // wobble, camera, typewriter
//   game.DrawScene()          // wireframe rig
//   game.DrawOverlay()        // dialogue text and options
//
// Raw keys are mapped to choice slots by the binaries, so the game
// itself only deals with [dialogue.Slot] values.
//
// Text rendering goes through the text, shape, cache and mask
// subpackages, which can also be used independently.
package hexcave
