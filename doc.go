// Package easel is a freehand pixel-painting core for [Ebitengine].
//
// Easel turns raw pointer samples (from a touch screen, a mouse, or a
// key/gamepad-driven virtual cursor) into continuous strokes on a
// palette-indexed canvas. It provides the pointer edge-detection state
// machine, the integer line rasterizer that connects successive pen
// positions without gaps, the bounds-checked paint surface, and the
// fixed-cadence control loop that ties them together.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// drives the paint loop for you:
//
//	easel.Run(easel.RunConfig{
//		Title: "Easel", Width: 320, Height: 240,
//	})
//
// For full control, implement [ebiten.Game] yourself and drive a [Sketch]
// directly:
//
//	canvas := easel.NewCanvas(320, 240, nil)
//	sketch := easel.NewSketch(canvas, easel.NewMouseSource())
//
//	type Game struct{ sketch *easel.Sketch }
//
//	func (g *Game) Update() error { g.sketch.Step(); return nil }
//
// # Pointer sources
//
// Every input device is a [Source]: one Poll per tick returning a [Sample]
// (contact state plus position), and a Poke hint that asks the device to
// refresh any visual indicator it owns. [DetectSource] selects the concrete
// source once at startup from the platform's [Capabilities]; when no pointer
// hardware exists it fails with [ErrNoPointer] before the loop starts.
//
// [ScriptSource] replays recorded press/move/release steps one per tick,
// which makes strokes fully deterministic for tests and demos: no hardware,
// no sleeping.
//
// # Drawing model
//
// The canvas stores palette indices, not colors. [Canvas.Set] rejects
// out-of-range coordinates and reports whether the write landed, so
// rasterizing off the edge of the screen is a silent, expected no-op.
// [TraceLine] walks the straight segment between two pen positions emitting
// exactly one pixel per step along the dominant axis.
//
// [Ebitengine]: https://ebitengine.org
package easel
