// Package ebitenhost runs a minimap overlay inside an Ebitengine game.
//
// [Canvas] implements minimap.Renderer with the vector package, [Pointer]
// forwards mouse and touch input (or injected events) to the overlay, and
// [Screen] ties both to an ebiten.Game that also serves as the overlay's
// host. [LoadScript] replays scripted pointer input for automated checks.
package ebitenhost
