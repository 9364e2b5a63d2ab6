package core

// Color represents a foreground color for a screen cell.
// Frontends map it to their own palette.
type Color uint8

// Colors used by the play field.
const (
	ColorDefault Color = iota
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorGround
	ColorText
	ColorOverlay
)
