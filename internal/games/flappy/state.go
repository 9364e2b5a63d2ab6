package flappy

// Pipe is one top/bottom obstacle pair scrolling across the field.
type Pipe struct {
	X            float64 // Leading (left) edge
	TopHeight    float64 // Obstacle hanging from the field's top edge
	BottomHeight float64 // Obstacle rising from the field's bottom edge
	Passed       bool    // Set once when the trailing edge crosses the bird
}

// TrailingEdge returns the pipe's rightmost x-coordinate.
func (p Pipe) TrailingEdge(pipeWidth float64) float64 {
	return p.X + pipeWidth
}

// State is the whole mutable simulation. It is owned by a Simulation and
// replaced wholesale on every start.
type State struct {
	BirdY    float64 // Top edge of the bird, 0 at the field top
	Velocity float64 // Positive = falling
	Pipes    []Pipe  // Oldest (leftmost) first
	Score    int
	Running  bool
}

// Snapshot is a read-only copy of the state for presentation.
// Changing it never affects the simulation.
type Snapshot struct {
	BirdY    float64
	Velocity float64
	Pipes    []Pipe
	Score    int
	Running  bool
	Attempts int // Number of starts so far; 0 before the first attempt
}

func (s *State) snapshot(attempts int) Snapshot {
	pipes := make([]Pipe, len(s.Pipes))
	copy(pipes, s.Pipes)
	return Snapshot{
		BirdY:    s.BirdY,
		Velocity: s.Velocity,
		Pipes:    pipes,
		Score:    s.Score,
		Running:  s.Running,
		Attempts: attempts,
	}
}
