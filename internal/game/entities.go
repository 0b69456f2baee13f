// Package game implements the brick-breaker simulation core: passive
// entity records and a pure, frame-rate-independent tick function that
// advances them. It depends only on the vector algebra in internal/vec;
// rendering, input decoding, and persistence live in outer layers.
package game

import "github.com/arcadeworks/breaker/internal/vec"

// Movement is the paddle steering intent for one tick, decoded from
// input devices by an external driver.
type Movement int

const (
	MoveNone Movement = iota
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the movement.
func (m Movement) String() string {
	switch m {
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "None"
	}
}

// Size is the board extent. The playfield spans [0,Width] x [0,Height]
// with the y axis pointing down.
type Size struct {
	Width, Height float64
}

// Block is a destructible brick. Density counts the hits remaining
// before destruction; Points is the score awarded when it reaches zero.
type Block struct {
	Position vec.Vector // top-left corner
	Width    float64
	Height   float64
	Density  int
	Points   int
}

// Paddle is the player-controlled bat. It moves horizontally only and
// is clamped to the board.
type Paddle struct {
	Position vec.Vector // top-left corner
	Width    float64
	Height   float64
}

// Ball is the moving circle. Velocity is in board units per
// millisecond; its magnitude is conserved across every reflection.
type Ball struct {
	Center   vec.Vector
	Radius   float64
	Velocity vec.Vector
}

// State is one immutable simulation frame. Tick consumes a State and
// produces a fresh one; nothing ever mutates a State in place, so any
// number of readers may share one safely.
type State struct {
	Size   Size
	Blocks []Block
	Paddle Paddle
	Ball   Ball
	Lives  int
	Score  int

	// layout is the pristine level blueprint this state was built
	// from, used to rebuild ball, paddle, and blocks after a miss.
	layout *Layout
}

// Cleared reports whether every block has been destroyed.
func (s State) Cleared() bool {
	return len(s.Blocks) == 0
}

// Layout returns the level blueprint this state was built from.
func (s State) Layout() *Layout {
	return s.layout
}

// clone returns a deep copy of the state. Blocks back a fresh slice so
// the caller can drop or decrement entries without aliasing the input.
func (s State) clone() State {
	next := s
	next.Blocks = make([]Block, len(s.Blocks))
	copy(next.Blocks, s.Blocks)
	return next
}

// rect is an axis-aligned bounding box in board coordinates, used for
// collision candidate tests.
type rect struct {
	x, y, w, h float64
}

func (r rect) right() float64  { return r.x + r.w }
func (r rect) bottom() float64 { return r.y + r.h }

func (b Block) rect() rect {
	return rect{x: b.Position.X, y: b.Position.Y, w: b.Width, h: b.Height}
}

func (p Paddle) rect() rect {
	return rect{x: p.Position.X, y: p.Position.Y, w: p.Width, h: p.Height}
}

// intersectsCircle reports whether the circle at center with the given
// radius overlaps the rectangle.
func (r rect) intersectsCircle(center vec.Vector, radius float64) bool {
	cx := clamp(center.X, r.x, r.right())
	cy := clamp(center.Y, r.y, r.bottom())
	d := center.Subtract(vec.New(cx, cy))
	return d.DotProduct(d) <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
