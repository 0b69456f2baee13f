package game

import "github.com/arcadeworks/breaker/internal/vec"

// Tuning constants for the simulation. Speeds are in board units per
// millisecond so the step stays correct regardless of tick cadence.
const (
	// PaddleSpeed is how far the paddle travels per millisecond of
	// held input.
	PaddleSpeed = 0.04

	// BallSpeed is the launch speed magnitude.
	BallSpeed = 0.03

	// StartingLives is the life count a fresh level begins with.
	StartingLives = 3
)

// launchDirection is the fixed initial ball heading: mostly upward with
// a slight rightward bias. Normalized before use so BallSpeed is the
// exact launch magnitude.
var launchDirection = vec.New(0.35, -1)

// Layout is the pristine blueprint of one level: board size and the
// starting placement of blocks, paddle, and ball. A Layout is built
// once by the level loader and never mutated afterwards; states built
// from it copy every entity, so callers cannot reach back into it.
type Layout struct {
	size   Size
	blocks []Block
	paddle Paddle
	ball   Ball
}

// NewLayout assembles a level blueprint. The blocks slice is copied,
// and the ball is given the fixed launch velocity; callers keep no
// aliases into the layout.
func NewLayout(size Size, blocks []Block, paddle Paddle, ball Ball) *Layout {
	owned := make([]Block, len(blocks))
	copy(owned, blocks)

	ball.Velocity = launchDirection.Normalize().ScaleBy(BallSpeed)

	return &Layout{
		size:   size,
		blocks: owned,
		paddle: paddle,
		ball:   ball,
	}
}

// Size returns the board extent.
func (l *Layout) Size() Size {
	return l.size
}

// NewState builds a fresh playable state with the starting life count.
func (l *Layout) NewState() State {
	return l.restate(StartingLives, 0)
}

// restate builds a state from the blueprint with the given lives and
// score carried over. Used for the initial state and for the life-loss
// transition, which resets ball, paddle, and blocks.
func (l *Layout) restate(lives, score int) State {
	blocks := make([]Block, len(l.blocks))
	copy(blocks, l.blocks)

	return State{
		Size:   l.size,
		Blocks: blocks,
		Paddle: l.paddle,
		Ball:   l.ball,
		Lives:  lives,
		Score:  score,
		layout: l,
	}
}
