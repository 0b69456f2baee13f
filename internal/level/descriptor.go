// Package level loads static level descriptors and builds fresh game
// states from them. Descriptors come either from the built-in set or
// from YAML files on disk; either way the built state owns independent
// copies of every entity, so later edits to a descriptor can never
// reach into a running simulation.
package level

import (
	"fmt"

	"github.com/arcadeworks/breaker/internal/game"
	"github.com/arcadeworks/breaker/internal/vec"
)

// Descriptor is the static definition of one level: board size, block
// layout, and the starting placement of paddle and ball. The initial
// ball velocity is a simulation constant, not part of the descriptor.
type Descriptor struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Size   SizeSpec    `yaml:"size"`
	Blocks []BlockSpec `yaml:"blocks"`
	Paddle PaddleSpec  `yaml:"paddle"`
	Ball   BallSpec    `yaml:"ball"`
}

// PointSpec is a 2D coordinate in a descriptor.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SizeSpec is the board extent in a descriptor.
type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlockSpec describes one block: top-left position, dimensions, and
// the hits it takes before destruction.
type BlockSpec struct {
	Position PointSpec `yaml:"position"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Density  int       `yaml:"density"`
}

// PaddleSpec describes the paddle's starting placement.
type PaddleSpec struct {
	Position PointSpec `yaml:"position"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
}

// BallSpec describes the ball's starting placement.
type BallSpec struct {
	Center PointSpec `yaml:"center"`
	Radius float64   `yaml:"radius"`
}

// Validate checks the descriptor for contract violations: non-positive
// dimensions, entities placed off the board, blocks that cannot be
// destroyed, or a board with nothing to clear. Malformed descriptors
// fail here, fast and descriptively, rather than producing a
// partially-initialized state.
func (d Descriptor) Validate() error {
	if d.Size.Width <= 0 || d.Size.Height <= 0 {
		return fmt.Errorf("level %q: board size %gx%g must be positive", d.ID, d.Size.Width, d.Size.Height)
	}
	if d.Paddle.Width <= 0 || d.Paddle.Height <= 0 {
		return fmt.Errorf("level %q: paddle size %gx%g must be positive", d.ID, d.Paddle.Width, d.Paddle.Height)
	}
	if d.Paddle.Position.X < 0 || d.Paddle.Position.X+d.Paddle.Width > d.Size.Width {
		return fmt.Errorf("level %q: paddle at x=%g width=%g is outside the board", d.ID, d.Paddle.Position.X, d.Paddle.Width)
	}
	if d.Ball.Radius <= 0 {
		return fmt.Errorf("level %q: ball radius %g must be positive", d.ID, d.Ball.Radius)
	}
	if d.Ball.Center.X < 0 || d.Ball.Center.X > d.Size.Width ||
		d.Ball.Center.Y < 0 || d.Ball.Center.Y > d.Size.Height {
		return fmt.Errorf("level %q: ball center (%g, %g) is outside the board", d.ID, d.Ball.Center.X, d.Ball.Center.Y)
	}
	if len(d.Blocks) == 0 {
		return fmt.Errorf("level %q: at least one block is required", d.ID)
	}
	for i, b := range d.Blocks {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("level %q: block %d size %gx%g must be positive", d.ID, i, b.Width, b.Height)
		}
		if b.Density <= 0 {
			return fmt.Errorf("level %q: block %d density %d must be positive", d.ID, i, b.Density)
		}
	}
	return nil
}

// Layout validates the descriptor and assembles the immutable level
// blueprint the simulation rebuilds from after a miss.
func (d Descriptor) Layout() (*game.Layout, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	blocks := make([]game.Block, len(d.Blocks))
	for i, b := range d.Blocks {
		blocks[i] = game.Block{
			Position: vec.New(b.Position.X, b.Position.Y),
			Width:    b.Width,
			Height:   b.Height,
			Density:  b.Density,
			Points:   b.Density * 10,
		}
	}

	return game.NewLayout(
		game.Size{Width: d.Size.Width, Height: d.Size.Height},
		blocks,
		game.Paddle{
			Position: vec.New(d.Paddle.Position.X, d.Paddle.Position.Y),
			Width:    d.Paddle.Width,
			Height:   d.Paddle.Height,
		},
		game.Ball{
			Center: vec.New(d.Ball.Center.X, d.Ball.Center.Y),
			Radius: d.Ball.Radius,
		},
	), nil
}

// Build constructs a fresh game state from the descriptor with the
// starting life count.
func Build(d Descriptor) (game.State, error) {
	layout, err := d.Layout()
	if err != nil {
		return game.State{}, err
	}
	return layout.NewState(), nil
}
