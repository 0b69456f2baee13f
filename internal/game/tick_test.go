package game

import (
	"math"
	"testing"

	"github.com/arcadeworks/breaker/internal/vec"
)

const testEpsilon = 1e-9

// testLayout builds a small board: paddle near the bottom, ball resting
// just above it, and whatever blocks the test supplies.
func testLayout(blocks []Block) *Layout {
	return NewLayout(
		Size{Width: 100, Height: 100},
		blocks,
		Paddle{Position: vec.New(40, 90), Width: 20, Height: 2},
		Ball{Center: vec.New(50, 85), Radius: 2},
	)
}

func TestPaddleMovesAndClamps(t *testing.T) {
	s := testLayout(nil).NewState()
	s.Ball.Velocity = vec.Zero

	moved := Tick(s, MoveRight, 16)
	if moved.Paddle.Position.X <= s.Paddle.Position.X {
		t.Errorf("paddle did not move right: %v -> %v", s.Paddle.Position.X, moved.Paddle.Position.X)
	}

	moved = Tick(s, MoveLeft, 16)
	if moved.Paddle.Position.X >= s.Paddle.Position.X {
		t.Errorf("paddle did not move left: %v -> %v", s.Paddle.Position.X, moved.Paddle.Position.X)
	}

	// A huge delta must still leave the paddle fully on the board.
	far := Tick(s, MoveRight, 1e6)
	if got, want := far.Paddle.Position.X, s.Size.Width-s.Paddle.Width; got != want {
		t.Errorf("paddle not clamped to right edge: got %v, want %v", got, want)
	}
	far = Tick(s, MoveLeft, 1e6)
	if far.Paddle.Position.X != 0 {
		t.Errorf("paddle not clamped to left edge: got %v", far.Paddle.Position.X)
	}
}

func TestPaddleMotionScalesWithDelta(t *testing.T) {
	s := testLayout(nil).NewState()
	s.Ball.Velocity = vec.Zero

	short := Tick(Tick(s, MoveRight, 8), MoveRight, 8)
	long := Tick(s, MoveRight, 16)

	if math.Abs(short.Paddle.Position.X-long.Paddle.Position.X) > testEpsilon {
		t.Errorf("two 8ms ticks (%v) != one 16ms tick (%v)",
			short.Paddle.Position.X, long.Paddle.Position.X)
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name     string
		center   vec.Vector
		velocity vec.Vector
		flipped  string // which velocity component must flip sign
	}{
		{"left wall", vec.New(3, 50), vec.New(-0.05, 0.01), "x"},
		{"right wall", vec.New(97, 50), vec.New(0.05, 0.01), "x"},
		{"top wall", vec.New(50, 3), vec.New(0.01, -0.05), "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testLayout(nil).NewState()
			s.Ball.Center = tt.center
			s.Ball.Velocity = tt.velocity

			next := Tick(s, MoveNone, 50)

			switch tt.flipped {
			case "x":
				if next.Ball.Velocity.X*tt.velocity.X >= 0 {
					t.Errorf("x velocity did not flip: %v -> %v", tt.velocity, next.Ball.Velocity)
				}
				if math.Abs(next.Ball.Velocity.Y-tt.velocity.Y) > testEpsilon {
					t.Errorf("y velocity changed on x bounce: %v -> %v", tt.velocity, next.Ball.Velocity)
				}
			case "y":
				if next.Ball.Velocity.Y*tt.velocity.Y >= 0 {
					t.Errorf("y velocity did not flip: %v -> %v", tt.velocity, next.Ball.Velocity)
				}
			}

			assertContained(t, next)
			assertElastic(t, s, next)
		})
	}
}

func TestBlockDestroyedOnUpwardPath(t *testing.T) {
	block := Block{Position: vec.New(45, 20), Width: 10, Height: 4, Density: 1, Points: 10}
	s := testLayout([]Block{block}).NewState()
	s.Ball.Center = vec.New(50, 40)
	s.Ball.Velocity = vec.New(0, -0.05)

	// One tick long enough to carry the ball into the block.
	next := Tick(s, MoveNone, 300)

	if len(next.Blocks) != 0 {
		t.Fatalf("block should be destroyed, %d remaining", len(next.Blocks))
	}
	if next.Ball.Velocity.Y <= 0 {
		t.Errorf("ball should reflect downward off block underside, velocity %v", next.Ball.Velocity)
	}
	if next.Score != 10 {
		t.Errorf("score = %d, want 10", next.Score)
	}
	assertElastic(t, s, next)
}

func TestDenseBlockSurvivesFirstHit(t *testing.T) {
	block := Block{Position: vec.New(45, 20), Width: 10, Height: 4, Density: 3, Points: 30}
	s := testLayout([]Block{block}).NewState()
	s.Ball.Center = vec.New(50, 40)
	s.Ball.Velocity = vec.New(0, -0.05)

	next := Tick(s, MoveNone, 300)

	if len(next.Blocks) != 1 {
		t.Fatalf("block should survive, %d remaining", len(next.Blocks))
	}
	if next.Blocks[0].Density != 2 {
		t.Errorf("density = %d, want 2", next.Blocks[0].Density)
	}
	if next.Score != 0 {
		t.Errorf("score awarded before destruction: %d", next.Score)
	}
	// Input state must be untouched.
	if s.Blocks[0].Density != 3 {
		t.Errorf("input state mutated: density %d", s.Blocks[0].Density)
	}
}

func TestPaddleBounceSendsBallUp(t *testing.T) {
	s := testLayout(nil).NewState()
	s.Ball.Center = vec.New(50, 86)
	s.Ball.Velocity = vec.New(0.01, 0.04)

	next := Tick(s, MoveNone, 60)

	if next.Ball.Velocity.Y >= 0 {
		t.Errorf("ball should move up after paddle bounce, velocity %v", next.Ball.Velocity)
	}
	assertElastic(t, s, next)
	assertContained(t, next)
}

func TestPaddleBounceShaping(t *testing.T) {
	// A hit near the left edge of the paddle sends the ball left,
	// near the right edge sends it right.
	s := testLayout(nil).NewState()
	s.Ball.Center = vec.New(41, 86) // left edge of paddle at x=40
	s.Ball.Velocity = vec.New(0.02, 0.04)
	next := Tick(s, MoveNone, 60)
	if next.Ball.Velocity.X >= 0 {
		t.Errorf("left-edge hit should send ball left, velocity %v", next.Ball.Velocity)
	}
	assertElastic(t, s, next)

	s.Ball.Center = vec.New(59, 86)
	s.Ball.Velocity = vec.New(-0.02, 0.04)
	next = Tick(s, MoveNone, 60)
	if next.Ball.Velocity.X <= 0 {
		t.Errorf("right-edge hit should send ball right, velocity %v", next.Ball.Velocity)
	}
	assertElastic(t, s, next)
}

func TestMissResetsLayoutAndDecrementsLives(t *testing.T) {
	blocks := []Block{{Position: vec.New(45, 20), Width: 10, Height: 4, Density: 2, Points: 20}}
	layout := testLayout(blocks)
	initial := layout.NewState()

	s := initial.clone()
	s.Paddle.Position = vec.New(0, 90) // paddle far away, ball falls past it
	s.Ball.Center = vec.New(70, 95)
	s.Ball.Velocity = vec.New(0, 0.05)
	s.Score = 40

	next := Tick(s, MoveNone, 100)

	if next.Lives != initial.Lives-1 {
		t.Errorf("lives = %d, want %d", next.Lives, initial.Lives-1)
	}
	if next.Ball.Center != initial.Ball.Center {
		t.Errorf("ball not reset: %v, want %v", next.Ball.Center, initial.Ball.Center)
	}
	if next.Paddle.Position != initial.Paddle.Position {
		t.Errorf("paddle not reset: %v, want %v", next.Paddle.Position, initial.Paddle.Position)
	}
	if len(next.Blocks) != len(blocks) || next.Blocks[0].Density != 2 {
		t.Errorf("blocks not rebuilt from layout: %+v", next.Blocks)
	}
	if next.Score != 40 {
		t.Errorf("score should survive a miss: %d", next.Score)
	}
}

func TestMonotonicity(t *testing.T) {
	blocks := []Block{
		{Position: vec.New(20, 20), Width: 10, Height: 4, Density: 1, Points: 10},
		{Position: vec.New(45, 20), Width: 10, Height: 4, Density: 2, Points: 20},
		{Position: vec.New(70, 20), Width: 10, Height: 4, Density: 1, Points: 10},
	}
	s := testLayout(blocks).NewState()

	movements := []Movement{MoveLeft, MoveRight, MoveNone}
	for i := 0; i < 600; i++ {
		next := Tick(s, movements[i%len(movements)], 16)

		if next.Lives > s.Lives {
			t.Fatalf("tick %d: lives grew from %d to %d", i, s.Lives, next.Lives)
		}
		// A miss rebuilds the block set from the blueprint, so the
		// block count only shrinks within one ball-in-play run.
		if next.Lives == s.Lives && len(next.Blocks) > len(s.Blocks) {
			t.Fatalf("tick %d: blocks grew from %d to %d", i, len(s.Blocks), len(next.Blocks))
		}
		if next.Lives < s.Lives && len(next.Blocks) != len(blocks) {
			t.Fatalf("tick %d: miss rebuilt %d blocks, want %d", i, len(next.Blocks), len(blocks))
		}
		assertContained(t, next)

		if next.Lives <= 0 {
			break
		}
		s = next
	}
}

func TestTickDeterminism(t *testing.T) {
	blocks := []Block{{Position: vec.New(45, 20), Width: 10, Height: 4, Density: 2, Points: 20}}

	run := func() State {
		s := testLayout(blocks).NewState()
		movements := []Movement{MoveRight, MoveRight, MoveNone, MoveLeft}
		for i := 0; i < 400; i++ {
			s = Tick(s, movements[i%len(movements)], 16)
		}
		return s
	}

	a, b := run(), run()
	if a.Ball != b.Ball || a.Paddle != b.Paddle || a.Lives != b.Lives ||
		a.Score != b.Score || len(a.Blocks) != len(b.Blocks) {
		t.Errorf("identical runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	blocks := []Block{{Position: vec.New(45, 20), Width: 10, Height: 4, Density: 1, Points: 10}}
	s := testLayout(blocks).NewState()
	before := s.clone()

	Tick(s, MoveRight, 16)

	if s.Ball != before.Ball || s.Paddle != before.Paddle || s.Lives != before.Lives {
		t.Error("Tick mutated its input state")
	}
	if len(s.Blocks) != len(before.Blocks) || s.Blocks[0] != before.Blocks[0] {
		t.Error("Tick mutated the input block collection")
	}
}

// assertElastic checks that speed magnitude is conserved across a tick,
// unless the tick resolved as a miss (which resets the ball).
func assertElastic(t *testing.T, before, after State) {
	t.Helper()
	if after.Lives != before.Lives {
		return
	}
	b, a := before.Ball.Velocity.Length(), after.Ball.Velocity.Length()
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("collision not elastic: speed %v -> %v", b, a)
	}
}

// assertContained checks the ball center stays on the board.
func assertContained(t *testing.T, s State) {
	t.Helper()
	c := s.Ball.Center
	if c.X < 0 || c.X > s.Size.Width || c.Y < 0 || c.Y > s.Size.Height {
		t.Errorf("ball center %v escaped board %+v", c, s.Size)
	}
}
