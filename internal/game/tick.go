package game

import "github.com/arcadeworks/breaker/internal/vec"

// paddleShaping controls how strongly the paddle-relative hit offset
// re-aims the ball's horizontal direction. 0 would bounce purely off
// the surface normal; 1 sends edge hits out at 45 degrees.
const paddleShaping = 0.8

// Tick advances the simulation by dtMs milliseconds and returns the
// next state. It is a pure function: the input state is never mutated,
// and the same inputs always produce the same output.
//
// Order of operations: paddle motion, ball motion, bottom-edge miss,
// wall reflection, then at most one paddle-or-block collision response.
// A miss returns a state rebuilt from the level blueprint with lives
// decremented; whether a zero-life or zero-block state restarts or
// advances the level is the session layer's call, not Tick's.
func Tick(s State, movement Movement, dtMs float64) State {
	next := s.clone()

	next.Paddle = steppedPaddle(s.Paddle, movement, dtMs, s.Size)
	next.Ball.Center = s.Ball.Center.Add(s.Ball.Velocity.ScaleBy(dtMs))

	// Crossing the bottom edge is a miss, not a bounce. The returned
	// state resets ball, paddle, and blocks from the blueprint.
	if next.Ball.Center.Y+next.Ball.Radius >= s.Size.Height {
		return s.layout.restate(s.Lives-1, s.Score)
	}

	next.Ball = bounceOffWalls(next.Ball, s.Size)

	// One collision response per tick, paddle checked before blocks,
	// blocks in stored order. This keeps resolution independent of
	// how many surfaces the swept path grazed.
	if ball, hit := bounceOffPaddle(next.Ball, next.Paddle); hit {
		next.Ball = ball
		return next
	}

	for i, block := range next.Blocks {
		if !block.rect().intersectsCircle(next.Ball.Center, next.Ball.Radius) {
			continue
		}
		ball, hit := bounceOffRect(next.Ball, block.rect())
		if !hit {
			continue
		}
		next.Ball = ball

		block.Density--
		if block.Density <= 0 {
			next.Score += block.Points
			next.Blocks = append(next.Blocks[:i], next.Blocks[i+1:]...)
		} else {
			next.Blocks[i] = block
		}
		break
	}

	return next
}

// steppedPaddle shifts the paddle by the movement intent and clamps it
// so its full span stays inside [0, width].
func steppedPaddle(p Paddle, movement Movement, dtMs float64, size Size) Paddle {
	switch movement {
	case MoveLeft:
		p.Position = p.Position.Add(vec.New(-PaddleSpeed*dtMs, 0))
	case MoveRight:
		p.Position = p.Position.Add(vec.New(PaddleSpeed*dtMs, 0))
	}
	p.Position.X = clamp(p.Position.X, 0, size.Width-p.Width)
	return p
}

// bounceOffWalls reflects the ball off the left, right, and top
// boundaries and repositions it so it no longer penetrates. The bottom
// edge is handled by the miss check in Tick, never here.
func bounceOffWalls(b Ball, size Size) Ball {
	if b.Center.X-b.Radius < 0 {
		b.Velocity = b.Velocity.Reflect(vec.New(1, 0))
		b.Center.X = b.Radius
	} else if b.Center.X+b.Radius > size.Width {
		b.Velocity = b.Velocity.Reflect(vec.New(-1, 0))
		b.Center.X = size.Width - b.Radius
	}

	if b.Center.Y-b.Radius < 0 {
		b.Velocity = b.Velocity.Reflect(vec.New(0, 1))
		b.Center.Y = b.Radius
	}

	return b
}

// bounceOffPaddle resolves a ball-paddle collision. A hit off the top
// face additionally re-aims the horizontal direction by where on the
// paddle the ball landed, with the speed magnitude re-normalized so
// the collision stays elastic.
func bounceOffPaddle(b Ball, p Paddle) (Ball, bool) {
	r := p.rect()
	if !r.intersectsCircle(b.Center, b.Radius) {
		return b, false
	}

	bounced, hit := bounceOffRect(b, r)
	if !hit {
		return b, false
	}

	// Angle shaping only applies to top-face hits; edge hits keep the
	// plain reflection.
	if bounced.Center.Y < r.y {
		speed := b.Velocity.Length()
		center := p.Position.X + p.Width/2
		offset := clamp((b.Center.X-center)/(p.Width/2), -1, 1)
		bounced.Velocity = vec.New(offset*paddleShaping, -1).Normalize().ScaleBy(speed)
	}

	return bounced, true
}

// bounceOffRect reflects the ball off the struck side of a rectangle
// and repositions it just outside along that side's unit normal. The
// struck side is the one with the smallest penetration depth; sides
// the ball is moving away from are never chosen, so a ball exiting a
// surface is not re-bounced.
func bounceOffRect(b Ball, r rect) (Ball, bool) {
	type side struct {
		depth  float64
		normal vec.Vector
	}

	sides := []side{
		{depth: b.Center.Y + b.Radius - r.y, normal: vec.New(0, -1)},
		{depth: r.bottom() - (b.Center.Y - b.Radius), normal: vec.New(0, 1)},
		{depth: b.Center.X + b.Radius - r.x, normal: vec.New(-1, 0)},
		{depth: r.right() - (b.Center.X - b.Radius), normal: vec.New(1, 0)},
	}

	best := side{depth: -1}
	for _, c := range sides {
		if c.depth < 0 {
			continue
		}
		// Only sides the ball is moving into are candidates.
		if b.Velocity.DotProduct(c.normal) >= 0 {
			continue
		}
		if best.depth < 0 || c.depth < best.depth {
			best = c
		}
	}

	if best.depth < 0 {
		return b, false
	}

	b.Velocity = b.Velocity.Reflect(best.normal)

	switch {
	case best.normal.Y < 0:
		b.Center.Y = r.y - b.Radius
	case best.normal.Y > 0:
		b.Center.Y = r.bottom() + b.Radius
	case best.normal.X < 0:
		b.Center.X = r.x - b.Radius
	default:
		b.Center.X = r.right() + b.Radius
	}

	return b, true
}
