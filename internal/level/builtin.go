package level

// Standard board geometry for built-in levels. Block layouts are
// authored as ASCII grids and projected onto the top band of the board.
const (
	boardWidth  = 100.0
	boardHeight = 100.0

	blockAreaTop = 8.0
	blockHeight  = 4.0
	blockGap     = 0.5

	paddleWidth  = 18.0
	paddleHeight = 2.0
	ballRadius   = 1.5
)

// parseGrid builds a descriptor from an ASCII block layout.
// Characters:
//
//	'#'      = block with density 1
//	'1'-'9'  = block with that density
//	'.'      = empty cell
func parseGrid(id, name string, lines []string) Descriptor {
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}

	var blocks []BlockSpec
	if cols > 0 {
		cellW := boardWidth / float64(cols)
		for row, line := range lines {
			for col := range line {
				density := 0
				switch ch := line[col]; {
				case ch == '#':
					density = 1
				case ch >= '1' && ch <= '9':
					density = int(ch - '0')
				}
				if density == 0 {
					continue
				}
				blocks = append(blocks, BlockSpec{
					Position: PointSpec{
						X: float64(col)*cellW + blockGap/2,
						Y: blockAreaTop + float64(row)*(blockHeight+blockGap),
					},
					Width:   cellW - blockGap,
					Height:  blockHeight,
					Density: density,
				})
			}
		}
	}

	return Descriptor{
		ID:     id,
		Name:   name,
		Size:   SizeSpec{Width: boardWidth, Height: boardHeight},
		Blocks: blocks,
		Paddle: PaddleSpec{
			Position: PointSpec{X: (boardWidth - paddleWidth) / 2, Y: boardHeight - 6},
			Width:    paddleWidth,
			Height:   paddleHeight,
		},
		Ball: BallSpec{
			Center: PointSpec{X: boardWidth / 2, Y: boardHeight - 10},
			Radius: ballRadius,
		},
	}
}

// Builtin returns the built-in level set, in campaign order.
func Builtin() []Descriptor {
	return []Descriptor{
		parseGrid("classic", "Classic", []string{
			"##########",
			"##########",
			"##########",
			"##########",
		}),

		parseGrid("pyramid", "Pyramid", []string{
			"....##....",
			"...####...",
			"..######..",
			".########.",
			"##########",
		}),

		parseGrid("checker", "Checkerboard", []string{
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
		}),

		parseGrid("fortress", "Fortress", []string{
			"2222222222",
			"2........2",
			"2.######.2",
			"2.######.2",
			"2........2",
			"2222222222",
		}),

		parseGrid("boss", "Final Boss", []string{
			"3333333333",
			"3########3",
			"3########3",
			"3########3",
			"3333333333",
		}),
	}
}

// ByID returns a built-in level by its ID.
func ByID(id string) (Descriptor, bool) {
	for _, d := range Builtin() {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ByIndex returns a built-in level by campaign index, clamped to the
// final level so an out-of-range saved index stays playable.
func ByIndex(index int) Descriptor {
	levels := Builtin()
	if index < 0 {
		index = 0
	}
	if index >= len(levels) {
		index = len(levels) - 1
	}
	return levels[index]
}

// Count returns the number of built-in levels.
func Count() int {
	return len(Builtin())
}
