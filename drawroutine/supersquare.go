package drawroutine

func superSquareRoutines() []Info {
	return []Info{
		{
			ID: Floor2x2In4x4SuperSquare, Name: "Floor2x2In4x4SuperSquare",
			Draw:      superSquares(4, shape2x2),
			TileCount: 4,
		},
		{
			ID: Floor3x3In4x4SuperSquare, Name: "Floor3x3In4x4SuperSquare",
			Draw:      drawFloor3x3InSuperSquares,
			TileCount: 9,
		},
		{
			ID: Floor4x4In4x4SuperSquare, Name: "Floor4x4In4x4SuperSquare",
			Draw:      superSquares(4, shape4x4, shape2x2),
			TileCount: 16,
		},
		{
			ID: WaterOverlay8x8_1to16, Name: "WaterOverlay8x8_1to16",
			Draw:      superSquares(8, shape4x4, shape2x2),
			TileCount: 16,
		},
	}
}

// gridSize unpacks the size byte of a super square object: (size&3)+1
// squares across and ((size>>2)&3)+1 down.
func gridSize(size uint8) (cols, rows int) {
	return int(size&3) + 1, int(size>>2&3) + 1
}

// superSquares covers a grid of cell×cell squares by tiling the first block
// of chain the span can fill.
func superSquares(cell int, chain ...shape) Routine {
	return func(c *Context) {
		s, ok := fit(c.Tiles, chain...)
		if !ok {
			return
		}
		cols, rows := gridSize(c.size())
		x, y := c.origin()
		c.fillColMajor(x, y, cols*cell, rows*cell, s, c.Tiles)
	}
}

// drawFloor3x3InSuperSquares puts one 3x3 block in the top left of each
// 4x4 square. The last row and column of every square are left alone.
func drawFloor3x3InSuperSquares(c *Context) {
	if len(c.Tiles) < shape3x3.n() {
		return
	}
	cols, rows := gridSize(c.size())
	x, y := c.origin()
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			c.colMajor(x+col*4, y+row*4, shape3x3, c.Tiles)
		}
	}
}
