package drawroutine

func diagonalRoutines() []Info {
	return []Info{
		{
			ID: DiagonalAcute_1to16, Name: "DiagonalAcute_1to16",
			Draw:   diagonal(-1),
			Repeat: repPlus7, TileCount: 5,
		},
		{
			ID: DiagonalGrave_1to16, Name: "DiagonalGrave_1to16",
			Draw:   diagonal(1),
			Repeat: repPlus7, TileCount: 5,
		},
		{
			ID: DiagonalAcute_1to16_BothBG, Name: "DiagonalAcute_1to16_BothBG",
			Draw:           diagonal(-1),
			DrawsToBothBGs: true,
			Repeat:         repDiagBoth, TileCount: 5,
		},
		{
			ID: DiagonalGrave_1to16_BothBG, Name: "DiagonalGrave_1to16_BothBG",
			Draw:           diagonal(1),
			DrawsToBothBGs: true,
			Repeat:         repDiagBoth, TileCount: 5,
		},
		{
			ID: DiagonalCeilingTopLeft, Name: "DiagonalCeilingTopLeft",
			Draw:   ceiling(true, true),
			Repeat: repPlus4, TileCount: 1,
		},
		{
			ID: DiagonalCeilingBottomLeft, Name: "DiagonalCeilingBottomLeft",
			Draw:   ceiling(false, true),
			Repeat: repPlus4, TileCount: 1,
		},
		{
			ID: DiagonalCeilingTopRight, Name: "DiagonalCeilingTopRight",
			Draw:   ceiling(true, false),
			Repeat: repPlus4, TileCount: 1,
		},
		{
			ID: DiagonalCeilingBottomRight, Name: "DiagonalCeilingBottomRight",
			Draw:   ceiling(false, false),
			Repeat: repPlus4, TileCount: 1,
		},
	}
}

// diagonal draws a 5-tile column, moving one tile right and dy tiles down
// per iteration. Acute walls climb (dy = -1), grave walls descend.
func diagonal(dy int) Routine {
	return func(c *Context) {
		if len(c.Tiles) < 5 {
			return
		}
		x, y := c.origin()
		n := c.count()
		for i := 0; i < n; i++ {
			for j := 0; j < 5; j++ {
				c.Put(x+i, y+i*dy+j, c.Tiles[j])
			}
		}
	}
}

// ceiling fills an n×n right triangle with t0. The right angle sits in the
// top or bottom, left or right corner of the square at the origin.
func ceiling(top, left bool) Routine {
	return func(c *Context) {
		if len(c.Tiles) == 0 {
			return
		}
		x, y := c.origin()
		n := c.count()
		for row := 0; row < n; row++ {
			w := row + 1
			if top {
				w = n - row
			}
			x0 := x
			if !left {
				x0 = x + n - w
			}
			for col := 0; col < w; col++ {
				c.Put(x0+col, y+row, c.Tiles[0])
			}
		}
	}
}
