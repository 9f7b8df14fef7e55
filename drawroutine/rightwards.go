package drawroutine

import "roomdraw/tile"

func rightwardsRoutines() []Info {
	return []Info{
		{
			ID: Rightwards2x2_1to15or32, Name: "Rightwards2x2_1to15or32",
			Draw:       rightwards(2, shape2x2),
			BaseHeight: 2, Repeat: rep1to15or32, TileCount: 4,
		},
		{
			ID: Rightwards2x4_1to15or26, Name: "Rightwards2x4_1to15or26",
			Draw:       rightwards(2, shape2x4, shape2x2),
			BaseHeight: 4, Repeat: rep1to15or26, TileCount: 8,
		},
		{
			ID: Rightwards2x4spaced4_1to16, Name: "Rightwards2x4spaced4_1to16",
			Draw:       rightwards(6, shape2x4, shape2x2),
			BaseHeight: 4, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: Rightwards2x4spaced4_1to16_BothBG, Name: "Rightwards2x4spaced4_1to16_BothBG",
			Draw:           rightwards(6, shape2x4, shape2x2),
			DrawsToBothBGs: true,
			BaseHeight:     4, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: Rightwards2x2_1to16, Name: "Rightwards2x2_1to16",
			Draw:       rightwards(2, shape2x2),
			BaseHeight: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: RightwardsHasEdge1x1_1to16_plus3, Name: "RightwardsHasEdge1x1_1to16_plus3",
			Draw:       hasEdge(1, 0),
			BaseHeight: 1, Repeat: repPlus3, TileCount: 3,
		},
		{
			ID: RightwardsHasEdge1x1_1to16_plus2, Name: "RightwardsHasEdge1x1_1to16_plus2",
			Draw:       hasEdge(1, 0),
			BaseHeight: 1, Repeat: repPlus2, TileCount: 3,
		},
		{
			ID: RightwardsTopCorners1x2_1to16_plus13, Name: "RightwardsTopCorners1x2_1to16_plus13",
			Draw:       cornersRowMajor(13, false),
			BaseHeight: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: RightwardsBottomCorners1x2_1to16_plus13, Name: "RightwardsBottomCorners1x2_1to16_plus13",
			Draw:       cornersRowMajor(13, true),
			BaseHeight: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: Rightwards1x2_1to16_plus2, Name: "Rightwards1x2_1to16_plus2",
			Draw:       rightwards(1, shape1x2),
			BaseHeight: 2, Repeat: repPlus2, TileCount: 2,
		},
		{
			ID: Rightwards4x4_1to16, Name: "Rightwards4x4_1to16",
			Draw:       rightwards(4, shape4x4, shape2x4, shape2x2),
			BaseHeight: 4, Repeat: rep1to16, TileCount: 16,
		},
		{
			ID: Rightwards1x1Solid_1to16_plus3, Name: "Rightwards1x1Solid_1to16_plus3",
			Draw:       rightwards(1, shape1x1),
			BaseHeight: 1, Repeat: repPlus3, TileCount: 1,
		},
		{
			ID: RightwardsDecor4x4spaced2_1to16, Name: "RightwardsDecor4x4spaced2_1to16",
			Draw:       rightwards(6, shape4x4, shape2x4, shape2x2),
			BaseHeight: 4, Repeat: rep1to16, TileCount: 16,
		},
		{
			ID: RightwardsStatue2x3spaced2_1to16, Name: "RightwardsStatue2x3spaced2_1to16",
			Draw:       rightwards(4, shape2x3, shape2x2),
			BaseHeight: 3, Repeat: rep1to16, TileCount: 6,
		},
		{
			ID: RightwardsPillar2x4spaced4_1to16, Name: "RightwardsPillar2x4spaced4_1to16",
			Draw:       rightwards(6, shape2x4, shape2x2),
			BaseHeight: 4, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: RightwardsDecor4x3spaced4_1to16, Name: "RightwardsDecor4x3spaced4_1to16",
			Draw:       rightwards(8, shape4x3, shape2x2),
			BaseHeight: 3, Repeat: rep1to16, TileCount: 12,
		},
		{
			ID: RightwardsDoubled2x2spaced2_1to16, Name: "RightwardsDoubled2x2spaced2_1to16",
			Draw:       drawRightwardsDoubled2x2spaced2,
			BaseHeight: 2, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: RightwardsDecor2x2spaced12_1to16, Name: "RightwardsDecor2x2spaced12_1to16",
			Draw:       rightwards(14, shape2x2),
			BaseHeight: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: RightwardsBigRail1x3_1to16plus5, Name: "RightwardsBigRail1x3_1to16plus5",
			Draw:       capped(3, 1, 1, 0),
			BaseHeight: 3, Repeat: repPlus4, TileCount: 9,
		},
		{
			ID: RightwardsEdge1x1_1to16plus7, Name: "RightwardsEdge1x1_1to16plus7",
			Draw:       rightwards(1, shape1x1),
			BaseHeight: 1, Repeat: repPlus7, TileCount: 1,
		},
		{
			ID: Waterfall47, Name: "Waterfall47",
			Draw:       capped(5, 2, 1, 0),
			BaseHeight: 5, Repeat: rep1to16, TileCount: 15,
		},
		{
			ID: Waterfall48, Name: "Waterfall48",
			Draw:       capped(3, 2, 1, 0),
			BaseHeight: 3, Repeat: rep1to16, TileCount: 9,
		},
		{
			ID: RightwardsFloorTile4x2_1to16, Name: "RightwardsFloorTile4x2_1to16",
			Draw:       rightwards(4, shape4x2, shape2x2),
			BaseHeight: 2, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: RightwardsCannonHole4x3_1to16, Name: "RightwardsCannonHole4x3_1to16",
			Draw:       rightwards(4, shape4x3, shape2x2),
			BaseHeight: 3, Repeat: rep1to16, TileCount: 12,
		},
		{
			ID: RightwardsLine1x1_1to16plus1, Name: "RightwardsLine1x1_1to16plus1",
			Draw:       rightwards(1, shape1x1),
			BaseHeight: 1, Repeat: repPlus2, TileCount: 1,
		},
		{
			ID: RightwardsDecor4x2spaced8_1to16, Name: "RightwardsDecor4x2spaced8_1to16",
			Draw:       rightwards(12, shape4x2, shape2x2),
			BaseHeight: 2, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: RightwardsBlock2x2spaced2_1to16, Name: "RightwardsBlock2x2spaced2_1to16",
			Draw:       rightwards(4, shape2x2),
			BaseHeight: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: RightwardsHasEdge1x1_1to16_plus23, Name: "RightwardsHasEdge1x1_1to16_plus23",
			Draw:       hasEdge(1, 0),
			BaseHeight: 1, Repeat: repPlus23, TileCount: 3,
		},
		{
			ID: Rightwards2x4_1to16, Name: "Rightwards2x4_1to16",
			Draw:       rightwards(2, shape2x4, shape2x2),
			BaseHeight: 4, Repeat: rep1to16, TileCount: 8,
		},
	}
}

// hasEdge draws t0, then n copies of t1, then t2 along (dx,dy).
// Spans shorter than three tiles draw the whole run with t0.
func hasEdge(dx, dy int) Routine {
	return func(c *Context) {
		if len(c.Tiles) == 0 {
			return
		}
		edgeL, mid, edgeR := c.Tiles[0], c.Tiles[0], c.Tiles[0]
		if len(c.Tiles) >= 3 {
			mid, edgeR = c.Tiles[1], c.Tiles[2]
		}

		x, y := c.origin()
		n := c.count()
		c.Put(x, y, edgeL)
		for i := 1; i <= n; i++ {
			c.Put(x+i*dx, y+i*dy, mid)
		}
		c.Put(x+(n+1)*dx, y+(n+1)*dy, edgeR)
	}
}

// cornersRowMajor draws a 2x2 corner piece every step columns. These are the
// only routines that lay their block out row-major. bottomFirst starts the
// piece on the lower row.
func cornersRowMajor(step int, bottomFirst bool) Routine {
	return func(c *Context) {
		if len(c.Tiles) < 4 {
			return
		}
		x, y := c.origin()
		n := c.count()
		for i := 0; i < n; i++ {
			px := x + i*step
			if !bottomFirst {
				c.rowMajor(px, y, shape2x2, c.Tiles)
				continue
			}
			c.rowMajor(px, y+1, shape2x1, c.Tiles[0:2])
			c.rowMajor(px, y, shape2x1, c.Tiles[2:4])
		}
	}
}

// drawRightwardsDoubled2x2spaced2 draws two different 2x2 blocks side by
// side, then skips 2 columns.
func drawRightwardsDoubled2x2spaced2(c *Context) {
	if len(c.Tiles) < 4 {
		return
	}
	left, right := c.Tiles[0:4], c.Tiles[0:4]
	if len(c.Tiles) >= 8 {
		right = c.Tiles[4:8]
	}

	x, y := c.origin()
	n := c.count()
	for i := 0; i < n; i++ {
		c.colMajor(x+i*6, y, shape2x2, left)
		c.colMajor(x+i*6+2, y, shape2x2, right)
	}
}

// capped draws a cap segment, mult*n middle segments and a closing cap.
// Segments are seg tiles long and run perpendicular to (dx,dy), the
// direction of travel. Spans too short for three segments draw every
// segment from the first seg tiles.
func capped(seg, mult, dx, dy int) Routine {
	return func(c *Context) {
		if len(c.Tiles) < seg {
			return
		}
		capL, mid, capR := c.Tiles[0:seg], c.Tiles[0:seg], c.Tiles[0:seg]
		if len(c.Tiles) >= 3*seg {
			mid, capR = c.Tiles[seg:2*seg], c.Tiles[2*seg:3*seg]
		}

		x, y := c.origin()
		n := mult * c.count()
		segment := func(i int, ts []tile.Info) {
			for j, t := range ts {
				c.Put(x+i*dx+j*dy, y+i*dy+j*dx, t)
			}
		}
		segment(0, capL)
		for i := 1; i <= n; i++ {
			segment(i, mid)
		}
		segment(n+1, capR)
	}
}
