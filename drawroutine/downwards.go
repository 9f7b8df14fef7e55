package drawroutine

func downwardsRoutines() []Info {
	return []Info{
		{
			ID: Downwards2x2_1to15or32, Name: "Downwards2x2_1to15or32",
			Draw:      downwards(2, shape2x2),
			BaseWidth: 2, Repeat: rep1to15or32, TileCount: 4,
		},
		{
			ID: Downwards4x2_1to15or26, Name: "Downwards4x2_1to15or26",
			Draw:      downwards(2, shape4x2, shape2x2),
			BaseWidth: 4, Repeat: rep1to15or26, TileCount: 8,
		},
		{
			ID: Downwards4x2_1to16_BothBG, Name: "Downwards4x2_1to16_BothBG",
			Draw:           downwards(2, shape4x2, shape2x2),
			DrawsToBothBGs: true,
			BaseWidth:      4, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: DownwardsDecor4x2spaced4_1to16, Name: "DownwardsDecor4x2spaced4_1to16",
			Draw:      downwards(6, shape4x2, shape2x2),
			BaseWidth: 4, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: Downwards2x2_1to16, Name: "Downwards2x2_1to16",
			Draw:      downwards(2, shape2x2),
			BaseWidth: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: DownwardsHasEdge1x1_1to16_plus3, Name: "DownwardsHasEdge1x1_1to16_plus3",
			Draw:      hasEdge(0, 1),
			BaseWidth: 1, Repeat: repPlus3, TileCount: 3,
		},
		{
			ID: DownwardsEdge1x1_1to16, Name: "DownwardsEdge1x1_1to16",
			Draw:      downwards(1, shape1x1),
			BaseWidth: 1, Repeat: rep1to16, TileCount: 1,
		},
		{
			ID: DownwardsLeftCorners2x1_1to16_plus12, Name: "DownwardsLeftCorners2x1_1to16_plus12",
			Draw:      downwards(12, shape2x1),
			BaseWidth: 2, Repeat: rep1to16, TileCount: 2,
		},
		{
			ID: DownwardsRightCorners2x1_1to16_plus12, Name: "DownwardsRightCorners2x1_1to16_plus12",
			Draw:      drawDownwardsRightCorners,
			BaseWidth: 2, Repeat: rep1to16, TileCount: 2,
		},
		{
			ID: DownwardsFloor4x4_1to16, Name: "DownwardsFloor4x4_1to16",
			Draw:      downwards(4, shape4x4, shape4x2, shape2x2),
			BaseWidth: 4, Repeat: rep1to16, TileCount: 16,
		},
		{
			ID: Downwards1x1Solid_1to16_plus3, Name: "Downwards1x1Solid_1to16_plus3",
			Draw:      downwards(1, shape1x1),
			BaseWidth: 1, Repeat: repPlus3, TileCount: 1,
		},
		{
			ID: DownwardsDecor4x4spaced2_1to16, Name: "DownwardsDecor4x4spaced2_1to16",
			Draw:      downwards(6, shape4x4, shape4x2, shape2x2),
			BaseWidth: 4, Repeat: rep1to16, TileCount: 16,
		},
		{
			ID: DownwardsPillar2x4spaced2_1to16, Name: "DownwardsPillar2x4spaced2_1to16",
			Draw:      downwards(6, shape2x4, shape2x2),
			BaseWidth: 2, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: DownwardsDecor3x4spaced4_1to16, Name: "DownwardsDecor3x4spaced4_1to16",
			Draw:      downwards(8, shape3x4, shape2x2),
			BaseWidth: 3, Repeat: rep1to16, TileCount: 12,
		},
		{
			ID: DownwardsDecor2x2spaced12_1to16, Name: "DownwardsDecor2x2spaced12_1to16",
			Draw:      downwards(14, shape2x2),
			BaseWidth: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: DownwardsLine1x1_1to16plus1, Name: "DownwardsLine1x1_1to16plus1",
			Draw:      downwards(1, shape1x1),
			BaseWidth: 1, Repeat: repPlus2, TileCount: 1,
		},
		{
			ID: DownwardsBigRail3x1_1to16plus5, Name: "DownwardsBigRail3x1_1to16plus5",
			Draw:      capped(3, 1, 0, 1),
			BaseWidth: 3, Repeat: repPlus4, TileCount: 9,
		},
		{
			ID: DownwardsDecor2x4spaced8_1to16, Name: "DownwardsDecor2x4spaced8_1to16",
			Draw:      downwards(12, shape2x4, shape2x2),
			BaseWidth: 2, Repeat: rep1to16, TileCount: 8,
		},
		{
			ID: DownwardsDecor3x4spaced2_1to16, Name: "DownwardsDecor3x4spaced2_1to16",
			Draw:      downwards(6, shape3x4, shape2x2),
			BaseWidth: 3, Repeat: rep1to16, TileCount: 12,
		},
		{
			ID: DownwardsCannonHole3x6_1to16, Name: "DownwardsCannonHole3x6_1to16",
			Draw:      downwards(6, shape3x6, shape3x4, shape2x2),
			BaseWidth: 3, Repeat: rep1to16, TileCount: 18,
		},
		{
			ID: DownwardsBlock2x2spaced2_1to16, Name: "DownwardsBlock2x2spaced2_1to16",
			Draw:      downwards(4, shape2x2),
			BaseWidth: 2, Repeat: rep1to16, TileCount: 4,
		},
		{
			ID: DownwardsHasEdge1x1_1to16_plus23, Name: "DownwardsHasEdge1x1_1to16_plus23",
			Draw:      hasEdge(0, 1),
			BaseWidth: 1, Repeat: repPlus23, TileCount: 3,
		},
		{
			ID: DownwardsBar2x5_1to16, Name: "DownwardsBar2x5_1to16",
			Draw:      downwards(5, shape2x5, shape2x4, shape2x2),
			BaseWidth: 2, Repeat: rep1to16, TileCount: 10,
		},
	}
}

// drawDownwardsRightCorners is the mirror of the left corners: tile 1 sits
// on the left and tile 0 on the right.
func drawDownwardsRightCorners(c *Context) {
	if len(c.Tiles) < 2 {
		return
	}
	x, y := c.origin()
	n := c.count()
	for i := 0; i < n; i++ {
		c.Put(x, y+i*12, c.Tiles[1])
		c.Put(x+1, y+i*12, c.Tiles[0])
	}
}
