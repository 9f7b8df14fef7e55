package drawroutine

import "roomdraw/tile"

func specialRoutines() []Info {
	return []Info{
		{
			ID: DoorSwitcherer, Name: "DoorSwitcherer",
			Draw:      drawDoorSwitcherer,
			BaseWidth: 1, BaseHeight: 1, TileCount: 2,
		},
		{
			ID: BigHole4x4_1to16, Name: "BigHole4x4_1to16",
			Draw:      superSquares(4, shape4x4, shape2x2),
			TileCount: 16,
		},
		{
			ID: Chest, Name: "Chest",
			Draw:      drawChest,
			BaseWidth: 2, BaseHeight: 2, TileCount: 8,
		},
		{
			ID: BigChest, Name: "BigChest",
			Draw:      drawBigChest,
			BaseWidth: 4, BaseHeight: 4, TileCount: 32,
		},
		{
			ID: SomariaLine, Name: "SomariaLine",
			Draw:   drawSomariaLine,
			Repeat: rep1to16, TileCount: 1,
		},
		{
			ID: WaterFace, Name: "WaterFace",
			Draw:      single(shape4x3, shape2x2),
			BaseWidth: 4, BaseHeight: 3, TileCount: 12,
		},
		{
			ID: RupeeFloor, Name: "RupeeFloor",
			Draw:      drawRupeeFloor,
			BaseWidth: 5, BaseHeight: 8, TileCount: 2,
		},
		{
			ID: BombableFloor, Name: "BombableFloor",
			Draw:      drawBombableFloor,
			BaseWidth: 4, BaseHeight: 4, TileCount: 32,
		},
		{
			ID: CrystalPegs, Name: "CrystalPegs",
			Draw:      drawCrystalPegs,
			BaseWidth: 2, BaseHeight: 2, TileCount: 8,
		},
		{
			ID: MovingWallWest, Name: "MovingWallWest",
			Draw:      movingWall(false),
			BaseWidth: 3, Repeat: repPlus10, TileCount: 3,
		},
		{
			ID: MovingWallEast, Name: "MovingWallEast",
			Draw:      movingWall(true),
			BaseWidth: 3, Repeat: repPlus10, TileCount: 3,
		},
		{
			ID: Nothing, Name: "Nothing",
			Draw: func(*Context) {},
		},
		{
			// Stands in for objects whose real layout comes from the custom
			// object table; the drawer swaps it out when one is loaded.
			ID: CustomDraw, Name: "CustomDraw",
			Draw:      drawCustomPlaceholder,
			BaseWidth: 1, BaseHeight: 1, TileCount: 1,
		},
	}
}

// movingWall draws a wall three tiles thick, count rows tall. The east wall
// is the west wall mirrored. A wall that has been moved is drawn by the
// room's moved-wall objects instead, so this draws nothing.
func movingWall(mirror bool) Routine {
	return func(c *Context) {
		if len(c.Tiles) < 3 {
			return
		}
		if c.State != nil && c.State.IsWallMoved(c.RoomID) {
			return
		}
		row := c.Tiles[0:3]
		if mirror {
			row = []tile.Info{c.Tiles[2], c.Tiles[1], c.Tiles[0]}
		}

		x, y := c.origin()
		n := c.count()
		for i := 0; i < n; i++ {
			c.colMajor(x, y+i, shape3x1, row)
		}
	}
}

func drawDoorSwitcherer(c *Context) {
	if len(c.Tiles) == 0 {
		return
	}
	t := c.Tiles[0]
	if len(c.Tiles) >= 2 && c.State != nil && c.State.IsDoorSwitchActive(c.RoomID) {
		t = c.Tiles[1]
	}
	x, y := c.origin()
	c.Put(x, y, t)
}

func drawChest(c *Context) {
	open := c.State != nil && c.State.IsChestOpen(c.RoomID, c.ChestIndex)
	drawChestTiles(c, open)
}

func drawBigChest(c *Context) {
	open := c.State != nil && c.State.IsBigChestOpen(c.RoomID)
	drawChestTiles(c, open)
}

// drawChestTiles picks a 4x4 or 2x2 chest by span length. The open graphic
// is the second half of the span; without it the chest draws closed.
func drawChestTiles(c *Context, open bool) {
	x, y := c.origin()
	switch {
	case len(c.Tiles) >= 16:
		t := c.Tiles[0:16]
		if open && len(c.Tiles) >= 32 {
			t = c.Tiles[16:32]
		}
		c.colMajor(x, y, shape4x4, t)
	case len(c.Tiles) >= 4:
		t := c.Tiles[0:4]
		if open && len(c.Tiles) >= 8 {
			t = c.Tiles[4:8]
		}
		c.colMajor(x, y, shape2x2, t)
	}
}

// somariaDirs is indexed by the low nibble of the object id.
var somariaDirs = [16][2]int{
	3:  {1, 0},
	4:  {0, 1},
	5:  {1, 1},
	6:  {-1, 1},
	7:  {-1, 0},
	8:  {0, -1},
	9:  {1, -1},
	10: {-1, -1},
}

func drawSomariaLine(c *Context) {
	if len(c.Tiles) == 0 {
		return
	}
	d := somariaDirs[c.Object.ID&0x0F]
	if d == [2]int{} {
		d = [2]int{1, 0}
	}

	x, y := c.origin()
	n := c.count()
	for i := 0; i < n; i++ {
		c.Put(x+i*d[0], y+i*d[1], c.Tiles[i%len(c.Tiles)])
	}
}

// drawRupeeFloor lays out a 3x3 grid of 1x2 rupees, two columns and three
// rows apart. Collected rupee floors draw nothing.
func drawRupeeFloor(c *Context) {
	if len(c.Tiles) < 2 {
		return
	}
	if c.State != nil && !c.State.IsRupeeFloorActive(c.RoomID) {
		return
	}

	x, y := c.origin()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			c.colMajor(x+col*2, y+row*3, shape1x2, c.Tiles)
		}
	}
}

func drawBombableFloor(c *Context) {
	if len(c.Tiles) < 16 {
		return
	}
	var t []tile.Info
	switch {
	case c.State == nil || c.State.IsFloorBombable(c.RoomID):
		t = c.Tiles[0:16]
	case len(c.Tiles) >= 32:
		t = c.Tiles[16:32]
	default:
		return
	}
	x, y := c.origin()
	c.colMajor(x, y, shape4x4, t)
}

func drawCrystalPegs(c *Context) {
	if len(c.Tiles) < 4 {
		return
	}
	t := c.Tiles[0:4]
	if len(c.Tiles) >= 8 && c.State != nil && c.State.IsCrystalSwitchBlue() {
		t = c.Tiles[4:8]
	}
	x, y := c.origin()
	c.colMajor(x, y, shape2x2, t)
}

func drawCustomPlaceholder(c *Context) {
	if len(c.Tiles) == 0 {
		return
	}
	x, y := c.origin()
	c.Put(x, y, c.Tiles[0])
}
