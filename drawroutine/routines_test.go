package drawroutine

import (
	"testing"

	"roomdraw/dungeon"
)

func TestColumnMajor2x2(t *testing.T) {
	rec, _ := run(t, Rightwards2x2_1to16, dungeon.RoomObject{}, seq(0xA, 4), nil)
	if rec.writes != 4 {
		t.Fatalf("got %d writes, want 4", rec.writes)
	}
	expectTile(t, rec, 0, 0, 0xA)
	expectTile(t, rec, 0, 1, 0xB)
	expectTile(t, rec, 1, 0, 0xC)
	expectTile(t, rec, 1, 1, 0xD)
}

func TestRepeat_SizeFormulas(t *testing.T) {
	tests := []struct {
		id     int
		k      int
		zeroAs int
	}{
		{Rightwards2x2_1to15or32, 0, 32},
		{Rightwards2x4_1to15or26, 0, 26},
		{Downwards2x2_1to15or32, 0, 32},
		{Downwards4x2_1to15or26, 0, 26},
		{Rightwards2x4spaced4_1to16, 1, 0},
		{Rightwards2x2_1to16, 1, 0},
		{DiagonalAcute_1to16, 7, 0},
		{DiagonalGrave_1to16_BothBG, 6, 0},
		{DownwardsHasEdge1x1_1to16_plus3, 3, 0},
		{RightwardsHasEdge1x1_1to16_plus2, 2, 0},
		{Rightwards1x2_1to16_plus2, 2, 0},
		{Rightwards1x1Solid_1to16_plus3, 3, 0},
		{DownwardsLine1x1_1to16plus1, 2, 0},
		{RightwardsBigRail1x3_1to16plus5, 4, 0},
		{RightwardsEdge1x1_1to16plus7, 7, 0},
		{RightwardsLine1x1_1to16plus1, 2, 0},
		{RightwardsHasEdge1x1_1to16_plus23, 23, 0},
		{DownwardsHasEdge1x1_1to16_plus23, 23, 0},
		{DiagonalCeilingBottomRight, 4, 0},
		{MovingWallWest, 10, 0},
		{MovingWallEast, 10, 0},
	}
	r := Default()
	for _, tt := range tests {
		info, _ := r.GetRoutineInfo(tt.id)
		for s := 0; s < 16; s++ {
			want := s + tt.k
			if s == 0 && tt.zeroAs != 0 {
				want = tt.zeroAs
			}
			// the high nibble never affects the count
			for _, size := range []uint8{uint8(s), uint8(s) | 0xF0} {
				if got := info.Repeat.Count(size); got != want {
					t.Errorf("%s: Count(%#02x) = %d, want %d", info.Name, size, got, want)
				}
			}
		}
	}

	// no other routine special-cases size 0
	for _, id := range r.IDs() {
		info, _ := r.GetRoutineInfo(id)
		switch id {
		case Rightwards2x2_1to15or32, Rightwards2x4_1to15or26, Downwards2x2_1to15or32, Downwards4x2_1to15or26:
			continue
		}
		if info.Repeat.ZeroAs != 0 {
			t.Errorf("%s: unexpected ZeroAs %d", info.Name, info.Repeat.ZeroAs)
		}
	}
}

// capPuts is how many tiles a routine writes whatever its size: the edge
// tiles and caps around the repeated part.
var capPuts = map[int]int{
	RightwardsHasEdge1x1_1to16_plus3:  2,
	RightwardsHasEdge1x1_1to16_plus2:  2,
	RightwardsHasEdge1x1_1to16_plus23: 2,
	DownwardsHasEdge1x1_1to16_plus3:   2,
	DownwardsHasEdge1x1_1to16_plus23:  2,
	RightwardsBigRail1x3_1to16plus5:   6,
	DownwardsBigRail3x1_1to16plus5:    6,
	Waterfall47:                       10,
	Waterfall48:                       6,
}

// ceilings grow as triangles, not linearly; TestDiagonalCeilings covers them
var ceilings = map[int]bool{
	DiagonalCeilingTopLeft:     true,
	DiagonalCeilingBottomLeft:  true,
	DiagonalCeilingTopRight:    true,
	DiagonalCeilingBottomRight: true,
}

func TestRoutines_IterationsFollowSize(t *testing.T) {
	r := Default()
	for _, id := range r.IDs() {
		info, _ := r.GetRoutineInfo(id)
		if info.Repeat == (Repeat{}) || ceilings[id] {
			continue
		}

		// puts counts clipped writes too, so long runs off the canvas
		// still show their full iteration count
		puts := func(size uint8, rep Repeat) int {
			ctx := &Context{
				Object: &dungeon.RoomObject{Size: size},
				Tiles:  seq(0, info.TileCount),
				Repeat: rep,
				Target: newRecorder(),
			}
			info.Draw(ctx)
			return ctx.puts
		}

		fixed := capPuts[id]
		n1 := info.Repeat.Count(1)
		per := (puts(1, info.Repeat) - fixed) / n1
		if per <= 0 || puts(1, info.Repeat) != per*n1+fixed {
			t.Errorf("%s: %d writes at size 1 do not split into %d iterations", info.Name, puts(1, info.Repeat), n1)
			continue
		}

		for s := 0; s < 16; s++ {
			n := info.Repeat.Count(uint8(s))
			if got, want := puts(uint8(s), info.Repeat), per*n+fixed; got != want {
				t.Errorf("%s: size %d drew %d tiles, want %d (%d iterations)", info.Name, s, got, want, n)
			}
		}

		// the routine must follow the Repeat it is given
		more := Repeat{Plus: info.Repeat.Plus + 3}
		if got, want := puts(1, more), per*more.Count(1)+fixed; got != want {
			t.Errorf("%s: ignores Context.Repeat: got %d writes, want %d", info.Name, got, want)
		}
	}
}

func TestEndToEnd_Rightwards2x2Size0(t *testing.T) {
	obj := dungeon.RoomObject{ID: 0x00, Size: 0}
	routine, ok := Default().RoutineForObject(obj.ID)
	if !ok || routine != Rightwards2x2_1to15or32 {
		t.Fatalf("object $00 routes to %d", routine)
	}
	const a, b, c, d = 0x1A, 0x1B, 0x1C, 0x1D
	rec, ctx := run(t, routine, obj, seq(a, 4), nil)

	if len(rec.tiles) != 128 {
		t.Fatalf("got %d tiles, want 128", len(rec.tiles))
	}
	for x := 0; x < 64; x++ {
		top, bottom := uint16(a), uint16(b)
		if x%2 == 1 {
			top, bottom = c, d
		}
		expectTile(t, rec, x, 0, top)
		expectTile(t, rec, x, 1, bottom)
	}
	for p := range rec.tiles {
		if p.x > 63 || p.y > 1 {
			t.Errorf("write outside footprint at %v", p)
		}
	}
	if got := ctx.Bounds(); got.Dx() != 64 || got.Dy() != 2 {
		t.Errorf("bounds %v, want 64x2", got)
	}
}

func TestBoundaryClipping(t *testing.T) {
	obj := dungeon.RoomObject{X: 62, Y: 62, Size: 0}
	rec, ctx := run(t, Rightwards4x4_1to16, obj, seq(0x40, 16), nil)
	if rec.writes != 4 {
		t.Fatalf("got %d writes, want 4", rec.writes)
	}
	expectTile(t, rec, 62, 62, 0x40)
	expectTile(t, rec, 63, 63, 0x45)
	if b := ctx.Bounds(); b.Max.X != 64 || b.Max.Y != 64 {
		t.Errorf("bounds %v exceed canvas", b)
	}

	// diagonal climbing off the top edge
	obj = dungeon.RoomObject{X: 60, Y: 1, Size: 0xF}
	rec, _ = run(t, DiagonalAcute_1to16, obj, seq(1, 5), nil)
	for p := range rec.tiles {
		if p.x < 0 || p.y < 0 || p.x > 63 || p.y > 63 {
			t.Fatalf("out of bounds write at %v", p)
		}
	}
}

func TestFallbackChain(t *testing.T) {
	// 8 tiles: 4x4 degrades to 2x4
	rec, _ := run(t, Rightwards4x4_1to16, dungeon.RoomObject{}, seq(0, 8), nil)
	if rec.writes != 8 {
		t.Fatalf("2x4 fallback: got %d writes, want 8", rec.writes)
	}
	expectTile(t, rec, 1, 3, 7)

	// 5 tiles: only 2x2 fits
	rec, _ = run(t, Rightwards4x4_1to16, dungeon.RoomObject{}, seq(0, 5), nil)
	if rec.writes != 4 {
		t.Fatalf("2x2 fallback: got %d writes, want 4", rec.writes)
	}

	// too short for anything
	rec, _ = run(t, Rightwards4x4_1to16, dungeon.RoomObject{}, seq(0, 3), nil)
	if rec.writes != 0 {
		t.Fatalf("got %d writes, want none", rec.writes)
	}
	rec, _ = run(t, DiagonalGrave_1to16, dungeon.RoomObject{}, seq(0, 4), nil)
	if rec.writes != 0 {
		t.Fatalf("diagonal with 4 tiles: got %d writes, want none", rec.writes)
	}
}

func TestHasEdge(t *testing.T) {
	rec, _ := run(t, RightwardsHasEdge1x1_1to16_plus2, dungeon.RoomObject{X: 4, Y: 4, Size: 1}, seq(0x10, 3), nil)
	// edge, 3 middles, edge
	want := []uint16{0x10, 0x11, 0x11, 0x11, 0x12}
	for i, w := range want {
		expectTile(t, rec, 4+i, 4, w)
	}
	if rec.writes != len(want) {
		t.Errorf("got %d writes, want %d", rec.writes, len(want))
	}

	rec, _ = run(t, DownwardsHasEdge1x1_1to16_plus3, dungeon.RoomObject{Size: 0}, seq(0x20, 1), nil)
	for y := 0; y < 5; y++ {
		expectTile(t, rec, 0, y, 0x20)
	}
}

func TestRowMajorCorners(t *testing.T) {
	rec, _ := run(t, RightwardsTopCorners1x2_1to16_plus13, dungeon.RoomObject{Size: 1}, seq(1, 4), nil)
	for _, x := range []int{0, 13} {
		expectTile(t, rec, x, 0, 1)
		expectTile(t, rec, x+1, 0, 2)
		expectTile(t, rec, x, 1, 3)
		expectTile(t, rec, x+1, 1, 4)
	}

	rec, _ = run(t, RightwardsBottomCorners1x2_1to16_plus13, dungeon.RoomObject{}, seq(1, 4), nil)
	expectTile(t, rec, 0, 1, 1)
	expectTile(t, rec, 1, 1, 2)
	expectTile(t, rec, 0, 0, 3)
	expectTile(t, rec, 1, 0, 4)

	rec, _ = run(t, DownwardsRightCorners2x1_1to16_plus12, dungeon.RoomObject{Size: 1}, seq(1, 2), nil)
	expectTile(t, rec, 0, 12, 2)
	expectTile(t, rec, 1, 12, 1)
}

func TestDiagonal(t *testing.T) {
	rec, _ := run(t, DiagonalAcute_1to16, dungeon.RoomObject{X: 10, Y: 20}, seq(1, 5), nil)
	// 7 columns, each one tile higher than the last
	for i := 0; i < 7; i++ {
		for j := 0; j < 5; j++ {
			expectTile(t, rec, 10+i, 20-i+j, uint16(1+j))
		}
	}

	rec, _ = run(t, DiagonalGrave_1to16_BothBG, dungeon.RoomObject{X: 10, Y: 20}, seq(1, 5), nil)
	expectTile(t, rec, 15, 25, 1)
	if _, ok := rec.tiles[pos{16, 26}]; ok {
		t.Error("grave diagonal drew a seventh column")
	}
}

func TestBigRail(t *testing.T) {
	rec, _ := run(t, RightwardsBigRail1x3_1to16plus5, dungeon.RoomObject{}, seq(0, 9), nil)
	// cap, 4 middles, cap
	for y := 0; y < 3; y++ {
		expectTile(t, rec, 0, y, uint16(y))
		for x := 1; x <= 4; x++ {
			expectTile(t, rec, x, y, uint16(3+y))
		}
		expectTile(t, rec, 5, y, uint16(6+y))
	}

	rec, _ = run(t, DownwardsBigRail3x1_1to16plus5, dungeon.RoomObject{}, seq(0, 3), nil)
	for y := 0; y < 6; y++ {
		for x := 0; x < 3; x++ {
			expectTile(t, rec, x, y, uint16(x))
		}
	}
}

func TestBigHoleGrid(t *testing.T) {
	// size $05: 2 cells wide, 2 cells tall
	rec, ctx := run(t, BigHole4x4_1to16, dungeon.RoomObject{X: 8, Y: 8, Size: 0x05}, seq(0, 16), nil)
	if rec.writes != 64 {
		t.Fatalf("got %d writes, want 64", rec.writes)
	}
	expectTile(t, rec, 8, 8, 0)
	expectTile(t, rec, 12, 12, 0)
	expectTile(t, rec, 15, 15, 15)
	if b := ctx.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds %v, want 8x8", b)
	}
}

func TestHasEdge_Plus23(t *testing.T) {
	rec, _ := run(t, RightwardsHasEdge1x1_1to16_plus23, dungeon.RoomObject{X: 2, Y: 7}, seq(0x30, 3), nil)
	// edge, 23 middles, edge
	expectTile(t, rec, 2, 7, 0x30)
	for x := 3; x <= 25; x++ {
		expectTile(t, rec, x, 7, 0x31)
	}
	expectTile(t, rec, 26, 7, 0x32)
	if rec.writes != 25 {
		t.Errorf("got %d writes, want 25", rec.writes)
	}

	rec, _ = run(t, DownwardsHasEdge1x1_1to16_plus23, dungeon.RoomObject{Size: 2}, seq(0x30, 3), nil)
	// 25 middles below the top edge
	expectTile(t, rec, 0, 25, 0x31)
	expectTile(t, rec, 0, 26, 0x32)
}

func TestWaterfall(t *testing.T) {
	rec, _ := run(t, Waterfall48, dungeon.RoomObject{X: 1}, seq(0, 9), nil)
	// cap, two middle columns, cap
	for y := 0; y < 3; y++ {
		expectTile(t, rec, 1, y, uint16(y))
		expectTile(t, rec, 2, y, uint16(3+y))
		expectTile(t, rec, 3, y, uint16(3+y))
		expectTile(t, rec, 4, y, uint16(6+y))
	}
	if rec.writes != 12 {
		t.Errorf("got %d writes, want 12", rec.writes)
	}

	rec, _ = run(t, Waterfall47, dungeon.RoomObject{Size: 1}, seq(0, 15), nil)
	expectTile(t, rec, 5, 4, 14)
	expectTile(t, rec, 4, 0, 5)
}

func TestDiagonalCeilings(t *testing.T) {
	tests := []struct {
		id   int
		name string
		// row 0 and row 3 spans for size 0 (a 4x4 triangle)
		top, bottom [2]int
	}{
		{DiagonalCeilingTopLeft, "top left", [2]int{0, 4}, [2]int{0, 1}},
		{DiagonalCeilingBottomLeft, "bottom left", [2]int{0, 1}, [2]int{0, 4}},
		{DiagonalCeilingTopRight, "top right", [2]int{0, 4}, [2]int{3, 4}},
		{DiagonalCeilingBottomRight, "bottom right", [2]int{3, 4}, [2]int{0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := run(t, tt.id, dungeon.RoomObject{}, seq(9, 1), nil)
			if rec.writes != 10 {
				t.Fatalf("got %d writes, want 10", rec.writes)
			}
			for _, row := range []struct {
				y    int
				span [2]int
			}{{0, tt.top}, {3, tt.bottom}} {
				for x := 0; x < 4; x++ {
					_, ok := rec.tiles[pos{x, row.y}]
					if want := x >= row.span[0] && x < row.span[1]; ok != want {
						t.Errorf("(%d,%d): written %v, want %v", x, row.y, ok, want)
					}
				}
			}

			for s := 0; s < 16; s++ {
				rec, _ := run(t, tt.id, dungeon.RoomObject{Size: uint8(s)}, seq(9, 1), nil)
				n := s + 4
				if rec.writes != n*(n+1)/2 {
					t.Errorf("size %d: got %d writes, want %d", s, rec.writes, n*(n+1)/2)
				}
			}
		})
	}
}

func TestMovingWall(t *testing.T) {
	rec, _ := run(t, MovingWallWest, dungeon.RoomObject{X: 20, Y: 4}, seq(1, 3), nil)
	if rec.writes != 30 {
		t.Fatalf("got %d writes, want 30", rec.writes)
	}
	expectTile(t, rec, 20, 4, 1)
	expectTile(t, rec, 22, 13, 3)

	rec, _ = run(t, MovingWallEast, dungeon.RoomObject{X: 20, Y: 4}, seq(1, 3), nil)
	expectTile(t, rec, 20, 4, 3)
	expectTile(t, rec, 22, 4, 1)

	st := dungeon.NewEditorState()
	st.SetWallMoved(0x12, true)
	rec, _ = run(t, MovingWallWest, dungeon.RoomObject{X: 20, Y: 4}, seq(1, 3), st)
	if rec.writes != 0 {
		t.Errorf("moved wall: got %d writes, want none", rec.writes)
	}
}

func TestSuperSquares(t *testing.T) {
	// size $01: two squares across, one down
	rec, ctx := run(t, Floor3x3In4x4SuperSquare, dungeon.RoomObject{X: 8, Y: 8, Size: 0x01}, seq(0, 9), nil)
	if rec.writes != 18 {
		t.Fatalf("got %d writes, want 18", rec.writes)
	}
	expectTile(t, rec, 8, 8, 0)
	expectTile(t, rec, 10, 10, 8)
	expectTile(t, rec, 12, 8, 0)
	if _, ok := rec.tiles[pos{11, 8}]; ok {
		t.Error("3x3 floor wrote the fourth column of a square")
	}
	if b := ctx.Bounds(); b.Dx() != 7 || b.Dy() != 3 {
		t.Errorf("bounds %v, want 7x3", b)
	}

	rec, _ = run(t, Floor2x2In4x4SuperSquare, dungeon.RoomObject{}, seq(0, 4), nil)
	if rec.writes != 16 {
		t.Fatalf("2x2 floor: got %d writes, want 16", rec.writes)
	}
	expectTile(t, rec, 2, 2, 0)
	expectTile(t, rec, 3, 3, 3)

	// size $04: one square across, two down, 8 tiles each
	rec, ctx = run(t, WaterOverlay8x8_1to16, dungeon.RoomObject{Size: 0x04}, seq(0, 16), nil)
	if rec.writes != 128 {
		t.Fatalf("water overlay: got %d writes, want 128", rec.writes)
	}
	expectTile(t, rec, 4, 4, 0)
	expectTile(t, rec, 7, 15, 15)
	if b := ctx.Bounds(); b.Dx() != 8 || b.Dy() != 16 {
		t.Errorf("water overlay bounds %v, want 8x16", b)
	}
}

func TestSingle4x4_SpiralStairs(t *testing.T) {
	rec, _ := run(t, Single4x4, dungeon.RoomObject{}, seq(0, 12), nil)
	if rec.writes != 12 {
		t.Fatalf("got %d writes, want 12", rec.writes)
	}
	expectTile(t, rec, 3, 2, 11)
}
