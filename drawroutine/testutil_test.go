package drawroutine

import (
	"testing"

	"roomdraw/dungeon"
	"roomdraw/tile"
)

type pos struct{ x, y int }

// recorder is a Writer that remembers every write.
type recorder struct {
	tiles  map[pos]uint16
	writes int
}

func newRecorder() *recorder {
	return &recorder{tiles: make(map[pos]uint16)}
}

func (r *recorder) SetTileAt(x, y int, word uint16) {
	r.tiles[pos{x, y}] = word
	r.writes++
}

// seq returns n tiles whose character numbers are base, base+1, ...
func seq(base, n int) []tile.Info {
	ts := make([]tile.Info, n)
	for i := range ts {
		ts[i] = tile.Info{ID: uint16(base + i)}
	}
	return ts
}

func run(t *testing.T, routine int, obj dungeon.RoomObject, tiles []tile.Info, st dungeon.State) (*recorder, *Context) {
	t.Helper()
	info, ok := Default().GetRoutineInfo(routine)
	if !ok {
		t.Fatalf("routine %d not registered", routine)
	}
	rec := newRecorder()
	ctx := &Context{
		Object: &obj,
		Tiles:  tiles,
		Repeat: info.Repeat,
		Target: rec,
		State:  st,
		RoomID: 0x12,
	}
	info.Draw(ctx)
	return rec, ctx
}

func expectTile(t *testing.T, rec *recorder, x, y int, want uint16) {
	t.Helper()
	got, ok := rec.tiles[pos{x, y}]
	if !ok {
		t.Errorf("(%d,%d): no write, want $%04X", x, y, want)
		return
	}
	if got != want {
		t.Errorf("(%d,%d): got $%04X, want $%04X", x, y, got, want)
	}
}
