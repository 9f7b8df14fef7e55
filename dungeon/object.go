package dungeon

import (
	"fmt"

	"roomdraw/tile"
)

type Layer uint8

const (
	BG1 Layer = iota
	BG2
	BG3 // BG3-priority objects; drawn into BG1
)

func (l Layer) String() string {
	switch l {
	case BG1:
		return "BG1"
	case BG2:
		return "BG2"
	case BG3:
		return "BG3"
	default:
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
}

// object id ranges per ROM subtype:
const (
	Type2Base = 0x100
	Type3Base = 0xF80
)

// RoomObject is one decoded entry of a room's object list.
type RoomObject struct {
	ID     int
	X, Y   int // tile coordinates, 0..63
	Size   uint8
	Layer  Layer
	AllBGs bool

	// Tiles is the object's resolved tile span; empty until resolved.
	Tiles []tile.Info
}

// Type returns the ROM object subtype (1, 2 or 3) implied by the id range.
func (o *RoomObject) Type() int {
	if o.ID >= Type3Base {
		return 3
	}
	if o.ID >= Type2Base {
		return 2
	}
	return 1
}

func (o *RoomObject) String() string {
	return fmt.Sprintf("obj $%03X @(%2d,%2d) size=$%02X %s", o.ID, o.X, o.Y, o.Size, o.Layer)
}
