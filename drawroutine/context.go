// Package drawroutine implements the room object draw routines and the
// registry that maps canonical routine ids to them.
//
// A routine turns one object (position, size byte, tile span) into tile
// writes. Routines never choose their target layer: the caller fills in
// Context.Target and, for dual-layer draws, Context.Secondary.
package drawroutine

import (
	"image"

	"roomdraw/dungeon"
	"roomdraw/tile"
)

// CanvasTiles is the width and height of a room tilemap in 8x8 tiles.
const CanvasTiles = 64

// Writer is the only capability routines need from a background buffer.
type Writer interface {
	SetTileAt(x, y int, word uint16)
}

// Routine draws one object. Routines are stateless.
type Routine func(c *Context)

// Context bundles everything a routine may look at for one draw call.
type Context struct {
	Object    *dungeon.RoomObject
	Tiles     []tile.Info
	Target    Writer
	Secondary Writer // non-nil for dual-layer draws

	// Repeat is the size decoding of the routine being run. Callers copy it
	// from the routine's Info.
	Repeat Repeat

	State      dungeon.State
	RoomID     int
	ChestIndex int

	bounds image.Rectangle
	puts   int // every Put, clipped or not
}

// Put writes t at (x,y) into the target and secondary buffers.
// Writes outside the 64x64 canvas are dropped.
func (c *Context) Put(x, y int, t tile.Info) {
	c.puts++
	if x < 0 || y < 0 || x >= CanvasTiles || y >= CanvasTiles {
		return
	}

	w := t.Word()
	if c.Target != nil {
		c.Target.SetTileAt(x, y, w)
	}
	if c.Secondary != nil {
		c.Secondary.SetTileAt(x, y, w)
	}

	c.bounds = c.bounds.Union(image.Rect(x, y, x+1, y+1))
}

// Bounds is the tile rectangle covered by all in-bounds writes so far.
func (c *Context) Bounds() image.Rectangle {
	return c.bounds
}

func (c *Context) origin() (x, y int) {
	return c.Object.X, c.Object.Y
}

func (c *Context) size() uint8 {
	return c.Object.Size
}

// count is the iteration count for the object's size byte.
func (c *Context) count() int {
	return c.Repeat.Count(c.size())
}
