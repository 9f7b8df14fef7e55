// Package objdraw draws a room's object list into its background buffers.
package objdraw

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/glog"
	"github.com/zyedidia/generic/mapset"

	"roomdraw/customobj"
	"roomdraw/drawroutine"
	"roomdraw/dungeon"
	"roomdraw/tile"
)

// Layer is a background buffer the drawer can write to.
type Layer interface {
	SetTileAt(x, y int, word uint16)
	MarkTransparent(r image.Rectangle)
	Sync(pal color.Palette)
}

// Surfaces are the buffers for one room. LayoutBG1 may be nil.
type Surfaces struct {
	BG1       Layer
	BG2       Layer
	LayoutBG1 Layer
	Palette   color.Palette
}

// TileResolver loads an object's tile span when it has none.
type TileResolver interface {
	ResolveTiles(objectID, count int) ([]tile.Info, error)
}

// CustomObjects looks up a custom override by object id and subtype.
type CustomObjects interface {
	Lookup(objectID, subtype int) (customobj.Object, bool)
}

// DefaultPitMaskIDs are the objects that open holes in the floor layer.
var DefaultPitMaskIDs = []int{0xA4, 0xB0, 0xB1, 0xFE6, 0xFEB}

// Option configures a Drawer.
type Option func(d *Drawer)

// WithCustomObjects supplies the custom object table. It is only consulted
// when custom objects are enabled.
func WithCustomObjects(c CustomObjects) Option {
	return func(d *Drawer) { d.custom = c }
}

// WithCustomObjectsEnabled turns custom object overrides on or off.
func WithCustomObjectsEnabled(on bool) Option {
	return func(d *Drawer) { d.customEnabled = on }
}

// WithPitMaskIDs replaces DefaultPitMaskIDs.
func WithPitMaskIDs(ids ...int) Option {
	return func(d *Drawer) {
		d.pitMask = mapset.New[int]()
		for _, id := range ids {
			d.pitMask.Put(id)
		}
	}
}

// Drawer draws objects for a single room. It is not safe for concurrent
// use; give each room its own.
type Drawer struct {
	roomID int
	reg    *drawroutine.Registry
	rom    TileResolver

	custom        CustomObjects
	customEnabled bool
	pitMask       mapset.Set[int]

	chestIndex int
}

// New returns a drawer for roomID. reg and rom must both be set before
// anything is drawn.
func New(roomID int, reg *drawroutine.Registry, rom TileResolver, opts ...Option) *Drawer {
	d := &Drawer{
		roomID: roomID,
		reg:    reg,
		rom:    rom,
	}
	WithPitMaskIDs(DefaultPitMaskIDs...)(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RoomID is the room the drawer was made for.
func (d *Drawer) RoomID() int { return d.roomID }

func (d *Drawer) precondition() error {
	if d.reg == nil {
		return fmt.Errorf("objdraw: room $%03X: no routine registry: %w", d.roomID, ErrFailedPrecondition)
	}
	if d.rom == nil {
		return fmt.Errorf("objdraw: room $%03X: no ROM tile resolver: %w", d.roomID, ErrFailedPrecondition)
	}
	return nil
}

// DrawObject draws one object into s. Objects that cannot be drawn for lack
// of tiles are skipped without error.
func (d *Drawer) DrawObject(obj *dungeon.RoomObject, s Surfaces, state dungeon.State) (err error) {
	if err = d.precondition(); err != nil {
		return
	}

	var info drawroutine.Info
	routineID, known := d.reg.RoutineForObject(obj.ID)
	if known {
		info, known = d.reg.GetRoutineInfo(routineID)
	}

	tiles := obj.Tiles
	if len(tiles) == 0 {
		count := 1
		if known {
			count = info.TileCount
		}
		if count == 0 {
			return
		}
		if tiles, err = d.rom.ResolveTiles(obj.ID, count); err != nil {
			return fmt.Errorf("objdraw: room $%03X: %v: %w", d.roomID, obj, err)
		}
		if len(tiles) == 0 {
			glog.V(1).Infof("objdraw: room $%03X: %v has no tiles; skipped", d.roomID, obj)
			return
		}
	}

	ctx := &drawroutine.Context{
		Object: obj,
		Tiles:  tiles,
		Repeat: info.Repeat,
		State:  state,
		RoomID: d.roomID,
	}

	drewBG1 := true
	switch obj.Layer {
	case dungeon.BG2:
		ctx.Target = s.BG2
		drewBG1 = false
	case dungeon.BG1:
		ctx.Target = s.BG1
		if obj.AllBGs || (known && info.DrawsToBothBGs) {
			ctx.Secondary = s.BG2
		}
	default:
		ctx.Target = s.BG1
	}

	if d.customEnabled && d.custom != nil {
		if o, ok := d.custom.Lookup(obj.ID, customobj.Subtype(obj.Size)); ok {
			o.Draw(ctx)
			if !obj.AllBGs {
				d.maskPit(obj, ctx, drewBG1, s)
				return
			}
		}
	}

	switch {
	case !known:
		glog.V(1).Infof("objdraw: room $%03X: %v has no routine; drawing 1x1", d.roomID, obj)
		ctx.Put(obj.X, obj.Y, tiles[0])
	case routineID == drawroutine.Chest || routineID == drawroutine.BigChest:
		ctx.ChestIndex = d.chestIndex
		d.chestIndex++
		info.Draw(ctx)
	default:
		info.Draw(ctx)
	}

	d.maskPit(obj, ctx, drewBG1, s)
	return
}

// maskPit clears the floor above a pit object drawn on the lower layer.
func (d *Drawer) maskPit(obj *dungeon.RoomObject, ctx *drawroutine.Context, drewBG1 bool, s Surfaces) {
	if drewBG1 || !d.pitMask.Has(obj.ID) {
		return
	}
	b := ctx.Bounds()
	if b.Empty() {
		return
	}
	px := image.Rect(b.Min.X<<3, b.Min.Y<<3, b.Max.X<<3, b.Max.Y<<3)
	if s.BG1 != nil {
		s.BG1.MarkTransparent(px)
	}
	if s.LayoutBG1 != nil {
		s.LayoutBG1.MarkTransparent(px)
	}
}

// DrawObjectList draws objs in order. A failing object does not stop the
// rest of the room from drawing; the first error is returned once all
// objects are drawn and both layers synced.
func (d *Drawer) DrawObjectList(objs []dungeon.RoomObject, s Surfaces, state dungeon.State) error {
	if err := d.precondition(); err != nil {
		return err
	}

	d.chestIndex = 0

	var first error
	for i := range objs {
		if err := d.DrawObject(&objs[i], s, state); err != nil {
			glog.Warningf("objdraw: room $%03X: object %d: %v", d.roomID, i, err)
			if first == nil {
				first = err
			}
		}
	}

	if s.BG1 != nil {
		s.BG1.Sync(s.Palette)
	}
	if s.BG2 != nil {
		s.BG2.Sync(s.Palette)
	}
	return first
}
