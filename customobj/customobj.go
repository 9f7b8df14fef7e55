// Package customobj reads custom room objects: hand-laid tile patterns that
// replace the built-in routine for a given object id and subtype.
//
// An object is a run of rows. Each row starts with a little-endian header
// word: the low 5 bits are the number of tile words that follow, the high
// byte is how far to move the write position afterwards, in bytes of a
// 64-tile-wide tilemap (0x80 bytes per row). A zero header ends the object.
package customobj

import (
	"encoding/binary"
	"errors"
	"fmt"

	"roomdraw/drawroutine"
	"roomdraw/rom"
	"roomdraw/tile"
)

var ErrTruncated = errors.New("custom object data truncated")

const (
	FirstObjectID = 0x31
	LastObjectID  = 0x32
	Subtypes      = 16

	// maxObjectBytes bounds how much is read per object from ROM.
	maxObjectBytes = 0x800

	rowBytes = 0x80
)

// Entry is one tile placed relative to the object's origin.
type Entry struct {
	X, Y int
	Tile tile.Info
}

type Object struct {
	Entries []Entry
}

// Parse decodes one object up to and including its terminator.
func Parse(data []byte) (o Object, err error) {
	pos := 0
	for i := 0; ; {
		if i+2 > len(data) {
			return Object{}, fmt.Errorf("customobj: header at byte %d: %w", i, ErrTruncated)
		}
		h := binary.LittleEndian.Uint16(data[i:])
		i += 2
		if h == 0 {
			return o, nil
		}

		count := int(h & 0x1F)
		if i+count*2 > len(data) {
			return Object{}, fmt.Errorf("customobj: %d tiles at byte %d: %w", count, i, ErrTruncated)
		}
		for n := 0; n < count; n++ {
			p := pos + n*2
			o.Entries = append(o.Entries, Entry{
				X:    (p / 2) % drawroutine.CanvasTiles,
				Y:    p / rowBytes,
				Tile: tile.FromWord(binary.LittleEndian.Uint16(data[i:])),
			})
			i += 2
		}
		pos += int(h >> 8)
	}
}

// Draw places the object's tiles relative to the context object's origin.
func (o Object) Draw(c *drawroutine.Context) {
	for _, e := range o.Entries {
		c.Put(c.Object.X+e.X, c.Object.Y+e.Y, e.Tile)
	}
}

// Subtype is the low nibble of an object's size byte.
func Subtype(size uint8) int {
	return int(size & 0x0F)
}

type key struct {
	id, subtype int
}

// Table holds custom objects keyed by object id and subtype.
type Table struct {
	objects map[key]Object
}

func NewTable() *Table {
	return &Table{objects: make(map[key]Object)}
}

func (t *Table) Add(objectID, subtype int, o Object) {
	t.objects[key{objectID, subtype}] = o
}

func (t *Table) Lookup(objectID, subtype int) (Object, bool) {
	if t == nil {
		return Object{}, false
	}
	o, ok := t.objects[key{objectID, subtype}]
	return o, ok
}

func (t *Table) Len() int {
	return len(t.objects)
}

// LoadTable reads the 24-bit pointer table at tableAddr: one pointer per
// subtype for each custom object id. Null pointers are skipped.
func LoadTable(r *rom.ROM, tableAddr uint32) (*Table, error) {
	t := NewTable()
	for id := FirstObjectID; id <= LastObjectID; id++ {
		for sub := 0; sub < Subtypes; sub++ {
			var p [3]byte
			entry := tableAddr + uint32(((id-FirstObjectID)*Subtypes+sub)*3)
			if err := r.Read(entry, p[:]); err != nil {
				return nil, fmt.Errorf("customobj: pointer for $%02X/%d: %w", id, sub, err)
			}
			addr := uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
			if addr == 0 {
				continue
			}

			o, err := readObject(r, addr)
			if err != nil {
				return nil, fmt.Errorf("customobj: object $%02X/%d at $%06x: %w", id, sub, addr, err)
			}
			t.Add(id, sub, o)
		}
	}
	return t, nil
}

// readObject reads at most maxObjectBytes, stopping early at the end of
// the image.
func readObject(r *rom.ROM, addr uint32) (Object, error) {
	buf := make([]byte, maxObjectBytes)
	n := 0
	for ; n < len(buf); n++ {
		if r.Read(addr+uint32(n), buf[n:n+1]) != nil {
			break
		}
	}
	return Parse(buf[:n])
}
