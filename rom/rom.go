// Package rom reads room object tile data out of a LoROM image.
package rom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/alttpo/snes"
	"github.com/alttpo/snes/mapping/lorom"
	"github.com/golang/glog"

	"roomdraw/dungeon"
	"roomdraw/tile"
)

var (
	ErrUnsupportedMapping = errors.New("unsupported ROM mapping")
	ErrOutOfRange         = errors.New("address out of range")
)

const (
	headerStart = 0x7FB0
	headerEnd   = 0x8000
)

type ROM struct {
	data []byte
	ptr  pointers

	Header snes.Header
}

// Load wraps a headerless ROM image. Only LoROM images are accepted.
func Load(data []byte) (r *ROM, err error) {
	if len(data) < headerEnd {
		return nil, fmt.Errorf("rom: image is %d bytes, too small for a header: %w", len(data), ErrOutOfRange)
	}

	r = &ROM{data: data}
	if err = r.Header.ReadHeader(bytes.NewReader(data[headerStart:headerEnd])); err != nil {
		return nil, fmt.Errorf("rom: reading header: %w", err)
	}

	mapper := r.Header.MapMode & ^uint8(0x10)
	if mapper != 0x20 {
		return nil, fmt.Errorf("rom: map mode $%02x: %w", r.Header.MapMode, ErrUnsupportedMapping)
	}

	switch r.Header.DestinationCode {
	case snes.RegionJapan:
		r.ptr = alttpJP10
	case snes.RegionNorthAmerica:
		r.ptr = alttpUS
	default:
		glog.Warningf("rom: unknown destination code %v; assuming JP 1.0 tables", r.Header.DestinationCode)
		r.ptr = alttpJP10
	}
	glog.V(1).Infof("rom: detected %s ROM", r.ptr.Name)

	return r, nil
}

// Region names the detected pointer set.
func (r *ROM) Region() string {
	return r.ptr.Name
}

// Read fills into from consecutive bus addresses starting at busAddr.
func (r *ROM) Read(busAddr uint32, into []byte) error {
	for i := range into {
		addr := busAddr + uint32(i)
		pak, err := lorom.BusAddressToPak(addr)
		if err != nil {
			return fmt.Errorf("rom: bus $%06x: %w", addr, ErrOutOfRange)
		}
		if int(pak) >= len(r.data) {
			return fmt.Errorf("rom: bus $%06x (pak $%06x) beyond %d byte image: %w", addr, pak, len(r.data), ErrOutOfRange)
		}
		into[i] = r.data[pak]
	}
	return nil
}

func (r *ROM) read16(busAddr uint32) (uint16, error) {
	var b [2]byte
	if err := r.Read(busAddr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ResolveTiles reads count tile words for an object from the room object
// data, via the object's subtype offset table.
func (r *ROM) ResolveTiles(objectID, count int) ([]tile.Info, error) {
	if count <= 0 {
		return nil, nil
	}

	var entry uint32
	switch {
	case objectID >= 0 && objectID < dungeon.Type2Base:
		entry = r.ptr.Subtype1TileOffsets + uint32(objectID)*2
	case objectID >= dungeon.Type2Base && objectID < dungeon.Type2Base+0x40:
		entry = r.ptr.Subtype2TileOffsets + uint32(objectID-dungeon.Type2Base)*2
	case objectID >= dungeon.Type3Base && objectID <= 0xFFF:
		entry = r.ptr.Subtype3TileOffsets + uint32(objectID-dungeon.Type3Base)*2
	default:
		return nil, fmt.Errorf("rom: object $%03X has no tile table: %w", objectID, ErrOutOfRange)
	}

	offset, err := r.read16(entry)
	if err != nil {
		return nil, fmt.Errorf("rom: object $%03X offset: %w", objectID, err)
	}

	raw := make([]byte, count*2)
	if err = r.Read(r.ptr.RoomDrawObjectData+uint32(offset), raw); err != nil {
		return nil, fmt.Errorf("rom: object $%03X tiles: %w", objectID, err)
	}

	words := make([]uint16, count)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return tile.FromWords(words), nil
}
