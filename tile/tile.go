// Package tile describes 8x8 background tile references as they appear in
// SNES tilemap words.
package tile

import "fmt"

//High     Low          Legend->  c: Starting character (tile) number
//vhopppcc cccccccc               h: horizontal flip  v: vertical flip
//                                p: palette number   o: priority bit

const (
	maskVFlip    = 0x8000
	maskHFlip    = 0x4000
	maskPriority = 0x2000
	maskChar     = 0x03FF
)

// Info is a single 8x8 tile reference decoded from a tilemap word.
type Info struct {
	ID       uint16 // character number, 0..1023
	HFlip    bool
	VFlip    bool
	Priority bool  // "over" bit
	Palette  uint8 // 0..7
}

func FromWord(w uint16) Info {
	return Info{
		ID:       w & maskChar,
		HFlip:    w&maskHFlip != 0,
		VFlip:    w&maskVFlip != 0,
		Priority: w&maskPriority != 0,
		Palette:  uint8((w >> 10) & 7),
	}
}

// FromWords decodes a span of tilemap words read from ROM.
func FromWords(words []uint16) []Info {
	tiles := make([]Info, len(words))
	for i, w := range words {
		tiles[i] = FromWord(w)
	}
	return tiles
}

func (t Info) Word() (w uint16) {
	w = t.ID & maskChar
	w |= uint16(t.Palette&7) << 10
	if t.Priority {
		w |= maskPriority
	}
	if t.HFlip {
		w |= maskHFlip
	}
	if t.VFlip {
		w |= maskVFlip
	}
	return
}

func (t Info) String() string {
	return fmt.Sprintf("$%04X", t.Word())
}
