package bgbuffer

import (
	"image"
	"image/color"
	"testing"
)

// testGFX has a blank character 0 and a character 1 whose only opaque
// pixel is the top-left one, color 3.
func testGFX() []byte {
	gfx := make([]byte, 64)
	gfx[32+0] = 0x80
	gfx[32+1] = 0x80
	return gfx
}

func testPalette() color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.NRGBA{R: uint8(i), A: 0xff}
	}
	return pal
}

func TestSetTileAt_Rasterizes(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		x, y int
	}{
		{"plain", 0x0801, 0, 0},
		{"hflip", 0x4801, 7, 0},
		{"vflip", 0x8801, 0, 7},
		{"both", 0xC801, 7, 7},
	}
	for _, tt := range tests {
		b := New(testGFX())
		b.SetTileAt(2, 3, tt.word)
		if got := b.Pixels.ColorIndexAt(16+tt.x, 24+tt.y); got != 0x23 {
			t.Errorf("%s: got index %#02x, want 0x23", tt.name, got)
		}
		w, ok := b.TileAt(2, 3)
		if !ok || w != tt.word {
			t.Errorf("%s: TileAt = %04x %v", tt.name, w, ok)
		}
	}
}

func TestSetTileAt_OverwriteClearsCell(t *testing.T) {
	b := New(testGFX())
	b.SetTileAt(0, 0, 0x0001)
	b.SetTileAt(0, 0, 0x0000)
	if got := b.Pixels.ColorIndexAt(0, 0); got != 0 {
		t.Fatalf("got index %d, want 0", got)
	}
}

func TestSetTileAt_Clipping(t *testing.T) {
	b := New(testGFX())
	b.SetTileAt(-1, 0, 1)
	b.SetTileAt(Tiles, 0, 1)
	b.SetTileAt(0, Tiles, 1)
	for _, w := range b.Tilemap() {
		if w != 0 {
			t.Fatal("clipped write reached the tilemap")
		}
	}
	if _, ok := b.TileAt(Tiles, 0); ok {
		t.Fatal("TileAt outside the map should report false")
	}
}

func TestSetTileAt_CharacterOutsideGFX(t *testing.T) {
	b := New(testGFX())
	b.SetTileAt(1, 1, 0x03FF)
	if w, ok := b.TileAt(1, 1); !ok || w != 0x03FF {
		t.Fatalf("word not stored: %04x %v", w, ok)
	}
	for _, c := range b.Pixels.Pix {
		if c != 0 {
			t.Fatal("missing character produced pixels")
		}
	}
}

func TestMarkTransparent(t *testing.T) {
	b := New(testGFX())
	b.SetTileAt(63, 63, 0x0001)
	b.MarkTransparent(image.Rect(500, 500, 600, 600))

	if got := b.Pixels.ColorIndexAt(504, 504); got != Transparent {
		t.Fatalf("got %d, want %d", got, Transparent)
	}
	if got := b.Pixels.ColorIndexAt(499, 504); got != 0 {
		t.Fatalf("pixel outside the rect changed to %d", got)
	}
}

func TestSync(t *testing.T) {
	b := New(testGFX())
	pal := testPalette()
	b.SetTileAt(0, 0, 0x0801)
	b.SetTileAt(1, 0, 0x0801)
	b.MarkTransparent(image.Rect(8, 0, 16, 8))
	b.Sync(pal)

	if got := b.Surface.NRGBAAt(0, 0); got != (color.NRGBA{R: 0x23, A: 0xff}) {
		t.Errorf("opaque pixel: got %v", got)
	}
	if got := b.Surface.NRGBAAt(1, 0); got.A != 0 {
		t.Errorf("index 0 should be transparent, got %v", got)
	}
	if got := b.Surface.NRGBAAt(8, 0); got.A != 0 {
		t.Errorf("masked pixel should be transparent, got %v", got)
	}
}

func TestPriorityLayers(t *testing.T) {
	b := New(testGFX())
	b.SetTileAt(0, 0, 0x0001)
	b.SetTileAt(1, 0, 0x2001)
	g := b.PriorityLayers(testPalette())

	if g[0].ColorIndexAt(0, 0) != 3 || g[1].ColorIndexAt(0, 0) != 0 {
		t.Error("low priority tile landed on the wrong layer")
	}
	if g[1].ColorIndexAt(8, 0) != 3 || g[0].ColorIndexAt(8, 0) != 0 {
		t.Error("high priority tile landed on the wrong layer")
	}
}

func TestClear(t *testing.T) {
	b := New(testGFX())
	b.SetTileAt(5, 5, 0x0001)
	b.Clear()
	if _, ok := b.TileAt(5, 5); ok {
		t.Fatal("tile still marked written")
	}
	if b.Pixels.ColorIndexAt(40, 40) != 0 {
		t.Fatal("pixels not cleared")
	}
}
