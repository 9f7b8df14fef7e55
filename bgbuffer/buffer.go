// Package bgbuffer is a 64x64 background tilemap with its rasterized pixels.
package bgbuffer

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	Tiles  = 64
	Pixels = Tiles * 8

	// Transparent marks pixels cleared by pit/mask objects.
	Transparent = 255
)

type Buffer struct {
	gfx     []byte
	tilemap [Tiles * Tiles]uint16
	written [Tiles * Tiles]bool

	// Pixels holds 8-bit palette indexes: row<<4 | color. 0 is transparent.
	Pixels *image.Paletted
	// Surface is the last Sync'd conversion of Pixels.
	Surface *image.NRGBA
}

// New makes an empty buffer that rasterizes tiles from gfx, a 4bpp planar
// character set (32 bytes per character).
func New(gfx []byte) *Buffer {
	return &Buffer{
		gfx:     gfx,
		Pixels:  image.NewPaletted(image.Rect(0, 0, Pixels, Pixels), color.Palette{color.Transparent}),
		Surface: image.NewNRGBA(image.Rect(0, 0, Pixels, Pixels)),
	}
}

func (b *Buffer) SetTileAt(x, y int, word uint16) {
	if x < 0 || y < 0 || x >= Tiles || y >= Tiles {
		return
	}
	i := y*Tiles + x
	b.tilemap[i] = word
	b.written[i] = true

	clearCell(b.Pixels, x, y)
	draw4bppBGTile(b.Pixels, word, b.gfx, x, y)
}

// TileAt returns the word at (x,y) and whether anything was written there.
func (b *Buffer) TileAt(x, y int) (uint16, bool) {
	if x < 0 || y < 0 || x >= Tiles || y >= Tiles {
		return 0, false
	}
	i := y*Tiles + x
	return b.tilemap[i], b.written[i]
}

// Tilemap returns a copy of the tile words in row-major order.
func (b *Buffer) Tilemap() []uint16 {
	m := make([]uint16, len(b.tilemap))
	copy(m, b.tilemap[:])
	return m
}

func (b *Buffer) Clear() {
	b.tilemap = [Tiles * Tiles]uint16{}
	b.written = [Tiles * Tiles]bool{}
	for i := range b.Pixels.Pix {
		b.Pixels.Pix[i] = 0
	}
	for i := range b.Surface.Pix {
		b.Surface.Pix[i] = 0
	}
}

// MarkTransparent sets every pixel of r (clipped to the buffer) to the
// Transparent index so lower layers show through.
func (b *Buffer) MarkTransparent(r image.Rectangle) {
	r = r.Intersect(b.Pixels.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Pixels.SetColorIndex(x, y, Transparent)
		}
	}
}

// Sync converts the paletted pixels to Surface using pal. Indexes 0 and
// Transparent never take a palette color.
func (b *Buffer) Sync(pal color.Palette) {
	b.Pixels.Palette = surfacePalette(pal)
	draw.Draw(b.Surface, b.Surface.Rect, b.Pixels, image.Point{}, draw.Src)
}

// PriorityLayers splits the tilemap into low and high priority layers.
func (b *Buffer) PriorityLayers(pal color.Palette) (g [2]*image.Paletted) {
	p := surfacePalette(pal)
	for i := range g {
		g[i] = image.NewPaletted(b.Pixels.Rect, p)
	}
	renderBGsep(g, b.tilemap[:], b.written[:], b.gfx)

	// carry masked pixels through to both layers:
	for i, c := range b.Pixels.Pix {
		if c == Transparent {
			g[0].Pix[i] = 0
			g[1].Pix[i] = 0
		}
	}
	return
}

// surfacePalette pads pal to 256 entries and forces the two transparent
// indexes.
func surfacePalette(pal color.Palette) color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		if i < len(pal) && pal[i] != nil {
			p[i] = pal[i]
		} else {
			p[i] = color.Transparent
		}
	}
	p[0] = color.Transparent
	p[Transparent] = color.Transparent
	return p
}
