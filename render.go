package main

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"roomdraw/drawroutine"
	"roomdraw/dungeon"
)

// prefer p1's color unless it's zero:
func pick(c0, c1 uint8) uint8 {
	if c1 != 0 {
		return c1
	} else {
		return c0
	}
}

// composeRoom draws the four BG layers into dst in priority order:
// BG1 high, BG2 high, BG1 low, BG2 low.
func composeRoom(dst draw.Image, pal color.Palette, bg1p [2]*image.Paletted, bg2p [2]*image.Paletted) {
	mx := dst.Bounds().Min.X
	my := dst.Bounds().Min.Y
	b := bg1p[0].Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c0 := bg1p[0].ColorIndexAt(x, y)
			c1 := bg1p[1].ColorIndexAt(x, y)
			c2 := bg2p[0].ColorIndexAt(x, y)
			c3 := bg2p[1].ColorIndexAt(x, y)
			c := pick(pick(pick(c2, c0), c3), c1)
			dst.Set(mx+x, my+y, pal[c])
		}
	}
}

// drawObjectLabels writes each object's routine name at its origin.
func drawObjectLabels(g draw.Image, reg *drawroutine.Registry, objs []dungeon.RoomObject) {
	yellow := image.NewUniform(color.RGBA{255, 255, 0, 255})
	red := image.NewUniform(color.RGBA{255, 64, 64, 255})
	for i := range objs {
		o := &objs[i]
		name, clr := "?", image.Image(red)
		if id, ok := reg.RoutineForObject(o.ID); ok {
			if info, ok := reg.GetRoutineInfo(id); ok {
				name, clr = info.Name, yellow
			}
		}
		drawShadowedString(
			g,
			clr,
			fixed.Point26_6{X: fixed.I(o.X << 3), Y: fixed.I(o.Y<<3 + 12)},
			name,
		)
	}
}

func drawShadowedString(g draw.Image, clr image.Image, dot fixed.Point26_6, s string) {
	// shadow:
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			(&font.Drawer{
				Dst:  g,
				Src:  image.Black,
				Face: inconsolata.Bold8x16,
				Dot:  fixed.Point26_6{X: dot.X + fixed.I(ox), Y: dot.Y + fixed.I(oy)},
			}).DrawString(s)
		}
	}

	// regular label:
	(&font.Drawer{
		Dst:  g,
		Src:  clr,
		Face: inconsolata.Bold8x16,
		Dot:  dot,
	}).DrawString(s)
}

func exportPNG(name string, g image.Image) (err error) {
	// export to PNG:
	var po *os.File

	po, err = os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer func() {
		if cerr := po.Close(); err == nil {
			err = cerr
		}
	}()

	bo := bufio.NewWriterSize(po, 1024*1024)

	err = png.Encode(bo, g)
	if err != nil {
		return
	}

	err = bo.Flush()
	return
}

func cgramRGBA(bgr15 uint16) color.NRGBA {
	// convert BGR15 color format (MSB unused) to RGB24:
	b := (bgr15 & 0x7C00) >> 10
	g := (bgr15 & 0x03E0) >> 5
	r := bgr15 & 0x001F
	return color.NRGBA{
		R: uint8(r<<3 | r>>2),
		G: uint8(g<<3 | g>>2),
		B: uint8(b<<3 | b>>2),
		A: 0xff,
	}
}

// cgramToPalette converts up to 256 CGRAM words; missing entries are black.
func cgramToPalette(cgram []uint16) color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.NRGBA{A: 0xff}
	}
	for i, bgr15 := range cgram {
		if i >= len(pal) {
			break
		}
		pal[i] = cgramRGBA(bgr15)
	}
	return pal
}

// loadCGRAM reads little-endian BGR15 words from a CGRAM dump.
func loadCGRAM(path string) (color.Palette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cgram := make([]uint16, len(b)/2)
	for i := range cgram {
		cgram[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return cgramToPalette(cgram), nil
}

// grayPalette stands in when no CGRAM dump is given: each palette row is a
// ramp of its 16 colors.
func grayPalette() color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		v := uint8((i & 0x0F) * 17)
		pal[i] = color.NRGBA{R: v, G: v, B: v, A: 0xff}
	}
	return pal
}
