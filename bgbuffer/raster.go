package bgbuffer

import "image"

func clearCell(g *image.Paletted, tx, ty int) {
	for y := ty << 3; y < ty<<3+8; y++ {
		o := g.PixOffset(tx<<3, y)
		for x := 0; x < 8; x++ {
			g.Pix[o+x] = 0
		}
	}
}

func renderBGsep(g [2]*image.Paletted, bg []uint16, written []bool, tiles []uint8) {
	for a, z := range bg {
		if !written[a] {
			continue
		}
		p := (z & 0x2000) >> 13
		draw4bppBGTile(g[p], z, tiles, a%Tiles, a/Tiles)
	}
}

func draw4bppBGTile(g *image.Paletted, z uint16, tiles []uint8, tx int, ty int) {
	//High     Low          Legend->  c: Starting character (tile) number
	//vhopppcc cccccccc               h: horizontal flip  v: vertical flip
	//                                p: palette number   o: priority bit

	p := byte((z>>10)&7) << 4
	c := int(z & 0x03FF)
	if (c<<5)+32 > len(tiles) {
		return
	}
	for y := 0; y < 8; y++ {
		fy := y
		if z&0x8000 != 0 {
			fy = 7 - y
		}
		p0 := tiles[(c<<5)+(y<<1)]
		p1 := tiles[(c<<5)+(y<<1)+1]
		p2 := tiles[(c<<5)+(y<<1)+16]
		p3 := tiles[(c<<5)+(y<<1)+17]
		for x := 0; x < 8; x++ {
			fx := x
			if z&0x4000 == 0 {
				fx = 7 - x
			}

			i := byte((p0>>x)&1) |
				byte(((p1>>x)&1)<<1) |
				byte(((p2>>x)&1)<<2) |
				byte(((p3>>x)&1)<<3)

			// transparency:
			if i == 0 {
				continue
			}

			g.SetColorIndex(tx<<3+fx, ty<<3+fy, p+i)
		}
	}
}
