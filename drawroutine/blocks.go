package drawroutine

import "roomdraw/tile"

// shape is a w×h block of tiles.
type shape struct {
	w, h int
}

func (s shape) n() int { return s.w * s.h }

var (
	shape1x1 = shape{1, 1}
	shape1x2 = shape{1, 2}
	shape2x1 = shape{2, 1}
	shape3x1 = shape{3, 1}
	shape2x2 = shape{2, 2}
	shape2x3 = shape{2, 3}
	shape2x4 = shape{2, 4}
	shape2x5 = shape{2, 5}
	shape3x3 = shape{3, 3}
	shape3x4 = shape{3, 4}
	shape3x6 = shape{3, 6}
	shape4x2 = shape{4, 2}
	shape4x3 = shape{4, 3}
	shape4x4 = shape{4, 4}
)

// fit returns the first shape the tile span can fill.
func fit(tiles []tile.Info, chain ...shape) (shape, bool) {
	for _, s := range chain {
		if len(tiles) >= s.n() {
			return s, true
		}
	}
	return shape{}, false
}

// colMajor writes a block taking tiles down each column before moving right:
// tile 0 -> (0,0), tile 1 -> (0,1), ..., tile h -> (1,0).
func (c *Context) colMajor(x, y int, s shape, tiles []tile.Info) {
	i := 0
	for dx := 0; dx < s.w; dx++ {
		for dy := 0; dy < s.h; dy++ {
			c.Put(x+dx, y+dy, tiles[i])
			i++
		}
	}
}

// rowMajor writes a block taking tiles across each row before moving down.
func (c *Context) rowMajor(x, y int, s shape, tiles []tile.Info) {
	i := 0
	for dy := 0; dy < s.h; dy++ {
		for dx := 0; dx < s.w; dx++ {
			c.Put(x+dx, y+dy, tiles[i])
			i++
		}
	}
}

// fillColMajor covers a w×h area by repeating block s, column-major.
func (c *Context) fillColMajor(x, y, w, h int, s shape, tiles []tile.Info) {
	for dx := 0; dx < w; dx++ {
		for dy := 0; dy < h; dy++ {
			c.Put(x+dx, y+dy, tiles[(dx%s.w)*s.h+dy%s.h])
		}
	}
}

// rightwards builds a routine that repeats a block to the right every step
// tiles, falling back through chain when the span is short. The number of
// blocks comes from the context's Repeat.
func rightwards(step int, chain ...shape) Routine {
	return func(c *Context) {
		s, ok := fit(c.Tiles, chain...)
		if !ok {
			return
		}
		x, y := c.origin()
		n := c.count()
		for i := 0; i < n; i++ {
			c.colMajor(x+i*step, y, s, c.Tiles)
		}
	}
}

// downwards is rightwards along the y axis.
func downwards(step int, chain ...shape) Routine {
	return func(c *Context) {
		s, ok := fit(c.Tiles, chain...)
		if !ok {
			return
		}
		x, y := c.origin()
		n := c.count()
		for i := 0; i < n; i++ {
			c.colMajor(x, y+i*step, s, c.Tiles)
		}
	}
}

// single builds a routine that draws one fixed block at the origin.
func single(chain ...shape) Routine {
	return func(c *Context) {
		s, ok := fit(c.Tiles, chain...)
		if !ok {
			return
		}
		x, y := c.origin()
		c.colMajor(x, y, s, c.Tiles)
	}
}
