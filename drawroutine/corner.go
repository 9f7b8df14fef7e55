package drawroutine

func cornerRoutines() []Info {
	return []Info{
		{
			ID: Corner4x4, Name: "Corner4x4",
			Draw:      single(shape4x4, shape2x2),
			BaseWidth: 4, BaseHeight: 4, TileCount: 16,
		},
		{
			ID: Corner4x4_BothBG, Name: "Corner4x4_BothBG",
			Draw:           single(shape4x4, shape2x2),
			DrawsToBothBGs: true,
			BaseWidth:      4, BaseHeight: 4, TileCount: 16,
		},
		// The "weird" corners are routed through the layer pointers like any
		// single-layer object, whatever their names say.
		{
			ID: WeirdCornerBottom_BothBG, Name: "WeirdCornerBottom_BothBG",
			Draw:      single(shape4x3, shape2x2),
			BaseWidth: 4, BaseHeight: 3, TileCount: 12,
		},
		{
			ID: WeirdCornerTop_BothBG, Name: "WeirdCornerTop_BothBG",
			Draw:      single(shape3x4, shape2x2),
			BaseWidth: 3, BaseHeight: 4, TileCount: 12,
		},
		{
			ID: Single2x2, Name: "Single2x2",
			Draw:      single(shape2x2),
			BaseWidth: 2, BaseHeight: 2, TileCount: 4,
		},
		// Stairs and other fixed pieces: 4x4, or 4x3 for the spiral stairs.
		{
			ID: Single4x4, Name: "Single4x4",
			Draw:      single(shape4x4, shape4x3, shape2x2),
			BaseWidth: 4, BaseHeight: 4, TileCount: 16,
		},
	}
}
