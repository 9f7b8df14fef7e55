package drawroutine

// objectRange maps the inclusive object id range [first, last] to a routine.
type objectRange struct {
	first, last int
	routine     int
}

func one(id, routine int) objectRange { return objectRange{id, id, routine} }

// objectTable is the object id -> routine id mapping shared by the renderer
// and anything that needs object bounds.
var objectTable = []objectRange{
	// type 1
	one(0x00, Rightwards2x2_1to15or32),
	{0x01, 0x02, Rightwards2x4_1to15or26},
	{0x03, 0x04, Rightwards2x4spaced4_1to16},
	{0x05, 0x06, Rightwards2x4spaced4_1to16_BothBG},
	{0x07, 0x08, Rightwards2x2_1to16},
	one(0x09, DiagonalAcute_1to16),
	{0x0A, 0x0B, DiagonalGrave_1to16},
	{0x0C, 0x0D, DiagonalAcute_1to16},
	{0x0E, 0x0F, DiagonalGrave_1to16},
	{0x10, 0x11, DiagonalAcute_1to16},
	{0x12, 0x13, DiagonalGrave_1to16},
	one(0x14, DiagonalAcute_1to16),
	one(0x15, DiagonalAcute_1to16_BothBG),
	{0x16, 0x17, DiagonalGrave_1to16_BothBG},
	{0x18, 0x19, DiagonalAcute_1to16_BothBG},
	{0x1A, 0x1B, DiagonalGrave_1to16_BothBG},
	{0x1C, 0x1D, DiagonalAcute_1to16_BothBG},
	{0x1E, 0x1F, DiagonalGrave_1to16_BothBG},
	one(0x20, DiagonalAcute_1to16_BothBG),
	one(0x21, Rightwards1x2_1to16_plus2),
	one(0x22, RightwardsHasEdge1x1_1to16_plus3),
	{0x23, 0x2E, RightwardsHasEdge1x1_1to16_plus2},
	one(0x2F, RightwardsTopCorners1x2_1to16_plus13),
	one(0x30, RightwardsBottomCorners1x2_1to16_plus13),
	{0x31, 0x32, CustomDraw},
	one(0x33, Rightwards4x4_1to16),
	one(0x34, Rightwards1x1Solid_1to16_plus3),
	one(0x35, DoorSwitcherer),
	{0x36, 0x37, RightwardsDecor4x4spaced2_1to16},
	one(0x38, RightwardsStatue2x3spaced2_1to16),
	one(0x39, RightwardsPillar2x4spaced4_1to16),
	{0x3A, 0x3B, RightwardsDecor4x3spaced4_1to16},
	one(0x3C, RightwardsDoubled2x2spaced2_1to16),
	one(0x3D, RightwardsPillar2x4spaced4_1to16),
	one(0x3E, RightwardsDecor2x2spaced12_1to16),
	{0x3F, 0x46, RightwardsHasEdge1x1_1to16_plus2},
	one(0x47, Waterfall47),
	one(0x48, Waterfall48),
	{0x49, 0x4A, RightwardsFloorTile4x2_1to16},
	one(0x4B, RightwardsDecor2x2spaced12_1to16),
	one(0x4C, RightwardsCannonHole4x3_1to16),
	{0x4D, 0x4F, Rightwards4x4_1to16},
	one(0x50, RightwardsLine1x1_1to16plus1),
	{0x51, 0x52, RightwardsCannonHole4x3_1to16},
	one(0x53, Rightwards2x2_1to16),
	one(0x54, Nothing),
	{0x55, 0x56, RightwardsDecor4x2spaced8_1to16},
	{0x57, 0x5A, Nothing},
	{0x5B, 0x5C, RightwardsCannonHole4x3_1to16},
	one(0x5D, RightwardsBigRail1x3_1to16plus5),
	one(0x5E, RightwardsBlock2x2spaced2_1to16),
	one(0x5F, RightwardsHasEdge1x1_1to16_plus23),
	one(0x60, Downwards2x2_1to15or32),
	{0x61, 0x62, Downwards4x2_1to15or26},
	{0x63, 0x64, Downwards4x2_1to16_BothBG},
	{0x65, 0x66, DownwardsDecor4x2spaced4_1to16},
	{0x67, 0x68, Downwards2x2_1to16},
	one(0x69, DownwardsHasEdge1x1_1to16_plus3),
	{0x6A, 0x6B, DownwardsEdge1x1_1to16},
	one(0x6C, DownwardsLeftCorners2x1_1to16_plus12),
	one(0x6D, DownwardsRightCorners2x1_1to16_plus12),
	{0x6E, 0x6F, Nothing},
	one(0x70, DownwardsFloor4x4_1to16),
	one(0x71, Downwards1x1Solid_1to16_plus3),
	one(0x72, Nothing),
	{0x73, 0x74, DownwardsDecor4x4spaced2_1to16},
	one(0x75, DownwardsPillar2x4spaced2_1to16),
	{0x76, 0x77, DownwardsDecor3x4spaced4_1to16},
	one(0x78, DownwardsDecor2x2spaced12_1to16),
	{0x79, 0x7A, DownwardsEdge1x1_1to16},
	one(0x7B, DownwardsDecor2x2spaced12_1to16),
	one(0x7C, DownwardsLine1x1_1to16plus1),
	one(0x7D, Downwards2x2_1to16),
	one(0x7E, Nothing),
	{0x7F, 0x80, DownwardsDecor2x4spaced8_1to16},
	{0x81, 0x84, DownwardsDecor3x4spaced2_1to16},
	{0x85, 0x86, DownwardsCannonHole3x6_1to16},
	one(0x87, DownwardsPillar2x4spaced2_1to16),
	one(0x88, DownwardsBigRail3x1_1to16plus5),
	one(0x89, DownwardsBlock2x2spaced2_1to16),
	{0x8A, 0x8C, DownwardsHasEdge1x1_1to16_plus23},
	{0x8D, 0x8E, DownwardsEdge1x1_1to16},
	one(0x8F, DownwardsBar2x5_1to16),
	{0x90, 0x91, Downwards4x2_1to15or26},
	{0x92, 0x93, Downwards2x2_1to15or32},
	one(0x94, DownwardsFloor4x4_1to16),
	one(0x95, Downwards2x2_1to16),
	one(0x96, DownwardsDecor2x2spaced12_1to16),
	{0x97, 0x9F, Nothing},
	one(0xA0, DiagonalCeilingTopLeft),
	one(0xA1, DiagonalCeilingBottomLeft),
	one(0xA2, DiagonalCeilingTopRight),
	one(0xA3, DiagonalCeilingBottomRight),
	one(0xA4, BigHole4x4_1to16),
	one(0xA5, DiagonalCeilingTopLeft),
	one(0xA6, DiagonalCeilingBottomLeft),
	one(0xA7, DiagonalCeilingTopRight),
	one(0xA8, DiagonalCeilingBottomRight),
	one(0xA9, DiagonalCeilingTopLeft),
	one(0xAA, DiagonalCeilingBottomLeft),
	one(0xAB, DiagonalCeilingTopRight),
	one(0xAC, DiagonalCeilingBottomRight),
	{0xAD, 0xAF, Nothing},
	{0xB0, 0xB1, RightwardsEdge1x1_1to16plus7},
	one(0xB2, Rightwards4x4_1to16),
	{0xB3, 0xB4, RightwardsHasEdge1x1_1to16_plus2},
	one(0xB5, Rightwards2x4_1to16),
	{0xB6, 0xB7, Rightwards2x4_1to15or26},
	{0xB8, 0xB9, Rightwards2x2_1to15or32},
	one(0xBA, Rightwards4x4_1to16),
	one(0xBB, RightwardsBlock2x2spaced2_1to16),
	{0xBC, 0xBD, Rightwards2x2_1to16},
	{0xBE, 0xBF, Nothing},
	{0xC0, 0xC2, Floor2x2In4x4SuperSquare},
	one(0xC3, Floor3x3In4x4SuperSquare),
	{0xC4, 0xCA, Floor4x4In4x4SuperSquare},
	{0xCB, 0xCC, Nothing},
	one(0xCD, MovingWallWest),
	one(0xCE, MovingWallEast),
	{0xCF, 0xD0, Nothing},
	{0xD1, 0xD2, Floor4x4In4x4SuperSquare},
	{0xD3, 0xD6, Nothing},
	one(0xD7, Floor3x3In4x4SuperSquare),
	one(0xD8, WaterOverlay8x8_1to16),
	one(0xD9, Floor4x4In4x4SuperSquare),
	one(0xDA, WaterOverlay8x8_1to16),
	{0xDB, 0xDD, Floor4x4In4x4SuperSquare},
	one(0xDE, Floor2x2In4x4SuperSquare),
	{0xDF, 0xE8, Floor4x4In4x4SuperSquare},
	{0xE9, 0xF7, Nothing},
	// 0xF8-0xFF never reach here: those object bytes select type 3.

	// type 2
	{0x100, 0x107, Corner4x4},
	{0x108, 0x10F, Corner4x4_BothBG},
	{0x110, 0x113, WeirdCornerBottom_BothBG},
	{0x114, 0x117, WeirdCornerTop_BothBG},
	{0x118, 0x11F, Single2x2},
	{0x120, 0x12F, Corner4x4},
	{0x130, 0x13F, Single4x4},

	// type 3. Pots, blocks, torches and switches are all single 2x2
	// pieces; only the objects below draw anything else.
	{0xF80, 0xF82, Single2x2},
	{0xF83, 0xF8A, SomariaLine},
	{0xF8B, 0xF98, Single2x2},
	one(0xF99, Chest),
	{0xF9A, 0xFB0, Single2x2},
	one(0xFB1, BigChest),
	{0xFB2, 0xFC6, Single2x2},
	one(0xFC7, BombableFloor),
	one(0xFC8, WaterFace),
	one(0xFC9, Single2x2),
	one(0xFCA, CrystalPegs),
	{0xFCB, 0xFD5, Single2x2},
	one(0xFD6, RupeeFloor),
	{0xFD7, 0xFE5, Single2x2},
	one(0xFE6, BigHole4x4_1to16),
	{0xFE7, 0xFEA, Single2x2},
	one(0xFEB, BigHole4x4_1to16),
	{0xFEC, 0xFFF, Single2x2},
}
