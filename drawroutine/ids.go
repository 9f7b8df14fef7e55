package drawroutine

// Canonical routine ids. Any other consumer of routine ids (bounds
// calculation, editors) must use these rather than its own numbering.
const (
	Rightwards2x2_1to15or32                 = 0
	Rightwards2x4_1to15or26                 = 1
	Rightwards2x4spaced4_1to16              = 2
	Rightwards2x4spaced4_1to16_BothBG       = 3
	Rightwards2x2_1to16                     = 4
	DiagonalAcute_1to16                     = 5
	DiagonalGrave_1to16                     = 6
	Downwards2x2_1to15or32                  = 7
	Downwards4x2_1to15or26                  = 8
	Downwards4x2_1to16_BothBG               = 9
	DownwardsDecor4x2spaced4_1to16          = 10
	Downwards2x2_1to16                      = 11
	DownwardsHasEdge1x1_1to16_plus3         = 12
	DownwardsEdge1x1_1to16                  = 13
	DownwardsLeftCorners2x1_1to16_plus12    = 14
	DownwardsRightCorners2x1_1to16_plus12   = 15
	RightwardsHasEdge1x1_1to16_plus3        = 16
	DiagonalAcute_1to16_BothBG              = 17
	DiagonalGrave_1to16_BothBG              = 18
	RightwardsHasEdge1x1_1to16_plus2        = 19
	RightwardsTopCorners1x2_1to16_plus13    = 20
	RightwardsBottomCorners1x2_1to16_plus13 = 21
	Rightwards1x2_1to16_plus2               = 22
	Rightwards4x4_1to16                     = 23
	Rightwards1x1Solid_1to16_plus3          = 24
	DoorSwitcherer                          = 25
	RightwardsDecor4x4spaced2_1to16         = 26
	RightwardsStatue2x3spaced2_1to16        = 27
	RightwardsPillar2x4spaced4_1to16        = 28
	RightwardsDecor4x3spaced4_1to16         = 29
	RightwardsDoubled2x2spaced2_1to16       = 30
	RightwardsDecor2x2spaced12_1to16        = 31
	DownwardsFloor4x4_1to16                 = 32
	Downwards1x1Solid_1to16_plus3           = 33
	DownwardsDecor4x4spaced2_1to16          = 34
	DownwardsPillar2x4spaced2_1to16         = 35
	DownwardsDecor3x4spaced4_1to16          = 36
	DownwardsDecor2x2spaced12_1to16         = 37
	DownwardsLine1x1_1to16plus1             = 38
	RightwardsBigRail1x3_1to16plus5         = 39
	DownwardsBigRail3x1_1to16plus5          = 40
	RightwardsEdge1x1_1to16plus7            = 41
	Corner4x4                               = 42
	Corner4x4_BothBG                        = 43
	WeirdCornerBottom_BothBG                = 44
	WeirdCornerTop_BothBG                   = 45
	Single2x2                               = 46
	BigHole4x4_1to16                        = 47
	Chest                                   = 48
	BigChest                                = 49
	SomariaLine                             = 50
	WaterFace                               = 51
	RupeeFloor                              = 52
	BombableFloor                           = 53
	CrystalPegs                             = 54
	Nothing                                 = 55
	CustomDraw                              = 56
	Waterfall47                             = 57
	Waterfall48                             = 58
	RightwardsFloorTile4x2_1to16            = 59
	RightwardsCannonHole4x3_1to16           = 60
	RightwardsLine1x1_1to16plus1            = 61
	RightwardsDecor4x2spaced8_1to16         = 62
	RightwardsBlock2x2spaced2_1to16         = 63
	RightwardsHasEdge1x1_1to16_plus23       = 64
	Rightwards2x4_1to16                     = 65
	DownwardsDecor2x4spaced8_1to16          = 66
	DownwardsDecor3x4spaced2_1to16          = 67
	DownwardsCannonHole3x6_1to16            = 68
	DownwardsBlock2x2spaced2_1to16          = 69
	DownwardsHasEdge1x1_1to16_plus23        = 70
	DownwardsBar2x5_1to16                   = 71
	DiagonalCeilingTopLeft                  = 72
	DiagonalCeilingBottomLeft               = 73
	DiagonalCeilingTopRight                 = 74
	DiagonalCeilingBottomRight              = 75
	Floor2x2In4x4SuperSquare                = 76
	Floor3x3In4x4SuperSquare                = 77
	Floor4x4In4x4SuperSquare                = 78
	WaterOverlay8x8_1to16                   = 79
	MovingWallWest                          = 80
	MovingWallEast                          = 81
	Single4x4                               = 82

	routineCount = 83
)
