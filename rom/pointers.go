package rom

// pointers holds the bus addresses of the room object tables for one ROM
// region.
type pointers struct {
	Name string

	RoomDrawObjectData uint32 // 0x00_9B52

	Subtype1TileOffsets uint32 // 0x01_8000
	Subtype2TileOffsets uint32 // 0x01_83F0
	Subtype3TileOffsets uint32 // 0x01_84F0
}

var alttpJP10 = pointers{
	Name: "JP 1.0",

	RoomDrawObjectData: 0x00_9B52,

	Subtype1TileOffsets: 0x01_8000,
	Subtype2TileOffsets: 0x01_83F0,
	Subtype3TileOffsets: 0x01_84F0,
}

// the object tables did not move between JP 1.0 and US:
var alttpUS = pointers{
	Name: "US",

	RoomDrawObjectData: 0x00_9B52,

	Subtype1TileOffsets: 0x01_8000,
	Subtype2TileOffsets: 0x01_83F0,
	Subtype3TileOffsets: 0x01_84F0,
}
