package dungeon

import "encoding/binary"

type WRAMArray [0x20000]byte

// WRAMState reads live game state out of a WRAM image, e.g. one captured
// from an emulator after the room finished loading.
type WRAMState struct {
	WRAM *WRAMArray
}

const (
	wramRoomSaveData  = 0xF000 // $7EF000: [0x128]uint16 per-room save flags
	wramDoorSwitch    = 0x0468 // $7E0468
	wramMovingWall    = 0x041A // $7E041A
	wramCrystalSwitch = 0xC172 // $7EC172
)

// room save word:
//
//	dddd fr cccccc qqqq
//	q: quadrants visited   c: chests 0..5 opened
//	r: rupee floor taken   f: floor bombed
//	d: doors 0..3 opened
const (
	roomFlagChest0 = 4
	roomFlagRupees = 10
	roomFlagBombed = 11
	roomFlagDoor0  = 12
	roomChestSlots = 6
	roomDoorSlots  = 4
	roomCount      = 0x128
)

func read8(b []byte, addr uint32) uint8 {
	return b[addr]
}

func read16(b []byte, addr uint32) uint16 {
	return binary.LittleEndian.Uint16(b[addr : addr+2])
}

func (s WRAMState) roomFlags(room int) uint16 {
	if s.WRAM == nil || room < 0 || room >= roomCount {
		return 0
	}
	return read16(s.WRAM[:], wramRoomSaveData+uint32(room)<<1)
}

func (s WRAMState) IsChestOpen(room, chest int) bool {
	if chest < 0 || chest >= roomChestSlots {
		return false
	}
	return s.roomFlags(room)&(1<<(roomFlagChest0+chest)) != 0
}

// IsBigChestOpen checks chest slot 0, which holds the big chest in every
// room that has one.
func (s WRAMState) IsBigChestOpen(room int) bool {
	return s.IsChestOpen(room, 0)
}

func (s WRAMState) IsDoorOpen(room, door int) bool {
	if door < 0 || door >= roomDoorSlots {
		return false
	}
	return s.roomFlags(room)&(1<<(roomFlagDoor0+door)) != 0
}

func (s WRAMState) IsFloorBombable(room int) bool {
	return s.roomFlags(room)&(1<<roomFlagBombed) == 0
}

func (s WRAMState) IsRupeeFloorActive(room int) bool {
	return s.roomFlags(room)&(1<<roomFlagRupees) == 0
}

// the remaining flags only describe the currently loaded room:

func (s WRAMState) IsDoorSwitchActive(room int) bool {
	return s.WRAM != nil && read8(s.WRAM[:], wramDoorSwitch) != 0
}

func (s WRAMState) IsWallMoved(room int) bool {
	return s.WRAM != nil && read8(s.WRAM[:], wramMovingWall) != 0
}

func (s WRAMState) IsCrystalSwitchBlue() bool {
	return s.WRAM != nil && read8(s.WRAM[:], wramCrystalSwitch) != 0
}
