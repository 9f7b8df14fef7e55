package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"roomdraw/dungeon"
	"roomdraw/tile"
)

// roomFile is the on-disk description of one room to draw.
type roomFile struct {
	Room    int          `json:"room"`
	Objects []objectJSON `json:"objects"`
	State   stateJSON    `json:"state"`
}

type objectJSON struct {
	ID     int      `json:"id"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Size   uint8    `json:"size"`
	Layer  uint8    `json:"layer"`
	AllBGs bool     `json:"all_bgs"`
	Tiles  []uint16 `json:"tiles"`
}

type stateJSON struct {
	ChestsOpen      []int `json:"chests_open"`
	BigChestOpen    bool  `json:"big_chest_open"`
	DoorsOpen       []int `json:"doors_open"`
	DoorSwitch      bool  `json:"door_switch"`
	WallMoved       bool  `json:"wall_moved"`
	FloorBombed     bool  `json:"floor_bombed"`
	RupeesCollected bool  `json:"rupees_collected"`
	CrystalBlue     bool  `json:"crystal_blue"`
}

func loadRoom(path string) (f *roomFile, err error) {
	var b []byte
	if b, err = os.ReadFile(path); err != nil {
		return
	}
	f = &roomFile{}
	if err = json.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, o := range f.Objects {
		if o.Layer > uint8(dungeon.BG3) {
			return nil, fmt.Errorf("%s: object %d: layer %d out of range", path, i, o.Layer)
		}
		if o.X < 0 || o.X > 63 || o.Y < 0 || o.Y > 63 {
			return nil, fmt.Errorf("%s: object %d: position (%d,%d) out of range", path, i, o.X, o.Y)
		}
	}
	return
}

func (f *roomFile) roomObjects() []dungeon.RoomObject {
	objs := make([]dungeon.RoomObject, len(f.Objects))
	for i, o := range f.Objects {
		objs[i] = dungeon.RoomObject{
			ID:     o.ID,
			X:      o.X,
			Y:      o.Y,
			Size:   o.Size,
			Layer:  dungeon.Layer(o.Layer),
			AllBGs: o.AllBGs,
			Tiles:  tile.FromWords(o.Tiles),
		}
	}
	return objs
}

func (f *roomFile) editorState() *dungeon.EditorState {
	s := dungeon.NewEditorState()
	room := f.Room
	for _, c := range f.State.ChestsOpen {
		s.SetChestOpen(room, c, true)
	}
	for _, d := range f.State.DoorsOpen {
		s.SetDoorOpen(room, d, true)
	}
	s.SetBigChestOpen(room, f.State.BigChestOpen)
	s.SetDoorSwitchActive(room, f.State.DoorSwitch)
	s.SetWallMoved(room, f.State.WallMoved)
	s.SetFloorBombed(room, f.State.FloorBombed)
	s.SetRupeesCollected(room, f.State.RupeesCollected)
	s.CrystalBlue = f.State.CrystalBlue
	return s
}

// parseRoomList parses "12,1a..1f" style hex lists into a set of rooms.
func parseRoomList(s string) (rooms map[int]bool, err error) {
	rooms = make(map[int]bool)
	for s != "" {
		exprStr, remainder, found := strings.Cut(s, ",")
		if !found {
			exprStr = s
		}
		s = remainder

		// check if it's a range:
		if rangeStartStr, rangeEndStr, hasRange := strings.Cut(exprStr, ".."); hasRange {
			var rs, re uint64
			if rs, err = strconv.ParseUint(rangeStartStr, 16, 16); err != nil {
				return nil, err
			}
			if re, err = strconv.ParseUint(rangeEndStr, 16, 16); err != nil {
				return nil, err
			}
			for i := int(rs); i <= int(re); i++ {
				rooms[i] = true
			}
		} else {
			// single number:
			var r uint64
			if r, err = strconv.ParseUint(exprStr, 16, 16); err != nil {
				return nil, err
			}
			rooms[int(r)] = true
		}
	}
	return
}
