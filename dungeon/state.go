// Package dungeon holds room objects and the dynamic game state that a few
// draw routines consult.
package dungeon

import "github.com/zyedidia/generic/mapset"

// State answers dynamic game-state queries for special draw routines.
type State interface {
	IsChestOpen(room, chest int) bool
	IsBigChestOpen(room int) bool
	IsDoorOpen(room, door int) bool
	IsDoorSwitchActive(room int) bool
	IsWallMoved(room int) bool
	IsFloorBombable(room int) bool
	IsRupeeFloorActive(room int) bool
	IsCrystalSwitchBlue() bool
}

type slot struct {
	room  int
	index int
}

// EditorState is an in-memory toggle map, the editor-side State.
// The zero value is not usable; call NewEditorState.
type EditorState struct {
	chests       mapset.Set[slot]
	doors        mapset.Set[slot]
	bigChests    mapset.Set[int]
	doorSwitches mapset.Set[int]
	movedWalls   mapset.Set[int]
	bombedFloors mapset.Set[int]
	takenRupees  mapset.Set[int]

	CrystalBlue bool
}

func NewEditorState() *EditorState {
	return &EditorState{
		chests:       mapset.New[slot](),
		doors:        mapset.New[slot](),
		bigChests:    mapset.New[int](),
		doorSwitches: mapset.New[int](),
		movedWalls:   mapset.New[int](),
		bombedFloors: mapset.New[int](),
		takenRupees:  mapset.New[int](),
	}
}

func toggle[K comparable](s mapset.Set[K], k K, on bool) {
	if on {
		s.Put(k)
	} else {
		s.Remove(k)
	}
}

func (s *EditorState) SetChestOpen(room, chest int, open bool) {
	toggle(s.chests, slot{room, chest}, open)
}

func (s *EditorState) SetBigChestOpen(room int, open bool) { toggle(s.bigChests, room, open) }

func (s *EditorState) SetDoorOpen(room, door int, open bool) {
	toggle(s.doors, slot{room, door}, open)
}

func (s *EditorState) SetDoorSwitchActive(room int, on bool) { toggle(s.doorSwitches, room, on) }
func (s *EditorState) SetWallMoved(room int, moved bool)     { toggle(s.movedWalls, room, moved) }

// SetFloorBombed marks a room's bombable floor as already blown open.
func (s *EditorState) SetFloorBombed(room int, bombed bool) { toggle(s.bombedFloors, room, bombed) }

// SetRupeesCollected marks a room's rupee floor as picked up.
func (s *EditorState) SetRupeesCollected(room int, taken bool) { toggle(s.takenRupees, room, taken) }

func (s *EditorState) IsChestOpen(room, chest int) bool { return s.chests.Has(slot{room, chest}) }
func (s *EditorState) IsBigChestOpen(room int) bool     { return s.bigChests.Has(room) }
func (s *EditorState) IsDoorOpen(room, door int) bool   { return s.doors.Has(slot{room, door}) }
func (s *EditorState) IsDoorSwitchActive(room int) bool { return s.doorSwitches.Has(room) }
func (s *EditorState) IsWallMoved(room int) bool        { return s.movedWalls.Has(room) }
func (s *EditorState) IsFloorBombable(room int) bool    { return !s.bombedFloors.Has(room) }
func (s *EditorState) IsRupeeFloorActive(room int) bool { return !s.takenRupees.Has(room) }
func (s *EditorState) IsCrystalSwitchBlue() bool        { return s.CrystalBlue }
