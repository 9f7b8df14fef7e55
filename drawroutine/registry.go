package drawroutine

import (
	"fmt"
	"sync"
)

// Category groups routines by the direction they grow in. Grid routines
// read their size byte as packed width and height.
type Category int

const (
	Rightwards Category = iota
	Downwards
	Diagonal
	Corner
	Special
	Grid
)

func (c Category) String() string {
	switch c {
	case Rightwards:
		return "rightwards"
	case Downwards:
		return "downwards"
	case Diagonal:
		return "diagonal"
	case Corner:
		return "corner"
	case Special:
		return "special"
	case Grid:
		return "grid"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Info describes one routine. BaseWidth and BaseHeight are in tiles; zero
// means the extent depends on the object's size byte.
type Info struct {
	ID             int
	Name           string
	Draw           Routine
	DrawsToBothBGs bool
	BaseWidth      int
	BaseHeight     int
	Category       Category
	Repeat         Repeat
	TileCount      int
}

// Registry maps routine ids to routines and object ids to routine ids.
// It is immutable once built and safe for concurrent readers.
type Registry struct {
	routines []Info
	known    []bool
	objects  map[int]int
}

// New builds a registry from the routine families and the object table.
// It panics on duplicate routine or object ids.
func New() *Registry {
	r := &Registry{
		routines: make([]Info, routineCount),
		known:    make([]bool, routineCount),
		objects:  make(map[int]int, 0x200),
	}

	r.register(Rightwards, rightwardsRoutines())
	r.register(Downwards, downwardsRoutines())
	r.register(Diagonal, diagonalRoutines())
	r.register(Corner, cornerRoutines())
	r.register(Special, specialRoutines())
	r.register(Grid, superSquareRoutines())

	for _, m := range objectTable {
		for id := m.first; id <= m.last; id++ {
			if _, dup := r.objects[id]; dup {
				panic(fmt.Errorf("drawroutine: object $%03X mapped twice", id))
			}
			r.objects[id] = m.routine
		}
	}

	return r
}

func (r *Registry) register(cat Category, infos []Info) {
	for _, info := range infos {
		if info.ID < 0 || info.ID >= len(r.routines) {
			panic(fmt.Errorf("drawroutine: routine id %d out of range", info.ID))
		}
		if r.known[info.ID] {
			panic(fmt.Errorf("drawroutine: routine id %d (%s) registered twice", info.ID, info.Name))
		}
		info.Category = cat
		r.routines[info.ID] = info
		r.known[info.ID] = true
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a shared registry, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// GetRoutineInfo looks up a routine by canonical id.
func (r *Registry) GetRoutineInfo(id int) (Info, bool) {
	if id < 0 || id >= len(r.routines) || !r.known[id] {
		return Info{}, false
	}
	return r.routines[id], true
}

// RoutineDrawsToBothBGs reports whether the routine writes BG1 and BG2 at
// once. Unknown ids report false.
func (r *Registry) RoutineDrawsToBothBGs(id int) bool {
	info, ok := r.GetRoutineInfo(id)
	return ok && info.DrawsToBothBGs
}

// GetRoutineDimensions returns the routine's base footprint in tiles.
func (r *Registry) GetRoutineDimensions(id int) (w, h int, ok bool) {
	info, ok := r.GetRoutineInfo(id)
	if !ok {
		return 0, 0, false
	}
	return info.BaseWidth, info.BaseHeight, true
}

// RoutineForObject maps a room object id to its routine id.
func (r *Registry) RoutineForObject(objectID int) (routineID int, ok bool) {
	routineID, ok = r.objects[objectID]
	return
}

// IDs lists the registered routine ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.routines))
	for id, ok := range r.known {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}
