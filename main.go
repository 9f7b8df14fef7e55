package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"

	"roomdraw/bgbuffer"
	"roomdraw/customobj"
	"roomdraw/drawroutine"
	"roomdraw/dungeon"
	"roomdraw/objdraw"
	"roomdraw/rom"
	"roomdraw/taskqueue"
)

var (
	romPath          string
	gfxPath          string
	cgramPath        string
	wramPath         string
	useCustomObjects bool
	customTableStr   string
	drawLabels       bool
	drawBGLayerPNGs  bool
	outDir           string
)

// renderer holds everything shared read-only between room jobs.
type renderer struct {
	reg    *drawroutine.Registry
	rom    *rom.ROM
	gfx    []byte
	pal    color.Palette
	custom *customobj.Table
	wram   *dungeon.WRAMArray
	rooms  map[int]bool

	failed int32
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("main: recovered from error: %v\n%s\n", err, debug.Stack())
			glog.Flush()
			os.Exit(2)
		}
	}()
	defer glog.Flush()

	nWorkers := -1
	roomListStr := ""
	flag.StringVar(&romPath, "rom", "alttp-jp.sfc", "path to a headerless LoROM image")
	flag.StringVar(&gfxPath, "gfx", "", "4bpp planar BG character data to rasterize tiles from")
	flag.StringVar(&cgramPath, "cgram", "", "CGRAM dump (BGR15 words) to color the rooms with")
	flag.StringVar(&wramPath, "wram", "", "WRAM dump to read dungeon state from instead of the room files")
	flag.BoolVar(&useCustomObjects, "custom", false, "draw custom object overrides")
	flag.StringVar(&customTableStr, "customtable", "", "bus address of the custom object pointer table (hex)")
	flag.BoolVar(&drawLabels, "labels", false, "label objects with their draw routine names")
	flag.BoolVar(&drawBGLayerPNGs, "bgpngs", false, "create individual room BG layer PNGs")
	flag.StringVar(&outDir, "out", ".", "output directory")
	flag.StringVar(&roomListStr, "rooms", "", "only draw these rooms (hex), comma delimited, ranges with x..y permitted")
	flag.IntVar(&nWorkers, "n", -1, "number of parallel workers (-1 = CPU count)")
	flag.Parse()

	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: roomdraw [flags] room.json...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	rd := setup(roomListStr)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	q := taskqueue.NewQ[string](nWorkers, len(args), rd.renderRoomFile)
	q.OnPanic(func(path string, err any) {
		fmt.Printf("%s: render panicked: %v\n", path, err)
		atomic.AddInt32(&rd.failed, 1)
	})
	for _, path := range args {
		q.SubmitItem(path)
	}
	q.Wait()
	q.Close()

	if n := atomic.LoadInt32(&rd.failed); n > 0 {
		fmt.Printf("%d of %d rooms failed\n", n, len(args))
		glog.Flush()
		os.Exit(1)
	}
}

// setup loads the ROM and the optional inputs. Any failure here is fatal.
func setup(roomListStr string) *renderer {
	var err error

	rd := &renderer{reg: drawroutine.New()}

	var data []byte
	if data, err = os.ReadFile(romPath); err != nil {
		panic(err)
	}
	if rd.rom, err = rom.Load(data); err != nil {
		panic(err)
	}
	fmt.Printf("Detected %s ROM\n", rd.rom.Region())

	if gfxPath != "" {
		if rd.gfx, err = os.ReadFile(gfxPath); err != nil {
			panic(err)
		}
	}

	rd.pal = grayPalette()
	if cgramPath != "" {
		if rd.pal, err = loadCGRAM(cgramPath); err != nil {
			panic(err)
		}
	}

	if wramPath != "" {
		var b []byte
		if b, err = os.ReadFile(wramPath); err != nil {
			panic(err)
		}
		rd.wram = &dungeon.WRAMArray{}
		copy(rd.wram[:], b)
	}

	if useCustomObjects && customTableStr != "" {
		var addr uint64
		if addr, err = strconv.ParseUint(customTableStr, 16, 24); err != nil {
			panic(fmt.Errorf("-customtable: %w", err))
		}
		if rd.custom, err = customobj.LoadTable(rd.rom, uint32(addr)); err != nil {
			panic(err)
		}
		fmt.Printf("loaded %d custom objects\n", rd.custom.Len())
	}

	if roomListStr != "" {
		if rd.rooms, err = parseRoomList(roomListStr); err != nil {
			panic(fmt.Errorf("-rooms: %w", err))
		}
	}

	return rd
}

func (rd *renderer) renderRoomFile(q *taskqueue.Q[string], path string) {
	if err := rd.renderRoom(path); err != nil {
		fmt.Printf("%s: %v\n", path, err)
		atomic.AddInt32(&rd.failed, 1)
	}
}

func (rd *renderer) renderRoom(path string) (err error) {
	var f *roomFile
	if f, err = loadRoom(path); err != nil {
		return
	}
	if rd.rooms != nil && !rd.rooms[f.Room] {
		return
	}

	fmt.Printf("room $%03x render start\n", f.Room)

	var state dungeon.State = f.editorState()
	if rd.wram != nil {
		state = dungeon.WRAMState{WRAM: rd.wram}
	}

	bg1 := bgbuffer.New(rd.gfx)
	bg2 := bgbuffer.New(rd.gfx)
	layout := bgbuffer.New(rd.gfx)
	s := objdraw.Surfaces{
		BG1:       bg1,
		BG2:       bg2,
		LayoutBG1: layout,
		Palette:   rd.pal,
	}

	opts := []objdraw.Option{objdraw.WithCustomObjectsEnabled(useCustomObjects)}
	if rd.custom != nil {
		opts = append(opts, objdraw.WithCustomObjects(rd.custom))
	}
	d := objdraw.New(f.Room, rd.reg, rd.rom, opts...)

	objs := f.roomObjects()
	// a bad object still leaves the rest of the room worth looking at:
	if derr := d.DrawObjectList(objs, s, state); derr != nil {
		fmt.Printf("room $%03x: %v\n", f.Room, derr)
	}

	bg1p := bg1.PriorityLayers(rd.pal)
	bg2p := bg2.PriorityLayers(rd.pal)

	g := image.NewNRGBA(image.Rect(0, 0, bgbuffer.Pixels, bgbuffer.Pixels))
	composeRoom(g, rd.pal, bg1p, bg2p)
	if drawLabels {
		drawObjectLabels(g, rd.reg, objs)
	}

	name := filepath.Join(outDir, fmt.Sprintf("room-%03x.png", f.Room))
	if err = exportPNG(name, g); err != nil {
		return
	}

	if drawBGLayerPNGs {
		layers := []struct {
			suffix string
			img    image.Image
		}{
			{"bg1", bg1.Surface},
			{"bg2", bg2.Surface},
			{"bg1p0", bg1p[0]},
			{"bg1p1", bg1p[1]},
			{"bg2p0", bg2p[0]},
			{"bg2p1", bg2p[1]},
		}
		for _, l := range layers {
			name = filepath.Join(outDir, fmt.Sprintf("room-%03x-%s.png", f.Room, l.suffix))
			if err = exportPNG(name, l.img); err != nil {
				return
			}
		}

		// layout BG1 only ever receives transparency marks; show them in red
		mask := image.NewNRGBA(layout.Pixels.Rect)
		red := color.NRGBA{255, 0, 0, 128}
		for y := 0; y < bgbuffer.Pixels; y++ {
			for x := 0; x < bgbuffer.Pixels; x++ {
				if layout.Pixels.ColorIndexAt(x, y) == bgbuffer.Transparent {
					mask.SetNRGBA(x, y, red)
				}
			}
		}
		name = filepath.Join(outDir, fmt.Sprintf("room-%03x-mask.png", f.Room))
		if err = exportPNG(name, mask); err != nil {
			return
		}
	}

	fmt.Printf("room $%03x render complete\n", f.Room)
	return
}
