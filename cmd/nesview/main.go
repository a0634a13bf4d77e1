// Command nesview is a minimal SDL2 debug viewer: it runs a cartridge
// headlessly on the CPU core and renders the CHR-ROM pattern tables plus a
// live register dump, redrawn at most about every 33ms. It is not a
// cycle-accurate picture generator -- there is no real scanline/pixel
// rendering here, since that's out of scope -- just a way to watch a CPU
// core execute against real game code without staring at a trace log.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/cryowatt/nes2a03/console"
)

var (
	cart  = flag.String("cart", "", "Path to the iNES image to run")
	scale = flag.Int("scale", 3, "Integer scale factor for the pattern-table window")
)

const (
	patternWidth  = 256 // two 128px banks side by side
	patternHeight = 128
	hudHeight     = 48
)

func main() {
	flag.Parse()
	if *cart == "" {
		log.Fatal("-cart is required")
	}

	f, err := os.Open(*cart)
	if err != nil {
		log.Fatalf("opening -cart: %v", err)
	}
	con, err := console.Load(f)
	f.Close()
	if err != nil {
		log.Fatalf("loading rom: %v", err)
	}
	con.PowerOn()

	sdl.Main(func() {
		var window *sdl.Window
		var surface *sdl.Surface

		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
				log.Fatalf("can't init SDL: %v", err)
			}
			factor := *scale
			window, err = sdl.CreateWindow(
				"nesview",
				sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				int32(patternWidth*factor), int32((patternHeight+hudHeight)*factor),
				sdl.WINDOW_SHOWN,
			)
			if err != nil {
				log.Fatalf("can't create window: %v", err)
			}
			surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("can't get window surface: %v", err)
			}
		})
		defer sdl.Do(func() {
			window.Destroy()
			sdl.Quit()
		})

		running := true
		lastDraw := time.Now()
		for running {
			sdl.Do(func() {
				for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
					if _, ok := event.(*sdl.QuitEvent); ok {
						running = false
					}
				}
			})

			// Run a batch of instructions between redraws rather than one
			// per frame tick; CPU instructions complete far faster than
			// SDL's redraw cadence needs.
			for i := 0; i < 2000 && running; i++ {
				if _, err := con.Step(); err != nil {
					fmt.Fprintf(os.Stderr, "nesview: run stopped: %v\n", err)
					running = false
				}
			}

			if time.Since(lastDraw) > 33*time.Millisecond {
				sdl.Do(func() {
					drawPatternTables(surface, con, *scale)
					drawRegisterHUD(surface, con, *scale)
					window.UpdateSurface()
				})
				lastDraw = time.Now()
			}
		}
	})
}

// drawPatternTables renders both 4KB CHR pattern tables (the mapper's CHR
// read path, left bank then right bank) into the top of surface using the
// same fixed 4-shade palette cmd/chrdump uses.
func drawPatternTables(surface *sdl.Surface, con *console.Console, scale int) {
	var shade [4]uint32
	shade[0] = sdl.MapRGBA(surface.Format, 0x00, 0x00, 0x00, 0xFF)
	shade[1] = sdl.MapRGBA(surface.Format, 0x60, 0x60, 0x60, 0xFF)
	shade[2] = sdl.MapRGBA(surface.Format, 0xB0, 0xB0, 0xB0, 0xFF)
	shade[3] = sdl.MapRGBA(surface.Format, 0xFF, 0xFF, 0xFF, 0xFF)

	for bank := 0; bank < 2; bank++ {
		for tile := 0; tile < 256; tile++ {
			tx := tile % 16
			ty := tile / 16
			base := uint16(bank*0x1000 + tile*16)
			for row := 0; row < 8; row++ {
				lo := bits.Reverse8(readCHR(con, base+uint16(row)))
				hi := bits.Reverse8(readCHR(con, base+uint16(row)+8))
				for col := 0; col < 8; col++ {
					pixel := ((lo >> uint(col)) & 1) | (((hi >> uint(col)) & 1) << 1)
					px := (bank*128 + tx*8 + col) * scale
					py := (ty*8 + row) * scale
					fillScaled(surface, px, py, scale, shade[pixel])
				}
			}
		}
	}
}

func readCHR(con *console.Console, addr uint16) uint8 {
	return con.Bus.Mapper.CHRRead(addr)
}

func fillScaled(surface *sdl.Surface, x, y, scale int, color uint32) {
	rect := &sdl.Rect{X: int32(x), Y: int32(y), W: int32(scale), H: int32(scale)}
	surface.FillRect(rect, color)
}

// drawRegisterHUD renders a simple text-free register strip (colored bars
// proportional to A/X/Y/S) below the pattern tables -- nesview has no font
// rendering dependency, so registers are shown as bar graphs rather than text.
func drawRegisterHUD(surface *sdl.Surface, con *console.Console, scale int) {
	y0 := int32(patternHeight * scale)
	bg := sdl.MapRGBA(surface.Format, 0x10, 0x10, 0x10, 0xFF)
	surface.FillRect(&sdl.Rect{X: 0, Y: y0, W: int32(patternWidth * scale), H: int32(hudHeight * scale)}, bg)

	regs := []struct {
		label string
		value uint8
		color uint32
	}{
		{"A", con.CPU.A, sdl.MapRGBA(surface.Format, 0xE0, 0x40, 0x40, 0xFF)},
		{"X", con.CPU.X, sdl.MapRGBA(surface.Format, 0x40, 0xE0, 0x40, 0xFF)},
		{"Y", con.CPU.Y, sdl.MapRGBA(surface.Format, 0x40, 0x40, 0xE0, 0xFF)},
		{"S", con.CPU.S, sdl.MapRGBA(surface.Format, 0xE0, 0xE0, 0x40, 0xFF)},
	}
	barWidth := int32(patternWidth * scale / len(regs))
	for i, r := range regs {
		h := int32(r.value) * int32(hudHeight*scale) / 0xFF
		rect := &sdl.Rect{
			X: int32(i) * barWidth,
			Y: y0 + int32(hudHeight*scale) - h,
			W: barWidth - 2,
			H: h,
		}
		surface.FillRect(rect, r.color)
	}
}
