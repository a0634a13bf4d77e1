// Package ppu is a register-decode stub for the Ricoh 2C02. It is not a
// cycle-accurate picture generator (that's an explicit non-goal); it exists
// so CPU reads and writes to $2000-$3FFF behave the way test ROMs that merely
// poll PPUSTATUS expect, and so vblank can still drive an NMI into the CPU.
package ppu

import (
	"math/rand"
	"time"

	"github.com/cryowatt/nes2a03/irq"
)

// Status bits of PPUSTATUS ($2002).
const (
	StatusSpriteOverflow = uint8(0x20)
	StatusSprite0Hit     = uint8(0x40)
	StatusVBlank         = uint8(0x80)
)

// dotsPerFrame is a rough stand-in for the 2C02's 341x262 dot grid: 29781 CPU
// cycles' worth of dots at 3 dots per cycle, since this stub is driven by CPU
// cycles rather than its own 3x-faster dot clock. It only needs to set vblank
// at a plausible cadence for polling loops, not match real PPU timing.
const dotsPerFrame = 29781 * 3

// PPU is a minimal register stub wired onto the bus at $2000-$3FFF.
type PPU struct {
	ctrl    uint8 // $2000, write-only from the CPU's perspective
	mask    uint8 // $2001
	status  uint8 // $2002, top 3 bits only
	oamAddr uint8 // $2003

	addrLatch  uint16
	addrHiNext bool
	readBuffer uint8

	dot int

	// NMI is raised on the vblank-start edge when ctrl bit 7 is set, and
	// cleared on every PPUSTATUS read and by PowerOn. Servicing the NMI in
	// the CPU, or clearing ctrl's NMI-enable bit, does not clear it.
	NMI irq.Line
}

// New returns a PPU with vblank already set, since most test ROMs' first
// PPUSTATUS poll expects to see it.
func New() *PPU {
	p := &PPU{status: StatusVBlank | StatusSpriteOverflow}
	return p
}

// Clock advances the stub's internal dot counter by one CPU cycle's worth of
// PPU dots (3) and sets vblank at the start of each synthesized frame. Vblank
// is cleared only by a PPUSTATUS read or PowerOn.
func (p *PPU) Clock() {
	p.dot += 3
	if p.dot >= dotsPerFrame {
		p.dot -= dotsPerFrame
		p.status |= StatusVBlank
		if p.ctrl&0x80 != 0 {
			p.NMI.Raise()
		}
	}
}

// Read implements memory.Bank for the $2000-$3FFF window, already mirrored
// down to 3 bits by the caller (bus mirrors every 8 bytes through $3FFF).
func (p *PPU) Read(reg uint16) uint8 {
	switch reg & 0x7 {
	case 2: // PPUSTATUS
		v := p.status
		p.status &^= StatusVBlank
		p.addrHiNext = false
		p.NMI.Clear()
		return v
	case 4: // OAMDATA
		return 0
	case 7: // PPUDATA
		return p.readBuffer
	default:
		return 0
	}
}

// Write implements memory.Bank.
func (p *PPU) Write(reg uint16, val uint8) {
	switch reg & 0x7 {
	case 0: // PPUCTRL
		p.ctrl = val
	case 1: // PPUMASK
		p.mask = val
	case 3: // OAMADDR
		p.oamAddr = val
	case 6: // PPUADDR
		if p.addrHiNext {
			p.addrLatch = p.addrLatch&0xFF00 | uint16(val)
		} else {
			p.addrLatch = p.addrLatch&0x00FF | uint16(val)<<8
		}
		p.addrHiNext = !p.addrHiNext
	case 7: // PPUDATA
		p.readBuffer = val
	}
}

// PowerOn implements memory.Bank.
func (p *PPU) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	p.ctrl = 0
	p.mask = 0
	p.status = StatusVBlank | StatusSpriteOverflow
	p.oamAddr = uint8(rand.Intn(256))
	p.dot = 0
	p.NMI.Clear()
}
