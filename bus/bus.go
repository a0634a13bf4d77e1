// Package bus implements the NES CPU address-decode glue: the single
// memory.Bank the cpu.Chip talks to, which fans out to work RAM, the PPU and
// APU register windows, controller ports, and the cartridge mapper.
package bus

import (
	"github.com/cryowatt/nes2a03/apu"
	"github.com/cryowatt/nes2a03/io"
	"github.com/cryowatt/nes2a03/mapper"
	"github.com/cryowatt/nes2a03/memory"
	"github.com/cryowatt/nes2a03/ppu"
)

// Bus is the CPU's memory.Bank. It owns work RAM directly and defers
// everything else to its collaborators.
type Bus struct {
	RAM    memory.Bank
	PPU    *ppu.PPU
	APU    *apu.APU
	Mapper mapper.Mapper

	Controller1 io.Port8
	Controller2 io.Port8

	strobe bool
}

// New wires a Bus to its collaborators. Controller1/Controller2 default to
// an always-released open-bus port until the caller plugs one in.
func New(m mapper.Mapper) *Bus {
	return &Bus{
		RAM:         memory.NewRAM(0x0800),
		PPU:         ppu.New(),
		APU:         apu.New(),
		Mapper:      m,
		Controller1: io.NewOpenBus(),
		Controller2: io.NewOpenBus(),
	}
}

// Read implements memory.Bank, decoding the CPU's full 16 bit address space.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		// 2KB work RAM mirrored 4x across the $0000-$1FFF window.
		return b.RAM.Read(addr & 0x07FF)
	case addr <= 0x3FFF:
		// 8 PPU registers mirrored every 8 bytes through $3FFF.
		return b.PPU.Read(addr & 0x0007)
	case addr == 0x4016:
		return b.Controller1.Input()
	case addr == 0x4017:
		return b.Controller2.Input()
	case addr <= 0x4017:
		return b.APU.Read(addr)
	default:
		// $4018 and up: cartridge space (PRG-RAM, PRG-ROM, mapper registers);
		// the unused $4018-$401F range is passed to the mapper as well.
		return b.Mapper.CPURead(addr)
	}
}

// Write implements memory.Bank.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= 0x1FFF:
		b.RAM.Write(addr&0x07FF, val)
	case addr <= 0x3FFF:
		b.PPU.Write(addr&0x0007, val)
	case addr == 0x4014:
		b.oamDMA(val)
	case addr == 0x4016:
		strobe := val&0x01 != 0
		b.strobe = strobe
		b.Controller1.Latch(strobe)
		b.Controller2.Latch(strobe)
	case addr <= 0x4017:
		b.APU.Write(addr, val)
	default:
		b.Mapper.CPUWrite(addr, val)
	}
}

// oamDMA drains the 256 bytes starting at val*0x100 through Read for its
// side effects only -- it does not store anything into OAM, since this
// package's ppu stub has no OAM array (cycle-accurate sprite rendering is
// out of scope, spec Non-goals). The real transfer also steals 513-514 CPU
// cycles this stub doesn't charge for; what it does reproduce is that every
// byte in the source page is actually read, so memory-mapped side effects
// (PPUDATA, mapper registers) fire the same as on real hardware.
func (b *Bus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.Read(base + uint16(i))
	}
}

// PowerOn implements memory.Bank, cascading to every collaborator.
func (b *Bus) PowerOn() {
	b.RAM.PowerOn()
	b.PPU.PowerOn()
	b.APU.PowerOn()
	b.Mapper.PowerOn()
	b.strobe = false
}
