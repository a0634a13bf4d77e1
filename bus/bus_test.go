package bus

import (
	"testing"

	"github.com/cryowatt/nes2a03/io"
	"github.com/cryowatt/nes2a03/mapper"
)

// stubMapper lets tests observe/control cartridge-space traffic independent
// of NROM's address decode rules.
type stubMapper struct {
	reads []uint16
	data  map[uint16]uint8
	chr   [0x2000]uint8
}

func newStubMapper() *stubMapper { return &stubMapper{data: map[uint16]uint8{}} }

func (m *stubMapper) CPURead(addr uint16) uint8 {
	m.reads = append(m.reads, addr)
	return m.data[addr]
}
func (m *stubMapper) CPUWrite(addr uint16, v uint8) { m.data[addr] = v }
func (m *stubMapper) CHRRead(addr uint16) uint8     { return m.chr[addr&0x1FFF] }
func (m *stubMapper) CHRWrite(addr uint16, v uint8)  { m.chr[addr&0x1FFF] = v }
func (m *stubMapper) PowerOn()                       {}

var _ mapper.Mapper = (*stubMapper)(nil)

func TestBusRAMMirroring(t *testing.T) {
	b := New(newStubMapper())
	b.Write(0x0000, 0x42)
	for _, addr := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := b.Read(addr); got != 0x42 {
			t.Errorf("Read(%#04x) = %#02x, want 0x42 (RAM mirror)", addr, got)
		}
	}
}

func TestBusPPURegisterMirroring(t *testing.T) {
	b := New(newStubMapper())
	// $2007 (PPUDATA) and its mirror at $200F ($2007 + 8) must reach the
	// same register: a write through one and a read through the other
	// should see the same buffered byte.
	b.Write(0x2007, 0x5A)
	if got := b.Read(0x200F); got != 0x5A {
		t.Errorf("Read($200F) = %#02x, want 0x5A (mirrors $2007)", got)
	}
	// The mirror window repeats every 8 bytes all the way through $3FFF.
	if got := b.Read(0x3FFF); got != 0x5A {
		t.Errorf("Read($3FFF) = %#02x, want 0x5A (mirrors $2007)", got)
	}
}

func TestBusCartridgeSpaceDelegatesToMapper(t *testing.T) {
	m := newStubMapper()
	b := New(m)
	b.Write(0x8000, 0x77)
	if got := b.Read(0x8000); got != 0x77 {
		t.Errorf("Read($8000) = %#02x, want 0x77", got)
	}
}

// countingPort counts Latch calls and reports a fixed bit pattern one button
// at a time, mimicking io.Buttons closely enough to test the bus's wiring.
type countingPort struct {
	latches int
	bits    []uint8
	i       int
}

func (p *countingPort) Latch(strobe bool) {
	p.latches++
	if strobe {
		p.i = 0
	}
}
func (p *countingPort) Input() uint8 {
	if p.i >= len(p.bits) {
		return 1
	}
	v := p.bits[p.i]
	p.i++
	return v
}

var _ io.Port8 = (*countingPort)(nil)

func TestBusControllerStrobeAndRead(t *testing.T) {
	b := New(newStubMapper())
	p1 := &countingPort{bits: []uint8{1, 0, 1}}
	b.Controller1 = p1

	b.Write(0x4016, 0x01) // strobe high
	b.Write(0x4016, 0x00) // strobe low, latches the report

	if p1.latches != 2 {
		t.Fatalf("latches = %d, want 2", p1.latches)
	}
	if got := b.Read(0x4016); got != 1 {
		t.Errorf("first Read($4016) = %d, want 1", got)
	}
	if got := b.Read(0x4016); got != 0 {
		t.Errorf("second Read($4016) = %d, want 0", got)
	}
}

func TestBusOAMDMAReadsSourcePageThroughBus(t *testing.T) {
	m := newStubMapper()
	b := New(m)
	// Source page in cartridge space so the stub mapper observes every read.
	b.Write(0x4014, 0x80) // page $8000-$80FF
	if len(m.reads) != 256 {
		t.Errorf("mapper saw %d reads during OAM DMA, want 256", len(m.reads))
	}
	if m.reads[0] != 0x8000 || m.reads[255] != 0x80FF {
		t.Errorf("DMA read range = [%#04x, %#04x], want [0x8000, 0x80FF]", m.reads[0], m.reads[255])
	}
}

func TestBusPowerOnCascades(t *testing.T) {
	b := New(newStubMapper())
	b.Write(0x4016, 0x01)
	b.PowerOn()
	// PowerOn should reset the strobe state; a fresh Read($4016) with an
	// open-bus default controller always reports released (1).
	if got := b.Read(0x4016); got != 1 {
		t.Errorf("Read($4016) after PowerOn = %d, want 1 (open bus default)", got)
	}
}
