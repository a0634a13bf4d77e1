// Package apu is a register-decode stub for the 2A03's audio unit. It does
// not synthesize audio (an explicit non-goal); it exists so CPU traffic to
// $4000-$4017 behaves plausibly for test ROMs that poke channel registers or
// poll $4015. It has no frame counter clock, so it never raises a frame IRQ
// on its own.
package apu

import "github.com/cryowatt/nes2a03/irq"

// APU is a register stub wired onto the bus at $4000-$4017. FrameIRQ is the
// line wired to the CPU's IRQ input; this stub never raises it itself (there
// is no frame counter clock), and clears it on a $4015 read, on a $4017 write
// that sets the inhibit bit, and on PowerOn.
type APU struct {
	status       uint8 // $4015 on write: channel enables. On read: status bits.
	frameMode    uint8 // $4017 high bits
	frameInhibit bool
	FrameIRQ     irq.Line
}

// New returns a freshly power-on APU.
func New() *APU { return &APU{} }

// Read implements memory.Bank for $4000-$4017. Only $4015 (status) and
// $4016/$4017 (controller ports, handled by the bus before traffic reaches
// here) are readable on real hardware; every other register is write-only
// and reads back open bus, modeled here as 0.
func (a *APU) Read(addr uint16) uint8 {
	if addr == 0x4015 {
		v := a.status
		a.FrameIRQ.Clear()
		return v
	}
	return 0
}

// Write implements memory.Bank.
func (a *APU) Write(addr uint16, val uint8) {
	switch addr {
	case 0x4015:
		a.status = val & 0x1F
	case 0x4017:
		a.frameMode = val >> 6
		a.frameInhibit = val&0x40 != 0
		if a.frameInhibit {
			a.FrameIRQ.Clear()
		}
	default:
		// Channel/sweep/length registers: accepted and discarded, since this
		// stub never synthesizes a waveform.
	}
}

// PowerOn implements memory.Bank.
func (a *APU) PowerOn() {
	a.status = 0
	a.frameMode = 0
	a.frameInhibit = false
	a.FrameIRQ.Clear()
}
