// Package console pulls cpu, bus, mapper and ines together into a runnable
// NES: load an image, build the chips, and step the CPU. PPU/APU are wired
// as register stubs (see the ppu and apu packages); this package does not
// attempt cycle-accurate PPU/APU clocking, which is an explicit non-goal.
package console

import (
	"fmt"
	"io"

	"github.com/cryowatt/nes2a03/bus"
	"github.com/cryowatt/nes2a03/cpu"
	iopkg "github.com/cryowatt/nes2a03/io"
	"github.com/cryowatt/nes2a03/ines"
	"github.com/cryowatt/nes2a03/mapper"
)

// Console is a fully wired NES: CPU, bus, and cartridge.
type Console struct {
	CPU *cpu.Chip
	Bus *bus.Bus
	ROM *ines.ROM
}

// Load parses an iNES image from r and wires up a Console ready for Reset.
func Load(r io.Reader) (*Console, error) {
	rom, err := ines.Load(r)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	m, err := mapper.New(rom.Header.Mapper, rom.PRGROM, rom.CHRROM, rom.Header.PRGRAMBanks)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	b := bus.New(m)
	c, err := cpu.New(cpu.Config{
		Bus: b,
		IRQ: &b.APU.FrameIRQ,
		NMI: &b.PPU.NMI,
	})
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	return &Console{CPU: c, Bus: b, ROM: rom}, nil
}

// PlugControllers wires physical controller implementations into ports 1/2,
// replacing the open-bus defaults bus.New installs.
func (con *Console) PlugControllers(p1, p2 iopkg.Port8) {
	if p1 != nil {
		con.Bus.Controller1 = p1
	}
	if p2 != nil {
		con.Bus.Controller2 = p2
	}
}

// Reset pulses the CPU's reset line and runs the reset-vector fetch cycles,
// so PC holds the reset vector on return. It does not touch RAM/PPU/APU/mapper
// state, matching what a real NES reset button does.
func (con *Console) Reset() {
	con.CPU.Reset()
	for !con.CPU.AtInstructionBoundary() {
		con.cycle()
	}
}

// PowerOn randomizes CPU/RAM/PPU/mapper power-on state and then resets,
// matching a cold boot rather than a reset-button press. Like Reset, it runs
// the reset-vector fetch cycles before returning.
func (con *Console) PowerOn() {
	con.Bus.PowerOn()
	con.CPU.PowerOn()
	for !con.CPU.AtInstructionBoundary() {
		con.cycle()
	}
}

// Step runs CPU cycles until the microcode queue drains back to an
// instruction boundary (i.e. executes exactly one instruction), clocking the
// PPU stub once per CPU cycle spent. It returns the number of CPU cycles the
// instruction took.
func (con *Console) Step() (uint64, error) {
	before := con.CPU.Cycles()
	if err := con.cycle(); err != nil {
		return con.CPU.Cycles() - before, err
	}
	for !con.CPU.AtInstructionBoundary() {
		if err := con.cycle(); err != nil {
			return con.CPU.Cycles() - before, err
		}
	}
	return con.CPU.Cycles() - before, nil
}

// cycle runs a single CPU cycle and clocks the PPU stub alongside it.
func (con *Console) cycle() error {
	con.Bus.PPU.Clock()
	return con.CPU.Cycle()
}

// Run steps instructions until err is non-nil (including cpu.HaltOpcode on
// an HLT opcode) or until limit instructions have executed, whichever comes
// first. limit <= 0 means unbounded. trace, if non-nil, is called with a
// Snapshot captured right before each instruction executes.
func (con *Console) Run(limit int, trace func(cpu.Snapshot)) error {
	for i := 0; limit <= 0 || i < limit; i++ {
		if trace != nil {
			trace(con.CPU.Peek())
		}
		if _, err := con.Step(); err != nil {
			return err
		}
	}
	return nil
}
