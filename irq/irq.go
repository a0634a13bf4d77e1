// Package irq defines the basic interface for working with a 6502 family
// interrupt. A receiver of interrupts (IRQ/NMI) implements this interface so
// other components that generate them (PPU, APU frame counter) don't need to
// be coupled to the CPU's internal state.
package irq

// Sender defines the interface for an interrupt source.
type Sender interface {
	// Raised indicates whether the interrupt line is currently held.
	Raised() bool
}

// Line is a simple edge/level latch implementing Sender, suitable for
// wiring a PPU's NMI-on-vblank output or an APU frame IRQ into a CPU.
type Line struct {
	raised bool
}

// Raise asserts the interrupt line.
func (l *Line) Raise() { l.raised = true }

// Clear deasserts the interrupt line.
func (l *Line) Clear() { l.raised = false }

// Raised implements Sender.
func (l *Line) Raised() bool { return l.raised }
