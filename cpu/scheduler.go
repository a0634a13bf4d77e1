package cpu

// step is one microcode task: exactly one bus access (or, for the final
// step of a read-modify-write, the write half of a dummy-write/final-write
// pair) plus whatever register/latch bookkeeping goes with it. The queue is
// built once, synchronously, when an opcode is decoded; Cycle() pops and
// runs exactly one step per call.
type step func(c *Chip)

// readFn fetches one byte from somewhere (PC, a zero-page pointer, a
// resolved address, a fixed vector) without otherwise changing chip state.
type readFn func(c *Chip) uint8

// writeAddrFn resolves the address a write step targets.
type writeAddrFn func(c *Chip) uint16

// queueRead appends a step that reads a byte via read and hands it to
// consume.
func (c *Chip) queueRead(read readFn, consume func(c *Chip, v uint8)) {
	c.queue = append(c.queue, func(c *Chip) {
		consume(c, read(c))
	})
}

// queueWrite appends a step that writes produce()'s result to addr().
func (c *Chip) queueWrite(addr writeAddrFn, produce func(c *Chip) uint8) {
	c.queue = append(c.queue, func(c *Chip) {
		c.bus.Write(addr(c), produce(c))
	})
}

// queueDummyRead appends a step that reads a byte and discards it, used for
// dead cycles such as page-cross fixups and the stack/control-flow
// instructions' dummy reads.
func (c *Chip) queueDummyRead(read readFn) {
	c.queue = append(c.queue, func(c *Chip) {
		read(c)
	})
}

// queueDummyWrite appends a step that writes back the byte already latched
// in c.data unchanged -- the first half of a read-modify-write's two write
// cycles, which real hardware performs even though the value doesn't change.
func (c *Chip) queueDummyWrite(addr writeAddrFn) {
	c.queue = append(c.queue, func(c *Chip) {
		c.bus.Write(addr(c), c.data)
	})
}

// queueModifyWrite appends the final step of a read-modify-write: compute
// transforms the byte already latched in c.data and the result is written
// back to addr().
func (c *Chip) queueModifyWrite(addr writeAddrFn, compute rmwOp) {
	c.queue = append(c.queue, func(c *Chip) {
		c.bus.Write(addr(c), compute(c, c.data))
	})
}

// queuePush appends a step that writes produce()'s result to the stack and
// decrements S, both within the single cycle real hardware spends on a push.
func (c *Chip) queuePush(produce func(c *Chip) uint8) {
	c.queue = append(c.queue, func(c *Chip) {
		c.bus.Write(0x0100+uint16(c.S), produce(c))
		c.S--
	})
}

// queuePop appends a step that increments S and reads the resulting stack
// byte, handing it to consume -- both within the single cycle real hardware
// spends on a pop.
func (c *Chip) queuePop(consume func(c *Chip, v uint8)) {
	c.queue = append(c.queue, func(c *Chip) {
		c.S++
		consume(c, c.bus.Read(0x0100+uint16(c.S)))
	})
}

// queueInterrupt enqueues the push-PC/push-P/fetch-vector tail shared by
// NMI, IRQ and BRK: a leading dummy read (the signature-byte fetch for BRK,
// advancing PC; a re-read of the same PC for a hardware interrupt), then
// three pushes and a two-byte vector fetch -- six steps in all. BRK's
// leading dummy read is charged against the cycle its own opcode fetch
// already counted as cycle one of; a hardware interrupt's caller
// (maybeServiceInterrupt) spends one more direct bus read before calling
// this so the total still comes to seven cycles.
func (c *Chip) queueInterrupt(vector uint16, brk bool) {
	pushed := c.P | FlagUnused
	if brk {
		pushed |= FlagBreak
		c.queueDummyRead(readPCIncrement)
	} else {
		pushed &^= FlagBreak
		c.queueDummyRead(readPC)
	}
	c.queuePush(func(c *Chip) uint8 { return uint8(c.PC >> 8) })
	c.queuePush(func(c *Chip) uint8 { return uint8(c.PC) })
	c.queuePush(func(c *Chip) uint8 { return pushed })
	c.queueRead(readFixed(vector), func(c *Chip, v uint8) {
		c.P |= FlagInterrupt
		setPCLow(c, v)
	})
	c.queueRead(readFixed(vector+1), setPCHigh)
}

func pushStackAddr(c *Chip) uint16 { return 0x0100 + uint16(c.S) }

// popStackPeek reads the byte at the current stack pointer without moving
// it, used for the dummy pre-pop reads JSR/RTS/RTI/PLA/PLP all perform.
func popStackPeek(c *Chip) uint8 { return c.bus.Read(0x0100 + uint16(c.S)) }

// readPC reads the byte at PC without advancing it (used for implied/
// accumulator mode's mandatory dummy read, and for interrupt sequences).
func readPC(c *Chip) uint8 { return c.bus.Read(c.PC) }

// readPCIncrement reads the byte at PC and then advances PC, the standard
// operand-byte fetch.
func readPCIncrement(c *Chip) uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// readAddress reads the byte at the already-resolved c.address.
func readAddress(c *Chip) uint8 { return c.bus.Read(c.address) }

// writeAddress resolves to c.address, used as the addr callback for stores
// and read-modify-writes once addressing is fully resolved.
func writeAddress(c *Chip) uint16 { return c.address }

// readPointer reads the zero-page byte at c.pointer.
func readPointer(c *Chip) uint8 { return c.bus.Read(uint16(c.pointer)) }

// readPointerIncrement reads the zero-page byte at c.pointer then advances
// pointer with zero-page wraparound (never carries into page 1).
func readPointerIncrement(c *Chip) uint8 {
	v := c.bus.Read(uint16(c.pointer))
	c.pointer++
	return v
}

// readFixed returns a readFn bound to a constant address, used for vector
// fetches.
func readFixed(addr uint16) readFn {
	return func(c *Chip) uint8 { return c.bus.Read(addr) }
}

func setPCLow(c *Chip, v uint8)  { c.PC = c.PC&0xFF00 | uint16(v) }
func setPCHigh(c *Chip, v uint8) { c.PC = c.PC&0x00FF | uint16(v)<<8 }

func setAddressLow(c *Chip, v uint8)  { c.address = c.address&0xFF00 | uint16(v) }
func setAddressHigh(c *Chip, v uint8) { c.address = c.address&0x00FF | uint16(v)<<8 }

func setPointerLow(c *Chip, v uint8)  { c.pointer = v }
func setOperand(c *Chip, v uint8)     { c.operand = v }
func setData(c *Chip, v uint8)        { c.data = v }
