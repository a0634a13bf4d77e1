package cpu

// This file enqueues the bus-access sequence for every addressing mode,
// split by the three operation shapes the 6502 actually has: a Read
// (operand consumed, nothing written back), a Write (a register value
// stored, no read of the destination), and a Read-Modify-Write (operand
// read, written back unchanged, then written back transformed). Every
// function here runs once, synchronously, from inside an opcode's decode
// table entry -- it only ever calls c.queue* helpers, never c.bus directly.

func finishRead(op readOp) func(c *Chip, v uint8) {
	return func(c *Chip, v uint8) { op(c, v) }
}

// --- Immediate ---------------------------------------------------------------

func immediateRead(c *Chip, op readOp) {
	c.queueRead(readPCIncrement, finishRead(op))
}

// --- Implied / Accumulator ---------------------------------------------------

// implied spends the mandatory dummy read of the next opcode byte (which is
// discarded) before running op, matching every 2-cycle implied instruction.
func implied(c *Chip, op func(c *Chip)) {
	c.queue = append(c.queue, func(c *Chip) {
		readPC(c)
		op(c)
	})
}

func accumulator(c *Chip, op func(c *Chip)) {
	implied(c, op)
}

// --- Zero page ---------------------------------------------------------------

func zeroPageRead(c *Chip, op readOp) {
	c.queueRead(readPCIncrement, setPointerLow)
	c.queueRead(readPointer, finishRead(op))
}

func zeroPageWrite(c *Chip, op writeOp) {
	c.queueRead(readPCIncrement, setPointerLow)
	c.queueWrite(func(c *Chip) uint16 { return uint16(c.pointer) }, op)
}

func zeroPageRMW(c *Chip, op rmwOp) {
	c.queueRead(readPCIncrement, setPointerLow)
	zeroPagePointerRMW(c, op)
}

func zeroPagePointerRMW(c *Chip, op rmwOp) {
	addr := func(c *Chip) uint16 { return uint16(c.pointer) }
	c.queueRead(readPointer, setData)
	c.queueDummyWrite(addr)
	c.queueModifyWrite(addr, op)
}

// --- Zero page indexed (+X or +Y) --------------------------------------------

func zeroPageIndex(c *Chip, index func(c *Chip) uint8) {
	c.queueRead(readPCIncrement, setPointerLow)
	c.queue = append(c.queue, func(c *Chip) {
		readPointer(c) // dummy read of unindexed zero page address
		c.pointer += index(c)
	})
}

func zeroPageXRead(c *Chip, op readOp) {
	zeroPageIndex(c, func(c *Chip) uint8 { return c.X })
	c.queueRead(readPointer, finishRead(op))
}

func zeroPageYRead(c *Chip, op readOp) {
	zeroPageIndex(c, func(c *Chip) uint8 { return c.Y })
	c.queueRead(readPointer, finishRead(op))
}

func zeroPageXWrite(c *Chip, op writeOp) {
	zeroPageIndex(c, func(c *Chip) uint8 { return c.X })
	c.queueWrite(func(c *Chip) uint16 { return uint16(c.pointer) }, op)
}

func zeroPageYWrite(c *Chip, op writeOp) {
	zeroPageIndex(c, func(c *Chip) uint8 { return c.Y })
	c.queueWrite(func(c *Chip) uint16 { return uint16(c.pointer) }, op)
}

func zeroPageXRMW(c *Chip, op rmwOp) {
	zeroPageIndex(c, func(c *Chip) uint8 { return c.X })
	zeroPagePointerRMW(c, op)
}

// --- Absolute ------------------------------------------------------------

func absoluteRead(c *Chip, op readOp) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queueRead(readPCIncrement, setAddressHigh)
	c.queueRead(readAddress, finishRead(op))
}

func absoluteWrite(c *Chip, op writeOp) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queueRead(readPCIncrement, setAddressHigh)
	c.queueWrite(writeAddress, op)
}

func absoluteRMW(c *Chip, op rmwOp) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queueRead(readPCIncrement, setAddressHigh)
	c.queueRead(readAddress, setData)
	c.queueDummyWrite(writeAddress)
	c.queueModifyWrite(writeAddress, op)
}

// --- Absolute indexed (+X or +Y) ---------------------------------------------

// resolveIndexed computes both the page-correct and the "wrong page"
// (speculative, unindexed-carry) address real hardware computes for
// absolute,X/Y and (d),Y addressing, and reports whether a page was
// actually crossed.
func resolveIndexed(base uint16, index uint8) (wrong, correct uint16, crossed bool) {
	correct = base + uint16(index)
	wrongLow := uint8(base) + index
	wrong = base&0xFF00 | uint16(wrongLow)
	crossed = wrong&0xFF00 != correct&0xFF00
	return
}

// absoluteIndexedRead enqueues the index-then-fetch steps for a Read-kind
// instruction: the dummy fixup read only happens when the page was crossed,
// matching real hardware's cycle-saving fast path.
func absoluteIndexedRead(c *Chip, index func(c *Chip) uint8, op readOp) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queue = append(c.queue, func(c *Chip) {
		high := readPCIncrement(c)
		base := uint16(high)<<8 | uint16(uint8(c.address))
		wrong, correct, crossed := resolveIndexed(base, index(c))
		c.address = correct
		if crossed {
			c.queueDummyRead(func(c *Chip) uint8 { return c.bus.Read(wrong) })
		}
		c.queueRead(readAddress, finishRead(op))
	})
}

// absoluteIndexedFixed enqueues the index-then-fetch steps for Write/RMW
// kind instructions, which always spend the fixup cycle regardless of
// whether a page was actually crossed.
func absoluteIndexedFixed(c *Chip, index func(c *Chip) uint8, after func(c *Chip)) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queue = append(c.queue, func(c *Chip) {
		high := readPCIncrement(c)
		base := uint16(high)<<8 | uint16(uint8(c.address))
		wrong, correct, _ := resolveIndexed(base, index(c))
		c.address = correct
		c.queueDummyRead(func(c *Chip) uint8 { return c.bus.Read(wrong) })
		after(c)
	})
}

func absoluteXRead(c *Chip, op readOp) {
	absoluteIndexedRead(c, func(c *Chip) uint8 { return c.X }, op)
}

func absoluteYRead(c *Chip, op readOp) {
	absoluteIndexedRead(c, func(c *Chip) uint8 { return c.Y }, op)
}

func absoluteXWrite(c *Chip, op writeOp) {
	absoluteIndexedFixed(c, func(c *Chip) uint8 { return c.X }, func(c *Chip) {
		c.queueWrite(writeAddress, op)
	})
}

func absoluteYWrite(c *Chip, op writeOp) {
	absoluteIndexedFixed(c, func(c *Chip) uint8 { return c.Y }, func(c *Chip) {
		c.queueWrite(writeAddress, op)
	})
}

func absoluteXRMW(c *Chip, op rmwOp) {
	absoluteIndexedFixed(c, func(c *Chip) uint8 { return c.X }, func(c *Chip) {
		c.queueRead(readAddress, setData)
		c.queueDummyWrite(writeAddress)
		c.queueModifyWrite(writeAddress, op)
	})
}

func absoluteYRMW(c *Chip, op rmwOp) {
	absoluteIndexedFixed(c, func(c *Chip) uint8 { return c.Y }, func(c *Chip) {
		c.queueRead(readAddress, setData)
		c.queueDummyWrite(writeAddress)
		c.queueModifyWrite(writeAddress, op)
	})
}

// --- Indexed indirect, (d,X) --------------------------------------------

// indirectXResolve fetches the pointer byte, wastes a cycle adding X to it
// with zero-page wraparound, then fetches the two-byte target address also
// out of zero page (itself wrapping, never reading into page 1).
func indirectXResolve(c *Chip) {
	c.queueRead(readPCIncrement, setPointerLow)
	c.queue = append(c.queue, func(c *Chip) {
		readPointer(c)
		c.pointer += c.X
	})
	c.queueRead(readPointerIncrement, setAddressLow)
	c.queueRead(readPointer, setAddressHigh)
}

func indirectXRead(c *Chip, op readOp) {
	indirectXResolve(c)
	c.queueRead(readAddress, finishRead(op))
}

func indirectXWrite(c *Chip, op writeOp) {
	indirectXResolve(c)
	c.queueWrite(writeAddress, op)
}

func indirectXRMW(c *Chip, op rmwOp) {
	indirectXResolve(c)
	c.queueRead(readAddress, setData)
	c.queueDummyWrite(writeAddress)
	c.queueModifyWrite(writeAddress, op)
}

// --- Indirect indexed, (d),Y -------------------------------------------

func indirectYRead(c *Chip, op readOp) {
	c.queueRead(readPCIncrement, setPointerLow)
	c.queueRead(readPointerIncrement, setAddressLow)
	c.queue = append(c.queue, func(c *Chip) {
		high := readPointer(c)
		base := uint16(high)<<8 | uint16(uint8(c.address))
		wrong, correct, crossed := resolveIndexed(base, c.Y)
		c.address = correct
		if crossed {
			c.queueDummyRead(func(c *Chip) uint8 { return c.bus.Read(wrong) })
		}
		c.queueRead(readAddress, finishRead(op))
	})
}

func indirectYFixed(c *Chip, after func(c *Chip)) {
	c.queueRead(readPCIncrement, setPointerLow)
	c.queueRead(readPointerIncrement, setAddressLow)
	c.queue = append(c.queue, func(c *Chip) {
		high := readPointer(c)
		base := uint16(high)<<8 | uint16(uint8(c.address))
		wrong, correct, _ := resolveIndexed(base, c.Y)
		c.address = correct
		c.queueDummyRead(func(c *Chip) uint8 { return c.bus.Read(wrong) })
		after(c)
	})
}

func indirectYWrite(c *Chip, op writeOp) {
	indirectYFixed(c, func(c *Chip) {
		c.queueWrite(writeAddress, op)
	})
}

func indirectYRMW(c *Chip, op rmwOp) {
	indirectYFixed(c, func(c *Chip) {
		c.queueRead(readAddress, setData)
		c.queueDummyWrite(writeAddress)
		c.queueModifyWrite(writeAddress, op)
	})
}

// --- Control flow: JMP / JSR / RTS / RTI / BRK -----------------------------

func jmpAbsolute(c *Chip) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queueRead(readPCIncrement, func(c *Chip, v uint8) {
		setAddressHigh(c, v)
		c.PC = c.address
	})
}

// jmpIndirect reproduces the infamous page-wrap bug: if the pointer is at
// $xxFF, the high byte is fetched from $xx00 rather than ($xx+1)00.
func jmpIndirect(c *Chip) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queueRead(readPCIncrement, setAddressHigh)
	c.queueRead(readAddress, setPointerLow)
	c.queue = append(c.queue, func(c *Chip) {
		hiAddr := c.address&0xFF00 | uint16(uint8(c.address)+1)
		hi := c.bus.Read(hiAddr)
		c.PC = uint16(hi)<<8 | uint16(c.pointer)
	})
}

func jsr(c *Chip) {
	c.queueRead(readPCIncrement, setAddressLow)
	c.queueDummyRead(popStackPeek)
	c.queuePush(func(c *Chip) uint8 { return uint8(c.PC >> 8) })
	c.queuePush(func(c *Chip) uint8 { return uint8(c.PC) })
	c.queueRead(readPCIncrement, func(c *Chip, v uint8) {
		setAddressHigh(c, v)
		c.PC = c.address
	})
}

func rts(c *Chip) {
	c.queueDummyRead(readPC)
	c.queueDummyRead(popStackPeek)
	c.queuePop(setAddressLow)
	c.queuePop(func(c *Chip, v uint8) {
		setAddressHigh(c, v)
		c.PC = c.address
	})
	c.queueDummyRead(func(c *Chip) uint8 {
		v := readPC(c)
		c.PC++
		return v
	})
}

func rti(c *Chip) {
	c.queueDummyRead(readPC)
	c.queueDummyRead(popStackPeek)
	c.queuePop(func(c *Chip, v uint8) {
		c.P = v&^FlagBreak | FlagUnused
	})
	c.queuePop(setAddressLow)
	c.queuePop(func(c *Chip, v uint8) {
		setAddressHigh(c, v)
		c.PC = c.address
	})
}

func brk(c *Chip) {
	c.queueInterrupt(IRQVector, true)
}

// --- Stack instructions: PHA / PHP / PLA / PLP -----------------------------

func pha(c *Chip) {
	c.queueDummyRead(readPC)
	c.queuePush(opSTA)
}

func php(c *Chip) {
	c.queueDummyRead(readPC)
	c.queuePush(func(c *Chip) uint8 { return c.P | FlagUnused | FlagBreak })
}

func pla(c *Chip) {
	c.queueDummyRead(readPC)
	c.queueDummyRead(popStackPeek)
	c.queuePop(func(c *Chip, v uint8) {
		c.A = v
		c.zeroCheck(v)
		c.negativeCheck(v)
	})
}

func plp(c *Chip) {
	c.queueDummyRead(readPC)
	c.queueDummyRead(popStackPeek)
	c.queuePop(func(c *Chip, v uint8) {
		c.P = v&^FlagBreak | FlagUnused
	})
}

// --- Relative branch -------------------------------------------------------

// branch enqueues the variable-length branch sequence: a mandatory operand
// fetch, then (only if taken) a dummy PC read while the offset is added, then
// (only if that addition crossed a page) one further dummy read at the
// not-yet-fixed-up PC.
func branch(c *Chip, test branchTest) {
	c.queueRead(readPCIncrement, func(c *Chip, v uint8) {
		c.operand = v
		if !test(c) {
			return
		}
		c.queue = append(c.queue, func(c *Chip) {
			readPC(c) // dummy read while the offset is added to PCL
			offset := int8(c.operand)
			base := c.PC
			target := uint16(int32(base) + int32(offset))
			if base&0xFF00 != target&0xFF00 {
				c.queue = append(c.queue, func(c *Chip) {
					c.bus.Read(base&0xFF00 | uint16(uint8(target)))
					c.PC = target
				})
			} else {
				c.PC = target
			}
		})
	})
}
