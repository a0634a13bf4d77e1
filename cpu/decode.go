package cpu

// opcodeEntry describes one byte of the instruction set: enough to both run
// it (enqueue) and print it (mnemonic/mode/length for the trace/disassemble
// packages).
type opcodeEntry struct {
	mnemonic string
	mode     string
	length   uint8
	illegal  bool
	enqueue  func(c *Chip)
}

func rd(mn, mode string, length uint8, addr func(c *Chip, op readOp), op readOp) opcodeEntry {
	return opcodeEntry{mnemonic: mn, mode: mode, length: length, enqueue: func(c *Chip) { addr(c, op) }}
}

func wr(mn, mode string, length uint8, addr func(c *Chip, op writeOp), op writeOp) opcodeEntry {
	return opcodeEntry{mnemonic: mn, mode: mode, length: length, enqueue: func(c *Chip) { addr(c, op) }}
}

func rmwEntry(mn, mode string, length uint8, addr func(c *Chip, op rmwOp), op rmwOp) opcodeEntry {
	return opcodeEntry{mnemonic: mn, mode: mode, length: length, enqueue: func(c *Chip) { addr(c, op) }}
}

func imp(mn string, op func(c *Chip)) opcodeEntry {
	return opcodeEntry{mnemonic: mn, mode: "imp", length: 1, enqueue: func(c *Chip) { implied(c, op) }}
}

func acc(mn string, op func(c *Chip)) opcodeEntry {
	return opcodeEntry{mnemonic: mn, mode: "acc", length: 1, enqueue: func(c *Chip) { accumulator(c, op) }}
}

func br(mn string, test branchTest) opcodeEntry {
	return opcodeEntry{mnemonic: mn, mode: "rel", length: 2, enqueue: func(c *Chip) { branch(c, test) }}
}

func ctrl(mn, mode string, length uint8, enqueue func(c *Chip)) opcodeEntry {
	return opcodeEntry{mnemonic: mn, mode: mode, length: length, enqueue: enqueue}
}

func hlt() opcodeEntry {
	return opcodeEntry{mnemonic: "HLT", mode: "imp", length: 1, illegal: true}
}

func illegal(e opcodeEntry) opcodeEntry {
	e.illegal = true
	return e
}

// OpcodeInfo reports the decode table's static metadata for a byte --
// mnemonic, addressing mode (in Snapshot's short form), instruction
// length in bytes, and whether it's an undocumented opcode -- without
// requiring a Chip to decode it against. Used by the disassemble package for
// static listings. HLT opcodes report length 1 since they never advance PC
// again on real hardware.
func OpcodeInfo(opcode uint8) (mnemonic, mode string, length uint8, illegalOp bool) {
	e := opcodeTable[opcode]
	length = e.length
	if length == 0 {
		length = 1
	}
	return e.mnemonic, e.mode, length, e.illegal
}

// opcodeTable is indexed directly by opcode byte. Every one of the 256
// entries is populated: the handful of true "kill the chip" opcodes get
// hlt(), which leaves enqueue nil and is treated by fetchAndDecode as a
// halt condition rather than a decode error.
var opcodeTable = [256]opcodeEntry{
	0x00: ctrl("BRK", "imp", 1, brk),
	0x01: rd("ORA", "inx", 2, indirectXRead, opORA),
	0x02: hlt(),
	0x03: illegal(rmwEntry("SLO", "inx", 2, indirectXRMW, opSLO)),
	0x04: illegal(rd("NOP", "zp", 2, zeroPageRead, opDiscard)),
	0x05: rd("ORA", "zp", 2, zeroPageRead, opORA),
	0x06: rmwEntry("ASL", "zp", 2, zeroPageRMW, opASL),
	0x07: illegal(rmwEntry("SLO", "zp", 2, zeroPageRMW, opSLO)),
	0x08: ctrl("PHP", "imp", 1, php),
	0x09: rd("ORA", "imm", 2, immediateRead, opORA),
	0x0A: acc("ASL", opASLAcc),
	0x0B: illegal(rd("ANC", "imm", 2, immediateRead, opANC)),
	0x0C: illegal(rd("NOP", "abs", 3, absoluteRead, opDiscard)),
	0x0D: rd("ORA", "abs", 3, absoluteRead, opORA),
	0x0E: rmwEntry("ASL", "abs", 3, absoluteRMW, opASL),
	0x0F: illegal(rmwEntry("SLO", "abs", 3, absoluteRMW, opSLO)),

	0x10: br("BPL", testBPL),
	0x11: rd("ORA", "iny", 2, indirectYRead, opORA),
	0x12: hlt(),
	0x13: illegal(rmwEntry("SLO", "iny", 2, indirectYRMW, opSLO)),
	0x14: illegal(rd("NOP", "zpx", 2, zeroPageXRead, opDiscard)),
	0x15: rd("ORA", "zpx", 2, zeroPageXRead, opORA),
	0x16: rmwEntry("ASL", "zpx", 2, zeroPageXRMW, opASL),
	0x17: illegal(rmwEntry("SLO", "zpx", 2, zeroPageXRMW, opSLO)),
	0x18: imp("CLC", opCLC),
	0x19: rd("ORA", "aby", 3, absoluteYRead, opORA),
	0x1A: illegal(imp("NOP", opNOP)),
	0x1B: illegal(rmwEntry("SLO", "aby", 3, absoluteYRMW, opSLO)),
	0x1C: illegal(rd("NOP", "abx", 3, absoluteXRead, opDiscard)),
	0x1D: rd("ORA", "abx", 3, absoluteXRead, opORA),
	0x1E: rmwEntry("ASL", "abx", 3, absoluteXRMW, opASL),
	0x1F: illegal(rmwEntry("SLO", "abx", 3, absoluteXRMW, opSLO)),

	0x20: ctrl("JSR", "abs", 3, jsr),
	0x21: rd("AND", "inx", 2, indirectXRead, opAND),
	0x22: hlt(),
	0x23: illegal(rmwEntry("RLA", "inx", 2, indirectXRMW, opRLA)),
	0x24: rd("BIT", "zp", 2, zeroPageRead, opBIT),
	0x25: rd("AND", "zp", 2, zeroPageRead, opAND),
	0x26: rmwEntry("ROL", "zp", 2, zeroPageRMW, opROL),
	0x27: illegal(rmwEntry("RLA", "zp", 2, zeroPageRMW, opRLA)),
	0x28: ctrl("PLP", "imp", 1, plp),
	0x29: rd("AND", "imm", 2, immediateRead, opAND),
	0x2A: acc("ROL", opROLAcc),
	0x2B: illegal(rd("ANC", "imm", 2, immediateRead, opANC)),
	0x2C: rd("BIT", "abs", 3, absoluteRead, opBIT),
	0x2D: rd("AND", "abs", 3, absoluteRead, opAND),
	0x2E: rmwEntry("ROL", "abs", 3, absoluteRMW, opROL),
	0x2F: illegal(rmwEntry("RLA", "abs", 3, absoluteRMW, opRLA)),

	0x30: br("BMI", testBMI),
	0x31: rd("AND", "iny", 2, indirectYRead, opAND),
	0x32: hlt(),
	0x33: illegal(rmwEntry("RLA", "iny", 2, indirectYRMW, opRLA)),
	0x34: illegal(rd("NOP", "zpx", 2, zeroPageXRead, opDiscard)),
	0x35: rd("AND", "zpx", 2, zeroPageXRead, opAND),
	0x36: rmwEntry("ROL", "zpx", 2, zeroPageXRMW, opROL),
	0x37: illegal(rmwEntry("RLA", "zpx", 2, zeroPageXRMW, opRLA)),
	0x38: imp("SEC", opSEC),
	0x39: rd("AND", "aby", 3, absoluteYRead, opAND),
	0x3A: illegal(imp("NOP", opNOP)),
	0x3B: illegal(rmwEntry("RLA", "aby", 3, absoluteYRMW, opRLA)),
	0x3C: illegal(rd("NOP", "abx", 3, absoluteXRead, opDiscard)),
	0x3D: rd("AND", "abx", 3, absoluteXRead, opAND),
	0x3E: rmwEntry("ROL", "abx", 3, absoluteXRMW, opROL),
	0x3F: illegal(rmwEntry("RLA", "abx", 3, absoluteXRMW, opRLA)),

	0x40: ctrl("RTI", "imp", 1, rti),
	0x41: rd("EOR", "inx", 2, indirectXRead, opEOR),
	0x42: hlt(),
	0x43: illegal(rmwEntry("SRE", "inx", 2, indirectXRMW, opSRE)),
	0x44: illegal(rd("NOP", "zp", 2, zeroPageRead, opDiscard)),
	0x45: rd("EOR", "zp", 2, zeroPageRead, opEOR),
	0x46: rmwEntry("LSR", "zp", 2, zeroPageRMW, opLSR),
	0x47: illegal(rmwEntry("SRE", "zp", 2, zeroPageRMW, opSRE)),
	0x48: ctrl("PHA", "imp", 1, pha),
	0x49: rd("EOR", "imm", 2, immediateRead, opEOR),
	0x4A: acc("LSR", opLSRAcc),
	0x4B: illegal(rd("ALR", "imm", 2, immediateRead, opALR)),
	0x4C: ctrl("JMP", "abs", 3, jmpAbsolute),
	0x4D: rd("EOR", "abs", 3, absoluteRead, opEOR),
	0x4E: rmwEntry("LSR", "abs", 3, absoluteRMW, opLSR),
	0x4F: illegal(rmwEntry("SRE", "abs", 3, absoluteRMW, opSRE)),

	0x50: br("BVC", testBVC),
	0x51: rd("EOR", "iny", 2, indirectYRead, opEOR),
	0x52: hlt(),
	0x53: illegal(rmwEntry("SRE", "iny", 2, indirectYRMW, opSRE)),
	0x54: illegal(rd("NOP", "zpx", 2, zeroPageXRead, opDiscard)),
	0x55: rd("EOR", "zpx", 2, zeroPageXRead, opEOR),
	0x56: rmwEntry("LSR", "zpx", 2, zeroPageXRMW, opLSR),
	0x57: illegal(rmwEntry("SRE", "zpx", 2, zeroPageXRMW, opSRE)),
	0x58: imp("CLI", opCLI),
	0x59: rd("EOR", "aby", 3, absoluteYRead, opEOR),
	0x5A: illegal(imp("NOP", opNOP)),
	0x5B: illegal(rmwEntry("SRE", "aby", 3, absoluteYRMW, opSRE)),
	0x5C: illegal(rd("NOP", "abx", 3, absoluteXRead, opDiscard)),
	0x5D: rd("EOR", "abx", 3, absoluteXRead, opEOR),
	0x5E: rmwEntry("LSR", "abx", 3, absoluteXRMW, opLSR),
	0x5F: illegal(rmwEntry("SRE", "abx", 3, absoluteXRMW, opSRE)),

	0x60: ctrl("RTS", "imp", 1, rts),
	0x61: rd("ADC", "inx", 2, indirectXRead, opADC),
	0x62: hlt(),
	0x63: illegal(rmwEntry("RRA", "inx", 2, indirectXRMW, opRRA)),
	0x64: illegal(rd("NOP", "zp", 2, zeroPageRead, opDiscard)),
	0x65: rd("ADC", "zp", 2, zeroPageRead, opADC),
	0x66: rmwEntry("ROR", "zp", 2, zeroPageRMW, opROR),
	0x67: illegal(rmwEntry("RRA", "zp", 2, zeroPageRMW, opRRA)),
	0x68: ctrl("PLA", "imp", 1, pla),
	0x69: rd("ADC", "imm", 2, immediateRead, opADC),
	0x6A: acc("ROR", opRORAcc),
	0x6B: illegal(rd("ARR", "imm", 2, immediateRead, opARR)),
	0x6C: ctrl("JMP", "ind", 3, jmpIndirect),
	0x6D: rd("ADC", "abs", 3, absoluteRead, opADC),
	0x6E: rmwEntry("ROR", "abs", 3, absoluteRMW, opROR),
	0x6F: illegal(rmwEntry("RRA", "abs", 3, absoluteRMW, opRRA)),

	0x70: br("BVS", testBVS),
	0x71: rd("ADC", "iny", 2, indirectYRead, opADC),
	0x72: hlt(),
	0x73: illegal(rmwEntry("RRA", "iny", 2, indirectYRMW, opRRA)),
	0x74: illegal(rd("NOP", "zpx", 2, zeroPageXRead, opDiscard)),
	0x75: rd("ADC", "zpx", 2, zeroPageXRead, opADC),
	0x76: rmwEntry("ROR", "zpx", 2, zeroPageXRMW, opROR),
	0x77: illegal(rmwEntry("RRA", "zpx", 2, zeroPageXRMW, opRRA)),
	0x78: imp("SEI", opSEI),
	0x79: rd("ADC", "aby", 3, absoluteYRead, opADC),
	0x7A: illegal(imp("NOP", opNOP)),
	0x7B: illegal(rmwEntry("RRA", "aby", 3, absoluteYRMW, opRRA)),
	0x7C: illegal(rd("NOP", "abx", 3, absoluteXRead, opDiscard)),
	0x7D: rd("ADC", "abx", 3, absoluteXRead, opADC),
	0x7E: rmwEntry("ROR", "abx", 3, absoluteXRMW, opROR),
	0x7F: illegal(rmwEntry("RRA", "abx", 3, absoluteXRMW, opRRA)),

	0x80: illegal(rd("NOP", "imm", 2, immediateRead, opDiscard)),
	0x81: wr("STA", "inx", 2, indirectXWrite, opSTA),
	0x82: illegal(rd("NOP", "imm", 2, immediateRead, opDiscard)),
	0x83: illegal(wr("SAX", "inx", 2, indirectXWrite, opSAX)),
	0x84: wr("STY", "zp", 2, zeroPageWrite, opSTY),
	0x85: wr("STA", "zp", 2, zeroPageWrite, opSTA),
	0x86: wr("STX", "zp", 2, zeroPageWrite, opSTX),
	0x87: illegal(wr("SAX", "zp", 2, zeroPageWrite, opSAX)),
	0x88: imp("DEY", opDEY),
	0x89: illegal(rd("NOP", "imm", 2, immediateRead, opDiscard)),
	0x8A: imp("TXA", opTXA),
	0x8B: illegal(rd("XAA", "imm", 2, immediateRead, opLAX)),
	0x8C: wr("STY", "abs", 3, absoluteWrite, opSTY),
	0x8D: wr("STA", "abs", 3, absoluteWrite, opSTA),
	0x8E: wr("STX", "abs", 3, absoluteWrite, opSTX),
	0x8F: illegal(wr("SAX", "abs", 3, absoluteWrite, opSAX)),

	0x90: br("BCC", testBCC),
	0x91: wr("STA", "iny", 2, indirectYWrite, opSTA),
	0x92: hlt(),
	0x93: illegal(wr("AHX", "iny", 2, indirectYWrite, opAHX)),
	0x94: wr("STY", "zpx", 2, zeroPageXWrite, opSTY),
	0x95: wr("STA", "zpx", 2, zeroPageXWrite, opSTA),
	0x96: wr("STX", "zpy", 2, zeroPageYWrite, opSTX),
	0x97: illegal(wr("SAX", "zpy", 2, zeroPageYWrite, opSAX)),
	0x98: imp("TYA", opTYA),
	0x99: wr("STA", "aby", 3, absoluteYWrite, opSTA),
	0x9A: imp("TXS", opTXS),
	0x9B: illegal(wr("TAS", "aby", 3, absoluteYWrite, opTAS)),
	0x9C: illegal(wr("SHY", "abx", 3, absoluteXWrite, opSHY)),
	0x9D: wr("STA", "abx", 3, absoluteXWrite, opSTA),
	0x9E: illegal(wr("SHX", "aby", 3, absoluteYWrite, opSHX)),
	0x9F: illegal(wr("AHX", "aby", 3, absoluteYWrite, opAHX)),

	0xA0: rd("LDY", "imm", 2, immediateRead, opLDY),
	0xA1: rd("LDA", "inx", 2, indirectXRead, opLDA),
	0xA2: rd("LDX", "imm", 2, immediateRead, opLDX),
	0xA3: illegal(rd("LAX", "inx", 2, indirectXRead, opLAX)),
	0xA4: rd("LDY", "zp", 2, zeroPageRead, opLDY),
	0xA5: rd("LDA", "zp", 2, zeroPageRead, opLDA),
	0xA6: rd("LDX", "zp", 2, zeroPageRead, opLDX),
	0xA7: illegal(rd("LAX", "zp", 2, zeroPageRead, opLAX)),
	0xA8: imp("TAY", opTAY),
	0xA9: rd("LDA", "imm", 2, immediateRead, opLDA),
	0xAA: imp("TAX", opTAX),
	0xAB: illegal(rd("LAX", "imm", 2, immediateRead, opLAX)),
	0xAC: rd("LDY", "abs", 3, absoluteRead, opLDY),
	0xAD: rd("LDA", "abs", 3, absoluteRead, opLDA),
	0xAE: rd("LDX", "abs", 3, absoluteRead, opLDX),
	0xAF: illegal(rd("LAX", "abs", 3, absoluteRead, opLAX)),

	0xB0: br("BCS", testBCS),
	0xB1: rd("LDA", "iny", 2, indirectYRead, opLDA),
	0xB2: hlt(),
	0xB3: illegal(rd("LAX", "iny", 2, indirectYRead, opLAX)),
	0xB4: rd("LDY", "zpx", 2, zeroPageXRead, opLDY),
	0xB5: rd("LDA", "zpx", 2, zeroPageXRead, opLDA),
	0xB6: rd("LDX", "zpy", 2, zeroPageYRead, opLDX),
	0xB7: illegal(rd("LAX", "zpy", 2, zeroPageYRead, opLAX)),
	0xB8: imp("CLV", opCLV),
	0xB9: rd("LDA", "aby", 3, absoluteYRead, opLDA),
	0xBA: imp("TSX", opTSX),
	0xBB: illegal(rd("LAS", "aby", 3, absoluteYRead, opLAS)),
	0xBC: rd("LDY", "abx", 3, absoluteXRead, opLDY),
	0xBD: rd("LDA", "abx", 3, absoluteXRead, opLDA),
	0xBE: rd("LDX", "aby", 3, absoluteYRead, opLDX),
	0xBF: illegal(rd("LAX", "aby", 3, absoluteYRead, opLAX)),

	0xC0: rd("CPY", "imm", 2, immediateRead, opCPY),
	0xC1: rd("CMP", "inx", 2, indirectXRead, opCMP),
	0xC2: illegal(rd("NOP", "imm", 2, immediateRead, opDiscard)),
	0xC3: illegal(rmwEntry("DCP", "inx", 2, indirectXRMW, opDCP)),
	0xC4: rd("CPY", "zp", 2, zeroPageRead, opCPY),
	0xC5: rd("CMP", "zp", 2, zeroPageRead, opCMP),
	0xC6: rmwEntry("DEC", "zp", 2, zeroPageRMW, opDEC),
	0xC7: illegal(rmwEntry("DCP", "zp", 2, zeroPageRMW, opDCP)),
	0xC8: imp("INY", opINY),
	0xC9: rd("CMP", "imm", 2, immediateRead, opCMP),
	0xCA: imp("DEX", opDEX),
	0xCB: illegal(rd("AXS", "imm", 2, immediateRead, opAXS)),
	0xCC: rd("CPY", "abs", 3, absoluteRead, opCPY),
	0xCD: rd("CMP", "abs", 3, absoluteRead, opCMP),
	0xCE: rmwEntry("DEC", "abs", 3, absoluteRMW, opDEC),
	0xCF: illegal(rmwEntry("DCP", "abs", 3, absoluteRMW, opDCP)),

	0xD0: br("BNE", testBNE),
	0xD1: rd("CMP", "iny", 2, indirectYRead, opCMP),
	0xD2: hlt(),
	0xD3: illegal(rmwEntry("DCP", "iny", 2, indirectYRMW, opDCP)),
	0xD4: illegal(rd("NOP", "zpx", 2, zeroPageXRead, opDiscard)),
	0xD5: rd("CMP", "zpx", 2, zeroPageXRead, opCMP),
	0xD6: rmwEntry("DEC", "zpx", 2, zeroPageXRMW, opDEC),
	0xD7: illegal(rmwEntry("DCP", "zpx", 2, zeroPageXRMW, opDCP)),
	0xD8: imp("CLD", opCLD),
	0xD9: rd("CMP", "aby", 3, absoluteYRead, opCMP),
	0xDA: illegal(imp("NOP", opNOP)),
	0xDB: illegal(rmwEntry("DCP", "aby", 3, absoluteYRMW, opDCP)),
	0xDC: illegal(rd("NOP", "abx", 3, absoluteXRead, opDiscard)),
	0xDD: rd("CMP", "abx", 3, absoluteXRead, opCMP),
	0xDE: rmwEntry("DEC", "abx", 3, absoluteXRMW, opDEC),
	0xDF: illegal(rmwEntry("DCP", "abx", 3, absoluteXRMW, opDCP)),

	0xE0: rd("CPX", "imm", 2, immediateRead, opCPX),
	0xE1: rd("SBC", "inx", 2, indirectXRead, opSBC),
	0xE2: illegal(rd("NOP", "imm", 2, immediateRead, opDiscard)),
	0xE3: illegal(rmwEntry("ISC", "inx", 2, indirectXRMW, opISC)),
	0xE4: rd("CPX", "zp", 2, zeroPageRead, opCPX),
	0xE5: rd("SBC", "zp", 2, zeroPageRead, opSBC),
	0xE6: rmwEntry("INC", "zp", 2, zeroPageRMW, opINC),
	0xE7: illegal(rmwEntry("ISC", "zp", 2, zeroPageRMW, opISC)),
	0xE8: imp("INX", opINX),
	0xE9: rd("SBC", "imm", 2, immediateRead, opSBC),
	0xEA: imp("NOP", opNOP),
	0xEB: illegal(rd("SBC", "imm", 2, immediateRead, opSBC)),
	0xEC: rd("CPX", "abs", 3, absoluteRead, opCPX),
	0xED: rd("SBC", "abs", 3, absoluteRead, opSBC),
	0xEE: rmwEntry("INC", "abs", 3, absoluteRMW, opINC),
	0xEF: illegal(rmwEntry("ISC", "abs", 3, absoluteRMW, opISC)),

	0xF0: br("BEQ", testBEQ),
	0xF1: rd("SBC", "iny", 2, indirectYRead, opSBC),
	0xF2: hlt(),
	0xF3: illegal(rmwEntry("ISC", "iny", 2, indirectYRMW, opISC)),
	0xF4: illegal(rd("NOP", "zpx", 2, zeroPageXRead, opDiscard)),
	0xF5: rd("SBC", "zpx", 2, zeroPageXRead, opSBC),
	0xF6: rmwEntry("INC", "zpx", 2, zeroPageXRMW, opINC),
	0xF7: illegal(rmwEntry("ISC", "zpx", 2, zeroPageXRMW, opISC)),
	0xF8: imp("SED", opSED),
	0xF9: rd("SBC", "aby", 3, absoluteYRead, opSBC),
	0xFA: illegal(imp("NOP", opNOP)),
	0xFB: illegal(rmwEntry("ISC", "aby", 3, absoluteYRMW, opISC)),
	0xFC: illegal(rd("NOP", "abx", 3, absoluteXRead, opDiscard)),
	0xFD: rd("SBC", "abx", 3, absoluteXRead, opSBC),
	0xFE: rmwEntry("INC", "abx", 3, absoluteXRMW, opINC),
	0xFF: illegal(rmwEntry("ISC", "abx", 3, absoluteXRMW, opISC)),
}
