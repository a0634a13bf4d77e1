package cpu

import "fmt"

// Snapshot captures everything a nestest-style trace line needs: the
// instruction about to execute and the register file as it stood right
// before that instruction's first cycle.
type Snapshot struct {
	PC                 uint16
	Opcode             uint8
	Operand1, Operand2 uint8
	Mnemonic           string
	Mode               string
	Length             uint8
	Illegal            bool
	A, X, Y, S, P      uint8
	Cycles             uint64
}

// Peek reads the upcoming instruction and current registers without
// advancing PC or the microcode queue, for use by a trace logger that wants
// to print a line per instruction rather than per bus cycle. Call it only
// when the queue is empty (i.e. right before the next Cycle() call would
// perform an opcode fetch) -- it re-reads PC/PC+1/PC+2 the same way
// fetchAndDecode is about to, so it shares fetchAndDecode's assumption that
// peeking 1-2 bytes past the opcode is side-effect free for program ROM.
func (c *Chip) Peek() Snapshot {
	opcode := c.bus.Read(c.PC)
	entry := opcodeTable[opcode]
	s := Snapshot{
		PC:       c.PC,
		Opcode:   opcode,
		Mnemonic: entry.mnemonic,
		Mode:     entry.mode,
		Length:   entry.length,
		Illegal:  entry.illegal,
		A:        c.A,
		X:        c.X,
		Y:        c.Y,
		S:        c.S,
		P:        c.P,
		Cycles:   c.cycles,
	}
	if entry.length == 0 {
		s.Length = 1 // Every instruction occupies at least its opcode byte.
	}
	if s.Length >= 2 {
		s.Operand1 = c.bus.Read(c.PC + 1)
	}
	if s.Length >= 3 {
		s.Operand2 = c.bus.Read(c.PC + 2)
	}
	return s
}

// Line renders s as a nestest/Nintendulator-style log line:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:0
func (s Snapshot) Line() string {
	bytes := fmt.Sprintf("%02X", s.Opcode)
	switch s.Length {
	case 2:
		bytes += fmt.Sprintf(" %02X", s.Operand1)
	case 3:
		bytes += fmt.Sprintf(" %02X %02X", s.Operand1, s.Operand2)
	}

	disasm := s.disassemble()
	star := ' '
	if s.Illegal {
		star = '*'
	}

	return fmt.Sprintf("%04X  %-8s %c%-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		s.PC, bytes, star, disasm, s.A, s.X, s.Y, s.P, s.S, s.Cycles)
}

// disassemble formats the operand the way nestest.log does per addressing
// mode; it does not resolve indirect/indexed effective addresses (that
// would require bus access beyond the operand bytes already peeked).
func (s Snapshot) disassemble() string {
	mn := s.Mnemonic
	if mn == "" {
		mn = "???"
	}
	switch s.Mode {
	case "imp":
		return mn
	case "acc":
		return mn + " A"
	case "imm":
		return fmt.Sprintf("%s #$%02X", mn, s.Operand1)
	case "zp":
		return fmt.Sprintf("%s $%02X", mn, s.Operand1)
	case "zpx":
		return fmt.Sprintf("%s $%02X,X", mn, s.Operand1)
	case "zpy":
		return fmt.Sprintf("%s $%02X,Y", mn, s.Operand1)
	case "abs":
		return fmt.Sprintf("%s $%02X%02X", mn, s.Operand2, s.Operand1)
	case "abx":
		return fmt.Sprintf("%s $%02X%02X,X", mn, s.Operand2, s.Operand1)
	case "aby":
		return fmt.Sprintf("%s $%02X%02X,Y", mn, s.Operand2, s.Operand1)
	case "ind":
		return fmt.Sprintf("%s ($%02X%02X)", mn, s.Operand2, s.Operand1)
	case "inx":
		return fmt.Sprintf("%s ($%02X,X)", mn, s.Operand1)
	case "iny":
		return fmt.Sprintf("%s ($%02X),Y", mn, s.Operand1)
	case "rel":
		target := uint16(int32(s.PC+2) + int32(int8(s.Operand1)))
		return fmt.Sprintf("%s $%04X", mn, target)
	default:
		return mn
	}
}
