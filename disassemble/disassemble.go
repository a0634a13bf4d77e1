// Package disassemble renders 6502/2A03 machine code as text without
// executing it, for use by tools (offline listings) that want a disassembly
// without driving a cpu.Chip. It shares its opcode metadata with
// cpu.Snapshot via cpu.OpcodeInfo so the two never disagree on a mnemonic.
package disassemble

import (
	"fmt"

	"github.com/cryowatt/nes2a03/cpu"
	"github.com/cryowatt/nes2a03/memory"
)

// Step disassembles the instruction at pc, returning its text form and the
// number of bytes (1-3) it occupies. It reads as many bytes past pc as the
// instruction's length needs (up to pc+2), so the caller must ensure those
// are valid addresses to read (mirrored/open-bus reads are fine, they just
// won't produce meaningful operand text).
func Step(pc uint16, bank memory.Bank) (string, int) {
	opcode := bank.Read(pc)
	mnemonic, mode, length, illegal := cpu.OpcodeInfo(opcode)
	if mnemonic == "" {
		mnemonic = "???"
	}

	var op1, op2 uint8
	if length >= 2 {
		op1 = bank.Read(pc + 1)
	}
	if length >= 3 {
		op2 = bank.Read(pc + 2)
	}

	star := ""
	if illegal {
		star = "*"
	}

	var operand string
	switch mode {
	case "imp":
		operand = ""
	case "acc":
		operand = "A"
	case "imm":
		operand = fmt.Sprintf("#$%02X", op1)
	case "zp":
		operand = fmt.Sprintf("$%02X", op1)
	case "zpx":
		operand = fmt.Sprintf("$%02X,X", op1)
	case "zpy":
		operand = fmt.Sprintf("$%02X,Y", op1)
	case "abs":
		operand = fmt.Sprintf("$%02X%02X", op2, op1)
	case "abx":
		operand = fmt.Sprintf("$%02X%02X,X", op2, op1)
	case "aby":
		operand = fmt.Sprintf("$%02X%02X,Y", op2, op1)
	case "ind":
		operand = fmt.Sprintf("($%02X%02X)", op2, op1)
	case "inx":
		operand = fmt.Sprintf("($%02X,X)", op1)
	case "iny":
		operand = fmt.Sprintf("($%02X),Y", op1)
	case "rel":
		target := uint16(int32(pc+2) + int32(int8(op1)))
		operand = fmt.Sprintf("$%04X", target)
	}

	text := star + mnemonic
	if operand != "" {
		text += " " + operand
	}
	return text, int(length)
}

// Listing disassembles count instructions starting at pc, one per line, in
// program order. It does not follow branches/jumps -- data embedded in code
// will be misrendered as instructions, the same caveat Step itself carries.
func Listing(pc uint16, count int, bank memory.Bank) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		text, n := Step(pc, bank)
		lines = append(lines, fmt.Sprintf("%04X  %s", pc, text))
		pc += uint16(n)
	}
	return lines
}
