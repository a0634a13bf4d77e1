package disassemble

import "testing"

type flatBank struct {
	data [65536]uint8
}

func (b *flatBank) Read(addr uint16) uint8     { return b.data[addr] }
func (b *flatBank) Write(addr uint16, v uint8) { b.data[addr] = v }
func (b *flatBank) PowerOn()                   {}

func TestStepImmediate(t *testing.T) {
	b := &flatBank{}
	b.data[0x8000] = 0xA9 // LDA #imm
	b.data[0x8001] = 0x42
	text, n := Step(0x8000, b)
	if text != "LDA #$42" {
		t.Errorf("text = %q, want %q", text, "LDA #$42")
	}
	if n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
}

func TestStepZeroPageAndIllegalMarker(t *testing.T) {
	b := &flatBank{}
	b.data[0x8000] = 0xA7 // LAX zp (illegal)
	b.data[0x8001] = 0x10
	text, n := Step(0x8000, b)
	if text != "*LAX $10" {
		t.Errorf("text = %q, want %q", text, "*LAX $10")
	}
	if n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
}

func TestStepRelativeResolvesTarget(t *testing.T) {
	b := &flatBank{}
	b.data[0x8000] = 0xD0 // BNE
	b.data[0x8001] = 0x05 // +5
	text, _ := Step(0x8000, b)
	if text != "BNE $8007" {
		t.Errorf("text = %q, want %q (pc+2+5)", text, "BNE $8007")
	}
}

func TestStepImpliedHasNoOperand(t *testing.T) {
	b := &flatBank{}
	b.data[0x8000] = 0xEA // NOP
	text, n := Step(0x8000, b)
	if text != "NOP" {
		t.Errorf("text = %q, want %q", text, "NOP")
	}
	if n != 1 {
		t.Errorf("length = %d, want 1", n)
	}
}

func TestListingAdvancesByInstructionLength(t *testing.T) {
	b := &flatBank{}
	b.data[0x8000] = 0xA9 // LDA #$11
	b.data[0x8001] = 0x11
	b.data[0x8002] = 0xEA // NOP

	lines := Listing(0x8000, 2, b)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "8000  LDA #$11" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "8002  NOP" {
		t.Errorf("line 1 = %q", lines[1])
	}
}
