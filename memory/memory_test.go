package memory

import "testing"

func TestRAMMirrorsAboveItsSize(t *testing.T) {
	r := NewRAM(0x0800)
	r.Write(0x0000, 0x42)
	if got := r.Read(0x0800); got != 0x42 {
		t.Errorf("Read(0x0800) = %#02x, want 0x42 (wraps to same backing cell)", got)
	}
}

func TestRAMPowerOnRandomizesLength(t *testing.T) {
	r := NewRAM(0x0800)
	r.PowerOn()
	// Not much to assert about the actual contents since they're random, but
	// the bank must still behave correctly afterward.
	r.Write(0x0010, 0x99)
	if got := r.Read(0x0010); got != 0x99 {
		t.Errorf("Read(0x10) after PowerOn+Write = %#02x, want 0x99", got)
	}
}

func TestROMMirrorsShortDataToFillSize(t *testing.T) {
	data := make([]uint8, 0x4000) // 16KB
	data[0] = 0x11
	data[0x3FFF] = 0x22
	r := NewROM(data, 0x8000) // 32KB window
	if got := r.Read(0x0000); got != 0x11 {
		t.Errorf("Read(0) = %#02x, want 0x11", got)
	}
	if got := r.Read(0x4000); got != 0x11 {
		t.Errorf("Read(0x4000) = %#02x, want 0x11 (mirrored bank repeats)", got)
	}
	if got := r.Read(0x3FFF); got != 0x22 {
		t.Errorf("Read(0x3FFF) = %#02x, want 0x22", got)
	}
}

func TestROMWriteIsNoOp(t *testing.T) {
	data := make([]uint8, 0x2000)
	data[0] = 0x55
	r := NewROM(data, 0x2000)
	r.Write(0x0000, 0xFF)
	if got := r.Read(0x0000); got != 0x55 {
		t.Errorf("Read(0) after Write = %#02x, want 0x55 (ROM write ignored)", got)
	}
}

func TestROMPowerOnIsNoOp(t *testing.T) {
	data := []uint8{0xAB}
	r := NewROM(data, 0x0001)
	r.PowerOn()
	if got := r.Read(0x0000); got != 0xAB {
		t.Errorf("Read(0) after PowerOn = %#02x, want 0xAB", got)
	}
}
