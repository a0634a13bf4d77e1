package ines

import (
	"bytes"
	"testing"
)

// buildHeader assembles a 16 byte iNES header with the given flags and bank
// counts, leaving the remaining reserved bytes zeroed.
func buildHeader(prgBanks, chrBanks, flags6, flags7, prgRAMBanks, flags9 uint8) []byte {
	h := make([]byte, 16)
	copy(h, magic[:])
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	h[8] = prgRAMBanks
	h[9] = flags9
	return h
}

func TestLoadRejectsBadMagic(t *testing.T) {
	raw := buildHeader(1, 1, 0, 0, 0, 0)
	raw[0] = 'X'
	if _, err := Load(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected an error for bad magic, got nil")
	}
}

func TestLoadRejectsNES20(t *testing.T) {
	raw := buildHeader(1, 1, 0, 0x08, 0, 0)
	if _, err := Load(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected NES 2.0 image to be rejected")
	}
}

func TestLoadParsesMapperNumberAcrossBothNibbles(t *testing.T) {
	// Mapper 0x12: low nibble from flags6 bits 4-7, high nibble from flags7
	// bits 4-7.
	raw := buildHeader(1, 1, 0x20, 0x10, 0, 0)
	raw = append(raw, make([]byte, 16*1024)...)
	raw = append(raw, make([]byte, 8*1024)...)
	rom, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rom.Header.Mapper != 0x12 {
		t.Errorf("Mapper = %#x, want 0x12", rom.Header.Mapper)
	}
}

func TestLoadMirroringAndBatteryFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags6  uint8
		want    Mirroring
		battery bool
	}{
		{"horizontal", 0x00, MirrorHorizontal, false},
		{"vertical", 0x01, MirrorVertical, false},
		{"fourScreenOverridesVertical", 0x09, MirrorFourScreen, false},
		{"battery", 0x02, MirrorHorizontal, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := buildHeader(1, 0, tc.flags6, 0, 0, 0)
			raw = append(raw, make([]byte, 16*1024)...)
			rom, err := Load(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if rom.Header.Mirroring != tc.want {
				t.Errorf("Mirroring = %v, want %v", rom.Header.Mirroring, tc.want)
			}
			if rom.Header.Battery != tc.battery {
				t.Errorf("Battery = %v, want %v", rom.Header.Battery, tc.battery)
			}
		})
	}
}

func TestLoadTrainerIsReadWhenPresent(t *testing.T) {
	raw := buildHeader(1, 0, 0x04, 0, 0, 0)
	trainer := make([]byte, 512)
	trainer[0] = 0xAB
	prg := make([]byte, 16*1024)
	prg[0] = 0xCD
	raw = append(raw, trainer...)
	raw = append(raw, prg...)

	rom, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !rom.Header.HasTrainer {
		t.Fatal("HasTrainer = false, want true")
	}
	if len(rom.Trainer) != 512 || rom.Trainer[0] != 0xAB {
		t.Errorf("Trainer not read correctly: %v...", rom.Trainer[:1])
	}
	if rom.PRGROM[0] != 0xCD {
		t.Errorf("PRGROM[0] = %#02x, want 0xCD", rom.PRGROM[0])
	}
}

func TestLoadNoCHRROMLeavesEmptySlice(t *testing.T) {
	raw := buildHeader(1, 0, 0, 0, 0, 0)
	raw = append(raw, make([]byte, 16*1024)...)
	rom, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rom.CHRROM) != 0 {
		t.Errorf("CHRROM len = %d, want 0 (CHR-RAM cartridge)", len(rom.CHRROM))
	}
}

func TestLoadTVSystemFlag(t *testing.T) {
	raw := buildHeader(1, 0, 0, 0, 0, 0x01)
	raw = append(raw, make([]byte, 16*1024)...)
	rom, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rom.Header.TVSystem != TVSystemPAL {
		t.Errorf("TVSystem = %v, want TVSystemPAL", rom.Header.TVSystem)
	}
}

func TestLoadTruncatedPRGROMErrors(t *testing.T) {
	raw := buildHeader(2, 0, 0, 0, 0, 0) // claims 32KB PRG but supplies none
	if _, err := Load(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected an error for truncated PRG-ROM, got nil")
	}
}
