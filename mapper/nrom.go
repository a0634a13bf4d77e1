package mapper

import "github.com/cryowatt/nes2a03/memory"

// NROM is iNES mapper 0: no banking at all. PRG-ROM is either one 16KB bank
// mirrored across the whole $8000-$FFFF window or one 32KB bank filling it
// exactly; PRG-RAM (if present) sits at $6000-$7FFF; CHR is a single fixed
// 8KB bank, backed by CHR-RAM when the cartridge carries none of its own.
type NROM struct {
	prgROM memory.Bank
	prgRAM memory.Bank
	chr    memory.Bank
}

// NewNROM builds an NROM mapper from raw PRG/CHR ROM data. prgRAMBanks is
// the header's 8KB PRG-RAM bank count; 0 is treated as 1 for compatibility
// with the common convention of leaving it unset even though battery SRAM is
// present.
func NewNROM(prgROM, chrROM []uint8, prgRAMBanks uint8) *NROM {
	if prgRAMBanks == 0 {
		prgRAMBanks = 1
	}
	m := &NROM{
		prgROM: memory.NewROM(prgROM, 0x8000),
		prgRAM: memory.NewRAM(int(prgRAMBanks) * 0x2000),
	}
	if len(chrROM) == 0 {
		m.chr = memory.NewRAM(0x2000)
	} else {
		m.chr = memory.NewROM(chrROM, 0x2000)
	}
	return m
}

// CPURead implements Mapper. $6000-$7FFF is PRG-RAM, $8000-$FFFF is PRG-ROM
// (mirrored per memory.NewROM if the cart only supplied 16KB); everything
// below $6000 is cartridge-space the mapper doesn't decode and reads as 0;
// bus passes that 0 through unchanged (open-bus values are not modeled).
func (m *NROM) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.prgROM.Read(addr - 0x8000)
	case addr >= 0x6000:
		return m.prgRAM.Read(addr - 0x6000)
	default:
		return 0
	}
}

// CPUWrite implements Mapper. Writes into the PRG-ROM range are silently
// dropped by memory.Bank's ROM implementation, matching real mask ROM.
func (m *NROM) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		m.prgROM.Write(addr-0x8000, val)
	case addr >= 0x6000:
		m.prgRAM.Write(addr-0x6000, val)
	}
}

// CHRRead implements Mapper.
func (m *NROM) CHRRead(addr uint16) uint8 { return m.chr.Read(addr) }

// CHRWrite implements Mapper.
func (m *NROM) CHRWrite(addr uint16, val uint8) { m.chr.Write(addr, val) }

// PowerOn implements Mapper. PRG-ROM/CHR-ROM are immutable so PowerOn only
// touches PRG-RAM and, when present, CHR-RAM.
func (m *NROM) PowerOn() {
	m.prgRAM.PowerOn()
	m.chr.PowerOn()
}
