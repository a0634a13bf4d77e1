// Package mapper implements cartridge mapper boards: the address-decode
// logic between the CPU's $4020-$FFFF window (and the PPU's $0000-$1FFF CHR
// window) and whatever PRG/CHR ROM or RAM banks a cartridge physically
// carries.
package mapper

import "fmt"

// Mapper is the contract the bus depends on for cartridge-space accesses.
// CPU and PPU address spaces are kept as separate methods (rather than one
// memory.Bank each) because several real mappers key off which bus the
// access came from to choose a different bank.
type Mapper interface {
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, val uint8)
	CHRRead(addr uint16) uint8
	CHRWrite(addr uint16, val uint8)
	// PowerOn resets any banking/latch state to its power-on default. PRG/CHR
	// ROM contents never change; PRG-RAM, if battery-backed, is left alone by
	// callers that want to preserve it and cleared by callers that don't.
	PowerOn()
}

// New picks the Mapper implementation for a header's mapper number. Only
// mapper 0 (NROM) is implemented; every other mapper number is a configuration
// error a caller should reject at load time rather than silently mis-map.
func New(number uint16, prgROM, chrROM []uint8, prgRAMBanks uint8) (Mapper, error) {
	switch number {
	case 0:
		return NewNROM(prgROM, chrROM, prgRAMBanks), nil
	default:
		return nil, UnsupportedMapperError{Number: number}
	}
}

// UnsupportedMapperError is returned by New for a mapper number this package
// doesn't implement.
type UnsupportedMapperError struct {
	Number uint16
}

func (e UnsupportedMapperError) Error() string {
	return fmt.Sprintf("mapper: unsupported mapper number %d", e.Number)
}
