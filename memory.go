// memory.go - 16 KiB ROM/RAM address space for the arcade board

/*
invaders - an Intel 8080 Space Invaders arcade emulation core

(c) 2026 gocade contributors
https://github.com/gocade/invaders

License: GPLv3 or later
*/

package invaders

import "log"

// Memory layout constants. The board decodes only enough address
// lines to distinguish ROM from RAM: ROM occupies the low 8 KiB and
// RAM the next 8 KiB, with every address at or above RomSize+RamSize
// mirroring back into RAM by partial decoding.
const (
	RomSize = 0x2000
	RamSize = 0x2000

	// VideoRAMStart and VideoRAMEnd bound the bit-packed 1-bpp
	// framebuffer inside RAM: addresses [0x2400, 0x4000).
	VideoRAMStart = 0x2400
	VideoRAMEnd   = RomSize + RamSize
)

// Memory is the CPU's 16-bit address space: an immutable ROM image
// backed by a writable RAM region that mirrors for any address at or
// above 0x4000. It is owned by a single CPU; there is no aliasing.
type Memory struct {
	rom [RomSize]byte
	ram [RamSize]byte
}

// NewMemory constructs a Memory from a ROM image of at most RomSize
// bytes. Shorter images are right-padded with zeros; RAM starts
// zeroed.
func NewMemory(program []byte) *Memory {
	m := &Memory{}
	copy(m.rom[:], program)
	return m
}

// Read returns the byte at addr, resolving ROM/RAM split and RAM
// mirroring.
func (m *Memory) Read(addr uint16) byte {
	if addr < RomSize {
		return m.rom[addr]
	}
	return m.ram[(int(addr)-RomSize)%RamSize]
}

// Write stores val at addr. Writing to a ROM address is a programmer
// error: the original hardware has no path for the CPU to write ROM,
// so a faithfully-ported program never attempts it.
func (m *Memory) Write(addr uint16, val byte) {
	if addr < RomSize {
		log.Panicf("invaders: cannot write to ROM at 0x%04X", addr)
	}
	m.ram[(int(addr)-RomSize)%RamSize] = val
}

// Range returns a read-only view of memory between lo (inclusive)
// and hi (exclusive). Both endpoints must lie on the same side of the
// ROM/RAM boundary; callers that cross it (or invert the range) have
// a bug.
func (m *Memory) Range(lo, hi uint16) []byte {
	if hi < lo {
		log.Panicf("invaders: memory range [0x%04X, 0x%04X) is inverted", lo, hi)
	}
	if lo < RomSize {
		if hi > RomSize {
			log.Panicf("invaders: memory range [0x%04X, 0x%04X) crosses the ROM/RAM boundary", lo, hi)
		}
		return m.rom[lo:hi]
	}
	start := (int(lo) - RomSize) % RamSize
	end := start + int(hi-lo)
	if end > RamSize {
		log.Panicf("invaders: memory range [0x%04X, 0x%04X) crosses the RAM mirror boundary", lo, hi)
	}
	return m.ram[start:end]
}

// ResetRAM zeroes RAM. ROM is untouched.
func (m *Memory) ResetRAM() {
	for i := range m.ram {
		m.ram[i] = 0
	}
}
