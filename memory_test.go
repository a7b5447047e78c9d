// memory_test.go - Tests for the 16 KiB ROM/RAM address space

package invaders

import "testing"

func TestMemoryReadROM(t *testing.T) {
	rom := make([]byte, 4)
	rom[0] = 0xAA
	rom[3] = 0xBB
	m := NewMemory(rom)

	if got := m.Read(0); got != 0xAA {
		t.Errorf("Read(0) = 0x%02X, want 0xAA", got)
	}
	if got := m.Read(3); got != 0xBB {
		t.Errorf("Read(3) = 0x%02X, want 0xBB", got)
	}
	if got := m.Read(4); got != 0 {
		t.Errorf("Read(4) = 0x%02X, want 0 (zero padding)", got)
	}
}

func TestMemoryWriteROMPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic writing to ROM")
		}
	}()
	m := NewMemory(nil)
	m.Write(0x1000, 0xFF)
}

func TestMemoryWriteReadRAM(t *testing.T) {
	m := NewMemory(nil)
	m.Write(0x2000, 0x42)
	if got := m.Read(0x2000); got != 0x42 {
		t.Errorf("Read(0x2000) = 0x%02X, want 0x42", got)
	}
}

// TestMemoryMirroring checks the invariant from spec.md §8: every
// address at or above 0x4000 mirrors RAM by (addr-0x2000) mod 0x2000.
func TestMemoryMirroring(t *testing.T) {
	m := NewMemory(nil)
	for a := 0x2000; a < 0x4000; a++ {
		m.Write(uint16(a), byte(a))
	}

	for a := 0x4000; a < 0x10000; a += 977 { // sample across the full range
		addr := uint16(a)
		mirrored := uint16(0x2000 + (int(addr)-0x2000)%0x2000)
		if got, want := m.Read(addr), m.Read(mirrored); got != want {
			t.Errorf("Read(0x%04X) = 0x%02X, want mirror of 0x%04X = 0x%02X", addr, got, mirrored, want)
		}
	}
}

func TestMemoryResetRAM(t *testing.T) {
	rom := []byte{0x11}
	m := NewMemory(rom)
	m.Write(0x2000, 0xFF)
	m.ResetRAM()
	if got := m.Read(0x2000); got != 0 {
		t.Errorf("Read(0x2000) after ResetRAM = 0x%02X, want 0", got)
	}
	if got := m.Read(0); got != 0x11 {
		t.Errorf("ROM byte changed after ResetRAM: got 0x%02X, want 0x11", got)
	}
}

func TestMemoryRangeVideoRAM(t *testing.T) {
	m := NewMemory(nil)
	view := m.Range(VideoRAMStart, VideoRAMEnd)
	if len(view) != 0x1C00 {
		t.Fatalf("video RAM range length = %d, want %d", len(view), 0x1C00)
	}
	m.Write(VideoRAMStart, 0x7E)
	if view[0] != 0x7E {
		t.Errorf("range view not reflecting underlying RAM write: got 0x%02X, want 0x7E", view[0])
	}
}

func TestMemoryRangeCrossingBoundaryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a range crossing the ROM/RAM boundary")
		}
	}()
	m := NewMemory(nil)
	m.Range(0x1000, 0x3000)
}
