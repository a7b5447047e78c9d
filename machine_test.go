// machine_test.go - Tests for the arcade hardware shell

package invaders

import "testing"

func TestMachineInitialLatches(t *testing.T) {
	m := NewMachine(nil)
	if m.input1 != 0x01 {
		t.Errorf("input_1 = 0x%02X, want 0x01", m.input1)
	}
	if m.input2 != 0x00 {
		t.Errorf("input_2 = 0x%02X, want 0x00", m.input2)
	}
}

// TestShiftRegisterScenario reproduces spec.md §8 scenario 5:
// OUT 4,0xAB ; OUT 4,0xCD ; OUT 2,3 ; IN 3 -> A == 0x6D.
// (shift_hi:shift_lo = 0xCDAB, 0xCDAB >> (8-3) = 0x066D, & 0xFF = 0x6D)
func TestShiftRegisterScenario(t *testing.T) {
	program := []byte{
		0x3E, 0xAB, 0xD3, 0x04, // MVI A,0xAB ; OUT 4
		0x3E, 0xCD, 0xD3, 0x04, // MVI A,0xCD ; OUT 4
		0x3E, 0x03, 0xD3, 0x02, // MVI A,3    ; OUT 2
		0xDB, 0x03, // IN 3
	}
	m := NewMachine(program)
	for i := 0; i < 7; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		m.TakeEvent()
	}

	if got := m.cpu.a; got != 0x6D {
		t.Errorf("A after shift-register read = 0x%02X, want 0x6D", got)
	}
}

// TestSoundEdgeScenario reproduces spec.md §8 scenario 6:
// OUT 3,0x02 then OUT 3,0x00 emits PlaySound(Shoot) then
// StopSound(Shoot).
func TestSoundEdgeScenario(t *testing.T) {
	program := []byte{
		0x3E, 0x02, 0xD3, 0x03, // MVI A,0x02 ; OUT 3
		0x3E, 0x00, 0xD3, 0x03, // MVI A,0x00 ; OUT 3
	}
	m := NewMachine(program)

	m.Step() // MVI
	m.Step() // OUT 3,0x02
	ev := m.TakeEvent()
	if ev == nil || ev.Kind != MachineEventPlaySound || ev.Sound != SoundShoot {
		t.Fatalf("first event = %+v, want PlaySound(Shoot)", ev)
	}

	m.Step() // MVI
	m.Step() // OUT 3,0x00
	ev = m.TakeEvent()
	if ev == nil || ev.Kind != MachineEventStopSound || ev.Sound != SoundShoot {
		t.Fatalf("second event = %+v, want StopSound(Shoot)", ev)
	}
}

func TestInvalidPortsReturnRecoverableErrors(t *testing.T) {
	m := NewMachine([]byte{0xD3, 0x07}) // OUT 7 (unmapped)
	if _, err := m.Step(); err == nil {
		t.Fatal("expected InvalidWritePortError")
	} else if _, ok := err.(*InvalidWritePortError); !ok {
		t.Fatalf("error type = %T, want *InvalidWritePortError", err)
	}

	m2 := NewMachine([]byte{0xDB, 0x07}) // IN 7 (unmapped)
	if _, err := m2.Step(); err == nil {
		t.Fatal("expected InvalidReadPortError")
	} else if _, ok := err.(*InvalidReadPortError); !ok {
		t.Fatalf("error type = %T, want *InvalidReadPortError", err)
	}
}

func TestDebugPortEmitsEvent(t *testing.T) {
	m := NewMachine([]byte{0x3E, 0x07, 0xD3, 0x06}) // MVI A,7 ; OUT 6
	m.Step()
	m.Step()

	ev := m.TakeEvent()
	if ev == nil || ev.Kind != MachineEventDebug || ev.Value != 7 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestButtonPolarity(t *testing.T) {
	m := NewMachine(nil)

	m.ButtonPress(ButtonCoin)
	if m.input1&0x01 != 0 {
		t.Error("Coin press should clear bit 0 (active-low)")
	}
	m.ButtonRelease(ButtonCoin)
	if m.input1&0x01 == 0 {
		t.Error("Coin release should set bit 0 back")
	}

	m.ButtonPress(ButtonP1Shoot)
	if m.input1&0x10 == 0 {
		t.Error("P1Shoot press should set bit 4 (active-high)")
	}
	m.ButtonRelease(ButtonP1Shoot)
	if m.input1&0x10 != 0 {
		t.Error("P1Shoot release should clear bit 4")
	}

	m.ButtonPress(ButtonTilt)
	if m.input2&0x04 == 0 {
		t.Error("Tilt press should set input_2 bit 2")
	}
	m.ButtonPress(ButtonP2Right)
	if m.input2&0x40 == 0 {
		t.Error("P2Right press should set input_2 bit 6")
	}
	if m.input1 != 0x01 {
		t.Errorf("P2/Tilt presses must not touch input_1; got 0x%02X", m.input1)
	}
}

func TestVideoRAMLength(t *testing.T) {
	m := NewMachine(nil)
	if got := len(m.VideoRAM()); got != 7168 {
		t.Errorf("VideoRAM length = %d, want 7168", got)
	}
}

func TestResetPreservesMachineLatches(t *testing.T) {
	m := NewMachine(nil)
	m.ButtonPress(ButtonP1Start)
	m.writePort(2, 5)

	m.Reset()

	if m.input1&0x04 == 0 {
		t.Error("Reset cleared Machine latches; original hardware does not")
	}
	if m.shiftOffset != 5 {
		t.Error("Reset cleared shift_offset; original hardware does not")
	}
}

func TestHaltStopsExecutionStatus(t *testing.T) {
	m := NewMachine([]byte{0x76}) // HLT
	status, err := m.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.Halted {
		t.Error("expected Halted status after HLT")
	}
}
