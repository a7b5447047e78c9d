// machine.go - Arcade hardware shell wrapping the CPU

/*
invaders - an Intel 8080 Space Invaders arcade emulation core

(c) 2026 gocade contributors
https://github.com/gocade/invaders

License: GPLv3 or later
*/

/*
machine.go implements the arcade-specific peripherals the 8080 talks to
through OUT/IN: the 16-bit shift register (ports 2/4/3), the two input
latches (ports 1/2), sound-edge detection on ports 3/5, and the
watchdog debug port (6). It interprets the CPU's single pending event
each Step and may leave exactly one MachineEvent of its own pending for
the host.
*/

package invaders

// ExecutionStatus is the outcome of one Machine.Step call: either the
// CPU is still running (Cycles holds the reference cycle count for
// the frame pacer) or it executed HLT.
type ExecutionStatus struct {
	Halted bool
	Cycles int
}

// Machine owns a CPU and the arcade board wrapped around it: shift
// register, input latches, sound-edge detectors, and the pending
// host-facing event.
type Machine struct {
	cpu *CPU

	shiftLo     byte
	shiftHi     byte
	shiftOffset byte

	input1 byte
	input2 byte

	lastPort3 byte
	lastPort5 byte

	event *MachineEvent
}

// NewMachine constructs a Machine around a fresh CPU loaded with
// program. input_1 starts at 0x01 (the arcade wiring's always-1 idle
// line); input_2 starts at 0x00.
func NewMachine(program []byte) *Machine {
	return &Machine{
		cpu:    NewCPU(program),
		input1: 0x01,
		input2: 0x00,
	}
}

// Step advances the CPU by one instruction, interprets any resulting
// CPUEvent, and returns whether execution should continue. An error
// here means the ROM addressed a port the board doesn't wire up; it
// is recoverable (the host may log it and keep stepping), but usually
// means the ROM is corrupt or unsupported. The host must call
// TakeEvent before the next Step to drain whatever Machine event this
// call produced.
func (m *Machine) Step() (ExecutionStatus, error) {
	cycles := m.cpu.Step()

	if ev := m.cpu.TakeEvent(); ev != nil {
		switch ev.Kind {
		case CPUEventHalt:
			return ExecutionStatus{Halted: true}, nil
		case CPUEventPortWrite:
			if err := m.writePort(ev.Port, ev.Value); err != nil {
				return ExecutionStatus{Cycles: cycles}, err
			}
		case CPUEventPortRead:
			val, err := m.readPort(ev.Port)
			if err != nil {
				return ExecutionStatus{Cycles: cycles}, err
			}
			m.cpu.PortIn(val)
		}
	}

	return ExecutionStatus{Cycles: cycles}, nil
}

// Interrupt forwards to the CPU: an implicit RST n if interrupts are
// enabled, a no-op otherwise. The host calls this at the two
// scheduled frame points (interrupt(1) at mid-frame, interrupt(2) at
// VBlank).
func (m *Machine) Interrupt(n byte) {
	m.cpu.Interrupt(n)
}

// Reset forwards to the CPU. Machine-owned latches (shift register,
// input state, last-seen port values) are deliberately NOT cleared,
// matching the original arcade hardware's reset behavior.
func (m *Machine) Reset() {
	m.cpu.Reset()
}

// VideoRAM borrows the bit-packed 1-bpp framebuffer: 7168 bytes
// covering memory [0x2400, 0x4000). Its lifetime is bounded by the
// underlying Memory; callers must not retain it across a mutating
// Step.
func (m *Machine) VideoRAM() []byte {
	return m.cpu.Memory.Range(VideoRAMStart, VideoRAMEnd)
}

// TakeEvent returns and clears the pending Machine event, if any.
func (m *Machine) TakeEvent() *MachineEvent {
	ev := m.event
	m.event = nil
	return ev
}

// ButtonPress sets the button's latch bit per its polarity: Coin is
// active-low (press clears the bit), every other button is
// active-high (press sets it).
func (m *Machine) ButtonPress(b Button) {
	latch := m.latchFor(b)
	if b.activeLow() {
		*latch &^= b.mask()
	} else {
		*latch |= b.mask()
	}
}

// ButtonRelease is the inverse of ButtonPress.
func (m *Machine) ButtonRelease(b Button) {
	latch := m.latchFor(b)
	if b.activeLow() {
		*latch |= b.mask()
	} else {
		*latch &^= b.mask()
	}
}

func (m *Machine) latchFor(b Button) *byte {
	if b.onInput2() {
		return &m.input2
	}
	return &m.input1
}

// port3SoundBits and port5SoundBits map port bit positions to the Sound they
// gate, in the table order spec.md defines. When more than one bit
// changes in a single write, the last entry in this order wins —
// acceptable because real ROM writes never actually toggle more than
// one bit at a time.
var port3SoundBits = []struct {
	mask  byte
	sound Sound
}{
	{0x01, SoundUFO},
	{0x02, SoundShoot},
	{0x04, SoundPlayerDie},
	{0x08, SoundInvaderDie},
}

var port5SoundBits = []struct {
	mask  byte
	sound Sound
}{
	{0x01, SoundBomp1},
	{0x02, SoundBomp2},
	{0x04, SoundBomp3},
	{0x08, SoundBomp4},
	{0x10, SoundUFOExplode},
}

func (m *Machine) writePort(port, val byte) error {
	switch port {
	case 2:
		m.shiftOffset = val & 0x07
	case 3:
		m.detectSoundEdges(port3SoundBits, m.lastPort3, val)
		m.lastPort3 = val
	case 4:
		m.shiftLo = m.shiftHi
		m.shiftHi = val
	case 5:
		m.detectSoundEdges(port5SoundBits, m.lastPort5, val)
		m.lastPort5 = val
	case 6:
		m.event = &MachineEvent{Kind: MachineEventDebug, Value: val}
	default:
		return &InvalidWritePortError{Port: port}
	}
	return nil
}

func (m *Machine) detectSoundEdges(bits []struct {
	mask  byte
	sound Sound
}, last, val byte) {
	if val == last {
		return
	}
	for _, b := range bits {
		switch {
		case val&b.mask != 0 && last&b.mask == 0:
			m.event = &MachineEvent{Kind: MachineEventPlaySound, Sound: b.sound}
		case val&b.mask == 0 && last&b.mask != 0:
			m.event = &MachineEvent{Kind: MachineEventStopSound, Sound: b.sound}
		}
	}
}

func (m *Machine) readPort(port byte) (byte, error) {
	switch port {
	case 1:
		return m.input1, nil
	case 2:
		return m.input2, nil
	case 3:
		shiftVal := ConcatU16(m.shiftHi, m.shiftLo)
		return byte(shiftVal >> (8 - m.shiftOffset)), nil
	default:
		return 0, &InvalidReadPortError{Port: port}
	}
}
