// events.go - CPU and Machine event mailboxes

/*
invaders - an Intel 8080 Space Invaders arcade emulation core

(c) 2026 gocade contributors
https://github.com/gocade/invaders

License: GPLv3 or later
*/

package invaders

// CPUEventKind tags the single transient event a CPU.Step call may
// leave pending for the Machine to consume.
type CPUEventKind int

const (
	CPUEventHalt CPUEventKind = iota
	CPUEventPortWrite
	CPUEventPortRead
)

// CPUEvent is the CPU's single-slot mailbox entry. Only one of these
// may be pending at a time; CPU.TakeEvent clears it.
type CPUEvent struct {
	Kind  CPUEventKind
	Port  byte // valid for PortWrite and PortRead
	Value byte // valid for PortWrite only
}

// Sound identifies one of the arcade board's nine sound effects, each
// tied to a bit on port 3 or port 5.
type Sound int

const (
	SoundUFO Sound = iota
	SoundShoot
	SoundPlayerDie
	SoundInvaderDie
	SoundBomp1
	SoundBomp2
	SoundBomp3
	SoundBomp4
	SoundUFOExplode
)

func (s Sound) String() string {
	switch s {
	case SoundUFO:
		return "UFO"
	case SoundShoot:
		return "Shoot"
	case SoundPlayerDie:
		return "PlayerDie"
	case SoundInvaderDie:
		return "InvaderDie"
	case SoundBomp1:
		return "Bomp1"
	case SoundBomp2:
		return "Bomp2"
	case SoundBomp3:
		return "Bomp3"
	case SoundBomp4:
		return "Bomp4"
	case SoundUFOExplode:
		return "UFOExplode"
	default:
		return "Unknown"
	}
}

// MachineEventKind tags the single transient event a Machine.Step
// call may leave pending for the host.
type MachineEventKind int

const (
	MachineEventPlaySound MachineEventKind = iota
	MachineEventStopSound
	MachineEventDebug
)

// MachineEvent is the Machine's single-slot mailbox entry, produced
// while interpreting a CPUEvent. Only one may be pending per Step;
// the host must drain it with TakeEvent before the next Step.
type MachineEvent struct {
	Kind  MachineEventKind
	Sound Sound // valid for PlaySound and StopSound
	Value byte  // valid for Debug (watchdog port value)
}
