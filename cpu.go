// cpu.go - Intel 8080 CPU interpreter

/*
invaders - an Intel 8080 Space Invaders arcade emulation core

(c) 2026 gocade contributors
https://github.com/gocade/invaders

License: GPLv3 or later
*/

/*
cpu.go implements the 8080 instruction set this board's ROM relies on:
full register/flag semantics, wrapping 8/16-bit arithmetic, the
documented opcode aliases (multiple NOP/JMP/CALL/RET encodings collapse
onto one handler each), and the single-slot event mailbox the Machine
drains after every Step. Auxiliary carry is not tracked: the ROM this
core targets never depends on it, matching spec Non-goals.
*/

package invaders

import "log"

// Flags byte bit assignments. Bits 1, 3, 4, 5 are unused and left
// undefined, matching the original hardware and the reference
// implementation this core is ported from.
const (
	FlagCarry  byte = 1 << 0
	FlagParity byte = 1 << 2
	FlagZero   byte = 1 << 6
	FlagSign   byte = 1 << 7
)

// InterruptStatus is the CPU's two-state interrupt-enable machine:
// Enabled (initial, and restored by Reset) or Disabled. DI/EI toggle
// it; it is never changed by accepting an interrupt.
type InterruptStatus int

const (
	InterruptEnabled InterruptStatus = iota
	InterruptDisabled
)

// CPU holds the full state of one Intel 8080: seven general registers,
// PC, SP, the flags byte, the interrupt-enable state, and at most one
// pending CPUEvent. It owns its Memory outright.
type CPU struct {
	Memory *Memory

	interruptStatus InterruptStatus
	event           *CPUEvent
	flags           byte

	pc uint16
	sp uint16

	a, b, c, d, e, h, l byte
}

// NewCPU constructs a CPU with ROM loaded from program (at most
// RomSize bytes; shorter images are right-padded with zero) and all
// registers, flags, PC, and SP cleared. Interrupts start enabled.
func NewCPU(program []byte) *CPU {
	return &CPU{
		Memory:          NewMemory(program),
		interruptStatus: InterruptEnabled,
	}
}

// Reset zeroes RAM and every register/flag/PC/SP, re-enables
// interrupts, and drops any pending event. ROM is preserved.
func (c *CPU) Reset() {
	c.Memory.ResetRAM()
	c.interruptStatus = InterruptEnabled
	c.event = nil
	c.flags = 0
	c.pc = 0
	c.sp = 0
	c.a, c.b, c.c, c.d, c.e, c.h, c.l = 0, 0, 0, 0, 0, 0, 0
}

// Interrupt executes an implicit RST n (n in [0,7]) if interrupts are
// enabled; otherwise it is a no-op. It never changes the
// interrupt-enable flag itself.
func (c *CPU) Interrupt(n byte) {
	if c.interruptStatus == InterruptEnabled {
		c.rst(n)
	}
}

// TakeEvent returns and clears the pending CPU event, if any.
func (c *CPU) TakeEvent() *CPUEvent {
	ev := c.event
	c.event = nil
	return ev
}

// PortIn satisfies a pending PortRead event by loading val into A.
func (c *CPU) PortIn(val byte) {
	c.a = val
}

// Step fetches the opcode at PC, advances PC past the full
// instruction, executes it, and returns the reference cycle count the
// host's frame pacer attributes to it. At most one CPUEvent is left
// pending; the caller must consume it via TakeEvent before the next
// Step.
func (c *CPU) Step() int {
	opcode := c.readPC()

	switch opcode {
	// --- Misc/control ---
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38: // NOP
		return 1
	case 0x76: // HLT
		c.event = &CPUEvent{Kind: CPUEventHalt}
		return 1
	case 0xD3: // OUT d8
		port := c.readPC()
		c.event = &CPUEvent{Kind: CPUEventPortWrite, Port: port, Value: c.a}
		return 3
	case 0xDB: // IN d8
		port := c.readPC()
		c.event = &CPUEvent{Kind: CPUEventPortRead, Port: port}
		return 3
	case 0xF3: // DI
		c.interruptStatus = InterruptDisabled
		return 1
	case 0xFB: // EI
		c.interruptStatus = InterruptEnabled
		return 1

	// --- Jumps/calls ---
	case 0xC0:
		return c.retIfNot(FlagZero) // RNZ
	case 0xD0:
		return c.retIfNot(FlagCarry) // RNC
	case 0xE0:
		return c.retIfNot(FlagParity) // RPO
	case 0xF0:
		return c.retIfNot(FlagSign) // RP
	case 0xC2:
		return c.jmpIfNot(FlagZero) // JNZ a16
	case 0xD2:
		return c.jmpIfNot(FlagCarry) // JNC a16
	case 0xE2:
		return c.jmpIfNot(FlagParity) // JPO a16
	case 0xF2:
		return c.jmpIfNot(FlagSign) // JP a16
	case 0xC3, 0xCB: // JMP a16
		c.pc = c.readPC16()
		return 3
	case 0xC4:
		return c.callIfNot(FlagZero) // CNZ a16
	case 0xD4:
		return c.callIfNot(FlagCarry) // CNC a16
	case 0xE4:
		return c.callIfNot(FlagParity) // CPO a16
	case 0xF4:
		return c.callIfNot(FlagSign) // CP a16
	case 0xC7:
		c.rst(0)
		return 3
	case 0xCF:
		c.rst(1)
		return 3
	case 0xD7:
		c.rst(2)
		return 3
	case 0xDF:
		c.rst(3)
		return 3
	case 0xE7:
		c.rst(4)
		return 3
	case 0xEF:
		c.rst(5)
		return 3
	case 0xF7:
		c.rst(6)
		return 3
	case 0xFF:
		c.rst(7)
		return 3
	case 0xC8:
		return c.retIf(FlagZero) // RZ
	case 0xD8:
		return c.retIf(FlagCarry) // RC
	case 0xE8:
		return c.retIf(FlagParity) // RPE
	case 0xF8:
		return c.retIf(FlagSign) // RM
	case 0xC9, 0xD9: // RET
		return c.ret()
	case 0xE9: // PCHL
		c.pc = ConcatU16(c.h, c.l)
		return 1
	case 0xCA:
		return c.jmpIf(FlagZero) // JZ a16
	case 0xDA:
		return c.jmpIf(FlagCarry) // JC a16
	case 0xEA:
		return c.jmpIf(FlagParity) // JPE a16
	case 0xFA:
		return c.jmpIf(FlagSign) // JM a16
	case 0xCC:
		return c.callIf(FlagZero) // CZ a16
	case 0xDC:
		return c.callIf(FlagCarry) // CC a16
	case 0xEC:
		return c.callIf(FlagParity) // CPE a16
	case 0xFC:
		return c.callIf(FlagSign) // CM a16
	case 0xCD, 0xDD, 0xED, 0xFD: // CALL a16
		adr := c.readPC16()
		return c.call(adr)

	// --- 8-bit load/store/move ---
	case 0x12: // STAX D
		c.Memory.Write(c.de(), c.a)
		return 2
	case 0x02: // STAX B
		c.Memory.Write(c.bc(), c.a)
		return 2
	case 0x32: // STA a16
		adr := c.readPC16()
		c.Memory.Write(adr, c.a)
		return 4
	case 0x06:
		c.b = c.readPC()
		return 2 // MVI B,d8
	case 0x0E:
		c.c = c.readPC()
		return 2 // MVI C,d8
	case 0x16:
		c.d = c.readPC()
		return 2 // MVI D,d8
	case 0x1E:
		c.e = c.readPC()
		return 2 // MVI E,d8
	case 0x26:
		c.h = c.readPC()
		return 2 // MVI H,d8
	case 0x2E:
		c.l = c.readPC()
		return 2 // MVI L,d8
	case 0x36: // MVI M,d8
		c.Memory.Write(c.hl(), c.readPC())
		return 3
	case 0x3E:
		c.a = c.readPC()
		return 2 // MVI A,d8
	case 0x0A: // LDAX B
		c.a = c.Memory.Read(c.bc())
		return 2
	case 0x1A: // LDAX D
		c.a = c.Memory.Read(c.de())
		return 2
	case 0x3A: // LDA a16
		adr := c.readPC16()
		c.a = c.Memory.Read(adr)
		return 4

	// --- MOV r,r' / r,M / M,r ---
	case 0x40:
		return mov(c.b, &c.b)
	case 0x41:
		return mov(c.c, &c.b)
	case 0x42:
		return mov(c.d, &c.b)
	case 0x43:
		return mov(c.e, &c.b)
	case 0x44:
		return mov(c.h, &c.b)
	case 0x45:
		return mov(c.l, &c.b)
	case 0x46:
		return c.movFromM(&c.b)
	case 0x47:
		return mov(c.a, &c.b)
	case 0x48:
		return mov(c.b, &c.c)
	case 0x49:
		return mov(c.c, &c.c)
	case 0x4A:
		return mov(c.d, &c.c)
	case 0x4B:
		return mov(c.e, &c.c)
	case 0x4C:
		return mov(c.h, &c.c)
	case 0x4D:
		return mov(c.l, &c.c)
	case 0x4E:
		return c.movFromM(&c.c)
	case 0x4F:
		return mov(c.a, &c.c)
	case 0x50:
		return mov(c.b, &c.d)
	case 0x51:
		return mov(c.c, &c.d)
	case 0x52:
		return mov(c.d, &c.d)
	case 0x53:
		return mov(c.e, &c.d)
	case 0x54:
		return mov(c.h, &c.d)
	case 0x55:
		return mov(c.l, &c.d)
	case 0x56:
		return c.movFromM(&c.d)
	case 0x57:
		return mov(c.a, &c.d)
	case 0x58:
		return mov(c.b, &c.e)
	case 0x59:
		return mov(c.c, &c.e)
	case 0x5A:
		return mov(c.d, &c.e)
	case 0x5B:
		return mov(c.e, &c.e)
	case 0x5C:
		return mov(c.h, &c.e)
	case 0x5D:
		return mov(c.l, &c.e)
	case 0x5E:
		return c.movFromM(&c.e)
	case 0x5F:
		return mov(c.a, &c.e)
	case 0x60:
		return mov(c.b, &c.h)
	case 0x61:
		return mov(c.c, &c.h)
	case 0x62:
		return mov(c.d, &c.h)
	case 0x63:
		return mov(c.e, &c.h)
	case 0x64:
		return mov(c.h, &c.h)
	case 0x65:
		return mov(c.l, &c.h)
	case 0x66:
		return c.movFromM(&c.h)
	case 0x67:
		return mov(c.a, &c.h)
	case 0x68:
		return mov(c.b, &c.l)
	case 0x69:
		return mov(c.c, &c.l)
	case 0x6A:
		return mov(c.d, &c.l)
	case 0x6B:
		return mov(c.e, &c.l)
	case 0x6C:
		return mov(c.h, &c.l)
	case 0x6D:
		return mov(c.l, &c.l)
	case 0x6E:
		return c.movFromM(&c.l)
	case 0x6F:
		return mov(c.a, &c.l)
	case 0x70:
		return c.movToM(c.b)
	case 0x71:
		return c.movToM(c.c)
	case 0x72:
		return c.movToM(c.d)
	case 0x73:
		return c.movToM(c.e)
	case 0x74:
		return c.movToM(c.h)
	case 0x75:
		return c.movToM(c.l)
	case 0x77:
		return c.movToM(c.a)
	case 0x78:
		return mov(c.b, &c.a)
	case 0x79:
		return mov(c.c, &c.a)
	case 0x7A:
		return mov(c.d, &c.a)
	case 0x7B:
		return mov(c.e, &c.a)
	case 0x7C:
		return mov(c.h, &c.a)
	case 0x7D:
		return mov(c.l, &c.a)
	case 0x7E:
		return c.movFromM(&c.a)
	case 0x7F:
		return mov(c.a, &c.a)

	// --- 16-bit load/store/move ---
	case 0x01: // LXI B,d16
		c.c = c.readPC()
		c.b = c.readPC()
		return 3
	case 0x11: // LXI D,d16
		c.e = c.readPC()
		c.d = c.readPC()
		return 3
	case 0x21: // LXI H,d16
		c.l = c.readPC()
		c.h = c.readPC()
		return 3
	case 0x31: // LXI SP,d16
		c.sp = c.readPC16()
		return 3
	case 0x22: // SHLD a16
		adr := c.readPC16()
		c.Memory.Write(adr, c.l)
		c.Memory.Write(adr+1, c.h)
		return 5
	case 0x2A: // LHLD a16
		adr := c.readPC16()
		c.l = c.Memory.Read(adr)
		c.h = c.Memory.Read(adr + 1)
		return 5
	case 0xC1: // POP B
		c.c = c.stackPop()
		c.b = c.stackPop()
		return 3
	case 0xD1: // POP D
		c.e = c.stackPop()
		c.d = c.stackPop()
		return 3
	case 0xE1: // POP H
		c.l = c.stackPop()
		c.h = c.stackPop()
		return 3
	case 0xF1: // POP PSW
		c.flags = c.stackPop()
		c.a = c.stackPop()
		return 3
	case 0xE3: // XTHL
		lo := c.Memory.Read(c.sp)
		hi := c.Memory.Read(c.sp + 1)
		c.Memory.Write(c.sp, c.l)
		c.Memory.Write(c.sp+1, c.h)
		c.l, c.h = lo, hi
		return 5
	case 0xC5: // PUSH B
		c.stackPush(c.b)
		c.stackPush(c.c)
		return 3
	case 0xD5: // PUSH D
		c.stackPush(c.d)
		c.stackPush(c.e)
		return 3
	case 0xE5: // PUSH H
		c.stackPush(c.h)
		c.stackPush(c.l)
		return 3
	case 0xF5: // PUSH PSW
		c.stackPush(c.a)
		c.stackPush(c.flags)
		return 3
	case 0xF9: // SPHL
		c.sp = c.hl()
		return 1
	case 0xEB: // XCHG
		c.h, c.d = c.d, c.h
		c.l, c.e = c.e, c.l
		return 1

	// --- 8-bit arithmetic/logical ---
	case 0x04:
		c.b = c.inr(c.b)
		return 1
	case 0x0C:
		c.c = c.inr(c.c)
		return 1
	case 0x14:
		c.d = c.inr(c.d)
		return 1
	case 0x1C:
		c.e = c.inr(c.e)
		return 1
	case 0x24:
		c.h = c.inr(c.h)
		return 1
	case 0x2C:
		c.l = c.inr(c.l)
		return 1
	case 0x34: // INR M
		c.Memory.Write(c.hl(), c.inr(c.Memory.Read(c.hl())))
		return 3
	case 0x3C:
		c.a = c.inr(c.a)
		return 1
	case 0x05:
		c.b = c.dcr(c.b)
		return 1
	case 0x0D:
		c.c = c.dcr(c.c)
		return 1
	case 0x15:
		c.d = c.dcr(c.d)
		return 1
	case 0x1D:
		c.e = c.dcr(c.e)
		return 1
	case 0x25:
		c.h = c.dcr(c.h)
		return 1
	case 0x2D:
		c.l = c.dcr(c.l)
		return 1
	case 0x35: // DCR M
		c.Memory.Write(c.hl(), c.dcr(c.Memory.Read(c.hl())))
		return 3
	case 0x3D:
		c.a = c.dcr(c.a)
		return 1
	case 0x07: // RLC
		c.setFlag(FlagCarry, c.a&(1<<7))
		c.a = c.a<<1 | c.a>>7
		return 1
	case 0x0F: // RRC
		c.setFlag(FlagCarry, c.a&1)
		c.a = c.a>>1 | c.a<<7
		return 1
	case 0x17: // RAL
		carryOut := c.a & (1 << 7)
		c.a = c.a<<1 | c.flag(FlagCarry)
		c.setFlag(FlagCarry, carryOut)
		return 1
	case 0x1F: // RAR
		carryOut := c.a & 1
		c.a = c.a>>1 | c.flag(FlagCarry)<<7
		c.setFlag(FlagCarry, carryOut)
		return 1
	case 0x27: // DAA
		c.daa()
		return 1
	case 0x37: // STC
		c.setFlag(FlagCarry, 1)
		return 1
	case 0x2F: // CMA
		c.a = ^c.a
		return 1
	case 0x3F: // CMC
		c.flags ^= FlagCarry
		return 1
	case 0x80:
		return c.addA(c.b)
	case 0x81:
		return c.addA(c.c)
	case 0x82:
		return c.addA(c.d)
	case 0x83:
		return c.addA(c.e)
	case 0x84:
		return c.addA(c.h)
	case 0x85:
		return c.addA(c.l)
	case 0x86: // ADD M
		c.addA(c.Memory.Read(c.hl()))
		return 2
	case 0x87:
		return c.addA(c.a)
	case 0x88:
		return c.addA(c.b + c.flag(FlagCarry))
	case 0x89:
		return c.addA(c.c + c.flag(FlagCarry))
	case 0x8A:
		return c.addA(c.d + c.flag(FlagCarry))
	case 0x8B:
		return c.addA(c.e + c.flag(FlagCarry))
	case 0x8C:
		return c.addA(c.h + c.flag(FlagCarry))
	case 0x8D:
		return c.addA(c.l + c.flag(FlagCarry))
	case 0x8E: // ADC M
		c.addA(c.Memory.Read(c.hl()) + c.flag(FlagCarry))
		return 2
	case 0x8F:
		return c.addA(c.a + c.flag(FlagCarry))
	case 0x90:
		return c.subA(c.b)
	case 0x91:
		return c.subA(c.c)
	case 0x92:
		return c.subA(c.d)
	case 0x93:
		return c.subA(c.e)
	case 0x94:
		return c.subA(c.h)
	case 0x95:
		return c.subA(c.l)
	case 0x96: // SUB M
		c.subA(c.Memory.Read(c.hl()))
		return 2
	case 0x97:
		return c.subA(c.a)
	case 0x98:
		return c.subA(c.b + c.flag(FlagCarry))
	case 0x99:
		return c.subA(c.c + c.flag(FlagCarry))
	case 0x9A:
		return c.subA(c.d + c.flag(FlagCarry))
	case 0x9B:
		return c.subA(c.e + c.flag(FlagCarry))
	case 0x9C:
		return c.subA(c.h + c.flag(FlagCarry))
	case 0x9D:
		return c.subA(c.l + c.flag(FlagCarry))
	case 0x9E: // SBB M
		c.subA(c.Memory.Read(c.hl()) + c.flag(FlagCarry))
		return 2
	case 0x9F:
		return c.subA(c.a + c.flag(FlagCarry))
	case 0xA0:
		return c.andA(c.b)
	case 0xA1:
		return c.andA(c.c)
	case 0xA2:
		return c.andA(c.d)
	case 0xA3:
		return c.andA(c.e)
	case 0xA4:
		return c.andA(c.h)
	case 0xA5:
		return c.andA(c.l)
	case 0xA6: // ANA M
		c.andA(c.Memory.Read(c.hl()))
		return 2
	case 0xA7:
		return c.andA(c.a)
	case 0xA8:
		return c.xorA(c.b)
	case 0xA9:
		return c.xorA(c.c)
	case 0xAA:
		return c.xorA(c.d)
	case 0xAB:
		return c.xorA(c.e)
	case 0xAC:
		return c.xorA(c.h)
	case 0xAD:
		return c.xorA(c.l)
	case 0xAE: // XRA M
		c.xorA(c.Memory.Read(c.hl()))
		return 2
	case 0xAF:
		return c.xorA(c.a)
	case 0xB0:
		return c.orA(c.b)
	case 0xB1:
		return c.orA(c.c)
	case 0xB2:
		return c.orA(c.d)
	case 0xB3:
		return c.orA(c.e)
	case 0xB4:
		return c.orA(c.h)
	case 0xB5:
		return c.orA(c.l)
	case 0xB6: // ORA M
		c.orA(c.Memory.Read(c.hl()))
		return 2
	case 0xB7:
		return c.orA(c.a)
	case 0xB8:
		return c.cmpA(c.b)
	case 0xB9:
		return c.cmpA(c.c)
	case 0xBA:
		return c.cmpA(c.d)
	case 0xBB:
		return c.cmpA(c.e)
	case 0xBC:
		return c.cmpA(c.h)
	case 0xBD:
		return c.cmpA(c.l)
	case 0xBE: // CMP M
		c.cmpA(c.Memory.Read(c.hl()))
		return 2
	case 0xBF:
		return c.cmpA(c.a)
	case 0xC6: // ADI d8
		c.addA(c.readPC())
		return 2
	case 0xD6: // SUI d8
		c.subA(c.readPC())
		return 2
	case 0xE6: // ANI d8
		c.andA(c.readPC())
		return 2
	case 0xF6: // ORI d8
		c.orA(c.readPC())
		return 2
	case 0xCE: // ACI d8
		c.addA(c.readPC() + c.flag(FlagCarry))
		return 2
	case 0xDE: // SBI d8
		c.subA(c.readPC() + c.flag(FlagCarry))
		return 2
	case 0xEE: // XRI d8
		c.xorA(c.readPC())
		return 2
	case 0xFE: // CPI d8
		c.cmpA(c.readPC())
		return 2

	// --- 16-bit arithmetic/logical ---
	case 0x03:
		inx(&c.b, &c.c)
		return 1 // INX B
	case 0x13:
		inx(&c.d, &c.e)
		return 1 // INX D
	case 0x23:
		inx(&c.h, &c.l)
		return 1 // INX H
	case 0x33: // INX SP
		c.sp++
		return 1
	case 0x09:
		return c.dad(c.b, c.c) // DAD B
	case 0x19:
		return c.dad(c.d, c.e) // DAD D
	case 0x29:
		return c.dad(c.h, c.l) // DAD H
	case 0x39:
		return c.dad(byte(c.sp>>8), byte(c.sp)) // DAD SP
	case 0x0B:
		dcx(&c.b, &c.c)
		return 1 // DCX B
	case 0x1B:
		dcx(&c.d, &c.e)
		return 1 // DCX D
	case 0x2B:
		dcx(&c.h, &c.l)
		return 1 // DCX H
	case 0x3B: // DCX SP
		c.sp--
		return 1

	default:
		log.Panicf("invaders: unreachable opcode 0x%02X at 0x%04X", opcode, c.pc-1)
		return 0
	}
}
