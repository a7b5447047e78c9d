// cpu_alu.go - Flag logic, arithmetic helpers, and stack/control-flow plumbing

/*
invaders - an Intel 8080 Space Invaders arcade emulation core

(c) 2026 gocade contributors
https://github.com/gocade/invaders

License: GPLv3 or later
*/

package invaders

// flag returns 1 if the given flag bit is set, else 0.
func (c *CPU) flag(f byte) byte {
	if c.flags&f != 0 {
		return 1
	}
	return 0
}

// setFlag sets or clears the given flag bit depending on whether
// value is nonzero.
func (c *CPU) setFlag(f byte, value byte) {
	if value != 0 {
		c.flags |= f
	} else {
		c.flags &^= f
	}
}

// setFlags derives Zero/Sign/Parity from val and sets Carry from the
// caller-supplied carry/borrow bit. INR/DCR also go through it,
// passing the current Carry back in so that Carry is preserved.
func (c *CPU) setFlags(val byte, carry byte) {
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagParity, boolByte(EvenParity(val)))
	c.setFlag(FlagZero, boolByte(val == 0))
	c.setFlag(FlagSign, val&(1<<7))
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// bc, de, hl form the big-endian register pairs. hl also stands in
// for the pseudo-register M.
func (c *CPU) bc() uint16 { return ConcatU16(c.b, c.c) }
func (c *CPU) de() uint16 { return ConcatU16(c.d, c.e) }
func (c *CPU) hl() uint16 { return ConcatU16(c.h, c.l) }

// readPC fetches the byte at PC and advances PC by one.
func (c *CPU) readPC() byte {
	val := c.Memory.Read(c.pc)
	c.pc++
	return val
}

// readPC16 fetches a little-endian 16-bit immediate (low byte first
// in the instruction stream) and advances PC by two.
func (c *CPU) readPC16() uint16 {
	val := ConcatU16(c.Memory.Read(c.pc+1), c.Memory.Read(c.pc))
	c.pc += 2
	return val
}

// stackPush decrements SP then writes val, so a 16-bit push (two
// stackPush calls, high byte first) leaves the low byte at the lower
// address.
func (c *CPU) stackPush(val byte) {
	c.sp--
	c.Memory.Write(c.sp, val)
}

func (c *CPU) stackPush16(val uint16) {
	c.stackPush(byte(val >> 8))
	c.stackPush(byte(val))
}

func (c *CPU) stackPop() byte {
	val := c.Memory.Read(c.sp)
	c.sp++
	return val
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop())
	hi := uint16(c.stackPop())
	return hi<<8 | lo
}

func (c *CPU) jmpIf(f byte) int {
	adr := c.readPC16()
	if c.flag(f) != 0 {
		c.pc = adr
	}
	return 3
}

func (c *CPU) jmpIfNot(f byte) int {
	adr := c.readPC16()
	if c.flag(f) == 0 {
		c.pc = adr
	}
	return 3
}

func (c *CPU) ret() int {
	c.pc = c.stackPop16()
	return 3
}

func (c *CPU) retIf(f byte) int {
	if c.flag(f) != 0 {
		return c.ret()
	}
	return 1
}

func (c *CPU) retIfNot(f byte) int {
	if c.flag(f) == 0 {
		return c.ret()
	}
	return 1
}

func (c *CPU) rst(code byte) {
	c.call(uint16(code) << 3)
}

func (c *CPU) call(adr uint16) int {
	c.stackPush16(c.pc)
	c.pc = adr
	return 5
}

func (c *CPU) callIf(f byte) int {
	adr := c.readPC16()
	if c.flag(f) != 0 {
		return c.call(adr)
	}
	return 3
}

func (c *CPU) callIfNot(f byte) int {
	adr := c.readPC16()
	if c.flag(f) == 0 {
		return c.call(adr)
	}
	return 3
}

// inr/dcr increment/decrement a byte, updating Zero/Sign/Parity but
// leaving Carry exactly as it was.
func (c *CPU) inr(val byte) byte {
	result := val + 1
	c.setFlags(result, c.flag(FlagCarry))
	return result
}

func (c *CPU) dcr(val byte) byte {
	result := val - 1
	c.setFlags(result, c.flag(FlagCarry))
	return result
}

func (c *CPU) addA(right byte) int {
	sum := uint16(c.a) + uint16(right)
	result := byte(sum)
	c.setFlags(result, boolByte(sum >= 256))
	c.a = result
	return 1
}

func (c *CPU) subA(val byte) int {
	result := c.a - val
	borrow := boolByte(uint16(c.a) < uint16(val))
	c.setFlags(result, borrow)
	c.a = result
	return 1
}

func (c *CPU) andA(val byte) int {
	c.a &= val
	c.setFlags(c.a, 0)
	return 1
}

func (c *CPU) xorA(val byte) int {
	c.a ^= val
	c.setFlags(c.a, 0)
	return 1
}

func (c *CPU) orA(val byte) int {
	c.a |= val
	c.setFlags(c.a, 0)
	return 1
}

func (c *CPU) cmpA(val byte) int {
	result := c.a - val
	borrow := boolByte(uint16(c.a) < uint16(val))
	c.setFlags(result, borrow)
	return 1
}

// inx/dcx increment/decrement a register pair in place with no flag
// effects.
func inx(hi, lo *byte) {
	result := *lo + 1
	carry := boolByte(result < *lo)
	*lo = result
	*hi += carry
}

func dcx(hi, lo *byte) {
	result := *lo - 1
	borrow := boolByte(result > *lo)
	*lo = result
	*hi -= borrow
}

// dad adds the (hi,lo) pair into HL, wrapping, and sets Carry from
// the 16-bit overflow. Zero/Sign/Parity are untouched.
func (c *CPU) dad(hi, lo byte) int {
	val := uint32(ConcatU16(hi, lo))
	sum := uint32(c.hl()) + val
	c.h = byte(sum >> 8)
	c.l = byte(sum)
	c.setFlag(FlagCarry, boolByte(sum > 0xFFFF))
	return 3
}

// daa decimal-adjusts A: the low-nibble correction touches no flags.
// The high-nibble correction calls setFlags before the corrected
// value is stored, so Zero/Sign/Parity reflect A as it stood just
// after the low-nibble correction, not the final result — only Carry
// reflects the high-nibble add itself. Auxiliary carry is not tracked.
func (c *CPU) daa() {
	if c.a&0x0F > 9 {
		c.a += 0x06
	}
	if c.a&0xF0 > 0x90 {
		sum := uint16(c.a) + 0x60
		c.setFlags(c.a, boolByte(sum > 0xFF))
		c.a = byte(sum)
	}
}

// mov copies a register into another; movFromM/movToM are the
// memory-backed variants, costing one extra cycle.
func mov(from byte, to *byte) int {
	*to = from
	return 1
}

func (c *CPU) movFromM(to *byte) int {
	*to = c.Memory.Read(c.hl())
	return 2
}

func (c *CPU) movToM(from byte) int {
	c.Memory.Write(c.hl(), from)
	return 2
}
