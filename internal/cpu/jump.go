package cpu

import "fmt"

// condition is a branch condition code, read from the flags register
// before the branch is taken.
type condition uint8

const (
	condNone condition = iota
	condNZ
	condZ
	condNC
	condC
)

// testCondition evaluates a condition code against the current flags.
func (c *CPU) testCondition(cond condition) bool {
	switch cond {
	case condNone:
		return true
	case condNZ:
		return !c.isFlagSet(flagZero)
	case condZ:
		return c.isFlagSet(flagZero)
	case condNC:
		return !c.isFlagSet(flagCarry)
	case condC:
		return c.isFlagSet(flagCarry)
	}
	return false
}

// jumpAbsolute implements JP cc, a16 and JP (HL). The operand bytes
// are always consumed; the jump target is the resolved address, so the
// a16 and (HL) forms share one handler. When the condition fails the
// program counter is left pointing past the operand.
func jumpAbsolute(cond condition) func(*CPU, []Value) {
	return func(c *CPU, args []Value) {
		if c.testCondition(cond) {
			c.PC = args[0].Addr
		}
	}
}

// jumpRelative implements JR cc, r8. The signed offset is applied to
// the program counter after it has advanced past the operand.
func jumpRelative(cond condition) func(*CPU, []Value) {
	return func(c *CPU, args []Value) {
		if c.testCondition(cond) {
			c.PC = uint16(int32(c.PC) + int32(args[0].Offset()))
		}
	}
}

// call implements CALL cc, a16: the address of the instruction after
// the operand is pushed before control transfers.
func call(cond condition) func(*CPU, []Value) {
	return func(c *CPU, args []Value) {
		if c.testCondition(cond) {
			c.push(c.PC)
			c.PC = args[0].Addr
		}
	}
}

// ret implements RET cc.
func ret(cond condition) func(*CPU, []Value) {
	return func(c *CPU, _ []Value) {
		if c.testCondition(cond) {
			c.PC = c.pop()
		}
	}
}

// rst pushes the return address and transfers to one of the eight
// fixed restart vectors.
func rst(vector uint16) func(*CPU, []Value) {
	return func(c *CPU, _ []Value) {
		c.push(c.PC)
		c.PC = vector
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", jumpRelative(condNone), r8())
	DefineInstruction(0x20, "JR NZ, r8", jumpRelative(condNZ), r8())
	DefineInstruction(0x28, "JR Z, r8", jumpRelative(condZ), r8())
	DefineInstruction(0x30, "JR NC, r8", jumpRelative(condNC), r8())
	DefineInstruction(0x38, "JR C, r8", jumpRelative(condC), r8())

	DefineInstruction(0xC3, "JP a16", jumpAbsolute(condNone), a16())
	DefineInstruction(0xC2, "JP NZ, a16", jumpAbsolute(condNZ), a16())
	DefineInstruction(0xCA, "JP Z, a16", jumpAbsolute(condZ), a16())
	DefineInstruction(0xD2, "JP NC, a16", jumpAbsolute(condNC), a16())
	DefineInstruction(0xDA, "JP C, a16", jumpAbsolute(condC), a16())
	DefineInstruction(0xE9, "JP (HL)", jumpAbsolute(condNone), ind(RegHL))

	DefineInstruction(0xCD, "CALL a16", call(condNone), a16())
	DefineInstruction(0xC4, "CALL NZ, a16", call(condNZ), a16())
	DefineInstruction(0xCC, "CALL Z, a16", call(condZ), a16())
	DefineInstruction(0xD4, "CALL NC, a16", call(condNC), a16())
	DefineInstruction(0xDC, "CALL C, a16", call(condC), a16())

	DefineInstruction(0xC9, "RET", ret(condNone))
	DefineInstruction(0xC0, "RET NZ", ret(condNZ))
	DefineInstruction(0xC8, "RET Z", ret(condZ))
	DefineInstruction(0xD0, "RET NC", ret(condNC))
	DefineInstruction(0xD8, "RET C", ret(condC))
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []Value) {
		c.PC = c.pop()
		c.ime = true
	})

	for i := 0; i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(uint8(0xC7+i*8), fmt.Sprintf("RST %02XH", vector), rst(vector))
	}
}
