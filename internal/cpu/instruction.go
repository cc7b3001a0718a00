package cpu

import "fmt"

// PrefixCB is the escape opcode selecting the extended instruction set.
const PrefixCB uint8 = 0xCB

// Instruction couples an operation with its fixed operand descriptor
// list. The CPU resolves the operands in order and hands the resolved
// values to fn; the cycle cost lives in the cycle tables, indexed by
// opcode.
type Instruction struct {
	name     string
	operands []Operand
	fn       func(*CPU, []Value)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Operands returns the operand descriptors of the instruction.
func (i Instruction) Operands() []Operand { return i.operands }

// InstructionSet is the base instruction table, indexed by opcode.
var InstructionSet [256]Instruction

// InstructionSetCB is the extended (0xCB-prefixed) instruction table,
// indexed by the second opcode byte.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction for the given opcode in
// the base table.
func DefineInstruction(opcode uint8, name string, fn func(*CPU, []Value), operands ...Operand) {
	InstructionSet[opcode] = Instruction{
		name:     name,
		operands: operands,
		fn:       fn,
	}
}

// DefineInstructionCB defines the instruction for the given opcode in
// the extended table.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU, []Value), operands ...Operand) {
	InstructionSetCB[opcode] = Instruction{
		name:     name,
		operands: operands,
		fn:       fn,
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []Value) {})
	DefineInstruction(0x10, "STOP 0", func(c *CPU, _ []Value) {
		c.stopped = true
	}, d8())
	DefineInstruction(0x27, "DAA", func(c *CPU, _ []Value) {
		a := c.A
		var adjust uint8
		carry := c.isFlagSet(flagCarry)
		if c.isFlagSet(flagHalfCarry) || (!c.isFlagSet(flagSubtract) && a&0xF > 0x9) {
			adjust = 0x06
		}
		if carry || (!c.isFlagSet(flagSubtract) && a > 0x99) {
			adjust |= 0x60
			carry = true
		}
		if c.isFlagSet(flagSubtract) {
			a -= adjust
		} else {
			a += adjust
		}
		c.setFlags(a == 0, c.isFlagSet(flagSubtract), false, carry)
		c.A = a
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []Value) {
		c.A = 0xFF ^ c.A
		c.setFlags(c.isFlagSet(flagZero), true, true, c.isFlagSet(flagCarry))
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []Value) {
		c.setFlags(c.isFlagSet(flagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []Value) {
		c.setFlags(c.isFlagSet(flagZero), false, false, !c.isFlagSet(flagCarry))
	})
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []Value) {
		c.stopped = true
	})
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []Value) {
		c.ime = false
		c.imeScheduled = false
	})
	// the effect of EI is delayed by one instruction
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []Value) {
		c.imeScheduled = true
	})
	DefineInstruction(PrefixCB, "PREFIX CB", prefixedOpcode)

	for _, opcode := range disallowedOpcodes {
		DefineInstruction(opcode, "disallowed", disallowedOpcode)
	}
}

// disallowedOpcodes have no hardware behaviour on this platform;
// hitting one means the instruction stream has desynchronized.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func disallowedOpcode(c *CPU, _ []Value) {
	panic(fmt.Sprintf("disallowed opcode 0x%02X at 0x%04X", c.mem.Get(c.PC-1), c.PC-1))
}

// prefixedOpcode is never executed: Step intercepts the escape byte and
// dispatches through InstructionSetCB directly. The entry exists so the
// base table has no holes.
func prefixedOpcode(c *CPU, _ []Value) {
	panic("prefix escape reached instruction dispatch")
}
