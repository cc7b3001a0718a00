package cpu

import "github.com/isokela/dotmatrix/internal/types"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is
// copied to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & types.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == types.Bit7)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit
// is copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & types.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == types.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is
// copied to the least significant bit, and the most significant bit is
// copied to the carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if c.isFlagSet(flagCarry) {
		computed |= types.Bit0
	}
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is
// copied to the most significant bit, and the least significant bit is
// copied to the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n >> 1
	if c.isFlagSet(flagCarry) {
		computed |= types.Bit7
	}
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

func init() {
	// the accumulator-only rotates never set the zero flag, unlike
	// their extended-table counterparts
	DefineInstruction(0x07, "RLCA", func(c *CPU, _ []Value) {
		c.A = c.rotateLeftCarry(c.A)
		c.F &^= 1 << flagZero
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU, _ []Value) {
		c.A = c.rotateRightCarry(c.A)
		c.F &^= 1 << flagZero
	})
	DefineInstruction(0x17, "RLA", func(c *CPU, _ []Value) {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.F &^= 1 << flagZero
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU, _ []Value) {
		c.A = c.rotateRightThroughCarry(c.A)
		c.F &^= 1 << flagZero
	})

	for i, op := range smallOperands {
		DefineInstructionCB(uint8(0x00+i), "RLC "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.write8(args[0], c.rotateLeftCarry(args[0].U8())) }, op)
		DefineInstructionCB(uint8(0x08+i), "RRC "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.write8(args[0], c.rotateRightCarry(args[0].U8())) }, op)
		DefineInstructionCB(uint8(0x10+i), "RL "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.write8(args[0], c.rotateLeftThroughCarry(args[0].U8())) }, op)
		DefineInstructionCB(uint8(0x18+i), "RR "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.write8(args[0], c.rotateRightThroughCarry(args[0].U8())) }, op)
	}
}
