package cpu

// and performs a bitwise AND operation on n and the A register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

func init() {
	for i, op := range smallOperands {
		DefineInstruction(uint8(0xA0+i), "AND "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.and(args[0].U8()) }, op)
		DefineInstruction(uint8(0xA8+i), "XOR "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.xor(args[0].U8()) }, op)
		DefineInstruction(uint8(0xB0+i), "OR "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.or(args[0].U8()) }, op)
		DefineInstruction(uint8(0xB8+i), "CP "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.compare(args[0].U8()) }, op)
	}
	DefineInstruction(0xE6, "AND d8", func(c *CPU, args []Value) { c.and(args[0].U8()) }, d8())
	DefineInstruction(0xEE, "XOR d8", func(c *CPU, args []Value) { c.xor(args[0].U8()) }, d8())
	DefineInstruction(0xF6, "OR d8", func(c *CPU, args []Value) { c.or(args[0].U8()) }, d8())
	DefineInstruction(0xFE, "CP d8", func(c *CPU, args []Value) { c.compare(args[0].U8()) }, d8())
}
