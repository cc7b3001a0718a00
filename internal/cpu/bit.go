package cpu

import "fmt"

// testBit tests bit b of the given value.
//
//	BIT b, n
//	b = 0-7
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, b uint8) {
	c.setFlags(n&(1<<b) == 0, false, true, c.isFlagSet(flagCarry))
}

func init() {
	for b := uint8(0); b < 8; b++ {
		for i, op := range smallOperands {
			bit := b // capture per iteration
			DefineInstructionCB(0x40+b*8+uint8(i), fmt.Sprintf("BIT %d, %s", b, smallOperandNames[i]),
				func(c *CPU, args []Value) { c.testBit(args[0].U8(), bit) }, op)
			DefineInstructionCB(0x80+b*8+uint8(i), fmt.Sprintf("RES %d, %s", b, smallOperandNames[i]),
				func(c *CPU, args []Value) { c.write8(args[0], args[0].U8()&^(1<<bit)) }, op)
			DefineInstructionCB(0xC0+b*8+uint8(i), fmt.Sprintf("SET %d, %s", b, smallOperandNames[i]),
				func(c *CPU, args []Value) { c.write8(args[0], args[0].U8()|1<<bit) }, op)
		}
	}
}
