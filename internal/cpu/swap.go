package cpu

// swap exchanges the upper and lower nibbles of a byte.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return n<<4 | n>>4
}

func init() {
	for i, op := range smallOperands {
		DefineInstructionCB(uint8(0x30+i), "SWAP "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.write8(args[0], c.swap(args[0].U8())) }, op)
	}
}
