package cpu

// add adds n (plus the carry flag, for ADC) to the A register.
//
//	ADD A, n / ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	carryIn := uint16(0)
	if withCarry && c.isFlagSet(flagCarry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(n) + carryIn
	sumHalf := uint16(c.A&0xF) + uint16(n&0xF) + carryIn
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (plus the carry flag, for SBC) from the A register.
// The half-borrow is computed on the widened low nibbles, so the
// intermediate never wraps.
//
//	SUB n / SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	carryIn := int16(0)
	if withCarry && c.isFlagSet(flagCarry) {
		carryIn = 1
	}
	diff := int16(c.A) - int16(n) - carryIn
	diffHalf := int16(c.A&0xF) - int16(n&0xF) - carryIn
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	c.A = uint8(diff)
}

// compare subtracts n from the A register for flag purposes only,
// discarding the numeric result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, c.A&0xF < n&0xF, c.A < n)
}

// increment adds 1 to an 8-bit value. The half-carry is taken from the
// low nibble of the value before the add.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(flagCarry))
	return incremented
}

// decrement subtracts 1 from an 8-bit value.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0, c.isFlagSet(flagCarry))
	return decremented
}

// addHL adds a 16-bit value to the HL register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.isFlagSet(flagZero), false, hl&0xFFF+n&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPOffset adds a signed 8-bit offset to the stack pointer and
// returns the result. The half-carry and carry come from the unsigned
// low-byte addition, not the 16-bit result.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPOffset(offset int8) uint16 {
	result := uint16(int32(c.SP) + int32(offset))
	carryBits := c.SP ^ uint16(offset) ^ result
	c.setFlags(false, false, carryBits&0x10 == 0x10, carryBits&0x100 == 0x100)
	return result
}

// incrementValue is the INC handler for 8-bit register and
// memory-indirect operands.
func incrementValue(c *CPU, args []Value) {
	c.write8(args[0], c.increment(args[0].U8()))
}

// decrementValue is the DEC handler for 8-bit register and
// memory-indirect operands.
func decrementValue(c *CPU, args []Value) {
	c.write8(args[0], c.decrement(args[0].U8()))
}

// incrementWord is the INC handler for register pairs and the stack
// pointer; it wraps silently and touches no flags.
func incrementWord(c *CPU, args []Value) {
	c.write16(args[0], args[0].V+1)
}

// decrementWord is the DEC handler for register pairs and the stack
// pointer; it wraps silently and touches no flags.
func decrementWord(c *CPU, args []Value) {
	c.write16(args[0], args[0].V-1)
}

func init() {
	// INC/DEC nn
	DefineInstruction(0x03, "INC BC", incrementWord, reg(RegBC))
	DefineInstruction(0x13, "INC DE", incrementWord, reg(RegDE))
	DefineInstruction(0x23, "INC HL", incrementWord, reg(RegHL))
	DefineInstruction(0x33, "INC SP", incrementWord, sp())
	DefineInstruction(0x0B, "DEC BC", decrementWord, reg(RegBC))
	DefineInstruction(0x1B, "DEC DE", decrementWord, reg(RegDE))
	DefineInstruction(0x2B, "DEC HL", decrementWord, reg(RegHL))
	DefineInstruction(0x3B, "DEC SP", decrementWord, sp())

	// INC/DEC n
	DefineInstruction(0x04, "INC B", incrementValue, reg(RegB))
	DefineInstruction(0x0C, "INC C", incrementValue, reg(RegC))
	DefineInstruction(0x14, "INC D", incrementValue, reg(RegD))
	DefineInstruction(0x1C, "INC E", incrementValue, reg(RegE))
	DefineInstruction(0x24, "INC H", incrementValue, reg(RegH))
	DefineInstruction(0x2C, "INC L", incrementValue, reg(RegL))
	DefineInstruction(0x34, "INC (HL)", incrementValue, ind(RegHL))
	DefineInstruction(0x3C, "INC A", incrementValue, reg(RegA))
	DefineInstruction(0x05, "DEC B", decrementValue, reg(RegB))
	DefineInstruction(0x0D, "DEC C", decrementValue, reg(RegC))
	DefineInstruction(0x15, "DEC D", decrementValue, reg(RegD))
	DefineInstruction(0x1D, "DEC E", decrementValue, reg(RegE))
	DefineInstruction(0x25, "DEC H", decrementValue, reg(RegH))
	DefineInstruction(0x2D, "DEC L", decrementValue, reg(RegL))
	DefineInstruction(0x35, "DEC (HL)", decrementValue, ind(RegHL))
	DefineInstruction(0x3D, "DEC A", decrementValue, reg(RegA))

	// ADD HL, nn
	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU, args []Value) { c.addHL(args[0].V) }, reg(RegBC))
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU, args []Value) { c.addHL(args[0].V) }, reg(RegDE))
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU, args []Value) { c.addHL(args[0].V) }, reg(RegHL))
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU, args []Value) { c.addHL(args[0].V) }, sp())

	// ADD/ADC/SUB/SBC A, n over the 8-bit operand grid
	for i, op := range smallOperands {
		DefineInstruction(uint8(0x80+i), "ADD A, "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.add(args[0].U8(), false) }, op)
		DefineInstruction(uint8(0x88+i), "ADC A, "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.add(args[0].U8(), true) }, op)
		DefineInstruction(uint8(0x90+i), "SUB "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.sub(args[0].U8(), false) }, op)
		DefineInstruction(uint8(0x98+i), "SBC A, "+smallOperandNames[i],
			func(c *CPU, args []Value) { c.sub(args[0].U8(), true) }, op)
	}
	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU, args []Value) { c.add(args[0].U8(), false) }, d8())
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU, args []Value) { c.add(args[0].U8(), true) }, d8())
	DefineInstruction(0xD6, "SUB d8", func(c *CPU, args []Value) { c.sub(args[0].U8(), false) }, d8())
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU, args []Value) { c.sub(args[0].U8(), true) }, d8())

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, args []Value) {
		c.SP = c.addSPOffset(args[0].Offset())
	}, r8())
}
