package cpu

// load moves a resolved source into a resolved destination. The width
// follows the destination: register pairs and the stack pointer take
// the full 16-bit value, everything else the low byte. The one memory
// destination that takes 16 bits is LD (a16), SP.
//
//	LD dst, src
//
// Flags affected: none.
func load(c *CPU, args []Value) {
	dst, src := args[0], args[1]
	if dst.Op.isPair() || dst.Op.Kind == KindSP || src.Op.Kind == KindSP {
		c.write16(dst, src.V)
		return
	}
	c.write8(dst, src.U8())
}

// loadHLSPOffset implements LD HL, SP+r8: HL receives the stack
// pointer plus a signed offset.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the low-byte addition.
//	C - Set if carry from bit 7 of the low-byte addition.
func loadHLSPOffset(c *CPU, args []Value) {
	c.HL.SetUint16(c.addSPOffset(args[0].Offset()))
}

// pushRR pushes a register pair onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
//
// Flags affected: none.
func pushRR(c *CPU, args []Value) {
	c.push(args[0].V)
}

// popRR pops a register pair off the stack. Popping into AF masks the
// low nibble of F, which always reads back as zero.
//
//	POP nn
//	nn = AF, BC, DE, HL
//
// Flags affected: none (except POP AF, which replaces them wholesale).
func popRR(c *CPU, args []Value) {
	c.Registers.Write(args[0].Op.Reg, c.pop())
}

func init() {
	// LD nn, d16
	DefineInstruction(0x01, "LD BC, d16", load, reg(RegBC), d16())
	DefineInstruction(0x11, "LD DE, d16", load, reg(RegDE), d16())
	DefineInstruction(0x21, "LD HL, d16", load, reg(RegHL), d16())
	DefineInstruction(0x31, "LD SP, d16", load, sp(), d16())

	// LD (nn), A
	DefineInstruction(0x02, "LD (BC), A", load, ind(RegBC), reg(RegA))
	DefineInstruction(0x12, "LD (DE), A", load, ind(RegDE), reg(RegA))
	DefineInstruction(0x22, "LD (HL+), A", load, indInc(RegHL), reg(RegA))
	DefineInstruction(0x32, "LD (HL-), A", load, indDec(RegHL), reg(RegA))

	// LD A, (nn)
	DefineInstruction(0x0A, "LD A, (BC)", load, reg(RegA), ind(RegBC))
	DefineInstruction(0x1A, "LD A, (DE)", load, reg(RegA), ind(RegDE))
	DefineInstruction(0x2A, "LD A, (HL+)", load, reg(RegA), indInc(RegHL))
	DefineInstruction(0x3A, "LD A, (HL-)", load, reg(RegA), indDec(RegHL))

	// LD r, d8
	DefineInstruction(0x06, "LD B, d8", load, reg(RegB), d8())
	DefineInstruction(0x0E, "LD C, d8", load, reg(RegC), d8())
	DefineInstruction(0x16, "LD D, d8", load, reg(RegD), d8())
	DefineInstruction(0x1E, "LD E, d8", load, reg(RegE), d8())
	DefineInstruction(0x26, "LD H, d8", load, reg(RegH), d8())
	DefineInstruction(0x2E, "LD L, d8", load, reg(RegL), d8())
	DefineInstruction(0x36, "LD (HL), d8", load, ind(RegHL), d8())
	DefineInstruction(0x3E, "LD A, d8", load, reg(RegA), d8())

	// LD r, r' grid (0x40 - 0x7F, 0x76 is HALT)
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := uint8(0x40 + dst*8 + src)
			if opcode == 0x76 {
				continue
			}
			name := "LD " + smallOperandNames[dst] + ", " + smallOperandNames[src]
			DefineInstruction(opcode, name, load, smallOperands[dst], smallOperands[src])
		}
	}

	DefineInstruction(0x08, "LD (a16), SP", load, a16(), sp())
	DefineInstruction(0xF9, "LD SP, HL", load, sp(), reg(RegHL))
	DefineInstruction(0xF8, "LD HL, SP+r8", loadHLSPOffset, r8())

	// high-memory addressing
	DefineInstruction(0xE0, "LDH (a8), A", load, a8(), reg(RegA))
	DefineInstruction(0xF0, "LDH A, (a8)", load, reg(RegA), a8())
	DefineInstruction(0xE2, "LD (C), A", load, indHigh(RegC), reg(RegA))
	DefineInstruction(0xF2, "LD A, (C)", load, reg(RegA), indHigh(RegC))

	DefineInstruction(0xEA, "LD (a16), A", load, a16(), reg(RegA))
	DefineInstruction(0xFA, "LD A, (a16)", load, reg(RegA), a16())

	// stack transfer
	DefineInstruction(0xC1, "POP BC", popRR, reg(RegBC))
	DefineInstruction(0xD1, "POP DE", popRR, reg(RegDE))
	DefineInstruction(0xE1, "POP HL", popRR, reg(RegHL))
	DefineInstruction(0xF1, "POP AF", popRR, reg(RegAF))
	DefineInstruction(0xC5, "PUSH BC", pushRR, reg(RegBC))
	DefineInstruction(0xD5, "PUSH DE", pushRR, reg(RegDE))
	DefineInstruction(0xE5, "PUSH HL", pushRR, reg(RegHL))
	DefineInstruction(0xF5, "PUSH AF", pushRR, reg(RegAF))
}

// smallOperands are the 8-bit operand descriptors in opcode-grid
// order, with (HL) in the sixth slot.
var smallOperands = [8]Operand{
	reg(RegB), reg(RegC), reg(RegD), reg(RegE),
	reg(RegH), reg(RegL), ind(RegHL), reg(RegA),
}

var smallOperandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
