package cpu

import "testing"

func TestInstruction_Load(t *testing.T) {
	// 0x02 - LD (BC), A
	testInstruction(t, "LD (BC), A", func(t *testing.T) {
		cpu.A = 0x42
		cpu.BC.SetUint16(0x1234)
		run(0x02)
		if got := cpu.mem.Get(0x1234); got != 0x42 {
			t.Errorf("expected 0x42 at 0x1234, got 0x%02X", got)
		}
	})
	// 0x0A - LD A, (BC)
	testInstruction(t, "LD A, (BC)", func(t *testing.T) {
		cpu.BC.SetUint16(0x1234)
		cpu.mem.Put(0x1234, 0x42)
		run(0x0A)
		if cpu.A != 0x42 {
			t.Errorf("expected 0x42 in A, got 0x%02X", cpu.A)
		}
	})
	// 0x22 - LD (HL+), A
	testInstruction(t, "LD (HL+), A", func(t *testing.T) {
		cpu.A = 0x42
		cpu.HL.SetUint16(0x1234)
		run(0x22)
		if got := cpu.mem.Get(0x1234); got != 0x42 {
			t.Errorf("expected 0x42 at 0x1234, got 0x%02X", got)
		}
		if cpu.HL.Uint16() != 0x1235 {
			t.Errorf("expected HL to be 0x1235, got 0x%04X", cpu.HL.Uint16())
		}
	})
	// 0x32 - LD (HL-), A
	testInstruction(t, "LD (HL-), A", func(t *testing.T) {
		cpu.A = 0x42
		cpu.HL.SetUint16(0x1234)
		run(0x32)
		if got := cpu.mem.Get(0x1234); got != 0x42 {
			t.Errorf("expected 0x42 at 0x1234, got 0x%02X", got)
		}
		if cpu.HL.Uint16() != 0x1233 {
			t.Errorf("expected HL to be 0x1233, got 0x%04X", cpu.HL.Uint16())
		}
	})
	// 0x36 - LD (HL), d8
	testInstruction(t, "LD (HL), d8", func(t *testing.T) {
		cpu.HL.SetUint16(0x1234)
		run(0x36, 0x42)
		if got := cpu.mem.Get(0x1234); got != 0x42 {
			t.Errorf("expected 0x42 at 0x1234, got 0x%02X", got)
		}
	})
	// 0x31 - LD SP, d16
	testInstruction(t, "LD SP, d16", func(t *testing.T) {
		run(0x31, 0xF0, 0xDF)
		if cpu.SP != 0xDFF0 {
			t.Errorf("expected SP to be 0xDFF0, got 0x%04X", cpu.SP)
		}
	})
	// 0x08 - LD (a16), SP stores little-endian
	testInstruction(t, "LD (a16), SP", func(t *testing.T) {
		cpu.SP = 0x1234
		run(0x08, 0x00, 0xC0)
		if lo := cpu.mem.Get(0xC000); lo != 0x34 {
			t.Errorf("expected 0x34 at 0xC000, got 0x%02X", lo)
		}
		if hi := cpu.mem.Get(0xC001); hi != 0x12 {
			t.Errorf("expected 0x12 at 0xC001, got 0x%02X", hi)
		}
	})
	// 0xF9 - LD SP, HL
	testInstruction(t, "LD SP, HL", func(t *testing.T) {
		cpu.HL.SetUint16(0x1234)
		run(0xF9)
		if cpu.SP != 0x1234 {
			t.Errorf("expected SP to be 0x1234, got 0x%04X", cpu.SP)
		}
	})
	// 0xF8 - LD HL, SP+r8
	testInstruction(t, "LD HL, SP+r8", func(t *testing.T) {
		cpu.SP = 0xFFF8
		run(0xF8, 0x08)
		if cpu.HL.Uint16() != 0x0000 {
			t.Errorf("expected HL to be 0x0000, got 0x%04X", cpu.HL.Uint16())
		}
		if cpu.isFlagSet(flagZero) || cpu.isFlagSet(flagSubtract) {
			t.Errorf("expected zero and subtract flags to be clear, got 0x%02X", cpu.F)
		}
		if !cpu.isFlagSet(flagHalfCarry) || !cpu.isFlagSet(flagCarry) {
			t.Errorf("expected half carry and carry flags to be set, got 0x%02X", cpu.F)
		}
	})
}

func TestInstruction_LoadGrid(t *testing.T) {
	// LD r, r' over the full 0x40-0x7F grid, skipping HALT and the
	// memory forms exercised elsewhere
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := uint8(0x40 + dst*8 + src)
			if opcode == 0x76 || dst == 6 || src == 6 {
				continue
			}
			d, s := smallOperands[dst].Reg, smallOperands[src].Reg
			testInstruction(t, InstructionSet[opcode].Name(), func(t *testing.T) {
				cpu.Registers.Write(s, 0x42)
				run(opcode)
				if got := cpu.Registers.Read(d); got != 0x42 {
					t.Errorf("expected %s to be 0x42, got 0x%02X", d, got)
				}
			})
		}
	}
}

func TestInstruction_Stack(t *testing.T) {
	// 0xC5 - PUSH BC stores high byte first
	testInstruction(t, "PUSH BC", func(t *testing.T) {
		cpu.BC.SetUint16(0x1234)
		run(0xC5)
		if cpu.SP != 0xFFFC {
			t.Errorf("expected SP to be 0xFFFC, got 0x%04X", cpu.SP)
		}
		if hi := cpu.mem.Get(0xFFFD); hi != 0x12 {
			t.Errorf("expected 0x12 at 0xFFFD, got 0x%02X", hi)
		}
		if lo := cpu.mem.Get(0xFFFC); lo != 0x34 {
			t.Errorf("expected 0x34 at 0xFFFC, got 0x%02X", lo)
		}
	})
	// 0xD1 - POP DE mirrors PUSH
	testInstruction(t, "POP DE", func(t *testing.T) {
		cpu.BC.SetUint16(0x1234)
		run(0xC5) // PUSH BC
		run(0xD1) // POP DE
		if cpu.DE.Uint16() != 0x1234 {
			t.Errorf("expected DE to be 0x1234, got 0x%04X", cpu.DE.Uint16())
		}
		if cpu.SP != 0xFFFE {
			t.Errorf("expected SP to be 0xFFFE, got 0x%04X", cpu.SP)
		}
	})
	// 0xF1 - POP AF masks the low nibble of F
	testInstruction(t, "POP AF", func(t *testing.T) {
		cpu.BC.SetUint16(0x12FF)
		run(0xC5) // PUSH BC
		run(0xF1) // POP AF
		if cpu.AF.Uint16() != 0x12F0 {
			t.Errorf("expected AF to be 0x12F0, got 0x%04X", cpu.AF.Uint16())
		}
	})
}
