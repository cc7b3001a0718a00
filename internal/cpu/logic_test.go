package cpu

import "testing"

func TestInstruction_Logic(t *testing.T) {
	// 0xA0 - AND B
	testInstruction(t, "AND B", func(t *testing.T) {
		cpu.A = 0b10101010
		cpu.B = 0b11010101
		run(0xA0)
		if cpu.A != 0x80 {
			t.Errorf("expected A to be 0x80, got 0x%02X", cpu.A)
		}
		if !cpu.isFlagSet(flagHalfCarry) {
			t.Errorf("expected half carry flag to be set")
		}
		if cpu.isFlagSet(flagZero) || cpu.isFlagSet(flagSubtract) || cpu.isFlagSet(flagCarry) {
			t.Errorf("expected flags to be 0x20, got 0x%02X", cpu.F)
		}
	})
	testInstruction(t, "AND B zero", func(t *testing.T) {
		cpu.A = 0b01010101
		cpu.B = 0b10101010
		run(0xA0)
		if !cpu.isFlagSet(flagZero) {
			t.Errorf("expected zero flag to be set")
		}
	})
	// 0xAF - XOR A always clears the accumulator
	testInstruction(t, "XOR A", func(t *testing.T) {
		cpu.A = 0b10101010
		cpu.setFlags(false, true, true, true)
		run(0xAF)
		if cpu.A != 0 {
			t.Errorf("expected A to be 0, got 0x%02X", cpu.A)
		}
		if cpu.F != 1<<flagZero {
			t.Errorf("expected flags to be 0x80, got 0x%02X", cpu.F)
		}
	})
	// 0xAE - XOR (HL)
	testInstruction(t, "XOR (HL)", func(t *testing.T) {
		cpu.A = 0b10101010
		cpu.HL.SetUint16(0x1234)
		cpu.mem.Put(0x1234, 0b11010101)
		run(0xAE)
		if cpu.A != 0x7F {
			t.Errorf("expected A to be 0x7F, got 0x%02X", cpu.A)
		}
	})
	// 0xB0 - OR B
	testInstruction(t, "OR B", func(t *testing.T) {
		cpu.A = 0b10101010
		cpu.B = 0b01010101
		run(0xB0)
		if cpu.A != 0xFF {
			t.Errorf("expected A to be 0xFF, got 0x%02X", cpu.A)
		}
		if cpu.F != 0 {
			t.Errorf("expected flags to be clear, got 0x%02X", cpu.F)
		}
	})
	// 0xF6 - OR d8
	testInstruction(t, "OR d8 zero", func(t *testing.T) {
		cpu.A = 0
		run(0xF6, 0x00)
		if !cpu.isFlagSet(flagZero) {
			t.Errorf("expected zero flag to be set")
		}
	})
	// 0xE6 - AND d8
	testInstruction(t, "AND d8", func(t *testing.T) {
		cpu.A = 0x5A
		run(0xE6, 0x0F)
		if cpu.A != 0x0A {
			t.Errorf("expected A to be 0x0A, got 0x%02X", cpu.A)
		}
	})
	// 0xEE - XOR d8
	testInstruction(t, "XOR d8", func(t *testing.T) {
		cpu.A = 0xFF
		run(0xEE, 0x0F)
		if cpu.A != 0xF0 {
			t.Errorf("expected A to be 0xF0, got 0x%02X", cpu.A)
		}
	})
}
