package cpu

import "testing"

func TestRegisters_PairAliasing(t *testing.T) {
	resetCPU()

	pairs := []struct {
		name string
		pair *RegisterPair
		high *Register
		low  *Register
	}{
		{"BC", cpu.BC, &cpu.B, &cpu.C},
		{"DE", cpu.DE, &cpu.D, &cpu.E},
		{"HL", cpu.HL, &cpu.H, &cpu.L},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			for v := 0; v < 256; v++ {
				*tt.high = uint8(v)
				*tt.low = uint8(255 - v)
				if got := tt.pair.Uint16(); got != uint16(v)<<8|uint16(255-v) {
					t.Fatalf("expected 0x%04X, got 0x%04X", uint16(v)<<8|uint16(255-v), got)
				}

				tt.pair.SetUint16(uint16(v) << 8)
				if *tt.high != uint8(v) || *tt.low != 0 {
					t.Fatalf("expected halves 0x%02X/0x00, got 0x%02X/0x%02X", v, *tt.high, *tt.low)
				}
			}
		})
	}
}

func TestRegisters_WriteHalfLeavesOther(t *testing.T) {
	resetCPU()

	cpu.BC.SetUint16(0x1234)
	cpu.Registers.Write(RegB, 0x56)
	if cpu.C != 0x34 {
		t.Errorf("expected C to be 0x34, got 0x%02X", cpu.C)
	}
	if cpu.BC.Uint16() != 0x5634 {
		t.Errorf("expected BC to be 0x5634, got 0x%04X", cpu.BC.Uint16())
	}
}

func TestRegisters_FlagNibbleMasked(t *testing.T) {
	resetCPU()

	cpu.Registers.Write(RegF, 0xFF)
	if cpu.F != 0xF0 {
		t.Errorf("expected F to be 0xF0, got 0x%02X", cpu.F)
	}

	cpu.Registers.Write(RegAF, 0xFFFF)
	if cpu.AF.Uint16() != 0xFFF0 {
		t.Errorf("expected AF to be 0xFFF0, got 0x%04X", cpu.AF.Uint16())
	}
}

func TestRegisters_ReadWrite(t *testing.T) {
	resetCPU()

	names := []RegisterName{RegA, RegB, RegC, RegD, RegE, RegH, RegL}
	for _, name := range names {
		cpu.Registers.Write(name, 0x42)
		if got := cpu.Registers.Read(name); got != 0x42 {
			t.Errorf("expected %s to be 0x42, got 0x%02X", name, got)
		}
	}

	pairs := []RegisterName{RegBC, RegDE, RegHL}
	for _, name := range pairs {
		cpu.Registers.Write(name, 0x1234)
		if got := cpu.Registers.Read(name); got != 0x1234 {
			t.Errorf("expected %s to be 0x1234, got 0x%04X", name, got)
		}
	}
}

func TestRegisters_IncrementDecrementWrap(t *testing.T) {
	resetCPU()

	cpu.B = 0xFF
	cpu.Registers.Increment(RegB)
	if cpu.B != 0x00 {
		t.Errorf("expected B to wrap to 0x00, got 0x%02X", cpu.B)
	}

	cpu.HL.SetUint16(0x0000)
	cpu.Registers.Decrement(RegHL)
	if cpu.HL.Uint16() != 0xFFFF {
		t.Errorf("expected HL to wrap to 0xFFFF, got 0x%04X", cpu.HL.Uint16())
	}
}

func TestRegisters_UnknownNamePanics(t *testing.T) {
	resetCPU()

	defer func() {
		if recover() == nil {
			t.Errorf("expected unknown register read to panic")
		}
	}()
	cpu.Registers.Read(RegisterName(0xFF))
}
