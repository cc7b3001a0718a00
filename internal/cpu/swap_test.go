package cpu

import "testing"

func TestInstruction_Swap(t *testing.T) {
	// 0xCB 0x37 - SWAP A
	testInstruction(t, "SWAP A", func(t *testing.T) {
		cpu.A = 0xAB
		cpu.setFlags(false, true, true, true)
		run(PrefixCB, 0x37)
		if cpu.A != 0xBA {
			t.Errorf("expected A to be 0xBA, got 0x%02X", cpu.A)
		}
		if cpu.F != 0 {
			t.Errorf("expected flags to be clear, got 0x%02X", cpu.F)
		}
	})
	testInstruction(t, "SWAP A zero", func(t *testing.T) {
		cpu.A = 0x00
		run(PrefixCB, 0x37)
		if !cpu.isFlagSet(flagZero) {
			t.Errorf("expected zero flag to be set")
		}
	})
	// 0xCB 0x36 - SWAP (HL)
	testInstruction(t, "SWAP (HL)", func(t *testing.T) {
		cpu.HL.SetUint16(0x1234)
		cpu.mem.Put(0x1234, 0x12)
		run(PrefixCB, 0x36)
		if got := cpu.mem.Get(0x1234); got != 0x21 {
			t.Errorf("expected 0x21 at 0x1234, got 0x%02X", got)
		}
	})
}
