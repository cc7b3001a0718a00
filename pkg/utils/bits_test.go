package utils

import "testing"

func TestBits(t *testing.T) {
	for bit := uint8(0); bit < 8; bit++ {
		if got := SetBit(0, bit); got != 1<<bit {
			t.Errorf("SetBit(0, %d) = 0x%02X, want 0x%02X", bit, got, 1<<bit)
		}
		if got := ClearBit(0xFF, bit); got != 0xFF&^(1<<bit) {
			t.Errorf("ClearBit(0xFF, %d) = 0x%02X, want 0x%02X", bit, got, 0xFF&^(1<<bit))
		}
		if !TestBit(1<<bit, bit) {
			t.Errorf("TestBit(0x%02X, %d) = false, want true", 1<<bit, bit)
		}
		if TestBit(^(uint8(1) << bit), bit) {
			t.Errorf("TestBit(0x%02X, %d) = true, want false", ^(uint8(1) << bit), bit)
		}
		if got := GetBit(1<<bit, bit); got != 1 {
			t.Errorf("GetBit(0x%02X, %d) = %d, want 1", 1<<bit, bit, got)
		}
	}
}
