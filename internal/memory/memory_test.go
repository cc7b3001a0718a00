package memory

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemory_GetPut(t *testing.T) {
	m := New()
	m.Put(0xC000, 0x42)
	if m.Get(0xC000) != 0x42 {
		t.Errorf("expected 0x42 at 0xC000, got 0x%02X", m.Get(0xC000))
	}
	if m.Get(0xC001) != 0 {
		t.Errorf("expected untouched address to read 0, got 0x%02X", m.Get(0xC001))
	}
}

func TestMemory_LoadROM(t *testing.T) {
	m := New()
	m.LoadROM([]byte{0x31, 0xFE, 0xFF})
	for i, want := range []uint8{0x31, 0xFE, 0xFF} {
		if got := m.Get(uint16(i)); got != want {
			t.Errorf("expected 0x%02X at 0x%04X, got 0x%02X", want, i, got)
		}
	}
}

func TestMemory_Dump(t *testing.T) {
	m := New()
	m.Put(0x0010, 0xAB)
	var buf bytes.Buffer
	m.Dump(&buf, 0x0000, 0x001F)
	if !strings.Contains(buf.String(), "0010: AB") {
		t.Errorf("expected dump to contain row for 0x0010, got:\n%s", buf.String())
	}
}
