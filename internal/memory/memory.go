// Package memory provides the flat 64kB byte store of the Game Boy.
// The store is deliberately unaware of the components mapped into it;
// the CPU and GPU address it directly.
package memory

import (
	"fmt"
	"io"
)

// Size is the size of the addressable memory in bytes.
const Size = 0x10000

// Memory is a flat 64kB byte store. Addresses are uint16, so every
// address is in range by construction.
type Memory struct {
	data [Size]uint8
}

// New returns a new zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Get returns the byte at the given address.
func (m *Memory) Get(address uint16) uint8 {
	return m.data[address]
}

// Put writes the given byte to the given address.
func (m *Memory) Put(address uint16, value uint8) {
	m.data[address] = value
}

// LoadROM copies the given image into memory byte-for-byte, starting
// at address 0. Images larger than the address space are truncated.
func (m *Memory) LoadROM(rom []byte) {
	copy(m.data[:], rom)
}

// Dump writes a hex dump of the address range [start, end] to w,
// 16 bytes per row. It is a debugging aid only.
func (m *Memory) Dump(w io.Writer, start, end uint16) {
	for row := uint32(start) &^ 0xF; row <= uint32(end); row += 16 {
		fmt.Fprintf(w, "%04X:", row)
		for col := uint32(0); col < 16; col++ {
			fmt.Fprintf(w, " %02X", m.data[row+col])
		}
		fmt.Fprintln(w)
	}
}
