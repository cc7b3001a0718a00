package types

// HardwareAddress represents the address of a memory-mapped hardware
// register. The hardware IO are mapped to memory addresses
// 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// IF is the address of the IF hardware register. The IF
	// hardware register holds the interrupt request bits; an
	// interrupt is serviced only when its bit is set here and
	// in IE.
	IF HardwareAddress = 0xFF0F
	// LY is the address of the LY hardware register. The LY
	// hardware register holds the line currently being drawn,
	// and is written once per line transition (0-153, with
	// 144-153 indicating the vertical blanking period).
	LY HardwareAddress = 0xFF44
	// IE is the address of the IE hardware register. The IE
	// hardware register holds the interrupt enable bits.
	IE HardwareAddress = 0xFFFF
)
