package cpu

import "fmt"

// Register represents a single 8-bit register. The CPU has 8 of them:
// A, B, C, D, E, H, L and F, with F holding the flags.
type Register = uint8

// RegisterPair represents a pair of 8-bit registers addressed as one
// 16-bit value. The CPU has 4 pairs: AF, BC, DE and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// RegisterName identifies a register or register pair in the register
// file. The set is closed: the instruction tables can only name the
// values below, so a lookup miss is a malformed table, not an input
// error.
type RegisterName uint8

const (
	RegA RegisterName = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
)

var registerNames = [...]string{"A", "F", "B", "C", "D", "E", "H", "L", "AF", "BC", "DE", "HL"}

func (n RegisterName) String() string {
	if int(n) < len(registerNames) {
		return registerNames[n]
	}
	return fmt.Sprintf("RegisterName(%d)", uint8(n))
}

// Registers is the register file: the 8-bit registers and the pairs
// that alias them. Writing one half of a pair never perturbs the other
// half, as the pairs are built from pointers to the 8-bit fields.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// Read returns the value of the named register, zero-extended to
// uint16 for the 8-bit registers.
func (r *Registers) Read(name RegisterName) uint16 {
	switch name {
	case RegA:
		return uint16(r.A)
	case RegF:
		return uint16(r.F)
	case RegB:
		return uint16(r.B)
	case RegC:
		return uint16(r.C)
	case RegD:
		return uint16(r.D)
	case RegE:
		return uint16(r.E)
	case RegH:
		return uint16(r.H)
	case RegL:
		return uint16(r.L)
	case RegAF:
		return r.AF.Uint16()
	case RegBC:
		return r.BC.Uint16()
	case RegDE:
		return r.DE.Uint16()
	case RegHL:
		return r.HL.Uint16()
	}
	panic(fmt.Sprintf("register file: unknown register %s", name))
}

// Write sets the named register. For the 8-bit registers only the low
// byte of value is used, leaving the other half of the pair untouched.
// The low nibble of F always reads back as zero.
func (r *Registers) Write(name RegisterName, value uint16) {
	switch name {
	case RegA:
		r.A = uint8(value)
	case RegF:
		r.F = uint8(value) & 0xF0
	case RegB:
		r.B = uint8(value)
	case RegC:
		r.C = uint8(value)
	case RegD:
		r.D = uint8(value)
	case RegE:
		r.E = uint8(value)
	case RegH:
		r.H = uint8(value)
	case RegL:
		r.L = uint8(value)
	case RegAF:
		r.AF.SetUint16(value & 0xFFF0)
	case RegBC:
		r.BC.SetUint16(value)
	case RegDE:
		r.DE.SetUint16(value)
	case RegHL:
		r.HL.SetUint16(value)
	default:
		panic(fmt.Sprintf("register file: unknown register %s", name))
	}
}

// Increment adds 1 to the named register, wrapping silently.
func (r *Registers) Increment(name RegisterName) {
	r.Write(name, r.Read(name)+1)
}

// Decrement subtracts 1 from the named register, wrapping silently.
func (r *Registers) Decrement(name RegisterName) {
	r.Write(name, r.Read(name)-1)
}
