package cpu

type flag = uint8

const (
	flagZero      flag = 7
	flagSubtract  flag = 6
	flagHalfCarry flag = 5
	flagCarry     flag = 4
)

// setFlags writes the flags register from scratch. The low nibble of F
// is always zero.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= 1 << flagZero
	}
	if subtract {
		f |= 1 << flagSubtract
	}
	if halfCarry {
		f |= 1 << flagHalfCarry
	}
	if carry {
		f |= 1 << flagCarry
	}
	c.F = f
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(f flag) bool {
	return c.F&(1<<f) != 0
}

// shouldZeroFlag sets flagZero if the given value is 0, and clears it
// otherwise. The other flags are left untouched.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.F |= 1 << flagZero
	} else {
		c.F &^= 1 << flagZero
	}
}
