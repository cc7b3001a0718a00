package cpu

import "fmt"

// OperandKind enumerates the addressing modes an instruction operand
// can use. The set is closed; the instruction tables are built from
// these variants only, so there is no runtime operand parsing.
type OperandKind uint8

const (
	// KindD8 is an 8-bit immediate, read at pc.
	KindD8 OperandKind = iota
	// KindD16 is a 16-bit immediate, read little-endian at pc.
	KindD16
	// KindR8 is a signed 8-bit offset, read at pc. The caller must
	// sign-extend it before applying it to the program counter.
	KindR8
	// KindA8 is an 8-bit address literal read at pc and biased by
	// 0xFF00 (high-memory addressing).
	KindA8
	// KindA16 is a 16-bit address literal read little-endian at pc.
	KindA16
	// KindRegister is a named register, optionally indirect with
	// auto-increment/decrement side effects.
	KindRegister
	// KindSP is the stack pointer.
	KindSP
	// KindPC is the program counter.
	KindPC
)

// Operand describes how an instruction sources or targets a value. The
// descriptors are immutable; one set is built per opcode at table
// construction time.
type Operand struct {
	Kind OperandKind
	Reg  RegisterName // register name, when Kind is KindRegister

	Indirect bool // the value lives at the address held in Reg
	High     bool // the indirect address is biased by 0xFF00, e.g. (C)
	AutoInc  bool // Reg is incremented after the indirect read
	AutoDec  bool // Reg is decremented after the indirect read
}

func d8() Operand  { return Operand{Kind: KindD8} }
func d16() Operand { return Operand{Kind: KindD16} }
func r8() Operand  { return Operand{Kind: KindR8} }
func a8() Operand  { return Operand{Kind: KindA8} }
func a16() Operand { return Operand{Kind: KindA16} }
func sp() Operand  { return Operand{Kind: KindSP} }

func reg(name RegisterName) Operand { return Operand{Kind: KindRegister, Reg: name} }
func ind(name RegisterName) Operand {
	return Operand{Kind: KindRegister, Reg: name, Indirect: true}
}
func indInc(name RegisterName) Operand {
	return Operand{Kind: KindRegister, Reg: name, Indirect: true, AutoInc: true}
}
func indDec(name RegisterName) Operand {
	return Operand{Kind: KindRegister, Reg: name, Indirect: true, AutoDec: true}
}
func indHigh(name RegisterName) Operand {
	return Operand{Kind: KindRegister, Reg: name, Indirect: true, High: true}
}

// isPair reports whether the operand names a 16-bit register pair
// directly (not through memory).
func (op Operand) isPair() bool {
	return op.Kind == KindRegister && !op.Indirect && op.Reg >= RegAF
}

// isMem reports whether the operand refers to a memory cell.
func (op Operand) isMem() bool {
	return op.Indirect || op.Kind == KindA8 || op.Kind == KindA16
}

// Value is the result of resolving an Operand: the value it produced
// and, for memory operands, the address it refers to. Writes go through
// the instruction handler, never the resolver.
type Value struct {
	Op   Operand
	V    uint16 // resolved value; the byte read, for memory operands
	Addr uint16 // resolved address, valid when Op.isMem()
}

// U8 returns the resolved value truncated to a byte.
func (v Value) U8() uint8 { return uint8(v.V) }

// Offset returns the resolved value as a signed 8-bit offset.
// Truncating to unsigned here would be a correctness bug; relative
// jumps go backwards.
func (v Value) Offset() int8 { return int8(v.V) }

// readOperand reads the next byte of the instruction stream and
// advances the program counter past it.
func (c *CPU) readOperand() uint8 {
	value := c.mem.Get(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two bytes of the instruction stream
// little-endian and advances the program counter past them.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// resolve produces the Value for a single operand, consuming operand
// bytes from the instruction stream as needed. Register-indirect
// operands are read through memory; their auto-increment/decrement
// side effect is applied after the read, unconditionally.
func (c *CPU) resolve(op Operand) Value {
	v := Value{Op: op}
	switch op.Kind {
	case KindD8, KindR8:
		v.V = uint16(c.readOperand())
	case KindD16:
		v.V = c.readOperand16()
	case KindA8:
		v.Addr = 0xFF00 + uint16(c.readOperand())
		v.V = uint16(c.mem.Get(v.Addr))
	case KindA16:
		v.Addr = c.readOperand16()
		v.V = uint16(c.mem.Get(v.Addr))
	case KindRegister:
		if !op.Indirect {
			v.V = c.Registers.Read(op.Reg)
			break
		}
		addr := c.Registers.Read(op.Reg)
		if op.High {
			addr = 0xFF00 + addr&0xFF
		}
		v.Addr = addr
		v.V = uint16(c.mem.Get(addr))
		if op.AutoInc {
			c.Registers.Increment(op.Reg)
		}
		if op.AutoDec {
			c.Registers.Decrement(op.Reg)
		}
	case KindSP:
		v.V = c.SP
	case KindPC:
		v.V = c.PC
	default:
		panic(fmt.Sprintf("operand: unknown kind %d", op.Kind))
	}
	return v
}

// write8 stores a byte through the resolved destination.
func (c *CPU) write8(dst Value, value uint8) {
	switch {
	case dst.Op.isMem():
		c.mem.Put(dst.Addr, value)
	case dst.Op.Kind == KindRegister:
		c.Registers.Write(dst.Op.Reg, uint16(value))
	default:
		panic(fmt.Sprintf("operand: cannot write byte to kind %d", dst.Op.Kind))
	}
}

// write16 stores a 16-bit value through the resolved destination.
// Memory destinations are written little-endian (LD (a16), SP).
func (c *CPU) write16(dst Value, value uint16) {
	switch {
	case dst.Op.Kind == KindSP:
		c.SP = value
	case dst.Op.isPair():
		c.Registers.Write(dst.Op.Reg, value)
	case dst.Op.isMem():
		c.mem.Put(dst.Addr, uint8(value))
		c.mem.Put(dst.Addr+1, uint8(value>>8))
	default:
		panic(fmt.Sprintf("operand: cannot write word to kind %d", dst.Op.Kind))
	}
}
