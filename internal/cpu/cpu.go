// Package cpu implements the Game Boy's Sharp LR35902 CPU: the
// register file, the base and extended instruction tables, and the
// fetch-decode-execute step the rest of the machine is paced by.
package cpu

import (
	"fmt"

	"github.com/isokela/dotmatrix/internal/memory"
	"github.com/isokela/dotmatrix/internal/types"
)

const (
	// ClockSpeed is the clock speed of the CPU, in Hz.
	ClockSpeed = 4194304

	// interruptCount is the number of interrupt sources.
	interruptCount = 5
	// stoppedCycles is the cost of an idle step while the CPU is
	// stopped; the timing automaton keeps advancing so that an
	// enabled vblank can wake the CPU back up.
	stoppedCycles = 4
	// interruptCycles is the cost of servicing an interrupt.
	interruptCycles = 20
)

// Interrupt source indices, most significant bit first: source n is
// stored in bit (7 - n) of the IE and IF registers.
const (
	InterruptVBlank uint8 = iota
	InterruptLCD
	InterruptTimer
	InterruptSerial
	InterruptJoypad
)

// CPU executes instructions against a flat memory store. It owns the
// program counter, stack pointer and register file; everything else it
// touches lives in memory.
type CPU struct {
	// PC is the program counter, it points to the next instruction
	// to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit
	// register pairs.
	Registers

	mem *memory.Memory

	// ime is the master interrupt enable. EI only schedules it; the
	// enable takes effect after the following instruction.
	ime          bool
	imeScheduled bool

	// stopped is set by STOP and HALT; the CPU fetches nothing until
	// an interrupt is both enabled and requested.
	stopped bool
}

// NewCPU creates a new CPU instance executing against mem. All
// registers start zeroed, as at power-on.
func NewCPU(mem *memory.Memory) *CPU {
	c := &CPU{
		Registers: Registers{},
		mem:       mem,
	}
	// create register pairs
	c.AF = &RegisterPair{&c.A, &c.F}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}

	return c
}

// Step executes a single instruction and returns the number of clock
// ticks it consumed. The caller must advance the timing automaton by
// exactly that amount before calling Step again.
func (c *CPU) Step() uint8 {
	if c.stopped {
		if !c.hasPendingInterrupt() {
			return stoppedCycles
		}
		c.stopped = false
	}

	// EI from the previous instruction takes effect now
	enableIME := c.imeScheduled

	opcode := c.mem.Get(c.PC)
	c.PC++

	var instruction Instruction
	var cycles uint8
	if opcode == PrefixCB {
		cbOpcode := c.mem.Get(c.PC)
		c.PC++
		instruction = InstructionSetCB[cbOpcode]
		cycles = CyclesCB[cbOpcode]
	} else {
		instruction = InstructionSet[opcode]
		cycles = Cycles[opcode]
	}
	if instruction.fn == nil {
		panic(fmt.Sprintf("unimplemented opcode 0x%02X at 0x%04X", opcode, c.PC-1))
	}

	var args [2]Value
	for i, op := range instruction.operands {
		args[i] = c.resolve(op)
	}
	instruction.fn(c, args[:len(instruction.operands)])

	// a DI in the delay slot clears imeScheduled and cancels the enable
	if enableIME && c.imeScheduled {
		c.ime = true
		c.imeScheduled = false
	}

	if c.ime && c.hasPendingInterrupt() {
		cycles += c.serviceInterrupt()
	}

	return cycles
}

// Stopped reports whether the CPU is waiting for an interrupt after
// STOP or HALT.
func (c *CPU) Stopped() bool { return c.stopped }

// InterruptsEnabled reports the state of the master interrupt enable.
func (c *CPU) InterruptsEnabled() bool { return c.ime }

// push stores a 16-bit value on the stack, high byte first, the stack
// pointer pre-decrementing for each byte.
func (c *CPU) push(value uint16) {
	c.SP--
	c.mem.Put(c.SP, uint8(value>>8))
	c.SP--
	c.mem.Put(c.SP, uint8(value))
}

// pop removes a 16-bit value from the stack, mirroring push.
func (c *CPU) pop() uint16 {
	lo := c.mem.Get(c.SP)
	c.SP++
	hi := c.mem.Get(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// interruptMask returns the IE/IF bit for interrupt n. The bits are
// stored most significant first: source n lives in bit (7 - n).
func interruptMask(n uint8) uint8 {
	return 1 << (7 - n)
}

// InterruptEnabled reports whether interrupt n is enabled in the IE
// register.
func (c *CPU) InterruptEnabled(n uint8) bool {
	return c.mem.Get(types.IE)&interruptMask(n) != 0
}

// InterruptRequested reports whether interrupt n is requested in the
// IF register.
func (c *CPU) InterruptRequested(n uint8) bool {
	return c.mem.Get(types.IF)&interruptMask(n) != 0
}

// SetInterruptRequest sets or clears the request bit for interrupt n
// and returns its previous state, for edge-triggered logic upstream.
func (c *CPU) SetInterruptRequest(n uint8, requested bool) bool {
	f := c.mem.Get(types.IF)
	mask := interruptMask(n)
	previous := f&mask != 0
	if requested {
		f |= mask
	} else {
		f &^= mask
	}
	c.mem.Put(types.IF, f)
	return previous
}

// SetScanline writes the current drawing line to the LY register.
func (c *CPU) SetScanline(line uint8) {
	c.mem.Put(types.LY, line)
}

// hasPendingInterrupt reports whether any interrupt is both enabled
// and requested. This is the wake condition for STOP and HALT, and is
// independent of the master interrupt enable.
func (c *CPU) hasPendingInterrupt() bool {
	return c.mem.Get(types.IE)&c.mem.Get(types.IF) != 0
}

// serviceInterrupt dispatches the highest-priority pending interrupt:
// the request bit is cleared, the master enable dropped, the return
// address pushed, and control transferred to the interrupt vector.
func (c *CPU) serviceInterrupt() uint8 {
	for n := uint8(0); n < interruptCount; n++ {
		if c.InterruptEnabled(n) && c.InterruptRequested(n) {
			c.SetInterruptRequest(n, false)
			c.ime = false
			c.push(c.PC)
			c.PC = 0x0040 + uint16(n)*8
			return interruptCycles
		}
	}
	return 0
}
