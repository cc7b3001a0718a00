// Package console wires the CPU, the pixel-timing state machine and
// the memory store into a steppable machine. It is the main entry
// point for the emulator core.
package console

import (
	"github.com/sirupsen/logrus"

	"github.com/isokela/dotmatrix/internal/cpu"
	"github.com/isokela/dotmatrix/internal/gpu"
	"github.com/isokela/dotmatrix/internal/memory"
)

const (
	// CyclesPerFrame is the number of clock ticks in one full frame:
	// 154 lines of 456 ticks each.
	CyclesPerFrame = 70224
	// FrameRate is the number of frames the hardware presents per
	// second.
	FrameRate = float64(cpu.ClockSpeed) / CyclesPerFrame
)

// Console represents the machine: CPU, GPU and memory, stepped in
// strict alternation. One Step executes one instruction and then
// advances the timing automaton by exactly the cycles it consumed.
type Console struct {
	CPU    *cpu.CPU
	GPU    *gpu.GPU
	Memory *memory.Memory

	log   *logrus.Logger
	trace bool
}

// Opt configures a Console.
type Opt func(*Console)

// WithLogger replaces the standard logger.
func WithLogger(log *logrus.Logger) Opt {
	return func(c *Console) {
		c.log = log
	}
}

// WithTrace logs the machine state before every instruction, the way
// a hardware single-stepper would show it.
func WithTrace() Opt {
	return func(c *Console) {
		c.trace = true
	}
}

// NoBoot skips the boot ROM by starting execution at 0x0100.
func NoBoot() Opt {
	return func(c *Console) {
		c.CPU.PC = 0x0100
	}
}

// New returns a Console with the given image loaded at address 0.
func New(rom []byte, opts ...Opt) *Console {
	mem := memory.New()
	mem.LoadROM(rom)

	processor := cpu.NewCPU(mem)
	c := &Console{
		CPU:    processor,
		GPU:    gpu.New(processor),
		Memory: mem,
		log:    logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Step executes a single instruction, advances the timing automaton by
// the cycles it consumed, and returns that cycle count.
func (c *Console) Step() uint8 {
	if c.trace {
		c.log.WithFields(logrus.Fields{
			"PC": c.CPU.PC,
			"SP": c.CPU.SP,
			"OP": c.Memory.Get(c.CPU.PC),
			"AF": c.CPU.AF.Uint16(),
			"BC": c.CPU.BC.Uint16(),
			"DE": c.CPU.DE.Uint16(),
			"HL": c.CPU.HL.Uint16(),
		}).Debug("step")
	}

	cycles := c.CPU.Step()
	c.GPU.Step(cycles)
	return cycles
}

// Frame steps the machine until the GPU signals a completed frame and
// returns the framebuffer to present.
func (c *Console) Frame() *[gpu.ScreenHeight][gpu.ScreenWidth][3]uint8 {
	c.GPU.ClearRefresh()
	for !c.GPU.HasFrame() {
		c.Step()
	}
	return &c.GPU.PreparedFrame
}
