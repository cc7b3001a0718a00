// Package gpu implements the pixel-timing state machine of the Game
// Boy. It does no rendering; it consumes the cycles the CPU produces
// and walks the four scanline phases, keeping the LY register and the
// vblank interrupt request in step.
//
// References:
//   - http://imrannazar.com/GameBoy-Emulation-in-JavaScript:-GPU-Timings
package gpu

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// Mode represents a phase of the scanline timing state machine,
// numbered as the hardware reports them in the STAT register.
type Mode = uint8

const (
	// ModeHBlank is the horizontal blanking period at the end of a
	// visible line.
	ModeHBlank Mode = iota
	// ModeVBlank is the vertical blanking period, lines 144-153.
	ModeVBlank
	// ModeOAM is the sprite attribute scan at the start of a line.
	ModeOAM
	// ModeVRAM is the pixel transfer period of a line.
	ModeVRAM
)

// Phase durations in clock ticks. One visible line is
// OAM + VRAM + HBlank = 456 ticks, the same budget a vblank line
// spends in one piece.
const (
	cyclesOAM    = 80
	cyclesVRAM   = 172
	cyclesHBlank = 204
	cyclesLine   = cyclesOAM + cyclesVRAM + cyclesHBlank

	// lastVisibleLine is the line whose HBlank ends in the vertical
	// blanking period rather than another OAM scan.
	lastVisibleLine = 143
	// lastLine is the final vblank line; past it the machine wraps
	// back to line 0.
	lastLine = 153
)

// vblankInterrupt is the interrupt source the GPU raises when it
// enters the vertical blanking period.
const vblankInterrupt = 0

// Bus is the narrow view of the machine the timing automaton is
// allowed to touch: the scanline register and the interrupt bits.
// It must not reach any other address.
type Bus interface {
	// SetScanline writes the current drawing line to the LY register.
	SetScanline(line uint8)
	// InterruptEnabled reports whether interrupt n is enabled.
	InterruptEnabled(n uint8) bool
	// SetInterruptRequest sets or clears the request bit for
	// interrupt n, returning its previous state.
	SetInterruptRequest(n uint8, requested bool) bool
}

// GPU is the pixel-timing state machine. It must consume exactly the
// cycle cost of each executed instruction, in order, before the next
// instruction runs.
type GPU struct {
	bus Bus

	mode   Mode
	cycles uint64 // accumulated cycles in the current phase
	line   uint8  // drawing line, 0-153

	frameReady bool

	// PreparedFrame is the framebuffer handed to the presentation
	// sink once per frame. Pixel composition is out of scope; the
	// buffer exists so the sink has something stable to consume.
	PreparedFrame [ScreenHeight][ScreenWidth][3]uint8
}

// New creates a GPU attached to the given bus, starting in the OAM
// scan of line 0.
func New(bus Bus) *GPU {
	return &GPU{
		bus:  bus,
		mode: ModeOAM,
	}
}

// Mode returns the current phase of the state machine.
func (g *GPU) Mode() Mode { return g.mode }

// Line returns the current drawing line.
func (g *GPU) Line() uint8 { return g.line }

// HasFrame reports whether a full frame has completed since the last
// ClearRefresh.
func (g *GPU) HasFrame() bool { return g.frameReady }

// ClearRefresh resets the frame-ready signal.
func (g *GPU) ClearRefresh() { g.frameReady = false }

// Step advances the state machine by the cycle cost of the last
// executed instruction.
func (g *GPU) Step(cycles uint8) {
	g.cycles += uint64(cycles)

	switch g.mode {
	case ModeOAM:
		if g.cycles >= cyclesOAM {
			g.cycles = 0
			g.mode = ModeVRAM
		}
	case ModeVRAM:
		if g.cycles >= cyclesVRAM {
			g.cycles = 0
			g.mode = ModeHBlank
			// the scanline would be composed into PreparedFrame here
		}
	case ModeHBlank:
		if g.cycles >= cyclesHBlank {
			g.cycles = 0
			g.line++
			g.bus.SetScanline(g.line)

			if g.line == lastVisibleLine {
				g.enterVBlank()
			} else {
				g.mode = ModeOAM
			}
		}
	case ModeVBlank:
		if g.cycles >= cyclesLine {
			g.cycles = 0
			g.line++
			g.bus.SetScanline(g.line)

			if g.line > lastLine {
				g.mode = ModeOAM
				g.line = 0
				g.bus.SetScanline(g.line)
			}
		}
	}
}

// enterVBlank switches to the vertical blanking period, signals the
// completed frame, and requests the vblank interrupt if it is enabled.
func (g *GPU) enterVBlank() {
	g.mode = ModeVBlank
	g.frameReady = true
	if g.bus.InterruptEnabled(vblankInterrupt) {
		g.bus.SetInterruptRequest(vblankInterrupt, true)
	}
}
