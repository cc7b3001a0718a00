package gpu

import "testing"

// busStub records the scanline and interrupt traffic the state machine
// produces.
type busStub struct {
	line    uint8
	enabled bool

	requests int
}

func (b *busStub) SetScanline(line uint8) { b.line = line }

func (b *busStub) InterruptEnabled(n uint8) bool { return b.enabled }

func (b *busStub) SetInterruptRequest(n uint8, requested bool) bool {
	if requested {
		b.requests++
	}
	return false
}

// advance steps the state machine by the given number of cycles, in
// instruction-sized pieces.
func advance(g *GPU, cycles int) {
	for cycles > 0 {
		g.Step(4)
		cycles -= 4
	}
}

func TestGPU_PhaseSequence(t *testing.T) {
	bus := &busStub{}
	g := New(bus)

	if g.Mode() != ModeOAM {
		t.Fatalf("expected to start in OAM scan, got mode %d", g.Mode())
	}

	advance(g, 80)
	if g.Mode() != ModeVRAM {
		t.Errorf("expected VRAM transfer after 80 cycles, got mode %d", g.Mode())
	}

	advance(g, 172)
	if g.Mode() != ModeHBlank {
		t.Errorf("expected HBlank after 172 cycles, got mode %d", g.Mode())
	}

	advance(g, 204)
	if g.Mode() != ModeOAM {
		t.Errorf("expected the next OAM scan after 204 cycles, got mode %d", g.Mode())
	}
	if g.Line() != 1 {
		t.Errorf("expected line 1, got %d", g.Line())
	}
	if bus.line != 1 {
		t.Errorf("expected LY to be 1, got %d", bus.line)
	}
}

func TestGPU_LineBudget(t *testing.T) {
	// a visible line is exactly 456 cycles, phase by phase
	if cyclesOAM+cyclesVRAM+cyclesHBlank != cyclesLine {
		t.Fatalf("phase durations sum to %d, want %d", cyclesOAM+cyclesVRAM+cyclesHBlank, cyclesLine)
	}

	bus := &busStub{}
	g := New(bus)
	for line := 1; line <= 10; line++ {
		advance(g, cyclesLine)
		if g.Line() != uint8(line) {
			t.Fatalf("expected line %d after %d cycles, got %d", line, line*cyclesLine, g.Line())
		}
	}
}

func TestGPU_VBlankEntry(t *testing.T) {
	bus := &busStub{enabled: true}
	g := New(bus)

	advance(g, 143*cyclesLine)
	if g.Mode() != ModeVBlank {
		t.Fatalf("expected vertical blank, got mode %d", g.Mode())
	}
	if !g.HasFrame() {
		t.Errorf("expected a completed frame")
	}
	if bus.requests != 1 {
		t.Errorf("expected one vblank interrupt request, got %d", bus.requests)
	}
}

func TestGPU_VBlankInterruptGated(t *testing.T) {
	bus := &busStub{enabled: false}
	g := New(bus)

	advance(g, 143*cyclesLine)
	if g.Mode() != ModeVBlank {
		t.Fatalf("expected vertical blank, got mode %d", g.Mode())
	}
	if bus.requests != 0 {
		t.Errorf("expected no interrupt request while disabled, got %d", bus.requests)
	}
	// the frame signal is independent of the interrupt
	if !g.HasFrame() {
		t.Errorf("expected a completed frame")
	}
}

func TestGPU_LineWrap(t *testing.T) {
	bus := &busStub{}
	g := New(bus)

	advance(g, 143*cyclesLine)

	// the blanking period runs through line 153 in whole-line steps
	advance(g, 10*cyclesLine)
	if g.Line() != 153 {
		t.Fatalf("expected line 153, got %d", g.Line())
	}
	if g.Mode() != ModeVBlank {
		t.Fatalf("expected vertical blank, got mode %d", g.Mode())
	}

	advance(g, cyclesLine)
	if g.Line() != 0 {
		t.Errorf("expected the line to wrap to 0, got %d", g.Line())
	}
	if g.Mode() != ModeOAM {
		t.Errorf("expected a new OAM scan, got mode %d", g.Mode())
	}
	if bus.line != 0 {
		t.Errorf("expected LY to be 0, got %d", bus.line)
	}
}

func TestGPU_FrameSignalCleared(t *testing.T) {
	bus := &busStub{}
	g := New(bus)

	advance(g, 143*cyclesLine)
	if !g.HasFrame() {
		t.Fatalf("expected a completed frame")
	}

	g.ClearRefresh()
	if g.HasFrame() {
		t.Errorf("expected the frame signal to clear")
	}

	// one full frame later the signal comes back
	advance(g, 154*cyclesLine)
	if !g.HasFrame() {
		t.Errorf("expected the next frame to be signalled")
	}
}
