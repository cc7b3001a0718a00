// Package display is the SDL presentation sink: a window, an event
// poll, and a frame blit. It consumes completed frames and produces
// input events; it knows nothing about how the frames were timed.
package display

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/isokela/dotmatrix/internal/gpu"
)

// Event is an input event reported by the window.
type Event uint8

const (
	// EventQuit is emitted when the window is closed.
	EventQuit Event = iota
	// EventScreenshot is emitted when the screenshot key (F12) is
	// pressed.
	EventScreenshot
	// EventPause is emitted when the pause key (space) is pressed.
	EventPause
	// EventCopy is emitted when the copy key (C) is pressed.
	EventCopy
)

// Display presents frames in an SDL window.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	pixels []byte
	closed bool
}

// New creates the window and the streaming texture the frames are
// blitted through.
func New(title string, scale int32) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		gpu.ScreenWidth*scale, gpu.ScreenHeight*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		gpu.ScreenWidth, gpu.ScreenHeight,
	)
	if err != nil {
		return nil, err
	}

	return &Display{
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, gpu.ScreenWidth*gpu.ScreenHeight*3),
	}, nil
}

// Render blits a completed frame to the window.
func (d *Display) Render(frame *[gpu.ScreenHeight][gpu.ScreenWidth][3]uint8) error {
	i := 0
	for y := 0; y < gpu.ScreenHeight; y++ {
		for x := 0; x < gpu.ScreenWidth; x++ {
			d.pixels[i] = frame[y][x][0]
			d.pixels[i+1] = frame[y][x][1]
			d.pixels[i+2] = frame[y][x][2]
			i += 3
		}
	}

	if err := d.texture.Update(nil, d.pixels, gpu.ScreenWidth*3); err != nil {
		return err
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return err
	}
	d.renderer.Present()
	return nil
}

// PollEvents drains the SDL event queue and returns the events of
// interest. A quit event also marks the display closed.
func (d *Display) PollEvents() []Event {
	var events []Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			d.closed = true
			events = append(events, EventQuit)
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_F12:
				events = append(events, EventScreenshot)
			case sdl.K_SPACE:
				events = append(events, EventPause)
			case sdl.K_c:
				events = append(events, EventCopy)
			case sdl.K_ESCAPE:
				d.closed = true
				events = append(events, EventQuit)
			}
		}
	}
	return events
}

// IsClosed reports whether the window has been closed.
func (d *Display) IsClosed() bool { return d.closed }

// SetTitle updates the window title.
func (d *Display) SetTitle(title string) { d.window.SetTitle(title) }

// Close tears the SDL state down.
func (d *Display) Close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	sdl.Quit()
}

// FrameImage converts a framebuffer to an image, for screenshots.
func FrameImage(frame *[gpu.ScreenHeight][gpu.ScreenWidth][3]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, gpu.ScreenWidth, gpu.ScreenHeight))
	for y := 0; y < gpu.ScreenHeight; y++ {
		for x := 0; x < gpu.ScreenWidth; x++ {
			offset := img.PixOffset(x, y)
			img.Pix[offset] = frame[y][x][0]
			img.Pix[offset+1] = frame[y][x][1]
			img.Pix[offset+2] = frame[y][x][2]
			img.Pix[offset+3] = 0xFF
		}
	}
	return img
}
