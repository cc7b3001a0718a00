package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/isokela/dotmatrix/internal/console"
	"github.com/isokela/dotmatrix/internal/gpu"
	"github.com/isokela/dotmatrix/pkg/display"
	"github.com/isokela/dotmatrix/pkg/display/web"
	"github.com/isokela/dotmatrix/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "the rom file to load")
	noBoot := flag.Bool("no-boot", false, "skip the boot rom and start at 0x0100")
	trace := flag.Bool("trace", false, "log the machine state before every instruction")
	headless := flag.Bool("headless", false, "run without a window")
	steps := flag.Int("steps", 0, "with -headless, the number of instructions to run (0 runs forever)")
	scale := flag.Int("scale", 4, "window scale factor")
	serve := flag.String("serve", "", "address to stream frames to browsers on, e.g. :8090")
	dump := flag.Bool("dump", false, "dump high memory on exit")
	flag.Parse()

	log := logrus.New()
	if *trace {
		log.SetLevel(logrus.DebugLevel)
	}

	// start pprof
	go func() {
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			return
		}
	}()

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		log.WithError(err).Fatal("could not load rom")
	}
	log.WithFields(logrus.Fields{
		"file":  *romFile,
		"size":  len(rom),
		"xxh64": utils.Hash(rom),
	}).Info("loaded rom")

	opts := []console.Opt{console.WithLogger(log)}
	if *noBoot {
		opts = append(opts, console.NoBoot())
	}
	if *trace {
		opts = append(opts, console.WithTrace())
	}
	c := console.New(rom, opts...)

	if *headless {
		runHeadless(c, *steps)
		if *dump {
			c.Memory.Dump(os.Stdout, 0xFF00, 0xFFFF)
		}
		return
	}

	var hub *web.Hub
	if *serve != "" {
		hub = web.NewHub()
		go func() {
			if err := hub.Run(*serve); err != nil {
				log.WithError(err).Error("frame streamer stopped")
			}
		}()
	}

	d, err := display.New("dotmatrix", int32(*scale))
	if err != nil {
		log.WithError(err).Fatal("could not create display")
	}
	defer d.Close()

	paused := false
	for !d.IsClosed() {
		if !paused {
			frame := c.Frame()
			if err := d.Render(frame); err != nil {
				log.WithError(err).Error("render failed")
			}
			if hub != nil {
				hub.BroadcastFrame(flattenFrame(frame))
			}
		}

		for _, event := range d.PollEvents() {
			switch event {
			case display.EventPause:
				paused = !paused
			case display.EventScreenshot:
				img := utils.ScaleImage(display.FrameImage(&c.GPU.PreparedFrame), *scale)
				if err := utils.SaveImage(img); err != nil {
					log.WithError(err).Error("could not save screenshot")
				}
			case display.EventCopy:
				img := display.FrameImage(&c.GPU.PreparedFrame)
				if err := utils.CopyImage(img); err != nil {
					log.WithError(err).Error("could not copy screenshot")
				}
			}
		}
	}

	if *dump {
		c.Memory.Dump(os.Stdout, 0xFF00, 0xFFFF)
	}
}

// runHeadless steps the machine without a window: a fixed number of
// instructions, or forever.
func runHeadless(c *console.Console, steps int) {
	if steps <= 0 {
		for {
			c.Step()
		}
	}
	for i := 0; i < steps; i++ {
		c.Step()
	}
}

// flattenFrame serializes a framebuffer row-major for the wire.
func flattenFrame(frame *[gpu.ScreenHeight][gpu.ScreenWidth][3]uint8) []byte {
	out := make([]byte, 0, len(frame)*len(frame[0])*3)
	for y := range frame {
		for x := range frame[y] {
			out = append(out, frame[y][x][:]...)
		}
	}
	return out
}
