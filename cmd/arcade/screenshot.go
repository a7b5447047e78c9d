// screenshot.go - single-frame PNG export via the -screenshot flag

package main

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gocade/invaders"
)

// runScreenshot runs the machine for a fixed warm-up of frames (long
// enough for the boot-time RAM clear and title-screen draw to
// complete), then encodes the current video RAM to a scaled PNG.
func runScreenshot(m *invaders.Machine, path string, scale int) error {
	const warmupFrames = 120

	for i := 0; i < warmupFrames; i++ {
		for spent := 0; spent < cyclesPerHalfFrame; {
			status, err := m.Step()
			if err != nil {
				continue
			}
			spent += status.Cycles
			if status.Halted {
				break
			}
		}
		m.Interrupt(1)
		for spent := 0; spent < cyclesPerHalfFrame; {
			status, err := m.Step()
			if err != nil {
				continue
			}
			spent += status.Cycles
		}
		m.Interrupt(2)
		m.TakeEvent() // discard sound events during warm-up
	}

	pixels := make([]byte, rawHeight*rawWidth*4)
	renderFrame(m.VideoRAM(), pixels, rawHeight, rawWidth)

	src := &image.RGBA{
		Pix:    pixels,
		Stride: rawHeight * 4,
		Rect:   image.Rect(0, 0, rawHeight, rawWidth),
	}

	if scale < 1 {
		scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, rawHeight*scale, rawWidth*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, dst)
}
