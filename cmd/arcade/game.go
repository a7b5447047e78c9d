// game.go - ebiten.Game implementation rendering the arcade video RAM

package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/gocade/invaders"
)

// Space Invaders runs its CPU at 2MHz and splits each of its 60
// frames per second into two halves: interrupt(1) at the midpoint of
// the frame, interrupt(2) at vblank. This pacing is a host concern; the core
// only exposes Interrupt and Step.
const cyclesPerHalfFrame = 2000000 / 60 / 2

// rawWidth/rawHeight describe the video RAM in its native column-major
// layout before the cabinet's 90-degree rotation is undone.
const (
	rawWidth  = 256
	rawHeight = 224
)

var keyToButton = map[ebiten.Key]invaders.Button{
	ebiten.KeyC:          invaders.ButtonCoin,
	ebiten.KeyEnter:      invaders.ButtonP1Start,
	ebiten.KeyArrowLeft:  invaders.ButtonP1Left,
	ebiten.KeyArrowRight: invaders.ButtonP1Right,
	ebiten.KeyArrowUp:    invaders.ButtonP1Shoot,
	ebiten.KeyZ:          invaders.ButtonP1Shoot,
	ebiten.KeyX:          invaders.ButtonP2Start,
	ebiten.KeyA:          invaders.ButtonP2Left,
	ebiten.KeyD:          invaders.ButtonP2Right,
	ebiten.KeyW:          invaders.ButtonP2Shoot,
	ebiten.KeySpace:      invaders.ButtonP2Shoot,
}

type game struct {
	machine *invaders.Machine
	audio   *audioPlayer

	width, height int
	frame         *ebiten.Image
	pixels        []byte // RGBA, width*height*4

	pressed map[ebiten.Key]bool

	clipboardOnce sync.Once
	clipboardOK   bool
}

func newGame(m *invaders.Machine, scale int) *game {
	g := &game{
		machine: m,
		width:   rawHeight,
		height:  rawWidth,
		pressed: make(map[ebiten.Key]bool),
	}
	g.pixels = make([]byte, g.width*g.height*4)
	return g
}

func (g *game) Update() error {
	g.runHalfFrame()
	g.machine.Interrupt(1)
	g.runHalfFrame()
	g.machine.Interrupt(2)

	g.drainEvents()
	g.handleInput()
	return nil
}

func (g *game) runHalfFrame() {
	spent := 0
	for spent < cyclesPerHalfFrame {
		status, err := g.machine.Step()
		if err != nil {
			// Recoverable per the core's contract: an unmapped port
			// access. The host may log and continue.
			continue
		}
		spent += status.Cycles
		if status.Halted {
			return
		}
	}
}

func (g *game) drainEvents() {
	for {
		ev := g.machine.TakeEvent()
		if ev == nil {
			return
		}
		switch ev.Kind {
		case invaders.MachineEventPlaySound:
			if g.audio != nil {
				g.audio.play(ev.Sound)
			}
		case invaders.MachineEventStopSound:
			if g.audio != nil {
				g.audio.stop(ev.Sound)
			}
		case invaders.MachineEventDebug:
			// Watchdog port activity; nothing to surface visually.
		}
	}
}

func (g *game) handleInput() {
	for key, button := range keyToButton {
		down := ebiten.IsKeyPressed(key)
		if down && !g.pressed[key] {
			g.machine.ButtonPress(button)
		} else if !down && g.pressed[key] {
			g.machine.ButtonRelease(button)
		}
		g.pressed[key] = down
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.copyVideoRAMAsText()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	vram := g.machine.VideoRAM()
	renderFrame(vram, g.pixels, g.width, g.height)

	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	g.frame.WritePixels(g.pixels)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// renderFrame unrotates the cabinet's 90-degree-CCW-mounted monitor and
// paints the classic Space Invaders overlay color bands (red score
// strip, white play field, green player strip) onto an RGBA buffer of
// size w*h*4. This is purely a presentation concern; VideoRAM itself
// carries no color information.
//
// VideoRAM byte k belongs to column k/32, row group k mod 32: 224
// columns of 32 bytes (256 row bits) each.
func renderFrame(vram []byte, out []byte, w, h int) {
	for col := 0; col < rawHeight; col++ {
		for rowGroup := 0; rowGroup < rawWidth/8; rowGroup++ {
			idx := col*32 + rowGroup
			b := vram[idx]
			for bit := 0; bit < 8; bit++ {
				row := rowGroup*8 + bit
				lit := b&(1<<uint(bit)) != 0

				dispX := rawHeight - 1 - col
				dispY := row

				off := (dispY*w + dispX) * 4
				c := pixelColor(lit, dispY, h)
				out[off] = c.R
				out[off+1] = c.G
				out[off+2] = c.B
				out[off+3] = 0xFF
			}
		}
	}
}

func pixelColor(lit bool, y, h int) color.RGBA {
	if !lit {
		return color.RGBA{0, 0, 0, 0xFF}
	}
	switch {
	case y < h*16/256:
		return color.RGBA{0xE6, 0x2B, 0x2B, 0xFF} // score overlay: red
	case y > h*224/256:
		return color.RGBA{0x2B, 0xE6, 0x4C, 0xFF} // player overlay: green
	default:
		return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	}
}

func (g *game) copyVideoRAMAsText() {
	g.clipboardOnce.Do(func() {
		g.clipboardOK = clipboard.Init() == nil
	})
	if !g.clipboardOK {
		return
	}

	vram := g.machine.VideoRAM()
	art := make([]byte, 0, rawWidth*(rawHeight+1))
	for rowGroup := 0; rowGroup < rawWidth/8; rowGroup++ {
		for bit := 0; bit < 8; bit++ {
			for col := 0; col < rawHeight; col++ {
				idx := col*32 + rowGroup
				if vram[idx]&(1<<uint(bit)) != 0 {
					art = append(art, '#')
				} else {
					art = append(art, ' ')
				}
			}
			art = append(art, '\n')
		}
	}
	clipboard.Write(clipboard.FmtText, art)
}
