// headless.go - raw-mode terminal HUD, the non-windowed run mode

package main

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/gocade/invaders"
)

// runHeadless drives the machine without a window, printing a
// single overwritten HUD line per frame: cycle count and the last
// sound event seen. Ctrl+C restores the terminal before exiting.
func runHeadless(m *invaders.Machine) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		// Not an interactive terminal (e.g. piped stdin); fall back
		// to plain line-buffered output rather than failing outright.
		runHeadlessPlain(m)
		return
	}
	defer term.Restore(fd, old)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Raw mode turns off the terminal's own Ctrl+C handling, so the
	// Ctrl+C byte is watched for on stdin as well.
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 1 && buf[0] == 0x03 {
				sig <- os.Interrupt
				return
			}
		}
	}()

	var totalCycles uint64
	var lastSound string

	for {
		select {
		case <-sig:
			return
		default:
		}

		spent := 0
		for spent < cyclesPerHalfFrame {
			status, err := m.Step()
			if err != nil {
				continue
			}
			spent += status.Cycles
			totalCycles += uint64(status.Cycles)
			if status.Halted {
				fmt.Print("\r\nhalted\r\n")
				return
			}
		}
		m.Interrupt(1)

		spent = 0
		for spent < cyclesPerHalfFrame {
			status, _ := m.Step()
			spent += status.Cycles
			totalCycles += uint64(status.Cycles)
		}
		m.Interrupt(2)

		for {
			ev := m.TakeEvent()
			if ev == nil {
				break
			}
			if ev.Kind == invaders.MachineEventPlaySound {
				lastSound = ev.Sound.String()
			}
		}

		fmt.Printf("\rcycles=%-12d last-sound=%-12s", totalCycles, lastSound)
	}
}

func runHeadlessPlain(m *invaders.Machine) {
	var totalCycles uint64
	for i := 0; i < 600; i++ { // ten seconds at 60Hz, then stop
		for spent := 0; spent < cyclesPerHalfFrame*2; {
			status, err := m.Step()
			if err != nil {
				continue
			}
			spent += status.Cycles
			totalCycles += uint64(status.Cycles)
			if status.Halted {
				fmt.Println("halted")
				return
			}
		}
		m.Interrupt(1)
		m.Interrupt(2)
	}
	fmt.Printf("ran %d cycles\n", totalCycles)
}
