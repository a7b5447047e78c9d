// main.go - Demo host entry point for the Space Invaders core

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gocade/invaders"
)

func main() {
	romPath := flag.String("rom", "", "path to an 8 KiB Space Invaders ROM image")
	scale := flag.Int("scale", 3, "window scale factor")
	fullscreen := flag.Bool("fullscreen", false, "run fullscreen")
	headless := flag.Bool("headless", false, "run without a window, printing a one-line HUD to the terminal")
	screenshot := flag.String("screenshot", "", "write a single PNG frame to this path and exit")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: arcade -rom invaders.bin [-scale N] [-fullscreen] [-headless] [-screenshot out.png]")
		os.Exit(1)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load ROM: %v\n", err)
		os.Exit(1)
	}

	machine := invaders.NewMachine(rom)

	if *screenshot != "" {
		if err := runScreenshot(machine, *screenshot, *scale); err != nil {
			fmt.Fprintf(os.Stderr, "screenshot failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *headless {
		runHeadless(machine)
		return
	}

	game := newGame(machine, *scale)
	player, err := newAudioPlayer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed, continuing silently: %v\n", err)
	} else {
		game.audio = player
		defer player.Close()
	}

	ebiten.SetWindowSize(game.width*(*scale), game.height*(*scale))
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowResizable(true)
	if *fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Ebiten error: %v\n", err)
		os.Exit(1)
	}
}
