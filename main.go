package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"snakeplus/internal/desktop"
	"snakeplus/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable sound and music")
	scale := flag.Float64("scale", 1, "window scale factor")
	debug := flag.Bool("debug", false, "show the debug overlay")
	logPath := flag.String("log", "", "append logs to this file instead of stderr")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := game.DefaultConfig()
	canvas, err := desktop.NewCanvas(cfg)
	if err != nil {
		log.Fatal(err)
	}

	opts := []game.Option{}
	if *seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewSource(*seed))))
	}
	if !*mute {
		a, err := desktop.NewAudio()
		if err != nil {
			log.Printf("[audio] disabled: %v", err)
		} else {
			defer a.Close()
			opts = append(opts, game.WithAudio(a))
		}
	}

	session, err := game.NewSession(cfg, canvas, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	ebiten.SetWindowSize(int(float64(cfg.BoardWidth)**scale), int(float64(cfg.BoardHeight)**scale))
	ebiten.SetWindowTitle("Snake Plus")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(desktop.NewGame(session, canvas, cfg, *debug)); err != nil {
		log.Fatal(err)
	}
}
