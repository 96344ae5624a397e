// Command snakeplus-term plays Snake Plus in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"

	"snakeplus/internal/game"
	"snakeplus/internal/term"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable sound and music")
	logPath := flag.String("log", "", "append logs to this file")
	flag.Parse()

	// The terminal is ours while the game runs, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.New(os.Stderr, "", 0).Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		log.New(os.Stderr, "", 0).Fatalf("screen: %v", err)
	}
	if err := scr.Init(); err != nil {
		log.New(os.Stderr, "", 0).Fatalf("screen init: %v", err)
	}
	defer scr.Fini()

	cfg := game.DefaultConfig()
	opts := []game.Option{}
	if *seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewSource(*seed))))
	}
	if !*mute {
		a, err := term.NewAudio()
		if err != nil {
			log.Printf("[audio] disabled: %v", err)
		} else {
			defer a.Close()
			opts = append(opts, game.WithAudio(a))
		}
	}

	session, err := game.NewSession(cfg, term.NewScreen(scr, cfg), opts...)
	if err != nil {
		scr.Fini()
		log.New(os.Stderr, "", 0).Fatal(err)
	}
	defer session.Close()

	term.Run(scr, session)
}
