package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/aaronzipp/blobarena/internal/config"
	"github.com/aaronzipp/blobarena/internal/snake"
	"github.com/aaronzipp/blobarena/internal/store"
)

var (
	soundFlag = flag.Bool("sound", false, "Play a tone when eating and on game over")
	logFlag   = flag.String("log", "", "Write logs to this file instead of discarding them")
)

func main() {
	flag.Parse()

	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// The terminal belongs to the game while it runs.
		log.SetOutput(io.Discard)
	}

	cfg := config.Load()
	scores := store.NewFileStore(cfg.ScoreFile)
	game := snake.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), scores)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	var sfx *sounds
	if *soundFlag {
		sfx, err = newSounds()
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	run(screen, game, sfx)

	sfx.close()
	screen.Fini()
	fmt.Printf("Score: %d  High score: %d\n", game.Score, game.HighScore)
}

func run(screen tcell.Screen, game *snake.Game, sfx *sounds) {
	ticker := time.NewTicker(snake.TickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	draw(screen, game)
	for {
		select {
		case ev := <-events:
			if !handleEvent(screen, game, ev) {
				return
			}
			draw(screen, game)
		case <-ticker.C:
			switch game.Advance() {
			case snake.EventAte:
				sfx.eat()
			case snake.EventDied:
				sfx.die()
			}
			draw(screen, game)
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep running
func handleEvent(screen tcell.Screen, game *snake.Game, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			game.ChangeDirection(snake.Up)
		case tcell.KeyDown:
			game.ChangeDirection(snake.Down)
		case tcell.KeyLeft:
			game.ChangeDirection(snake.Left)
		case tcell.KeyRight:
			game.ChangeDirection(snake.Right)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				game.ChangeDirection(snake.Up)
			case 's':
				game.ChangeDirection(snake.Down)
			case 'a':
				game.ChangeDirection(snake.Left)
			case 'd':
				game.ChangeDirection(snake.Right)
			case 'r':
				game.Restart()
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
