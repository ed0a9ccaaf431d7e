package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/config"
	"snake-arcade/game/manager"
	"snake-arcade/sound"
	"snake-arcade/term"
	"snake-arcade/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "snake.yaml", "Path to the YAML config file (optional)")
	frontend := flag.String("ui", "window", "Frontend: window (raylib) or term (terminal)")
	scoresPath := flag.String("scores", "", "High score file (overrides the config)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	clearScores := flag.Bool("clear-scores", false, "Clear the high score table before playing")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write logs to this file (terminal mode defaults to snake.log)")
	flag.Parse()

	if *logPath == "" && *frontend == "term" {
		*logPath = "snake.log"
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.SetOutput(io.Discard)
		} else {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *scoresPath != "" {
		cfg.ScoresFile = *scoresPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	scores := manager.NewScoreManager(cfg.ScoresFile, cfg.LeaderboardCapacity)
	_, loadErr := scores.Load()
	if *clearScores {
		if err := scores.Clear(); err != nil {
			log.Printf("warning: %v", err)
		}
	}

	var cues game.Cues
	if !*mute {
		player, err := sound.New()
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer player.Close()
		cues = player
	}

	g := game.NewGame(cfg, manager.NewFoodManager(cfg.Grid(), cfg.Seed))
	ctrl := game.NewController(g, scores, cues, cfg.LeaderboardDisplay)
	ctrl.Warn(loadErr)

	switch *frontend {
	case "window":
		ui.Run(ctrl)
	case "term":
		runTerminal(ctrl)
	default:
		log.Fatalf("unknown -ui %q (want window or term)", *frontend)
	}
}

func runTerminal(ctrl *game.Controller) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer screen.Fini()

	term.New(screen, ctrl).Run()
}
