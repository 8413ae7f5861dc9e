package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rps-arcade/internal/game"
	"github.com/vovakirdan/rps-arcade/internal/platform/tui"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play a match in the terminal.

A match-length selector is shown first unless --match or --no-menu is
given. Esc returns to the selector.

Controls:
  R/1 P/2 S/3  - Rock, paper, scissors
  +/-          - Raise/lower the wins needed
  X            - Reset the match
  H/Tab        - Round history
  ?            - Help
  Q/Ctrl+C     - Quit

Examples:
  rps play
  rps play --match quick
  rps play --seed 42 --no-menu`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the match-length selector")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer := newLogger("rps")
	defer closer.Close()

	cfg := loadConfig()
	lk := newLikeness(cfg)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	rt := runtimeConfig(width, height)
	showMenu := flagMatch == "" && !flagNoMenu

	for {
		if showMenu {
			preset, ok, err := tui.RunMatchMenu(cfg.Match.Preset, width, height)
			if err != nil {
				fail("%v", err)
			}
			if !ok {
				return
			}
			cfg.ApplyPreset(preset)
		}

		g := game.New(cfg, rt, game.WithLogger(logger), game.WithLikeness(lk))
		back, err := tui.Run(g, rt)
		if err != nil {
			fail("running game: %v", err)
		}
		if !back || !showMenu {
			return
		}
	}
}
