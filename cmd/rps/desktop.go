package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arcade/internal/game"
	"github.com/vovakirdan/rps-arcade/internal/platform/desktop"
)

var flagNoSave bool

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open a window with clickable weapon buttons.

Target wins, button size and the border toggle are remembered between
runs unless --no-save is given.

Controls:
  Click a button or R/1 P/2 S/3  - Play
  +/-                           - Raise/lower the wins needed
  X                             - Reset the match
  B                             - Toggle button borders
  Esc/Q                         - Quit

Examples:
  rps desktop
  rps desktop --match marathon`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func init() {
	desktopCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not load or save window preferences")
}

func runDesktop(_ *cobra.Command, _ []string) {
	logger, closer := newLogger("rps")
	defer closer.Close()

	cfg := loadConfig()
	lk := newLikeness(cfg)
	rt := runtimeConfig(desktop.WindowWidth, desktop.WindowHeight)

	defaults := desktop.SettingsFrom(cfg)
	var store *desktop.SettingsStore
	if flagNoSave {
		store = desktop.NewSettingsStore(nil, defaults, logger)
	} else {
		m, err := desktop.OpenStorage("rps")
		if err != nil {
			logger.Warn("preferences will not be saved", "err", err)
		}
		store = desktop.NewSettingsStore(m, defaults, logger)
	}
	if flagMatch != "" {
		// An explicit preset wins over the saved target.
		target := cfg.Match.TargetWins
		store.Update(func(s *desktop.Settings) { s.TargetWins = target })
	}

	g := game.New(cfg, rt, game.WithLogger(logger), game.WithLikeness(lk))
	app := desktop.NewApp(g, lk, store, logger)
	if err := desktop.Run(app, "Rock Paper Scissors"); err != nil {
		fail("%v", err)
	}
}
