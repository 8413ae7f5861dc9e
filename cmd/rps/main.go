// rps is rock-paper-scissors with a particle celebration engine, playable
// in the terminal, in a desktop window or over SSH.
//
// Usage:
//
//	rps play             - Play in the terminal
//	rps desktop          - Play in a desktop window
//	rps serve            - Start SSH server for remote play
//	rps images           - Write placeholder likeness PNGs
//	rps gif              - Render the celebration overlay GIF
//	rps skins            - List likeness sources
//	rps config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible matches
//	--config <path>     - Use a custom config YAML
//	--match <preset>    - Match length: quick, classic, long, marathon
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arcade/internal/config"
	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/likeness"
	"github.com/vovakirdan/rps-arcade/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagMatch    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "Rock, paper, scissors with confetti and fireworks",
	Long: `rps plays rock-paper-scissors against the computer. Each round shakes
both fists before the reveal; win the match and the screen fills with
confetti and fireworks.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  images   - Write placeholder likeness PNGs
  gif      - Render the celebration overlay GIF
  skins    - List likeness sources
  config   - Print the default configuration

Examples:
  rps play
  rps play --match long
  rps desktop
  rps serve --ssh :2222
  rps gif --out images/celebration.gif`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMatch, "match", "", "Match length: quick, classic, long, marathon")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(gifCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger from the log flags. The returned
// closer releases the log file, if any.
func newLogger(prefix string) (*log.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("open log file: %v", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger, closer
}

// loadConfig reads the configuration and applies --match.
func loadConfig() config.RPSConfig {
	cfg, err := config.LoadRPS(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagMatch != "" {
		p, ok := config.ParsePreset(flagMatch)
		if !ok {
			fail("unknown match preset %q (want quick, classic, long or marathon)", flagMatch)
		}
		cfg.ApplyPreset(p)
	}
	return cfg
}

// runtimeConfig fills in the tick rate and seed flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     seed,
	}
}

// newLikeness creates the configured likeness source at icon size.
func newLikeness(cfg config.RPSConfig) registry.Source {
	src, err := registry.Create(cfg.Display.Skin, registry.Options{
		Dir:  cfg.Display.ImageDir,
		Size: likeness.IconSize(cfg.Display.ButtonSize),
	})
	if err != nil {
		fail("%v", err)
	}
	return src
}
