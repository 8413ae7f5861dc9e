package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arcade/internal/export"
)

var (
	flagGIFOut      string
	flagGIFWidth    int
	flagGIFHeight   int
	flagGIFFPS      int
	flagGIFDuration int
	flagGIFSeed     int64
)

var gifCmd = &cobra.Command{
	Use:   "gif",
	Short: "Render the celebration overlay GIF",
	Long: `Render the confetti and firework celebration into an animated GIF.
Saved as celebration.gif in the image directory, it plays over the
window when the player wins a match.

Examples:
  rps gif
  rps gif --out images/celebration.gif --duration 5`,
	Args: cobra.NoArgs,
	Run:  runGIF,
}

func init() {
	def := export.DefaultOptions()
	gifCmd.Flags().StringVar(&flagGIFOut, "out", "celebration.gif", "Output file")
	gifCmd.Flags().IntVar(&flagGIFWidth, "width", def.Width, "Width in pixels")
	gifCmd.Flags().IntVar(&flagGIFHeight, "height", def.Height, "Height in pixels")
	gifCmd.Flags().IntVar(&flagGIFFPS, "gif-fps", def.FPS, "Frames per second")
	gifCmd.Flags().IntVar(&flagGIFDuration, "duration", def.DurationSec, "Length in seconds")
	gifCmd.Flags().Int64Var(&flagGIFSeed, "gif-seed", def.Seed, "Particle RNG seed")
}

func runGIF(_ *cobra.Command, _ []string) {
	opts := export.DefaultOptions()
	opts.Width = flagGIFWidth
	opts.Height = flagGIFHeight
	opts.FPS = flagGIFFPS
	opts.DurationSec = flagGIFDuration
	opts.Seed = flagGIFSeed
	opts.Progress = func(frame, total int) {
		if frame%opts.FPS == 0 || frame == total {
			fmt.Printf("\rframe %d/%d", frame, total)
		}
	}

	if err := export.WriteFile(flagGIFOut, opts); err != nil {
		fmt.Println()
		fail("%v", err)
	}
	fmt.Printf("\nwrote %s\n", flagGIFOut)
}
