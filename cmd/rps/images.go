package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arcade/internal/likeness"
)

var (
	flagImagesOut  string
	flagImagesSize int
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Write placeholder likeness PNGs",
	Long: `Write rock, paper, scissors and shake PNGs drawn with the built-in
line art. Drop your own pictures with the same names into the directory
to replace them.

Examples:
  rps images
  rps images --out ~/.rps/images --size 160`,
	Args: cobra.NoArgs,
	Run:  runImages,
}

func init() {
	imagesCmd.Flags().StringVar(&flagImagesOut, "out", "images", "Output directory")
	imagesCmd.Flags().IntVar(&flagImagesSize, "size", 200, "Image edge length in pixels")
}

func runImages(_ *cobra.Command, _ []string) {
	if flagImagesSize <= 0 {
		fail("--size must be positive")
	}
	if err := os.MkdirAll(flagImagesOut, 0o755); err != nil {
		fail("create %s: %v", flagImagesOut, err)
	}

	for _, name := range likeness.Names() {
		img, ok := likeness.Render(name, flagImagesSize, likeness.PrintStyle)
		if !ok {
			fail("no built-in art for %q", name)
		}
		path := filepath.Join(flagImagesOut, name+".png")
		if err := writePNG(path, img); err != nil {
			fail("%v", err)
		}
		fmt.Println("wrote", path)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("images: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("images: encode %s: %w", path, err)
	}
	return f.Close()
}
