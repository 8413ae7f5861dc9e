package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arcade/internal/registry"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List likeness sources",
	Long:  `Shows the sources contestant pictures can be drawn from. Pick one with display.skin in the config.`,
	Args:  cobra.NoArgs,
	Run:   runSkins,
}

func runSkins(_ *cobra.Command, _ []string) {
	skins := registry.List()
	if len(skins) == 0 {
		fmt.Println("No skins available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, s := range skins {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range skins {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}
}
