package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arcade/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the default configuration YAML, or with --effective the
configuration after the search order and --match are applied.

Configs are searched in this order:
  --config <path>
  ~/.rps/configs/rps.yaml
  ./configs/rps.yaml
  built-in defaults

Examples:
  rps config > ~/.rps/configs/rps.yaml
  rps config --effective --match long`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.DefaultYAML())
		fmt.Fprintf(os.Stderr, "# user config path: %s\n", filepath.Join(config.UserConfigDir(), "rps.yaml"))
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
