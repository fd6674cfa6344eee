// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/spectraldecomp/gc-utils/config"
)

var (
	verbose    bool
	configPath string

	// cfg carries the defaults every subcommand falls back to when its
	// flags are left unset.
	cfg = &config.Config{Unit: "km", Format: "decimal"}
)

var rootCmd = &cobra.Command{
	Use:   "gc-utils",
	Short: "Geocaching puzzle toolkit",
	Long: `
gc-utils bundles the small calculations geocache puzzles keep asking for:
coordinate parsing and conversion, distances and projections, triangle and
polygon geometry, classical cipher decoding, and text helpers.
`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})

		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		cfg = loaded
		log.Debug().Str("unit", cfg.Unit).Str("format", cfg.Format).Msg("configuration loaded")

		return nil
	},
}

var Version = "dev"

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
}

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
