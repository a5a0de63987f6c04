// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command ziwei is a test CLI for the go-ziwei library. It reads a natal
// chart file and prints the overlay of a time unit.
//
//	docs/ARCHITECTURE § Command Line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree bound to v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}

	rootCmd := &cobra.Command{
		Use:   "ziwei",
		Short: "Zi Wei Dou Shu temporal overlays",
		Long: "ziwei reads a natal chart and reports where the twelve palaces, roaming stars and " +
			"four transformations fall for a decade, year, month or day.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("chart", "", "Natal chart file (.toml, .yaml, .yml or .json)")
	rootCmd.PersistentFlags().String("school", "zhongzhou", "Brightness school (zhongzhou or sanhe)")
	rootCmd.PersistentFlags().String("format", "text", "Output format (text, json or yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("watch", false, "Recompute whenever the chart file changes")

	// Bind flags to viper.
	for _, name := range []string{"chart", "school", "format", "verbose", "watch"} {
		v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Env vars: ZIWEI_CHART, ZIWEI_SCHOOL, etc.
	v.SetEnvPrefix("ZIWEI")
	v.AutomaticEnv()

	// Config file.
	v.SetConfigName(".ziwei")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newNatalCmd(a))
	rootCmd.AddCommand(newDecadeCmd(a))
	rootCmd.AddCommand(newDecadesCmd(a))
	rootCmd.AddCommand(newYearCmd(a))
	rootCmd.AddCommand(newMonthCmd(a))
	rootCmd.AddCommand(newDayCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ziwei version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ziwei %s\n", version)
		},
	}
}
