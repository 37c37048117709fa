// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-05

// Package commands contains the cobra commands for the triage CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command for the triage CLI.
var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Classify open pull requests into triage buckets",
	Long: `triage analyzes a repository's open pull requests against its
CODEOWNERS rules and activity history, and groups each PR into a triage
bucket (needs review, changes requested, approved, stale, community, ...)
for periodic reporting.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: .github/triage.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
