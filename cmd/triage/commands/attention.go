// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-03-06
// Last Modified: 2026-03-08

package commands

import (
	"github.com/spf13/cobra"
)

// attentionCmd represents the attention command
var attentionCmd = &cobra.Command{
	Use:   "attention",
	Short: "Report only the PRs stalled past the configured thresholds",
	Long: `Report the PRs that need attention: drafts stuck in progress,
change requests without follow-up, approvals awaiting merge, and anything
else stalled past the staleness threshold.

This is an orthogonal view: a PR's attention bucket is independent of its
primary triage bucket. Shares all flags and modes with 'report'.`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(true)
	},
}

func init() {
	rootCmd.AddCommand(attentionCmd)

	attentionCmd.Flags().StringVar(&reportOrg, "org", "", "Organization name (overrides config)")
	attentionCmd.Flags().StringVar(&reportRepo, "repo", "", "Repository name (overrides config)")
	attentionCmd.Flags().StringVar(&reportFile, "file", "", "Path to JSON snapshot of PRs (offline mode)")
	attentionCmd.Flags().StringVar(&reportCodeownersFile, "codeowners-file", "", "Path to a local CODEOWNERS file (offline mode)")
	attentionCmd.Flags().StringVar(&reportFormat, "format", "text", "Output format: json, csv or text")
	attentionCmd.Flags().StringVar(&reportOutFile, "out-file", "", "Output file path (stdout if not specified)")
}
