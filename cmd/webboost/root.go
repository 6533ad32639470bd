// Package main provides the entry point for the WebBoost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for WebBoost.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webboost",
		Short: "Web page quality analyzer",
		Long: `WebBoost analyzes web pages and scores their quality on a 0-100 scale.

It fetches each page, extracts the visible text, and scores nine quality
criteria: readability, informativeness, engagement, uniqueness,
discoverability, ad experience, social integration, layout quality, and
SEO. The weighted overall score comes with per-criterion breakdowns and
prioritized improvement recommendations.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
