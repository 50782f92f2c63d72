// Package main provides the entry point for the SkillSync web front-end.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "skillsync",
		Short:         "SkillSync career guidance front-end",
		Long:          "SkillSync serves the onboarding wizard, dashboard and profile pages, and talks to the SkillSync REST backend on the user's behalf.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newLoginCmd(), newProfileCmd(), newRouteCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
