package main

import (
	"fmt"

	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/spf13/cobra"
)

type profileOptions struct {
	token  string
	apiURL string
}

func newProfileCmd() *cobra.Command {
	opts := &profileOptions{}
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the stored profile as section summaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfile(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.token, "token", "", "Bearer token from the login command (required)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "Backend base URL (overrides API_URL)")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func runProfile(cmd *cobra.Command, opts *profileOptions) error {
	api, err := newAPIClient(opts.apiURL, opts.token)
	if err != nil {
		return err
	}

	resp, err := api.FetchProfile(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	snap := profile.SnapshotFrom(resp)
	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	printer.PrintUser(&snap.User)
	printer.PrintProfile(snap.Cards())
	if !resp.Completed {
		_, _ = fmt.Fprintln(out, "Onboarding not completed yet.")
	}
	return nil
}
