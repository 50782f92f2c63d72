package main

import (
	"time"

	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/spf13/cobra"
)

type routeOptions struct {
	token    string
	complete bool
}

func newRouteCmd() *cobra.Command {
	opts := &routeOptions{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the landing route for a session",
		Long:  "Print where the front-end sends a browser holding the given token and onboarding flag. Expired tokens count as signed out.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := session.State{OnboardingComplete: opts.complete}
			if !session.TokenExpired(opts.token, time.Now()) {
				st.Token = opts.token
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintRoute(st, session.DecideInitialRoute(st))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.token, "token", "", "Session token; empty means signed out")
	cmd.Flags().BoolVar(&opts.complete, "complete", false, "Onboarding has been completed")
	return cmd
}
