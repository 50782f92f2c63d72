package main

import (
	"fmt"

	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/spf13/cobra"
)

type loginOptions struct {
	email    string
	password string
	apiURL   string
}

func newLoginCmd() *cobra.Command {
	opts := &loginOptions{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in against the backend and print the token",
		Long:  "Authenticate with email and password. The token is printed on the last line so it can be passed to --token.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&opts.password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "Backend base URL (overrides API_URL)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func runLogin(cmd *cobra.Command, opts *loginOptions) error {
	api, err := newAPIClient(opts.apiURL, "")
	if err != nil {
		return err
	}

	resp, err := api.Login(cmd.Context(), types.LoginRequest{Email: opts.email, Password: opts.password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	out := cmd.OutOrStdout()
	observability.NewPrinter(out).PrintUser(&resp.User)
	_, _ = fmt.Fprintln(out, resp.Token)
	return nil
}
