package main

import (
	"github.com/jonathan/skillsync/internal/apiclient"
	"github.com/jonathan/skillsync/internal/config"
)

// newAPIClient builds a backend client from the environment. A non-empty
// apiURL replaces both base URLs.
func newAPIClient(apiURL, token string) (*apiclient.Client, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	opts := apiclient.Options{
		BaseURL:       cfg.APIBase(),
		OnboardingURL: cfg.OnboardingBase(),
		Timeout:       cfg.RequestTimeout(),
	}
	if apiURL != "" {
		opts.BaseURL = apiURL
		opts.OnboardingURL = apiURL
	}
	return apiclient.New(opts).WithToken(token), nil
}
