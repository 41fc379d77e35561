package cmd

import (
	"context"

	"github.com/carlostmj/uway-auth/pkg/transport"
	"github.com/carlostmj/uway-auth/pkg/uwayauth"

	"github.com/spf13/cobra"
)

func newAppsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "Inspect the application an access token was issued to",
	}

	cmd.AddCommand(newAppsSubCmd(opts, "info", "Show the application record",
		"Fetching application...", (*uwayauth.Client).FetchAppInfo))
	cmd.AddCommand(newAppsSubCmd(opts, "scopes", "List the scopes granted to the application",
		"Fetching scopes...", (*uwayauth.Client).FetchAppScopes))

	return cmd
}

type appsFetcher func(c *uwayauth.Client, ctx context.Context, accessToken string) (transport.Result, error)

func newAppsSubCmd(opts *rootOptions, use, short, progress string, fetch appsFetcher) *cobra.Command {
	var accessToken string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			var result transport.Result
			err = opts.withSpinner(cmd, progress, func() error {
				result, err = fetch(client, cmd.Context(), accessToken)
				return err
			})
			if err != nil {
				return err
			}
			return opts.printResult(cmd, cfg, result)
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "access token issued to the application")
	_ = cmd.MarkFlagRequired("access-token")

	return cmd
}
