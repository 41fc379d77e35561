package cmd

import (
	"github.com/carlostmj/uway-auth/internal/config"
	"github.com/carlostmj/uway-auth/pkg/transport"

	"github.com/spf13/cobra"
)

func newProfileCmd(opts *rootOptions) *cobra.Command {
	var accessToken, apiKey string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the UWAY Auth user profile",
		Long: `Show the profile of the user behind an access token or a personal API key.
Exactly one of --access-token and --api-key must be given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			var result transport.Result
			err = opts.withSpinner(cmd, "Fetching profile...", func() error {
				if apiKey != "" {
					result, err = client.FetchProfileWithAPIKey(cmd.Context(), apiKey)
				} else {
					result, err = client.FetchProfileWithAccessToken(cmd.Context(), accessToken)
				}
				return err
			})
			if err != nil {
				return err
			}
			return opts.printResult(cmd, cfg, result)
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "access token issued to the user")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "personal API key")
	cmd.MarkFlagsMutuallyExclusive("access-token", "api-key")
	cmd.MarkFlagsOneRequired("access-token", "api-key")

	return cmd
}

// printResult renders a provider object in the configured format.
func (o *rootOptions) printResult(cmd *cobra.Command, cfg config.Config, result transport.Result) error {
	f, err := o.formatter(cmd, cfg)
	if err != nil {
		return err
	}
	return f.FormatData(cmd.OutOrStdout(), map[string]interface{}(result))
}
