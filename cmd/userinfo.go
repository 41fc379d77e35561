package cmd

import (
	"github.com/carlostmj/uway-auth/pkg/transport"

	"github.com/spf13/cobra"
)

func newUserInfoCmd(opts *rootOptions) *cobra.Command {
	var accessToken string

	cmd := &cobra.Command{
		Use:   "userinfo",
		Short: "Show the OpenID Connect claims of an access token's user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			var result transport.Result
			err = opts.withSpinner(cmd, "Fetching user info...", func() error {
				result, err = client.FetchUserInfo(cmd.Context(), accessToken)
				return err
			})
			if err != nil {
				return err
			}
			return opts.printResult(cmd, cfg, result)
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "access token issued to the user")
	_ = cmd.MarkFlagRequired("access-token")

	return cmd
}
