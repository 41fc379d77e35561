package cmd

import (
	"github.com/carlostmj/uway-auth/internal/config"
	"github.com/carlostmj/uway-auth/pkg/logging"
	"github.com/carlostmj/uway-auth/pkg/oauth"
	"github.com/carlostmj/uway-auth/pkg/transport"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newDiscoverCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Show the provider's OpenID configuration and signing keys",
		Long: `Fetch the OpenID Connect discovery document and the JSON Web Key Set
in parallel and print both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd)
			if err != nil {
				return err
			}
			f, err := opts.formatter(cmd, cfg)
			if err != nil {
				return err
			}

			var discovery, jwks transport.Result
			err = opts.withSpinner(cmd, "Fetching provider metadata...", func() error {
				g, ctx := errgroup.WithContext(cmd.Context())
				g.Go(func() error {
					var err error
					discovery, err = client.FetchOpenIDConfiguration(ctx)
					return err
				})
				g.Go(func() error {
					var err error
					jwks, err = client.FetchJWKS(ctx)
					return err
				})
				return g.Wait()
			})
			if err != nil {
				return err
			}

			keys, err := oauth.SummarizeJWKS(jwks)
			if err != nil {
				return err
			}

			if meta, err := oauth.MetadataFromResult(discovery); err != nil {
				logging.Warn("Discover", "Discovery document has unexpected field types: %v", err)
			} else if !meta.SupportsPKCE() {
				logging.Warn("Discover", "Provider does not advertise S256 PKCE support")
			}

			w := cmd.OutOrStdout()
			if cfg.Output == config.OutputJSON {
				return f.FormatData(w, map[string]interface{}{
					"openid_configuration": map[string]interface{}(discovery),
					"keys":                 keys,
				})
			}

			if err := f.FormatData(w, map[string]interface{}(discovery)); err != nil {
				return err
			}
			return f.FormatKeys(w, keys)
		},
	}
}
