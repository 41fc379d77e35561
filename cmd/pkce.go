package cmd

import (
	"github.com/carlostmj/uway-auth/pkg/oauth"

	"github.com/spf13/cobra"
)

func newPKCECmd(opts *rootOptions) *cobra.Command {
	var verifier string

	cmd := &cobra.Command{
		Use:   "pkce",
		Short: "Generate a PKCE code verifier and S256 challenge",
		Long: `Generate a fresh PKCE pair for the authorization code flow.

With --verifier, the challenge of an existing verifier is computed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			f, err := opts.formatter(cmd, cfg)
			if err != nil {
				return err
			}

			var pair oauth.PKCEPair
			if verifier == "" {
				pair = oauth.GeneratePKCE()
			} else {
				if err := oauth.ValidateVerifier(verifier); err != nil {
					return err
				}
				pair = oauth.PKCEPair{
					Verifier:  verifier,
					Challenge: oauth.ChallengeFromVerifier(verifier),
					Method:    oauth.PKCEMethodS256,
				}
			}

			return f.FormatData(cmd.OutOrStdout(), map[string]interface{}{
				"code_verifier":         pair.Verifier,
				"code_challenge":        pair.Challenge,
				"code_challenge_method": pair.Method,
			})
		},
	}

	cmd.Flags().StringVar(&verifier, "verifier", "", "compute the challenge of this verifier instead of generating a pair")
	return cmd
}
