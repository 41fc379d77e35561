package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/carlostmj/uway-auth/internal/config"
	"github.com/carlostmj/uway-auth/pkg/logging"
	"github.com/carlostmj/uway-auth/pkg/oauth"
	"github.com/carlostmj/uway-auth/pkg/transport"

	"github.com/spf13/cobra"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Request tokens from the token endpoint",
		Long: `Request tokens with one of the supported grants:

  code                 redeem an authorization code
  refresh              exchange a refresh token
  client-credentials   authenticate as the client itself`,
	}

	cmd.AddCommand(newTokenCodeCmd(opts))
	cmd.AddCommand(newTokenRefreshCmd(opts))
	cmd.AddCommand(newTokenClientCredentialsCmd(opts))

	return cmd
}

func newTokenCodeCmd(opts *rootOptions) *cobra.Command {
	var code, redirectURI, codeVerifier string

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Redeem an authorization code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			var result transport.Result
			err = opts.withSpinner(cmd, "Redeeming authorization code...", func() error {
				result, err = client.ExchangeAuthorizationCode(cmd.Context(), code,
					firstNonEmpty(redirectURI, cfg.RedirectURI), codeVerifier)
				return err
			})
			if err != nil {
				return err
			}
			return opts.printTokens(cmd, cfg, result)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "authorization code received on the redirect URI")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI used in the authorization request (default from config)")
	cmd.Flags().StringVar(&codeVerifier, "code-verifier", "", "PKCE code verifier printed by authorize")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newTokenRefreshCmd(opts *rootOptions) *cobra.Command {
	var refreshToken string
	var scopes []string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a refresh token for new tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			logging.Debug("Token", "Refreshing with %s", oauth.NewRedactedToken(refreshToken))

			var result transport.Result
			err = opts.withSpinner(cmd, "Refreshing tokens...", func() error {
				result, err = client.RefreshTokens(cmd.Context(), refreshToken, scopes)
				return err
			})
			if err != nil {
				return err
			}
			return opts.printTokens(cmd, cfg, result)
		},
	}

	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "refresh token to exchange")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "narrow the scopes of the new access token")
	_ = cmd.MarkFlagRequired("refresh-token")

	return cmd
}

func newTokenClientCredentialsCmd(opts *rootOptions) *cobra.Command {
	var scopes []string

	cmd := &cobra.Command{
		Use:   "client-credentials",
		Short: "Obtain an access token for the client itself",
		Long: `Run the client credentials grant. The client secret must be configured,
either in the config file or with --client-secret.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd)
			if err != nil {
				return err
			}
			if cfg.ClientSecret == nil {
				logging.Warn("Token", "No client secret configured, the provider will likely reject the request")
			}

			var result transport.Result
			err = opts.withSpinner(cmd, "Requesting client token...", func() error {
				result, err = client.ExchangeClientCredentials(cmd.Context(), scopes)
				return err
			})
			if err != nil {
				return err
			}
			return opts.printTokens(cmd, cfg, result)
		},
	}

	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "requested scopes, comma separated or repeated")

	return cmd
}

// printTokens renders a token response. In table mode the ID token claims,
// if any, follow the response.
func (o *rootOptions) printTokens(cmd *cobra.Command, cfg config.Config, result transport.Result) error {
	f, err := o.formatter(cmd, cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if err := f.FormatData(w, map[string]interface{}(result)); err != nil {
		return err
	}

	tok, err := oauth.TokenFromResult(result)
	if err != nil {
		logging.Warn("Token", "Token response has unexpected field types: %v", err)
		return nil
	}
	if cfg.Output == config.OutputJSON || o.quiet {
		return nil
	}

	color := f.GetOptions().Color
	if expiry := tok.ToOAuth2Token(time.Now()).Expiry; !expiry.IsZero() {
		fmt.Fprintf(w, "\n%s %s\n", label(color, "Access token expires at:"), expiry.UTC().Format(time.RFC3339))
	}

	if tok.IDToken == "" {
		return nil
	}

	claims, err := oauth.ParseIDTokenClaims(tok.IDToken)
	if err != nil {
		logging.Warn("Token", "Could not decode id_token: %v", err)
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", label(color, "ID token claims (signature not verified):"))
	return f.FormatData(w, claimsView(claims))
}

// claimsView flattens the claims shown after a token response.
func claimsView(c *oauth.IDTokenClaims) map[string]interface{} {
	view := map[string]interface{}{}
	add := func(key, value string) {
		if value != "" {
			view[key] = value
		}
	}

	add("sub", c.Subject)
	add("iss", c.Issuer)
	add("aud", strings.Join(c.Audience, " "))
	add("email", c.Email)
	add("name", c.Name)
	if c.ExpiresAt != nil {
		add("exp", c.ExpiresAt.UTC().Format(time.RFC3339))
	}
	if c.IssuedAt != nil {
		add("iat", c.IssuedAt.UTC().Format(time.RFC3339))
	}

	return view
}
