package cmd

import (
	"fmt"

	"github.com/carlostmj/uway-auth/internal/config"
	"github.com/carlostmj/uway-auth/pkg/logging"
	"github.com/carlostmj/uway-auth/pkg/oauth"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type authorizeOptions struct {
	redirectURI string
	scopes      []string
	state       string
	noPKCE      bool
}

func newAuthorizeCmd(opts *rootOptions) *cobra.Command {
	a := &authorizeOptions{}

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Build the authorization URL to open in a browser",
		Long: `Build the authorization code flow URL for the configured client.

A random state and a PKCE pair are generated unless --state or --no-pkce is
given. Keep the printed code verifier: "uway-auth token code" needs it to
redeem the code returned to the redirect URI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorize(cmd, opts, a)
		},
	}

	cmd.Flags().StringVar(&a.redirectURI, "redirect-uri", "", "redirect URI registered for the client (default from config)")
	cmd.Flags().StringSliceVar(&a.scopes, "scope", nil, "requested scopes, comma separated or repeated (default from config)")
	cmd.Flags().StringVar(&a.state, "state", "", "opaque state value (default random)")
	cmd.Flags().BoolVar(&a.noPKCE, "no-pkce", false, "do not add a PKCE challenge")

	return cmd
}

func runAuthorize(cmd *cobra.Command, opts *rootOptions, a *authorizeOptions) error {
	client, cfg, err := opts.newClient(cmd)
	if err != nil {
		return err
	}
	f, err := opts.formatter(cmd, cfg)
	if err != nil {
		return err
	}

	req := oauth.AuthorizationRequest{
		RedirectURI: firstNonEmpty(a.redirectURI, cfg.RedirectURI),
		Scopes:      cfg.Scopes,
		State:       a.state,
	}
	if cmd.Flags().Changed("scope") {
		req.Scopes = a.scopes
	}
	if req.State == "" {
		if req.State, err = oauth.GenerateState(); err != nil {
			return err
		}
	}

	var pair oauth.PKCEPair
	if !a.noPKCE {
		pair = oauth.GeneratePKCE()
		req = req.WithPKCE(pair)
	}

	authURL := client.AuthorizationURL(req)
	logging.Debug("Authorize", "Built authorization URL for redirect %s", req.RedirectURI)

	result := map[string]interface{}{
		"authorization_url": authURL,
		"state":             req.State,
	}
	if pair.Verifier != "" {
		result["code_verifier"] = pair.Verifier
	}

	if cfg.Output == config.OutputJSON {
		return f.FormatData(cmd.OutOrStdout(), result)
	}

	// URLs are too long for a table cell.
	w := cmd.OutOrStdout()
	color := f.GetOptions().Color
	fmt.Fprintf(w, "%s\n  %s\n", label(color, "Authorization URL:"), authURL)
	fmt.Fprintf(w, "%s %s\n", label(color, "State:"), req.State)
	if pair.Verifier != "" {
		fmt.Fprintf(w, "%s %s\n", label(color, "Code verifier:"), pair.Verifier)
	}
	return nil
}

func label(color bool, s string) string {
	if !color {
		return s
	}
	return text.FgHiCyan.Sprint(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
