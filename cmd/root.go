package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/carlostmj/uway-auth/internal/config"
	"github.com/carlostmj/uway-auth/pkg/transport"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments or configuration).
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates the provider rejected the credentials (HTTP 401 or 403).
	ExitCodeAuthRequired = 2
	// ExitCodeUnavailable indicates the provider could not be reached or answered with something other than JSON.
	ExitCodeUnavailable = 3
)

const versionTemplate = `{{printf "uway-auth version %s\n" .Version}}`

// rootCmd represents the base command for the uway-auth application.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "uway-auth",
		Short: "Talk OAuth 2.0 and OpenID Connect to UWAY Auth",
		Long: `uway-auth is a command line client for the UWAY Auth identity provider.

It builds authorization URLs with PKCE, exchanges authorization codes and
refresh tokens, runs the client credentials grant, and calls the provider's
user, discovery and application endpoints.

Settings are read from ~/.config/uway-auth/config.yaml and may be overridden
with the global flags.`,
		// Errors are printed by Execute so configuration problems can show
		// their suggestions.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate(versionTemplate)
	opts.bindFlags(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newPKCECmd(opts))
	cmd.AddCommand(newAuthorizeCmd(opts))
	cmd.AddCommand(newTokenCmd(opts))
	cmd.AddCommand(newUserInfoCmd(opts))
	cmd.AddCommand(newDiscoverCmd(opts))
	cmd.AddCommand(newProfileCmd(opts))
	cmd.AddCommand(newAppsCmd(opts))

	return cmd
}

// SetVersion sets the version for the root command.
// It is called from the main package to inject the version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the root command and exits with a code from getExitCode on
// failure. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	if transport.IsStatus(err, http.StatusUnauthorized) || transport.IsStatus(err, http.StatusForbidden) {
		return ExitCodeAuthRequired
	}

	var transportErr *transport.TransportError
	if errors.As(err, &transportErr) {
		return ExitCodeUnavailable
	}

	var invalidErr *transport.InvalidResponseError
	if errors.As(err, &invalidErr) {
		return ExitCodeUnavailable
	}

	return ExitCodeError
}

// printError writes err to w, with suggestions for configuration errors.
func printError(w io.Writer, err error) {
	var cfgErrs config.ValidationErrors
	if errors.As(err, &cfgErrs) {
		fmt.Fprintf(w, "Error: invalid configuration\n%s\n", cfgErrs.DetailedError())
		return
	}

	var cfgErr config.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(w, "Error: %s\n", cfgErr.DetailedError())
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
}
