package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/carlostmj/uway-auth/internal/config"
	"github.com/carlostmj/uway-auth/internal/formatting"
	"github.com/carlostmj/uway-auth/pkg/logging"
	"github.com/carlostmj/uway-auth/pkg/transport"
	"github.com/carlostmj/uway-auth/pkg/uwayauth"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	configPath   string
	baseURL      string
	clientID     string
	clientSecret string
	timeout      time.Duration
	output       string
	debug        bool
	quiet        bool

	// httpClient replaces the default HTTP client; set by tests.
	httpClient transport.Doer
}

func (o *rootOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default is $HOME/.config/uway-auth/config.yaml)")
	flags.StringVar(&o.baseURL, "base-url", "", "provider base URL, e.g. https://auth.example.com")
	flags.StringVar(&o.clientID, "client-id", "", "OAuth client ID")
	flags.StringVar(&o.clientSecret, "client-secret", "", "OAuth client secret (omit for public clients)")
	flags.DurationVar(&o.timeout, "timeout", 0, "time budget per request (default 15s)")
	flags.StringVarP(&o.output, "output", "o", "", "output format: table or json")
	flags.BoolVar(&o.debug, "debug", false, "enable debug logging")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "suppress logs, progress and decorations")
}

// loadConfig reads the config file, applies flag overrides and initializes
// logging. The result is not validated.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = o.baseURL
	}
	if flags.Changed("client-id") {
		cfg.ClientID = o.clientID
	}
	if flags.Changed("client-secret") {
		secret := o.clientSecret
		cfg.ClientSecret = &secret
	}
	if flags.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if o.debug {
		cfg.LogLevel = "debug"
	}

	o.initLogging(cmd.ErrOrStderr(), cfg)
	return cfg, nil
}

func (o *rootOptions) initLogging(w io.Writer, cfg config.Config) {
	if o.quiet {
		logging.Discard()
		return
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	logging.InitForCLI(level, w)
}

// newClient loads and validates the configuration and builds the SDK client.
func (o *rootOptions) newClient(cmd *cobra.Command) (*uwayauth.Client, config.Config, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, cfg, err
	}

	clientOpts := []uwayauth.Option{
		uwayauth.WithTimeout(cfg.Timeout),
		uwayauth.WithLogger(logging.Logger("uwayauth")),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, uwayauth.WithHTTPClient(o.httpClient))
	}

	client, err := uwayauth.New(cfg.ProviderConfig(), clientOpts...)
	if err != nil {
		return nil, cfg, err
	}

	logging.Debug("CLI", "Using provider %s", client.Config())
	return client, cfg, nil
}

// formatter returns the output formatter selected by cfg.
func (o *rootOptions) formatter(cmd *cobra.Command, cfg config.Config) (formatting.Formatter, error) {
	var format formatting.OutputFormat
	switch cfg.Output {
	case config.OutputTable:
		format = formatting.FormatTable
	case config.OutputJSON:
		format = formatting.FormatJSON
	default:
		return nil, fmt.Errorf("unknown output format %q (use table or json)", cfg.Output)
	}

	return formatting.New(formatting.Options{
		Format: format,
		Quiet:  o.quiet,
		Color:  isTerminal(cmd.OutOrStdout()),
	}), nil
}

// withSpinner runs fn while a spinner is shown on an interactive stderr.
func (o *rootOptions) withSpinner(cmd *cobra.Command, message string, fn func() error) error {
	w := cmd.ErrOrStderr()
	if o.quiet || !isTerminal(w) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()
	err := fn()
	s.Stop()

	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
