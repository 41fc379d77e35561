// Package logging provides the structured logger of the uway-auth command
// line tool.
//
// It is a thin layer over log/slog that tags every entry with a subsystem
// and filters by level at the handler.
//
// # Log Levels
//   - **Debug**: request/response diagnostics (enabled by --debug)
//   - **Warn**: recoverable problems, such as a client secret that is missing
//
// Info and Error are accepted as config levels but have no helper: command
// failures are returned as errors and printed once by the root command.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Debug("Config", "Loaded configuration from %s", path)
//	logging.Warn("Token", "No client secret configured")
//
// Library packages do not call these functions. They accept a *slog.Logger
// option instead, and the CLI passes logging.Logger(subsystem):
//
//	client, err := uwayauth.New(cfg, uwayauth.WithLogger(logging.Logger("Client")))
//
// # Subsystems
//
//   - **Bootstrap**: command startup
//   - **Config**: configuration loading and validation
//   - **Client**: provider calls made through pkg/uwayauth
//
// Credentials are never passed to the logger directly. Wrap them in
// oauth.RedactedToken first.
package logging
