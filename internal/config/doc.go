// Package config loads the configuration of the uway-auth command line tool.
//
// Configuration comes from a single YAML file, ~/.config/uway-auth/config.yaml
// by default (--config selects another). Values absent from the file keep
// their defaults; command line flags are applied on top by the cmd package,
// after which Validate is called.
//
//	baseUrl: https://auth.example.com
//	clientId: 9f1c2d
//	clientSecret: s3cret   # omit for public clients
//	redirectUri: http://127.0.0.1:8765/callback
//	scopes: [openid, profile, email]
//	timeout: 15s
//	logLevel: info
//	output: table
//
// The SDK packages never read this file or any environment variable;
// Config.ProviderConfig hands them an explicit oauth.ProviderConfig.
package config
