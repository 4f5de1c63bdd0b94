// Package config handles configuration for the MyContacts CLI, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the application.
//
// Fields:
//   - SecretKey: HMAC secret for signing access tokens (HS256). Do not use
//     test defaults in prod.
//   - HashAlgorithm / HashSalt: credential hasher selection ("sha256" or
//     "argon2id"; the salt is only used by argon2id).
//   - PasswordMinLength: minimum accepted password length.
//   - AccessTokenValidityDuration: lifetime of tokens minted at login.
//   - LogBackend: structured-logging backend ("slog" or "zap").
type Config struct {
	SecretKey                   string
	HashAlgorithm               string
	HashSalt                    string
	PasswordMinLength           int
	AccessTokenValidityDuration time.Duration
	LogBackend                  string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.SecretKey = "secretKey"
	c.HashAlgorithm = "sha256"
	c.HashSalt = "local-dev-salt"
	c.PasswordMinLength = 6
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.LogBackend = "slog"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
