package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/mycontacts/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   HMAC secret key for access tokens
//	-g string   hash algorithm ("sha256" or "argon2id")
//	-x string   hash salt (argon2id only)
//	-m int      minimum password length
//	-t int      access token validity, minutes
//	-l string   log backend ("slog" or "zap")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-g", "-x", "-m", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.HashAlgorithm, "g", config.HashAlgorithm, "hash algorithm")
	fs.StringVar(&config.HashSalt, "x", config.HashSalt, "hash salt")
	fs.IntVar(&config.PasswordMinLength, "m", config.PasswordMinLength, "minimum password length")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
