package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mycontacts/internal/flagx"
	"github.com/dmitrijs2005/mycontacts/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading a JSON
// configuration file. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "15m" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	SecretKey                   string         `json:"secret_key"`
	HashAlgorithm               string         `json:"hash_algorithm"`
	HashSalt                    string         `json:"hash_salt"`
	PasswordMinLength           int            `json:"password_min_length"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	LogBackend                  string         `json:"log_backend"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. An unreadable file or
// invalid JSON panics: a broken config file should stop the process early.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.SecretKey = c.SecretKey
	config.HashAlgorithm = c.HashAlgorithm
	config.HashSalt = c.HashSalt
	config.PasswordMinLength = c.PasswordMinLength
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.LogBackend = c.LogBackend
}
