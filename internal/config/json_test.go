package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"secret_key":                     "my_secret_key",
		"hash_algorithm":                 "argon2id",
		"hash_salt":                      "json-salt",
		"password_min_length":            8,
		"access_token_validity_duration": "1m",
		"log_backend":                    "zap",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, "argon2id", cfg.HashAlgorithm)
		assert.Equal(t, "json-salt", cfg.HashSalt)
		assert.Equal(t, 8, cfg.PasswordMinLength)
		assert.Equal(t, 1*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, "zap", cfg.LogBackend)
	})

	t.Run("no config flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			SecretKey:                   "key",
			HashAlgorithm:               "sha256",
			HashSalt:                    "salt",
			PasswordMinLength:           6,
			AccessTokenValidityDuration: 2 * time.Minute,
			LogBackend:                  "slog",
		}
		parseJson(cfg)

		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, "sha256", cfg.HashAlgorithm)
		assert.Equal(t, "salt", cfg.HashSalt)
		assert.Equal(t, 6, cfg.PasswordMinLength)
		assert.Equal(t, 2*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, "slog", cfg.LogBackend)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
