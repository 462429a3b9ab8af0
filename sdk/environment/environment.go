// Package environment provides support for env vars, namespaced lookups and
// struct-tag driven configuration loading.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file. An empty path loads
// ./.env, which is the normal local-development case.
func LoadEnv(path string) error {
	if path != "" {
		return godotenv.Load(path)
	}
	return godotenv.Load()
}

// GetEnvOrDefault retrieves an environment variable, returning fallback when
// the variable is not set.
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix joins a namespace prefix and a key with an underscore.
// An empty prefix returns the key unchanged.
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a namespaced environment variable, returning
// fallback when it is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}
