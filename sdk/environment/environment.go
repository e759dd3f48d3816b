// Package environment provides utilities for managing environment variables
// and configuration loading with support for namespacing and defaults.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the current
// directory. This is typically called at application startup to load local
// development environment variables.
func LoadEnv() error {
	return godotenv.Load()
}

// LoadPath loads environment variables from a .env file at the specified
// path, falling back to the current directory when the path is empty.
func LoadPath(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

// GetEnvOrDefault retrieves an environment variable value, returning a fallback
// value if the variable is not set. This is useful for configuration values
// that have sensible defaults.
//
// Example:
//
//	port := GetEnvOrDefault("PORT", "8080")
//	dbHost := GetEnvOrDefault("DB_HOST", "localhost")
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetNamespaceEnvKey constructs a namespaced environment variable key by
// combining a namespace prefix with the actual key name using an underscore.
// If no namespace is provided, it returns the key unchanged.
//
// Example:
//
//	key := GetNamespaceEnvKey("TASKDECK", "DATABASE_URL")
//	// Returns: "TASKDECK_DATABASE_URL"
func GetNamespaceEnvKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", namespace, key)
}

// GetNamespaceEnvOrDefault retrieves a namespaced environment variable value,
// returning a fallback value if the variable is not set. It combines the
// functionality of GetNamespaceEnvKey and GetEnvOrDefault.
func GetNamespaceEnvOrDefault(namespace, key, fallback string) string {
	if namespace == "" {
		return GetEnvOrDefault(key, fallback)
	}
	return GetEnvOrDefault(fmt.Sprintf("%s_%s", namespace, key), fallback)
}

// GetNamespaceEnvValue retrieves the value of a namespaced environment
// variable, returning an empty string if the variable is not set.
func GetNamespaceEnvValue(namespace, key string) string {
	if namespace == "" {
		return os.Getenv(key)
	}
	return os.Getenv(fmt.Sprintf("%s_%s", namespace, key))
}
