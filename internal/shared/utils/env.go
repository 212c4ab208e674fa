package utils

import (
	"os"
	"strings"
)

// GetEnv returns the value of the environment variable key, or fallback
// when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvList splits a comma separated environment variable into its
// trimmed, non-empty parts.
func GetEnvList(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(GetEnv(key, fallback), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
