package utils

import (
	"os"

	"github.com/google/uuid"
)

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseStringToUUID parses s, returning uuid.Nil for empty or invalid input.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// IsValidUUID - lightweight UUID format check for path parameters
func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
