package config

import "os"

// GetEnv reads an environment variable with a fallback default.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Port returns the HTTP listen port.
func Port() string {
	return GetEnv("PORT", "8080")
}

// JWTSecret returns the token signing secret. The demo default keeps the
// service runnable without any environment, matching the mock-data setup.
func JWTSecret() string {
	return GetEnv("JWT_SECRET", "dev-secret-key-change-in-production")
}
