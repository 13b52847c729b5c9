package config

import (
	"fmt"
	"os"
)

type Config struct {
	JWTSecret  string
	ServerPort string

	// Bootstrap admin credential. The admin identity is synthetic: it is not
	// part of the signup registry and cannot be created through /auth/register.
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin123@gmail.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
