// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// DataDir is the root of the static JSON archive, one subdirectory per
	// sport (boys/, girls/).
	DataDir string

	// JWT signing secret for admin tokens (required).
	JWTSecret string

	// AdminPassHash is the bcrypt hash of the admin passphrase (required).
	// Generate with cmd/hashpass.
	AdminPassHash string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "hoops.courtside.app,www.hoops.courtside.app")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DataDir:       v.GetString("DATA_DIR"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		AdminPassHash: v.GetString("ADMIN_PASS_HASH"),
		Debug:         v.GetBool("DEBUG"),
		Port:          v.GetString("PORT"),
		TLSDomains:    splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	cfg.validate()
	return cfg
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

// AdminHash returns the admin passphrase hash as a byte slice.
func (c *Config) AdminHash() []byte {
	return []byte(c.AdminPassHash)
}

func (c *Config) validate() {
	if c.JWTSecret == "" {
		log.Fatal("config: JWT_SECRET must be set")
	}
	if c.AdminPassHash == "" {
		log.Fatal("config: ADMIN_PASS_HASH must be set")
	}
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
