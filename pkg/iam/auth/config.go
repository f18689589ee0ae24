package auth

import "time"

// Config groups the token settings
type Config struct {
	JWT JWTConfig
}

type JWTConfig struct {
	SecretKey      string
	Issuer         string
	AccessTokenTTL time.Duration
}

// DefaultConfig returns a config with a one-day access token
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			Issuer:         "recruitboard",
			AccessTokenTTL: 24 * time.Hour,
		},
	}
}
