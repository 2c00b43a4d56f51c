package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid Production", func(c *Config) {}, false},
		{"Missing Port", func(c *Config) { c.Port = "" }, true},
		{"Missing Secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Default Secret In Production", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Short Secret In Production", func(c *Config) {
			c.JWTSecret = "too-short"
		}, true},
		{"Default DB Password In Production", func(c *Config) {
			c.DBPassword = "password"
		}, true},
		{"Empty DB Password In Production", func(c *Config) {
			c.DBPassword = ""
		}, true},
		{"Short Secret In Development", func(c *Config) {
			c.Env = "development"
			c.JWTSecret = "too-short"
		}, false},
		{"Default DB Password In Development", func(c *Config) {
			c.Env = "development"
			c.DBPassword = "password"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "secure-password",
				DBSSLMode:  "require",
				RedisURL:   "localhost:6379",
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProdAlias(t *testing.T) {
	c := &Config{
		Env:        "prod",
		Port:       "8080",
		JWTSecret:  "your-secret-key-change-in-production",
		DBPassword: "secure-password",
	}
	assert.Error(t, c.Validate())
}
