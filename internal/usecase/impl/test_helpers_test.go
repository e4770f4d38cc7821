package impl

import (
	"io"
	"log/slog"

	"clawdeck/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			MaxLength:        72,
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
