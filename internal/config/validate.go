package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive (got %v)", c.Auth.TokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch strings.ToLower(s.Driver) {
	case "local":
		if strings.TrimSpace(s.UploadsDir) == "" {
			return fmt.Errorf("uploads_dir is required for the local driver")
		}
	case "s3":
		if s.S3Bucket == "" {
			return fmt.Errorf("s3_bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want local or s3)", s.Driver)
	}
	if s.MaxUploadSize <= 0 {
		return fmt.Errorf("max_upload_size must be > 0 (got %d)", s.MaxUploadSize)
	}
	return nil
}

func (m *MailConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if m.Host == "" || m.Port <= 0 {
		return fmt.Errorf("host and port are required when mail is enabled")
	}
	if m.From == "" {
		return fmt.Errorf("from is required when mail is enabled")
	}
	if m.AdminRecipient == "" {
		return fmt.Errorf("admin_recipient is required when mail is enabled")
	}
	switch strings.ToLower(m.TLSPolicy) {
	case "mandatory", "opportunistic", "none":
	default:
		return fmt.Errorf("unknown tls_policy %q", m.TLSPolicy)
	}
	return nil
}
