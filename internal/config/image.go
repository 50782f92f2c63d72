package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultImageMaxBytes caps profile images at 2 MiB.
const DefaultImageMaxBytes = 2 << 20

// DefaultImageTypes are the MIME types accepted for profile images.
var DefaultImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// ImageConfig bounds the profile image that is sent inline as a data-URI.
type ImageConfig struct {
	MaxBytes     int64
	AllowedTypes []string
}

// NewImageConfig creates an image configuration from environment variables.
// It reads PROFILE_IMAGE_MAX_BYTES (default: 2 MiB) and PROFILE_IMAGE_TYPES
// (comma-separated, default: png, jpeg, gif, webp).
func NewImageConfig() (*ImageConfig, error) {
	maxStr := os.Getenv("PROFILE_IMAGE_MAX_BYTES")
	if maxStr == "" {
		maxStr = strconv.Itoa(DefaultImageMaxBytes)
	}

	maxBytes, err := strconv.ParseInt(maxStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_IMAGE_MAX_BYTES: %v", err)
	}

	types := DefaultImageTypes
	if raw := os.Getenv("PROFILE_IMAGE_TYPES"); raw != "" {
		types = nil
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, strings.ToLower(t))
			}
		}
	}

	config := &ImageConfig{
		MaxBytes:     maxBytes,
		AllowedTypes: types,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ImageConfig) normalize() error {
	if c.MaxBytes < 1 {
		return fmt.Errorf("PROFILE_IMAGE_MAX_BYTES must be positive, got: %d", c.MaxBytes)
	}
	if len(c.AllowedTypes) == 0 {
		return fmt.Errorf("PROFILE_IMAGE_TYPES must list at least one type")
	}
	for _, t := range c.AllowedTypes {
		if !strings.HasPrefix(t, "image/") {
			return fmt.Errorf("PROFILE_IMAGE_TYPES entry is not an image type: %s", t)
		}
	}
	return nil
}
