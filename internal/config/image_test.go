package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageConfig_DefaultValues(t *testing.T) {
	t.Setenv("PROFILE_IMAGE_MAX_BYTES", "")
	t.Setenv("PROFILE_IMAGE_TYPES", "")

	cfg, err := NewImageConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultImageMaxBytes), cfg.MaxBytes)
	assert.Equal(t, DefaultImageTypes, cfg.AllowedTypes)
}

func TestNewImageConfig_CustomTypes(t *testing.T) {
	t.Setenv("PROFILE_IMAGE_MAX_BYTES", "1024")
	t.Setenv("PROFILE_IMAGE_TYPES", " image/PNG, image/jpeg ,")

	cfg, err := NewImageConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(1024), cfg.MaxBytes)
	assert.Equal(t, []string{"image/png", "image/jpeg"}, cfg.AllowedTypes)
}

func TestNewImageConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		max     string
		types   string
		wantErr string
	}{
		{name: "non-numeric", max: "big", wantErr: "invalid PROFILE_IMAGE_MAX_BYTES"},
		{name: "zero", max: "0", wantErr: "must be positive"},
		{name: "non-image type", max: "10", types: "application/pdf", wantErr: "not an image type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROFILE_IMAGE_MAX_BYTES", tt.max)
			t.Setenv("PROFILE_IMAGE_TYPES", tt.types)

			_, err := NewImageConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
