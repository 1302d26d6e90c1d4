package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "5050", cfg.Port)
	assert.Equal(t, ":5050", cfg.Addr())
	assert.Equal(t, "landmarkData.json", cfg.LandmarkResource)
	assert.Equal(t, 2, cfg.ImageScale)
	assert.Equal(t, 90, cfg.JPEGQuality)
	assert.Empty(t, cfg.WarmSizes)
	assert.False(t, cfg.PlaceholderOnError)
	assert.Equal(t, 600, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("IMAGE_SCALE", "3")
	t.Setenv("WARM_SIZES", "50,250")
	t.Setenv("PLACEHOLDER_ON_ERROR", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 3, cfg.ImageScale)
	assert.Equal(t, []int{50, 250}, cfg.WarmSizes)
	assert.True(t, cfg.PlaceholderOnError)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"IMAGE_SCALE", "0"},
		{"IMAGE_SCALE", "5"},
		{"JPEG_QUALITY", "101"},
		{"IMAGE_SIZES", "40,0"},
		{"IMAGE_SIZES", "2000"},
		{"WARM_SIZES", "50,-1"},
		{"WARM_SIZES", "1025"},
		{"RATE_LIMIT_PER_MINUTE", "-5"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestServedImageSizes(t *testing.T) {
	t.Setenv("IMAGE_SIZES", "40,120")
	t.Setenv("WARM_SIZES", "300")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, []int{40, 120, 300}, cfg.ServedImageSizes())
}

func TestParseTypeError(t *testing.T) {
	t.Setenv("IMAGE_SCALE", "two")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LANDMARK_RESOURCE=other.json\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("LANDMARK_RESOURCE")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.LandmarkResource)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load()
	assert.NoError(t, err)
}
