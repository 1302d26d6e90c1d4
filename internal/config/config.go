package config

import (
	"fmt"
	"os"

	"landmark-gallery/internal/imagestore"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port             string `env:"PORT" envDefault:"5050"`
	AssetsDir        string `env:"ASSETS_DIR"`
	LandmarkResource string `env:"LANDMARK_RESOURCE" envDefault:"landmarkData.json"`

	ImageScale         int   `env:"IMAGE_SCALE" envDefault:"2"`
	JPEGQuality        int   `env:"JPEG_QUALITY" envDefault:"90"`
	ImageSizes         []int `env:"IMAGE_SIZES" envSeparator:","`
	WarmSizes          []int `env:"WARM_SIZES" envSeparator:","`
	PlaceholderOnError bool  `env:"PLACEHOLDER_ON_ERROR" envDefault:"false"`

	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"600"` // -1 disables the limit
	AllowedOrigins     []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// Load reads .env (when present) into the process environment and parses
// the result into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ImageScale < 1 || c.ImageScale > imagestore.MaxScaleFactor {
		return fmt.Errorf("IMAGE_SCALE must be within 1..%d, got %d", imagestore.MaxScaleFactor, c.ImageScale)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("JPEG_QUALITY must be within 1..100, got %d", c.JPEGQuality)
	}
	for _, size := range c.ImageSizes {
		if size <= 0 || size > imagestore.MaxSize {
			return fmt.Errorf("IMAGE_SIZES entries must be within 1..%d, got %d", imagestore.MaxSize, size)
		}
	}
	for _, size := range c.WarmSizes {
		if size <= 0 || size > imagestore.MaxSize {
			return fmt.Errorf("WARM_SIZES entries must be within 1..%d, got %d", imagestore.MaxSize, size)
		}
	}
	if c.RateLimitPerMinute < -1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be -1 or greater, got %d", c.RateLimitPerMinute)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// ServedImageSizes lists the sizes the image route accepts besides the view
// sizes: IMAGE_SIZES plus WARM_SIZES.
func (c *Config) ServedImageSizes() []int {
	sizes := make([]int, 0, len(c.ImageSizes)+len(c.WarmSizes))
	sizes = append(sizes, c.ImageSizes...)
	return append(sizes, c.WarmSizes...)
}
