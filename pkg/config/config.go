package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"video-catalog/pkg/variants"
)

// Config holds all configuration for the application
type Config struct {
	Variant           variants.Variant
	VideosPerCategory int
	OutputFile        string
	Seed              int64
	SecretKey         string
	BucketName        string
	Port              string
	CacheTTL          time.Duration
}

// ErrSecretKeyNotSet is returned when the SECRET_KEY environment variable is not set
var ErrSecretKeyNotSet = errors.New("SECRET_KEY environment variable not set")

// ErrBucketNameNotSet is returned when the BUCKET_NAME environment variable is not set
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// ErrUnknownVariant is returned when CATALOG_VARIANT names no registered variant
var ErrUnknownVariant = errors.New("unknown catalog variant")

// ErrInvalidVideosPerCategory is returned when VIDEOS_PER_CATEGORY is not a non-negative integer
var ErrInvalidVideosPerCategory = errors.New("VIDEOS_PER_CATEGORY must be a non-negative integer")

// ErrInvalidSeed is returned when CATALOG_SEED is not an integer
var ErrInvalidSeed = errors.New("CATALOG_SEED must be an integer")

// ErrInvalidCacheTTL is returned when CATALOG_CACHE_TTL is not a duration
var ErrInvalidCacheTTL = errors.New("CATALOG_CACHE_TTL must be a duration")

// Environment variable names
const (
	EnvVariant           = "CATALOG_VARIANT"
	EnvVideosPerCategory = "VIDEOS_PER_CATEGORY"
	EnvOutput            = "CATALOG_OUTPUT"
	EnvSeed              = "CATALOG_SEED"
	EnvSecretKey         = "SECRET_KEY"
	EnvBucketName        = "BUCKET_NAME"
	EnvPort              = "PORT"
	EnvCacheTTL          = "CATALOG_CACHE_TTL"
)

func newViper() *viper.Viper {
	v := viper.New()
	for _, env := range []string{
		EnvVariant, EnvVideosPerCategory, EnvOutput, EnvSeed,
		EnvSecretKey, EnvBucketName, EnvPort, EnvCacheTTL,
	} {
		v.MustBindEnv(env)
	}
	v.SetDefault(EnvVariant, variants.DefaultName)
	v.SetDefault(EnvPort, "8080")
	v.SetDefault(EnvCacheTTL, "5m")
	return v
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	v := newViper()

	name := strings.TrimSpace(v.GetString(EnvVariant))
	variant, ok := variants.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, name, strings.Join(variants.Names(), ", "))
	}

	count := variant.DefaultCount
	if variant.CountFromEnv && v.IsSet(EnvVideosPerCategory) {
		// viper's GetInt swallows parse errors, so parse the raw value
		raw := strings.TrimSpace(v.GetString(EnvVideosPerCategory))
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVideosPerCategory, raw)
		}
		count = n
	}

	var seed int64
	if v.IsSet(EnvSeed) {
		raw := strings.TrimSpace(v.GetString(EnvSeed))
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSeed, raw)
		}
		seed = n
	}

	ttl, err := time.ParseDuration(v.GetString(EnvCacheTTL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCacheTTL, err)
	}

	output := v.GetString(EnvOutput)
	if output == "" {
		output = variant.OutputFile
	}

	return &Config{
		Variant:           variant,
		VideosPerCategory: count,
		OutputFile:        output,
		Seed:              seed,
		SecretKey:         v.GetString(EnvSecretKey),
		BucketName:        v.GetString(EnvBucketName),
		Port:              v.GetString(EnvPort),
		CacheTTL:          ttl,
	}, nil
}

// RequireServer checks the settings needed to serve the catalog
func (c *Config) RequireServer() error {
	if c.SecretKey == "" {
		return ErrSecretKeyNotSet
	}
	return nil
}

// RequireBucket checks the settings needed to upload catalogs
func (c *Config) RequireBucket() error {
	if c.BucketName == "" {
		return ErrBucketNameNotSet
	}
	return nil
}

// EnvCountIgnored reports whether VIDEOS_PER_CATEGORY is set but the variant has a fixed count
func (c *Config) EnvCountIgnored() bool {
	return !c.Variant.CountFromEnv && newViper().IsSet(EnvVideosPerCategory)
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Catalog URL: http://localhost:%s/%s/index\n", c.Port, c.SecretKey)
	fmt.Printf("Feed URL: http://localhost:%s/%s/feed\n", c.Port, c.SecretKey)
	fmt.Printf("Videos URL: http://localhost:%s/videos.json\n", c.Port)
}
