package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"branchsite/carousel"
	"branchsite/catalog"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Newsletter NewsletterConfig `mapstructure:"newsletter"`
	Carousel   CarouselConfig   `mapstructure:"carousel"`
	Site       SiteConfig       `mapstructure:"site"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CatalogConfig selects where events come from and how their status is read.
type CatalogConfig struct {
	File       string `mapstructure:"file"`
	StatusMode string `mapstructure:"status_mode"`
	Timezone   string `mapstructure:"timezone"`
}

// MongoConfig is optional; an empty URI skips Mongo.
type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type NewsletterConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Secret   string        `mapstructure:"secret"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type CarouselConfig struct {
	SettleDelay      time.Duration `mapstructure:"settle_delay"`
	AutoplayInterval time.Duration `mapstructure:"autoplay_interval"`
	ResumeDelay      time.Duration `mapstructure:"resume_delay"`
	SwipeThreshold   float64       `mapstructure:"swipe_threshold"`
	StickyPause      bool          `mapstructure:"sticky_pause"`
}

// SiteConfig holds the homepage figures the catalog cannot derive.
type SiteConfig struct {
	Members     int `mapstructure:"members"`
	FoundedYear int `mapstructure:"founded_year"`
}

// Load reads config.yaml from . or ./config when present, then the
// environment (.env included). server.port maps to SERVER_PORT.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")

	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.status_mode", catalog.StatusDerived.String())
	v.SetDefault("catalog.timezone", "Local")

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "branchsite")
	v.SetDefault("mongo.collection", "events")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("cache.ttl", 30*time.Second)

	v.SetDefault("newsletter.endpoint", "")
	v.SetDefault("newsletter.secret", "")
	v.SetDefault("newsletter.timeout", 5*time.Second)

	v.SetDefault("carousel.settle_delay", carousel.DefaultSettleDelay)
	v.SetDefault("carousel.autoplay_interval", carousel.DefaultAutoplayInterval)
	v.SetDefault("carousel.resume_delay", carousel.DefaultResumeDelay)
	v.SetDefault("carousel.swipe_threshold", carousel.DefaultSwipeThreshold)
	v.SetDefault("carousel.sticky_pause", true)

	v.SetDefault("site.members", 150)
	v.SetDefault("site.founded_year", 2020)
}

func (c *Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Catalog.StatusMode)) {
	case catalog.StatusDerived.String(), catalog.StatusStored.String():
	default:
		return fmt.Errorf("catalog.status_mode: unknown mode %q", c.Catalog.StatusMode)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl: must not be negative")
	}
	if c.Site.Members < 0 {
		return fmt.Errorf("site.members: must not be negative")
	}
	return nil
}

// Location is the time zone used to decide which day "today" is.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Catalog.Timezone)
	if err != nil {
		return nil, fmt.Errorf("catalog.timezone: %w", err)
	}
	return loc, nil
}

// StatusMode returns the parsed catalog status mode.
func (c *Config) StatusMode() catalog.StatusMode {
	return catalog.ParseStatusMode(c.Catalog.StatusMode)
}

func (c *Config) CarouselConfig() carousel.Config {
	return carousel.Config{
		SettleDelay:      c.Carousel.SettleDelay,
		AutoplayInterval: c.Carousel.AutoplayInterval,
		ResumeDelay:      c.Carousel.ResumeDelay,
		SwipeThreshold:   c.Carousel.SwipeThreshold,
		StickyPause:      c.Carousel.StickyPause,
	}
}
