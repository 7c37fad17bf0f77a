package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/username/school-bells/internal/schedule"
)

const (
	envPrefix = "SCHOOL_BELLS"

	StoreFile  = "file"
	StoreRedis = "redis"
	StoreMongo = "mongo"
)

// Config represents application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Timezone string         `mapstructure:"timezone"`
	Store    StoreConfig    `mapstructure:"store" validate:"required"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Friday   FridayConfig   `mapstructure:"friday"`
	Blob     BlobConfig     `mapstructure:"blob"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// StoreConfig selects the document store the calendar and publication metadata live in
type StoreConfig struct {
	Type  string      `mapstructure:"type" validate:"required,oneof=file redis mongo"`
	Dir   string      `mapstructure:"dir"` // For file type
	Redis RedisConfig `mapstructure:"redis"`
	Mongo MongoConfig `mapstructure:"mongo"`
}

// RedisConfig represents redis document store configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
	Prefix   string `mapstructure:"prefix"`
	TTL      string `mapstructure:"ttl"` // empty keeps documents forever
}

// MongoConfig represents mongo document store configuration
type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	KeyFormat    string `mapstructure:"key_format"`
	CacheTTL     string `mapstructure:"cache_ttl"`
	FallbackFile string `mapstructure:"fallback_file"`
}

// CatalogConfig points at an optional YAML file of extra schedules
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

// FridayConfig overrides the winter Friday boundaries
type FridayConfig struct {
	SchoolStart    int `mapstructure:"school_start" validate:"gte=1,lte=12"`
	SchoolEnd      int `mapstructure:"school_end" validate:"gte=1,lte=12"`
	WinterStart    int `mapstructure:"winter_start" validate:"gte=1,lte=12"`
	WinterEnd      int `mapstructure:"winter_end" validate:"gte=1,lte=12"`
	WinterDayStart int `mapstructure:"winter_day_start" validate:"gte=1,lte=31"`
	WinterDayEnd   int `mapstructure:"winter_day_end" validate:"gte=1,lte=31"`
}

// BlobConfig represents the publication blob store (S3 compatible)
type BlobConfig struct {
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// WatchConfig represents period watcher configuration
type WatchConfig struct {
	Interval string `mapstructure:"interval"`
}

var validate = validator.New()

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.school-bells")
		v.AddConfigPath("/etc/school-bells")
	}

	setDefaults(v)

	// Read environment variables, e.g. SCHOOL_BELLS_STORE_REDIS_ADDR
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key so that AutomaticEnv can override keys absent from the file
func setDefaults(v *viper.Viper) {
	rule := schedule.DefaultFridayRule()

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("timezone", "Local")
	v.SetDefault("store.type", StoreFile)
	v.SetDefault("store.dir", "data")
	v.SetDefault("store.redis.addr", "")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "school-bells:")
	v.SetDefault("store.redis.ttl", "")
	v.SetDefault("store.mongo.uri", "")
	v.SetDefault("store.mongo.database", "school_bells")
	v.SetDefault("store.mongo.collection", "documents")
	v.SetDefault("calendar.key_format", "")
	v.SetDefault("calendar.cache_ttl", "10m")
	v.SetDefault("calendar.fallback_file", "")
	v.SetDefault("catalog.file", "")
	v.SetDefault("friday.school_start", int(rule.SchoolStart))
	v.SetDefault("friday.school_end", int(rule.SchoolEnd))
	v.SetDefault("friday.winter_start", int(rule.WinterStart))
	v.SetDefault("friday.winter_end", int(rule.WinterEnd))
	v.SetDefault("friday.winter_day_start", rule.WinterDayStart)
	v.SetDefault("friday.winter_day_end", rule.WinterDayEnd)
	v.SetDefault("blob.endpoint", "")
	v.SetDefault("blob.access_key", "")
	v.SetDefault("blob.secret_key", "")
	v.SetDefault("blob.bucket", "publications")
	v.SetDefault("blob.use_ssl", false)
	v.SetDefault("watch.interval", "15s")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	switch c.Store.Type {
	case StoreFile:
		if c.Store.Dir == "" {
			return fmt.Errorf("store.dir is required for file type")
		}
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("store.redis.addr is required for redis type")
		}
	case StoreMongo:
		if c.Store.Mongo.URI == "" {
			return fmt.Errorf("store.mongo.uri is required for mongo type")
		}
		if c.Store.Mongo.Database == "" || c.Store.Mongo.Collection == "" {
			return fmt.Errorf("store.mongo.database and store.mongo.collection are required for mongo type")
		}
	}

	if c.Blob.Endpoint != "" && c.Blob.Bucket == "" {
		return fmt.Errorf("blob.bucket is required when blob.endpoint is set")
	}

	if c.Calendar.KeyFormat != "" && strings.Count(c.Calendar.KeyFormat, "%") != 2 {
		return fmt.Errorf("calendar.key_format must take the year and the month, got '%s'", c.Calendar.KeyFormat)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if err := c.Friday.Rule().Validate(); err != nil {
		return err
	}

	return nil
}

// Location returns the school's time zone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", c.Timezone, err)
	}
	return loc, nil
}

// Rule converts the configured boundaries to a schedule.FridayRule
func (f FridayConfig) Rule() schedule.FridayRule {
	return schedule.FridayRule{
		SchoolStart:    time.Month(f.SchoolStart),
		SchoolEnd:      time.Month(f.SchoolEnd),
		WinterStart:    time.Month(f.WinterStart),
		WinterEnd:      time.Month(f.WinterEnd),
		WinterDayStart: f.WinterDayStart,
		WinterDayEnd:   f.WinterDayEnd,
	}
}

// GetCacheTTL returns calendar cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	return parseDuration(c.CacheTTL, 10*time.Minute)
}

// GetTTL returns the expiry of documents written to redis; zero keeps them forever
func (c *RedisConfig) GetTTL() time.Duration {
	return parseDuration(c.TTL, 0)
}

// GetInterval returns the watcher tick interval
func (c *WatchConfig) GetInterval() time.Duration {
	return parseDuration(c.Interval, 15*time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil || duration < 0 {
		return fallback
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Store.Redis.Password = os.ExpandEnv(c.Store.Redis.Password)
	c.Store.Mongo.URI = os.ExpandEnv(c.Store.Mongo.URI)
	c.Blob.AccessKey = os.ExpandEnv(c.Blob.AccessKey)
	c.Blob.SecretKey = os.ExpandEnv(c.Blob.SecretKey)
}
