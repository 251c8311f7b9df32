package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration of the graphhit command.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Query  QueryConfig  `mapstructure:"query" yaml:"query"`
}

// LoggerConfig configures the zap logger of the command line tool.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`

	// Optional file output, rotated by size.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// QueryConfig holds the defaults of the query command.
type QueryConfig struct {
	Scene   string `mapstructure:"scene" yaml:"scene"`
	Workers int    `mapstructure:"workers" yaml:"workers"`
	Format  string `mapstructure:"format" yaml:"format"`
}

var (
	logFormats    = []string{"console", "json"}
	outputFormats = []string{"text", "json"}
)

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "graphhit")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("query.scene", "scene.yaml")
	v.SetDefault("query.workers", 4)
	v.SetDefault("query.format", "text")
}

// BindEnv lets GRAPHHIT_ prefixed environment variables override every key,
// e.g. GRAPHHIT_QUERY_WORKERS for query.workers.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("GRAPHHIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewConfigFromViper decodes and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if !slices.Contains(logFormats, c.Logger.Format) {
		return fmt.Errorf("%w: logger.format must be one of %v, got %q", ErrInvalidConfig, logFormats, c.Logger.Format)
	}

	if c.Query.Workers <= 0 {
		return fmt.Errorf("%w: query.workers must be positive, got %d", ErrInvalidConfig, c.Query.Workers)
	}

	if !slices.Contains(outputFormats, c.Query.Format) {
		return fmt.Errorf("%w: query.format must be one of %v, got %q", ErrInvalidConfig, outputFormats, c.Query.Format)
	}

	return nil
}
