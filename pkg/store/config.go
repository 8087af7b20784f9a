package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"

	CelebrateYesterday = "yesterday"
	CelebrateLatest    = "latest"
)

// Config is the decoded .dietlog.yaml plus environment overrides.
type Config struct {
	Path        string            `mapstructure:"path" json:"path" validate:"required"`
	Backend     string            `mapstructure:"backend" json:"backend" validate:"required|in:diskv,sqlite"`
	Timezone    string            `mapstructure:"timezone" json:"timezone" validate:"required"`
	Celebration CelebrationConfig `mapstructure:"celebration" json:"celebration"`
	Log         LogConfig         `mapstructure:"log" json:"log"`
	Serve       ServeConfig       `mapstructure:"serve" json:"serve"`
}

type CelebrationConfig struct {
	Mode string `mapstructure:"mode" json:"mode" validate:"required|in:yesterday,latest"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" validate:"required|in:trace,debug,info,warn,error"`
	Format string `mapstructure:"format" json:"format" validate:"required|in:console,json"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr" json:"addr" validate:"required"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("path", "~/.dietlog")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("timezone", "Local")
	v.SetDefault("celebration.mode", CelebrateYesterday)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("serve.addr", ":8080")
}

// LoadConfig reads .dietlog.yaml from $DIETLOG_CONFIG_PATH, the working
// directory or the home directory. Every key can be overridden with a
// DIETLOG_ prefixed variable, e.g. DIETLOG_LOG_LEVEL.
func LoadConfig() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName(".dietlog") // .yaml is implicit
	v.SetEnvPrefix("DIETLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("DIETLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return decodeConfig(v)
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	path, err := homedir.Expand(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("store: expand path %q: %w", cfg.Path, err)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section and that Timezone names a known zone.
func (c *Config) Validate() error {
	for _, section := range []any{c, &c.Celebration, &c.Log, &c.Serve} {
		v := validate.Struct(section)
		if !v.Validate() {
			return fmt.Errorf("store: invalid config: %w", v.Errors)
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// BasePath is the directory (or sqlite DSN) the backend stores into.
func (c *Config) BasePath() string {
	return c.Path
}

// Location resolves Timezone. "Local" and "" mean time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("store: invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
