// Package config loads fatls settings from flags, environment variables and
// an optional YAML file.
package config

import (
	stderrors "errors"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/fatls/errors"
	"github.com/jmgilman/go/fatls/fatprint"
	"github.com/jmgilman/go/fatls/minio"
)

// EnvPrefix prefixes every environment variable, e.g. FATLS_STORE_TYPE.
const EnvPrefix = "FATLS"

// Store kinds.
const (
	StoreLocal = "local"
	StoreMinIO = "minio"
)

// DefaultDumpCount is one 512-byte sector.
const DefaultDumpCount = 512

// Config stores all configuration of the application.
type Config struct {
	List     ListConfig  `mapstructure:"list"`
	Dump     DumpConfig  `mapstructure:"dump"`
	Store    StoreConfig `mapstructure:"store"`
	LogLevel string      `mapstructure:"log_level"`
}

// ListConfig selects the listing columns.
type ListConfig struct {
	All       bool `mapstructure:"all"`
	Date      bool `mapstructure:"date"`
	Size      bool `mapstructure:"size"`
	Recursive bool `mapstructure:"recursive"`

	// Hide lists glob patterns of names listed only with All.
	Hide []string `mapstructure:"hide"`
}

// DumpConfig selects hex dump mode and its range.
type DumpConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Offset  uint32 `mapstructure:"offset"`
	Count   int    `mapstructure:"count"`
}

// StoreConfig selects and configures the store.
type StoreConfig struct {
	Type  string      `mapstructure:"type"`
	Root  string      `mapstructure:"root"`
	MinIO MinIOConfig `mapstructure:"minio"`
}

// MinIOConfig holds connection settings for the minio store.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Prefix    string `mapstructure:"prefix"`
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"all":              "list.all",
	"date":             "list.date",
	"size":             "list.size",
	"recursive":        "list.recursive",
	"hide":             "list.hide",
	"dump":             "dump.enabled",
	"offset":           "dump.offset",
	"count":            "dump.count",
	"store":            "store.type",
	"root":             "store.root",
	"minio-endpoint":   "store.minio.endpoint",
	"minio-bucket":     "store.minio.bucket",
	"minio-access-key": "store.minio.access_key",
	"minio-secret-key": "store.minio.secret_key",
	"minio-ssl":        "store.minio.use_ssl",
	"minio-prefix":     "store.minio.prefix",
	"log-level":        "log_level",
}

// Flags returns the command line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.BoolP("all", "a", false, "include hidden entries")
	fs.BoolP("date", "d", false, "print modification timestamps")
	fs.BoolP("size", "s", false, "print sizes")
	fs.BoolP("recursive", "R", false, "list sub-directories")
	fs.StringSlice("hide", nil, "glob patterns of names treated as hidden")

	fs.Bool("dump", false, "hex dump files instead of listing")
	fs.Uint32("offset", 0, "dump start offset")
	fs.Int("count", DefaultDumpCount, "dump byte count")

	fs.String("store", StoreLocal, "store type: local or minio")
	fs.String("root", ".", "local store root directory")
	fs.String("minio-endpoint", "", "minio endpoint (host:port)")
	fs.String("minio-bucket", "", "minio bucket")
	fs.String("minio-access-key", "", "minio access key")
	fs.String("minio-secret-key", "", "minio secret key")
	fs.Bool("minio-ssl", false, "use HTTPS for minio")
	fs.String("minio-prefix", "", "key prefix inside the bucket")

	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("config", "", "config file (default ./fatls.yaml)")

	return fs
}

// Load reads configuration from flags, FATLS_ environment variables and a
// config file, in that order of precedence. A missing default config file is
// not an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("dump.count", DefaultDumpCount)
	v.SetDefault("store.type", StoreLocal)
	v.SetDefault("store.root", ".")
	v.SetDefault("log_level", "warn")

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, errors.CodeInternal, "failed to bind flag %s", name)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fatls")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !stderrors.As(err, &notFound) {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file"),
				"path", configPath,
			)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "unable to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Type {
	case StoreLocal:
		if c.Store.Root == "" {
			return invalid("store.root", "local store needs a root directory")
		}
	case StoreMinIO:
		if c.Store.MinIO.Endpoint == "" || c.Store.MinIO.Bucket == "" {
			return invalid("store.minio", "minio store needs an endpoint and a bucket")
		}
	default:
		return invalid("store.type", "unknown store type "+c.Store.Type)
	}

	if c.Dump.Count < 0 {
		return invalid("dump.count", "dump count must not be negative")
	}

	if _, err := c.Level(); err != nil {
		return invalid("log_level", err.Error())
	}
	return nil
}

func invalid(key, msg string) error {
	return errors.WithContext(errors.New(errors.CodeInvalidConfig, msg), "key", key)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// ListFlags converts the listing switches.
func (c *Config) ListFlags() fatprint.ListFlags {
	var flags fatprint.ListFlags
	if c.List.All {
		flags |= fatprint.ListHidden
	}
	if c.List.Date {
		flags |= fatprint.ListDate
	}
	if c.List.Size {
		flags |= fatprint.ListSize
	}
	if c.List.Recursive {
		flags |= fatprint.ListRecursive
	}
	return flags
}

// MinIO returns the minio store configuration.
func (c *Config) MinIO() minio.Config {
	m := c.Store.MinIO
	return minio.Config{
		Endpoint:  m.Endpoint,
		Bucket:    m.Bucket,
		AccessKey: m.AccessKey,
		SecretKey: m.SecretKey,
		UseSSL:    m.UseSSL,
		Prefix:    m.Prefix,
	}
}
