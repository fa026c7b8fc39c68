// Package config loads dashboard settings from a YAML file and RECRUITDASH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/source"
)

// EnvPrefix is prepended to every environment override, e.g. RECRUITDASH_SOURCE_PATH.
const EnvPrefix = "RECRUITDASH"

// Setting keys.
const (
	KeySourceKind    = "source.kind"
	KeySourcePath    = "source.path"
	KeySourceURL     = "source.url"
	KeySourceFormat  = "source.format"
	KeyS3Bucket      = "source.s3.bucket"
	KeyS3Key         = "source.s3.key"
	KeyS3Region      = "source.s3.region"
	KeyS3Endpoint    = "source.s3.endpoint"
	KeyS3PathStyle   = "source.s3.path_style"
	KeyPostgresDSN   = "source.postgres.dsn"
	KeyPostgresTable = "source.postgres.table"
	KeyStaffPolicy   = "normalize.staff_policy"
	KeyNullTokens    = "normalize.null_tokens"
	KeyLogFile       = "log.file"
	KeyLogLevel      = "log.level"
	KeyMetricsAddr   = "metrics.addr"
)

// Config is the resolved configuration.
type Config struct {
	Source      source.Spec
	StaffPolicy importer.StaffPolicy
	NullTokens  []string
	LogFile     string
	LogLevel    zapcore.Level
	MetricsAddr string

	// File is the config file that was read, empty when none was found.
	File string
}

// Normalize returns the importer options for this configuration.
func (c Config) Normalize() importer.Options {
	return importer.Options{StaffPolicy: c.StaffPolicy, NullTokens: c.NullTokens}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySourceKind, string(source.KindFile))
	v.SetDefault(KeySourcePath, "")
	v.SetDefault(KeySourceURL, "")
	v.SetDefault(KeySourceFormat, "")
	v.SetDefault(KeyS3Bucket, "")
	v.SetDefault(KeyS3Key, "")
	v.SetDefault(KeyS3Region, "")
	v.SetDefault(KeyS3Endpoint, "")
	v.SetDefault(KeyS3PathStyle, false)
	v.SetDefault(KeyPostgresDSN, "")
	v.SetDefault(KeyPostgresTable, "recruitment")
	v.SetDefault(KeyStaffPolicy, string(importer.StaffPolicyUnspecified))
	v.SetDefault(KeyNullTokens, importer.DefaultNullTokens)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMetricsAddr, "")
}

// New returns a viper instance with defaults and environment binding but no
// file. Callers bind flags onto it before calling Resolve.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads path, or searches .recruitdash/ and $HOME/.recruitdash/
// for config.yaml when path is empty. A missing searched file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".recruitdash")
		v.AddConfigPath("$HOME/.recruitdash")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads configuration from path (or the default search paths) and the
// environment.
func Load(path string) (Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return Config{}, err
	}
	return Resolve(v)
}

// Resolve converts the raw settings into a validated Config.
func Resolve(v *viper.Viper) (Config, error) {
	policy, err := importer.ParseStaffPolicy(v.GetString(KeyStaffPolicy))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyStaffPolicy, err)
	}
	level, err := zapcore.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	kind := source.Kind(strings.ToLower(v.GetString(KeySourceKind)))
	switch kind {
	case source.KindFile, source.KindHTTP, source.KindS3, source.KindPostgres:
	default:
		return Config{}, fmt.Errorf("%s: unknown source kind %q", KeySourceKind, kind)
	}

	return Config{
		Source: source.Spec{
			Kind:   kind,
			Path:   v.GetString(KeySourcePath),
			URL:    v.GetString(KeySourceURL),
			Format: source.Format(v.GetString(KeySourceFormat)),
			S3: source.S3Config{
				Bucket:    v.GetString(KeyS3Bucket),
				Key:       v.GetString(KeyS3Key),
				Region:    v.GetString(KeyS3Region),
				Endpoint:  v.GetString(KeyS3Endpoint),
				PathStyle: v.GetBool(KeyS3PathStyle),
			},
			Postgres: source.PostgresConfig{
				DSN:   v.GetString(KeyPostgresDSN),
				Table: v.GetString(KeyPostgresTable),
			},
		},
		StaffPolicy: policy,
		NullTokens:  v.GetStringSlice(KeyNullTokens),
		LogFile:     v.GetString(KeyLogFile),
		LogLevel:    level,
		MetricsAddr: v.GetString(KeyMetricsAddr),
		File:        v.ConfigFileUsed(),
	}, nil
}
