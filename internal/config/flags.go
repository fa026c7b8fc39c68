package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagConfig names the flag holding an explicit config file path.
const FlagConfig = "config"

// flagKeys maps command-line flags onto setting keys.
var flagKeys = []struct {
	flag, key, usage string
}{
	{"source", KeySourcePath, "data file path or glob (newest match wins)"},
	{"source-kind", KeySourceKind, "data source kind: file, http, s3 or postgres"},
	{"source-url", KeySourceURL, "remote sheet URL for the http source"},
	{"source-format", KeySourceFormat, "http payload format: csv or sheets-json"},
	{"s3-bucket", KeyS3Bucket, "bucket for the s3 source"},
	{"s3-key", KeyS3Key, "object key for the s3 source"},
	{"pg-dsn", KeyPostgresDSN, "connection string for the postgres source"},
	{"pg-table", KeyPostgresTable, "table for the postgres source"},
	{"staff-policy", KeyStaffPolicy, "blank staff becomes: unspecified or manager_required"},
	{"log-file", KeyLogFile, "write JSON logs to this file"},
	{"log-level", KeyLogLevel, "log level: debug, info, warn or error"},
	{"metrics-addr", KeyMetricsAddr, "serve Prometheus metrics on this address"},
}

// RegisterFlags defines the configuration flags on fs. Flag defaults are
// empty; unset flags never shadow file or environment values.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file (default .recruitdash/config.yaml or $HOME/.recruitdash/config.yaml)")
	for _, f := range flagKeys {
		fs.String(f.flag, "", f.usage)
	}
}

// BindFlags makes flags registered by RegisterFlags override v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, f := range flagKeys {
		pf := fs.Lookup(f.flag)
		if pf == nil {
			continue
		}
		if err := v.BindPFlag(f.key, pf); err != nil {
			return fmt.Errorf("binding --%s: %w", f.flag, err)
		}
	}
	return nil
}

// FromFlags resolves configuration with fs taking precedence over the
// environment, the config file and the defaults.
func FromFlags(fs *pflag.FlagSet) (Config, error) {
	v := New()
	if err := BindFlags(v, fs); err != nil {
		return Config{}, err
	}
	path, err := fs.GetString(FlagConfig)
	if err != nil {
		path = ""
	}
	if err := ReadFile(v, path); err != nil {
		return Config{}, err
	}
	return Resolve(v)
}
