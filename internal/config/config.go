package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/todo-cli/td/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyAADAppID          = "aadAppId"
	KeyTenant            = "tenant"
	KeyTelemetryDisabled = "telemetry.disabled"
	KeyTelemetryEndpoint = "telemetry.endpoint"
	KeyLogLevel          = "log.level"
	KeyLogFile           = "log.file"
	KeyLogJSON           = "log.json"
	KeyHelpDocsDir       = "help.docsDir"
)

// Application and tenant used when nothing is configured.
const (
	DefaultAADAppID = "123"
	DefaultTenant   = "common"
)

var v = viper.New()

// Dir returns the path to the config directory (~/.td/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.td/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error.
func Load() error {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAADAppID, DefaultAADAppID)
	v.SetDefault(KeyTenant, DefaultTenant)
	v.SetDefault(KeyTelemetryDisabled, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyHelpDocsDir, filepath.Join(Dir(), "docs"))

	// Earlier releases read these from CLIMICROSOFTTODO_*; keep honouring them
	// after the TD_* names.
	for _, key := range []string{KeyAADAppID, KeyTenant} {
		if err := v.BindEnv(key, branding.EnvVar(key), branding.LegacyEnvVar(key)); err != nil {
			return fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// GetBool returns a boolean config value.
func GetBool(key string) bool {
	return v.GetBool(key)
}

// All returns every known key with its effective value, sorted by key.
func All() []KeyValue {
	keys := v.AllKeys()
	sort.Strings(keys)
	out := make([]KeyValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, KeyValue{Key: k, Value: v.GetString(k)})
	}
	return out
}

// KeyValue is one entry returned by All.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Set writes a config key-value pair and saves the config file. Only the
// file's own contents and the new key are written; defaults and environment
// overrides stay out of it.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	v.Set(key, value)
	return nil
}
