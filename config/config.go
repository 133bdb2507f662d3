// Package config loads yomiage settings from defaults, an optional YAML
// file, a .env file, and YOMIAGE_* environment variables, in rising order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment override: YOMIAGE_PIPELINE_WORKERS.
const EnvPrefix = "YOMIAGE"

// Load reads configuration. cfgFile may be empty, in which case
// ./yomiage.yaml and $HOME/.yomiage/yomiage.yaml are tried; a missing file
// is not an error. envFile names a dotenv file loaded first if it exists.
func Load(cfgFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("yomiage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.yomiage")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults are registered per leaf key so AutomaticEnv can see every key.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("punctuation.min_phrase_run", d.Punctuation.MinPhraseRun)
	v.SetDefault("punctuation.min_topic_run", d.Punctuation.MinTopicRun)
	v.SetDefault("analyzer.dict", d.Analyzer.Dict)
	v.SetDefault("analyzer.mode", d.Analyzer.Mode)
	v.SetDefault("analyzer.kanjidic", d.Analyzer.Kanjidic)
	v.SetDefault("dictionary.dir", d.Dictionary.Dir)
	v.SetDefault("pipeline.workers", d.Pipeline.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.trace_dir", d.Log.TraceDir)
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Punctuation.MinPhraseRun <= 0 {
		errs = append(errs, fmt.Errorf("punctuation.min_phrase_run must be positive, got %d", c.Punctuation.MinPhraseRun))
	}
	if c.Punctuation.MinTopicRun <= 0 {
		errs = append(errs, fmt.Errorf("punctuation.min_topic_run must be positive, got %d", c.Punctuation.MinTopicRun))
	}
	if c.Pipeline.Workers <= 0 {
		errs = append(errs, fmt.Errorf("pipeline.workers must be positive, got %d", c.Pipeline.Workers))
	}
	switch strings.ToLower(c.Analyzer.Dict) {
	case "ipa", "uni":
	default:
		errs = append(errs, fmt.Errorf("analyzer.dict must be ipa or uni, got %q", c.Analyzer.Dict))
	}
	switch strings.ToLower(c.Analyzer.Mode) {
	case "normal", "search", "extended":
	default:
		errs = append(errs, fmt.Errorf("analyzer.mode must be normal, search or extended, got %q", c.Analyzer.Mode))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	header := []byte(`# yomiage configuration
# Every key can be overridden with YOMIAGE_<SECTION>_<KEY>, e.g. YOMIAGE_PIPELINE_WORKERS=8

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
