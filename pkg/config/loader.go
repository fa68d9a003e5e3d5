package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/logging"
)

const (
	// EnvPrefix prefixes the environment variables read as configuration
	EnvPrefix = "INSIGHT_"
	// FileName is the name of the user config file
	FileName = "config.toml"
)

// Options selects the sources Load reads on top of the defaults
type Options struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// Overrides are dotted keys applied last, e.g. "render.max_depth"
	Overrides map[string]interface{}
}

// UserConfigPath returns where the user config file is looked up
func UserConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, logging.AppDirName, FileName)
	}
	return filepath.Join(xdg.ConfigHome, logging.AppDirName, FileName)
}

// envKey maps INSIGHT_RENDER_MAX_DEPTH to render.max_depth
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Load merges every configuration source and decodes the result
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path := opts.Path
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
	} else if candidate := UserConfigPath(); fileExists(candidate) {
		path = candidate
	}
	if path != "" {
		logger.Debug().Str("path", path).Msg("Loading config file")
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration described by the embedded defaults only
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
