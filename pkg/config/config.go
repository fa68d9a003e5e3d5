package config

import (
	"time"

	"github.com/arthur-debert/insightdump/pkg/console"
	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/render"
)

// Config is the complete insightdump configuration
type Config struct {
	Render RenderConfig `koanf:"render"`
	Output OutputConfig `koanf:"output"`
	Server ServerConfig `koanf:"server"`
}

// RenderConfig holds the engine settings
type RenderConfig struct {
	MaxDepth   int    `koanf:"max_depth"`
	Indent     string `koanf:"indent"`
	EscapeText bool   `koanf:"escape_text"`
}

// OutputConfig holds the presentation settings
type OutputConfig struct {
	Format    string `koanf:"format"`
	Inline    bool   `koanf:"inline"`
	AssetBase string `koanf:"asset_base"`
}

// ServerConfig holds the settings of `insight serve`
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if c.Render.MaxDepth < 0 {
		return errors.Newf(errors.ErrConfigValid, "render.max_depth must not be negative, got %d", c.Render.MaxDepth).
			WithDetail("key", "render.max_depth")
	}
	if _, err := console.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("key", "output.format")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrConfigValid, "server.addr must not be empty").
			WithDetail("key", "server.addr")
	}
	return nil
}

// EngineOptions returns the render options described by the config
func (c *Config) EngineOptions() []render.Option {
	return []render.Option{
		render.WithMaxDepth(c.Render.MaxDepth),
		render.WithIndent(c.Render.Indent),
		render.WithEscapeText(c.Render.EscapeText),
	}
}

// DumperOptions returns how dumps include their assets
func (c *Config) DumperOptions() []dumper.Option {
	switch {
	case c.Output.Inline:
		return nil
	case c.Output.AssetBase != "":
		return []dumper.Option{dumper.WithAssetBase(c.Output.AssetBase)}
	default:
		return []dumper.Option{dumper.WithoutAssets()}
	}
}

// Format returns the configured output format
func (c *Config) Format() console.Format {
	f, err := console.ParseFormat(c.Output.Format)
	if err != nil {
		return console.FormatAuto
	}
	return f
}
