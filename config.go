package d2d

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFormat is the encoding of a configuration file.
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
)

// ErrUnknownConfigFormat is returned for configuration files that are
// neither YAML nor TOML.
var ErrUnknownConfigFormat = errors.New("d2d: unknown config format")

// Config is a serializable description of a factory and its default render
// target. Empty fields keep their defaults.
//
// Example config.yaml:
//
//	library: software
//	factory_type: multi-threaded
//	debug_level: warning
//	render_target:
//	  type: software
//	  format: rgba8
//	  alpha_mode: premultiplied
//	  dpi: 144
type Config struct {
	Library      string             `yaml:"library" toml:"library"`
	FactoryType  string             `yaml:"factory_type" toml:"factory_type"`
	DebugLevel   string             `yaml:"debug_level" toml:"debug_level"`
	RenderTarget RenderTargetConfig `yaml:"render_target" toml:"render_target"`
}

// RenderTargetConfig describes RenderTargetProperties.
type RenderTargetConfig struct {
	Type      string  `yaml:"type" toml:"type"`
	Format    string  `yaml:"format" toml:"format"`
	AlphaMode string  `yaml:"alpha_mode" toml:"alpha_mode"`
	Dpi       float32 `yaml:"dpi" toml:"dpi"`
}

var (
	factoryTypeNames = map[string]FactoryType{
		"single-threaded": FactoryTypeSingleThreaded,
		"multi-threaded":  FactoryTypeMultiThreaded,
	}
	debugLevelNames = map[string]DebugLevel{
		"none":        DebugLevelNone,
		"error":       DebugLevelError,
		"warning":     DebugLevelWarning,
		"information": DebugLevelInformation,
	}
	renderTargetTypeNames = map[string]RenderTargetType{
		"default":  RenderTargetTypeDefault,
		"software": RenderTargetTypeSoftware,
		"hardware": RenderTargetTypeHardware,
	}
	formatNames = map[string]Format{
		"unknown": FormatUnknown,
		"bgra8":   FormatB8G8R8A8Unorm,
		"rgba8":   FormatR8G8B8A8Unorm,
		"a8":      FormatA8Unorm,
	}
	alphaModeNames = map[string]AlphaMode{
		"unknown":       AlphaModeUnknown,
		"premultiplied": AlphaModePremultiplied,
		"straight":      AlphaModeStraight,
		"ignore":        AlphaModeIgnore,
	}
)

// lookup resolves a configuration name. Names are case-insensitive; an
// empty name yields the zero value.
func lookup[T any](names map[string]T, field, name string) (T, error) {
	var zero T
	if name == "" {
		return zero, nil
	}
	v, ok := names[strings.ToLower(name)]
	if !ok {
		return zero, invalidField("Config", field, fmt.Sprintf("unknown value %q", name))
	}
	return v, nil
}

// LoadConfig reads a configuration file. The format is chosen by extension:
// .yaml and .yml for YAML, .toml for TOML.
func LoadConfig(path string) (*Config, error) {
	var format ConfigFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = ConfigYAML
	case ".toml":
		format = ConfigTOML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("d2d: load config: %w", err)
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// ParseConfig decodes a configuration. Unknown keys are rejected.
func ParseConfig(data []byte, format ConfigFormat) (*Config, error) {
	var cfg Config
	switch format {
	case ConfigYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("d2d: parse yaml config: %w", err)
		}
	case ConfigTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("d2d: parse toml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, format)
	}
	return &cfg, nil
}

// FactoryOptions returns the options NewFactory needs to build the
// configured factory.
func (c *Config) FactoryOptions() ([]FactoryOption, error) {
	var opts []FactoryOption
	if c.Library != "" {
		opts = append(opts, WithLibrary(c.Library))
	}
	typ, err := lookup(factoryTypeNames, "FactoryType", c.FactoryType)
	if err != nil {
		return nil, err
	}
	level, err := lookup(debugLevelNames, "DebugLevel", c.DebugLevel)
	if err != nil {
		return nil, err
	}
	return append(opts, WithFactoryType(typ), WithDebugLevel(level)), nil
}

// RenderTargetProperties returns the configured render target properties.
// A zero Dpi keeps the factory's desktop DPI.
func (c *Config) RenderTargetProperties() (RenderTargetProperties, error) {
	rc := c.RenderTarget
	props := DefaultRenderTargetProperties()
	var err error
	if props.Type, err = lookup(renderTargetTypeNames, "RenderTarget.Type", rc.Type); err != nil {
		return RenderTargetProperties{}, err
	}
	if props.PixelFormat.Format, err = lookup(formatNames, "RenderTarget.Format", rc.Format); err != nil {
		return RenderTargetProperties{}, err
	}
	if props.PixelFormat.AlphaMode, err = lookup(alphaModeNames, "RenderTarget.AlphaMode", rc.AlphaMode); err != nil {
		return RenderTargetProperties{}, err
	}
	if !finite(rc.Dpi) || rc.Dpi < 0 {
		return RenderTargetProperties{}, invalidField("Config", "RenderTarget.Dpi", "must be finite and non-negative")
	}
	props.DpiX, props.DpiY = rc.Dpi, rc.Dpi
	return props, nil
}
