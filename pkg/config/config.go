package config

import (
	"fmt"
	"os"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// codespace groups the registered configuration errors
const codespace = "raytracer"

var (
	ErrInvalidScene    = errorsmod.Register(codespace, 2, "invalid scene")
	ErrInvalidImage    = errorsmod.Register(codespace, 3, "invalid image settings")
	ErrInvalidSampling = errorsmod.Register(codespace, 4, "invalid sampling settings")
	ErrInvalidOutput   = errorsmod.Register(codespace, 5, "invalid output settings")
)

// Config represents the render configuration
type Config struct {
	Scene    string         `yaml:"scene" mapstructure:"scene"`
	Seed     int64          `yaml:"seed" mapstructure:"seed"`
	Image    ImageConfig    `yaml:"image" mapstructure:"image"`
	Sampling SamplingConfig `yaml:"sampling" mapstructure:"sampling"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// ImageConfig contains image dimensions. Zero keeps the scene's value.
type ImageConfig struct {
	Width       int     `yaml:"width" mapstructure:"width"`
	AspectRatio float64 `yaml:"aspect_ratio" mapstructure:"aspect_ratio"`
}

// SamplingConfig contains per-pixel sampling limits. Zero keeps the scene's value.
type SamplingConfig struct {
	SamplesPerPixel int `yaml:"samples_per_pixel" mapstructure:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth" mapstructure:"max_depth"`
}

// OutputConfig contains where and how the image is written
type OutputConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Scene: "default",
		Seed:  42,
		Output: OutputConfig{
			Path:   "render.png",
			Format: "png",
		},
	}
}

// Load reads configuration from defaults, the optional yaml file at path and
// RAYTRACER_ environment variables, in increasing priority.
// Flags bound with BindFlags take priority over all of them.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v, DefaultConfig())

	v.SetConfigType("yaml")
	v.SetEnvPrefix("RAYTRACER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("scene", config.Scene)
	v.SetDefault("seed", config.Seed)
	v.SetDefault("image.width", config.Image.Width)
	v.SetDefault("image.aspect_ratio", config.Image.AspectRatio)
	v.SetDefault("sampling.samples_per_pixel", config.Sampling.SamplesPerPixel)
	v.SetDefault("sampling.max_depth", config.Sampling.MaxDepth)
	v.SetDefault("output.path", config.Output.Path)
	v.SetDefault("output.format", config.Output.Format)
}

// BindFlags registers the render flags on fs and binds them to v
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	defaults := DefaultConfig()

	fs.String("scene", defaults.Scene, "Scene to render")
	fs.Int64("seed", defaults.Seed, "Random seed")
	fs.Int("width", 0, "Image width in pixels (0 = scene default)")
	fs.Int("samples", 0, "Samples per pixel (0 = scene default)")
	fs.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.StringP("output", "o", defaults.Output.Path, "Output file")
	fs.String("format", defaults.Output.Format, "Output format: png or ppm")

	bindings := map[string]string{
		"scene":                      "scene",
		"seed":                       "seed",
		"image.width":                "width",
		"sampling.samples_per_pixel": "samples",
		"sampling.max_depth":         "depth",
		"output.path":                "output",
		"output.format":              "format",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Save writes the configuration as yaml
func Save(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration can be rendered
func (c *Config) Validate() error {
	if c.Scene == "" {
		return errorsmod.Wrap(ErrInvalidScene, "scene cannot be empty")
	}
	if c.Image.Width < 0 {
		return errorsmod.Wrapf(ErrInvalidImage, "width must not be negative: %d", c.Image.Width)
	}
	if c.Image.AspectRatio < 0 {
		return errorsmod.Wrapf(ErrInvalidImage, "aspect ratio must not be negative: %g", c.Image.AspectRatio)
	}
	if c.Sampling.SamplesPerPixel < 0 {
		return errorsmod.Wrapf(ErrInvalidSampling, "samples per pixel must not be negative: %d", c.Sampling.SamplesPerPixel)
	}
	if c.Sampling.MaxDepth < 0 {
		return errorsmod.Wrapf(ErrInvalidSampling, "max depth must not be negative: %d", c.Sampling.MaxDepth)
	}
	if c.Output.Path == "" {
		return errorsmod.Wrap(ErrInvalidOutput, "output path cannot be empty")
	}
	switch c.Output.Format {
	case "png", "ppm":
	default:
		return errorsmod.Wrapf(ErrInvalidOutput, "unsupported format: %s", c.Output.Format)
	}
	return nil
}
