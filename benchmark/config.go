package benchmark

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// Trials is how many times each size is measured to smooth out timer noise.
	Trials = 2_000
	// MinSize is the first array size swept.
	MinSize = 0
	// MaxSize is the last array size swept (inclusive).
	MaxSize = 100_000
	// Step is the increment between swept sizes.
	Step = 1_000
	// DefaultOutputDir is where result files are written, relative to the working directory.
	DefaultOutputDir = "../r"
)

// Config describes a single benchmark run.
type Config struct {
	Trials    int    `json:"trials"     yaml:"trials"     mapstructure:"trials"`
	MinSize   int    `json:"min_size"   yaml:"min_size"   mapstructure:"min_size"`
	MaxSize   int    `json:"max_size"   yaml:"max_size"   mapstructure:"max_size"`
	Step      int    `json:"step"       yaml:"step"       mapstructure:"step"`
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
	LogLevel  string `json:"log_level"  yaml:"log_level"  mapstructure:"log_level"`
}

// DefaultConfig returns the built-in run parameters.
func DefaultConfig() Config {
	return Config{
		Trials:    Trials,
		MinSize:   MinSize,
		MaxSize:   MaxSize,
		Step:      Step,
		OutputDir: DefaultOutputDir,
		LogLevel:  "WARN",
	}
}

// Validate reports whether the sweep parameters describe a non-empty, finite sweep.
func (c Config) Validate() error {
	switch {
	case c.Trials <= 0:
		return errors.Errorf("trials must be positive, got %d", c.Trials)
	case c.Step <= 0:
		return errors.Errorf("step must be positive, got %d", c.Step)
	case c.MinSize < 0:
		return errors.Errorf("min size must not be negative, got %d", c.MinSize)
	case c.MaxSize < c.MinSize:
		return errors.Errorf("max size %d is below min size %d", c.MaxSize, c.MinSize)
	}
	return nil
}

// Sizes returns every swept size: MinSize, MinSize+Step, ... up to and including MaxSize.
func (c Config) Sizes() []int {
	if c.Step <= 0 || c.MaxSize < c.MinSize {
		return nil
	}
	sizes := make([]int, 0, (c.MaxSize-c.MinSize)/c.Step+1)
	for size := c.MinSize; ; size += c.Step {
		sizes = append(sizes, size)
		// Compared before adding so sizes near math.MaxInt cannot wrap around.
		if size > c.MaxSize-c.Step {
			break
		}
	}
	return sizes
}

// NewViper returns a viper instance preloaded with the defaults for every config key.
//
// Environment variables are never bound; the only external source is an explicit file.
func NewViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("trials", defaults.Trials)
	v.SetDefault("min_size", defaults.MinSize)
	v.SetDefault("max_size", defaults.MaxSize)
	v.SetDefault("step", defaults.Step)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("log_level", defaults.LogLevel)
	return v
}

// LoadConfig builds the run configuration.
//
// Arguments:
//   - v: The viper instance holding defaults and any bound flags.
//   - filename: Optional YAML/JSON/TOML file. When empty, no file is read.
//
// Returns:
//   - Config: The merged and validated configuration.
//   - error: Error if the file cannot be read or the result is invalid.
func LoadConfig(v *viper.Viper, filename string) (Config, error) {
	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", filename)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return config, nil
}
