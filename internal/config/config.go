package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the knobs shared by the trainer, analyzer and api.
type Config struct {
	Eta      float64 `yaml:"eta" toml:"eta" validate:"gte=0"`
	Epochs   int     `yaml:"epochs" toml:"epochs" validate:"gte=0"`
	Features int     `yaml:"features" toml:"features" validate:"gte=0"`
	Seed     uint64  `yaml:"seed" toml:"seed"`

	Data     string  `yaml:"data" toml:"data"`
	Gate     string  `yaml:"gate" toml:"gate" validate:"omitempty,oneof=and or nand nor"`
	Samples  int     `yaml:"samples" toml:"samples" validate:"gte=0"`
	TestFrac float64 `yaml:"test_frac" toml:"test_frac" validate:"gte=0,lt=1"`

	ModelDir  string `yaml:"model_dir" toml:"model_dir"`
	ModelFile string `yaml:"model_file" toml:"model_file" validate:"required"`

	CurveCSV string `yaml:"curve_csv" toml:"curve_csv"`
	CurvePNG string `yaml:"curve_png" toml:"curve_png"`

	Port   string `yaml:"port" toml:"port" validate:"required,numeric"`
	APIKey string `yaml:"api_key" toml:"api_key"`
}

// Overrides carries CLI supplied values. Zero values leave the config
// untouched unless the flag name is listed in Set (eta, epochs, features,
// seed, n, test_frac), so an explicit -eta 0 still applies.
type Overrides struct {
	Eta       float64
	Epochs    int
	Features  int
	Seed      uint64
	Data      string
	Gate      string
	Samples   int
	TestFrac  float64
	ModelDir  string
	ModelFile string

	Set map[string]bool
}

// Default is the two input demo: eta 0.1, 10 epochs, model/ dir.
func Default() *Config {
	return &Config{
		Eta:       0.1,
		Epochs:    10,
		Features:  2,
		Samples:   1000,
		TestFrac:  0.2,
		ModelDir:  "model",
		ModelFile: "perceptron.bin",
		CurveCSV:  "data/training_curve.csv",
		CurvePNG:  "data/training_curve.png",
		Port:      "8080",
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(raw, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv reads MODEL_PATH, PORT and API_KEY.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MODEL_PATH"); v != "" {
		c.ModelDir, c.ModelFile = filepath.Split(v)
		c.ModelDir = filepath.Clean(c.ModelDir)
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.APIKey = v
	}
}

// ApplyOverrides updates c using any non-zero or explicitly set override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Eta > 0 || o.Set["eta"] {
		c.Eta = o.Eta
	}
	if o.Epochs > 0 || o.Set["epochs"] {
		c.Epochs = o.Epochs
	}
	if o.Features > 0 || o.Set["features"] {
		c.Features = o.Features
	}
	if o.Seed != 0 || o.Set["seed"] {
		c.Seed = o.Seed
	}
	if o.Data != "" {
		c.Data = o.Data
	}
	if o.Gate != "" {
		c.Gate = strings.ToLower(o.Gate)
	}
	if o.Samples > 0 || o.Set["n"] {
		c.Samples = o.Samples
	}
	if o.TestFrac > 0 || o.Set["test_frac"] {
		c.TestFrac = o.TestFrac
	}
	if o.ModelDir != "" {
		c.ModelDir = o.ModelDir
	}
	if o.ModelFile != "" {
		c.ModelFile = o.ModelFile
	}
}

// ModelPath is ModelDir/ModelFile.
func (c *Config) ModelPath() string {
	return filepath.Join(c.ModelDir, c.ModelFile)
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
