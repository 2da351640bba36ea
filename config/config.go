// Package config loads settings for the rfc4648 command from defaults,
// .env files, an optional YAML or TOML file and the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the command settings
type Config struct {
	// Codec selects the encoding: "base64" or "base32"
	Codec string `yaml:"codec" toml:"codec" env:"RFC4648_CODEC" validate:"oneof=base64 base32"`

	// Wrap is the encoded line width, 0 disables wrapping
	Wrap int `yaml:"wrap" toml:"wrap" env:"RFC4648_WRAP" validate:"gte=0"`

	// Silent suppresses log output while loading
	Silent bool `yaml:"silent" toml:"silent" env:"RFC4648_SILENT"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Codec: "base64",
		Wrap:  76,
	}
}

// Options controls where Load looks for settings
type Options struct {
	// EnvFileName is the name of the env file to search for (default: ".env")
	EnvFileName string

	// StartDir is where the .env search begins (default: working directory)
	StartDir string

	// SkipEnvFiles disables the .env search
	SkipEnvFiles bool

	// File is an optional .yaml, .yml or .toml config file
	File string
}

var validate = validator.New()

// Load builds a Config. Later sources override earlier ones: defaults,
// then File, then environment variables. Variables from .env files are
// loaded into the environment first and never override variables that
// are already set.
func Load(opts *Options) (*Config, error) {
	if opts == nil {
		opts = &Options{}
	}
	cfg := DefaultConfig()

	// Silent may come from the file or the environment, both read later
	quiet := func() bool {
		return cfg.Silent || os.Getenv("RFC4648_SILENT") == "true"
	}

	if !opts.SkipEnvFiles {
		name := opts.EnvFileName
		if name == "" {
			name = ".env"
		}
		start := opts.StartDir
		if start == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			start = wd
		}

		envFiles, err := EnvFilePaths(start, name)
		if err != nil {
			return nil, err
		}
		if len(envFiles) > 0 {
			if err := godotenv.Load(envFiles...); err != nil {
				return nil, fmt.Errorf("failed to load env files: %w", err)
			}
			if !quiet() {
				log.Printf("Loaded %d environment file(s): %v", len(envFiles), envFiles)
			}
		}
	}

	if opts.File != "" {
		if err := cfg.loadFile(opts.File); err != nil {
			return nil, err
		}
		if !quiet() {
			log.Printf("Loaded config file %s", opts.File)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadFile reads a config file, choosing the format by extension
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		err = yaml.Unmarshal(data, c)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// EnvFilePaths returns every file called name in start and its parents,
// nearest first.
func EnvFilePaths(start, name string) ([]string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	var envFiles []string
	for {
		envPath := filepath.Join(dir, name)
		if info, err := os.Stat(envPath); err == nil && !info.IsDir() {
			envFiles = append(envFiles, envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return envFiles, nil
}
