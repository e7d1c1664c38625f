// Package config loads orftrie settings from YAML, the environment and
// command line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/xiles84/orftrie/logger"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ORFTRIE_"

// Engines accepted by Config.Engine.
const (
	EngineTrie  = "trie"
	EngineArray = "array"
)

var validate = validator.New()

// Config holds all runtime settings.
type Config struct {
	Genome    string        `yaml:"genome"`
	Engine    string        `yaml:"engine" validate:"oneof=trie array"`
	MaxLength int           `yaml:"max_length" validate:"gte=1"`
	Workers   int           `yaml:"workers" validate:"gte=1,lte=256"`
	Listen    string        `yaml:"listen" validate:"required,hostname_port"`
	Log       logger.Config `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Genome:    "genome.txt",
		Engine:    EngineTrie,
		MaxLength: 20000,
		Workers:   4,
		Listen:    "127.0.0.1:8080",
		Log:       logger.DefaultConfig(),
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	if err := cfg.ApplyEnv(EnvPrefix); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from prefix-named environment variables.
func (c *Config) ApplyEnv(prefix string) error {
	c.Genome = getenvStr(prefix+"GENOME", c.Genome)
	c.Engine = getenvStr(prefix+"ENGINE", c.Engine)
	c.Listen = getenvStr(prefix+"LISTEN", c.Listen)
	c.Log.Level = getenvStr(prefix+"LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenvStr(prefix+"LOG_FORMAT", c.Log.Format)
	c.Log.File = getenvStr(prefix+"LOG_FILE", c.Log.File)

	var err error
	if c.MaxLength, err = getenvInt(prefix+"MAX_LENGTH", c.MaxLength); err != nil {
		return err
	}
	if c.Workers, err = getenvInt(prefix+"WORKERS", c.Workers); err != nil {
		return err
	}
	return nil
}

// Validate checks field constraints and reports every failing field.
func (c *Config) Validate() error {
	c.Engine = strings.ToLower(c.Engine)
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getenvStr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
