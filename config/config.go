package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/corewar/redcode/parser"
)

const DefaultPath = "redcodeConfig.json"

// PathVariable overrides DefaultPath when set.
const PathVariable = "REDCODE_CONFIG"

type Config struct {
	Standard     string `json:"standard"` // "86", "88" or "94"
	CoreSize     int    `json:"coreSize"`
	MaxLength    int    `json:"maxLength"`
	MaxExpansion int    `json:"maxExpansion"`
	Strict       bool   `json:"strict"`  // warnings fail a compilation
	Address      string `json:"address"` // listen address of the TCP language server and the playground
}

func Default() *Config {
	return &Config{
		Standard:     "94",
		CoreSize:     parser.DefaultOptions.CoreSize,
		MaxLength:    parser.DefaultOptions.MaxLength,
		MaxExpansion: parser.DefaultOptions.MaxExpansion,
		Address:      ":2035",
	}
}

var conf *Config

// GetConfig loads the configuration file once. A missing file means defaults.
func GetConfig() *Config {
	if conf == nil {
		path := os.Getenv(PathVariable)
		if path == "" {
			path = DefaultPath
		}

		c, err := Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			c = Default()
		} else if err != nil {
			log.Fatalln("Error loading", path+":", err)
		}
		conf = c
	}

	return conf
}

// Load reads a configuration file. Fields left out keep their defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshalling %s: %w", path, err)
	}
	if _, err := parser.ParseStandard(c.Standard); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Options converts the configuration into parser options.
func (c *Config) Options() parser.Options {
	standard, err := parser.ParseStandard(c.Standard)
	if err != nil {
		standard = parser.DefaultOptions.Standard
	}
	return parser.Options{
		Standard:     standard,
		CoreSize:     c.CoreSize,
		MaxLength:    c.MaxLength,
		MaxExpansion: c.MaxExpansion,
	}
}
