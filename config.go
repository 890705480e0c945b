package snowflow

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails.
var ErrConfigValidation = errors.New("configuration validation failed")

// Config is the on-disk configuration for the translator CLI and HTTP
// server. It is intentionally small: the translation core itself takes no
// configuration beyond the Schema Context passed to translator.New.
type Config struct {
	Dialect      string       `yaml:"dialect"`
	ContextFile  string       `yaml:"context_file"`
	Cortex       CortexConfig `yaml:"cortex"`
	ListenAddr   string       `yaml:"listen_addr"`
}

// CortexConfig configures the optional LLM-enhancement hook (Snowflake Cortex).
type CortexConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"-"` // populated from env, never serialized
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Dialect:    string(DialectSnowflake),
		ListenAddr: ":8080",
	}
}

// LoadConfig reads a YAML configuration file and overlays environment
// variables loaded via godotenv (if a .env file is present in the working
// directory; its absence is not an error).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	_ = godotenv.Load() // best effort; missing .env is normal in production

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrConfigValidation, path, err)
		}
	}

	if key := os.Getenv("SNOWFLOW_CORTEX_API_KEY"); key != "" {
		cfg.Cortex.APIKey = key
	}

	if endpoint := os.Getenv("SNOWFLOW_CORTEX_ENDPOINT"); endpoint != "" {
		cfg.Cortex.Endpoint = endpoint
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	return cfg, nil
}
