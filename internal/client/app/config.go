package app

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root client configuration. Sources are applied in priority
// order: an explicit path, the CONFIG_PATH environment variable, then plain
// environment variables.
type Config struct {
	Env       string `yaml:"env"        env:"ENV"         env-default:"dev"`
	LogLevel  string `yaml:"log_level"  env:"LOG_LEVEL"   env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"  env-default:"text"`

	API   APIConfig   `yaml:"api"`
	Vault VaultConfig `yaml:"vault"`
}

// APIConfig selects the backend base URL. BaseURL wins outright when set;
// otherwise the platform/dev fields drive resolution.
type APIConfig struct {
	BaseURL    string `yaml:"base_url"    env:"API_BASE_URL"`
	Platform   string `yaml:"platform"    env:"API_PLATFORM"    env-default:"web"`
	Dev        bool   `yaml:"dev"         env:"API_DEV"`
	DebugHost  string `yaml:"debug_host"  env:"API_DEBUG_HOST"`
	LanIP      string `yaml:"lan_ip"      env:"API_LAN_IP"`
	EmulatorIP string `yaml:"emulator_ip" env:"API_EMULATOR_IP"`
}

// VaultConfig configures the credential store. The memory driver keeps
// nothing across restarts and exists for tests and throwaway sessions.
type VaultConfig struct {
	Driver  string `yaml:"driver"   env:"VAULT_DRIVER"   env-default:"sqlite"`
	Path    string `yaml:"path"     env:"VAULT_PATH"     env-default:"eprometna.db"`
	KeyPath string `yaml:"key_path" env:"VAULT_KEY_PATH" env-default:"eprometna.key"`
}

// MustLoad wraps Load and panics on error.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from the explicit path, CONFIG_PATH, or the
// environment, in that order.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		return cfg, cfg.validate()
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Vault.Driver {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("unknown vault driver: %s", c.Vault.Driver)
	}
	return nil
}
