// Package app provides the application initialization and wiring.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dockside/dockside/internal/adapters/out/telemetry"
	"github.com/dockside/dockside/internal/domain"
)

// Config holds the application configuration.
type Config struct {
	Server struct {
		Listen      string `mapstructure:"listen"`
		DataDir     string `mapstructure:"data_dir"`
		AllowRemote bool   `mapstructure:"allow_remote"`
		RateLimit   struct {
			RPS   float64 `mapstructure:"rps"`
			Burst int     `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"server"`

	Engine struct {
		Host              string        `mapstructure:"host"`
		Bootstrap         bool          `mapstructure:"bootstrap"`
		BootstrapAttempts int           `mapstructure:"bootstrap_attempts"`
		BootstrapInterval time.Duration `mapstructure:"bootstrap_interval"`
		MinAPIVersion     string        `mapstructure:"min_api_version"`
	} `mapstructure:"engine"`

	Progress struct {
		Topic  string `mapstructure:"topic"`
		Buffer int    `mapstructure:"buffer"`
	} `mapstructure:"progress"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	System struct {
		GPU       bool          `mapstructure:"gpu"`
		CPUSample time.Duration `mapstructure:"cpu_sample"`
	} `mapstructure:"system"`

	Files struct {
		TempDir string `mapstructure:"temp_dir"`
	} `mapstructure:"files"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// DefaultDataDir returns the default data directory path.
// Uses the user config dir when known, ~/.dockside otherwise.
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "dockside")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".dockside")
	}
	return filepath.Join(os.TempDir(), "dockside")
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: dockside.yaml
// Search paths (in order): current directory, ~/.config/dockside, /etc/dockside
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("dockside")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/dockside")
	v.AddConfigPath("/etc/dockside")
}

// LoadConfig reads .env, the config file and DOCKSIDE_* variables, in that
// order of increasing precedence over the defaults.
func LoadConfig(configPath string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.listen", "127.0.0.1:7861")
	v.SetDefault("server.data_dir", DefaultDataDir())
	v.SetDefault("server.allow_remote", false)
	v.SetDefault("server.rate_limit.rps", 5)
	v.SetDefault("server.rate_limit.burst", 20)
	v.SetDefault("engine.host", "")
	v.SetDefault("engine.bootstrap", true)
	v.SetDefault("engine.bootstrap_attempts", 10)
	v.SetDefault("engine.bootstrap_interval", "1s")
	v.SetDefault("engine.min_api_version", "1.41")
	v.SetDefault("progress.topic", domain.DefaultProgressTopic)
	v.SetDefault("progress.buffer", 64)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("system.gpu", true)
	v.SetDefault("system.cpu_sample", "200ms")
	v.SetDefault("files.temp_dir", "")
	v.SetDefault("telemetry.metrics", true)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("DOCKSIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

func (c Config) validate() error {
	if c.Server.Listen == "" {
		return errors.New("server.listen must not be empty")
	}
	if c.Progress.Topic == "" {
		return errors.New("progress.topic must not be empty")
	}
	if c.Server.RateLimit.RPS > 0 && c.Server.RateLimit.Burst < 1 {
		return fmt.Errorf("server.rate_limit.burst must be at least 1 when rps is set, got %d", c.Server.RateLimit.Burst)
	}
	if c.Engine.BootstrapAttempts < 1 {
		return fmt.Errorf("engine.bootstrap_attempts must be at least 1, got %d", c.Engine.BootstrapAttempts)
	}
	return nil
}

// LogFilePath returns the configured log file path or its default under the
// data directory. Empty when file logging is off.
func (c Config) LogFilePath() string {
	if c.Logging.File.Path != "" {
		return c.Logging.File.Path
	}
	if c.Logging.File.Enabled {
		return filepath.Join(c.Server.DataDir, "logs", "dockside.log")
	}
	return ""
}

// LockDir returns the directory holding the per-name lock files.
func (c Config) LockDir() string {
	return filepath.Join(c.Server.DataDir, "locks")
}
