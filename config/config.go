// Package config loads the application configuration from file and environment.
package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var ServiceConfig *Config

type (
	// Config -.
	Config struct {
		App  `yaml:"app"`
		HTTP `yaml:"http"`
		Log  `yaml:"logger"`
		Bus  `yaml:"bus"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Bus -.
	Bus struct {
		CallTimeout time.Duration `yaml:"call_timeout" env:"BUS_CALL_TIMEOUT"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "hwisolation",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8443",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Bus: Bus{
			CallTimeout: 30 * time.Second,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	// set defaults
	ServiceConfig = defaultConfig()

	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, ServiceConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(ServiceConfig); err != nil {
		return nil, err
	}

	return ServiceConfig, nil
}
