package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	shared "dayadmin/internal/config"
)

const (
	defaultConfigDir = ".dayadmin"
	defaultDataFile  = "dayadmin.db"
	defaultKeyFile   = "session.key"
	defaultTokenFile = "token"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	ConfigDir string `mapstructure:"config_dir"`
	DataPath  string `mapstructure:"data_path"`
	KeyPath   string `mapstructure:"key_path"`
	TokenPath string `mapstructure:"token_path"`
	Remote    shared.Remote
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	shared.LoadEnv()

	viper.AutomaticEnv()

	shared.SetRemoteDefaults()
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("создание директории конфигурации: %w", err)
	}

	remote, err := shared.LoadRemote()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:       viper.GetString("APP_ENV"),
		ConfigDir: configDir,
		DataPath:  pathOr(viper.GetString("DATA_PATH"), configDir, defaultDataFile),
		KeyPath:   pathOr(viper.GetString("KEY_PATH"), configDir, defaultKeyFile),
		TokenPath: pathOr(viper.GetString("TOKEN_PATH"), configDir, defaultTokenFile),
		Remote:    remote,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func pathOr(value, dir, file string) string {
	if value != "" {
		return value
	}
	return filepath.Join(dir, file)
}

func (c *Config) validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path не может быть пустым")
	}
	if c.KeyPath == "" {
		return fmt.Errorf("key_path не может быть пустым")
	}
	if c.TokenPath == "" {
		return fmt.Errorf("token_path не может быть пустым")
	}
	return c.Remote.Validate()
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == shared.EnvLocal || c.Env == ""
}
