package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	shared "dayadmin/internal/config"
)

const (
	// DefaultSecret годится только для локального запуска
	DefaultSecret = "dayadmin-local-secret"

	defaultRunAddress   = ":8080"
	defaultDatabasePath = "dayadmin-server.db"
	defaultRateLimit    = 120
	defaultShutdown     = 10 * time.Second
)

type Config struct {
	Env    string
	DB     db
	Server server
	Remote shared.Remote
}

type db struct {
	DatabasePath string `mapstructure:"database_path"`
}

type server struct {
	RunAddress      string        `mapstructure:"run_address"`
	SessionSecret   string        `mapstructure:"session_secret"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
	RateLimit       int           `mapstructure:"rate_limit"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

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
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("DATABASE_PATH", defaultDatabasePath)
	viper.SetDefault("SESSION_SECRET", DefaultSecret)
	viper.SetDefault("SECURE_COOKIES", false)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdown)

	remote, err := shared.LoadRemote()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: viper.GetString("APP_ENV"),
		DB: db{
			DatabasePath: viper.GetString("DATABASE_PATH"),
		},
		Server: server{
			RunAddress:      viper.GetString("RUN_ADDRESS"),
			SessionSecret:   viper.GetString("SESSION_SECRET"),
			SecureCookies:   viper.GetBool("SECURE_COOKIES"),
			RateLimit:       viper.GetInt("RATE_LIMIT"),
			ShutdownTimeout: viper.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Remote: remote,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.RunAddress == "" {
		return fmt.Errorf("run_address не может быть пустым")
	}
	if c.DB.DatabasePath == "" {
		return fmt.Errorf("database_path не может быть пустым")
	}
	if c.Server.SessionSecret == "" {
		return fmt.Errorf("session_secret не может быть пустым")
	}
	if c.Env == shared.EnvProd && c.Server.SessionSecret == DefaultSecret {
		return fmt.Errorf("session_secret нужно задать явно в окружении prod")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("rate_limit должен быть больше нуля")
	}
	return c.Remote.Validate()
}
