package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BatchConcurrent = "concurrent"
	BatchSequential = "sequential"

	defaultAPIBaseURL     = "https://cervical.praispranav.com"
	defaultRequestTimeout = 30 * time.Second
	defaultPageSize       = 6
	defaultConcurrency    = 4
	defaultTimezone       = "Local"
)

// Remote - общие настройки работы с удаленным API контента
type Remote struct {
	BaseURL        string        `mapstructure:"api_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	PageSize       int           `mapstructure:"page_size"`
	SlideBatch     string        `mapstructure:"slide_batch_policy"`
	EventBatch     string        `mapstructure:"event_batch_policy"`
	Concurrency    int           `mapstructure:"batch_concurrency"`
	Timezone       string        `mapstructure:"timezone"`
	Location       *time.Location
}

// LoadEnv подгружает .env из текущей или родительской директории
func LoadEnv() {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}
}

// SetRemoteDefaults регистрирует значения по умолчанию для секции удаленного API
func SetRemoteDefaults() {
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("API_BASE_URL", defaultAPIBaseURL)
	viper.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)
	viper.SetDefault("SLIDE_BATCH_POLICY", BatchConcurrent)
	viper.SetDefault("EVENT_BATCH_POLICY", BatchSequential)
	viper.SetDefault("BATCH_CONCURRENCY", defaultConcurrency)
	viper.SetDefault("TIMEZONE", defaultTimezone)
}

// LoadRemote собирает секцию удаленного API из viper
func LoadRemote() (Remote, error) {
	r := Remote{
		BaseURL:        strings.TrimRight(viper.GetString("API_BASE_URL"), "/"),
		RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		PageSize:       viper.GetInt("PAGE_SIZE"),
		SlideBatch:     viper.GetString("SLIDE_BATCH_POLICY"),
		EventBatch:     viper.GetString("EVENT_BATCH_POLICY"),
		Concurrency:    viper.GetInt("BATCH_CONCURRENCY"),
		Timezone:       viper.GetString("TIMEZONE"),
	}

	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return r, fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc

	return r, r.Validate()
}

// Validate проверяет секцию удаленного API
func (r Remote) Validate() error {
	if r.BaseURL == "" {
		return fmt.Errorf("api_base_url не может быть пустым")
	}
	if r.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout не может быть отрицательным")
	}
	if r.PageSize <= 0 {
		return fmt.Errorf("page_size должен быть больше нуля")
	}
	if r.Concurrency <= 0 {
		return fmt.Errorf("batch_concurrency должен быть больше нуля")
	}
	for _, p := range []string{r.SlideBatch, r.EventBatch} {
		if p != BatchConcurrent && p != BatchSequential {
			return fmt.Errorf("неизвестная политика пакетного сохранения: %q", p)
		}
	}
	return nil
}
