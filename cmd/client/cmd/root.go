// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/client"
	"dayadmin/internal/app/client/config"
	"dayadmin/internal/utils/logger"
)

var (
	cfgFile    string
	debug      bool
	jsonOutput bool
	apiURL     string
)

var rootCmd = &cobra.Command{
	Use:   "dayadmin",
	Short: "dayadmin - панель администратора контента",
	Long: `dayadmin управляет контентом удаленного API: шаблонами документов,
настройками формы, слайдами карусели и событиями.

Черновики каждого экрана хранятся локально между запусками и отправляются
на сервер командой push.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if apiURL != "" {
		cfg.Remote.BaseURL = strings.TrimRight(apiURL, "/")
	}

	log := logger.WithLevel(cfg.Env, debug)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), types.ClientAppKey, app)
	ctx = context.WithValue(ctx, types.JSONOutputKey, jsonOutput)
	cmd.SetContext(ctx)

	return nil
}

func closeApp(cmd *cobra.Command, _ []string) error {
	app, err := types.App(cmd)
	if err != nil {
		return nil
	}
	return app.Close()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".dayadmin"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "базовый URL удаленного API")
}
