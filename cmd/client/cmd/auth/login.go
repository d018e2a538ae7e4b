// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dayadmin/cmd/client/cmd/types"
)

var apiKey string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти с ключом API",
	Long: `Сохраняет общий ключ API в зашифрованной локальной сессии.

Ключ не проверяется при входе: если сервер его отклонит, сессия будет
закрыта при первом запросе.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		secret := apiKey
		if secret == "" {
			fmt.Print("Ключ API: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				return fmt.Errorf("ошибка чтения ключа: %w", err)
			}
			fmt.Println()
			secret = string(raw)
		}

		if err := app.Login(cmd.Context(), secret); err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}

		fmt.Println("✅ Вход выполнен")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&apiKey, "key", "k", "", "ключ API (по умолчанию запрашивается)")
}
