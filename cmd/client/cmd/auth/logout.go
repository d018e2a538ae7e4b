package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти и удалить локальные черновики",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Println("Сессия закрыта")
		return nil
	},
}
