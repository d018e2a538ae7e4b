package auth

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		sess, err := app.Session(cmd.Context())
		authenticated := err == nil

		if types.JSONOutput(cmd) {
			out := map[string]any{
				"authenticated": authenticated,
				"api":           app.Config().Remote.BaseURL,
			}
			if authenticated {
				out["since"] = sess.CreatedAt
			}
			return types.PrintJSON(out)
		}

		fmt.Printf("API: %s\n", app.Config().Remote.BaseURL)
		if !authenticated {
			fmt.Println("Статус: вход не выполнен")
			return nil
		}
		fmt.Printf("Статус: вход выполнен (%s)\n", sess.CreatedAt.Local().Format(time.DateTime))
		return nil
	},
}
