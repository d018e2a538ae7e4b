package form

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/formcontrol"
)

var PullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Отбросить черновик и загрузить форму с сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := app.Pull(cmd.Context(), workspace.ScreenForm); err != nil {
			return fmt.Errorf("ошибка загрузки формы: %w", err)
		}
		fmt.Println("Форма загружена")
		return nil
	},
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать черновик формы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		var d formcontrol.Draft
		err = app.Screen(cmd.Context(), workspace.ScreenForm, func(_ context.Context, ws *workspace.Workspace) error {
			d = ws.Form.Draft()
			return nil
		})
		if err != nil {
			return fmt.Errorf("ошибка загрузки формы: %w", err)
		}
		return printForm(cmd, d)
	},
}

var PushCmd = &cobra.Command{
	Use:   "push",
	Short: "Сохранить форму на сервере",
	Long:  `Создает форму, если ее еще нет, иначе обновляет. После сохранения форма перечитывается.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		err = app.Screen(cmd.Context(), workspace.ScreenForm, func(ctx context.Context, ws *workspace.Workspace) error {
			return ws.Form.Save(ctx)
		})
		if err != nil {
			return fmt.Errorf("ошибка сохранения формы: %w", err)
		}
		fmt.Println("✅ Форма сохранена")
		return nil
	},
}
