package form

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/formcontrol"
)

var SetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Изменить текст или цвет формы",
	Long: `Поля: formTitle, formOpenerButtonText, submitButtonText, submitButtonColor.
Цвет задается в виде #rrggbb.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := formcontrol.ParseField(args[0])
		if err != nil {
			return err
		}
		return edit(cmd, func(ws *workspace.Workspace) error {
			return ws.Form.Edit(field, args[1])
		})
	},
}

var ToggleCmd = &cobra.Command{
	Use:   "toggle <n>",
	Short: "Переключить видимость поля",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := types.ParseIndex(args[0])
		if err != nil {
			return err
		}
		return edit(cmd, func(ws *workspace.Workspace) error {
			return ws.Form.ToggleField(i)
		})
	},
}

var AddFieldCmd = &cobra.Command{
	Use:   "add-field <label>",
	Short: "Добавить локальное поле",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(cmd, func(ws *workspace.Workspace) error {
			return ws.Form.AddField(args[0])
		})
	},
}

var SelectCmd = &cobra.Command{
	Use:   "select <n>",
	Short: "Выбрать шаблон для переключателя",
	Long:  `Выбранный вариант становится единственным видимым.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := types.ParseIndex(args[0])
		if err != nil {
			return err
		}
		return edit(cmd, func(ws *workspace.Workspace) error {
			return ws.Form.SelectOption(i)
		})
	},
}

func edit(cmd *cobra.Command, fn func(ws *workspace.Workspace) error) error {
	app, err := types.App(cmd)
	if err != nil {
		return err
	}

	var d formcontrol.Draft
	err = app.Screen(cmd.Context(), workspace.ScreenForm, func(_ context.Context, ws *workspace.Workspace) error {
		if err := fn(ws); err != nil {
			return err
		}
		d = ws.Form.Draft()
		return nil
	})
	if err != nil {
		return err
	}
	return printForm(cmd, d)
}
