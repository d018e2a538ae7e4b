package template

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/template"
)

var (
	draft    template.Draft
	filePath string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать шаблон",
	Long: `Загружает файл шаблона (изображение или PDF) и создает запись с координатами
для имени и даты. Пустая координата считается нулем.

Пример:
  dayadmin template create --name Diwali --radio-text "Diwali pledge" \
    --file diwali.png --name-x 120 --name-y 340 --date-x 120 --date-y 400`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if filePath != "" {
			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("ошибка чтения файла: %w", err)
			}
			draft.File = media.NewFile(filePath, data)
		}

		err = app.Run(cmd.Context(), func(ctx context.Context, ws *workspace.Workspace) error {
			return ws.Templates.Create(ctx, draft)
		})
		if err != nil {
			return fmt.Errorf("ошибка создания шаблона: %w", err)
		}

		fmt.Println("✅ Шаблон создан")
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&draft.Name, "name", "", "название шаблона")
	CreateCmd.Flags().StringVar(&draft.RadioButtonText, "radio-text", "", "текст переключателя в форме")
	CreateCmd.Flags().StringVarP(&filePath, "file", "f", "", "файл шаблона")
	CreateCmd.Flags().StringVar(&draft.NameX, "name-x", "", "координата X имени")
	CreateCmd.Flags().StringVar(&draft.NameY, "name-y", "", "координата Y имени")
	CreateCmd.Flags().StringVar(&draft.DateTimeX, "date-x", "", "координата X даты")
	CreateCmd.Flags().StringVar(&draft.DateTimeY, "date-y", "", "координата Y даты")
}
