package event

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/event"
	"dayadmin/internal/domain/media"
)

var PullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Отбросить черновик и загрузить события с сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := app.Pull(cmd.Context(), workspace.ScreenEvents); err != nil {
			return fmt.Errorf("ошибка загрузки событий: %w", err)
		}
		fmt.Println("События загружены")
		return nil
	},
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать черновик событий",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return edit(cmd, func(context.Context, *workspace.Workspace) error { return nil })
	},
}

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить событие на сегодня, 09:00",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return edit(cmd, func(_ context.Context, ws *workspace.Workspace) error {
			ws.Events.AddLocal()
			return nil
		})
	},
}

var SetCmd = &cobra.Command{
	Use:   "set <n> <field> <value>",
	Short: "Изменить поле события",
	Long:  `Поля: heading, subHeading, date (ГГГГ-ММ-ДД), time (ЧЧ:ММ, 24 часа).`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := types.ParseIndex(args[0])
		if err != nil {
			return err
		}
		field, err := event.ParseField(args[1])
		if err != nil {
			return err
		}
		return edit(cmd, func(_ context.Context, ws *workspace.Workspace) error {
			return ws.Events.Edit(i, field, args[2])
		})
	},
}

var ImageCmd = &cobra.Command{
	Use:   "image <n> <file>",
	Short: "Заменить изображение события",
	Long:  `Файл загружается на сервер при push.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := types.ParseIndex(args[0])
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("ошибка чтения файла: %w", err)
		}
		return edit(cmd, func(_ context.Context, ws *workspace.Workspace) error {
			return ws.Events.AttachImage(i, media.NewFile(args[1], data))
		})
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete <n>",
	Short: "Удалить событие",
	Long: `Несохраненное событие убирается из черновика. Сохраненное удаляется
на сервере, после чего список перечитывается.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := types.ParseIndex(args[0])
		if err != nil {
			return err
		}
		err = edit(cmd, func(ctx context.Context, ws *workspace.Workspace) error {
			return ws.Events.Delete(ctx, i)
		})
		if err != nil {
			return fmt.Errorf("ошибка удаления события: %w", err)
		}
		return nil
	},
}

var PushCmd = &cobra.Command{
	Use:   "push",
	Short: "Сохранить все события на сервере",
	Long: `Загружает новые изображения, создает новые события и обновляет существующие.
Политика пакета задается EVENT_BATCH_POLICY.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		err := edit(cmd, func(ctx context.Context, ws *workspace.Workspace) error {
			return ws.Events.Save(ctx)
		})
		if err != nil {
			return fmt.Errorf("ошибка сохранения событий: %w", err)
		}
		fmt.Println("✅ События сохранены")
		return nil
	},
}
