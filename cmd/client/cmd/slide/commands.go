package slide

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/slide"
)

var PullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Отбросить черновик и загрузить слайды с сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := app.Pull(cmd.Context(), workspace.ScreenSlides); err != nil {
			return fmt.Errorf("ошибка загрузки слайдов: %w", err)
		}
		fmt.Println("Слайды загружены")
		return nil
	},
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать черновик слайдов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return edit(cmd, func(context.Context, *workspace.Workspace) error { return nil })
	},
}

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить пустой слайд в конец",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return edit(cmd, func(_ context.Context, ws *workspace.Workspace) error {
			ws.Slides.AddLocal()
			return nil
		})
	},
}

var SetCmd = &cobra.Command{
	Use:   "set <n> <field> <value>",
	Short: "Изменить поле слайда",
	Long: `Поля: heading, subHeading, imageCaption, showButton (true/false),
buttonText, buttonLink, align (left/right).`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := types.ParseIndex(args[0])
		if err != nil {
			return err
		}
		field, err := slide.ParseField(args[1])
		if err != nil {
			return err
		}
		return edit(cmd, func(_ context.Context, ws *workspace.Workspace) error {
			return ws.Slides.Edit(i, field, args[2])
		})
	},
}

var ImageCmd = &cobra.Command{
	Use:   "image <n> <file>",
	Short: "Заменить изображение слайда",
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
			return ws.Slides.AttachImage(i, media.NewFile(args[1], data))
		})
	},
}

var RemoveCmd = &cobra.Command{
	Use:   "remove <n>",
	Short: "Убрать слайд из черновика",
	Long:  `Слайд на сервере не удаляется. Последний слайд убрать нельзя.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := types.ParseIndex(args[0])
		if err != nil {
			return err
		}
		return edit(cmd, func(_ context.Context, ws *workspace.Workspace) error {
			return ws.Slides.RemoveLocal(i)
		})
	},
}

var PushCmd = &cobra.Command{
	Use:   "push",
	Short: "Сохранить все слайды на сервере",
	Long: `Загружает новые изображения, создает новые слайды и обновляет существующие.
Политика пакета задается SLIDE_BATCH_POLICY.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		err := edit(cmd, func(ctx context.Context, ws *workspace.Workspace) error {
			return ws.Slides.Save(ctx)
		})
		if err != nil {
			return fmt.Errorf("ошибка сохранения слайдов: %w", err)
		}
		fmt.Println("✅ Слайды сохранены")
		return nil
	},
}
