package template

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/template"
)

var page int

type listedTemplate struct {
	template.Template
	Preview string `json:"preview"`
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список шаблонов",
	Long: `Заполненные шаблоны, новые первыми. Размер страницы задается PAGE_SIZE,
номер страницы за пределами диапазона приводится к ближайшему допустимому.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		var (
			result template.Page
			items  []listedTemplate
		)
		err = app.Run(cmd.Context(), func(ctx context.Context, ws *workspace.Workspace) error {
			p, err := ws.Templates.Page(ctx, page)
			if err != nil {
				return err
			}
			result = p
			for _, t := range result.Items {
				items = append(items, listedTemplate{Template: t, Preview: ws.Templates.Preview(t)})
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("ошибка загрузки шаблонов: %w", err)
		}

		if types.JSONOutput(cmd) {
			return types.PrintJSON(map[string]any{
				"items":       items,
				"page":        result.Page,
				"total_pages": result.TotalPages,
				"total":       result.Total,
			})
		}

		if len(items) == 0 {
			fmt.Println("Шаблоны не найдены")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tRADIO TEXT\tNAME X,Y\tDATE X,Y\tPREVIEW")
		for _, t := range items {
			fmt.Fprintf(w, "%s\t%s\t%g,%g\t%g,%g\t%s\n",
				t.Name, t.RadioButtonText,
				t.NameCoordinate.X, t.NameCoordinate.Y,
				t.DateTimeCoordinate.X, t.DateTimeCoordinate.Y,
				t.Preview)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nСтраница %d из %d, всего %d\n", result.Page, result.TotalPages, result.Total)
		return nil
	},
}

func init() {
	ListCmd.Flags().IntVarP(&page, "page", "p", 1, "номер страницы")
}
