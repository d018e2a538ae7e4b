package slide

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/slide"
)

// SlideCmd - родительская команда для слайдов карусели
var SlideCmd = &cobra.Command{
	Use:   "slide",
	Short: "Слайды карусели",
	Long: `Упорядоченный список слайдов. Порядок на сервере пересчитывается по позиции
в списке при push. Удаление убирает слайд только из черновика.`,
}

func printSlides(cmd *cobra.Command, drafts []slide.Draft) error {
	if types.JSONOutput(cmd) {
		return types.PrintJSON(drafts)
	}

	if len(drafts) == 0 {
		fmt.Println("Слайдов нет")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tHEADING\tSUB HEADING\tBUTTON\tALIGN\tIMAGE")
	for i, d := range drafts {
		id := d.ID
		if id == "" {
			id = "(новый)"
		}
		button := types.OnOff(d.ShowButton)
		if d.ShowButton && d.ButtonText != "" {
			button += " " + d.ButtonText
		}
		image := d.Image
		if d.File != nil {
			image = d.File.Name + " (ожидает загрузки)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i+1, id, d.Heading, d.SubHeading, button, d.Align, image)
	}
	return w.Flush()
}

func edit(cmd *cobra.Command, fn func(ctx context.Context, ws *workspace.Workspace) error) error {
	app, err := types.App(cmd)
	if err != nil {
		return err
	}

	var drafts []slide.Draft
	err = app.Screen(cmd.Context(), workspace.ScreenSlides, func(ctx context.Context, ws *workspace.Workspace) error {
		if err := fn(ctx, ws); err != nil {
			return err
		}
		drafts = ws.Slides.Drafts()
		return nil
	})
	if err != nil {
		return err
	}
	return printSlides(cmd, drafts)
}
