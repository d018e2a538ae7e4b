package event

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/event"
)

// EventCmd - родительская команда для событий
var EventCmd = &cobra.Command{
	Use:   "event",
	Short: "События календаря",
	Long: `Список событий с датой и временем. Дата и время вводятся в часовом поясе
TIMEZONE. Удаление сохраненного события выполняется на сервере сразу.`,
}

func printEvents(cmd *cobra.Command, drafts []event.Draft) error {
	if types.JSONOutput(cmd) {
		return types.PrintJSON(drafts)
	}

	if len(drafts) == 0 {
		fmt.Println("Событий нет")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tDATE\tTIME\tHEADING\tSUB HEADING\tIMAGE")
	for i, d := range drafts {
		id := d.ID
		if id == "" {
			id = "(новое)"
		}
		image := d.Image
		if d.File != nil {
			image = d.File.Name + " (ожидает загрузки)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i+1, id, d.Date, d.Time, d.Heading, d.SubHeading, image)
	}
	return w.Flush()
}

func edit(cmd *cobra.Command, fn func(ctx context.Context, ws *workspace.Workspace) error) error {
	app, err := types.App(cmd)
	if err != nil {
		return err
	}

	var drafts []event.Draft
	err = app.Screen(cmd.Context(), workspace.ScreenEvents, func(ctx context.Context, ws *workspace.Workspace) error {
		if err := fn(ctx, ws); err != nil {
			return err
		}
		drafts = ws.Events.Drafts()
		return nil
	})
	if err != nil {
		return err
	}
	return printEvents(cmd, drafts)
}
