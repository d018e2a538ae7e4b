package form

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayadmin/cmd/client/cmd/types"
	"dayadmin/internal/domain/formcontrol"
)

// FormCmd - родительская команда для настроек формы
var FormCmd = &cobra.Command{
	Use:   "form",
	Short: "Настройки формы",
	Long: `Тексты формы, цвет кнопки, видимость полей и выбор шаблона для переключателя.

Изменения копятся в локальном черновике до команды push. Пользовательские поля
существуют только локально и на сервер не отправляются.`,
}

func printForm(cmd *cobra.Command, d formcontrol.Draft) error {
	if types.JSONOutput(cmd) {
		return types.PrintJSON(d)
	}

	id := d.ID
	if id == "" {
		id = "(не создана)"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", id)
	fmt.Fprintf(w, "formTitle\t%s\n", d.FormTitle)
	fmt.Fprintf(w, "formOpenerButtonText\t%s\n", d.FormOpenerButtonText)
	fmt.Fprintf(w, "submitButtonText\t%s\n", d.SubmitButtonText)
	fmt.Fprintf(w, "submitButtonColor\t%s\n", d.SubmitButtonColor)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nПоля:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tLABEL\tSHOW\tLOCAL")
	for i, f := range d.Fields {
		local := ""
		if f.Custom {
			local = "да"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, f.Label, types.OnOff(f.Show), local)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nВарианты переключателя:")
	if len(d.Options) == 0 {
		fmt.Println("  нет шаблонов")
		return nil
	}
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTEMPLATE\tSHOW")
	for i, o := range d.Options {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, o.Label, types.OnOff(o.Show))
	}
	return w.Flush()
}
