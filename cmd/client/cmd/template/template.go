package template

import (
	"github.com/spf13/cobra"
)

// TemplateCmd - родительская команда для шаблонов документов
var TemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Шаблоны документов",
	Long:  `Просмотр шаблонов постранично и создание нового шаблона с координатами.`,
}
