package types

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"dayadmin/internal/app/client"
)

type ctxKey string

const (
	ClientAppKey  ctxKey = "app"
	JSONOutputKey ctxKey = "json"
)

// App достает приложение, созданное в PersistentPreRunE
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func JSONOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Context().Value(JSONOutputKey).(bool)
	return v
}

func PrintJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ParseIndex переводит номер из вывода list (с единицы) в индекс
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("некорректный номер: %q", s)
	}
	return n - 1, nil
}

// OnOff - отметка видимости для табличного вывода
func OnOff(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
