package configcommand

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/redjax/forecast/internal/config"
	"github.com/spf13/cobra"
)

// NewShowConfigCommand prints the effective configuration after every layer is applied.
func NewShowConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Get(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			renderConfig(cmd.OutOrStdout())
			return nil
		},
	}
}

func renderConfig(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Key", "Value"})
	for _, k := range config.K.Keys() {
		tw.AppendRow(table.Row{k, displayValue(k, config.K.Get(k))})
	}
	tw.Render()
}

func displayValue(key string, v interface{}) string {
	s := fmt.Sprint(v)
	if key == "api.key" && s != "" {
		return "********"
	}
	return s
}
