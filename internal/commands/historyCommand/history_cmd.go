package historycommand

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/redjax/forecast/internal/config"
	historyservice "github.com/redjax/forecast/internal/services/historyService"
	"github.com/spf13/cobra"
)

func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or clear past lookups",
		Long:  "Every successful lookup is stored in a local SQLite file (history.path). The last one is reused when 'show' gets no town.",
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newClearCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent lookups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openHistory()
			if err != nil {
				return err
			}
			defer svc.Close()

			entries, err := svc.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return renderEntries(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of lookups to show")

	return cmd
}

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded lookup",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openHistory()
			if err != nil {
				return err
			}
			defer svc.Close()

			n, err := svc.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d lookup(s)\n", n)
			return nil
		},
	}
}

func openHistory() (*historyservice.HistoryService, error) {
	settings, err := config.Get()
	if err != nil {
		return nil, err
	}
	if !settings.History.Enabled {
		return nil, fmt.Errorf("history is disabled (history.enabled=false)")
	}
	return historyservice.NewHistoryService(settings.History.Path)
}

func renderEntries(w io.Writer, entries []historyservice.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No lookups yet")
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"When", "Town", "Lat", "Lon"})
	for _, e := range entries {
		tw.AppendRow(table.Row{
			e.LookedUpAt.Local().Format("2006-01-02 15:04"),
			e.Town,
			fmt.Sprintf("%.4f", e.Lat),
			fmt.Sprintf("%.4f", e.Lon),
		})
	}
	tw.Render()
	return nil
}
