package weathercommand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	historyservice "github.com/redjax/forecast/internal/services/historyService"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
	weatherui "github.com/redjax/forecast/internal/services/weatherService/ui"
	"github.com/redjax/forecast/internal/utils/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNothingToShow is returned when no town, coordinates or history are available.
var errNothingToShow = errors.New("no town given and no previous lookup; pass a town, --lat/--lon or --auto")

type showOptions struct {
	lat, lon float64
	auto     bool
	asJSON   bool
}

func NewShowCommand() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show [town]",
		Short: "Show current weather and the next days' forecast",
		Long: `Fetch the current weather and the daily forecast for a town.

Description:
  The town can be given as an argument, or replaced by coordinates
  (--lat/--lon) or by IP based detection (--auto). With none of them,
  the last town you looked up is used again.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			q, err := resolveQuery(cmd.Context(), args, opts,
				cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon"), a.lastTown)
			if err != nil {
				return err
			}

			stop := spinner.StartSpinner(describe(q))
			report, err := a.svc.Lookup(cmd.Context(), q)
			stop()
			if err != nil {
				return err
			}

			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return weatherservice.RenderReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "Latitude (use with --lon instead of a town)")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "Longitude (use with --lat instead of a town)")
	cmd.Flags().BoolVarP(&opts.auto, "auto", "a", false, "Detect the location from your public IP")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func NewUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui [town]",
		Short: "Open the interactive forecast screen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			town := ""
			if len(args) == 1 {
				town = args[0]
			} else if last, err := a.lastTown(cmd.Context()); err == nil {
				town = last
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			p := tea.NewProgram(weatherui.NewUIModel(ctx, a.svc, town), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}
}

// resolveQuery picks what to look up: the town argument, then coordinates,
// then auto detection, then the last town from history.
func resolveQuery(ctx context.Context, args []string, opts showOptions, latSet, lonSet bool,
	last func(context.Context) (string, error)) (weatherservice.Query, error) {

	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		if latSet || lonSet || opts.auto {
			return weatherservice.Query{}, fmt.Errorf("a town cannot be combined with --lat/--lon or --auto")
		}
		return weatherservice.Query{Town: strings.TrimSpace(args[0])}, nil
	}

	if latSet || lonSet {
		if !latSet || !lonSet {
			return weatherservice.Query{}, fmt.Errorf("--lat and --lon must be given together")
		}
		if opts.auto {
			return weatherservice.Query{}, fmt.Errorf("--auto cannot be combined with --lat/--lon")
		}
		return weatherservice.Query{Lat: opts.lat, Lon: opts.lon, HasCoords: true}, nil
	}

	if opts.auto {
		return weatherservice.Query{Auto: true}, nil
	}

	town, err := last(ctx)
	if err != nil {
		if errors.Is(err, historyservice.ErrNoHistory) {
			return weatherservice.Query{}, errNothingToShow
		}
		return weatherservice.Query{}, err
	}
	return weatherservice.Query{Town: town}, nil
}

func (a *app) lastTown(ctx context.Context) (string, error) {
	if a.history == nil {
		return "", historyservice.ErrNoHistory
	}
	entry, err := a.history.Last(ctx)
	if err != nil {
		return "", err
	}
	a.log.Debug("reusing last town", zap.String("town", entry.Town))
	return entry.Town, nil
}

func describe(q weatherservice.Query) string {
	switch {
	case q.Town != "":
		return fmt.Sprintf("Fetching weather for %s", q.Town)
	case q.HasCoords:
		return fmt.Sprintf("Fetching weather at %.4f, %.4f", q.Lat, q.Lon)
	default:
		return "Detecting location"
	}
}
