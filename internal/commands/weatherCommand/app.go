package weathercommand

import (
	"net/http"

	"github.com/redjax/forecast/internal/config"
	historyservice "github.com/redjax/forecast/internal/services/historyService"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
	"go.uber.org/zap"
)

// app bundles what the weather commands build from the loaded settings.
type app struct {
	settings config.Settings
	svc      *weatherservice.Service
	history  *historyservice.HistoryService
	log      *zap.Logger
}

func newApp() (*app, error) {
	settings, err := config.Get()
	if err != nil {
		return nil, err
	}
	log := zap.L()

	hc := &http.Client{Timeout: settings.API.Timeout}
	client, err := weatherservice.NewClient(weatherservice.ClientOptions{
		APIKey:     settings.API.Key,
		BaseURL:    settings.API.BaseURL,
		OneCallURL: settings.API.OneCallURL,
		Units:      settings.API.Units,
		Lang:       settings.API.Lang,
		HTTPClient: hc,
		Logger:     log.Named("client"),
	})
	if err != nil {
		return nil, err
	}

	zone, err := weatherservice.ResolveZone(settings.Display.Timezone)
	if err != nil {
		return nil, err
	}

	a := &app{settings: settings, log: log}

	opts := weatherservice.ServiceOptions{
		Formatter: weatherservice.Formatter{
			Units:  settings.API.Units,
			Locale: settings.Display.Locale,
			Zone:   zone,
		},
		Locator: weatherservice.NewLocator(settings.Locate.URL, hc, log.Named("locate")),
		Days:    settings.Display.Days,
		Logger:  log.Named("service"),
	}

	if settings.History.Enabled {
		history, err := historyservice.NewHistoryService(settings.History.Path)
		if err != nil {
			// a broken history file should not stop the weather from showing
			log.Warn("history disabled", zap.String("path", settings.History.Path), zap.Error(err))
		} else {
			a.history = history
			opts.Recorder = history
		}
	}

	a.svc = weatherservice.NewService(client, opts)
	return a, nil
}

func (a *app) Close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.log.Warn("closing history", zap.Error(err))
		}
	}
}
