package weathercommand

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/redjax/forecast/internal/config"
	historyservice "github.com/redjax/forecast/internal/services/historyService"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noHistory(context.Context) (string, error) { return "", historyservice.ErrNoHistory }

func TestResolveQuery(t *testing.T) {
	ctx := context.Background()

	q, err := resolveQuery(ctx, []string{" Nantes "}, showOptions{}, false, false, noHistory)
	require.NoError(t, err)
	assert.Equal(t, weatherservice.Query{Town: "Nantes"}, q)

	q, err = resolveQuery(ctx, nil, showOptions{lat: 47.2, lon: -1.5}, true, true, noHistory)
	require.NoError(t, err)
	assert.Equal(t, weatherservice.Query{Lat: 47.2, Lon: -1.5, HasCoords: true}, q)

	q, err = resolveQuery(ctx, nil, showOptions{auto: true}, false, false, noHistory)
	require.NoError(t, err)
	assert.True(t, q.Auto)

	q, err = resolveQuery(ctx, nil, showOptions{}, false, false,
		func(context.Context) (string, error) { return "Lyon", nil })
	require.NoError(t, err)
	assert.Equal(t, "Lyon", q.Town)
}

func TestResolveQueryErrors(t *testing.T) {
	ctx := context.Background()

	_, err := resolveQuery(ctx, nil, showOptions{}, false, false, noHistory)
	assert.ErrorIs(t, err, errNothingToShow)

	_, err = resolveQuery(ctx, nil, showOptions{lat: 1}, true, false, noHistory)
	assert.Error(t, err)

	_, err = resolveQuery(ctx, []string{"Nantes"}, showOptions{auto: true}, false, false, noHistory)
	assert.Error(t, err)

	_, err = resolveQuery(ctx, nil, showOptions{auto: true}, true, true, noHistory)
	assert.Error(t, err)

	boom := errors.New("disk on fire")
	_, err = resolveQuery(ctx, nil, showOptions{}, false, false,
		func(context.Context) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
}

const currentJSON = `{
	"coord": {"lon": -1.55, "lat": 47.22},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"main": {"temp": 12.8},
	"wind": {"speed": 5.1},
	"timezone": 7200,
	"name": "Nantes",
	"dt": 1601906400
}`

const oneCallJSON = `{
	"lat": 47.22, "lon": -1.55, "timezone_offset": 7200,
	"current": {"dt": 1601906400},
	"daily": [
		{"dt": 1601895600, "temp": {"day": 13.9}, "wind_speed": 4.0,
			"weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}]},
		{"dt": 1601982000, "temp": {"day": 16.7}, "wind_speed": 4.2,
			"weather": [{"main": "Clouds", "description": "broken clouds", "icon": "04d"}]},
		{"dt": 1602068400, "temp": {"day": -2.6}, "wind_speed": 12.34,
			"weather": [{"main": "Snow", "description": "light snow", "icon": "13d"}]}
	]
}`

// setupProvider points the configuration at a fake provider and a temp history file.
func setupProvider(t *testing.T) (*atomic.Int32, *atomic.Value) {
	t.Helper()
	var calls atomic.Int32
	var lastTown atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		lastTown.Store(r.URL.Query().Get("q"))
		w.Write([]byte(currentJSON))
	})
	mux.HandleFunc("/onecall", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(oneCallJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Setenv("FORECAST_API_KEY", "test-key")
	t.Setenv("FORECAST_API_BASE_URL", srv.URL)
	t.Setenv("FORECAST_DISPLAY_TIMEZONE", "UTC")
	t.Setenv("FORECAST_HISTORY_PATH", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, config.LoadConfig(nil, ""))

	return &calls, &lastTown
}

func runShow(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewShowCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShowJSON(t *testing.T) {
	calls, _ := setupProvider(t)

	out, err := runShow(t, "nantes", "--json")
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())

	var report weatherservice.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Nantes", report.Town)
	require.NotNil(t, report.Current)
	assert.Equal(t, "12 °C", report.Current.Temperature)
	// the day before current.dt is dropped
	require.Len(t, report.NextDays, 2)
	assert.Equal(t, "mar. 06/10 11:00", report.NextDays[0].Date)
	assert.Contains(t, report.MapURL, "mlat=47.2200")
}

func TestShowReusesLastTown(t *testing.T) {
	_, lastTown := setupProvider(t)

	_, err := runShow(t, "Nantes")
	require.NoError(t, err)

	out, err := runShow(t)
	require.NoError(t, err)
	assert.Equal(t, "Nantes", lastTown.Load())
	assert.Contains(t, out, "Nantes")
	assert.Contains(t, out, "Map: https://www.openstreetmap.org/")
}

func TestShowWithoutHistory(t *testing.T) {
	setupProvider(t)

	_, err := runShow(t)
	assert.ErrorIs(t, err, errNothingToShow)
}

func TestShowWithoutAPIKey(t *testing.T) {
	setupProvider(t)
	t.Setenv("FORECAST_API_KEY", "")
	require.NoError(t, config.LoadConfig(nil, ""))

	_, err := runShow(t, "Nantes")
	assert.ErrorIs(t, err, weatherservice.ErrMissingAPIKey)
}

func TestShowAfterAutoSearchesPlainTown(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []string
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, "q="+r.URL.Query().Get("q")+" lat="+r.URL.Query().Get("lat"))
		mu.Unlock()
		w.Write([]byte(currentJSON))
	})
	mux.HandleFunc("/onecall", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(oneCallJSON))
	})
	provider := httptest.NewServer(mux)
	t.Cleanup(provider.Close)

	wttr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"nearest_area":[{"areaName":[{"value":"Rezé"}],"country":[{"value":"France"}],
			"latitude":"47.19","longitude":"-1.57"}]}`))
	}))
	t.Cleanup(wttr.Close)

	t.Setenv("FORECAST_API_KEY", "test-key")
	t.Setenv("FORECAST_API_BASE_URL", provider.URL)
	t.Setenv("FORECAST_LOCATE_URL", wttr.URL)
	t.Setenv("FORECAST_DISPLAY_TIMEZONE", "UTC")
	t.Setenv("FORECAST_HISTORY_PATH", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, config.LoadConfig(nil, ""))

	out, err := runShow(t, "--auto")
	require.NoError(t, err)
	assert.Contains(t, out, "Rezé, France")

	_, err = runShow(t)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 2)
	assert.Equal(t, "q= lat=47.19", requests[0])
	// the provider's town name is reused, not the "Area, Country" label
	assert.Equal(t, "q=Nantes lat=", requests[1])
}
