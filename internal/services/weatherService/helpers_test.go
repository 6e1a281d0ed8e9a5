package weatherservice

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// Mon 05/10/2020 14:00 UTC
const nantesCurrentJSON = `{
	"coord": {"lon": -1.55, "lat": 47.22},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"main": {"temp": 12.8, "feels_like": 10.1, "temp_min": 11, "temp_max": 14, "pressure": 1012, "humidity": 81},
	"wind": {"speed": 5.1, "deg": 240},
	"sys": {"country": "FR"},
	"timezone": 7200,
	"id": 2990969,
	"name": "Nantes",
	"dt": 1601906400
}`

// The first two days are before current.dt and must be pruned.
const nantesOneCallJSON = `{
	"lat": 47.22,
	"lon": -1.55,
	"timezone": "Europe/Paris",
	"timezone_offset": 7200,
	"current": {"dt": 1601906400, "temp": 12.8, "wind_speed": 5.1,
		"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}]},
	"daily": [
		{"dt": 1601809200, "temp": {"day": 15.2}, "wind_speed": 3.0,
			"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}]},
		{"dt": 1601895600, "temp": {"day": 13.9}, "wind_speed": 4.0,
			"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}]},
		{"dt": 1601982000, "temp": {"day": 16.7}, "wind_speed": 4.2,
			"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}]},
		{"dt": 1602068400, "temp": {"day": -2.6}, "wind_speed": 12.34,
			"weather": [{"id": 600, "main": "Snow", "description": "light snow", "icon": "13d"}]}
	]
}`

// fixtureHandler answers both endpoints with the Nantes fixtures.
func fixtureHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(nantesCurrentJSON))
	})
	mux.HandleFunc("/onecall", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(nantesOneCallJSON))
	})
	return mux
}

// handlerTransport serves requests straight from a handler, without sockets.
type handlerTransport struct {
	h http.Handler
}

func (t handlerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := r.Context().Err(); err != nil {
		return nil, err
	}
	rec := httptest.NewRecorder()
	t.h.ServeHTTP(rec, r)
	return rec.Result(), nil
}

type fakeProvider struct {
	*httptest.Server
	weatherCalls atomic.Int32
	oneCallCalls atomic.Int32
	lastQuery    atomic.Value
}

// newFakeProvider serves the Nantes fixtures, or a 404 for any other town.
func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	fp := &fakeProvider{}
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		fp.weatherCalls.Add(1)
		fp.lastQuery.Store(r.URL.Query())
		if r.URL.Query().Get("appid") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Invalid API key."}`))
			return
		}
		q := r.URL.Query().Get("q")
		if q != "" && q != "Nantes" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		w.Write([]byte(nantesCurrentJSON))
	})
	mux.HandleFunc("/onecall", func(w http.ResponseWriter, r *http.Request) {
		fp.oneCallCalls.Add(1)
		w.Write([]byte(nantesOneCallJSON))
	})
	fp.Server = httptest.NewServer(mux)
	t.Cleanup(fp.Close)
	return fp
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(ClientOptions{APIKey: testAPIKey, BaseURL: baseURL})
	require.NoError(t, err)
	return c
}
