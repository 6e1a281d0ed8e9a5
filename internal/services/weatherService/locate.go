package weatherservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const DefaultLocateURL = "https://wttr.in"

type wttrJSON struct {
	NearestArea []struct {
		AreaName []struct {
			Value string `json:"value"`
		} `json:"areaName"`
		Country []struct {
			Value string `json:"value"`
		} `json:"country"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"nearest_area"`
}

// Location is an automatically detected place.
type Location struct {
	// Area is the bare place name, usable as a town query.
	Area string
	// Name is "Area, Country" for display.
	Name string
	Lat  float64
	Lon  float64
}

// Locator detects the caller's approximate position from their public IP via wttr.in.
type Locator struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewLocator builds a Locator. Nil hc and logger fall back to http.DefaultClient and a no-op logger.
func NewLocator(baseURL string, hc *http.Client, logger *zap.Logger) *Locator {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultLocateURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{baseURL: base, http: hc, log: logger}
}

// DetectLocation returns the nearest area wttr.in associates with this host.
func (l *Locator) DetectLocation(ctx context.Context) (Location, error) {
	endpoint := l.baseURL + "/auto?format=j1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Location{}, fmt.Errorf("detect location: %w", err)
	}
	// wttr.in answers HTML to browsers
	req.Header.Set("User-Agent", "curl")

	l.log.Debug("detecting location", zap.String("url", endpoint))
	resp, err := l.http.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("detect location: %w", err)
	}
	defer resp.Body.Close()

	l.log.Debug("location response", zap.Int("status", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("detect location: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Location{}, fmt.Errorf("detect location: %w", err)
	}

	var w wttrJSON
	if err := json.Unmarshal(body, &w); err != nil {
		return Location{}, fmt.Errorf("detect location: %w", err)
	}

	if len(w.NearestArea) == 0 || len(w.NearestArea[0].AreaName) == 0 {
		return Location{}, ErrNoLocation
	}
	area := w.NearestArea[0]

	lat, errLat := strconv.ParseFloat(area.Latitude, 64)
	lon, errLon := strconv.ParseFloat(area.Longitude, 64)
	if errLat != nil || errLon != nil {
		return Location{}, ErrNoLocation
	}

	areaName := strings.TrimSpace(area.AreaName[0].Value)
	if areaName == "" {
		return Location{}, ErrNoLocation
	}
	name := areaName
	if len(area.Country) > 0 && area.Country[0].Value != "" {
		name = fmt.Sprintf("%s, %s", areaName, area.Country[0].Value)
	}

	return Location{Area: areaName, Name: name, Lat: lat, Lon: lon}, nil
}
