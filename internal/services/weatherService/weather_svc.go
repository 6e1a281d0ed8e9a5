package weatherservice

import (
	"context"
	"strings"
	"time"

	"github.com/redjax/forecast/internal/utils/strutils"
	"go.uber.org/zap"
)

// Query selects what to look up. Exactly one of Town, coordinates or Auto is used,
// checked in that order.
type Query struct {
	Town      string
	Lat, Lon  float64
	HasCoords bool
	Auto      bool
}

func (q Query) empty() bool {
	return strings.TrimSpace(q.Town) == "" && !q.HasCoords && !q.Auto
}

// Report is everything a screen needs after one lookup.
// Town is always a plain name that can be searched again; Place is the
// longer detected label shown instead of it after auto-location.
type Report struct {
	Town      string             `json:"town"`
	Place     string             `json:"place,omitempty"`
	Current   *WeatherDisplayed  `json:"current,omitempty"`
	NextDays  []WeatherDisplayed `json:"next_days"`
	Position  Position           `json:"position"`
	MapURL    string             `json:"map_url"`
	FetchedAt time.Time          `json:"fetched_at"`
	Fusion    *Fusion            `json:"-"`
}

// Title is the heading for the report: the detected place when there is one.
func (r *Report) Title() string {
	if r.Place != "" {
		return r.Place
	}
	return r.Town
}

// Recorder persists successful lookups.
type Recorder interface {
	Record(ctx context.Context, town string, lat, lon float64) error
}

type Service struct {
	client    *Client
	locator   *Locator
	formatter Formatter
	recorder  Recorder
	days      int
	log       *zap.Logger
	now       func() time.Time
}

type ServiceOptions struct {
	Formatter Formatter
	Locator   *Locator
	Recorder  Recorder
	// Days caps the forecast list; 0 keeps every day.
	Days   int
	Logger *zap.Logger
}

func NewService(client *Client, opts ServiceOptions) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	locator := opts.Locator
	if locator == nil {
		locator = NewLocator("", nil, logger.Named("locate"))
	}
	return &Service{
		client:    client,
		locator:   locator,
		formatter: opts.Formatter,
		recorder:  opts.Recorder,
		days:      opts.Days,
		log:       logger,
		now:       time.Now,
	}
}

// Lookup fetches, merges, prunes and formats the weather for q.
func (s *Service) Lookup(ctx context.Context, q Query) (*Report, error) {
	if q.empty() {
		return nil, ErrEmptyQuery
	}

	var (
		fu    *Fusion
		name  string
		place string
		err   error
	)

	switch {
	case strings.TrimSpace(q.Town) != "":
		fu, err = s.client.FetchByTown(ctx, q.Town)
		if err == nil && (fu.Current == nil || fu.Current.Name == "") {
			name = strutils.ToTitleCase(q.Town, s.formatter.Locale)
		}
	case q.HasCoords:
		fu, err = s.client.FetchByPosition(ctx, q.Lat, q.Lon)
	default:
		var loc Location
		loc, err = s.locator.DetectLocation(ctx)
		if err != nil {
			return nil, err
		}
		s.log.Debug("location detected", zap.String("name", loc.Name),
			zap.Float64("lat", loc.Lat), zap.Float64("lon", loc.Lon))
		place = loc.Name
		fu, err = s.client.FetchByPosition(ctx, loc.Lat, loc.Lon)
		if err == nil && (fu.Current == nil || fu.Current.Name == "") {
			name = loc.Area
		}
	}
	if err != nil {
		return nil, err
	}

	PruneStaleDays(fu)

	if fu.Current != nil && fu.Current.Name != "" && name == "" {
		name = fu.Current.Name
	}

	report := &Report{
		Town:      name,
		Place:     place,
		NextDays:  s.formatter.NextDays(fu),
		Position:  PositionOf(fu),
		FetchedAt: s.now(),
		Fusion:    fu,
	}
	if cur, ok := s.formatter.Current(fu); ok {
		report.Current = &cur
	}
	if s.days > 0 && len(report.NextDays) > s.days {
		report.NextDays = report.NextDays[:s.days]
	}
	report.MapURL = MapURL(report.Position, MapZoom)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, report.Town, report.Position.Lat, report.Position.Lon); err != nil {
			// history is best effort
			s.log.Warn("could not record lookup", zap.Error(err))
		}
	}

	return report, nil
}
