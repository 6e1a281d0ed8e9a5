package weatherservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FetchByTown resolves the town to current conditions, then uses the returned
// coordinates to fetch the daily forecast and zips both into a Fusion.
func (c *Client) FetchByTown(ctx context.Context, town string) (*Fusion, error) {
	cur, err := c.CurrentByTown(ctx, town)
	if err != nil {
		return nil, err
	}

	if !hasCoordinates(cur) {
		c.log.Warn("no coordinates in current conditions, skipping forecast", zap.String("town", town))
		return &Fusion{Current: cur}, nil
	}

	oc, err := c.OneCall(ctx, cur.Coord.Lat, cur.Coord.Lon)
	if err != nil {
		return nil, err
	}
	return &Fusion{Current: cur, OneCall: oc}, nil
}

// FetchByPosition runs both calls side by side since the coordinates are
// already known. The first failure cancels the other request.
func (c *Client) FetchByPosition(ctx context.Context, lat, lon float64) (*Fusion, error) {
	var f Fusion

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cur, err := c.CurrentByPosition(gctx, lat, lon)
		if err != nil {
			return err
		}
		f.Current = cur
		return nil
	})
	g.Go(func() error {
		oc, err := c.OneCall(gctx, lat, lon)
		if err != nil {
			return err
		}
		f.OneCall = oc
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &f, nil
}

// PruneStaleDays removes forecast days dated before the one-call "current"
// timestamp. A missing current block counts as timestamp 0.
func PruneStaleDays(f *Fusion) {
	if f == nil || f.OneCall == nil {
		return
	}

	var now int64
	if f.OneCall.Current != nil {
		now = f.OneCall.Current.Dt
	}

	kept := f.OneCall.Daily[:0]
	for _, d := range f.OneCall.Daily {
		if d.Dt < now {
			continue
		}
		kept = append(kept, d)
	}
	f.OneCall.Daily = kept
}

func hasCoordinates(cur *Current) bool {
	return cur != nil && cur.Coord != nil && cur.Coord.Lat != 0 && cur.Coord.Lon != 0
}
