package ana

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/date"
	"github.com/dadosbr/dadosbr/internal/log"
)

// Assemble fetches the series of every station, at most fanOut at a time (DefaultFanOut
// when fanOut <= 0), and merges them into a Matrix whose columns follow the order of
// codes. Codes are normalized to 8 digits and duplicates are fetched once.
//
// Every fetch runs to completion: a failing station neither cancels nor corrupts the
// others. Failures are joined and returned once all fetches are done.
func (c *Client) Assemble(ctx context.Context, codes []string, dt DataType, fanOut int) (*Matrix, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: at least one station code is required", dadosbr.ErrInvalidArgument)
	}
	if _, err := ParseDataType(string(dt)); err != nil {
		return nil, err
	}
	stations := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		code, err := NormalizeCode(code)
		if err != nil {
			return nil, err
		}
		if !seen[code] {
			seen[code] = true
			stations = append(stations, code)
		}
	}

	if fanOut <= 0 {
		fanOut = DefaultFanOut
	}
	fanOut = min(fanOut, len(stations))

	series := make([]date.Series[dadosbr.Value], len(stations))
	errs := make([]error, len(stations))
	var done atomic.Int32

	var g errgroup.Group
	g.SetLimit(fanOut)
	for i, code := range stations {
		g.Go(func() error {
			s, err := c.Series(ctx, code, dt)
			if err != nil {
				errs[i] = fmt.Errorf("station %s: %w", code, err)
			} else {
				series[i] = s
			}
			log.Debugw("station fetched", "station", code, "days", s.Len(), "error", err,
				"done", done.Add(1), "total", len(stations))
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return merge(stations, series), nil
}
