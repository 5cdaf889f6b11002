// Package report joins the weekly series of a dataset into report rows.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const Title = "Block size, occupancy and hash rate by week"

type Options struct {
	LastWeek domain.LastWeekPolicy
	// AlignmentTolerance bounds the distance between a pool period and the week it is joined
	// with. Zero or less disables the timestamp check; lengths are always checked.
	AlignmentTolerance time.Duration
}

func DefaultOptions() Options {
	return Options{
		LastWeek:           domain.LastWeekOmit,
		AlignmentTolerance: 7 * 24 * time.Hour,
	}
}

func (o Options) Validate() error {
	switch o.LastWeek {
	case domain.LastWeekOmit, domain.LastWeekTruncate:
		return nil
	default:
		return fmt.Errorf("unknown last week policy %q (want %q or %q)", o.LastWeek, domain.LastWeekOmit, domain.LastWeekTruncate)
	}
}

// Generate builds one row per week of the block size series.
//
// Series are joined by position. CheckAlignment guards the join: a dataset whose weekly series
// disagree in length or start week is rejected instead of producing a misleading report.
func Generate(ctx context.Context, ds *domain.Dataset, opts Options) (*domain.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := CheckAlignment(ds, opts.AlignmentTolerance); err != nil {
		return nil, err
	}

	weeks := len(ds.BlockSize.Weekly)
	n := weeks
	if opts.LastWeek == domain.LastWeekTruncate && n > 0 {
		n--
	}

	rows := make([]domain.ReportRow, 0, n)
	for i := 0; i < n; i++ {
		row, err := buildRow(ds, i)
		if err != nil {
			return nil, err
		}

		next, err := ds.HashRate.Weekly.At(i + 1)
		switch {
		case err == nil:
			row.HasLookahead = true
			row.BlockFindRate = BlockFindRate(row.HashRate, next.Value())
			row.ProjectedDelay = ProjectedConfDelay(row.ConfDelay, row.HashRate, next.Value())
		case opts.LastWeek == domain.LastWeekOmit && i == weeks-1:
			// no following week: find rate and projected delay stay undefined
		default:
			return nil, fmt.Errorf("week %d: hash rate lookahead: %w", i, err)
		}

		rows = append(rows, row)
	}

	report := &domain.Report{Title: Title, Rows: rows}
	if len(rows) > 0 {
		start := rows[0].Time
		end := rows[len(rows)-1].Time.Add(7 * 24 * time.Hour)
		report.Period = domain.TimePeriod{
			Start:    start,
			End:      end,
			Duration: int(end.Sub(start).Hours() / 24),
		}
	}

	zerolog.Ctx(ctx).Debug().
		Int("weeks", weeks).
		Int("rows", len(rows)).
		Str("last_week", string(opts.LastWeek)).
		Msg("report generated")

	return report, nil
}

func buildRow(ds *domain.Dataset, i int) (domain.ReportRow, error) {
	maxBS, err := ds.MaxBlockSize.At(i)
	if err != nil {
		return domain.ReportRow{}, fmt.Errorf("week %d: max block size: %w", i, err)
	}
	bs, err := ds.BlockSize.Weekly.At(i)
	if err != nil {
		return domain.ReportRow{}, fmt.Errorf("week %d: block size: %w", i, err)
	}
	hr, err := ds.HashRate.Weekly.At(i)
	if err != nil {
		return domain.ReportRow{}, fmt.Errorf("week %d: hash rate: %w", i, err)
	}
	cd, err := ds.ConfDelay.Weekly.At(i)
	if err != nil {
		return domain.ReportRow{}, fmt.Errorf("week %d: confirmation delay: %w", i, err)
	}

	blockSize := bs.Value() * BytesPerMegabyte
	return domain.ReportRow{
		Time:         maxBS.Time(),
		MaxBlockSize: maxBS.Value(),
		BlockSize:    blockSize,
		OccupancyPct: Occupancy(blockSize, maxBS.Value()),
		HashRate:     hr.Value(),
		ConfDelay:    cd.Value(),
	}, nil
}
