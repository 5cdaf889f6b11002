// Package blockchain loads the daily blockchain.info style series (block size, confirmation
// delay, hash rate) and resamples them to weeks.
package blockchain

import (
	"context"
	"fmt"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/de-tools/block-atlas/pkg/services/resample"
	"github.com/de-tools/block-atlas/pkg/store/csvfile"
	"github.com/rs/zerolog"
)

// DefaultValueField is the 4th comma-delimited field, the one holding the daily value.
const DefaultValueField = 3

type Options struct {
	// ValueField is the zero-based index of the value among the comma-delimited fields.
	ValueField int
	Resample   resample.Options
}

func DefaultOptions() Options {
	return Options{ValueField: DefaultValueField}
}

// Load reads the daily series named name from path, discarding days before baseline, and
// resamples it into weeks.
func Load(ctx context.Context, name, path string, baseline int64, opts Options) (domain.MetricSeries, error) {
	logger := zerolog.Ctx(ctx).With().Str("series", name).Str("file", path).Logger()

	daily, discarded, err := readDaily(path, baseline, opts.ValueField)
	if err != nil {
		return domain.MetricSeries{}, err
	}

	weekly, err := resample.Weekly(daily, opts.Resample)
	if err != nil {
		return domain.MetricSeries{}, fmt.Errorf("%s: %w: no days at or after baseline %d", path, err, baseline)
	}

	logger.Debug().
		Int("days", len(daily)).
		Int("discarded", discarded).
		Int("weeks", len(weekly)).
		Msg("series loaded")

	return domain.MetricSeries{
		Name:   name,
		File:   path,
		Daily:  daily,
		Weekly: weekly,
	}, nil
}

func readDaily(path string, baseline int64, valueField int) (domain.Series, int, error) {
	var daily domain.Series
	discarded := 0

	err := csvfile.ReadRows(path, func(row csvfile.Row) error {
		day, used, err := parseDate(row)
		if err != nil {
			return err
		}
		if valueField < used {
			return row.Malformed(fmt.Sprintf("value field %d overlaps the date fields", valueField), nil)
		}

		ts := day.Unix()
		if ts < baseline {
			discarded++
			return nil
		}

		value, err := row.Float(valueField, "value")
		if err != nil {
			return err
		}
		daily = append(daily, domain.NewTimeRecord(ts, value))
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return daily, discarded, nil
}
