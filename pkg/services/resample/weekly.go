package resample

import (
	"github.com/de-tools/block-atlas/pkg/models/domain"
)

// DaysPerWeek is the divisor of every weekly value, whatever the number of days in the bucket.
const DaysPerWeek = 7.0

type Options struct {
	// EmitPartial flushes the trailing bucket, which is otherwise dropped.
	EmitPartial bool
}

// Weekly folds an ordered daily series into fixed 7-day buckets anchored at its first record.
//
// A bucket is flushed when a record at or past its end is seen. The record then starts the next
// bucket, which begins exactly one week after the previous one. Each weekly value is the bucket
// sum divided by 7.
func Weekly(daily domain.Series, opts Options) (domain.Series, error) {
	first, err := daily.First()
	if err != nil {
		return nil, err
	}

	start := first.Timestamp()
	end := start + domain.SecondsPerWeek
	total := 0.0

	var weekly domain.Series
	for _, rec := range daily {
		if rec.Timestamp() < end {
			total += rec.Value()
			continue
		}

		weekly = append(weekly, domain.NewTimeRecord(start, total/DaysPerWeek))
		start = end
		end += domain.SecondsPerWeek
		total = rec.Value()
	}

	if opts.EmitPartial {
		weekly = append(weekly, domain.NewTimeRecord(start, total/DaysPerWeek))
	}

	return weekly, nil
}
