// Package pool loads the mining pool block size file.
//
// Each row is `timestamp,largest_block,pool_name,fraction`: the largest block a pool produced in
// the period starting at timestamp, and the fraction of the period's blocks that pool found.
// Rows of one period share a timestamp and are expected to be consecutive.
package pool

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/de-tools/block-atlas/pkg/store/csvfile"
	"github.com/rs/zerolog"
)

const (
	fieldTimestamp = iota
	fieldLargestBlock
	fieldPoolName
	fieldFraction
	fieldCount
)

// Result is the content of a pool block size file.
type Result struct {
	Records []domain.PoolBlockSizeRecord
	// MaxBlockSize has one record per timestamp group.
	MaxBlockSize domain.Series
	// Baseline is the timestamp of the first row. Other series start no earlier.
	Baseline int64
}

// Load parses the pool block size file at path.
func Load(ctx context.Context, path string) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	var records []domain.PoolBlockSizeRecord
	err := csvfile.ReadRows(path, func(row csvfile.Row) error {
		rec, err := parseRow(row)
		if err != nil {
			return err
		}
		if rec.PoolName != row.Fields[fieldPoolName] {
			logger.Debug().Int("line", row.Line).Str("pool", rec.PoolName).Msg("pool name truncated")
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w: no pool records, cannot establish baseline", path, domain.ErrEmptySeries)
	}

	result := &Result{
		Records:      records,
		MaxBlockSize: AggregateMaxBlockSize(records),
		Baseline:     records[0].Timestamp,
	}

	logger.Debug().
		Int("records", len(records)).
		Int("periods", len(result.MaxBlockSize)).
		Int64("baseline", result.Baseline).
		Msg("pool block sizes loaded")

	return result, nil
}

// AggregateMaxBlockSize sums fraction × largest block over each run of rows sharing a timestamp.
func AggregateMaxBlockSize(records []domain.PoolBlockSizeRecord) domain.Series {
	if len(records) == 0 {
		return nil
	}

	var out domain.Series
	current := records[0].Timestamp
	total := 0.0
	for _, rec := range records {
		if rec.Timestamp != current {
			out = append(out, domain.NewTimeRecord(current, total))
			current = rec.Timestamp
			total = 0
		}
		total += rec.WeightedSize()
	}
	out = append(out, domain.NewTimeRecord(current, total))

	return out
}

func parseRow(row csvfile.Row) (domain.PoolBlockSizeRecord, error) {
	if err := row.Expect(fieldCount); err != nil {
		return domain.PoolBlockSizeRecord{}, err
	}

	ts, err := row.Int(fieldTimestamp, "timestamp")
	if err != nil {
		return domain.PoolBlockSizeRecord{}, err
	}
	largest, err := row.Int(fieldLargestBlock, "largest_block")
	if err != nil {
		return domain.PoolBlockSizeRecord{}, err
	}
	fraction, err := row.Float(fieldFraction, "fraction")
	if err != nil {
		return domain.PoolBlockSizeRecord{}, err
	}

	return domain.PoolBlockSizeRecord{
		Timestamp:    ts,
		PoolName:     boundName(row.Fields[fieldPoolName]),
		LargestBlock: largest,
		Fraction:     fraction,
	}, nil
}

// boundName cuts name to MaxPoolNameBytes without splitting a UTF-8 sequence.
func boundName(name string) string {
	if len(name) <= domain.MaxPoolNameBytes {
		return name
	}
	cut := domain.MaxPoolNameBytes
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
