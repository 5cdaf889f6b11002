package domain

import (
	"fmt"
	"time"
)

// SecondsPerDay and SecondsPerWeek are the bucket units of the weekly axis.
const (
	SecondsPerDay  int64 = 24 * 3600
	SecondsPerWeek int64 = 7 * SecondsPerDay
)

// TimeRecord is a single (timestamp, value) observation.
type TimeRecord struct {
	timestamp int64
	value     float64
}

func NewTimeRecord(timestamp int64, value float64) TimeRecord {
	return TimeRecord{timestamp: timestamp, value: value}
}

// Timestamp returns the Unix time of the record in seconds.
func (r TimeRecord) Timestamp() int64 {
	return r.timestamp
}

func (r TimeRecord) Value() float64 {
	return r.value
}

// Time returns the record timestamp as a UTC time.
func (r TimeRecord) Time() time.Time {
	return time.Unix(r.timestamp, 0).UTC()
}

func (r TimeRecord) String() string {
	return fmt.Sprintf("%s=%g", r.Time().Format("2006-01-02"), r.value)
}

// Series is an ordered sequence of records. Order is the order of the source file.
type Series []TimeRecord

// At returns the record at index i or ErrOutOfRange.
func (s Series) At(i int) (TimeRecord, error) {
	if i < 0 || i >= len(s) {
		return TimeRecord{}, fmt.Errorf("%w: index %d, series length %d", ErrOutOfRange, i, len(s))
	}
	return s[i], nil
}

// First returns the first record or ErrEmptySeries.
func (s Series) First() (TimeRecord, error) {
	if len(s) == 0 {
		return TimeRecord{}, ErrEmptySeries
	}
	return s[0], nil
}

// Mean returns the arithmetic mean of the series values, 0 for an empty series.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var total float64
	for _, r := range s {
		total += r.value
	}
	return total / float64(len(s))
}
