package domain

import "time"

// LastWeekPolicy decides what happens to the final week, whose hash-rate lookahead does not exist.
type LastWeekPolicy string

const (
	// LastWeekOmit keeps the final row and leaves its lookahead metrics undefined.
	LastWeekOmit LastWeekPolicy = "omit"
	// LastWeekTruncate stops the report one week early.
	LastWeekTruncate LastWeekPolicy = "truncate"
)

// Report represents the weekly correlation report
type Report struct {
	Title  string
	Period TimePeriod
	Rows   []ReportRow
}

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// ReportRow is one week of the report.
type ReportRow struct {
	Time           time.Time
	MaxBlockSize   float64 // bytes
	BlockSize      float64 // bytes
	OccupancyPct   float64
	HashRate       float64
	ConfDelay      float64 // minutes
	HasLookahead   bool
	BlockFindRate  float64 // minutes per block, valid when HasLookahead
	ProjectedDelay float64 // minutes, valid when HasLookahead
}
