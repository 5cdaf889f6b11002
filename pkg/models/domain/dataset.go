package domain

// MetricSeries pairs a daily series with its weekly resampling.
type MetricSeries struct {
	Name   string
	File   string
	Daily  Series
	Weekly Series
}

// Dataset holds every series the report is built from.
type Dataset struct {
	Baseline     int64
	PoolRecords  []PoolBlockSizeRecord
	MaxBlockSize Series
	BlockSize    MetricSeries
	ConfDelay    MetricSeries
	HashRate     MetricSeries
}
