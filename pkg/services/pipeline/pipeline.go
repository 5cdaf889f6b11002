// Package pipeline runs the report end to end: pool baseline, blockchain series, weekly join.
package pipeline

import (
	"context"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/de-tools/block-atlas/pkg/services/report"
	"github.com/de-tools/block-atlas/pkg/store/blockchain"
	"github.com/de-tools/block-atlas/pkg/store/pool"
	"github.com/rs/zerolog"
)

// Series names, as used in logs and error messages.
const (
	SeriesBlockSize = "blocksize"
	SeriesConfDelay = "conf_delay"
	SeriesHashRate  = "hash_rate"
)

type Options struct {
	Series blockchain.Options
	Report report.Options
}

func DefaultOptions() Options {
	return Options{
		Series: blockchain.DefaultOptions(),
		Report: report.DefaultOptions(),
	}
}

// Result is the outcome of a successful run.
type Result struct {
	Dataset *domain.Dataset
	Report  *domain.Report
}

type Runner interface {
	Run(ctx context.Context, profile domain.DatasetProfile, opts Options) (*Result, error)
}

type runner struct{}

func NewRunner() Runner {
	return &runner{}
}

func (r *runner) Run(ctx context.Context, profile domain.DatasetProfile, opts Options) (*Result, error) {
	if err := opts.Report.Validate(); err != nil {
		return nil, err
	}

	ds, err := Load(ctx, profile, opts.Series)
	if err != nil {
		return nil, err
	}

	rep, err := report.Generate(ctx, ds, opts.Report)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("profile", profile.Name).
		Int("weeks", len(ds.BlockSize.Weekly)).
		Int("rows", len(rep.Rows)).
		Msg("report ready")

	return &Result{Dataset: ds, Report: rep}, nil
}

// Load reads every input of profile. The pool file comes first: its first timestamp is the
// baseline the blockchain series are truncated to.
func Load(ctx context.Context, profile domain.DatasetProfile, opts blockchain.Options) (*domain.Dataset, error) {
	logger := zerolog.Ctx(ctx)

	pools, err := pool.Load(ctx, profile.Path(profile.PoolBlockSize))
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int64("baseline", pools.Baseline).
		Int("periods", len(pools.MaxBlockSize)).
		Msg("pool baseline established")

	ds := &domain.Dataset{
		Baseline:     pools.Baseline,
		PoolRecords:  pools.Records,
		MaxBlockSize: pools.MaxBlockSize,
	}

	inputs := []struct {
		name string
		file string
		dst  *domain.MetricSeries
	}{
		{SeriesBlockSize, profile.BlockSize, &ds.BlockSize},
		{SeriesConfDelay, profile.ConfDelay, &ds.ConfDelay},
		{SeriesHashRate, profile.HashRate, &ds.HashRate},
	}
	for _, in := range inputs {
		series, err := blockchain.Load(ctx, in.name, profile.Path(in.file), ds.Baseline, opts)
		if err != nil {
			return nil, err
		}
		*in.dst = series
	}

	return ds, nil
}
