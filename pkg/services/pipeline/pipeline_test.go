package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2015, 8, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	dir     string
	profile domain.DatasetProfile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	return &fixture{dir: dir, profile: domain.DefaultDatasetProfile(dir)}
}

func (f *fixture) write(t *testing.T, name string, lines []string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, name), []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func (f *fixture) daily(t *testing.T, name string, n int, value func(i int) float64) {
	t.Helper()
	lines := make([]string, n)
	for i := range lines {
		d := day0.AddDate(0, 0, i)
		lines[i] = fmt.Sprintf("%02d,%02d,%04d,%g", d.Day(), int(d.Month()), d.Year(), value(i))
	}
	f.write(t, name, lines)
}

func constant(v float64) func(int) float64 {
	return func(int) float64 { return v }
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("two weeks of aligned data", func(t *testing.T) {
		f := newFixture(t)
		f.write(t, domain.DefaultPoolBlockSizeFile, []string{
			fmt.Sprintf("%d,1000000,A,1.0", day0.Unix()),
			fmt.Sprintf("%d,1000000,A,1.0", day0.AddDate(0, 0, 7).Unix()),
		})
		// 15 days: the 15th closes the second week
		f.daily(t, domain.DefaultBlockSizeFile, 15, constant(0.5))
		f.daily(t, domain.DefaultConfDelayFile, 15, constant(8))
		f.daily(t, domain.DefaultHashRateFile, 15, func(i int) float64 {
			if i < 7 {
				return 1000
			}
			return 1100
		})

		res, err := NewRunner().Run(ctx, f.profile, DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, day0.Unix(), res.Dataset.Baseline)
		require.Len(t, res.Report.Rows, 2)

		first := res.Report.Rows[0]
		assert.Equal(t, day0, first.Time)
		assert.InDelta(t, 1000000.0, first.MaxBlockSize, 1e-6)
		assert.InDelta(t, 500000.0, first.BlockSize, 1e-6)
		assert.InDelta(t, 50.0, first.OccupancyPct, 1e-9)
		assert.InDelta(t, 1000.0, first.HashRate, 1e-9)
		assert.InDelta(t, 10.0/1.1, first.BlockFindRate, 1e-9)
		assert.InDelta(t, 8.8, first.ProjectedDelay, 1e-9)

		second := res.Report.Rows[1]
		assert.Equal(t, day0.AddDate(0, 0, 7), second.Time)
		assert.InDelta(t, 1100.0, second.HashRate, 1e-9)
		assert.False(t, second.HasLookahead)
	})

	t.Run("one pool period and six days", func(t *testing.T) {
		f := newFixture(t)
		f.write(t, domain.DefaultPoolBlockSizeFile, []string{
			fmt.Sprintf("%d,1000000,A,0.5", day0.Unix()),
			fmt.Sprintf("%d,750000,B,0.5", day0.Unix()),
		})
		f.daily(t, domain.DefaultBlockSizeFile, 6, constant(0.5))
		f.daily(t, domain.DefaultConfDelayFile, 6, constant(8))
		f.daily(t, domain.DefaultHashRateFile, 6, constant(1000))

		res, err := NewRunner().Run(ctx, f.profile, DefaultOptions())

		require.NoError(t, err)
		assert.Empty(t, res.Report.Rows)
		require.Len(t, res.Dataset.MaxBlockSize, 1)
		assert.InDelta(t, 875000.0, res.Dataset.MaxBlockSize[0].Value(), 1e-9)
	})

	t.Run("blockchain data never reaches before the baseline", func(t *testing.T) {
		f := newFixture(t)
		baseline := day0.AddDate(0, 0, 3)
		f.write(t, domain.DefaultPoolBlockSizeFile, []string{
			fmt.Sprintf("%d,1000000,A,1.0", baseline.Unix()),
		})
		f.daily(t, domain.DefaultBlockSizeFile, 10, constant(0.5))
		f.daily(t, domain.DefaultConfDelayFile, 10, constant(8))
		f.daily(t, domain.DefaultHashRateFile, 10, constant(1000))

		ds, err := Load(ctx, f.profile, DefaultOptions().Series)

		require.NoError(t, err)
		for _, m := range []domain.MetricSeries{ds.BlockSize, ds.ConfDelay, ds.HashRate} {
			require.Len(t, m.Daily, 7, m.Name)
			for _, rec := range m.Daily {
				assert.GreaterOrEqual(t, rec.Timestamp(), baseline.Unix(), m.Name)
			}
		}
	})

	t.Run("missing hash rate file", func(t *testing.T) {
		f := newFixture(t)
		f.write(t, domain.DefaultPoolBlockSizeFile, []string{fmt.Sprintf("%d,1000000,A,1.0", day0.Unix())})
		f.daily(t, domain.DefaultBlockSizeFile, 3, constant(0.5))
		f.daily(t, domain.DefaultConfDelayFile, 3, constant(8))

		_, err := NewRunner().Run(ctx, f.profile, DefaultOptions())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingFile)
		assert.Contains(t, err.Error(), domain.DefaultHashRateFile)
	})

	t.Run("misaligned series fail", func(t *testing.T) {
		f := newFixture(t)
		f.write(t, domain.DefaultPoolBlockSizeFile, []string{
			fmt.Sprintf("%d,1000000,A,1.0", day0.Unix()),
			fmt.Sprintf("%d,1000000,A,1.0", day0.AddDate(0, 0, 7).Unix()),
		})
		f.daily(t, domain.DefaultBlockSizeFile, 15, constant(0.5))
		f.daily(t, domain.DefaultConfDelayFile, 8, constant(8))
		f.daily(t, domain.DefaultHashRateFile, 15, constant(1000))

		_, err := NewRunner().Run(ctx, f.profile, DefaultOptions())

		assert.ErrorIs(t, err, domain.ErrIndexMisalignment)
	})
}
