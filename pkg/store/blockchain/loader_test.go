package blockchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/de-tools/block-atlas/pkg/services/resample"
	"github.com/de-tools/block-atlas/pkg/store/csvfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstDay = time.Date(2015, 8, 1, 0, 0, 0, 0, time.UTC)

func writeSeries(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultBlockSizeFile)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

// dailyLines renders n consecutive days as day,month,year,value rows.
func dailyLines(from time.Time, n int, value func(i int) float64) []string {
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		d := from.AddDate(0, 0, i)
		lines[i] = fmt.Sprintf("%02d,%02d,%04d,%g", d.Day(), int(d.Month()), d.Year(), value(i))
	}
	return lines
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("daily and weekly series", func(t *testing.T) {
		path := writeSeries(t, dailyLines(firstDay, 15, func(i int) float64 { return float64(i + 1) }))

		got, err := Load(ctx, "blocksize", path, firstDay.Unix(), DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, "blocksize", got.Name)
		assert.Equal(t, path, got.File)
		require.Len(t, got.Daily, 15)
		assert.Equal(t, firstDay.Unix(), got.Daily[0].Timestamp())
		require.Len(t, got.Weekly, 2)
		assert.InDelta(t, 28.0/7.0, got.Weekly[0].Value(), 1e-12)
		assert.InDelta(t, 77.0/7.0, got.Weekly[1].Value(), 1e-12)
	})

	t.Run("days before the baseline are discarded", func(t *testing.T) {
		path := writeSeries(t, dailyLines(firstDay, 20, func(i int) float64 { return 1 }))
		baseline := firstDay.AddDate(0, 0, 5).Unix() - 3600

		got, err := Load(ctx, "hash_rate", path, baseline, DefaultOptions())

		require.NoError(t, err)
		require.Len(t, got.Daily, 15)
		for _, rec := range got.Daily {
			assert.GreaterOrEqual(t, rec.Timestamp(), baseline)
		}
		assert.Equal(t, firstDay.AddDate(0, 0, 5).Unix(), got.Weekly[0].Timestamp())
	})

	t.Run("everything before the baseline", func(t *testing.T) {
		path := writeSeries(t, dailyLines(firstDay, 3, func(i int) float64 { return 1 }))

		_, err := Load(ctx, "conf_delay", path, firstDay.AddDate(1, 0, 0).Unix(), DefaultOptions())

		assert.ErrorIs(t, err, domain.ErrEmptySeries)
	})

	t.Run("slash dates with a configured value field", func(t *testing.T) {
		path := writeSeries(t, []string{
			"01/08/2015 00:00:00,0.5",
			"02/08/2015 00:00:00,0.7",
		})
		opts := Options{ValueField: 1, Resample: resample.Options{EmitPartial: true}}

		got, err := Load(ctx, "blocksize", path, 0, opts)

		require.NoError(t, err)
		require.Len(t, got.Daily, 2)
		assert.Equal(t, firstDay.AddDate(0, 0, 1).Unix(), got.Daily[1].Timestamp())
		assert.InDelta(t, 0.7, got.Daily[1].Value(), 1e-12)
		require.Len(t, got.Weekly, 1)
		assert.InDelta(t, 1.2/7.0, got.Weekly[0].Value(), 1e-12)
	})

	t.Run("invalid calendar date fails", func(t *testing.T) {
		path := writeSeries(t, []string{"31,09,2015,1"})

		_, err := Load(ctx, "blocksize", path, 0, DefaultOptions())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedRow)
		assert.Contains(t, err.Error(), "invalid date")
	})

	t.Run("missing value field", func(t *testing.T) {
		path := writeSeries(t, []string{"01,08,2015"})

		_, err := Load(ctx, "blocksize", path, 0, DefaultOptions())

		assert.ErrorIs(t, err, domain.ErrMalformedRow)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(ctx, "blocksize", filepath.Join(t.TempDir(), "x.csv"), 0, DefaultOptions())

		assert.ErrorIs(t, err, domain.ErrMissingFile)
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		want    time.Time
		used    int
		wantErr bool
	}{
		{name: "three fields", fields: []string{"17", "08", "2015", "1"}, want: time.Date(2015, 8, 17, 0, 0, 0, 0, time.UTC), used: 3},
		{name: "slash date", fields: []string{"29/02/2016", "1"}, want: time.Date(2016, 2, 29, 0, 0, 0, 0, time.UTC), used: 1},
		{name: "not a leap year", fields: []string{"29/02/2015", "1"}, wantErr: true},
		{name: "month thirteen", fields: []string{"01", "13", "2015", "1"}, wantErr: true},
		{name: "day zero", fields: []string{"00", "01", "2015", "1"}, wantErr: true},
		{name: "text", fields: []string{"aa", "01", "2015", "1"}, wantErr: true},
		{name: "short slash date", fields: []string{"01/2015", "1"}, wantErr: true},
		{name: "too few fields", fields: []string{"01", "02"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, used, err := parseDate(csvfile.Row{File: "f.csv", Line: 1, Fields: tt.fields})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMalformedRow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.used, used)
		})
	}
}
