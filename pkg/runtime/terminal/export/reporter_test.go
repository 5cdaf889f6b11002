package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	week := time.Date(2015, 8, 1, 0, 0, 0, 0, time.UTC)
	report := &domain.Report{
		Rows: []domain.ReportRow{
			{
				Time:           week,
				MaxBlockSize:   2000000,
				BlockSize:      1500000,
				OccupancyPct:   75,
				HashRate:       1000,
				ConfDelay:      8,
				HasLookahead:   true,
				BlockFindRate:  10.0 / 1.1,
				ProjectedDelay: 8.8,
			},
			{
				Time:         week.AddDate(0, 0, 7),
				MaxBlockSize: 1000000,
				BlockSize:    500000,
				OccupancyPct: 50,
				HashRate:     1100,
				ConfDelay:    9.5,
			},
		},
	}

	var buf bytes.Buffer
	err := NewReporter(&buf).Handle(report)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "01:08:2015 | 1438387200 | 2000000 | 1500000 | 75.0 |      1.0 |  9.09 |  8.00 |  8.80", lines[0])
	assert.Equal(t, "08:08:2015 | 1438992000 | 1000000 |  500000 | 50.0 |      1.1 |     - |  9.50 |     -", lines[1])
}

func TestReporter_Handle_NoRows(t *testing.T) {
	var buf bytes.Buffer

	err := NewReporter(&buf).Handle(&domain.Report{})

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
