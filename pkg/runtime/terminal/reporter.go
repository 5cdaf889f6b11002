package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/de-tools/block-atlas/pkg/services/pipeline"
	"github.com/dustin/go-humanize"
)

// Summary condenses a run into a few headline numbers.
type Summary struct {
	Title            string
	Period           domain.TimePeriod
	Baseline         int64
	PoolRecords      int
	Pools            int
	PoolPeriods      int
	Days             map[string]int
	Weeks            int
	MeanOccupancy    float64
	MeanMaxBlockSize float64
	Peak             *domain.ReportRow
}

func NewSummary(res *pipeline.Result) Summary {
	ds, rep := res.Dataset, res.Report

	pools := make(map[string]struct{})
	for _, rec := range ds.PoolRecords {
		pools[rec.PoolName] = struct{}{}
	}

	s := Summary{
		Title:       rep.Title,
		Period:      rep.Period,
		Baseline:    ds.Baseline,
		PoolRecords: len(ds.PoolRecords),
		Pools:       len(pools),
		PoolPeriods: len(ds.MaxBlockSize),
		Days: map[string]int{
			ds.BlockSize.Name: len(ds.BlockSize.Daily),
			ds.ConfDelay.Name: len(ds.ConfDelay.Daily),
			ds.HashRate.Name:  len(ds.HashRate.Daily),
		},
		Weeks: len(rep.Rows),
	}

	if len(rep.Rows) == 0 {
		return s
	}

	var occupancy, maxSize float64
	for i := range rep.Rows {
		row := &rep.Rows[i]
		occupancy += row.OccupancyPct
		maxSize += row.MaxBlockSize
		if s.Peak == nil || row.OccupancyPct > s.Peak.OccupancyPct {
			s.Peak = row
		}
	}
	s.MeanOccupancy = occupancy / float64(len(rep.Rows))
	s.MeanMaxBlockSize = maxSize / float64(len(rep.Rows))

	return s
}

// Reporter outputs the run summary in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new summary reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(res *pipeline.Result) error {
	funcMap := template.FuncMap{
		"bytes": func(v float64) string {
			if v < 0 {
				return fmt.Sprintf("%.0f B", v)
			}
			return humanize.Bytes(uint64(v))
		},
		"comma": func(v int) string {
			return humanize.Comma(int64(v))
		},
	}

	tmpl := `
{{.Title}}
Baseline: {{.Baseline}}
Pool records: {{comma .PoolRecords}} ({{.Pools}} pools, {{.PoolPeriods}} periods)
{{range $name, $days := .Days}}Days of {{$name}}: {{comma $days}}
{{end}}{{if .Weeks}}Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}} ({{.Period.Duration}} days)
Weeks reported: {{.Weeks}}
Mean occupancy: {{printf "%.1f" .MeanOccupancy}}%
Mean max block size: {{bytes .MeanMaxBlockSize}}
Peak occupancy: {{printf "%.1f" .Peak.OccupancyPct}}% (week of {{.Peak.Time.Format "2006-01-02"}})
{{else}}No complete weeks to report.
{{end}}`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, NewSummary(res))
}
