package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/block-atlas/pkg/models/domain"
)

// Undefined marks a metric that cannot be computed for a row.
const Undefined = "-"

type TableConfig struct {
	Separator string
}

func DefaultTableConfig() TableConfig {
	return TableConfig{Separator: " | "}
}

// Reporter renders the weekly report as pipe-delimited fixed-width lines, one per week.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// FormatRow renders the columns date, unix time, max block size, block size, occupancy %,
// hash rate / 1000, block find rate, confirmation delay, projected confirmation delay.
func (c *Reporter) FormatRow(row domain.ReportRow) string {
	t := row.Time.UTC()
	sep := c.config.Separator

	findRate, projected := Undefined, Undefined
	if row.HasLookahead {
		findRate = fmt.Sprintf("%5.2f", row.BlockFindRate)
		projected = fmt.Sprintf("%5.2f", row.ProjectedDelay)
	}

	return fmt.Sprintf("%02d:%02d:%04d"+sep+"%10d"+sep+"%7.0f"+sep+"%7.0f"+sep+"%3.1f"+sep+"%8.1f"+sep+"%5s"+sep+"%5.2f"+sep+"%5s",
		t.Day(), int(t.Month()), t.Year(),
		t.Unix(),
		row.MaxBlockSize,
		row.BlockSize,
		row.OccupancyPct,
		row.HashRate/1000.0,
		findRate,
		row.ConfDelay,
		projected)
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": c.FormatRow,
	}

	tmpl := `{{range .Rows}}{{formatRow .}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
