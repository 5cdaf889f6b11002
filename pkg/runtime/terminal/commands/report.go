package commands

import (
	"bytes"
	"fmt"

	"github.com/de-tools/block-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/block-atlas/pkg/services/pipeline"

	"github.com/spf13/cobra"
)

// SummaryHandler renders the optional summary block after the weekly table.
type SummaryHandler func(buf *bytes.Buffer, res *pipeline.Result) error

type ReportCmd struct {
	profile         string
	dataDir         string
	valueField      int
	lastWeek        string
	emitPartialWeek bool
	summary         bool
	globals         *Globals
	runner          pipeline.Runner
	summarize       SummaryHandler
}

func NewReportCmd(globals *Globals, runner pipeline.Runner, summarize SummaryHandler) (*cobra.Command, *ReportCmd) {
	rc := &ReportCmd{globals: globals, runner: runner, summarize: summarize}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the weekly block size, occupancy and hash rate report",
		RunE:  rc.Run,
	}

	// Define flags
	cmd.Flags().StringVar(&rc.profile, "profile", "default", "Dataset profile to report on")
	cmd.Flags().StringVar(&rc.dataDir, "data-dir", "", "Directory holding the input files (overrides data_dir)")
	cmd.Flags().IntVar(&rc.valueField, "value-field", 0, "Zero-based field index of the daily value (overrides value_field)")
	cmd.Flags().StringVar(&rc.lastWeek, "last-week", "", "Final week policy: omit or truncate (overrides last_week)")
	cmd.Flags().BoolVar(&rc.emitPartialWeek, "emit-partial-week", false, "Also report the trailing incomplete week")
	cmd.Flags().BoolVar(&rc.summary, "summary", false, "Print a summary after the weekly table")

	return cmd, rc
}

// Run executes the report. It writes nothing unless the whole pipeline succeeds.
func (rc *ReportCmd) Run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings := *rc.globals.Settings
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		settings.DataDir = rc.dataDir
	}
	if flags.Changed("value-field") {
		settings.ValueField = rc.valueField
	}
	if flags.Changed("last-week") {
		settings.LastWeek = rc.lastWeek
	}
	if flags.Changed("emit-partial-week") {
		settings.EmitPartialWeek = rc.emitPartialWeek
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	registry, err := rc.globals.Registry(settings.DataDir)
	if err != nil {
		return err
	}
	profile, err := registry.GetDataset(ctx, rc.profile)
	if err != nil {
		return fmt.Errorf("failed to resolve dataset: %w", err)
	}

	res, err := rc.runner.Run(ctx, profile, settings.PipelineOptions())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.NewReporter(&buf).Handle(res.Report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if rc.summary && rc.summarize != nil {
		if err := rc.summarize(&buf, res); err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
