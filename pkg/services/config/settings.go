package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/de-tools/block-atlas/pkg/services/pipeline"
	"github.com/de-tools/block-atlas/pkg/services/report"
	"github.com/de-tools/block-atlas/pkg/store/blockchain"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "BLOCKATLAS"

type Settings struct {
	DataDir            string        `mapstructure:"data_dir"`
	ValueField         int           `mapstructure:"value_field"`
	EmitPartialWeek    bool          `mapstructure:"emit_partial_week"`
	LastWeek           string        `mapstructure:"last_week"`
	AlignmentTolerance time.Duration `mapstructure:"alignment_tolerance"`
	LogLevel           string        `mapstructure:"log_level"`
}

// LoadSettings reads run settings from an optional file (any format viper understands) and
// BLOCKATLAS_* environment variables. An empty path yields defaults plus environment.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("data_dir", ".")
	v.SetDefault("value_field", blockchain.DefaultValueField)
	v.SetDefault("emit_partial_week", false)
	v.SetDefault("last_week", string(domain.LastWeekOmit))
	v.SetDefault("alignment_tolerance", report.DefaultOptions().AlignmentTolerance)
	v.SetDefault("log_level", zerolog.WarnLevel.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	if s.ValueField < 1 {
		return fmt.Errorf("value_field must be at least 1, got %d", s.ValueField)
	}
	if err := s.PipelineOptions().Report.Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", s.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level, warn when unset.
func (s *Settings) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

func (s *Settings) PipelineOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.Series.ValueField = s.ValueField
	opts.Series.Resample.EmitPartial = s.EmitPartialWeek
	opts.Report.LastWeek = domain.LastWeekPolicy(s.LastWeek)
	opts.Report.AlignmentTolerance = s.AlignmentTolerance
	return opts
}
