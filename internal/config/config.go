// Package config handles quiz configuration loading and management.
package config

import (
	"github.com/Faultbox/quatkit/pkg/quat"
)

// Config holds all quiz settings.
type Config struct {
	Quiz    QuizConfig    `yaml:"quiz"`
	Angle   AngleConfig   `yaml:"angle"`
	Logging LoggingConfig `yaml:"logging"`
}

// QuizConfig holds question generation settings.
type QuizConfig struct {
	Questions int   `yaml:"questions"` // 0 asks on stdin
	RangeMin  int   `yaml:"range_min"`
	RangeMax  int   `yaml:"range_max"`
	Seed      int64 `yaml:"seed"` // 0 seeds from the clock
}

// Range returns the component range questions are drawn from.
func (q QuizConfig) Range() quat.Range {
	return quat.Range{Min: q.RangeMin, Max: q.RangeMax}
}

// AngleConfig holds the angle search parameters.
type AngleConfig struct {
	Delta float64 `yaml:"delta"`
	Step  float64 `yaml:"step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Quiz: QuizConfig{
			Questions: 0,
			RangeMin:  quat.QuizRange.Min,
			RangeMax:  quat.QuizRange.Max,
			Seed:      0,
		},
		Angle: AngleConfig{
			Delta: quat.DefaultDelta,
			Step:  quat.DefaultStep,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
