package config

import (
	"fmt"

	"go.uber.org/multierr"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every section and returns all problems at once.
func (c *Config) Validate() error {
	var err error

	if c.Quiz.Questions < 0 {
		err = multierr.Append(err, fmt.Errorf("quiz.questions must not be negative, got %d", c.Quiz.Questions))
	}
	if rerr := c.Quiz.Range().Validate(); rerr != nil {
		err = multierr.Append(err, fmt.Errorf("quiz: %w", rerr))
	}
	if c.Angle.Delta <= 0 {
		err = multierr.Append(err, fmt.Errorf("angle.delta must be positive, got %v", c.Angle.Delta))
	}
	if c.Angle.Step <= 0 {
		err = multierr.Append(err, fmt.Errorf("angle.step must be positive, got %v", c.Angle.Step))
	}
	if !validLevels[c.Logging.Level] {
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return err
}
