package assertz

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/zoobzio/clockz"
)

// Config controls how assertions compare and print values. It is passed to
// assertions explicitly, through WithConfig or a soft assertion session.
type Config struct {
	// Clock is used by checks relative to the current time and by channel
	// timeouts. Nil means clockz.RealClock.
	Clock clockz.Clock

	MaxElementsForPrinting            int  `env:"ASSERTZ_MAX_ELEMENTS_FOR_PRINTING"              envDefault:"1000"`
	MaxLengthForSingleLineDescription int  `env:"ASSERTZ_MAX_LENGTH_FOR_SINGLE_LINE_DESCRIPTION" envDefault:"80"`
	MaxStringLength                   int  `env:"ASSERTZ_MAX_STRING_LENGTH"                      envDefault:"0"`
	CompareUnexportedFields           bool `env:"ASSERTZ_COMPARE_UNEXPORTED_FIELDS"              envDefault:"true"`
	PrintCallerLocation               bool `env:"ASSERTZ_PRINT_CALLER_LOCATION"                  envDefault:"true"`
	ShowDiff                          bool `env:"ASSERTZ_SHOW_DIFF"                              envDefault:"true"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Clock:                             clockz.RealClock,
		MaxElementsForPrinting:            1000,
		MaxLengthForSingleLineDescription: 80,
		CompareUnexportedFields:           true,
		PrintCallerLocation:               true,
		ShowDiff:                          true,
	}
}

// LoadConfig reads the configuration from ASSERTZ_* environment variables,
// falling back to the defaults for unset ones.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Clock = clockz.RealClock
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot produce readable messages.
func (c Config) Validate() error {
	var errs []error
	if c.MaxElementsForPrinting < 1 {
		errs = append(errs, fmt.Errorf("max elements for printing must be at least 1, got %d", c.MaxElementsForPrinting))
	}
	if c.MaxLengthForSingleLineDescription < 1 {
		errs = append(errs, fmt.Errorf("max length for single line description must be at least 1, got %d", c.MaxLengthForSingleLineDescription))
	}
	if c.MaxStringLength < 0 {
		errs = append(errs, fmt.Errorf("max string length must not be negative, got %d", c.MaxStringLength))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) clock() clockz.Clock {
	if c.Clock == nil {
		return clockz.RealClock
	}
	return c.Clock
}

func (c Config) representation() representation {
	return representation{
		maxElements:      c.MaxElementsForPrinting,
		maxSingleLineLen: c.MaxLengthForSingleLineDescription,
		maxStringLen:     c.MaxStringLength,
	}
}
