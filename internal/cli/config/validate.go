package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/capitalone/bases"
)

// Validate checks the output format and every custom base.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid output format %q (expected %s or %s)", c.Output, OutputText, OutputJSON))
	}

	for name, symbols := range c.Bases {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("custom base with empty name"))
			continue
		}
		if _, err := strconv.Atoi(name); err == nil {
			errs = append(errs, fmt.Errorf("custom base %q: name must not be an integer", name))
			continue
		}
		if _, err := bases.NewBase(symbols); err != nil {
			errs = append(errs, fmt.Errorf("custom base %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
