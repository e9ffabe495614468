package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Validate ensures the configuration is usable. Empty source and destination
// are accepted; the CLI resolves them before a run starts.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.Source == "" || c.Paths.Destination == "" {
		return nil
	}
	if filepath.Clean(c.Paths.Source) == filepath.Clean(c.Paths.Destination) {
		return errors.New("paths.source and paths.destination must differ")
	}
	return nil
}

func (c *Config) validateOrganize() error {
	switch c.Organize.CreatedTime {
	case "auto", "birth", "change":
	default:
		return fmt.Errorf("organize.created_time must be auto, birth, or change (got %q)", c.Organize.CreatedTime)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("organize.timezone: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
}

// Location resolves organize.timezone.
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Organize.Timezone)
	if name == "" || name == defaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
