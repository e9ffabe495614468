package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.Source = strings.TrimSpace(c.Paths.Source)
	if c.Paths.Source == "" {
		if value, ok := os.LookupEnv("MEDIAORG_SOURCE"); ok {
			c.Paths.Source = strings.TrimSpace(value)
		}
	}
	if c.Paths.Source, err = expandPath(c.Paths.Source); err != nil {
		return fmt.Errorf("paths.source: %w", err)
	}
	c.Paths.Destination = strings.TrimSpace(c.Paths.Destination)
	if c.Paths.Destination == "" {
		if value, ok := os.LookupEnv("MEDIAORG_DESTINATION"); ok {
			c.Paths.Destination = strings.TrimSpace(value)
		}
	}
	if c.Paths.Destination, err = expandPath(c.Paths.Destination); err != nil {
		return fmt.Errorf("paths.destination: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	c.Organize.CreatedTime = strings.ToLower(strings.TrimSpace(c.Organize.CreatedTime))
	if c.Organize.CreatedTime == "" {
		c.Organize.CreatedTime = defaultCreatedTime
	}
	c.Organize.Timezone = strings.TrimSpace(c.Organize.Timezone)
	if c.Organize.Timezone == "" || strings.EqualFold(c.Organize.Timezone, "local") {
		c.Organize.Timezone = defaultTimezone
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
