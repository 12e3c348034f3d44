package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. A missing TMDB key is not an
// error here: only video files need it, and they are skipped without one.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateLookupCache(); err != nil {
		return err
	}
	if err := c.validateRename(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTMDB() error {
	if !strings.HasPrefix(c.TMDB.BaseURL, "http://") && !strings.HasPrefix(c.TMDB.BaseURL, "https://") {
		return fmt.Errorf("tmdb.base_url must be an http(s) URL, got %q", c.TMDB.BaseURL)
	}
	if c.TMDB.TimeoutSeconds < 0 {
		return errors.New("tmdb.timeout_seconds must be positive")
	}
	if c.TMDB.RequestsPerSecond < 0 {
		return errors.New("tmdb.requests_per_second must be zero (unlimited) or positive")
	}
	return nil
}

func (c *Config) validateLookupCache() error {
	if c.LookupCache.TTLHours < 0 {
		return errors.New("lookup_cache.ttl_hours must be positive")
	}
	return nil
}

func (c *Config) validateRename() error {
	if c.Rename.Workers < 0 {
		return errors.New("rename.workers must be zero (one per CPU) or positive")
	}
	if strings.ContainsAny(c.Rename.ImagePrefix, `/\`) {
		return fmt.Errorf("rename.image_prefix must not contain path separators, got %q", c.Rename.ImagePrefix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
