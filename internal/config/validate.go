package config

import (
	"fmt"

	"github.com/mgpai22/captioncut/internal/subtitle"
)

// Validate checks the configuration for values the editor cannot use.
func (c *Config) Validate() error {
	if err := c.validateEditing(); err != nil {
		return err
	}
	if c.Media.SubtitleStream < 0 {
		return fmt.Errorf("media.subtitle_stream must be >= 0, got %d", c.Media.SubtitleStream)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateEditing() error {
	if c.Editing.WrapWidth < 0 {
		return fmt.Errorf("editing.wrap_width must be positive, got %d", c.Editing.WrapWidth)
	}
	if c.Editing.DefaultEndSeconds < 0 {
		return fmt.Errorf("editing.default_end_seconds must be >= 0, got %v", c.Editing.DefaultEndSeconds)
	}
	if c.Editing.SecondOffsetMs < 0 {
		return fmt.Errorf("editing.second_offset_ms must be >= 0, got %d", c.Editing.SecondOffsetMs)
	}
	if _, err := subtitle.ParseMillis(c.Editing.SecondEnd); err != nil {
		return fmt.Errorf("editing.second_end: %w", err)
	}
	return nil
}
