package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeEditing()
	if err := c.normalizeMedia(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeEditing() {
	c.Editing.SecondEnd = strings.TrimSpace(c.Editing.SecondEnd)
	if c.Editing.SecondEnd == "" {
		c.Editing.SecondEnd = Default().Editing.SecondEnd
	}
	if c.Editing.WrapWidth == 0 {
		c.Editing.WrapWidth = Default().Editing.WrapWidth
	}
}

func (c *Config) normalizeMedia() error {
	if value, ok := os.LookupEnv(envFFmpegPath); ok && strings.TrimSpace(value) != "" {
		c.Media.FFmpegPath = value
	}
	if value, ok := os.LookupEnv(envFFprobePath); ok && strings.TrimSpace(value) != "" {
		c.Media.FFprobePath = value
	}

	var err error
	if c.Media.FFmpegPath, err = expandPath(strings.TrimSpace(c.Media.FFmpegPath)); err != nil {
		return err
	}
	if c.Media.FFprobePath, err = expandPath(strings.TrimSpace(c.Media.FFprobePath)); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
