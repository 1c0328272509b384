package config

import "github.com/mgpai22/captioncut/internal/subtitle"

const (
	defaultConfigPath     = "~/.config/captioncut/config.toml"
	projectConfigName     = "captioncut.toml"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	envFFmpegPath         = "CAPTIONCUT_FFMPEG_PATH"
	envFFprobePath        = "CAPTIONCUT_FFPROBE_PATH"
	defaultSubtitleStream = 0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Editing: Editing{
			WrapWidth: subtitle.DefaultWrapWidth,
			SecondEnd: subtitle.OpenEndTimestamp,
		},
		Media: Media{
			SubtitleStream: defaultSubtitleStream,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
