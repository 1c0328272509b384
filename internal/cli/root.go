package cli

import (
	"fmt"

	"github.com/mgpai22/captioncut/internal/config"
	"github.com/mgpai22/captioncut/internal/ffmpeg"
	"github.com/mgpai22/captioncut/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "captioncut",
	Short: "Trim, cut and clean up SRT caption files",
	Long: `Captioncut edits SubRip (SRT) caption files on their timeline.

It can report a transcript's duration, empty the dialogue of cues in a
time range, cut a section out of the middle of a transcript and insert
new cues while keeping the numbering contiguous.

Edited captions are written to stdout unless --output is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, _, _, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		logger, err = logging.New(logging.Options{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: verbose,
		})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		ffmpeg.Configure(ffmpeg.BinaryPaths{
			FFmpeg:  cfg.Media.FFmpegPath,
			FFprobe: cfg.Media.FFprobePath,
		})
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/captioncut/config.toml)")
}
