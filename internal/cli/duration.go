package cli

import (
	"fmt"

	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
)

var durationCmd = &cobra.Command{
	Use:   "duration [srt_file]",
	Short: "Print the duration of a caption file",
	Long: `Print the end time, in seconds, of the last cue that has dialogue.

Timing lines without dialogue at the end of the file are ignored.

Examples:
  captioncut duration talk.srt
  captioncut duration talk.srt --default-end 90`,
	Args: cobra.ExactArgs(1),
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(durationCmd)

	durationCmd.Flags().
		Float64("default-end", -1, "Seconds to report when no cue has dialogue (default from config)")
}

func runDuration(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	defaultEnd, _ := cmd.Flags().GetFloat64("default-end")
	if defaultEnd < 0 {
		defaultEnd = cfg.Editing.DefaultEndSeconds
	}

	text, err := subtitle.ReadFile(srtPath)
	if err != nil {
		return err
	}

	seconds, err := subtitle.Duration(text, defaultEnd)
	if err != nil {
		return fmt.Errorf("failed to compute duration: %w", err)
	}

	logger.Debugw("Computed duration",
		"input", srtPath,
		"seconds", seconds,
		"timestamp", subtitle.FormatSeconds(seconds),
	)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", seconds)
	return err
}
