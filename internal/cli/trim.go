package cli

import (
	"context"
	"fmt"

	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
)

var trimCmd = &cobra.Command{
	Use:   "trim [srt_or_video]",
	Short: "Drop the start of a transcript and shift the rest back",
	Long: `Drop everything before --start seconds and shift the remaining cues
so the transcript begins at zero.

The untouched transcript is fetched alongside the trimmed one so both
durations can be reported.

Examples:
  captioncut trim talk.srt --start 32.012
  captioncut trim talk.mkv --start 90 -o talk-trimmed.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)

	trimCmd.Flags().String("start", "", "Seconds to drop from the start (required)")
	trimCmd.Flags().Int("stream", -1, "Subtitle stream for video input (default from config)")
	_ = trimCmd.MarkFlagRequired("start")
}

func runTrim(cmd *cobra.Command, args []string) error {
	ref := args[0]

	start, _ := cmd.Flags().GetString("start")
	if _, err := subtitle.ParseOffsetSeconds(start); err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	stream, _ := cmd.Flags().GetInt("stream")

	ctx := context.Background()
	original, trimmed, err := subtitle.FetchOriginalAndTrimmed(
		ctx,
		newFetcher(stream),
		ref,
		start,
	)
	if err != nil {
		return fmt.Errorf("trim failed: %w", err)
	}

	defaultEnd := cfg.Editing.DefaultEndSeconds
	originalSeconds, err := subtitle.Duration(original, defaultEnd)
	if err != nil {
		return fmt.Errorf("failed to compute duration: %w", err)
	}
	trimmedSeconds, err := subtitle.Duration(trimmed, defaultEnd)
	if err != nil {
		return fmt.Errorf("failed to compute duration: %w", err)
	}

	logger.Infow("Trimmed transcript",
		"input", ref,
		"start", start,
		"original_duration", subtitle.FormatSeconds(originalSeconds),
		"trimmed_duration", subtitle.FormatSeconds(trimmedSeconds),
	)

	return writeResult(cmd, trimmed)
}
