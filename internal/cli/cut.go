package cli

import (
	"context"
	"fmt"

	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
)

var cutCmd = &cobra.Command{
	Use:   "cut [srt_or_video]",
	Short: "Cut a section out of the middle of a transcript",
	Long: `Keep the transcript up to --first-end and from --second-start on,
dropping everything in between and closing the gap.

The input can be an SRT file or a video with an embedded subtitle track.

Examples:
  captioncut cut talk.srt --first-end 00:01:00,000 --second-start 00:02:30,000
  captioncut cut talk.mkv --first-end 0:60.0 --second-start 0:150.0 --offset-ms 500
  captioncut cut talk.srt --first-end 00:01:00,000 --second-start 00:02:30,000 --second-end 00:05:00,000`,
	Args: cobra.ExactArgs(1),
	RunE: runCut,
}

func init() {
	rootCmd.AddCommand(cutCmd)

	cutCmd.Flags().String("first-end", "", "End of the first kept segment (required)")
	cutCmd.Flags().String("second-start", "", "Start of the second kept segment (required)")
	cutCmd.Flags().String("second-end", "", "End of the second kept segment (default from config)")
	cutCmd.Flags().
		Int64("offset-ms", -1, "Delay before the second segment in ms (default from config)")
	cutCmd.Flags().Int("stream", -1, "Subtitle stream for video input (default from config)")
	_ = cutCmd.MarkFlagRequired("first-end")
	_ = cutCmd.MarkFlagRequired("second-start")
}

func runCut(cmd *cobra.Command, args []string) error {
	ref := args[0]

	firstEnd, firstEndMs, err := timestampFlag(cmd, "first-end")
	if err != nil {
		return err
	}
	secondStart, secondStartMs, err := timestampFlag(cmd, "second-start")
	if err != nil {
		return err
	}
	if secondStartMs < firstEndMs {
		return fmt.Errorf("--second-start must not be before --first-end")
	}

	secondEnd, _ := cmd.Flags().GetString("second-end")
	if secondEnd == "" {
		secondEnd = cfg.Editing.SecondEnd
	}
	offsetMs, _ := cmd.Flags().GetInt64("offset-ms")
	if offsetMs < 0 {
		offsetMs = cfg.Editing.SecondOffsetMs
	}
	stream, _ := cmd.Flags().GetInt("stream")

	logger.Infow("Cutting transcript",
		"input", ref,
		"first_end", firstEnd,
		"second_start", secondStart,
		"second_end", secondEnd,
		"offset_ms", offsetMs,
	)

	ctx := context.Background()
	text, err := subtitle.CutInMiddle(
		ctx,
		newFetcher(stream),
		ref,
		firstEnd,
		secondStart,
		subtitle.CutOptions{SecondOffsetMs: offsetMs, SecondEnd: secondEnd},
	)
	if err != nil {
		return fmt.Errorf("cut failed: %w", err)
	}

	return writeResult(cmd, text)
}
