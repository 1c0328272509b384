package cli

import (
	"fmt"

	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear [srt_file]",
	Short: "Remove dialogue from cues starting inside a time range",
	Long: `Remove the dialogue of every cue whose start falls in [--from, --to).

Timing lines are kept, and a cue starting exactly at --to is left alone.

Examples:
  captioncut clear talk.srt --from 00:00:10,000 --to 00:00:20,000
  captioncut clear talk.srt --from 0:10.5 --to 0:20.0 -o edited.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().String("from", "", "Start of the range, inclusive (required)")
	clearCmd.Flags().String("to", "", "End of the range, exclusive (required)")
	_ = clearCmd.MarkFlagRequired("from")
	_ = clearCmd.MarkFlagRequired("to")
}

func runClear(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	_, fromMs, err := timestampFlag(cmd, "from")
	if err != nil {
		return err
	}
	_, toMs, err := timestampFlag(cmd, "to")
	if err != nil {
		return err
	}
	if toMs < fromMs {
		return fmt.Errorf("--to must not be before --from")
	}

	text, err := subtitle.ReadFile(srtPath)
	if err != nil {
		return err
	}

	logger.Infow("Clearing dialogue",
		"input", srtPath,
		"from_ms", fromMs,
		"to_ms", toMs,
	)

	edited, err := subtitle.RemoveDialogueBetween(text, fromMs, toMs)
	if err != nil {
		return fmt.Errorf("failed to clear dialogue: %w", err)
	}

	return writeResult(cmd, edited)
}
