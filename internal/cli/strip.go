package cli

import (
	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
)

var stripCmd = &cobra.Command{
	Use:   "strip [srt_file]",
	Short: "Remove the dialogue of the first cue starting at a timestamp",
	Long: `Remove the dialogue of the first cue whose start timestamp matches --at.

The timing line is kept. If no cue starts at the timestamp the file is
written back unchanged.

Examples:
  captioncut strip talk.srt --at 00:01:05,250
  captioncut strip talk.srt --at 00:01:05,250 -o edited.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().String("at", "", "Start timestamp of the cue to empty (required)")
	_ = stripCmd.MarkFlagRequired("at")
}

func runStrip(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	at, _, err := timestampFlag(cmd, "at")
	if err != nil {
		return err
	}

	text, err := subtitle.ReadFile(srtPath)
	if err != nil {
		return err
	}

	edited := subtitle.RemoveDialogueForFirstTimestamp(text, at)
	if edited == text {
		logger.Warnw("No cue starts at timestamp", "input", srtPath, "at", at)
	}

	return writeResult(cmd, edited)
}
