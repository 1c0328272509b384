package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
)

var insertCmd = &cobra.Command{
	Use:   "insert [srt_file]",
	Short: "Insert a new cue and renumber the cues after it",
	Long: `Insert a cue at position --at (0 = before the first cue). The text is
wrapped to --width columns and every following cue is renumbered.

Examples:
  captioncut insert talk.srt --at 0 --start 00:00:00,000 --end 00:00:02,000 --text "Intro"
  captioncut insert talk.srt --at 3 --start 00:00:10,000 --end 00:00:12,500 --text "[music]" --width 20`,
	Args: cobra.ExactArgs(1),
	RunE: runInsert,
}

func init() {
	rootCmd.AddCommand(insertCmd)

	insertCmd.Flags().Int("at", 0, "Position to insert at")
	insertCmd.Flags().String("start", "", "Start timestamp of the new cue (required)")
	insertCmd.Flags().String("end", "", "End timestamp of the new cue (required)")
	insertCmd.Flags().String("text", "", "Dialogue of the new cue")
	insertCmd.Flags().Int("width", 0, "Wrap width for the dialogue (default from config)")
	_ = insertCmd.MarkFlagRequired("start")
	_ = insertCmd.MarkFlagRequired("end")
}

func runInsert(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	at, _ := cmd.Flags().GetInt("at")
	if at < 0 {
		return fmt.Errorf("--at must be >= 0, got %d", at)
	}
	start, startMs, err := timestampFlag(cmd, "start")
	if err != nil {
		return err
	}
	end, endMs, err := timestampFlag(cmd, "end")
	if err != nil {
		return err
	}
	if endMs < startMs {
		return fmt.Errorf("--end must not be before --start")
	}
	text, _ := cmd.Flags().GetString("text")
	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = cfg.Editing.WrapWidth
	}

	seq, err := subtitle.Open(srtPath)
	if err != nil {
		return err
	}
	at = min(at, seq.Len())

	block := subtitle.NewProseBlock(
		strconv.Itoa(at+1),
		start+" --> "+end,
		strings.TrimSpace(text),
		width,
	)
	seq.Insert(at, block)

	logger.Infow("Inserted cue",
		"input", srtPath,
		"position", at,
		"time_range", block.TimeRange,
		"lines", len(block.Dialogue),
	)

	return writeResult(cmd, seq.String())
}
