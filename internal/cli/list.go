package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list [srt_file]",
	Short: "List the cues of a caption file",
	Long: `List every cue with its index, start, end, length and dialogue.

Formats: table (default), json, yaml.

Examples:
  captioncut list talk.srt
  captioncut list talk.srt --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("format", "f", "table", "Output format (table, json, yaml)")
}

// one cue as shown by list
type cueRow struct {
	Index   int     `json:"index" yaml:"index"`
	Start   string  `json:"start" yaml:"start"`
	End     string  `json:"end" yaml:"end"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
	Text    string  `json:"text" yaml:"text"`
}

func runList(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(strings.TrimSpace(format))

	seq, err := subtitle.Open(srtPath)
	if err != nil {
		return err
	}

	rows, err := cueRows(seq)
	if err != nil {
		return err
	}

	return renderCues(cmd.OutOrStdout(), format, rows)
}

func cueRows(seq *subtitle.Sequence) ([]cueRow, error) {
	rows := make([]cueRow, 0, seq.Len())
	for _, b := range seq.Blocks() {
		startMs, err := b.StartMillis()
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", b.Index, err)
		}
		endMs, err := b.EndMillis()
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", b.Index, err)
		}
		rows = append(rows, cueRow{
			Index:   b.Index,
			Start:   b.Start(),
			End:     b.End(),
			Seconds: float64(endMs-startMs) / 1000,
			Text:    b.Text(),
		})
	}
	return rows, nil
}

func renderCues(w io.Writer, format string, rows []cueRow) error {
	switch format {
	case "", "table":
		tableRows := make([][]string, 0, len(rows))
		for _, row := range rows {
			tableRows = append(tableRows, []string{
				strconv.Itoa(row.Index),
				row.Start,
				row.End,
				strconv.FormatFloat(row.Seconds, 'f', 3, 64),
				row.Text,
			})
		}
		_, err := io.WriteString(w, renderTable(
			[]string{"#", "Start", "End", "Seconds", "Text"},
			tableRows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
		))
		return err
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(rows); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("invalid format %q: supported formats are table, json, yaml", format)
	}
}
