package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mgpai22/captioncut/internal/video"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract an embedded subtitle track from a video file",
	Long: `Extract an embedded subtitle track from a video file and save it as SRT.

Use --list to see the subtitle streams a video carries.

Examples:
  captioncut extract movie.mkv
  captioncut extract movie.mkv --stream 1 -o movie.en.srt
  captioncut extract movie.mkv --list`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", -1, "Subtitle stream number, 0 = first (default from config)")
	extractCmd.Flags().BoolP("list", "l", false, "List subtitle streams instead of extracting")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	stream, _ := cmd.Flags().GetInt("stream")
	if stream < 0 {
		stream = cfg.Media.SubtitleStream
	}
	listOnly, _ := cmd.Flags().GetBool("list")
	outputPath, _ := cmd.Flags().GetString("output")

	if !video.IsVideoFile(videoPath) {
		return fmt.Errorf("unsupported video format: %s", filepath.Ext(videoPath))
	}

	processor := video.NewProcessor()
	ctx := context.Background()

	if listOnly {
		streams, err := processor.SubtitleStreams(ctx, videoPath)
		if err != nil {
			return fmt.Errorf("failed to list subtitle streams: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), renderStreams(streams))
		return err
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".srt"
	}

	logger.Infow("Extracting subtitles",
		"video", videoPath,
		"output", outputPath,
		"stream", stream,
	)

	if err := processor.ExtractSubtitles(
		ctx,
		videoPath,
		outputPath,
		video.ExtractSubtitleOptions{Stream: stream},
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles extracted successfully: %s\n", absOutput)

	return nil
}

func renderStreams(streams []video.SubtitleStream) string {
	if len(streams) == 0 {
		return "No subtitle streams found\n"
	}

	rows := make([][]string, 0, len(streams))
	for _, s := range streams {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Codec,
			s.Language,
			s.Title,
		})
	}
	return renderTable(
		[]string{"Stream", "Codec", "Language", "Title"},
		rows,
		[]columnAlignment{alignRight},
	)
}
