package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/mgpai22/captioncut/internal/ffmpeg"
)

// subtitle stream inside a video container
type SubtitleStream struct {
	Index    int // position among subtitle streams, as used by -map 0:s:N
	Codec    string
	Language string
	Title    string
}

// defines interface for video processing operations
type Processor interface {
	// writes one embedded subtitle track to an SRT file
	ExtractSubtitles(
		ctx context.Context,
		videoPath, outputPath string,
		opts ExtractSubtitleOptions,
	) error

	// lists the subtitle streams of a video file
	SubtitleStreams(ctx context.Context, videoPath string) ([]SubtitleStream, error)
}

// holds options for subtitle extraction
type ExtractSubtitleOptions struct {
	Stream int // subtitle stream number (0 = first)
}

// default implementation using ffmpeg
type DefaultProcessor struct{}

func NewProcessor() *DefaultProcessor {
	return &DefaultProcessor{}
}

// extracts an embedded subtitle track as SRT
func (p *DefaultProcessor) ExtractSubtitles(
	ctx context.Context,
	videoPath, outputPath string,
	opts ExtractSubtitleOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if opts.Stream < 0 {
		return fmt.Errorf("subtitle stream must be >= 0, got %d", opts.Stream)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	err = ffmpeg.Input(videoPath).
		Output(outputPath, subtitleKwArgs(opts)).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg subtitle extraction failed: %w", err)
	}

	return nil
}

func subtitleKwArgs(opts ExtractSubtitleOptions) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.Stream),
		"c:s": "srt",
		"f":   "srt",
	}
}

// JSON output from ffprobe
type ffprobeOutput struct {
	Streams []struct {
		CodecName string            `json:"codec_name"`
		Tags      map[string]string `json:"tags"`
	} `json:"streams"`
}

// lists subtitle streams using ffprobe
func (p *DefaultProcessor) SubtitleStreams(
	ctx context.Context,
	videoPath string,
) ([]SubtitleStream, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", videoPath)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "s",
		videoPath,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseSubtitleStreams(out.Bytes())
}

func parseSubtitleStreams(data []byte) ([]SubtitleStream, error) {
	var probe ffprobeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	streams := make([]SubtitleStream, 0, len(probe.Streams))
	for i, s := range probe.Streams {
		streams = append(streams, SubtitleStream{
			Index:    i,
			Codec:    s.CodecName,
			Language: s.Tags["language"],
			Title:    s.Tags["title"],
		})
	}
	return streams, nil
}

// checks if the file is a video based on extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	videoExts := map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".wmv":  true,
		".flv":  true,
		".webm": true,
		".m4v":  true,
		".mpeg": true,
		".mpg":  true,
		".ts":   true,
	}
	return videoExts[ext]
}
