// Package fetch supplies transcript text to the timeline editor from local
// files, standing in for a remote caption service.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mgpai22/captioncut/internal/logging"
	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/mgpai22/captioncut/internal/video"
)

// LocalFetcher serves FetchRequests from .srt files or from the subtitle
// track of a video file. Offsets and clips are applied locally.
type LocalFetcher struct {
	processor video.Processor
	stream    int
	logger    *logging.Logger

	mu    sync.Mutex
	cache map[string]string
}

type Options struct {
	Stream int // subtitle stream used for video refs
}

func NewLocalFetcher(
	processor video.Processor,
	opts Options,
	logger *logging.Logger,
) *LocalFetcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LocalFetcher{
		processor: processor,
		stream:    opts.Stream,
		logger:    logger,
		cache:     make(map[string]string),
	}
}

func (f *LocalFetcher) FetchText(
	ctx context.Context,
	req subtitle.FetchRequest,
) (string, error) {
	text, err := f.load(ctx, req.Ref)
	if err != nil {
		return "", err
	}

	if req.OffsetSeconds != "" {
		offsetMs, err := subtitle.ParseOffsetSeconds(req.OffsetSeconds)
		if err != nil {
			return "", err
		}
		f.logger.Debugw("Trimming transcript start",
			"ref", req.Ref,
			"offset_ms", offsetMs,
		)
		if text, err = subtitle.TrimStart(text, offsetMs); err != nil {
			return "", fmt.Errorf("trim %s: %w", req.Ref, err)
		}
	}

	if len(req.Clips) > 0 {
		clips := make([]string, len(req.Clips))
		for i, c := range req.Clips {
			clips[i] = c.String()
		}
		f.logger.Debugw("Extracting clips",
			"ref", req.Ref,
			"clips", clips,
		)
		if text, err = subtitle.ExtractClips(text, req.Clips); err != nil {
			return "", fmt.Errorf("clip %s: %w", req.Ref, err)
		}
	}

	return text, nil
}

// load returns the raw SRT text for ref, extracting it from a video once.
func (f *LocalFetcher) load(ctx context.Context, ref string) (string, error) {
	if !video.IsVideoFile(ref) {
		return subtitle.ReadFile(ref)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if text, ok := f.cache[ref]; ok {
		return text, nil
	}
	if f.processor == nil {
		return "", fmt.Errorf("cannot read subtitles from video %s: no video processor", ref)
	}

	tempDir, err := os.MkdirTemp("", "captioncut-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	srtPath := filepath.Join(tempDir, "track.srt")

	f.logger.Infow("Extracting subtitle track from video",
		"video", ref,
		"stream", f.stream,
	)
	if err := f.processor.ExtractSubtitles(
		ctx,
		ref,
		srtPath,
		video.ExtractSubtitleOptions{Stream: f.stream},
	); err != nil {
		return "", fmt.Errorf("failed to extract subtitles: %w", err)
	}

	text, err := subtitle.ReadFile(srtPath)
	if err != nil {
		return "", err
	}
	f.cache[ref] = text
	return text, nil
}
