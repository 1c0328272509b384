package subtitle

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ClipRange is a millisecond [start, end) window of a transcript to keep.
type ClipRange struct {
	StartMs int64
	EndMs   int64
}

// String renders the range as "<start>,<end>".
func (c ClipRange) String() string {
	return fmt.Sprintf("%d,%d", c.StartMs, c.EndMs)
}

// ParseClipRange reads a "<start>,<end>" millisecond pair.
func ParseClipRange(s string) (ClipRange, error) {
	startStr, endStr, ok := strings.Cut(s, ",")
	if !ok {
		return ClipRange{}, fmt.Errorf("invalid clip range %q: expected <start_ms>,<end_ms>", s)
	}
	start, err := strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
	if err != nil {
		return ClipRange{}, fmt.Errorf("invalid clip start in %q: %w", s, err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(endStr), 10, 64)
	if err != nil {
		return ClipRange{}, fmt.Errorf("invalid clip end in %q: %w", s, err)
	}
	return ClipRange{StartMs: start, EndMs: end}, nil
}

// FetchRequest describes the transcript text wanted from a TextFetcher.
type FetchRequest struct {
	Ref string
	// seconds to cut from the start, e.g. "32.012"; empty for none
	OffsetSeconds string
	Clips         []ClipRange
}

// TextFetcher supplies SRT text for a transcript reference.
type TextFetcher interface {
	FetchText(ctx context.Context, req FetchRequest) (string, error)
}

// TextFetcherFunc adapts a plain function to TextFetcher.
type TextFetcherFunc func(ctx context.Context, req FetchRequest) (string, error)

func (f TextFetcherFunc) FetchText(ctx context.Context, req FetchRequest) (string, error) {
	return f(ctx, req)
}

// FetchOriginalAndTrimmed fetches the untouched transcript and the one
// trimmed by startSeconds concurrently.
func FetchOriginalAndTrimmed(
	ctx context.Context,
	fetcher TextFetcher,
	ref string,
	startSeconds string,
) (string, string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	requests := [2]FetchRequest{
		{Ref: ref},
		{Ref: ref, OffsetSeconds: startSeconds},
	}

	var (
		texts [2]string
		errs  [2]error
		wg    sync.WaitGroup
	)
	for i, req := range requests {
		i, req := i, req
		wg.Add(1)
		go func() {
			defer wg.Done()
			texts[i], errs[i] = fetcher.FetchText(ctx, req)
			if errs[i] != nil {
				cancel()
			}
		}()
	}
	wg.Wait()

	if errs[0] != nil {
		return "", "", fmt.Errorf("fetch original transcript: %w", errs[0])
	}
	if errs[1] != nil {
		return "", "", fmt.Errorf("fetch trimmed transcript: %w", errs[1])
	}

	return texts[0], texts[1], nil
}
