package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ExtractClips keeps the cues starting inside each clip and lays the clips
// end to end on a fresh timeline. Like the caption service it stands in for,
// a cue starting exactly on a clip's end is kept. Cue ends are clamped to
// their clip and the result is renumbered from 1.
func ExtractClips(text string, clips []ClipRange) (string, error) {
	seq := ParseSequence(text)
	out := NewSequence()

	var cursor int64
	for _, clip := range clips {
		if clip.EndMs < clip.StartMs {
			return "", fmt.Errorf("clip %s ends before it starts", clip)
		}

		for _, b := range seq.blocks {
			start, end, err := blockBounds(b)
			if err != nil {
				return "", err
			}
			if start < clip.StartMs || start > clip.EndMs {
				continue
			}
			end = min(end, clip.EndMs)

			out.Append(b.WithTimeRange(timeRange(
				start-clip.StartMs+cursor,
				end-clip.StartMs+cursor,
			)))
		}

		cursor += clip.EndMs - clip.StartMs
	}

	return out.Renumber(1).String(), nil
}

// TrimStart cuts offsetMs from the start of the transcript. Cues ending
// before the offset are dropped and the rest are shifted back.
func TrimStart(text string, offsetMs int64) (string, error) {
	if offsetMs <= 0 {
		return text, nil
	}

	seq := ParseSequence(text)
	out := NewSequence()

	for _, b := range seq.blocks {
		start, end, err := blockBounds(b)
		if err != nil {
			return "", err
		}
		if end <= offsetMs {
			continue
		}
		out.Append(b.WithTimeRange(timeRange(max(start-offsetMs, 0), end-offsetMs)))
	}

	return out.Renumber(1).String(), nil
}

// ParseOffsetSeconds reads a seconds value such as "32.012" as milliseconds.
func ParseOffsetSeconds(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	if s == "" {
		return 0, nil
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("invalid offset %q: must not be negative", s)
	}
	return int64(math.Round(seconds * 1000)), nil
}

func blockBounds(b Block) (int64, int64, error) {
	start, err := b.StartMillis()
	if err != nil {
		return 0, 0, fmt.Errorf("cue %d: %w", b.Index, err)
	}
	end, err := b.EndMillis()
	if err != nil {
		return 0, 0, fmt.Errorf("cue %d: %w", b.Index, err)
	}
	return start, end, nil
}

func timeRange(startMs, endMs int64) string {
	return FormatSRT(startMs) + " " + arrow + " " + FormatSRT(endMs)
}
