package subtitle

import (
	"context"
	"fmt"
)

// OpenEndTimestamp stands for "until the end of the transcript".
const OpenEndTimestamp = "99:99:99,999"

type CutOptions struct {
	// delay inserted before the second segment, in milliseconds
	SecondOffsetMs int64
	// end of the second segment; empty means OpenEndTimestamp
	SecondEnd string
}

// CutInMiddle fetches the transcript for ref with the dialogue between
// firstEnd and secondStart cut out, then corrects the clip boundaries the
// fetcher is known to get wrong.
//
// With an offset, the first clip is extended by the offset and any cue that
// starts inside the extension is emptied. Without one, the cue starting at
// firstEnd comes back duplicated and its dialogue is emptied instead.
func CutInMiddle(
	ctx context.Context,
	fetcher TextFetcher,
	ref string,
	firstEnd, secondStart string,
	opts CutOptions,
) (string, error) {
	secondEnd := opts.SecondEnd
	if secondEnd == "" {
		secondEnd = OpenEndTimestamp
	}

	firstEndMs, err := ParseMillis(firstEnd)
	if err != nil {
		return "", fmt.Errorf("first segment end: %w", err)
	}
	secondStartMs, err := ParseMillis(secondStart)
	if err != nil {
		return "", fmt.Errorf("second segment start: %w", err)
	}
	secondEndMs, err := ParseMillis(secondEnd)
	if err != nil {
		return "", fmt.Errorf("second segment end: %w", err)
	}

	extendedEndMs := firstEndMs + opts.SecondOffsetMs

	clips := []ClipRange{
		{StartMs: 0, EndMs: extendedEndMs},
		{StartMs: secondStartMs, EndMs: secondEndMs},
	}

	text, err := fetcher.FetchText(ctx, FetchRequest{Ref: ref, Clips: clips})
	if err != nil {
		return "", fmt.Errorf("fetch clipped transcript: %w", err)
	}

	if opts.SecondOffsetMs != 0 {
		return RemoveDialogueBetween(text, firstEndMs, extendedEndMs)
	}
	return RemoveDialogueForFirstTimestamp(text, firstEnd), nil
}
