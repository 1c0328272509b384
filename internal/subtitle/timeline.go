package subtitle

import (
	"fmt"
	"strings"
)

// Duration returns the end time, in seconds, of the last cue that has
// dialogue. Timing lines followed by a blank line are skipped, since some
// producers emit a dangling empty cue at the end of the file. defaultEnd is
// returned when no cue qualifies.
func Duration(text string, defaultEnd float64) (float64, error) {
	lines := strings.Split(text, "\n")
	following := ""

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if !isTimingLine(line) {
			following = line
			continue
		}
		if strings.TrimSpace(following) == "" {
			continue
		}

		compact := strings.ReplaceAll(line, " ", "")
		end := compact[strings.LastIndex(compact, arrow)+len(arrow):]

		ms, err := ParseMillis(end)
		if err != nil {
			return 0, fmt.Errorf("parse end timestamp on line %d: %w", i+1, err)
		}
		return float64(ms) / 1000, nil
	}

	return defaultEnd, nil
}

// RemoveDialogueForFirstTimestamp drops the dialogue of the first cue whose
// start timestamp equals ts. The timing line and the blank line after the
// cue are kept. Text without a matching cue is returned unchanged.
func RemoveDialogueForFirstTimestamp(text, ts string) string {
	lines := strings.Split(text, "\n")
	target := strings.ReplaceAll(strings.TrimSpace(ts), " ", "")

	for i, line := range lines {
		if !isTimingLine(line) || startOf(line) != target {
			continue
		}

		next := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "" {
				next = j
				break
			}
		}

		kept := make([]string, 0, len(lines)-(next-i-1))
		kept = append(kept, lines[:i+1]...)
		kept = append(kept, lines[next:]...)
		return strings.Join(kept, "\n")
	}

	return text
}

// RemoveDialogueBetween drops the dialogue of every cue starting within
// [startMs, endMs). Timing lines are kept, so a cue starting exactly at
// endMs is untouched.
func RemoveDialogueBetween(text string, startMs, endMs int64) (string, error) {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	exclude := false

	for i, line := range lines {
		switch {
		case isTimingLine(line):
			ms, err := ParseMillis(startOf(line))
			if err != nil {
				return "", fmt.Errorf("parse start timestamp on line %d: %w", i+1, err)
			}
			exclude = startMs <= ms && ms < endMs
		case exclude:
			if strings.TrimSpace(line) != "" {
				continue
			}
			exclude = false
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n"), nil
}

func isTimingLine(line string) bool {
	return strings.Contains(line, arrow)
}

// start timestamp of a timing line with all spaces removed
func startOf(line string) string {
	start, _, _ := strings.Cut(line, arrow)
	return strings.ReplaceAll(strings.TrimSpace(start), " ", "")
}
