package subtitle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidTimestamp is returned when a timestamp has no recognizable
// millisecond separator or a non-numeric component.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ParseMillis converts a timestamp such as "1:20:32,005" to milliseconds.
//
// The millisecond part follows the last ',' or '.', or the last ':' when
// neither is present. Everything before it is read as colon separated
// base-60 components, so hours are unbounded.
func ParseMillis(ts string) (int64, error) {
	hms, millis, ok := splitMillis(ts)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
	}

	ms, err := parseComponent(millis)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
	}

	var seconds int64
	for _, part := range strings.Split(hms, ":") {
		n, err := parseComponent(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
		}
		seconds = seconds*60 + n
	}

	return seconds*1000 + ms, nil
}

// ParseSeconds converts a timestamp to "<seconds>.<millis>", for example
// "1:20:32,5" becomes "4832.005".
func ParseSeconds(ts string) (string, error) {
	total, err := ParseMillis(ts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%03d", total/1000, total%1000), nil
}

// FormatSeconds renders a duration in seconds as H:MM:SS.mmm. Digits below
// a millisecond are dropped, not rounded.
func FormatSeconds(seconds float64) string {
	micros := int64(math.Round(seconds * 1e6))
	return FormatMillis(micros / 1000)
}

// FormatMillis renders milliseconds as H:MM:SS.mmm.
func FormatMillis(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	hours := ms / 3_600_000
	minutes := ms / 60_000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000

	return fmt.Sprintf("%s%d:%02d:%02d.%03d", sign, hours, minutes, seconds, millis)
}

// FormatSRT renders milliseconds the way SRT files store them: HH:MM:SS,mmm.
func FormatSRT(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	minutes := ms / 60_000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func splitMillis(ts string) (string, string, bool) {
	if i := strings.LastIndexAny(ts, ",."); i >= 0 {
		return ts[:i], ts[i+1:], true
	}
	if i := strings.LastIndex(ts, ":"); i >= 0 {
		return ts[:i], ts[i+1:], true
	}
	return "", "", false
}

func parseComponent(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
