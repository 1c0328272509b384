package subtitle

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMillis(t *testing.T) {
	tests := []struct {
		ts   string
		want int64
	}{
		{"1:20:32,005", 4832005},
		{"1:20:32,5", 4832005},
		{"01:20:32.005", 4832005},
		{"01:20:32:005", 4832005},
		{"00:00:00,000", 0},
		{"00:00:01,500", 1500},
		{" 00:00:01,500 ", 1500},
		{"100:00:00,000", 360000000},
		{"99:99:99,999", 362439999},
	}

	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			got, err := ParseMillis(tt.ts)
			if err != nil {
				t.Fatalf("ParseMillis(%q) returned error: %v", tt.ts, err)
			}
			if got != tt.want {
				t.Errorf("ParseMillis(%q) = %d, want %d", tt.ts, got, tt.want)
			}
		})
	}
}

func TestParseMillisRejectsMalformedInput(t *testing.T) {
	for _, ts := range []string{"", "garbage", "aa:bb,cc", "00:00:01,xyz", ",500"} {
		_, err := ParseMillis(ts)
		if !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("ParseMillis(%q) error = %v, want ErrInvalidTimestamp", ts, err)
		}
	}
}

func TestParseSeconds(t *testing.T) {
	got, err := ParseSeconds("1:20:32,5")
	if err != nil {
		t.Fatalf("ParseSeconds returned error: %v", err)
	}
	if got != "4832.005" {
		t.Errorf("ParseSeconds(%q) = %q, want %q", "1:20:32,5", got, "4832.005")
	}

	if _, err := ParseSeconds("nope"); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00.000"},
		{7263.15, "2:01:03.150"},
		{1.0009, "0:00:01.000"},
		{4832.005, "1:20:32.005"},
		{360000, "100:00:00.000"},
		{-1.5, "-0:00:01.500"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatSRT(t *testing.T) {
	if got := FormatSRT(4832005); got != "01:20:32,005" {
		t.Errorf("FormatSRT(4832005) = %q, want %q", got, "01:20:32,005")
	}
	if got := FormatSRT(-5); got != "00:00:00,000" {
		t.Errorf("FormatSRT(-5) = %q, want %q", got, "00:00:00,000")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	values := []int64{0, 1, 999, 1000, 59999, 3600000, 4832005, 362439999}

	// FormatMillis emits "." which ParseMillis must also accept as "," or ":"
	separators := []string{".", ",", ":"}

	for _, ms := range values {
		formatted := FormatMillis(ms)
		i := strings.LastIndex(formatted, ".")
		for _, sep := range separators {
			ts := formatted[:i] + sep + formatted[i+1:]
			got, err := ParseMillis(ts)
			if err != nil {
				t.Errorf("ParseMillis(%q) returned error: %v", ts, err)
				continue
			}
			if got != ms {
				t.Errorf("ParseMillis(%q) = %d, want %d", ts, got, ms)
			}
		}

		if got, err := ParseMillis(FormatSRT(ms)); err != nil || got != ms {
			t.Errorf("ParseMillis(FormatSRT(%d)) = %d, %v", ms, got, err)
		}
	}
}
