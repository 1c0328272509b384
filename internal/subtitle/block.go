package subtitle

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultWrapWidth is the line width used when dialogue is given as prose.
const DefaultWrapWidth = 35

const arrow = "-->"

// Block is a single SRT cue: index line, timing line and dialogue.
type Block struct {
	Index     int
	TimeRange string
	Dialogue  []string
	WrapWidth int
}

// ParseIndex reads an index line. Garbled or negative values become 0.
func ParseIndex(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// creates a block with dialogue kept line for line
func NewBlock(index, timeRange string, dialogue []string) Block {
	lines := make([]string, len(dialogue))
	copy(lines, dialogue)

	return Block{
		Index:     ParseIndex(index),
		TimeRange: timeRange,
		Dialogue:  lines,
		WrapWidth: DefaultWrapWidth,
	}
}

// creates a block from unwrapped text, wrapped at width characters
func NewProseBlock(index, timeRange, text string, width int) Block {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	return Block{
		Index:     ParseIndex(index),
		TimeRange: timeRange,
		Dialogue:  WrapText(text, width),
		WrapWidth: width,
	}
}

// ParseBlock parses one blank-line delimited chunk of an SRT file.
func ParseBlock(chunk string) Block {
	return ParseLines(strings.Split(strings.TrimSpace(chunk), "\n"))
}

// ParseLines builds a block from already split lines. Short input is
// tolerated; missing fields are left empty.
func ParseLines(lines []string) Block {
	var index, timeRange string
	var dialogue []string

	if len(lines) > 0 {
		index = lines[0]
	}
	if len(lines) > 1 {
		timeRange = lines[1]
	}
	if len(lines) > 2 {
		dialogue = lines[2:]
	}

	return NewBlock(index, timeRange, dialogue)
}

// Start returns the start timestamp of the time range.
func (b Block) Start() string {
	start, _, _ := strings.Cut(b.TimeRange, arrow)
	return strings.TrimSpace(start)
}

// End returns the end timestamp of the time range.
func (b Block) End() string {
	i := strings.LastIndex(b.TimeRange, arrow)
	if i < 0 {
		return strings.TrimSpace(b.TimeRange)
	}
	return strings.TrimSpace(b.TimeRange[i+len(arrow):])
}

func (b Block) StartMillis() (int64, error) {
	return ParseMillis(b.Start())
}

func (b Block) EndMillis() (int64, error) {
	return ParseMillis(b.End())
}

// Text joins the dialogue into a single line.
func (b Block) Text() string {
	parts := make([]string, len(b.Dialogue))
	for i, line := range b.Dialogue {
		parts[i] = strings.TrimSpace(line)
	}
	return strings.Join(parts, " ")
}

// IsBlank reports whether the block carries no spoken text.
func (b Block) IsBlank() bool {
	for _, line := range b.Dialogue {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

func (b Block) WithIndex(n int) Block {
	if n < 0 {
		n = 0
	}
	b.Index = n
	return b
}

func (b Block) WithTimeRange(timeRange string) Block {
	b.TimeRange = timeRange
	return b
}

// WithTimeRangeIfEmpty sets the time range only when the block has none.
func (b Block) WithTimeRangeIfEmpty(timeRange string) Block {
	if strings.TrimSpace(b.TimeRange) == "" {
		b.TimeRange = timeRange
	}
	return b
}

func (b Block) WithDialogue(lines []string) Block {
	b.Dialogue = append([]string(nil), lines...)
	return b
}

// String renders the block as it appears in an SRT file, without a trailing
// blank line.
func (b Block) String() string {
	parts := make([]string, 0, len(b.Dialogue)+2)
	parts = append(parts, strconv.Itoa(b.Index), b.TimeRange)
	parts = append(parts, b.Dialogue...)
	return strings.Join(parts, "\n")
}

// WrapText breaks text into lines of at most width characters, splitting on
// whitespace. A word longer than width is cut into width sized pieces.
func WrapText(text string, width int) []string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)

		if currentLen > 0 && currentLen+1+wordLen <= width {
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += 1 + wordLen
			continue
		}

		flush()

		for wordLen > width {
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
			wordLen -= width
		}

		current.WriteString(word)
		currentLen = wordLen
	}
	flush()

	return lines
}
