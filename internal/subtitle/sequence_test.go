package subtitle

import (
	"reflect"
	"testing"
)

func indices(s *Sequence) []int {
	out := make([]int, s.Len())
	for i, b := range s.Blocks() {
		out[i] = b.Index
	}
	return out
}

func TestParseSequence(t *testing.T) {
	seq := ParseSequence(threeCues)

	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", seq.Len())
	}
	if got := indices(seq); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("indices = %v, want [1 2 3]", got)
	}
	if got := seq.At(1).Text(); got != "Second line continued" {
		t.Errorf("At(1).Text() = %q, want %q", got, "Second line continued")
	}
}

func TestParseSequenceSkipsEmptyChunks(t *testing.T) {
	text := "1\r\n00:00:00,000 --> 00:00:01,000\r\nHi\r\n\r\n\r\n\r\n"
	seq := ParseSequence(text)

	if seq.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", seq.Len())
	}
	if got := seq.At(0).Dialogue; !reflect.DeepEqual(got, []string{"Hi"}) {
		t.Errorf("Dialogue = %q, want [Hi]", got)
	}
}

func TestSequenceStringRoundTrip(t *testing.T) {
	text := "1\n00:00:00,000 --> 00:00:01,000\nOne\n\n2\n00:00:01,000 --> 00:00:02,000\nTwo\nlines"
	if got := ParseSequence(text).String(); got != text {
		t.Errorf("String() = %q, want %q", got, text)
	}
}

func TestSequenceInsertRenumbers(t *testing.T) {
	seq := ParseSequence(threeCues)
	inserted := NewBlock("9", "00:00:00,500 --> 00:00:00,900", []string{"new"})

	seq.Insert(1, inserted)

	if got := indices(seq); !reflect.DeepEqual(got, []int{1, 9, 3, 4}) {
		t.Errorf("indices = %v, want [1 9 3 4]", got)
	}
	if got := seq.At(1).Text(); got != "new" {
		t.Errorf("At(1).Text() = %q, want %q", got, "new")
	}
	if got := seq.At(2).Text(); got != "Second line continued" {
		t.Errorf("At(2).Text() = %q, want the shifted block", got)
	}
}

func TestSequenceInsertResetsGarbledIndex(t *testing.T) {
	seq := NewSequence(
		NewBlock("1", "00:00:00,000 --> 00:00:01,000", []string{"a"}),
		NewBlock("??", "00:00:01,000 --> 00:00:02,000", []string{"b"}),
		NewBlock("3", "00:00:02,000 --> 00:00:03,000", []string{"c"}),
	)

	seq.Insert(1, NewBlock("2", "00:00:00,500 --> 00:00:00,900", []string{"new"}))

	if got := indices(seq); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("indices = %v, want [1 2 3 4]", got)
	}
}

func TestSequenceInsertBounds(t *testing.T) {
	seq := ParseSequence(threeCues)
	seq.Insert(10, NewBlock("4", "00:00:03,000 --> 00:00:04,000", []string{"tail"}))
	if got := indices(seq); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("indices after tail insert = %v, want [1 2 3 4]", got)
	}

	seq.Insert(-1, NewBlock("0", "00:00:00,000 --> 00:00:00,100", []string{"head"}))
	if got := indices(seq); !reflect.DeepEqual(got, []int{0, 2, 3, 4, 5}) {
		t.Errorf("indices after head insert = %v, want [0 2 3 4 5]", got)
	}
}

func TestSequenceFilterAndRenumber(t *testing.T) {
	seq := ParseSequence(threeCues)

	odd := seq.Filter(func(b Block) bool { return b.Index%2 == 1 })
	if got := indices(odd); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Filter indices = %v, want [1 3]", got)
	}
	if seq.Len() != 3 {
		t.Errorf("Filter modified the source sequence")
	}

	renumbered := odd.Renumber(1)
	if got := indices(renumbered); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Renumber indices = %v, want [1 2]", got)
	}
	if got := indices(odd); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Renumber modified the source sequence: %v", got)
	}
}

func TestSequenceBlocksIsCopy(t *testing.T) {
	seq := ParseSequence(threeCues)
	blocks := seq.Blocks()
	blocks[0] = blocks[0].WithIndex(42)

	if seq.At(0).Index != 1 {
		t.Errorf("Blocks() exposed internal storage")
	}
}
