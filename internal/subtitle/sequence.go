package subtitle

import "strings"

// Sequence is an ordered list of blocks making up one SRT file.
type Sequence struct {
	blocks []Block
}

func NewSequence(blocks ...Block) *Sequence {
	s := &Sequence{blocks: make([]Block, len(blocks))}
	copy(s.blocks, blocks)
	return s
}

// ParseSequence splits SRT text on blank lines and parses every chunk.
// Chunks holding only whitespace are skipped.
func ParseSequence(text string) *Sequence {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	s := &Sequence{}
	for _, chunk := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		s.blocks = append(s.blocks, ParseBlock(chunk))
	}
	return s
}

func (s *Sequence) Len() int {
	return len(s.blocks)
}

func (s *Sequence) At(i int) Block {
	return s.blocks[i]
}

// Blocks returns a copy of the blocks in file order.
func (s *Sequence) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Insert places b at pos and shifts the index of every following block up
// by one. A following block with no usable index is first given pos+1.
// The inserted block keeps its own index.
func (s *Sequence) Insert(pos int, b Block) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.blocks) {
		pos = len(s.blocks)
	}

	for i := pos; i < len(s.blocks); i++ {
		idx := s.blocks[i].Index
		if idx == 0 {
			idx = pos + 1
		}
		s.blocks[i] = s.blocks[i].WithIndex(idx + 1)
	}

	s.blocks = append(s.blocks, Block{})
	copy(s.blocks[pos+1:], s.blocks[pos:])
	s.blocks[pos] = b
}

// Append adds b at the end without touching any index.
func (s *Sequence) Append(b Block) {
	s.blocks = append(s.blocks, b)
}

// Filter returns a new sequence holding the blocks keep accepts.
func (s *Sequence) Filter(keep func(Block) bool) *Sequence {
	out := &Sequence{}
	for _, b := range s.blocks {
		if keep(b) {
			out.blocks = append(out.blocks, b)
		}
	}
	return out
}

// Renumber returns a copy with indices assigned sequentially from start.
func (s *Sequence) Renumber(start int) *Sequence {
	out := NewSequence(s.blocks...)
	for i := range out.blocks {
		out.blocks[i] = out.blocks[i].WithIndex(start + i)
	}
	return out
}

// String renders the sequence with one blank line between blocks.
func (s *Sequence) String() string {
	parts := make([]string, len(s.blocks))
	for i, b := range s.blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n\n")
}
