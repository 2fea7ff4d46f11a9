package linediff

import "strings"

// interner assigns each distinct string a sequential integer the first time
// it is seen. Unlike a general hash this is collision-free by construction:
// equal ids imply equal strings, so line equality becomes an O(1) integer
// compare. One table is shared across both sides of a comparison so the ids
// are consistent between them.
type interner struct {
	ids map[string]int
}

func newInterner() *interner {
	return &interner{ids: make(map[string]int)}
}

func (in *interner) id(s string) int {
	id, ok := in.ids[s]
	if !ok {
		id = len(in.ids)
		in.ids[s] = id
	}
	return id
}

// lineSequence adapts a slice of lines to seqdiff.Sequence. Keys are interned
// ids of the whitespace-trimmed content, so whitespace-only differences
// compare equal at this level; StronglyEqual still compares the literal text.
type lineSequence struct {
	keys  []int
	lines []string
}

func newLineSequence(lines []string, in *interner) *lineSequence {
	keys := make([]int, len(lines))
	for i, l := range lines {
		keys[i] = in.id(strings.TrimSpace(l))
	}
	return &lineSequence{keys: keys, lines: lines}
}

func (s *lineSequence) Len() int { return len(s.lines) }

func (s *lineSequence) Key(i int) int { return s.keys[i] }

func (s *lineSequence) StronglyEqual(i, j int) bool { return s.lines[i] == s.lines[j] }

// BoundaryScore favors split points at low indentation: boundaries between
// top-level blocks beat boundaries inside deeply nested code.
func (s *lineSequence) BoundaryScore(pos int) int {
	indentBefore := 0
	if pos > 0 {
		indentBefore = indentation(s.lines[pos-1])
	}
	indentAfter := 0
	if pos < len(s.lines) {
		indentAfter = indentation(s.lines[pos])
	}
	return 1000 - (indentBefore + indentAfter)
}

// text returns the lines of r joined with "\n".
func (s *lineSequence) text(start, end int) string {
	return strings.Join(s.lines[start:end], "\n")
}

func indentation(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
