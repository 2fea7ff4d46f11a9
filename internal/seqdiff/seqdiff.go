// Package seqdiff computes diffs over abstract sequences.
//
// The package is the algorithmic core shared by the line-level and the
// character-level passes of the engine: both granularities present themselves
// through the Sequence interface, and the two algorithms (DynamicProgramming
// and Myers) plus the generic shift/merge heuristics operate on that interface
// only. Callers pick the algorithm by input size and post-process the returned
// []SequenceDiff with the heuristics in optimize.go.
//
// Invariants:
//   - Diffs returned by either algorithm are sorted by Seq1.Start and
//     non-overlapping on both sides.
//   - A timed-out computation returns the degenerate "everything changed"
//     diff and HitTimeout=true; it never returns a partial or invalid list.
package seqdiff

// Sequence is the capability surface shared by "sequence of lines" and
// "sequence of characters".
type Sequence interface {
	// Len returns the number of elements.
	Len() int

	// Key returns the comparison key of the element at offset i. Two elements
	// are considered equal by the algorithms iff their keys are equal.
	Key(i int) int

	// StronglyEqual reports whether the elements at offsets i and j are equal
	// under the strictest comparison available (for lines: the literal,
	// untrimmed text).
	StronglyEqual(i, j int) bool

	// BoundaryScore rates how good of an insertion/deletion edge the position
	// before element pos is. pos ranges over [0, Len()]. Higher is better.
	BoundaryScore(pos int) int
}

// OffsetRange is a half-open [Start, End) range of sequence offsets.
type OffsetRange struct {
	Start int
	End   int
}

// Len returns the number of offsets in r.
func (r OffsetRange) Len() int { return r.End - r.Start }

// IsEmpty reports whether r contains no offsets.
func (r OffsetRange) IsEmpty() bool { return r.Start == r.End }

// Delta returns r shifted by d.
func (r OffsetRange) Delta(d int) OffsetRange { return OffsetRange{r.Start + d, r.End + d} }

// Join returns the smallest range containing both r and o.
func (r OffsetRange) Join(o OffsetRange) OffsetRange {
	return OffsetRange{min(r.Start, o.Start), max(r.End, o.End)}
}

// Intersect returns the overlap of r and o. ok is false when the ranges are
// disjoint; a zero-length result at a shared edge is a valid intersection.
func (r OffsetRange) Intersect(o OffsetRange) (_ OffsetRange, ok bool) {
	start := max(r.Start, o.Start)
	end := min(r.End, o.End)
	if start > end {
		return OffsetRange{}, false
	}
	return OffsetRange{start, end}, true
}

// Intersects reports whether r and o share at least one offset.
func (r OffsetRange) Intersects(o OffsetRange) bool {
	return max(r.Start, o.Start) < min(r.End, o.End)
}

// OffsetPair is one offset into each of the two sequences being compared.
type OffsetPair struct {
	Offset1 int
	Offset2 int
}

// SequenceDiff is one contiguous changed region: the elements of Seq1 are
// replaced by the elements of Seq2. Either side may be empty (pure insertion
// or deletion).
type SequenceDiff struct {
	Seq1 OffsetRange
	Seq2 OffsetRange
}

// FromOffsetPairs returns the diff spanning from start to end.
func FromOffsetPairs(start, end OffsetPair) SequenceDiff {
	return SequenceDiff{
		Seq1: OffsetRange{start.Offset1, end.Offset1},
		Seq2: OffsetRange{start.Offset2, end.Offset2},
	}
}

// Delta returns d with both ranges shifted by o.
func (d SequenceDiff) Delta(o int) SequenceDiff {
	return SequenceDiff{d.Seq1.Delta(o), d.Seq2.Delta(o)}
}

// DeltaStart moves both start offsets by o, keeping the ends fixed.
func (d SequenceDiff) DeltaStart(o int) SequenceDiff {
	d.Seq1.Start += o
	d.Seq2.Start += o
	return d
}

// DeltaEnd moves both end offsets by o, keeping the starts fixed.
func (d SequenceDiff) DeltaEnd(o int) SequenceDiff {
	d.Seq1.End += o
	d.Seq2.End += o
	return d
}

// Join returns the smallest diff containing both d and o.
func (d SequenceDiff) Join(o SequenceDiff) SequenceDiff {
	return SequenceDiff{d.Seq1.Join(o.Seq1), d.Seq2.Join(o.Seq2)}
}

// Intersect clips d to o on both sides. ok is false if either side has no
// intersection.
func (d SequenceDiff) Intersect(o SequenceDiff) (_ SequenceDiff, ok bool) {
	s1, ok1 := d.Seq1.Intersect(o.Seq1)
	s2, ok2 := d.Seq2.Intersect(o.Seq2)
	if !ok1 || !ok2 {
		return SequenceDiff{}, false
	}
	return SequenceDiff{s1, s2}, true
}

// Swap exchanges the two sides.
func (d SequenceDiff) Swap() SequenceDiff { return SequenceDiff{d.Seq2, d.Seq1} }

// Starts returns the pair of start offsets.
func (d SequenceDiff) Starts() OffsetPair { return OffsetPair{d.Seq1.Start, d.Seq2.Start} }

// Ends returns the pair of end-exclusive offsets.
func (d SequenceDiff) Ends() OffsetPair { return OffsetPair{d.Seq1.End, d.Seq2.End} }

// Complement inverts a sorted, non-overlapping diff list into the list of
// unchanged regions between them, including the leading and trailing runs.
// len1 and len2 are the lengths of the two sequences.
func Complement(diffs []SequenceDiff, len1, len2 int) []SequenceDiff {
	var result []SequenceDiff
	last := OffsetPair{0, 0}
	for _, d := range diffs {
		result = append(result, FromOffsetPairs(last, d.Starts()))
		last = d.Ends()
	}
	result = append(result, FromOffsetPairs(last, OffsetPair{len1, len2}))
	return result
}

// Result is the outcome of one diff computation.
type Result struct {
	Diffs      []SequenceDiff
	HitTimeout bool
}

// trivial reports the entire input as changed. Used for empty inputs and as
// the degraded result on timeout.
func trivial(seq1, seq2 Sequence, hitTimeout bool) Result {
	d := SequenceDiff{
		Seq1: OffsetRange{0, seq1.Len()},
		Seq2: OffsetRange{0, seq2.Len()},
	}
	if d.Seq1.IsEmpty() && d.Seq2.IsEmpty() {
		return Result{HitTimeout: hitTimeout}
	}
	return Result{Diffs: []SequenceDiff{d}, HitTimeout: hitTimeout}
}
