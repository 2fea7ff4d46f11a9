// Package linediff computes a structural diff between two versions of a text
// and refines it down to exact character ranges within each changed line.
//
// The entry point is Compute. It runs a line-level diff, detects
// whitespace-only divergences hidden inside "equal" runs, refines every
// changed region at character granularity, and assembles the results into an
// ordered, non-overlapping list of DetailedLineRangeMapping records.
//
// Invariants of the result:
//   - Changes are strictly increasing and non-overlapping in both the
//     original and the modified start lines simultaneously.
//   - Every inner RangeMapping lies within its enclosing line ranges.
//   - Splicing the modified side's ranges into the original text reproduces
//     the modified text exactly.
//   - HitTimeout is sticky: it is set if any sub-computation ran out of
//     budget, but a structurally complete (possibly coarse) result is always
//     returned.
package linediff

import (
	"math"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lindiff/lindiff/internal/seqdiff"
)

// lineLevelDPThreshold selects the exact DP algorithm for line diffing below
// this combined line count; larger inputs use Myers. The crossover trades
// tie-breaking quality against the DP's quadratic cost.
const lineLevelDPThreshold = 1700

// minRegionsForParallel gates the worker-pool fan-out: below this many
// refinement regions the dispatch overhead outweighs the win.
const minRegionsForParallel = 8

// Compute diffs original against modified. Lines are supplied already split
// on line boundaries; a trailing carriage return is ordinary content. The
// result is deterministic for identical inputs and options, with or without
// the parallel refinement path.
func Compute(original, modified []string, opts Options) LinesDiff {
	if len(original) <= 1 && slices.Equal(original, modified) {
		return LinesDiff{}
	}
	if (len(original) == 1 && original[0] == "") || (len(modified) == 1 && modified[0] == "") {
		return fullChange(original, modified, false)
	}

	var deadline time.Time
	if opts.MaxComputationTime > 0 {
		deadline = time.Now().Add(opts.MaxComputationTime)
	}
	timeout := seqdiff.At(deadline)

	in := newInterner()
	seq1 := newLineSequence(original, in)
	seq2 := newLineSequence(modified, in)

	var res seqdiff.Result
	if seq1.Len()+seq2.Len() < lineLevelDPThreshold {
		res = seqdiff.DynamicProgramming(seq1, seq2, timeout, func(i1, i2 int) float64 {
			if original[i1] == modified[i2] {
				if modified[i2] == "" {
					return 0.1
				}
				return 1 + math.Log(1+float64(len(modified[i2])))
			}
			return 0.99
		})
	} else {
		res = seqdiff.Myers(seq1, seq2, timeout)
	}
	hitTimeout := res.HitTimeout

	alignments := res.Diffs
	alignments = seqdiff.Optimize(seq1, seq2, alignments)
	alignments = removeVeryShortMatchingLines(seq1, alignments)

	regions := planRefinements(alignments, original, modified, opts.IgnoreTrimWhitespace)
	mappings, refineTimedOut := refineAll(regions, original, modified, deadline, opts)
	hitTimeout = hitTimeout || refineTimedOut

	return LinesDiff{
		Changes:    assembleLineMappings(mappings, original, modified),
		HitTimeout: hitTimeout,
	}
}

// fullChange maps the entire original onto the entire modified text.
func fullChange(original, modified []string, hitTimeout bool) LinesDiff {
	inner := RangeMapping{
		Original: CharRange{Position{1, 1}, lineEnd(original, len(original))},
		Modified: CharRange{Position{1, 1}, lineEnd(modified, len(modified))},
	}
	return LinesDiff{
		Changes: []DetailedLineRangeMapping{{
			Original: LineRange{1, len(original) + 1},
			Modified: LineRange{1, len(modified) + 1},
			Inner:    []RangeMapping{inner},
		}},
		HitTimeout: hitTimeout,
	}
}

// refineRegion is one independent unit of character-level work: the
// whitespace-only divergences hidden in the equal run preceding a line diff,
// followed by the line diff itself (absent for the trailing equal run).
type refineRegion struct {
	wsPairs []seqdiff.SequenceDiff // single-line diffs for whitespace-only divergent pairs
	diff    seqdiff.SequenceDiff
	hasDiff bool
}

// planRefinements walks the line alignments once, sequentially, and records
// for each region the preceding equal-run scan results. Planning is cheap;
// the expensive character diffs happen later and are independent per region.
func planRefinements(alignments []seqdiff.SequenceDiff, original, modified []string, ignoreTrimWhitespace bool) []refineRegion {
	var regions []refineRegion

	seq1Last, seq2Last := 0, 0
	scanEqualRun := func(count int) []seqdiff.SequenceDiff {
		if ignoreTrimWhitespace {
			return nil
		}
		var pairs []seqdiff.SequenceDiff
		for i := 0; i < count; i++ {
			o, m := seq1Last+i, seq2Last+i
			if original[o] != modified[m] {
				// Equal by trimmed key but literally different: a
				// whitespace-only divergence worth an inner mapping.
				pairs = append(pairs, seqdiff.SequenceDiff{
					Seq1: seqdiff.OffsetRange{Start: o, End: o + 1},
					Seq2: seqdiff.OffsetRange{Start: m, End: m + 1},
				})
			}
		}
		return pairs
	}

	for _, d := range alignments {
		pairs := scanEqualRun(d.Seq1.Start - seq1Last)
		regions = append(regions, refineRegion{wsPairs: pairs, diff: d, hasDiff: true})
		seq1Last = d.Seq1.End
		seq2Last = d.Seq2.End
	}
	if trailing := scanEqualRun(len(original) - seq1Last); len(trailing) > 0 {
		regions = append(regions, refineRegion{wsPairs: trailing})
	}
	return regions
}

// refineAll character-refines every region, in parallel when there are
// enough regions to amortize the dispatch. Workers share no mutable state:
// each gets its own timeout (same deadline) and writes into a private slot;
// slots are merged in region order after the join, so scheduling cannot
// change the output.
func refineAll(regions []refineRegion, original, modified []string, deadline time.Time, opts Options) ([]RangeMapping, bool) {
	type slot struct {
		mappings   []RangeMapping
		hitTimeout bool
	}

	refineOne := func(r refineRegion, timeout *seqdiff.Timeout) slot {
		var s slot
		run := func(d seqdiff.SequenceDiff) {
			m, timedOut := refineDiff(original, modified, d, timeout, !opts.IgnoreTrimWhitespace, opts.ExtendToSubwords)
			s.mappings = append(s.mappings, m...)
			s.hitTimeout = s.hitTimeout || timedOut
		}
		for _, p := range r.wsPairs {
			run(p)
		}
		if r.hasDiff {
			run(r.diff)
		}
		return s
	}

	slots := make([]slot, len(regions))
	if len(regions) >= minRegionsForParallel {
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for i, r := range regions {
			i, r := i, r
			g.Go(func() error {
				slots[i] = refineOne(r, seqdiff.At(deadline))
				return nil
			})
		}
		_ = g.Wait() // workers never return errors; Wait is the join barrier
	} else {
		timeout := seqdiff.At(deadline)
		for i, r := range regions {
			slots[i] = refineOne(r, timeout)
		}
	}

	var mappings []RangeMapping
	hitTimeout := false
	for _, s := range slots {
		mappings = append(mappings, s.mappings...)
		hitTimeout = hitTimeout || s.hitTimeout
	}
	return mappings, hitTimeout
}
