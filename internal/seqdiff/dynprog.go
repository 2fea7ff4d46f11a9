package seqdiff

import "slices"

// Directions a DP cell's best score can come from.
const (
	dirHorizontal = 1 // advance seq1
	dirVertical   = 2 // advance seq2
	dirDiagonal   = 3 // match
)

// grid is a dense len1 x len2 table.
type grid[T any] struct {
	width int
	cells []T
}

func newGrid[T any](width, height int) grid[T] {
	return grid[T]{width: width, cells: make([]T, width*height)}
}

func (g *grid[T]) get(x, y int) T    { return g.cells[y*g.width+x] }
func (g *grid[T]) set(x, y int, v T) { g.cells[y*g.width+x] = v }

// DynamicProgramming computes a diff using the exact LCS-style dynamic
// program. For every prefix pair it tracks the best cumulative match score,
// the direction that achieved it, and the length of the current run of
// consecutive diagonal matches; continuing a run earns its accumulated length
// as a bonus, which biases the backtrack towards long contiguous matches
// rather than scattered single-element ones.
//
// equalityScore, when non-nil, supplies the score of matching elements i and
// j; the default weight is 1. Cost is O(len1*len2), so callers only use this
// below a size threshold.
func DynamicProgramming(seq1, seq2 Sequence, timeout *Timeout, equalityScore func(i, j int) float64) Result {
	len1, len2 := seq1.Len(), seq2.Len()
	if len1 == 0 || len2 == 0 {
		return trivial(seq1, seq2, false)
	}

	scores := newGrid[float64](len1, len2)
	directions := newGrid[int8](len1, len2)
	lengths := newGrid[int32](len1, len2)

	for i1 := 0; i1 < len1; i1++ {
		for i2 := 0; i2 < len2; i2++ {
			if !timeout.Valid() {
				return trivial(seq1, seq2, true)
			}

			var horizontal, vertical float64
			if i1 > 0 {
				horizontal = scores.get(i1-1, i2)
			}
			if i2 > 0 {
				vertical = scores.get(i1, i2-1)
			}

			diagonal := -1.0
			if seq1.Key(i1) == seq2.Key(i2) {
				if i1 > 0 && i2 > 0 {
					diagonal = scores.get(i1-1, i2-1)
				} else {
					diagonal = 0
				}
				// Bonus for continuing a consecutive matching run.
				if i1 > 0 && i2 > 0 && directions.get(i1-1, i2-1) == dirDiagonal {
					diagonal += float64(lengths.get(i1-1, i2-1))
				}
				if equalityScore != nil {
					diagonal += equalityScore(i1, i2)
				} else {
					diagonal++
				}
			}

			best := max(horizontal, vertical, diagonal)
			switch best {
			case diagonal:
				runLen := int32(1)
				if i1 > 0 && i2 > 0 && directions.get(i1-1, i2-1) == dirDiagonal {
					runLen = lengths.get(i1-1, i2-1) + 1
				}
				lengths.set(i1, i2, runLen)
				directions.set(i1, i2, dirDiagonal)
			case horizontal:
				directions.set(i1, i2, dirHorizontal)
			default:
				directions.set(i1, i2, dirVertical)
			}
			scores.set(i1, i2, best)
		}
	}

	// Backtrack from the final cell, emitting one diff per non-diagonal gap
	// between consecutive matches.
	var diffs []SequenceDiff
	lastI1, lastI2 := len1, len2
	reportMatch := func(i1, i2 int) {
		if i1+1 != lastI1 || i2+1 != lastI2 {
			diffs = append(diffs, SequenceDiff{
				Seq1: OffsetRange{i1 + 1, lastI1},
				Seq2: OffsetRange{i2 + 1, lastI2},
			})
		}
		lastI1, lastI2 = i1, i2
	}
	i1, i2 := len1-1, len2-1
	for i1 >= 0 && i2 >= 0 {
		switch directions.get(i1, i2) {
		case dirDiagonal:
			reportMatch(i1, i2)
			i1--
			i2--
		case dirHorizontal:
			i1--
		default:
			i2--
		}
	}
	reportMatch(-1, -1)
	slices.Reverse(diffs)
	return Result{Diffs: diffs}
}
