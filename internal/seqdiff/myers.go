package seqdiff

import "slices"

// snakePath is one node in the reconstruction chain of the Myers search:
// a run of length matching elements starting at (x, y), preceded by prev.
type snakePath struct {
	prev   *snakePath
	x, y   int
	length int
}

// Myers computes a diff using the greedy O(ND) algorithm: for increasing edit
// distance d it tracks, per diagonal k = x-y, the furthest x reachable with d
// edits, extending each frontier through any run of equal elements before
// recording it. It terminates at the first d where a diagonal reaches the
// bottom-right corner and reconstructs the path through the recorded snake
// chain.
//
// For small edit distances this is near-linear even on very large inputs,
// which is why it is the choice above the size thresholds where the exact
// DynamicProgramming algorithm becomes too expensive.
func Myers(seq1, seq2 Sequence, timeout *Timeout) Result {
	len1, len2 := seq1.Len(), seq2.Len()
	if len1 == 0 || len2 == 0 {
		return trivial(seq1, seq2, false)
	}

	// snake extends (x, y) through consecutive equal elements and returns the
	// new x.
	snake := func(x, y int) int {
		for x < len1 && y < len2 && seq1.Key(x) == seq2.Key(y) {
			x++
			y++
		}
		return x
	}

	// furthest[mid+k] is the furthest x on diagonal k; paths[mid+k] the snake
	// chain that reached it.
	mid := len1 + len2
	furthest := make([]int, 2*mid+1)
	paths := make([]*snakePath, 2*mid+1)

	furthest[mid] = snake(0, 0)
	if furthest[mid] > 0 {
		paths[mid] = &snakePath{x: 0, y: 0, length: furthest[mid]}
	}
	if furthest[mid] == len1 && furthest[mid] == len2 {
		return Result{}
	}

	k := 0
search:
	for d := 1; ; d++ {
		if !timeout.Valid() {
			return trivial(seq1, seq2, true)
		}
		lower := -min(d, len2+d%2)
		upper := min(d, len1+d%2)
		for k = lower; k <= upper; k += 2 {
			// Reachable x via an insertion (from diagonal k+1) or a deletion
			// (from diagonal k-1).
			xFromTop := -1
			if k != upper {
				xFromTop = furthest[mid+k+1]
			}
			xFromLeft := -1
			if k != lower {
				xFromLeft = furthest[mid+k-1] + 1
			}
			x := min(max(xFromTop, xFromLeft), len1)
			y := x - k
			if x > len1 || y > len2 {
				continue
			}
			newX := snake(x, y)
			furthest[mid+k] = newX

			var prev *snakePath
			if x == xFromTop {
				prev = paths[mid+k+1]
			} else {
				prev = paths[mid+k-1]
			}
			if newX != x {
				paths[mid+k] = &snakePath{prev: prev, x: x, y: y, length: newX - x}
			} else {
				paths[mid+k] = prev
			}

			if furthest[mid+k] == len1 && furthest[mid+k]-k == len2 {
				break search
			}
		}
	}

	// Walk the snake chain backwards; every gap between consecutive matched
	// runs becomes one SequenceDiff.
	var diffs []SequenceDiff
	path := paths[mid+k]
	lastX, lastY := len1, len2
	for {
		endX, endY := 0, 0
		if path != nil {
			endX = path.x + path.length
			endY = path.y + path.length
		}
		if endX != lastX || endY != lastY {
			diffs = append(diffs, SequenceDiff{
				Seq1: OffsetRange{endX, lastX},
				Seq2: OffsetRange{endY, lastY},
			})
		}
		if path == nil {
			break
		}
		lastX, lastY = path.x, path.y
		path = path.prev
	}
	slices.Reverse(diffs)
	return Result{Diffs: diffs}
}
