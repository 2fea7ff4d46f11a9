package linediff

import "time"

// Options configure Compute.
type Options struct {
	// IgnoreTrimWhitespace treats lines that differ only in leading/trailing
	// whitespace as equal and skips whitespace-only inner mappings.
	IgnoreTrimWhitespace bool

	// MaxComputationTime bounds the whole computation by wall-clock time.
	// Zero means unbounded. On expiry the result degrades to coarser diffs
	// and LinesDiff.HitTimeout is set; a well-formed result is still
	// returned.
	MaxComputationTime time.Duration

	// ComputeMoves is accepted for interface compatibility but move
	// detection is not implemented: the move list is always empty.
	ComputeMoves bool

	// ExtendToSubwords additionally extends character diffs to
	// camelCase-delimited subword boundaries.
	ExtendToSubwords bool
}
