package linediff

import "fmt"

// validate checks the LinesDiff result invariants and returns an error on the
// first violation. Tests run it on every computed diff.
func (d LinesDiff) validate() error {
	lastOriginal, lastModified := 0, 0
	for i, c := range d.Changes {
		if c.Original.Start > c.Original.End {
			return fmt.Errorf("change[%d]: inverted original range %v", i, c.Original)
		}
		if c.Modified.Start > c.Modified.End {
			return fmt.Errorf("change[%d]: inverted modified range %v", i, c.Modified)
		}
		if c.Original.IsEmpty() && c.Modified.IsEmpty() {
			return fmt.Errorf("change[%d]: empty on both sides", i)
		}
		if i > 0 {
			if c.Original.Start < lastOriginal {
				return fmt.Errorf("change[%d]: original ranges overlap or are unordered", i)
			}
			if c.Modified.Start < lastModified {
				return fmt.Errorf("change[%d]: modified ranges overlap or are unordered", i)
			}
		}
		lastOriginal = c.Original.End
		lastModified = c.Modified.End

		for j, inner := range c.Inner {
			if inner.Original.End.Before(inner.Original.Start) {
				return fmt.Errorf("change[%d].inner[%d]: inverted original char range", i, j)
			}
			if inner.Modified.End.Before(inner.Modified.Start) {
				return fmt.Errorf("change[%d].inner[%d]: inverted modified char range", i, j)
			}
			// Inner mappings may reach one line above their enclosing range:
			// pure insertions anchor at the end of the preceding line.
			if inner.Original.Start.Line < c.Original.Start-1 || inner.Original.End.Line > c.Original.End {
				return fmt.Errorf("change[%d].inner[%d]: original lines escape the enclosing range", i, j)
			}
			if inner.Modified.Start.Line < c.Modified.Start-1 || inner.Modified.End.Line > c.Modified.End {
				return fmt.Errorf("change[%d].inner[%d]: modified lines escape the enclosing range", i, j)
			}
		}
	}
	if len(d.Moves) != 0 {
		return fmt.Errorf("moves must be empty: move detection is not implemented")
	}
	return nil
}
