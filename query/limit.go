package query

// Limit keeps the sub-range [index, index+count) of a collection, clipped to
// its bounds. It does not look at element content.
type Limit struct {
	index int
	count int
}

// NewLimit keeps the first count elements.
func NewLimit(count int) *Limit {
	return NewLimitAt(0, count)
}

// NewLimitAt skips index elements and keeps the next count.
// Negative values are treated as 0.
func NewLimitAt(index, count int) *Limit {
	return &Limit{index: max(index, 0), count: max(count, 0)}
}

// Index returns the number of leading elements skipped.
func (c *Limit) Index() int { return c.index }

// Count returns the maximum number of elements kept.
func (c *Limit) Count() int { return c.count }

// Execute truncates elems to the configured range. An index at or past the
// end leaves elems empty.
func (c *Limit) Execute(elems *Elements) error {
	s := *elems
	if c.index >= len(s) {
		clear(s)
		*elems = shrink(s[:0])
		return nil
	}

	// Drop the head, then the tail of what remains.
	n := copy(s, s[c.index:])
	end := min(c.count, n)
	clear(s[end:])
	*elems = shrink(s[:end])
	return nil
}

func (*Limit) command() {}

// shrink reallocates s when less than half of its backing array is in use,
// so the dropped capacity can be reclaimed.
func shrink(s Elements) Elements {
	if cap(s) <= 2*len(s) {
		return s
	}
	out := make(Elements, len(s))
	copy(out, s)
	return out
}
