package synth

// budget walks the grammar sizes tried for one label. Failures
// alternate between nesting deeper and adding clauses; a dimension at
// its ceiling yields to the other.
type budget struct {
	depth    int
	width    int
	maxDepth int
	maxWidth int
	step     int
	attempts int
	limit    int
}

func newBudget(c *synthesizerConfig) *budget {
	return &budget{
		width:    c.initialWidth,
		maxDepth: c.maxDepth,
		maxWidth: c.maxWidth,
		step:     c.widthStep,
		attempts: 1,
		limit:    c.maxAttempts,
	}
}

// grow moves to the next grammar size after a failed attempt. It
// reports false when the budget is spent.
func (b *budget) grow() bool {
	if b.attempts >= b.limit {
		return false
	}
	deeper := b.depth < b.maxDepth
	wider := b.width+b.step <= b.maxWidth
	switch {
	case deeper && (b.attempts%2 == 1 || !wider):
		b.depth++
	case wider:
		b.width += b.step
	default:
		return false
	}
	b.attempts++
	return true
}
