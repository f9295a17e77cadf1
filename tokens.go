package tosstrades

// cursor walks a token sequence left to right. The extractors consume
// heterogeneous, variable-width field groups through it instead of juggling
// raw indices.
type cursor struct {
	tokens []string
	pos    int
}

func newCursor(tokens []string) *cursor { return &cursor{tokens: tokens} }

// peek returns the next token without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// take consumes and returns the next token.
func (c *cursor) take() (string, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

// takeWhile consumes tokens as long as pred holds and returns them.
func (c *cursor) takeWhile(pred func(string) bool) []string {
	var out []string
	for {
		t, ok := c.peek()
		if !ok || !pred(t) {
			return out
		}
		c.pos++
		out = append(out, t)
	}
}

// takeUntil consumes tokens up to, but not including, the first token
// matching pred. found is false when the cursor was exhausted first.
func (c *cursor) takeUntil(pred func(string) bool) (consumed []string, found bool) {
	consumed = c.takeWhile(func(t string) bool { return !pred(t) })
	_, found = c.peek()
	return consumed, found
}

// mark and reset allow speculative consumption with rollback.
func (c *cursor) mark() int { return c.pos }
func (c *cursor) reset(m int) { c.pos = m }
func (c *cursor) remaining() int { return len(c.tokens) - c.pos }
