package resolve

// Chain tracks the reference keys being resolved on the current path. The
// normalizer shares one Chain across a schema subtree so a schema that reaches
// itself through properties or items is cut at the repeat.
type Chain struct {
	stack   []string
	inStack map[string]struct{}
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{stack: make([]string, 0, 4), inStack: make(map[string]struct{})}
}

// Enter pushes key. It returns false, leaving the chain untouched, when key is
// already on the chain.
func (c *Chain) Enter(key string) bool {
	if c.Contains(key) {
		return false
	}
	c.stack = append(c.stack, key)
	if c.inStack == nil {
		c.inStack = make(map[string]struct{})
	}
	c.inStack[key] = struct{}{}
	return true
}

// Leave pops the top entry. A key that is not on top is still forgotten.
func (c *Chain) Leave(key string) {
	if len(c.stack) == 0 {
		return
	}
	last := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	delete(c.inStack, last)
	if key != last {
		delete(c.inStack, key)
	}
}

// Contains reports whether key is on the chain.
func (c *Chain) Contains(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.inStack[key]
	return ok
}

// Depth returns the number of keys on the chain.
func (c *Chain) Depth() int {
	if c == nil {
		return 0
	}
	return len(c.stack)
}

// Mark returns a position to Reset to once a subtree is done.
func (c *Chain) Mark() int {
	return c.Depth()
}

// Reset pops every key pushed after mark.
func (c *Chain) Reset(mark int) {
	for len(c.stack) > mark {
		c.Leave(c.stack[len(c.stack)-1])
	}
}

// Keys returns the chain contents, outermost first.
func (c *Chain) Keys() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.stack...)
}
