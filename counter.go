package tally

// Counter holds the application's single piece of state: one signed
// integer. It is mutated only through Increment, Decrement, and Reset.
//
// Counter is NOT safe for concurrent use. The demo touches it from the
// UI thread only, which is the intended usage.
type Counter struct {
	value int64
}

// NewCounter returns a Counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Increment adds one to the counter.
func (c *Counter) Increment() {
	c.value++
}

// Decrement subtracts one from the counter. There is no lower bound:
// decrementing from zero yields -1.
func (c *Counter) Decrement() {
	c.value--
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	c.value = 0
}

// Value returns the current counter value. Read-only.
func (c *Counter) Value() int64 {
	return c.value
}
