package tally

import "testing"

func TestNewCounter(t *testing.T) {
	c := NewCounter()
	if c == nil {
		t.Fatal("NewCounter() returned nil")
	}
	if got := c.Value(); got != 0 {
		t.Errorf("new counter Value() = %d, want 0", got)
	}
}

func TestCounterIncrement(t *testing.T) {
	c := NewCounter()
	c.Increment()
	c.Increment()
	if got := c.Value(); got != 2 {
		t.Errorf("after two increments Value() = %d, want 2", got)
	}
}

func TestCounterDecrementBelowZero(t *testing.T) {
	// Decrementing is unclamped: going below zero is allowed.
	c := NewCounter()
	c.Increment()
	c.Increment()
	c.Decrement()
	c.Decrement()
	c.Decrement()
	if got := c.Value(); got != -1 {
		t.Errorf("Value() = %d, want -1", got)
	}
}

func TestCounterReset(t *testing.T) {
	c := NewCounter()
	for i := 0; i < 17; i++ {
		c.Increment()
	}
	c.Reset()
	if got := c.Value(); got != 0 {
		t.Errorf("after Reset Value() = %d, want 0", got)
	}

	// Reset is idempotent.
	c.Reset()
	if got := c.Value(); got != 0 {
		t.Errorf("after second Reset Value() = %d, want 0", got)
	}
}

func TestCounterSequence(t *testing.T) {
	// The value always equals the net sum of applied operations,
	// with reset zeroing the running total where it occurs.
	tests := []struct {
		name string
		ops  string // '+', '-', or '0' for reset
		want int64
	}{
		{"empty", "", 0},
		{"net positive", "+++--", 1},
		{"net negative", "+-----", -4},
		{"reset mid-sequence", "+++0--", -2},
		{"reset at end", "+-+-+0", 0},
		{"double reset", "++00+", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter()
			for _, op := range tt.ops {
				switch op {
				case '+':
					c.Increment()
				case '-':
					c.Decrement()
				case '0':
					c.Reset()
				}
			}
			if got := c.Value(); got != tt.want {
				t.Errorf("ops %q: Value() = %d, want %d", tt.ops, got, tt.want)
			}
		})
	}
}

func TestLoggerDefault(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	// Setting nil restores the silent default rather than panicking.
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
}
