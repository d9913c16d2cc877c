package presenter

import (
	"sync"
	"time"
)

// SessionCounters accumulates token usage and timing for one UI session.
// Totals only ever grow within a session; Reset starts a new one.
type SessionCounters struct {
	mu               sync.Mutex
	promptTokens     int
	completionTokens int
	lastElapsed      time.Duration
}

func NewSessionCounters() *SessionCounters {
	return &SessionCounters{}
}

// Add folds one usage record into the running totals.
func (c *SessionCounters) Add(promptTokens, completionTokens int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.promptTokens += promptTokens
	c.completionTokens += completionTokens
}

// SetElapsed records the wall-clock duration of the last completed task.
func (c *SessionCounters) SetElapsed(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastElapsed = d
}

// Snapshot returns the current totals.
func (c *SessionCounters) Snapshot() (promptTokens, completionTokens int, lastElapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.promptTokens, c.completionTokens, c.lastElapsed
}

// Reset zeroes the counters, starting a new session.
func (c *SessionCounters) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.promptTokens = 0
	c.completionTokens = 0
	c.lastElapsed = 0
}
