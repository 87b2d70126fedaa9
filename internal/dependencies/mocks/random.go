package mocks

import (
	"github.com/mcoot/puzzlesuite-go/internal/dependencies/random"
)

// MockRandom returns queued strings in order, ignoring length and alphabet.
// An exhausted queue yields empty strings.
type MockRandom struct {
	queue []string
	next  int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with an empty queue
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued value, or "" when the queue is exhausted
func (r *MockRandom) String(length int, alphabet string) string {
	if r.next >= len(r.queue) {
		return ""
	}
	v := r.queue[r.next]
	r.next++
	return v
}

// QueueString appends values to the result queue
func (r *MockRandom) QueueString(values ...string) {
	r.queue = append(r.queue, values...)
}

// Reset clears the queue
func (r *MockRandom) Reset() {
	r.queue = nil
	r.next = 0
}
