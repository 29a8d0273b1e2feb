package store

import "time"

// Sample is one timestamped scalar metric reading. Immutable once created.
type Sample struct {
	Timestamp time.Time
	Value     float64
}

// History is a fixed-capacity FIFO sequence of Samples backing a chart.
// Insertion is always at the tail; at capacity the oldest sample is evicted.
// Capacity is fixed at construction and never changes at runtime.
//
// History is not safe for concurrent use; the Store serializes access.
type History struct {
	data     []Sample
	head     int
	count    int
	capacity int
}

// NewHistory creates a history buffer with the given capacity.
// A zero or negative capacity yields a buffer whose Push is a no-op
// (the chart renders empty, not an error).
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{
		data:     make([]Sample, capacity),
		capacity: capacity,
	}
}

// Push appends a sample, evicting the oldest when at capacity.
// Amortized O(1).
func (h *History) Push(value float64, timestamp time.Time) {
	if h.capacity == 0 {
		return
	}
	h.data[h.head] = Sample{Timestamp: timestamp, Value: value}
	h.head = (h.head + 1) % h.capacity
	if h.count < h.capacity {
		h.count++
	}
}

// Values returns the stored samples in chronological order, oldest first.
// The returned slice is a copy and safe to retain.
func (h *History) Values() []Sample {
	if h.count == 0 {
		return nil
	}
	result := make([]Sample, h.count)
	start := (h.head - h.count + h.capacity) % h.capacity
	for i := 0; i < h.count; i++ {
		result[i] = h.data[(start+i)%h.capacity]
	}
	return result
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.count
}

// Cap returns the fixed capacity.
func (h *History) Cap() int {
	return h.capacity
}
