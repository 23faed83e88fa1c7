package sched

import "container/heap"

type event struct {
	day    int
	phase  Phase
	key    int64
	seq    uint64
	action Action
}

func (e *event) before(o *event) bool {
	if e.day != o.day {
		return e.day < o.day
	}
	if e.phase != o.phase {
		return e.phase < o.phase
	}
	if e.key != o.key {
		return e.key < o.key
	}
	return e.seq < o.seq
}

type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool { return h[i].before(h[j]) }

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	evt := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return evt
}

type eventQueue struct {
	events eventHeap
}

func newEventQueue() *eventQueue {
	q := &eventQueue{events: make(eventHeap, 0)}
	heap.Init(&q.events)
	return q
}

func (q *eventQueue) push(e *event) { heap.Push(&q.events, e) }

func (q *eventQueue) pop() *event {
	if len(q.events) == 0 {
		return nil
	}
	return heap.Pop(&q.events).(*event)
}

func (q *eventQueue) peek() *event {
	if len(q.events) == 0 {
		return nil
	}
	return q.events[0]
}

func (q *eventQueue) len() int { return len(q.events) }
