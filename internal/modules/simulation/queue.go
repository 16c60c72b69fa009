// README: Event queue ordered by (timestamp, insertion sequence).
package simulation

import (
	"container/heap"

	"dispatchsim/internal/modules/event"
)

type queued struct {
	event event.Event
	seq   uint64
}

// eventHeap implements heap.Interface. Equal timestamps pop in insertion
// order, which keeps runs deterministic.
type eventHeap []queued

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Timestamp != h[j].event.Timestamp {
		return h[i].event.Timestamp < h[j].event.Timestamp
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(queued)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = queued{}
	*h = old[:n-1]
	return item
}

type Queue struct {
	items eventHeap
	next  uint64
}

func (q *Queue) Push(e event.Event) {
	heap.Push(&q.items, queued{event: e, seq: q.next})
	q.next++
}

func (q *Queue) Pop() (event.Event, bool) {
	if len(q.items) == 0 {
		return event.Event{}, false
	}
	return heap.Pop(&q.items).(queued).event, true
}

func (q *Queue) Len() int { return len(q.items) }
