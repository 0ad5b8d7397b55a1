// Package sched provides a polled timer queue on top of a tick source.
//
// The queue owns no goroutine: the caller polls it from the main loop and
// due events run synchronously inside Poll. A handler reports whether its
// event is done or should run again after its period. Like everything
// built on the tick counter, the queue is single-writer; the owner must
// serialize Schedule, Cancel and Poll.
package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"mcukit/tick"
)

// Action is returned by an event handler to control rescheduling.
type Action uint8

const (
	Done Action = iota
	Reschedule
)

// Handler runs when an event is due.
type Handler func(*Event) Action

// Event is one scheduled entry in the queue.
type Event struct {
	id     uint64
	wake   uint64 // absolute time on the queue's unwrapped timeline
	period tick.Ticks
	fn     Handler
	queued bool
}

// Period returns the event's period in ticks.
func (e *Event) Period() tick.Ticks { return e.period }

// Queued reports whether the event is currently pending.
func (e *Event) Queued() bool { return e.queued }

// nodeKey orders the tree by wake time, with the id as tie breaker so
// simultaneous events dispatch in scheduling order.
type nodeKey struct {
	wake uint64
	id   uint64
}

func cmp(a, b interface{}) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.wake < kb.wake:
		return -1
	case ka.wake > kb.wake:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

// Queue dispatches events against a tick source.
//
// Counter wraparound is handled by accumulating masked elapsed ticks into
// a 64-bit timeline, so the queue outlives any number of counter periods
// as long as Poll is called at least once per period.
type Queue struct {
	src    tick.Source
	rbt    *redblacktree.Tree
	last   tick.Ticks
	now    uint64
	nextID uint64
}

// New returns an empty queue reading from src.
func New(src tick.Source) *Queue {
	return &Queue{
		src:  src,
		rbt:  redblacktree.NewWith(cmp),
		last: src.Now(),
	}
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return q.rbt.Size() }

// Schedule arms an event to run period ticks from now. When the handler
// returns Reschedule the event re-arms for period ticks after the
// dispatch, so late polls delay subsequent runs rather than batching
// them.
func (q *Queue) Schedule(period tick.Ticks, fn Handler) *Event {
	q.advance()

	ev := &Event{
		id:     q.nextID,
		wake:   q.now + uint64(period),
		period: period,
		fn:     fn,
		queued: true,
	}
	q.nextID++
	q.rbt.Put(nodeKey{ev.wake, ev.id}, ev)
	return ev
}

// Cancel removes a pending event. Returns false if the event already ran
// to completion or was cancelled.
func (q *Queue) Cancel(ev *Event) bool {
	if !ev.queued {
		return false
	}
	q.rbt.Remove(nodeKey{ev.wake, ev.id})
	ev.queued = false
	return true
}

// Poll advances the queue's timeline and runs every due event. It returns
// the number of handlers invoked. Poll must be called at least once per
// counter period of the source or elapsed ticks alias.
func (q *Queue) Poll() int {
	q.advance()

	dispatched := 0
	for {
		node := q.rbt.Left()
		if node == nil {
			break
		}
		key := node.Key.(nodeKey)
		if key.wake > q.now {
			break
		}

		ev := node.Value.(*Event)
		q.rbt.Remove(key)
		ev.queued = false

		dispatched++
		if ev.fn(ev) == Reschedule && ev.period > 0 {
			ev.wake = q.now + uint64(ev.period)
			ev.queued = true
			q.rbt.Put(nodeKey{ev.wake, ev.id}, ev)
		}
	}
	return dispatched
}

// advance folds the masked elapsed ticks since the last reading into the
// unwrapped timeline.
func (q *Queue) advance() {
	now := q.src.Now()
	q.now += uint64(tick.Elapsed(q.last, now, q.src.Mask()))
	q.last = now
}
