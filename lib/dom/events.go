package dom

import (
	"slices"

	"github.com/pthm/hxlife"
)

type listener struct {
	typ     string
	capture bool
	fn      func(hxlife.Event)
}

// Event is a dispatched event.
type Event struct {
	typ     string
	target  *Node
	bubbles bool
	stopped bool

	// Detail carries event data from the dispatcher.
	Detail any
}

// nonBubbling lists the event types that skip the bubble phase.
var nonBubbling = map[string]bool{
	"focus":      true,
	"blur":       true,
	"load":       true,
	"mouseenter": true,
	"mouseleave": true,
}

// NewEvent creates an event. Bubbling follows the usual rules for the type.
func NewEvent(typ string) *Event {
	return &Event{typ: typ, bubbles: !nonBubbling[typ]}
}

// Type returns the event type.
func (e *Event) Type() string {
	return e.typ
}

// Target returns the node the event was dispatched to.
func (e *Event) Target() hxlife.Node {
	if e.target == nil {
		return nil
	}
	return e.target
}

// Bubbles reports whether the event has a bubble phase.
func (e *Event) Bubbles() bool {
	return e.bubbles
}

// StopPropagation prevents the event from reaching further nodes.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// AddEventListener installs a listener on n.
func (n *Node) AddEventListener(typ string, capture bool, fn func(hxlife.Event)) {
	n.listeners = append(n.listeners, listener{typ: typ, capture: capture, fn: fn})
}

// Dispatch sends ev to n: capture listeners from the root down to n's
// parent, every listener on n, then, for bubbling events, non-capture
// listeners from n's parent up to the root.
func (n *Node) Dispatch(ev *Event) {
	ev.target = n

	var path []*Node
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}

	for _, p := range slices.Backward(path) {
		p.fire(ev, func(l listener) bool { return l.capture })
		if ev.stopped {
			return
		}
	}

	n.fire(ev, func(listener) bool { return true })
	if ev.stopped || !ev.bubbles {
		return
	}

	for _, p := range path {
		p.fire(ev, func(l listener) bool { return !l.capture })
		if ev.stopped {
			return
		}
	}
}

func (n *Node) fire(ev *Event, want func(listener) bool) {
	for _, l := range slices.Clone(n.listeners) {
		if l.typ == ev.typ && want(l) {
			l.fn(ev)
		}
	}
}
