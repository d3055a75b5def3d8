package hxlife

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// parseEvent splits an event key into the event name and delegate selector.
func parseEvent(key string) (name, delegate string) {
	name, delegate, _ = strings.Cut(strings.TrimSpace(key), " ")
	return name, strings.TrimSpace(delegate)
}

// addEventListeners wires the definition's events onto el, in key order.
func (l *Lifecycle) addEventListeners(el Element, def *Definition) error {
	for _, key := range slices.Sorted(maps.Keys(def.Events)) {
		handler := def.Events[key]
		if handler == nil {
			continue
		}
		name, delegate := parseEvent(key)
		if delegate != "" && l.matcher == nil {
			return fmt.Errorf("%w: %q of %q", ErrNoMatcher, key, def.ID)
		}

		// focus and blur do not bubble, so delegation has to listen while
		// the event travels down.
		capture := delegate != "" && (name == "focus" || name == "blur")
		el.AddEventListener(name, capture, l.makeHandler(el, def, handler, delegate))
	}
	return nil
}

func (l *Lifecycle) makeHandler(el Element, def *Definition, handler EventHandler, delegate string) func(Event) {
	return func(ev Event) {
		var err error
		if delegate == "" {
			err = handler(el, ev, el)
		} else if match := l.delegateTarget(el, ev, delegate); match != nil {
			err = handler(el, ev, match)
		}
		if err != nil {
			l.handleError(newCallbackError(PhaseEvent, def, el, err))
		}
	}
}

// delegateTarget walks from the event target towards el and returns the
// first element matching selector. The walk stops at el's parent and at the
// document.
func (l *Lifecycle) delegateTarget(el Element, ev Event, selector string) Element {
	stop := el.ParentNode()
	for cur := ev.Target(); cur != nil; cur = cur.ParentNode() {
		if stop != nil && cur == stop {
			return nil
		}
		switch cur.Kind() {
		case KindDocument:
			return nil
		case KindElement:
			candidate := cur.(Element)
			if l.matcher.Matches(candidate, selector) {
				return candidate
			}
		}
	}
	return nil
}
