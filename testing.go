package hxlife

import (
	"fmt"
	"slices"
)

// Trace records lifecycle callbacks for tests.
//
// Definitions built with Trace.Definition record entries such as
// "a.created", "a.attached" or "a.attr:title:updated", where "a" is the
// element's id attribute (or its tag name when it has none):
//
//	trace := hxlife.NewTrace()
//	reg := hxlife.NewRegistry()
//	reg.Add(trace.Definition("x-panel"))
//	...
//	if !trace.Before("a.created", "b.attached") {
//	    t.Fatal("created must precede attached")
//	}
type Trace struct {
	calls []string
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Calls returns the recorded entries in order.
func (t *Trace) Calls() []string {
	return slices.Clone(t.calls)
}

// Reset forgets every recorded entry.
func (t *Trace) Reset() {
	t.calls = nil
}

// Record appends an entry.
func (t *Trace) Record(entry string) {
	t.calls = append(t.calls, entry)
}

// Count returns how many times entry was recorded.
func (t *Trace) Count(entry string) int {
	n := 0
	for _, c := range t.calls {
		if c == entry {
			n++
		}
	}
	return n
}

// Contains returns true if entry was recorded.
func (t *Trace) Contains(entry string) bool {
	return slices.Contains(t.calls, entry)
}

// Before returns true if the first occurrence of a precedes the first
// occurrence of b. Both must be present.
func (t *Trace) Before(a, b string) bool {
	ia := slices.Index(t.calls, a)
	ib := slices.Index(t.calls, b)
	return ia >= 0 && ib >= 0 && ia < ib
}

// Callback returns a lifecycle callback recording "<element>.<phase>".
func (t *Trace) Callback(phase string) Callback {
	return func(el Element) error {
		t.Record(Label(el) + "." + phase)
		return nil
	}
}

// Attribute returns an attribute handler recording
// "<element>.<label>:<name>:<type>".
func (t *Trace) Attribute(label string) AttributeFunc {
	return func(el Element, c AttributeChange) error {
		t.Record(fmt.Sprintf("%s.%s:%s:%s", Label(el), label, c.Name, c.Type))
		return nil
	}
}

// Definition returns an element definition whose lifecycle callbacks and
// catch-all attribute handler record into t.
func (t *Trace) Definition(id string) *Definition {
	return &Definition{
		ID:         id,
		Created:    t.Callback("created"),
		Attached:   t.Callback("attached"),
		Detached:   t.Callback("detached"),
		Attributes: t.Attribute("attr"),
	}
}

// Label identifies an element in traces and logs: its id attribute, or its
// tag name.
func Label(el Element) string {
	if id, ok := el.Attribute("id"); ok && id != "" {
		return id
	}
	return el.TagName()
}
