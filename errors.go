package hxlife

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle operations.
var (
	ErrNoMatcher      = errors.New("hxlife: delegated event requires a selector matcher")
	ErrUnknownBinding = errors.New("hxlife: unknown binding type")
)

// Phase names the step of the lifecycle a callback ran in.
type Phase string

const (
	PhaseTemplate  Phase = "template"
	PhaseCreated   Phase = "created"
	PhaseAttached  Phase = "attached"
	PhaseDetached  Phase = "detached"
	PhaseAttribute Phase = "attribute"
	PhaseEvent     Phase = "event"
)

// CallbackError wraps an error returned by a user callback. The engine does
// not recover from callback failures: the first error aborts the batch and is
// returned to the caller.
type CallbackError struct {
	Phase      Phase
	Definition string
	Element    Element
	Err        error
}

func newCallbackError(phase Phase, def *Definition, el Element, err error) *CallbackError {
	return &CallbackError{
		Phase:      phase,
		Definition: def.ID,
		Element:    el,
		Err:        err,
	}
}

func (e *CallbackError) Error() string {
	tag := "?"
	if e.Element != nil {
		tag = e.Element.TagName()
	}
	return fmt.Sprintf("hxlife: %s callback of %q on <%s>: %v", e.Phase, e.Definition, tag, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

// IsCallbackError checks if err came from a user callback.
func IsCallbackError(err error) bool {
	var cbErr *CallbackError
	return errors.As(err, &cbErr)
}

// CallbackPhase returns the phase of the callback that produced err.
func CallbackPhase(err error) (Phase, bool) {
	var cbErr *CallbackError
	if !errors.As(err, &cbErr) {
		return "", false
	}
	return cbErr.Phase, true
}
