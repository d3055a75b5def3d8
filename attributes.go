package hxlife

import (
	"maps"
	"slices"
)

// ChangeType classifies an attribute mutation.
type ChangeType string

const (
	// ChangeCreated means the attribute did not exist and now does.
	ChangeCreated ChangeType = "created"
	// ChangeUpdated means the attribute existed before and after. Writes of
	// the same value are still updates.
	ChangeUpdated ChangeType = "updated"
	// ChangeRemoved means the attribute existed and no longer does.
	ChangeRemoved ChangeType = "removed"
)

// AttributeChange is passed to attribute handlers. A nil value means the
// attribute was absent.
type AttributeChange struct {
	Name     string
	Type     ChangeType
	OldValue *string
	NewValue *string
}

// Classify derives the change type from the old and new values. It returns
// false when both are absent, in which case no handler runs.
func Classify(oldValue, newValue *string) (ChangeType, bool) {
	switch {
	case oldValue == nil && newValue != nil:
		return ChangeCreated, true
	case oldValue != nil && newValue != nil:
		return ChangeUpdated, true
	case oldValue != nil && newValue == nil:
		return ChangeRemoved, true
	}
	return "", false
}

// AttributeHandlers is either an AttributeFunc that handles every attribute
// of the element, or an AttributeMap keyed by attribute name.
type AttributeHandlers interface {
	attributeHandlers()
}

// HandlerEntry is the value of an AttributeMap entry: either an
// AttributeFunc or a HandlerSet.
type HandlerEntry interface {
	handlerEntry()
}

// AttributeFunc handles an attribute change.
type AttributeFunc func(el Element, change AttributeChange) error

func (AttributeFunc) attributeHandlers() {}
func (AttributeFunc) handlerEntry()      {}

// AttributeMap declares per-attribute handlers. Every key is a declared
// attribute: it gets a linked property and, for a HandlerSet with a
// Default, an initial value.
type AttributeMap map[string]HandlerEntry

func (AttributeMap) attributeHandlers() {}

// names returns the declared attribute names in a stable order.
func (m AttributeMap) names() []string {
	return slices.Sorted(maps.Keys(m))
}

// HandlerSet dispatches on the change type. Fallback runs when the handler
// for the type is missing.
type HandlerSet struct {
	Created  AttributeFunc
	Updated  AttributeFunc
	Removed  AttributeFunc
	Fallback AttributeFunc

	// Default computes the value set when the attribute is absent at
	// creation. It is only evaluated when needed.
	Default func(Element) string
}

func (HandlerSet) handlerEntry() {}

func (s HandlerSet) forType(t ChangeType) AttributeFunc {
	var fn AttributeFunc
	switch t {
	case ChangeCreated:
		fn = s.Created
	case ChangeUpdated:
		fn = s.Updated
	case ChangeRemoved:
		fn = s.Removed
	}
	if fn != nil {
		return fn
	}
	return s.Fallback
}

// ResolveHandler picks the single handler for a change of attribute name,
// or nil when none applies.
func ResolveHandler(handlers AttributeHandlers, name string, t ChangeType) AttributeFunc {
	switch h := handlers.(type) {
	case AttributeFunc:
		return h
	case AttributeMap:
		switch e := h[name].(type) {
		case AttributeFunc:
			return e
		case HandlerSet:
			return e.forType(t)
		case *HandlerSet:
			if e != nil {
				return e.forType(t)
			}
		}
	}
	return nil
}

// entryDefault returns the default of a declared attribute, if any.
func entryDefault(e HandlerEntry) func(Element) string {
	switch s := e.(type) {
	case HandlerSet:
		return s.Default
	case *HandlerSet:
		if s != nil {
			return s.Default
		}
	}
	return nil
}

func (l *Lifecycle) triggerAttributeChanged(el Element, def *Definition, name string, oldValue, newValue *string) error {
	if def.Attributes == nil {
		return nil
	}
	t, ok := Classify(oldValue, newValue)
	if !ok {
		return nil
	}

	change := AttributeChange{
		Name:     name,
		Type:     t,
		OldValue: oldValue,
		NewValue: newValue,
	}
	l.hooks.attributeChanged(el, def, change)

	fn := ResolveHandler(def.Attributes, name, t)
	if fn == nil {
		return nil
	}
	if err := fn(el, change); err != nil {
		return newCallbackError(PhaseAttribute, def, el, err)
	}
	return nil
}

// replayAttributes reports every attribute present on el as created.
// Attributes that exist when a component binds never produce mutations of
// their own.
func (l *Lifecycle) replayAttributes(el Element, def *Definition) error {
	for _, attr := range el.Attributes() {
		value := attr.Value
		if err := l.triggerAttributeChanged(el, def, attr.Name, nil, &value); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lifecycle) applyDefaults(el Element, def *Definition) {
	attrs, ok := def.Attributes.(AttributeMap)
	if !ok {
		return
	}
	for _, name := range attrs.names() {
		fn := entryDefault(attrs[name])
		if fn == nil || el.HasAttribute(name) {
			continue
		}
		el.SetAttribute(name, fn(el))
	}
}
