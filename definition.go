package hxlife

// BindingType selects how a definition is matched against elements.
type BindingType int

const (
	// BindElement matches the tag name, or the "is" attribute for extended
	// built-in elements. This is the default.
	BindElement BindingType = iota
	// BindAttribute matches elements carrying an attribute named after the ID.
	BindAttribute
	// BindClass matches elements whose class list contains the ID.
	BindClass
)

func (b BindingType) String() string {
	switch b {
	case BindElement:
		return "element"
	case BindAttribute:
		return "attribute"
	case BindClass:
		return "class"
	}
	return "unknown"
}

// Default marker attributes flipped when an element is created.
const (
	DefaultResolvedAttribute   = "resolved"
	DefaultUnresolvedAttribute = "unresolved"
)

// Callback is a lifecycle callback.
type Callback func(el Element) error

// EventHandler handles an event wired from a definition. current is the
// element the handler runs against: the component element itself, or the
// delegate match.
type EventHandler func(el Element, ev Event, current Element) error

// Definition describes a component. Definitions are read-only once added to
// a registry; the engine never mutates them.
//
//	counter := &hxlife.Definition{
//	    ID: "x-counter",
//	    Attributes: hxlife.AttributeMap{
//	        "count": hxlife.HandlerSet{
//	            Default: hxlife.Static("0"),
//	            Updated: c.renderCount,
//	        },
//	    },
//	    Events: map[string]hxlife.EventHandler{
//	        "click button": c.increment,
//	    },
//	    Attached: c.start,
//	}
type Definition struct {
	// ID identifies the definition and keys its lifecycle records.
	ID string

	Bind BindingType

	// Native marks definitions whose host already reports attribute changes.
	Native bool

	// Behavior is the capability set the element gains when created.
	// It is retrievable with BehaviorOf.
	Behavior any

	// Template renders the element's content. It is skipped when the element
	// already carries the resolved marker.
	Template Callback

	Attributes AttributeHandlers

	// Events maps "name" or "name selector" to a handler. With a selector
	// the handler is delegated to matching descendants.
	Events map[string]EventHandler

	Created  Callback
	Attached Callback
	Detached Callback

	ResolvedAttribute   string
	UnresolvedAttribute string
}

func (d *Definition) resolvedAttribute() string {
	if d.ResolvedAttribute != "" {
		return d.ResolvedAttribute
	}
	return DefaultResolvedAttribute
}

func (d *Definition) unresolvedAttribute() string {
	if d.UnresolvedAttribute != "" {
		return d.UnresolvedAttribute
	}
	return DefaultUnresolvedAttribute
}

// Static returns a default that always yields value.
func Static(value string) func(Element) string {
	return func(Element) string { return value }
}
