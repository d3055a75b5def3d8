package hxlife

// NodeKind classifies a node in the host tree.
type NodeKind int

const (
	// KindElement is an element node. Only elements take part in the lifecycle.
	KindElement NodeKind = iota + 1
	// KindText is a text node.
	KindText
	// KindDocument is the root of a live document.
	KindDocument
	// KindFragment is a detached container of nodes.
	KindFragment
)

// Node is a position in the host tree.
//
// The engine never creates or destroys nodes; it only reads the tree shape,
// mutates element attributes and attaches auxiliary data through a DataStore.
// ParentNode must return a nil interface (not a typed nil) for roots.
type Node interface {
	Kind() NodeKind
	ParentNode() Node
	ChildNodes() []Node
}

// Attr is a single attribute in document order.
type Attr struct {
	Name  string `msgpack:"name" yaml:"name"`
	Value string `msgpack:"value" yaml:"value"`
}

// Element is a node that can be bound to component definitions.
//
// Hosts implement Element on the same type as Node; the engine only treats a
// node as an Element after checking Kind() == KindElement.
type Element interface {
	Node

	TagName() string
	Attribute(name string) (string, bool)
	HasAttribute(name string) bool
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// Attributes returns a snapshot of the current attributes in order.
	Attributes() []Attr

	// IsConnected reports whether the element is part of the live document.
	IsConnected() bool

	// AddEventListener installs fn for events of type typ. When capture is
	// true the listener runs during the capture phase.
	AddEventListener(typ string, capture bool, fn func(Event))
}

// Event is a dispatched host event.
type Event interface {
	Type() string
	Target() Node
}

// Registry resolves the definitions bound to an element.
//
// ForElement returns definitions in registration order. IsNative reports
// whether the host manages the definition natively, in which case the engine
// does not observe attributes itself.
type Registry interface {
	ForElement(el Element) []*Definition
	IsNative(id string) bool
}

// DataStore returns the auxiliary record of a node.
//
// The record is created on first access and has the same identity for the
// lifetime of the node.
type DataStore interface {
	Data(n Node) *ElementData
}

// ObserveOptions selects which attribute mutations a source reports.
type ObserveOptions struct {
	Attributes        bool
	AttributeOldValue bool
}

// MutationRecord describes one attribute mutation. OldValue is nil when the
// attribute did not exist before the mutation.
type MutationRecord struct {
	AttributeName string
	OldValue      *string
}

// Observation is a live attribute subscription.
type Observation interface {
	// TakeRecords removes and returns the records queued but not yet delivered.
	TakeRecords() []MutationRecord
}

// MutationSource delivers batched attribute mutations of a single element.
//
// The callback receives every queued record in mutation order. Subscriptions
// last as long as the element.
type MutationSource interface {
	Observe(el Element, opts ObserveOptions, fn func([]MutationRecord)) Observation
}

// ChildListRecord describes nodes added to and removed from one parent.
type ChildListRecord struct {
	Target  Node
	Added   []Node
	Removed []Node
}

// TreeObserver delivers batched child-list mutations of a subtree.
type TreeObserver interface {
	ObserveChildList(root Node, fn func([]ChildListRecord))
}

// Matcher reports whether an element matches a selector. It must work for
// elements that are not attached to the live document.
type Matcher interface {
	Matches(el Element, selector string) bool
}
