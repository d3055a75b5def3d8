package dom

import (
	"slices"
	"strings"

	"github.com/pthm/hxlife"
)

// Node is a node of an in-memory document. It implements hxlife.Element for
// every kind; callers check Kind before treating it as an element.
type Node struct {
	kind     hxlife.NodeKind
	tag      string
	text     string
	attrs    []hxlife.Attr
	parent   *Node
	children []*Node
	doc      *Document

	data      hxlife.ElementData
	listeners []listener
}

// Kind returns the node kind.
func (n *Node) Kind() hxlife.NodeKind {
	return n.kind
}

// Document returns the document that owns n.
func (n *Node) Document() *Document {
	return n.doc
}

// LifecycleData returns the auxiliary record stored on the node.
func (n *Node) LifecycleData() *hxlife.ElementData {
	return &n.data
}

// TagName returns the lowercase tag name, or "" for non-elements.
func (n *Node) TagName() string {
	return n.tag
}

// Text returns the content of a text node.
func (n *Node) Text() string {
	return n.text
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.kind == hxlife.KindText {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// ParentNode returns the parent, or nil for roots.
func (n *Node) ParentNode() hxlife.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildNodes returns a snapshot of the children.
func (n *Node) ChildNodes() []hxlife.Node {
	out := make([]hxlife.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Children returns a snapshot of the children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// IsConnected reports whether n is in its document's tree.
func (n *Node) IsConnected() bool {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur.kind == hxlife.KindDocument
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

func (n *Node) attrIndex(name string) int {
	return slices.IndexFunc(n.attrs, func(a hxlife.Attr) bool { return a.Name == name })
}

// Attribute returns the value of an attribute.
func (n *Node) Attribute(name string) (string, bool) {
	if i := n.attrIndex(name); i >= 0 {
		return n.attrs[i].Value, true
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(name string) bool {
	return n.attrIndex(name) >= 0
}

// Attributes returns a snapshot of the attributes in order.
func (n *Node) Attributes() []hxlife.Attr {
	return slices.Clone(n.attrs)
}

// SetAttribute adds or replaces an attribute. Writes of an unchanged value
// are still reported to observers.
func (n *Node) SetAttribute(name, value string) {
	if n.kind != hxlife.KindElement {
		return
	}
	var old *string
	if i := n.attrIndex(name); i >= 0 {
		prev := n.attrs[i].Value
		old = &prev
		n.attrs[i].Value = value
	} else {
		n.attrs = append(n.attrs, hxlife.Attr{Name: name, Value: value})
	}
	n.doc.queueAttribute(n, name, old)
}

// RemoveAttribute removes an attribute if present.
func (n *Node) RemoveAttribute(name string) {
	i := n.attrIndex(name)
	if i < 0 {
		return
	}
	old := n.attrs[i].Value
	n.attrs = slices.Delete(n.attrs, i, i+1)
	n.doc.queueAttribute(n, name, &old)
}

// AppendChild moves child to the end of n's children.
func (n *Node) AppendChild(child *Node) *Node {
	return n.InsertBefore(child, nil)
}

// InsertBefore moves child in front of ref, or to the end when ref is nil.
// Inserting a fragment moves its children instead.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if child.Contains(n) {
		panic("dom: insertion would create a cycle")
	}
	if child.kind == hxlife.KindFragment {
		for _, c := range child.Children() {
			n.InsertBefore(c, ref)
		}
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}

	i := len(n.children)
	if ref != nil {
		if i = slices.Index(n.children, ref); i < 0 {
			panic("dom: reference node is not a child")
		}
	}
	n.children = slices.Insert(n.children, i, child)
	child.parent = n
	n.doc.queueChildList(n, []hxlife.Node{child}, nil)
	return child
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child *Node) *Node {
	i := slices.Index(n.children, child)
	if i < 0 {
		return child
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	n.doc.queueChildList(n, nil, []hxlife.Node{child})
	return child
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// ReplaceChildren removes every child and appends nodes.
func (n *Node) ReplaceChildren(nodes ...*Node) {
	for _, c := range n.Children() {
		n.RemoveChild(c)
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
}

// QueryAll returns the elements below n, in document order, for which fn
// returns true.
func (n *Node) QueryAll(fn func(*Node) bool) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.kind == hxlife.KindElement && fn(c) {
			out = append(out, c)
		}
		out = append(out, c.QueryAll(fn)...)
	}
	return out
}

// ByID returns the first element below n with the given id attribute.
func (n *Node) ByID(id string) *Node {
	found := n.QueryAll(func(c *Node) bool {
		v, ok := c.Attribute("id")
		return ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
