package dom

import (
	"strings"

	"github.com/pthm/hxlife"
)

// Document owns a tree of nodes and the observers watching it.
//
// Mutations are queued on the observers interested in them and delivered
// in batches by Flush, the way a browser delivers mutation observer records
// at a microtask checkpoint. A Document is not safe for concurrent use.
type Document struct {
	root      *Node
	observers []observer

	// version counts mutations of any tree owned by the document.
	version uint64
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	d := &Document{}
	d.root = &Node{kind: hxlife.KindDocument, doc: d}
	return d
}

// Root returns the document node.
func (d *Document) Root() *Node {
	return d.root
}

// DocumentElement returns the first element child of the document node.
func (d *Document) DocumentElement() *Node {
	for _, c := range d.root.children {
		if c.kind == hxlife.KindElement {
			return c
		}
	}
	return nil
}

// Body returns the body element, or nil.
func (d *Document) Body() *Node {
	found := d.root.QueryAll(func(n *Node) bool { return n.tag == "body" })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{kind: hxlife.KindElement, tag: strings.ToLower(tag), doc: d}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(text string) *Node {
	return &Node{kind: hxlife.KindText, text: text, doc: d}
}

// CreateFragment creates an empty fragment.
func (d *Document) CreateFragment() *Node {
	return &Node{kind: hxlife.KindFragment, doc: d}
}

// Element is a convenience constructor for building trees in code:
//
//	doc.Element("ul", nil,
//	    doc.Element("li", map[string]string{"id": "a"}),
//	)
//
// Attributes are set in sorted name order.
func (d *Document) Element(tag string, attrs map[string]string, children ...*Node) *Node {
	el := d.CreateElement(tag)
	for _, name := range sortedKeys(attrs) {
		el.attrs = append(el.attrs, hxlife.Attr{Name: name, Value: attrs[name]})
	}
	for _, c := range children {
		el.AppendChild(c)
	}
	return el
}

func (d *Document) mutations() uint64 {
	if d == nil {
		return 0
	}
	return d.version
}
