package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pthm/hxlife"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a document from HTML markup. Comments and doctypes are
// dropped.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	d := NewDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := d.fromHTML(c); n != nil {
			d.root.children = append(d.root.children, n)
			n.parent = d.root
		}
	}
	return d, nil
}

// ParseFragment parses markup in the context of a <body> element and
// returns the nodes in a fragment.
func (d *Document) ParseFragment(markup string) (*Node, error) {
	nodes, err := d.parseIn("body", markup)
	if err != nil {
		return nil, err
	}
	frag := d.CreateFragment()
	for _, n := range nodes {
		frag.children = append(frag.children, n)
		n.parent = frag
	}
	return frag, nil
}

// SetInnerHTML replaces the children of n with the parsed markup.
func (n *Node) SetInnerHTML(markup string) error {
	if n.kind != hxlife.KindElement {
		return fmt.Errorf("dom: SetInnerHTML on non-element")
	}
	nodes, err := n.doc.parseIn(n.tag, markup)
	if err != nil {
		return err
	}
	n.ReplaceChildren(nodes...)
	return nil
}

// InnerHTML serializes the children of n.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	for _, c := range n.children {
		_ = html.Render(&buf, toHTML(c, nil))
	}
	return buf.String()
}

// OuterHTML serializes n and its descendants.
func (n *Node) OuterHTML() string {
	if n.kind == hxlife.KindDocument || n.kind == hxlife.KindFragment {
		return n.InnerHTML()
	}
	var buf bytes.Buffer
	_ = html.Render(&buf, toHTML(n, nil))
	return buf.String()
}

// String returns the markup of n.
func (n *Node) String() string {
	return n.OuterHTML()
}

func (d *Document) parseIn(tag, markup string) ([]*Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	var nodes []*Node
	for _, p := range parsed {
		if n := d.fromHTML(p); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// fromHTML converts a parsed node. It returns nil for node types the
// document does not keep.
func (d *Document) fromHTML(h *html.Node) *Node {
	var n *Node
	switch h.Type {
	case html.ElementNode:
		n = d.CreateElement(h.Data)
		for _, a := range h.Attr {
			n.attrs = append(n.attrs, hxlife.Attr{Name: a.Key, Value: a.Val})
		}
	case html.TextNode:
		return d.CreateText(h.Data)
	default:
		return nil
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if child := d.fromHTML(c); child != nil {
			n.children = append(n.children, child)
			child.parent = n
		}
	}
	return n
}

// toHTML mirrors n as an x/net/html tree. When index is not nil it records
// the mirror of every node.
func toHTML(n *Node, index map[*Node]*html.Node) *html.Node {
	h := &html.Node{}
	switch n.kind {
	case hxlife.KindDocument:
		h.Type = html.DocumentNode
	case hxlife.KindFragment:
		h.Type = html.DocumentNode
	case hxlife.KindText:
		h.Type = html.TextNode
		h.Data = n.text
	case hxlife.KindElement:
		h.Type = html.ElementNode
		h.Data = n.tag
		h.DataAtom = atom.Lookup([]byte(n.tag))
		for _, a := range n.attrs {
			h.Attr = append(h.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}
	}
	if index != nil {
		index[n] = h
	}
	for _, c := range n.children {
		h.AppendChild(toHTML(c, index))
	}
	return h
}
