package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/pthm/hxlife"
	"golang.org/x/net/html"
)

// Matcher matches elements against CSS selectors with cascadia. It
// implements hxlife.Matcher and works for detached elements.
//
// Matching runs against an x/net/html mirror of the element's tree. The
// last mirror is reused until its tree's document is mutated, so a
// delegated event walking up from its target builds it once.
type Matcher struct {
	compiled map[string]cascadia.SelectorGroup
	mirror   *mirror
}

type mirror struct {
	top     *Node
	version uint64
	index   map[*Node]*html.Node
}

// NewMatcher creates a matcher with an empty selector cache.
func NewMatcher() *Matcher {
	return &Matcher{compiled: make(map[string]cascadia.SelectorGroup)}
}

// Matches reports whether el matches selector. Invalid selectors and
// foreign elements never match.
func (m *Matcher) Matches(el hxlife.Element, selector string) bool {
	n, ok := el.(*Node)
	if !ok || n.kind != hxlife.KindElement {
		return false
	}
	sel, err := m.compile(selector)
	if err != nil {
		return false
	}

	return sel.Match(m.mirrorOf(n))
}

// mirrorOf returns the mirror of n, rebuilding the tree mirror when n's
// tree or its document changed since the last call.
func (m *Matcher) mirrorOf(n *Node) *html.Node {
	top := n
	for top.parent != nil {
		top = top.parent
	}
	version := top.doc.mutations()
	if c := m.mirror; c != nil && c.top == top && c.version == version {
		if h, ok := c.index[n]; ok {
			return h
		}
	}
	index := make(map[*Node]*html.Node)
	toHTML(top, index)
	m.mirror = &mirror{top: top, version: version, index: index}
	return index[n]
}

// Compile validates selector and caches it.
func (m *Matcher) Compile(selector string) error {
	_, err := m.compile(selector)
	return err
}

func (m *Matcher) compile(selector string) (cascadia.SelectorGroup, error) {
	if m.compiled == nil {
		m.compiled = make(map[string]cascadia.SelectorGroup)
	}
	if sel, ok := m.compiled[selector]; ok {
		return sel, nil
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	m.compiled[selector] = sel
	return sel, nil
}
