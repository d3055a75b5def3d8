// Package snapshot captures the lifecycle state of an element tree and
// encodes it with msgpack.
package snapshot

import (
	"errors"
	"fmt"
	"io"

	"github.com/pthm/hxlife"
	"github.com/vmihailenco/msgpack/v5"
)

// Version is the snapshot format version written by Encode.
const Version = 1

// Sentinel errors for snapshot decoding.
var (
	ErrInvalidFormat      = errors.New("snapshot: invalid format")
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
)

// Component is the lifecycle state of one definition on an element.
type Component struct {
	ID            string `msgpack:"id" yaml:"id"`
	hxlife.Record `yaml:",inline"`
}

// Tree is the captured state of an element and its element descendants.
type Tree struct {
	Tag        string        `msgpack:"tag" yaml:"tag"`
	Attributes []hxlife.Attr `msgpack:"attrs,omitempty" yaml:"attributes,omitempty"`
	Ignored    bool          `msgpack:"ignored,omitempty" yaml:"ignored,omitempty"`
	Components []Component   `msgpack:"components,omitempty" yaml:"components,omitempty"`
	Children   []*Tree       `msgpack:"children,omitempty" yaml:"children,omitempty"`
}

type envelope struct {
	Version int   `msgpack:"v"`
	Root    *Tree `msgpack:"root"`
}

// Take captures root. Components are listed in registry order; a definition
// bound to an element that was never triggered appears with all flags false.
// Reading state does not create lifecycle records.
func Take(root hxlife.Element, store hxlife.DataStore, reg hxlife.Registry) *Tree {
	data := store.Data(root)
	t := &Tree{
		Tag:        root.TagName(),
		Attributes: root.Attributes(),
		Ignored:    data.Ignored,
	}
	for _, def := range reg.ForElement(root) {
		rec, _ := data.LookupRecord(def.ID)
		t.Components = append(t.Components, Component{ID: def.ID, Record: rec})
	}
	for _, child := range root.ChildNodes() {
		if child.Kind() != hxlife.KindElement {
			continue
		}
		t.Children = append(t.Children, Take(child.(hxlife.Element), store, reg))
	}
	return t
}

// Walk calls fn for t and every descendant in document order.
func (t *Tree) Walk(fn func(*Tree)) {
	fn(t)
	for _, c := range t.Children {
		c.Walk(fn)
	}
}

// Find returns the first tree, in document order, whose id attribute is id.
func (t *Tree) Find(id string) *Tree {
	var found *Tree
	t.Walk(func(n *Tree) {
		if found != nil {
			return
		}
		for _, a := range n.Attributes {
			if a.Name == "id" && a.Value == id {
				found = n
				return
			}
		}
	})
	return found
}

// Component returns the state recorded for definition id.
func (t *Tree) Component(id string) (Component, bool) {
	for _, c := range t.Components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// Encode writes t to w.
func Encode(w io.Writer, t *Tree) error {
	return msgpack.NewEncoder(w).Encode(envelope{Version: Version, Root: t})
}

// Decode reads a tree written by Encode.
func Decode(r io.Reader) (*Tree, error) {
	var env envelope
	if err := msgpack.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return env.root()
}

// Marshal encodes t to bytes.
func Marshal(t *Tree) ([]byte, error) {
	return msgpack.Marshal(envelope{Version: Version, Root: t})
}

// Unmarshal decodes bytes produced by Marshal.
func Unmarshal(data []byte) (*Tree, error) {
	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return env.root()
}

func (env envelope) root() (*Tree, error) {
	if env.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	if env.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidFormat)
	}
	return env.Root, nil
}
