package snapshot

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pthm/hxlife"
	"github.com/pthm/hxlife/lib/dom"
	"github.com/vmihailenco/msgpack/v5"
)

func setup(t *testing.T) (*dom.Node, *hxlife.Lifecycle) {
	t.Helper()
	doc := dom.NewDocument()
	reg := hxlife.NewRegistry()
	reg.Add(
		&hxlife.Definition{ID: "x-list"},
		&hxlife.Definition{ID: "x-item"},
		&hxlife.Definition{ID: "tooltip", Bind: hxlife.BindAttribute},
	)
	lc := hxlife.New(reg)

	root := doc.Element("x-list", map[string]string{"id": "list"},
		doc.Element("x-item", map[string]string{"id": "one", "tooltip": "first"}),
		doc.CreateText("between"),
		doc.Element("div", map[string]string{hxlife.DefaultIgnoreAttribute: ""},
			doc.Element("x-item", map[string]string{"id": "skipped"}),
		),
	)
	doc.Root().AppendChild(root)
	if err := lc.InitElements(root); err != nil {
		t.Fatalf("InitElements() error = %v", err)
	}
	return root, lc
}

func TestTake(t *testing.T) {
	root, lc := setup(t)
	tree := Take(root, lc.Store(), lc.Registry())

	if tree.Tag != "x-list" {
		t.Errorf("Tag = %q, want x-list", tree.Tag)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(tree.Children))
	}

	one := tree.Find("one")
	if one == nil {
		t.Fatal("Find(one) = nil")
	}
	for _, id := range []string{"x-item", "tooltip"} {
		c, ok := one.Component(id)
		if !ok {
			t.Fatalf("Component(%q) missing", id)
		}
		if !c.Created || !c.Attached || c.Detached {
			t.Errorf("Component(%q) = %+v, want created and attached", id, c.Record)
		}
	}

	ignored := tree.Children[1]
	if !ignored.Ignored {
		t.Error("ignored subtree should be marked")
	}
	skipped := tree.Find("skipped")
	if skipped == nil {
		t.Fatal("Find(skipped) = nil")
	}
	c, ok := skipped.Component("x-item")
	if !ok {
		t.Fatal("bound component should be listed even when never triggered")
	}
	if c.Created {
		t.Error("ignored element should not be created")
	}
	if _, ok := lc.Store().Data(root.ByID("skipped")).LookupRecord("x-item"); ok {
		t.Error("Take should not create records")
	}
}

func TestRoundTrip(t *testing.T) {
	root, lc := setup(t)
	tree := Take(root, lc.Store(), lc.Registry())

	var buf bytes.Buffer
	if err := Encode(&buf, tree); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	c, ok := decoded.Find("one").Component("tooltip")
	if !ok || !c.Attached {
		t.Errorf("decoded tooltip = %+v, %v", c, ok)
	}
	if len(decoded.Find("list").Attributes) != 2 {
		t.Errorf("decoded attributes = %v", decoded.Find("list").Attributes)
	}

	data, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	again, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if again.Find("skipped") == nil {
		t.Error("Unmarshal lost the ignored subtree")
	}
}

func TestDecodeErrors(t *testing.T) {
	wrongVersion, _ := msgpack.Marshal(envelope{Version: Version + 1, Root: &Tree{Tag: "x"}})
	noRoot, _ := msgpack.Marshal(envelope{Version: Version})

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte{0xc1}, ErrInvalidFormat},
		{"empty", nil, ErrInvalidFormat},
		{"wrong version", wrongVersion, ErrUnsupportedVersion},
		{"missing root", noRoot, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.want)
			}
			_, err = Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
