package dom

import (
	"strings"
	"testing"

	"github.com/pthm/hxlife"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndSerialize(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<!DOCTYPE html><html><head></head><body><x-a id="a" unresolved>hi<!-- c --><b>!</b></x-a></body></html>`))
	require.NoError(t, err)

	body := doc.Body()
	require.NotNil(t, body)
	el := body.ByID("a")
	require.NotNil(t, el)

	assert.Equal(t, hxlife.KindElement, el.Kind())
	assert.Equal(t, "x-a", el.TagName())
	assert.True(t, el.HasAttribute("unresolved"))
	assert.True(t, el.IsConnected())
	assert.Equal(t, "hi!", el.TextContent())
	assert.Equal(t, `<x-a id="a" unresolved="">hi<b>!</b></x-a>`, el.OuterHTML())
	assert.Equal(t, "html", doc.DocumentElement().TagName())
}

func TestSetInnerHTML(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("div", nil)

	require.NoError(t, el.SetInnerHTML(`<p class="x">one</p>two`))
	assert.Equal(t, `<p class="x">one</p>two`, el.InnerHTML())
	assert.Len(t, el.Children(), 2)
	for _, c := range el.Children() {
		assert.Same(t, el, c.Parent())
		assert.Same(t, doc, c.Document())
	}

	require.Error(t, doc.CreateText("t").SetInnerHTML("<p></p>"))
}

func TestParseFragment(t *testing.T) {
	doc := NewDocument()
	frag, err := doc.ParseFragment(`<li id="a"></li><li id="b"></li>`)
	require.NoError(t, err)
	assert.Equal(t, hxlife.KindFragment, frag.Kind())

	list := doc.Element("ul", nil)
	list.AppendChild(frag)
	assert.Empty(t, frag.Children())
	assert.Equal(t, `<li id="a"></li><li id="b"></li>`, list.InnerHTML())
}

func TestTreeMutations(t *testing.T) {
	doc := NewDocument()
	a := doc.Element("a", map[string]string{"id": "a"})
	b := doc.Element("b", map[string]string{"id": "b"})
	c := doc.Element("c", map[string]string{"id": "c"})
	parent := doc.Element("div", nil, a, c)
	doc.Root().AppendChild(parent)

	parent.InsertBefore(b, c)
	assert.Equal(t, "<a id=\"a\"></a><b id=\"b\"></b><c id=\"c\"></c>", parent.InnerHTML())

	other := doc.Element("section", nil)
	other.AppendChild(b)
	assert.Len(t, parent.Children(), 2)
	assert.Same(t, other, b.Parent())
	assert.False(t, b.IsConnected())

	c.Remove()
	assert.Nil(t, c.ParentNode())
	assert.False(t, c.IsConnected())
	assert.True(t, a.IsConnected())

	assert.Panics(t, func() { a.AppendChild(parent) })
	assert.True(t, parent.Contains(a))
	assert.False(t, a.Contains(parent))
}

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("div", map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, []hxlife.Attr{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}, el.Attributes())

	el.SetAttribute("a", "x")
	el.SetAttribute("c", "3")
	el.RemoveAttribute("b")
	el.RemoveAttribute("missing")
	assert.Equal(t, []hxlife.Attr{{Name: "a", Value: "x"}, {Name: "c", Value: "3"}}, el.Attributes())

	text := doc.CreateText("t")
	text.SetAttribute("a", "1")
	assert.Empty(t, text.Attributes())
}

func TestAttributeObserver(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("div", map[string]string{"a": "1"})

	var got []hxlife.MutationRecord
	obs := doc.Observe(el, hxlife.ObserveOptions{Attributes: true, AttributeOldValue: true}, func(records []hxlife.MutationRecord) {
		got = append(got, records...)
	})

	el.SetAttribute("a", "2")
	el.SetAttribute("b", "x")
	el.RemoveAttribute("a")
	assert.Empty(t, got, "records wait for Flush")
	assert.True(t, doc.Pending())

	doc.Flush()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].AttributeName)
	assert.Equal(t, "1", *got[0].OldValue)
	assert.Nil(t, got[1].OldValue)
	assert.Equal(t, "2", *got[2].OldValue)
	assert.False(t, doc.Pending())

	got = nil
	el.SetAttribute("c", "1")
	taken := obs.TakeRecords()
	assert.Len(t, taken, 1)
	doc.Flush()
	assert.Empty(t, got)
}

func TestAttributeObserverWithoutOldValue(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("div", map[string]string{"a": "1"})

	var got []hxlife.MutationRecord
	doc.Observe(el, hxlife.ObserveOptions{Attributes: true}, func(records []hxlife.MutationRecord) {
		got = append(got, records...)
	})
	el.SetAttribute("a", "2")
	doc.Flush()

	require.Len(t, got, 1)
	assert.Nil(t, got[0].OldValue)
}

func TestFlushDeliversCascades(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("div", nil)

	var names []string
	doc.Observe(el, hxlife.ObserveOptions{Attributes: true}, func(records []hxlife.MutationRecord) {
		for _, r := range records {
			names = append(names, r.AttributeName)
			if r.AttributeName == "a" {
				el.SetAttribute("b", "")
			}
		}
	})

	el.SetAttribute("a", "")
	doc.Flush()
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestChildListObserver(t *testing.T) {
	doc := NewDocument()
	watched := doc.Element("main", nil)
	outside := doc.Element("aside", nil)
	doc.Root().AppendChild(watched)
	doc.Root().AppendChild(outside)

	var got []hxlife.ChildListRecord
	doc.ObserveChildList(watched, func(records []hxlife.ChildListRecord) {
		got = append(got, records...)
	})

	child := doc.Element("p", nil)
	watched.AppendChild(child)
	outside.AppendChild(doc.Element("p", nil))
	child.Remove()
	doc.Flush()

	require.Len(t, got, 2)
	assert.Equal(t, []hxlife.Node{child}, got[0].Added)
	assert.Equal(t, hxlife.Node(watched), got[0].Target)
	assert.Equal(t, []hxlife.Node{child}, got[1].Removed)
}

func TestObserveForeignNodePanics(t *testing.T) {
	doc := NewDocument()
	other := NewDocument()
	assert.Panics(t, func() {
		doc.Observe(other.Element("div", nil), hxlife.ObserveOptions{Attributes: true}, func([]hxlife.MutationRecord) {})
	})
}

func TestDispatchPhases(t *testing.T) {
	doc := NewDocument()
	target := doc.Element("button", nil)
	parent := doc.Element("div", nil, target)
	doc.Root().AppendChild(parent)

	var order []string
	listen := func(n *Node, label string, capture bool) {
		n.AddEventListener("click", capture, func(ev hxlife.Event) {
			order = append(order, label)
			assert.Equal(t, hxlife.Node(target), ev.Target())
		})
	}
	listen(doc.Root(), "root-bubble", false)
	listen(parent, "parent-bubble", false)
	listen(target, "target", false)
	listen(parent, "parent-capture", true)
	listen(doc.Root(), "root-capture", true)

	target.Dispatch(NewEvent("click"))
	assert.Equal(t, []string{"root-capture", "parent-capture", "target", "parent-bubble", "root-bubble"}, order)
}

func TestDispatchNonBubbling(t *testing.T) {
	doc := NewDocument()
	target := doc.Element("input", nil)
	parent := doc.Element("form", nil, target)

	var order []string
	parent.AddEventListener("focus", false, func(hxlife.Event) { order = append(order, "bubble") })
	parent.AddEventListener("focus", true, func(hxlife.Event) { order = append(order, "capture") })

	ev := NewEvent("focus")
	assert.False(t, ev.Bubbles())
	target.Dispatch(ev)
	assert.Equal(t, []string{"capture"}, order)
}

func TestStopPropagation(t *testing.T) {
	doc := NewDocument()
	target := doc.Element("button", nil)
	parent := doc.Element("div", nil, target)

	reached := false
	parent.AddEventListener("click", false, func(hxlife.Event) { reached = true })
	target.AddEventListener("click", false, func(ev hxlife.Event) {
		ev.(*Event).StopPropagation()
	})

	target.Dispatch(NewEvent("click"))
	assert.False(t, reached)
}

func TestMatcher(t *testing.T) {
	doc := NewDocument()
	btn := doc.Element("button", map[string]string{"class": "primary big"})
	form := doc.Element("form", map[string]string{"id": "f"}, btn)

	m := NewMatcher()
	assert.True(t, m.Matches(btn, "button"))
	assert.True(t, m.Matches(btn, ".primary"))
	assert.True(t, m.Matches(btn, "#f > button.big"))
	assert.True(t, m.Matches(btn, "a, button"))
	assert.False(t, m.Matches(btn, "form button.small"))
	assert.False(t, m.Matches(form, "button"))
	assert.False(t, m.Matches(btn, "[[invalid"))
	assert.False(t, m.Matches(doc.CreateText("t"), "button"))

	require.NoError(t, m.Compile("div > p"))
	require.Error(t, m.Compile("[[invalid"))

	var zero Matcher
	assert.True(t, zero.Matches(btn, "button"))
}

func TestMatcherReusesMirrorUntilMutation(t *testing.T) {
	doc := NewDocument()
	icon := doc.Element("i", nil)
	btn := doc.Element("button", map[string]string{"class": "add"}, icon)
	doc.Root().AppendChild(doc.Element("div", nil, btn))

	m := NewMatcher()
	assert.False(t, m.Matches(icon, ".add"))
	first := m.mirror
	require.NotNil(t, first)

	assert.True(t, m.Matches(btn, ".add"))
	assert.True(t, m.Matches(btn, "div > button"))
	assert.Same(t, first, m.mirror, "walking up one tree should reuse the mirror")

	btn.SetAttribute("class", "remove")
	assert.False(t, m.Matches(btn, ".add"))
	assert.NotSame(t, first, m.mirror)

	detached := doc.Element("button", map[string]string{"class": "add"})
	assert.True(t, m.Matches(detached, "button.add"))
	assert.Same(t, detached, m.mirror.top)
}

func TestDispatchCarriesDetail(t *testing.T) {
	doc := NewDocument()
	target := doc.Element("button", nil)
	parent := doc.Element("div", nil, target)

	var got any
	parent.AddEventListener("step", false, func(ev hxlife.Event) {
		got = ev.(*Event).Detail
	})

	ev := NewEvent("step")
	ev.Detail = 5
	target.Dispatch(ev)
	assert.Equal(t, 5, got)
}
