package dom

import (
	"bytes"
	"context"
	"errors"

	"github.com/a-h/templ"
	"github.com/pthm/hxlife"
)

// ErrForeignNode is returned when a dom helper receives an element from
// another host.
var ErrForeignNode = errors.New("dom: element is not a *dom.Node")

// Render renders a templ component and makes the output n's content.
func (n *Node) Render(ctx context.Context, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return err
	}
	return n.SetInnerHTML(buf.String())
}

// Template adapts a templ component constructor to a definition template:
//
//	def := &hxlife.Definition{
//	    ID:       "x-card",
//	    Template: dom.Template(func(n *dom.Node) templ.Component { return card(n) }),
//	}
func Template(fn func(n *Node) templ.Component) hxlife.Callback {
	return func(el hxlife.Element) error {
		n, ok := el.(*Node)
		if !ok {
			return ErrForeignNode
		}
		return n.Render(context.Background(), fn(n))
	}
}

// RawTemplate returns a definition template that sets fixed markup.
func RawTemplate(markup string) hxlife.Callback {
	return Template(func(*Node) templ.Component {
		return templ.Raw(markup)
	})
}
