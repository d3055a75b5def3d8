package dom

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/hxlife"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("x-card", map[string]string{"title": "Hello"})

	card := func(n *Node) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			title, _ := n.Attribute("title")
			_, err := io.WriteString(w, "<h2>"+templ.EscapeString(title)+"</h2><slot></slot>")
			return err
		})
	}

	require.NoError(t, Template(card)(el))
	assert.Equal(t, `<x-card title="Hello"><h2>Hello</h2><slot></slot></x-card>`, el.OuterHTML())
}

func TestRenderError(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("div", nil, doc.CreateText("keep"))
	boom := errors.New("boom")

	err := el.Render(context.Background(), templ.ComponentFunc(func(context.Context, io.Writer) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "keep", el.InnerHTML())
}

func TestRawTemplate(t *testing.T) {
	doc := NewDocument()
	el := doc.Element("x-a", nil)

	require.NoError(t, RawTemplate(`<button>+</button>`)(el))
	assert.Equal(t, `<button>+</button>`, el.InnerHTML())
}

type foreignElement struct {
	hxlife.Element
}

func TestTemplateForeignElement(t *testing.T) {
	err := RawTemplate("<p></p>")(foreignElement{})
	require.ErrorIs(t, err, ErrForeignNode)
}
