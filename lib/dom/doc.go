// Package dom is an in-memory document for hxlife.
//
// It provides every collaborator the lifecycle engine needs: nodes that
// implement hxlife.Element and carry their own lifecycle data, attribute and
// child-list observers delivered in batches by Document.Flush, event
// dispatch with capture and bubble phases, CSS selector matching through
// cascadia, HTML parsing and serialization through golang.org/x/net/html,
// and templ rendering into elements.
//
//	doc, err := dom.Parse(strings.NewReader(page))
//	lc := hxlife.New(reg,
//	    hxlife.WithObserver(doc),
//	    hxlife.WithMatcher(dom.NewMatcher()),
//	)
//	lc.Watch(doc.Root(), doc)
//	err = lc.InitElements(doc.Root().ChildNodes()...)
//	doc.Flush()
package dom
