package hxlife

import "iter"

// Walk yields root and its element descendants in document order.
//
// A descendant carrying the ignore attribute, or whose parent is cached as
// ignored, is marked ignored and skipped together with its subtree. The root
// itself is not screened; callers decide whether to walk it at all, and a
// walked root is cached as not ignored.
func (l *Lifecycle) Walk(root Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		l.store.Data(root).Ignored = false
		l.walk(root, yield)
	}
}

func (l *Lifecycle) walk(el Element, yield func(Element) bool) bool {
	if !yield(el) {
		return false
	}
	for _, child := range el.ChildNodes() {
		if child.Kind() != KindElement {
			continue
		}
		ce := child.(Element)
		if l.screen(ce) {
			continue
		}
		if !l.walk(ce, yield) {
			return false
		}
	}
	return true
}

// screen reports whether el is ignored and caches the answer on el. The
// cache is recomputed on every visit, so removing the ignore attribute
// releases the subtree on the next walk.
func (l *Lifecycle) screen(el Element) bool {
	ignored := el.HasAttribute(l.ignoreAttribute)
	if !ignored {
		if parent := el.ParentNode(); parent != nil {
			ignored = l.store.Data(parent).Ignored
		}
	}
	l.store.Data(el).Ignored = ignored
	return ignored
}
