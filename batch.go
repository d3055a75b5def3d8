package hxlife

// InitElements creates and attaches every component in the subtrees of
// nodes.
//
// Roots that are not elements or carry the ignore attribute are skipped.
// Every Created callback of the whole batch runs before the first Attached
// callback, and Attached only runs for elements connected to the document
// when their turn comes. The first callback error aborts the batch.
func (l *Lifecycle) InitElements(nodes ...Node) error {
	var (
		elements    []Element
		definitions [][]*Definition
	)

	for _, n := range nodes {
		if n == nil || n.Kind() != KindElement {
			continue
		}
		root := n.(Element)
		ignored := root.HasAttribute(l.ignoreAttribute)
		l.store.Data(root).Ignored = ignored
		if ignored {
			continue
		}
		for el := range l.Walk(root) {
			elements = append(elements, el)
			definitions = append(definitions, l.registry.ForElement(el))
		}
	}

	for i, el := range elements {
		for _, def := range definitions[i] {
			if err := l.TriggerCreated(el, def); err != nil {
				return err
			}
		}
	}

	for i, el := range elements {
		for _, def := range definitions[i] {
			if !el.IsConnected() {
				continue
			}
			if err := l.TriggerAttached(el, def); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveElements detaches every component in the subtrees of nodes,
// children before their parent.
//
// Non-element nodes run no callbacks of their own but their children are
// still visited, so elements inside fragments and documents are detached too.
func (l *Lifecycle) RemoveElements(nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := l.RemoveElements(n.ChildNodes()...); err != nil {
			return err
		}
		if n.Kind() != KindElement {
			continue
		}

		el := n.(Element)
		for _, def := range l.registry.ForElement(el) {
			if err := l.TriggerDetached(el, def); err != nil {
				return err
			}
		}
	}
	return nil
}
