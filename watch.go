package hxlife

// Watch keeps the lifecycle in sync with child-list mutations under root.
//
// For each delivered record, added nodes are initialized and then removed
// nodes are detached. A removed node that is connected again by the time
// the batch is delivered has moved rather than left, and is not detached.
// Errors go to the error handler.
func (l *Lifecycle) Watch(root Node, src TreeObserver) {
	src.ObserveChildList(root, func(records []ChildListRecord) {
		for _, r := range records {
			if len(r.Added) > 0 {
				l.handleError(l.InitElements(r.Added...))
			}
			if len(r.Removed) > 0 {
				l.handleError(l.RemoveElements(disconnected(r.Removed)...))
			}
		}
	})
}

func disconnected(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind() == KindElement && n.(Element).IsConnected() {
			continue
		}
		out = append(out, n)
	}
	return out
}
