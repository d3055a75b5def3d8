package hxlife

// observeAttributes subscribes to attribute mutations of el on behalf of
// def. Definitions without attribute handlers and natively managed ones are
// not observed.
func (l *Lifecycle) observeAttributes(el Element, def *Definition) Observation {
	if def.Attributes == nil || l.observer == nil || l.registry.IsNative(def.ID) {
		return nil
	}

	opts := ObserveOptions{Attributes: true, AttributeOldValue: true}
	return l.observer.Observe(el, opts, func(records []MutationRecord) {
		for _, r := range records {
			// Read the live value: several mutations of one attribute may
			// arrive in the same batch.
			var current *string
			if v, ok := el.Attribute(r.AttributeName); ok {
				current = &v
			}
			l.handleError(l.triggerAttributeChanged(el, def, r.AttributeName, r.OldValue, current))
		}
	})
}
