package hxlife

// Hooks are observability callbacks invoked after each successful
// transition. Any field may be nil.
type Hooks struct {
	OnCreated          func(el Element, def *Definition)
	OnAttached         func(el Element, def *Definition)
	OnDetached         func(el Element, def *Definition)
	OnAttributeChanged func(el Element, def *Definition, change AttributeChange)
}

// MergeHooks combines hooks so each one runs in argument order.
func MergeHooks(hooks ...Hooks) Hooks {
	var merged Hooks
	for _, h := range hooks {
		merged.OnCreated = chainPhase(merged.OnCreated, h.OnCreated)
		merged.OnAttached = chainPhase(merged.OnAttached, h.OnAttached)
		merged.OnDetached = chainPhase(merged.OnDetached, h.OnDetached)
		merged.OnAttributeChanged = chainAttribute(merged.OnAttributeChanged, h.OnAttributeChanged)
	}
	return merged
}

func chainPhase(a, b func(Element, *Definition)) func(Element, *Definition) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(el Element, def *Definition) {
		a(el, def)
		b(el, def)
	}
}

func chainAttribute(a, b func(Element, *Definition, AttributeChange)) func(Element, *Definition, AttributeChange) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(el Element, def *Definition, c AttributeChange) {
		a(el, def, c)
		b(el, def, c)
	}
}

func (h Hooks) created(el Element, def *Definition) {
	if h.OnCreated != nil {
		h.OnCreated(el, def)
	}
}

func (h Hooks) attached(el Element, def *Definition) {
	if h.OnAttached != nil {
		h.OnAttached(el, def)
	}
}

func (h Hooks) detached(el Element, def *Definition) {
	if h.OnDetached != nil {
		h.OnDetached(el, def)
	}
}

func (h Hooks) attributeChanged(el Element, def *Definition, c AttributeChange) {
	if h.OnAttributeChanged != nil {
		h.OnAttributeChanged(el, def, c)
	}
}
