package hxlife

import (
	"fmt"
	"strings"
	"sync"
)

// DefinitionRegistry is the default Registry. It keeps definitions in
// registration order.
type DefinitionRegistry struct {
	mu   sync.RWMutex
	defs []*Definition
	byID map[string]*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *DefinitionRegistry {
	return &DefinitionRegistry{
		byID: make(map[string]*Definition),
	}
}

// Add registers definitions.
// Panics if a definition has no ID, an unknown binding type, or an ID that
// is already registered.
func (reg *DefinitionRegistry) Add(defs ...*Definition) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, def := range defs {
		reg.register(def)
	}
}

func (reg *DefinitionRegistry) register(def *Definition) {
	if def == nil || def.ID == "" {
		panic("hxlife: definition must have an ID")
	}
	switch def.Bind {
	case BindElement, BindAttribute, BindClass:
	default:
		panic(fmt.Sprintf("hxlife: %v %d for %q", ErrUnknownBinding, def.Bind, def.ID))
	}
	if _, exists := reg.byID[def.ID]; exists {
		panic(fmt.Sprintf("hxlife: duplicate definition %q", def.ID))
	}
	reg.byID[def.ID] = def
	reg.defs = append(reg.defs, def)
}

// Get returns the definition registered under id.
func (reg *DefinitionRegistry) Get(id string) (*Definition, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	def, ok := reg.byID[id]
	return def, ok
}

// Len returns the number of registered definitions.
func (reg *DefinitionRegistry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.defs)
}

// ForElement returns the definitions bound to el in registration order.
func (reg *DefinitionRegistry) ForElement(el Element) []*Definition {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	var matched []*Definition
	for _, def := range reg.defs {
		if bindsTo(def, el) {
			matched = append(matched, def)
		}
	}
	return matched
}

// IsNative reports whether the definition registered under id is natively
// managed. Unknown IDs are not native.
func (reg *DefinitionRegistry) IsNative(id string) bool {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	def, ok := reg.byID[id]
	return ok && def.Native
}

func bindsTo(def *Definition, el Element) bool {
	switch def.Bind {
	case BindElement:
		if strings.EqualFold(el.TagName(), def.ID) {
			return true
		}
		is, ok := el.Attribute("is")
		return ok && strings.EqualFold(is, def.ID)
	case BindAttribute:
		return el.HasAttribute(def.ID)
	case BindClass:
		class, _ := el.Attribute("class")
		for _, c := range strings.Fields(class) {
			if c == def.ID {
				return true
			}
		}
	}
	return false
}
