package hxlife

import (
	"maps"
	"slices"

	"github.com/iancoleman/strcase"
)

// Record is the lifecycle state of one (element, definition) pair.
//
// Created never goes back to false. Attached and Detached are complements
// once either has been set: a trigger is a no-op while its flag is already
// true, so an element may attach again after detaching.
type Record struct {
	Created  bool `msgpack:"created" yaml:"created"`
	Attached bool `msgpack:"attached" yaml:"attached"`
	Detached bool `msgpack:"detached" yaml:"detached"`
}

// ElementData is the auxiliary record a DataStore keeps per node.
type ElementData struct {
	// Ignored caches whether the node is excluded from lifecycle
	// management, so descendants only check their parent.
	Ignored bool

	records   map[string]*Record
	behaviors map[string]any
	links     map[string]string
}

// Record returns the lifecycle record for a definition, creating it on
// first access.
func (d *ElementData) Record(id string) *Record {
	if d.records == nil {
		d.records = make(map[string]*Record)
	}
	rec, ok := d.records[id]
	if !ok {
		rec = &Record{}
		d.records[id] = rec
	}
	return rec
}

// LookupRecord returns the record for a definition without creating it.
func (d *ElementData) LookupRecord(id string) (Record, bool) {
	rec, ok := d.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// RecordIDs returns the definitions that have a record, sorted.
func (d *ElementData) RecordIDs() []string {
	return slices.Sorted(maps.Keys(d.records))
}

func (d *ElementData) setBehavior(id string, b any) {
	if d.behaviors == nil {
		d.behaviors = make(map[string]any)
	}
	d.behaviors[id] = b
}

func (d *ElementData) link(prop, attr string) bool {
	if d.links == nil {
		d.links = make(map[string]string)
	}
	if _, exists := d.links[prop]; exists {
		return false
	}
	d.links[prop] = attr
	return true
}

func (l *Lifecycle) record(el Element, def *Definition) *Record {
	return l.store.Data(el).Record(def.ID)
}

// BehaviorOf returns the capability set installed on el by definition id.
func (l *Lifecycle) BehaviorOf(el Element, id string) (any, bool) {
	b, ok := l.store.Data(el).behaviors[id]
	return b, ok
}

func (l *Lifecycle) installBehavior(el Element, def *Definition) {
	if def.Behavior == nil {
		return
	}
	l.store.Data(el).setBehavior(def.ID, def.Behavior)
}

// linkProperties links a property to every declared attribute. Properties
// already linked by an earlier definition are left alone.
func (l *Lifecycle) linkProperties(el Element, def *Definition) {
	attrs, ok := def.Attributes.(AttributeMap)
	if !ok {
		return
	}
	data := l.store.Data(el)
	for _, name := range attrs.names() {
		data.link(CamelCase(name), name)
	}
}

// PropertySet exposes the attribute-backed properties of an element.
type PropertySet struct {
	el    Element
	links map[string]string
}

// Properties returns the linked properties of el.
func (l *Lifecycle) Properties(el Element) PropertySet {
	return PropertySet{el: el, links: l.store.Data(el).links}
}

// Names returns the linked property names, sorted.
func (p PropertySet) Names() []string {
	return slices.Sorted(maps.Keys(p.links))
}

// Get reads the attribute behind prop. It returns false when prop is not
// linked or the attribute is absent.
func (p PropertySet) Get(prop string) (string, bool) {
	attr, ok := p.links[prop]
	if !ok {
		return "", false
	}
	return p.el.Attribute(attr)
}

// Set writes the attribute behind prop, removing it when value is nil.
// It returns false when prop is not linked.
func (p PropertySet) Set(prop string, value *string) bool {
	attr, ok := p.links[prop]
	if !ok {
		return false
	}
	if value == nil {
		p.el.RemoveAttribute(attr)
	} else {
		p.el.SetAttribute(attr, *value)
	}
	return true
}

// CamelCase converts a dashed attribute name to a property name:
// "data-item-id" becomes "dataItemId".
func CamelCase(name string) string {
	return strcase.ToLowerCamel(name)
}
