package dom

import (
	"maps"
	"slices"

	"github.com/pthm/hxlife"
)

type observer interface {
	// deliver hands queued records to the callback and reports whether
	// there were any.
	deliver() bool
}

// attributeObserver watches the attributes of one element.
type attributeObserver struct {
	target   *Node
	oldValue bool
	fn       func([]hxlife.MutationRecord)
	pending  []hxlife.MutationRecord
}

func (o *attributeObserver) deliver() bool {
	records := o.TakeRecords()
	if len(records) == 0 {
		return false
	}
	o.fn(records)
	return true
}

// TakeRecords removes and returns the queued records.
func (o *attributeObserver) TakeRecords() []hxlife.MutationRecord {
	records := o.pending
	o.pending = nil
	return records
}

// childListObserver watches child-list changes in a subtree.
type childListObserver struct {
	root    *Node
	fn      func([]hxlife.ChildListRecord)
	pending []hxlife.ChildListRecord
}

func (o *childListObserver) deliver() bool {
	if len(o.pending) == 0 {
		return false
	}
	records := o.pending
	o.pending = nil
	o.fn(records)
	return true
}

// Observe subscribes fn to attribute mutations of el. It implements
// hxlife.MutationSource. The subscription lives as long as the document.
func (d *Document) Observe(el hxlife.Element, opts hxlife.ObserveOptions, fn func([]hxlife.MutationRecord)) hxlife.Observation {
	n := d.own(el)
	o := &attributeObserver{target: n, oldValue: opts.AttributeOldValue, fn: fn}
	if opts.Attributes {
		d.observers = append(d.observers, o)
	}
	return o
}

// ObserveChildList subscribes fn to nodes added or removed anywhere under
// root. It implements hxlife.TreeObserver.
func (d *Document) ObserveChildList(root hxlife.Node, fn func([]hxlife.ChildListRecord)) {
	d.observers = append(d.observers, &childListObserver{root: d.own(root), fn: fn})
}

// Flush delivers queued records until no observer has any left. Callbacks
// that mutate the tree queue new records, which are delivered in the same
// call.
func (d *Document) Flush() {
	for {
		delivered := false
		for _, o := range slices.Clone(d.observers) {
			if o.deliver() {
				delivered = true
			}
		}
		if !delivered {
			return
		}
	}
}

// Pending reports whether any observer has undelivered records.
func (d *Document) Pending() bool {
	for _, o := range d.observers {
		switch o := o.(type) {
		case *attributeObserver:
			if len(o.pending) > 0 {
				return true
			}
		case *childListObserver:
			if len(o.pending) > 0 {
				return true
			}
		}
	}
	return false
}

func (d *Document) queueAttribute(n *Node, name string, old *string) {
	if d == nil {
		return
	}
	d.version++
	for _, o := range d.observers {
		ao, ok := o.(*attributeObserver)
		if !ok || ao.target != n {
			continue
		}
		rec := hxlife.MutationRecord{AttributeName: name}
		if ao.oldValue {
			rec.OldValue = old
		}
		ao.pending = append(ao.pending, rec)
	}
}

func (d *Document) queueChildList(target *Node, added, removed []hxlife.Node) {
	if d == nil {
		return
	}
	d.version++
	for _, o := range d.observers {
		co, ok := o.(*childListObserver)
		if !ok || !co.root.Contains(target) {
			continue
		}
		co.pending = append(co.pending, hxlife.ChildListRecord{
			Target:  target,
			Added:   added,
			Removed: removed,
		})
	}
}

// own returns n as a node of d, panicking for nodes from other hosts or
// documents.
func (d *Document) own(n hxlife.Node) *Node {
	node, ok := n.(*Node)
	if !ok || node.doc != d {
		panic("dom: node does not belong to this document")
	}
	return node
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
