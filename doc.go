// Package hxlife adds a component lifecycle to a tree of UI elements.
//
// Elements are bound to one or more component Definitions through a
// Registry. Each definition may supply callbacks for creation, attachment,
// detachment and attribute change. The engine fires each callback exactly
// once per transition, in a deterministic order across whole subtrees.
//
// # Core Concepts
//
// A Definition describes a component:
//
//	reg := hxlife.NewRegistry()
//	reg.Add(&hxlife.Definition{
//	    ID: "x-toggle",
//	    Attributes: hxlife.AttributeMap{
//	        "open": hxlife.HandlerSet{
//	            Created: show,
//	            Removed: hide,
//	        },
//	    },
//	    Attached: startTimer,
//	    Detached: stopTimer,
//	})
//
// A Lifecycle drives definitions over a host tree. The host supplies the
// tree (Node, Element) and optional collaborators: a MutationSource for
// attribute changes, a Matcher for delegated events and a DataStore for the
// per-node lifecycle records. The lib/dom package implements all of them.
//
//	lc := hxlife.New(reg,
//	    hxlife.WithObserver(doc),
//	    hxlife.WithMatcher(dom.NewMatcher()),
//	)
//	err := lc.InitElements(doc.Body())
//
// # Lifecycle
//
// Every (element, definition) pair has a Record with three flags. Created is
// set once and never cleared. Attached and Detached toggle: an element can
// move in and out of the document any number of times, and each move fires
// exactly one callback.
//
// TriggerCreated installs everything a definition asks for, in a fixed
// order: behavior, template, resolved marker, event listeners, attribute
// observation, attribute-backed properties, attribute defaults, a replay of
// the attributes already present, and the Created callback.
//
// # Batches
//
// InitElements walks each root in document order, skipping subtrees marked
// with the ignore attribute, and runs every Created callback of the batch
// before any Attached callback. RemoveElements detaches children before
// their parents. Watch applies both to child-list mutations as they are
// delivered.
//
// # Attribute Changes
//
// Changes are classified from the old and new values (created, updated,
// removed) and dispatched to at most one handler: a catch-all AttributeFunc,
// a per-attribute AttributeFunc, or the matching field of a HandlerSet with
// Fallback as the last resort.
//
// # Errors
//
// Callbacks return errors. The first failure aborts the running batch and
// is returned as a *CallbackError. Failures outside a caller's stack
// (observed mutations, events) go to the handler set with WithErrorHandler.
package hxlife
