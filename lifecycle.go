package hxlife

import (
	"log/slog"

	"github.com/pthm/hxlife/internal/logging"
)

// Lifecycle drives the component lifecycle of a host tree.
//
// A Lifecycle is not safe for concurrent use. All triggers run to completion
// on the caller's goroutine, and a trigger must not call itself for the same
// element and definition.
type Lifecycle struct {
	registry        Registry
	store           DataStore
	observer        MutationSource
	matcher         Matcher
	logger          *slog.Logger
	hooks           Hooks
	ignoreAttribute string
	onError         func(error)
}

// New creates a Lifecycle that resolves definitions through reg.
func New(reg Registry, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		registry:        reg,
		store:           NewNodeStore(),
		logger:          logging.NewNop(),
		ignoreAttribute: DefaultIgnoreAttribute,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.onError == nil {
		l.onError = func(err error) {
			l.logger.Error("lifecycle callback failed", "err", err)
		}
	}
	return l
}

// Registry returns the registry definitions are resolved from.
func (l *Lifecycle) Registry() Registry {
	return l.registry
}

// Store returns the store holding lifecycle records.
func (l *Lifecycle) Store() DataStore {
	return l.store
}

// Record returns a copy of the lifecycle record of el for definition id.
func (l *Lifecycle) Record(el Element, id string) Record {
	rec, _ := l.store.Data(el).LookupRecord(id)
	return rec
}

// TriggerCreated binds def to el. It runs at most once per pair; later calls
// are no-ops even if the first one failed.
//
// The steps run in this order: capability install, template, marker flip,
// event listeners, attribute observation, property links, attribute
// defaults, attribute replay and finally the Created callback.
func (l *Lifecycle) TriggerCreated(el Element, def *Definition) error {
	rec := l.record(el, def)
	if rec.Created {
		return nil
	}
	rec.Created = true
	l.logger.Debug("created", "component", def.ID, "tag", el.TagName())

	l.installBehavior(el, def)

	if def.Template != nil && !el.HasAttribute(def.resolvedAttribute()) {
		if err := def.Template(el); err != nil {
			return newCallbackError(PhaseTemplate, def, el, err)
		}
	}

	el.RemoveAttribute(def.unresolvedAttribute())
	el.SetAttribute(def.resolvedAttribute(), "")

	if err := l.addEventListeners(el, def); err != nil {
		return err
	}

	obs := l.observeAttributes(el, def)
	l.linkProperties(el, def)
	l.applyDefaults(el, def)

	// Replay reports the defaults as created, so the observer must not
	// report them a second time.
	if obs != nil {
		obs.TakeRecords()
	}
	if err := l.replayAttributes(el, def); err != nil {
		return err
	}

	if def.Created != nil {
		if err := def.Created(el); err != nil {
			return newCallbackError(PhaseCreated, def, el, err)
		}
	}
	l.hooks.created(el, def)
	return nil
}

// TriggerAttached marks el attached for def and runs its Attached callback,
// unless it is already attached.
func (l *Lifecycle) TriggerAttached(el Element, def *Definition) error {
	rec := l.record(el, def)
	if rec.Attached {
		return nil
	}
	rec.Attached = true
	rec.Detached = false
	l.logger.Debug("attached", "component", def.ID, "tag", el.TagName())

	if def.Attached != nil {
		if err := def.Attached(el); err != nil {
			return newCallbackError(PhaseAttached, def, el, err)
		}
	}
	l.hooks.attached(el, def)
	return nil
}

// TriggerDetached marks el detached for def and runs its Detached callback,
// unless it is already detached.
func (l *Lifecycle) TriggerDetached(el Element, def *Definition) error {
	rec := l.record(el, def)
	if rec.Detached {
		return nil
	}
	rec.Detached = true
	rec.Attached = false
	l.logger.Debug("detached", "component", def.ID, "tag", el.TagName())

	if def.Detached != nil {
		if err := def.Detached(el); err != nil {
			return newCallbackError(PhaseDetached, def, el, err)
		}
	}
	l.hooks.detached(el, def)
	return nil
}

// TriggerAttributeChanged runs the attribute handler of def for one change.
// Hosts that manage a definition natively call this from their own change
// notifications.
func (l *Lifecycle) TriggerAttributeChanged(el Element, def *Definition, name string, oldValue, newValue *string) error {
	return l.triggerAttributeChanged(el, def, name, oldValue, newValue)
}

func (l *Lifecycle) handleError(err error) {
	if err != nil {
		l.onError(err)
	}
}
