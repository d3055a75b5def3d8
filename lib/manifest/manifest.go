// Package manifest loads declarative component definitions from YAML.
//
//	components:
//	  - name: x-counter
//	    template: '<button>+</button><output></output>'
//	    attributes:
//	      count: {default: "0"}
//	    events: ["click button"]
//	  - name: tooltip
//	    bind: attribute
//
// Declarative definitions have no behavior of their own: their callbacks
// log every transition, attribute change and event through slog.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pthm/hxlife"
	"github.com/pthm/hxlife/lib/dom"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is returned for manifests that fail validation.
var ErrInvalidManifest = errors.New("manifest: invalid component manifest")

// Manifest is the root of a manifest file.
type Manifest struct {
	Components []Component `yaml:"components"`
}

// Component declares one definition.
type Component struct {
	Name       string               `yaml:"name"`
	Bind       string               `yaml:"bind,omitempty"`
	Native     bool                 `yaml:"native,omitempty"`
	Template   string               `yaml:"template,omitempty"`
	Attributes map[string]Attribute `yaml:"attributes,omitempty"`
	Events     []string             `yaml:"events,omitempty"`
}

// Attribute declares an attribute. Default is applied when the attribute
// is missing at creation.
type Attribute struct {
	Default *string `yaml:"default,omitempty"`
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data))
}

// Validate checks names, bindings and duplicates.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool)
	for i, c := range m.Components {
		if c.Name == "" {
			return fmt.Errorf("%w: component %d has no name", ErrInvalidManifest, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate component %q", ErrInvalidManifest, c.Name)
		}
		seen[c.Name] = true
		if _, err := parseBind(c.Bind); err != nil {
			return fmt.Errorf("%w: component %q: %w", ErrInvalidManifest, c.Name, err)
		}
	}
	return nil
}

func parseBind(s string) (hxlife.BindingType, error) {
	switch s {
	case "", "element":
		return hxlife.BindElement, nil
	case "attribute":
		return hxlife.BindAttribute, nil
	case "class":
		return hxlife.BindClass, nil
	}
	return 0, fmt.Errorf("%w %q", hxlife.ErrUnknownBinding, s)
}

// Definitions builds a definition per component. Callbacks log to logger.
func (m *Manifest) Definitions(logger *slog.Logger) ([]*hxlife.Definition, error) {
	defs := make([]*hxlife.Definition, 0, len(m.Components))
	for _, c := range m.Components {
		def, err := c.definition(logger)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (c Component) definition(logger *slog.Logger) (*hxlife.Definition, error) {
	bind, err := parseBind(c.Bind)
	if err != nil {
		return nil, fmt.Errorf("%w: component %q: %w", ErrInvalidManifest, c.Name, err)
	}
	log := logger.With("component", c.Name)

	def := &hxlife.Definition{
		ID:     c.Name,
		Bind:   bind,
		Native: c.Native,
		Created: func(el hxlife.Element) error {
			log.Info("created", "element", hxlife.Label(el))
			return nil
		},
		Attached: func(el hxlife.Element) error {
			log.Info("attached", "element", hxlife.Label(el))
			return nil
		},
		Detached: func(el hxlife.Element) error {
			log.Info("detached", "element", hxlife.Label(el))
			return nil
		},
	}
	if c.Template != "" {
		def.Template = dom.RawTemplate(c.Template)
	}

	if len(c.Attributes) > 0 {
		onChange := func(el hxlife.Element, change hxlife.AttributeChange) error {
			log.Info("attribute",
				"element", hxlife.Label(el),
				"name", change.Name,
				"type", change.Type,
				"old", deref(change.OldValue),
				"new", deref(change.NewValue),
			)
			return nil
		}
		attrs := make(hxlife.AttributeMap, len(c.Attributes))
		for name, a := range c.Attributes {
			set := hxlife.HandlerSet{Fallback: onChange}
			if a.Default != nil {
				set.Default = hxlife.Static(*a.Default)
			}
			attrs[name] = set
		}
		def.Attributes = attrs
	}

	if len(c.Events) > 0 {
		def.Events = make(map[string]hxlife.EventHandler, len(c.Events))
		for _, key := range c.Events {
			def.Events[key] = func(el hxlife.Element, ev hxlife.Event, current hxlife.Element) error {
				log.Info("event", "element", hxlife.Label(el), "type", ev.Type(), "current", hxlife.Label(current))
				return nil
			}
		}
	}
	return def, nil
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
