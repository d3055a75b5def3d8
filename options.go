package hxlife

import "log/slog"

// DefaultIgnoreAttribute excludes an element and its subtree from the
// lifecycle.
const DefaultIgnoreAttribute = "data-hxlife-ignore"

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithStore replaces the default NodeStore.
func WithStore(store DataStore) Option {
	return func(l *Lifecycle) {
		l.store = store
	}
}

// WithObserver sets the source of attribute mutations. Without one, only
// attributes present at creation are reported.
func WithObserver(src MutationSource) Option {
	return func(l *Lifecycle) {
		l.observer = src
	}
}

// WithMatcher sets the selector matcher used by delegated events.
func WithMatcher(m Matcher) Option {
	return func(l *Lifecycle) {
		l.matcher = m
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lifecycle) {
		l.logger = logger
	}
}

// WithHooks installs observability hooks.
func WithHooks(h Hooks) Option {
	return func(l *Lifecycle) {
		l.hooks = h
	}
}

// WithIgnoreAttribute changes the attribute that marks ignored subtrees.
func WithIgnoreAttribute(name string) Option {
	return func(l *Lifecycle) {
		l.ignoreAttribute = name
	}
}

// WithErrorHandler sets the handler for errors raised outside a caller's
// stack: attribute mutations delivered by the observer, events and watched
// child-list batches. The default logs them.
func WithErrorHandler(fn func(error)) Option {
	return func(l *Lifecycle) {
		l.onError = fn
	}
}
