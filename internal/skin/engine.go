package skin

import (
	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/sanitize"
)

// Engine renders projects through a registry using one sanitizer. It holds no
// per-call state and is safe for concurrent use.
type Engine struct {
	registry *Registry
	clean    sanitize.Sanitizer
}

// Option configures an Engine.
type Option func(*Engine)

// WithSanitizer replaces the default policy sanitizer.
func WithSanitizer(s sanitize.Sanitizer) Option {
	return func(e *Engine) {
		if s != nil {
			e.clean = s
		}
	}
}

// WithRegistry replaces the built-in registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// New builds an engine over the default registry and sanitizer.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: DefaultRegistry(),
		clean:    sanitize.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine dispatches through.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// RenderMarkup returns the HTML fragment for p. An error is returned only for
// an unregistered variant or a template failure.
func (e *Engine) RenderMarkup(p project.Project) (string, error) {
	rd, err := e.registry.Lookup(p.Variant)
	if err != nil {
		return "", err
	}
	return rd.HTML(Input{
		Settings: p.Settings,
		Messages: p.Messages,
		Clean:    e.clean,
	})
}

// RenderStyle returns the stylesheet for p, scoped under RootSelector.
func (e *Engine) RenderStyle(p project.Project) (string, error) {
	rd, err := e.registry.Lookup(p.Variant)
	if err != nil {
		return "", err
	}
	return rd.CSS(p.Settings)
}

// ApplyVariant derives the defaults of v without touching s.
func (e *Engine) ApplyVariant(s project.Settings, v project.Variant, first *project.Message) project.Settings {
	return applyVariant(e.registry, s, v, first)
}

// SwitchVariant moves p to v and applies its defaults using the first message.
func (e *Engine) SwitchVariant(p project.Project, v project.Variant) (project.Project, error) {
	if _, err := e.registry.Lookup(v); err != nil {
		return p, err
	}
	settings := e.ApplyVariant(p.Settings, v, p.FirstMessage())
	return p.WithVariant(v).WithSettings(settings), nil
}

// RenderMarkup renders p with a default engine.
func RenderMarkup(p project.Project) (string, error) {
	return New().RenderMarkup(p)
}

// RenderStyle renders p's stylesheet with a default engine.
func RenderStyle(p project.Project) (string, error) {
	return New().RenderStyle(p)
}
