package skin

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/sanitize"
	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"
)

// Input is everything an HTML builder reads.
type Input struct {
	Settings project.Settings
	Messages []project.Message
	Clean    sanitize.Sanitizer
}

// HTMLBuilder produces the HTML fragment for one variant.
type HTMLBuilder func(in Input) (string, error)

// CSSBuilder produces the scoped stylesheet for one variant.
type CSSBuilder func(s project.Settings) (string, error)

// DefaultRule derives variant defaults from settings and the first message.
// It receives a private copy and returns the adjusted settings.
type DefaultRule func(s project.Settings, first *project.Message) project.Settings

// Renderer bundles the builders registered for a variant.
type Renderer struct {
	Variant     project.Variant
	Description string
	HTML        HTMLBuilder
	CSS         CSSBuilder
	Defaults    DefaultRule
}

// Registry maps variants to their renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[project.Variant]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[project.Variant]Renderer)}
}

// Register adds a renderer. Duplicate variants and missing builders are rejected.
func (r *Registry) Register(rd Renderer) error {
	name := string(rd.Variant)
	if !rd.Variant.Valid() {
		return apperrors.NewVariantError(name, fmt.Errorf("unsupported variant"))
	}
	if rd.HTML == nil || rd.CSS == nil {
		return apperrors.NewVariantError(name, fmt.Errorf("renderer requires both HTML and CSS builders"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[rd.Variant]; exists {
		return apperrors.NewVariantError(name, fmt.Errorf("renderer already registered"))
	}

	r.renderers[rd.Variant] = rd
	return nil
}

// Lookup returns the renderer for v.
func (r *Registry) Lookup(v project.Variant) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rd, ok := r.renderers[v]
	if !ok {
		return Renderer{}, apperrors.NewVariantError(string(v), fmt.Errorf("no renderer registered"))
	}
	return rd, nil
}

// Renderers lists registered renderers in display order.
func (r *Registry) Renderers() []Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Renderer, 0, len(r.renderers))
	for _, v := range project.Variants() {
		if rd, ok := r.renderers[v]; ok {
			out = append(out, rd)
		}
	}
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the shared registry holding every built-in variant.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		reg := NewRegistry()
		for _, rd := range builtinRenderers() {
			if err := reg.Register(rd); err != nil {
				panic(err)
			}
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

func builtinRenderers() []Renderer {
	return []Renderer{
		{Variant: project.VariantIOS, Description: "iMessage-style chat bubbles", HTML: chatHTML(project.VariantIOS), CSS: iosCSS, Defaults: iosDefaults},
		{Variant: project.VariantAndroid, Description: "WhatsApp-style chat bubbles", HTML: chatHTML(project.VariantAndroid), CSS: androidCSS, Defaults: androidDefaults},
		{Variant: project.VariantNote, Description: "System alerts, documents and letters", HTML: noteHTML, CSS: noteCSS, Defaults: noteDefaults},
		{Variant: project.VariantTwitter, Description: "One tweet per message", HTML: twitterHTML, CSS: twitterCSS, Defaults: twitterDefaults},
		{Variant: project.VariantGoogle, Description: "Single search box with suggestions", HTML: googleHTML, CSS: googleCSS, Defaults: googleDefaults},
		{Variant: project.VariantInstagram, Description: "Single photo post", HTML: instagramHTML, CSS: instagramCSS, Defaults: instagramDefaults},
		{Variant: project.VariantDiscord, Description: "Channel log with role colors", HTML: discordHTML, CSS: discordCSS, Defaults: discordDefaults},
	}
}
