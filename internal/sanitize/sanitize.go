// Package sanitize neutralizes author text before it is embedded in markup.
//
// Only text content is covered. Attribute-context values such as URLs and
// color strings pass through untouched and must be validated upstream.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const lineBreak = "<br/>"

var newlines = strings.NewReplacer("\r\n", "\n")

// Sanitizer turns raw text into a markup fragment whose only element is a line break.
type Sanitizer interface {
	Sanitize(raw string) string
}

// Mode names a sanitizer implementation.
type Mode string

const (
	// ModePolicy uses the allow-list cleaner.
	ModePolicy Mode = "policy"
	// ModeEscape escapes HTML metacharacters only.
	ModeEscape Mode = "escape"
)

// New returns the sanitizer for the given mode, defaulting to the policy cleaner.
func New(mode Mode) Sanitizer {
	if mode == ModeEscape {
		return NewEscape()
	}
	return NewPolicy()
}

// Default returns the policy sanitizer.
func Default() Sanitizer {
	return NewPolicy()
}

// PolicySanitizer restricts output to <br/> using a bluemonday allow-list.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// NewPolicy builds the allow-list cleaner. The policy is safe for concurrent use.
func NewPolicy() *PolicySanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements("br")
	return &PolicySanitizer{policy: p}
}

// Sanitize converts line breaks into <br/> and strips every other element.
// Script and style bodies are dropped together with their tags.
func (s *PolicySanitizer) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	withBreaks := strings.ReplaceAll(newlines.Replace(raw), "\n", lineBreak)
	return s.policy.Sanitize(withBreaks)
}

// EscapeSanitizer is the coarse fallback: literal angle brackets stay visible as text.
type EscapeSanitizer struct{}

// NewEscape returns the escaping fallback.
func NewEscape() EscapeSanitizer {
	return EscapeSanitizer{}
}

var metachars = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Sanitize escapes &, < and > before inserting line breaks so the breaks survive.
func (EscapeSanitizer) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	escaped := metachars.Replace(newlines.Replace(raw))
	return strings.ReplaceAll(escaped, "\n", lineBreak)
}
