// Package project models the authoring state rendered by the skin engine.
//
// A Project is a value: every edit returns a new Project and leaves the
// receiver untouched.
package project

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Project is the full authoring state.
type Project struct {
	ID       string
	Variant  Variant
	Settings Settings
	Messages []Message
}

// FirstMessage returns the first message, or nil when there is none.
func (p Project) FirstMessage() *Message {
	if len(p.Messages) == 0 {
		return nil
	}
	first := p.Messages[0].Clone()
	return &first
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Settings = p.Settings.Clone()
	out.Messages = lo.Map(p.Messages, func(m Message, _ int) Message { return m.Clone() })
	return out
}

// WithVariant returns a copy with the variant tag replaced. Callers that want
// variant defaults applied go through the engine's ApplyVariant.
func (p Project) WithVariant(v Variant) Project {
	out := p.Clone()
	out.Variant = v
	return out
}

// WithSettings returns a copy carrying the given settings.
func (p Project) WithSettings(s Settings) Project {
	out := p.Clone()
	out.Settings = s.Clone()
	return out
}

// AddMessage appends a message, assigning an ID when it has none.
func (p Project) AddMessage(m Message) Project {
	out := p.Clone()
	msg := m.Clone()
	if msg.ID == "" {
		msg.ID = NewID()
	}
	out.Messages = append(out.Messages, msg)
	return out
}

// UpdateMessage replaces the message with the given ID using fn.
func (p Project) UpdateMessage(id string, fn func(Message) Message) (Project, error) {
	idx := p.indexOf(id)
	if idx < 0 {
		return p, fmt.Errorf("message %q not found", id)
	}
	out := p.Clone()
	updated := fn(out.Messages[idx].Clone())
	updated.ID = id
	out.Messages[idx] = updated
	return out, nil
}

// DeleteMessage removes the message with the given ID.
func (p Project) DeleteMessage(id string) (Project, error) {
	idx := p.indexOf(id)
	if idx < 0 {
		return p, fmt.Errorf("message %q not found", id)
	}
	out := p.Clone()
	out.Messages = append(out.Messages[:idx], out.Messages[idx+1:]...)
	return out, nil
}

// MoveMessage moves the message with the given ID to position to (clamped).
func (p Project) MoveMessage(id string, to int) (Project, error) {
	idx := p.indexOf(id)
	if idx < 0 {
		return p, fmt.Errorf("message %q not found", id)
	}
	out := p.Clone()
	msg := out.Messages[idx]
	rest := append(out.Messages[:idx:idx], out.Messages[idx+1:]...)
	to = lo.Clamp(to, 0, len(rest))
	out.Messages = append(rest[:to:to], append([]Message{msg}, rest[to:]...)...)
	return out, nil
}

// ApplyRolePreset colors a message with the named discord role preset.
func (p Project) ApplyRolePreset(id, preset string) (Project, error) {
	role, ok := lo.Find(p.Settings.Discord.RolePresets, func(r RolePreset) bool { return r.Name == preset })
	if !ok {
		return p, fmt.Errorf("role preset %q not found", preset)
	}
	return p.UpdateMessage(id, func(m Message) Message {
		m.RoleColor = role.Color
		return m
	})
}

// Message returns the message with the given ID.
func (p Project) Message(id string) (Message, bool) {
	idx := p.indexOf(id)
	if idx < 0 {
		return Message{}, false
	}
	return p.Messages[idx].Clone(), true
}

func (p Project) indexOf(id string) int {
	_, idx, ok := lo.FindIndexOf(p.Messages, func(m Message) bool { return m.ID == id })
	if !ok {
		return -1
	}
	return idx
}

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}
