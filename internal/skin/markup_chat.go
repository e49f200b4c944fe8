package skin

import (
	"html/template"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const chatMarkup = `{{define "chat"}}` +
	`<div class="chat chat-{{.Variant}}">` +
	`{{with .Header}}<div class="chat-header">` +
	`{{if .Prefix}}<span class="chat-header-to">{{.Prefix}}</span> {{end}}` +
	`<span class="chat-header-name">{{.Name}}</span>` +
	`{{if .Status}}<span class="chat-header-status">{{.Status}}</span>{{end}}` +
	`</div>{{end}}` +
	`{{range .Rows}}{{template "row" .}}{{end}}` +
	`{{with .Typing}}<div class="row row-in typing-row"><dl class="msg">` +
	`{{if .Label}}<dt class="sender">{{.Label}}</dt>{{end}}` +
	`<dd class="bubble in typing"><span class="dot"></span><span class="dot"></span><span class="dot"></span></dd>` +
	`</dl></div>{{end}}` +
	`{{template "watermark" .Watermark}}` +
	`</div>` +
	`{{end}}`

type chatView struct {
	Variant   project.Variant
	Header    *chatHeader
	Rows      []rowView
	Typing    *typingView
	Watermark bool
}

type chatHeader struct {
	Prefix string
	Name   template.HTML
	Status template.HTML
}

type typingView struct {
	Label template.HTML
}

var iosStatusLabels = map[project.Status]string{
	project.StatusSending:   "Sending…",
	project.StatusSent:      "Sent",
	project.StatusDelivered: "Delivered",
	project.StatusRead:      "Read",
}

var androidStatusMarks = map[project.Status]string{
	project.StatusSending:   "🕓",
	project.StatusSent:      "✓",
	project.StatusDelivered: "✓✓",
	project.StatusRead:      "✓✓",
}

// chatHTML builds the default chat layout shared by ios and android.
func chatHTML(variant project.Variant) HTMLBuilder {
	return func(in Input) (string, error) {
		cs := in.Settings.Chat
		view := chatView{
			Variant:   variant,
			Header:    buildChatHeader(variant, in),
			Watermark: in.Settings.Watermark,
		}

		view.Rows = lo.Map(in.Messages, func(m project.Message, _ int) rowView {
			row := newRow(m, in.Clean, true)
			row.Status, row.StatusClass = statusMark(variant, cs, m)
			row.Reaction = safe(in.Clean, m.Reaction)
			return row
		})

		if cs.ShowTyping {
			typing := &typingView{}
			if cs.TypingName != "" {
				typing.Label = safe(in.Clean, cs.TypingName+" is typing")
			}
			view.Typing = typing
		}

		return execute("chat", view)
	}
}

func buildChatHeader(variant project.Variant, in Input) *chatHeader {
	cs := in.Settings.Chat
	switch variant {
	case project.VariantIOS:
		if !cs.IOSShowHeader || cs.ContactName == "" {
			return nil
		}
		return &chatHeader{Prefix: "To:", Name: safe(in.Clean, cs.ContactName)}
	case project.VariantAndroid:
		if cs.ContactName == "" {
			return nil
		}
		header := &chatHeader{Name: safe(in.Clean, cs.ContactName)}
		if cs.AndroidShowStatus {
			header.Status = safe(in.Clean, firstNonEmpty(cs.AndroidStatusText, "Online"))
		}
		return header
	default:
		return nil
	}
}

// statusMark returns the delivery indicator for outgoing messages.
func statusMark(variant project.Variant, cs project.ChatSettings, m project.Message) (string, string) {
	if !m.Outgoing || m.Status == project.StatusNone {
		return "", ""
	}
	switch variant {
	case project.VariantIOS:
		if cs.IOSShowDelivered {
			return iosStatusLabels[m.Status], string(m.Status)
		}
	case project.VariantAndroid:
		if cs.AndroidCheckmarks {
			return androidStatusMarks[m.Status], string(m.Status)
		}
	}
	return "", ""
}
