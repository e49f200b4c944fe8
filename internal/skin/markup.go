package skin

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/sanitize"
)

// Watermark is the attribution text appended when the watermark flag is set.
const Watermark = "(Created with AO3SkinGen)"

// Markup templates share partials and are parsed together, one define per
// variant. Text between tags never contains newlines: the host editor turns
// them into paragraph breaks.
var markupTemplates = template.Must(template.New("skin").Parse(
	partialsMarkup +
		chatMarkup +
		noteMarkup +
		twitterMarkup +
		googleMarkup +
		instagramMarkup +
		discordMarkup,
))

const partialsMarkup = `{{define "watermark"}}{{if .}}<div class="wm">` + Watermark + `</div>{{end}}{{end}}` +
	`{{define "row"}}` +
	`<div class="row {{if .Outgoing}}row-out{{else}}row-in{{end}}">` +
	`{{if .Avatar}}<img src="{{.Avatar}}" alt="{{.SenderAlt}} avatar" class="avatar"/>{{end}}` +
	`<dl class="msg">` +
	`<dt class="sender">{{.Sender}}</dt>` +
	`<dd class="bubble {{if .Outgoing}}out{{else}}in{{end}}">{{.Content}}` +
	`{{if .Time}}<span class="time">{{.Time}}</span>{{end}}` +
	`{{if .Status}}<span class="status status-{{.StatusClass}}">{{.Status}}</span>{{end}}` +
	`{{if .Reaction}}<span class="reaction">{{.Reaction}}</span>{{end}}` +
	`</dd>` +
	`{{range .Attachments}}<dd class="attach"><span class="visually-hidden">Image:</span><img src="{{.URL}}" alt="{{.Alt}}" class="attach-img"/></dd>{{end}}` +
	`</dl></div>` +
	`{{end}}`

// rowView is the shared message row. Text fields are sanitized markup.
type rowView struct {
	Outgoing    bool
	Avatar      string
	SenderAlt   string
	Sender      template.HTML
	Content     template.HTML
	Time        template.HTML
	Status      string
	StatusClass string
	Reaction    template.HTML
	Attachments []project.Attachment
}

func newRow(m project.Message, clean sanitize.Sanitizer, withAvatar bool) rowView {
	row := rowView{
		Outgoing:    m.Outgoing,
		SenderAlt:   m.Sender,
		Sender:      safe(clean, m.Sender),
		Content:     safe(clean, m.Content),
		Time:        safe(clean, m.Timestamp),
		Attachments: lo.Filter(m.Attachments, func(a project.Attachment, _ int) bool { return strings.TrimSpace(a.URL) != "" }),
	}
	if withAvatar {
		row.Avatar = strings.TrimSpace(m.AvatarURL)
	}
	return row
}

// safe runs author text through the sanitizer and marks the result as trusted markup.
func safe(clean sanitize.Sanitizer, raw string) template.HTML {
	if raw == "" {
		return ""
	}
	return template.HTML(clean.Sanitize(raw))
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := markupTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s markup: %w", name, err)
	}
	return buf.String(), nil
}

var (
	emphasisPattern = regexp.MustCompile(`\*([^*]+)\*`)
	// The prefix keeps entity references such as &#39; from matching.
	hashtagPattern = regexp.MustCompile(`(^|[\s>;(])#([\p{L}\p{N}_]+)`)
)

// emphasize wraps *word* in <b>. Applied to already sanitized text.
func emphasize(sanitized template.HTML) template.HTML {
	return template.HTML(emphasisPattern.ReplaceAllString(string(sanitized), "<b>$1</b>"))
}

// highlightHashtags wraps #word tokens in a styling span. Applied to already sanitized text.
func highlightHashtags(sanitized template.HTML) template.HTML {
	return template.HTML(hashtagPattern.ReplaceAllString(string(sanitized), `$1<span class="hashtag">#$2</span>`))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
