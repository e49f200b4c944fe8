package skin

import (
	"html/template"
	"strings"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const discordMarkup = `{{define "discord"}}` +
	`<div class="chat dc-wrap">` +
	`{{with .Header}}<div class="dc-header">` +
	`{{if .Server}}<span class="dc-server">{{.Server}}</span>{{end}}` +
	`<span class="dc-hash">#</span><span class="dc-channel">{{.Channel}}</span>` +
	`</div>{{end}}` +
	`{{range .Lines}}<div class="dc-line">` +
	`{{if .Avatar}}<img class="dc-avatar" src="{{.Avatar}}" alt="{{.NameAlt}} avatar"/>{{else}}<span class="dc-avatar placeholder"></span>{{end}}` +
	`<div class="dc-msg"><div class="dc-meta">` +
	`<span class="dc-name" style="color:{{.NameColor}}">{{.Name}}</span>` +
	`{{if .Time}}<span class="dc-time">{{.Time}}</span>{{end}}` +
	`</div><div class="dc-text">{{.Text}}</div></div>` +
	`</div>{{end}}` +
	`{{template "watermark" .Watermark}}` +
	`</div>` +
	`{{end}}`

const (
	discordNameDark  = "#F2F3F5"
	discordNameLight = "#060607"
)

type discordView struct {
	Header    *discordHeader
	Lines     []discordLine
	Watermark bool
}

type discordHeader struct {
	Server  template.HTML
	Channel template.HTML
}

type discordLine struct {
	Avatar    string
	NameAlt   string
	Name      template.HTML
	NameColor string
	Time      template.HTML
	Text      template.HTML
}

func discordHTML(in Input) (string, error) {
	ds := in.Settings.Discord
	fallbackColor := discordNameLight
	if ds.Dark() {
		fallbackColor = discordNameDark
	}

	view := discordView{Watermark: in.Settings.Watermark}
	if ds.HeaderVisible() {
		view.Header = &discordHeader{
			Server:  safe(in.Clean, ds.ServerName),
			Channel: safe(in.Clean, ds.Channel()),
		}
	}

	view.Lines = lo.Map(in.Messages, func(m project.Message, _ int) discordLine {
		return discordLine{
			Avatar:    strings.TrimSpace(m.AvatarURL),
			NameAlt:   m.Sender,
			Name:      safe(in.Clean, m.Sender),
			NameColor: firstNonEmpty(m.RoleColor, fallbackColor),
			Time:      safe(in.Clean, m.Timestamp),
			Text:      safe(in.Clean, m.Content),
		}
	})

	return execute("discord", view)
}
