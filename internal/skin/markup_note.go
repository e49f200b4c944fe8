package skin

import (
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// Note rows share the chat row shape without avatars. Style presets and
// alignment are expressed in CSS only.
const noteMarkup = `{{define "note"}}` +
	`<div class="chat notes">` +
	`{{range .Rows}}{{template "row" .}}{{end}}` +
	`{{template "watermark" .Watermark}}` +
	`</div>` +
	`{{end}}`

type noteView struct {
	Rows      []rowView
	Watermark bool
}

func noteHTML(in Input) (string, error) {
	view := noteView{
		Rows: lo.Map(in.Messages, func(m project.Message, _ int) rowView {
			return newRow(m, in.Clean, false)
		}),
		Watermark: in.Settings.Watermark,
	}
	return execute("note", view)
}
