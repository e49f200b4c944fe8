package skin

import (
	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const noteStyle = `{{define "note"}}{{template "frame" .}}#workskin .chat{margin:20px auto;display:flex;flex-direction:column;font-family:{{.Font}};}
#workskin .row{display:flex;justify-content:{{.Justify}};margin:12px 0;width:100%;min-width:0;}
#workskin dl.msg{margin:0;display:flex;flex-direction:column;align-items:{{.Justify}};max-width:100%;min-width:0;}
#workskin dt.sender{font-size:11px;color:rgba(255,255,255,0.5);margin:0 0 4px 0;font-weight:600;text-align:{{.TextAlign}};}
#workskin dd{margin:0;max-width:100%;}
#workskin dd.bubble{padding:10px 16px;line-height:1.4;text-align:{{.TextAlign}};max-width:100%;word-wrap:break-word;word-break:break-word;box-sizing:border-box;{{.Bubble}}}
#workskin dd.bubble .time{display:block;font-size:9px;opacity:0.6;margin-top:6px;}
#workskin dd.attach{margin-top:4px;}
#workskin img.attach-img{max-width:200px;border-radius:4px;display:block;}
#workskin .wm{margin-top:16px;font-size:10px;opacity:0.5;text-align:center;}
{{template "hidden" .}}{{end}}`

type noteStyleView struct {
	styleBase
	Justify   string
	TextAlign string
	Bubble    string
}

var noteAlignments = map[project.NoteAlignment]struct{ justify, text string }{
	project.NoteAlignCenter: {justify: "center", text: "center"},
	project.NoteAlignLeft:   {justify: "flex-start", text: "left"},
	project.NoteAlignRight:  {justify: "flex-end", text: "right"},
}

// noteBubble returns the typography and border declarations of a style preset.
func noteBubble(style project.NoteStyle, base styleBase) string {
	switch style {
	case project.NoteStyleDocument:
		return "background:#fff;color:#222;font-family:Georgia,\"Times New Roman\",serif;border:1px solid #ccc;border-radius:2px;box-shadow:0 1px 3px rgba(0,0,0,0.15);"
	case project.NoteStyleLetter:
		return "background:#fdf6e3;color:#3b2f2f;font-family:\"Palatino Linotype\",Palatino,serif;font-style:italic;border:none;border-left:3px solid " + base.SenderBg + ";border-radius:0;"
	case project.NoteStyleSimple:
		return "background:transparent;color:inherit;border:none;border-radius:0;padding:4px 0;"
	default:
		return "background:" + base.SenderBg + ";color:#fff;border:1px solid rgba(255,255,255,0.1);border-radius:12px;"
	}
}

func noteCSS(s project.Settings) (string, error) {
	base := newStyleBase(s)
	align := noteAlignments[s.Note.EffectiveAlignment()]
	return executeStyle("note", noteStyleView{
		styleBase: base,
		Justify:   align.justify,
		TextAlign: align.text,
		Bubble:    noteBubble(s.Note.EffectiveStyle(), base),
	})
}
