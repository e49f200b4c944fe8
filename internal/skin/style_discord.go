package skin

import (
	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const discordStyle = `{{define "discord"}}{{template "frame" .}}#workskin .chat.dc-wrap{font-family:Arial,Helvetica,sans-serif;background:{{.Background}};padding:12px 0;border-radius:6px;}
#workskin .dc-header{font-size:14px;font-weight:600;padding:0 16px 8px 16px;color:{{.Text}};border-bottom:1px solid {{.Rule}};margin-bottom:8px;}
#workskin .dc-header .dc-server{margin-right:8px;opacity:0.8;}
#workskin .dc-header .dc-hash{color:{{.Meta}};margin-right:4px;}
#workskin .dc-line{display:flex;padding:4px 16px;align-items:flex-start;gap:12px;}
#workskin .dc-avatar{width:40px;height:40px;border-radius:50%;object-fit:cover;flex-shrink:0;}
#workskin .dc-avatar.placeholder{background:#5865F2;display:inline-block;}
#workskin .dc-msg{flex:1;min-width:0;}
#workskin .dc-meta{display:flex;flex-wrap:wrap;align-items:center;gap:8px;line-height:1.2;}
#workskin .dc-name{font-weight:600;font-size:14px;}
#workskin .dc-time{font-size:12px;color:{{.Meta}};}
#workskin .dc-text{font-size:14px;color:{{.Text}};line-height:1.25;word-wrap:break-word;margin-top:2px;}
#workskin .wm{margin:8px 16px 0 16px;font-size:10px;opacity:0.5;color:{{.Meta}};text-align:right;}
{{end}}`

type discordStyleView struct {
	styleBase
	Background string
	Text       string
	Meta       string
	Rule       string
}

func discordCSS(s project.Settings) (string, error) {
	view := discordStyleView{
		styleBase:  newStyleBase(s),
		Background: "#FFFFFF",
		Text:       "#2E3338",
		Meta:       "#5865F2",
		Rule:       "#e3e5e8",
	}
	if s.Discord.Dark() {
		view.Background = "#2B2D31"
		view.Text = "#DBDEE1"
		view.Meta = "#949BA4"
		view.Rule = "#1f2124"
	}
	return executeStyle("discord", view)
}
