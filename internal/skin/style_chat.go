package skin

import (
	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// Shared chat rules followed by one block per chat platform.
const chatStyle = `{{define "chat-common"}}{{template "frame" .}}#workskin .chat{display:flex;flex-direction:column;font-family:{{.Font}};}
#workskin .row{display:flex;gap:8px;align-items:flex-end;flex-wrap:wrap;min-width:0;}
#workskin .row-out{flex-direction:row-reverse;}
#workskin dl.msg{margin:0;display:flex;flex-direction:column;min-width:0;max-width:100%;}
#workskin .row-out dl.msg{align-items:flex-end;}
#workskin dd{margin:0;}
#workskin dd.bubble{position:relative;word-wrap:break-word;overflow-wrap:anywhere;background:{{.Neutral}};color:inherit;}
#workskin dd.attach{margin-top:4px;}
#workskin img.attach-img{max-width:200px;border-radius:8px;display:block;}
#workskin .status{display:block;font-size:9px;opacity:0.7;text-align:right;margin-top:2px;}
#workskin .reaction{position:absolute;top:-10px;right:-6px;font-size:12px;background:#fff;border-radius:10px;padding:0 3px;box-shadow:0 1px 2px rgba(0,0,0,0.2);}
#workskin .chat-header{display:flex;align-items:baseline;gap:6px;padding:6px 8px;margin-bottom:6px;border-bottom:1px solid rgba(128,128,128,0.3);font-size:13px;}
#workskin .chat-header-to{opacity:0.6;}
#workskin .chat-header-name{font-weight:600;}
#workskin .chat-header-status{font-size:11px;opacity:0.7;margin-left:auto;}
#workskin .typing{display:inline-flex;gap:4px;align-items:center;}
#workskin .typing .dot{width:6px;height:6px;border-radius:50%;background:currentColor;opacity:0.3;animation:workskin-typing 1.2s infinite;}
#workskin .typing .dot:nth-child(2){animation-delay:0.2s;}
#workskin .typing .dot:nth-child(3){animation-delay:0.4s;}
@keyframes workskin-typing{0%,80%,100%{opacity:0.3;}40%{opacity:1;}}
#workskin .wm{margin-top:12px;font-size:10px;opacity:0.5;text-align:center;}
{{template "hidden" .}}{{end}}` +
	`{{define "ios"}}{{template "chat-common" .}}#workskin .row{margin:6px 0;}
#workskin img.avatar{width:32px;height:32px;border-radius:50%;object-fit:cover;flex-shrink:0;}
#workskin dt.sender{font-size:10px;color:rgba(255,255,255,0.6);margin:0 4px 2px 4px;}
#workskin dd.bubble{max-width:75%;padding:6px 10px;border-radius:16px;line-height:1.3;}
#workskin dd.bubble.out{background:{{.SenderBg}};color:#fff;border-bottom-right-radius:4px;}
#workskin dd.bubble.out::after{content:"";position:absolute;right:-5px;bottom:0;width:10px;height:10px;background:{{.SenderBg}};border-bottom-left-radius:16px 14px;}
#workskin dd.bubble.in{background:{{.RecvBg}};border-bottom-left-radius:4px;}
#workskin dd.bubble.in::after{content:"";position:absolute;left:-5px;bottom:0;width:10px;height:10px;background:{{.RecvBg}};border-bottom-right-radius:16px 14px;}
#workskin dd.bubble .time{display:block;font-size:9px;opacity:0.6;margin-top:4px;}
#workskin .chat-header{justify-content:center;}
{{end}}` +
	`{{define "android"}}{{template "chat-common" .}}#workskin .chat{background:rgba(230,235,230,0.2);padding:12px;border-radius:8px;}
#workskin .row{margin:8px 0;align-items:flex-start;}
#workskin img.avatar{width:36px;height:36px;border-radius:50%;object-fit:cover;flex-shrink:0;}
#workskin dl.msg{flex:1;}
#workskin dt.sender{font-size:12px;color:rgba(100,100,100,0.8);margin:0 0 3px 8px;font-weight:600;}
#workskin dd.bubble{max-width:85%;padding:8px 12px;border-radius:8px;line-height:1.4;box-shadow:0 1px 2px rgba(0,0,0,0.1);}
#workskin dd.bubble.out{background:{{.SenderBg}};color:#000;border-radius:8px 8px 2px 8px;}
#workskin dd.bubble.in{background:{{.RecvBg}};border-radius:8px 8px 8px 2px;}
#workskin dd.bubble .time{display:inline;font-size:10px;opacity:0.5;margin-left:8px;float:right;}
#workskin .status{display:inline;margin-left:4px;color:#34B7F1;}
#workskin .status-sending,#workskin .status-sent,#workskin .status-delivered{color:inherit;}
#workskin .chat-header{background:#075E54;color:#fff;border-radius:6px;border-bottom:none;}
{{end}}`

// iOS mode palettes replace the author's colors and opacity entirely.
var iosModePalettes = map[project.IOSMode]struct{ sender, receiver string }{
	project.IOSModeIMessage: {sender: "#0B93F6", receiver: "#E5E5EA"},
	project.IOSModeSMS:      {sender: "#34C759", receiver: "#E5E5EA"},
}

func iosCSS(s project.Settings) (string, error) {
	if p, ok := iosModePalettes[s.Chat.IOSMode]; ok {
		s.SenderColor = p.sender
		s.ReceiverColor = p.receiver
		s.BubbleOpacity = 1
	}
	return executeStyle("ios", newStyleBase(s))
}

func androidCSS(s project.Settings) (string, error) {
	return executeStyle("android", newStyleBase(s))
}
