package skin

import (
	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const twitterStyle = `{{define "twitter"}}{{template "frame" .}}#workskin .chat{font-family:"Helvetica Neue",Helvetica,Arial,sans-serif;}
#workskin .tweets .tweet{background:#fff;color:#14171a;border:1px solid #ddd;border-radius:4px;padding:12px;margin:0 0 12px 0;position:relative;min-width:0;}
#workskin .tweet img.avatar{width:48px;height:48px;border-radius:24px;float:left;margin:0 12px 0 0;object-fit:cover;}
#workskin .tweet .head{display:flex;flex-wrap:wrap;align-items:center;gap:6px;font-size:15px;font-weight:700;line-height:1.2;}
#workskin .tweet .name{font-weight:700;}
#workskin .tweet .verified{position:relative;bottom:2px;display:inline-block;font-weight:normal;text-align:center;font-size:10px;width:15px;height:15px;background-color:{{.SenderColor}};color:#fff;border-radius:50%;}
#workskin .tweet .handle{color:#697882;font-weight:400;}
#workskin .tweet .bird{margin-left:auto;color:{{.SenderColor}};}
#workskin .tweet .body{clear:both;margin-top:8px;font-size:15px;line-height:1.35;word-wrap:break-word;overflow-wrap:anywhere;}
#workskin .tweet .hashtag{color:{{.SenderColor}};}
#workskin .tweet .time-line{margin-top:8px;font-size:13px;color:#697882;border-top:1px solid #eee;padding-top:8px;}
#workskin .tweet .metrics{display:flex;flex-wrap:wrap;gap:16px;margin-top:8px;font-size:13px;color:#697882;border-top:1px solid #eee;padding-top:8px;}
#workskin .tweet .metric{display:inline-flex;align-items:center;gap:4px;}
#workskin .tweet .metric.likes{color:#cc2431;}
#workskin .tweet .context{margin-top:8px;font-size:13px;color:{{.SenderColor}};}
#workskin .tweet .quote{border:.05em solid #dddddd;border-radius:.3em;padding:8px;margin-top:8px;}
#workskin .tweet .quote-head{display:flex;flex-wrap:wrap;align-items:center;gap:6px;font-size:13px;font-weight:600;}
#workskin .tweet .quote-avatar{width:24px;height:24px;border-radius:12px;object-fit:cover;}
#workskin .tweet .quote-verified{position:relative;bottom:2px;display:inline-block;font-weight:normal;text-align:center;font-size:9px;width:12px;height:12px;background-color:{{.SenderColor}};color:#fff;border-radius:50%;}
#workskin .tweet .quote-handle{color:#697882;font-weight:400;font-size:12px;}
#workskin .tweet .quote-body{margin-top:6px;font-size:13px;line-height:1.3;}
#workskin .tweet .quote-image{width:100%;height:auto;border-radius:.3em;margin-top:6px;}
#workskin .tweets .wm{margin-top:12px;font-size:10px;opacity:0.5;text-align:center;}
{{template "hidden" .}}{{end}}`

func twitterCSS(s project.Settings) (string, error) {
	return executeStyle("twitter", newStyleBase(s))
}
