package skin

import (
	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const instagramStyle = `{{define "instagram"}}{{template "frame" .}}#workskin .chat{font-family:"Helvetica Neue",Helvetica,Arial,sans-serif;}
#workskin .inst{width:100%;max-width:300px;margin:auto;}
#workskin .instBody{overflow:hidden;background:#fff;color:#262626;border:.1em solid #ddd;border-radius:.3em;position:relative;padding:.7em;box-sizing:border-box;}
#workskin .instHead{overflow:hidden;}
#workskin .instAvatar{width:30px;height:auto;float:left;margin:0 .3em .5em -.1em;border:.1em solid #ddd;border-radius:50%;}
#workskin .instUser{color:#343436;position:relative;top:.1em;font-size:16px;font-weight:bold;}
#workskin .instLocation{display:block;font-size:12px;color:#555;}
#workskin .instImage{display:block;width:calc(100% + 1.4em);max-width:none;height:auto;margin:0 -.7em;}
#workskin .instText{display:block;font-size:14px;border-top:1px solid #ADADAD;margin:.4em 0 .2em 0;padding:.4em 0 .2em 0;word-wrap:break-word;}
#workskin .likes{font-size:14px;}
#workskin .instTimestamp{display:inline-block;width:100%;color:#ADADAD;text-transform:uppercase;font-size:12px;margin-top:.4em;}
#workskin .comments-link{display:inline-block;width:100%;color:#ADADAD;font-size:14px;margin-top:.2em;}
#workskin .wm{margin-top:12px;font-size:10px;opacity:0.5;text-align:center;}
{{end}}`

func instagramCSS(s project.Settings) (string, error) {
	return executeStyle("instagram", newStyleBase(s))
}
