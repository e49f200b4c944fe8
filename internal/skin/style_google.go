package skin

import (
	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const googleStyle = `{{define "google"}}{{template "frame" .}}#workskin .chat{font-family:Arial,Helvetica,sans-serif;}
#workskin .logo{text-align:center;margin:0;font-weight:bold;font-size:32px;font-family:"Lato","Verdana",sans-serif;}
#workskin .logo.old{font-family:"Cardo","Garamond",serif;}
#workskin .logo.naver{font-family:"Maven Pro",Verdana,sans-serif;}
#workskin .naver-green{color:#2DB400;}
#workskin .blue{color:#4285F4;}
#workskin .red{color:#DB4437;}
#workskin .yellow{color:#F4B400;}
#workskin .green{color:#0F9D58;}
#workskin .search-wrap{margin-top:12px;}
#workskin .search-bar{margin:0;}
#workskin .search-bar span{display:block;padding:10px 14px;border:1px solid #aaa;border-radius:24px;font-size:16px;word-wrap:break-word;}
#workskin .suggest-box{border:1px solid #aaa;border-top:none;border-radius:0 0 24px 24px;overflow:hidden;margin-top:-8px;padding-top:8px;}
#workskin .suggest-item{padding:6px 16px;font-size:15px;line-height:1.2;word-wrap:break-word;}
#workskin .suggest-item:nth-child(odd){background:#fafafa;}
#workskin .suggest-item b,#workskin .suggest-item strong{font-weight:600;}
#workskin .search-stats{margin:4px 0 0 0;color:#999;font-size:12px;padding-top:5px;}
#workskin .search-dym{margin:4px 0 0 0;font-size:12px;padding-top:5px;}
#workskin .search-dym1{color:#de5246;}
#workskin .search-dym2{color:#0645AD;font-weight:600;font-style:italic;}
#workskin .wm{margin-top:24px;font-size:10px;opacity:0.5;text-align:center;}
{{end}}`

func googleCSS(s project.Settings) (string, error) {
	return executeStyle("google", newStyleBase(s))
}
