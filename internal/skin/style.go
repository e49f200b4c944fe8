package skin

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/skingen/pkg/rgba"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// RootSelector scopes every emitted rule.
const RootSelector = "#workskin"

// Style templates emit one rule per line. Every selector starts with the root
// scope; the only other top-level statements are workskin- keyframes.
var styleTemplates = template.Must(template.New("style").Parse(
	partialsStyle +
		chatStyle +
		noteStyle +
		twitterStyle +
		googleStyle +
		instagramStyle +
		discordStyle,
))

const partialsStyle = `{{define "frame"}}#workskin .chat{width:100%;max-width:{{.MaxWidth}}px;min-width:0;box-sizing:border-box;margin:0 auto;}
{{end}}` +
	`{{define "hidden"}}#workskin .visually-hidden{position:absolute;left:-9999px;top:auto;width:1px;height:1px;overflow:hidden;}
{{end}}`

const (
	neutralDark  = "rgba(255,255,255,0.08)"
	neutralLight = "transparent"
)

// styleBase carries the derivation shared by every variant.
type styleBase struct {
	MaxWidth    int
	Font        string
	SenderColor string
	SenderBg    string
	RecvBg      string
	Neutral     string
}

func newStyleBase(s project.Settings) styleBase {
	neutral := neutralLight
	if s.UseDarkNeutral {
		neutral = neutralDark
	}
	return styleBase{
		MaxWidth:    s.MaxWidthPx,
		Font:        s.FontFamily,
		SenderColor: s.SenderColor,
		SenderBg:    rgba.ToRgba(s.SenderColor, s.BubbleOpacity),
		RecvBg:      rgba.ToRgba(s.ReceiverColor, s.BubbleOpacity),
		Neutral:     neutral,
	}
}

func executeStyle(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := styleTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s style: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
