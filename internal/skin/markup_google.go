package skin

import (
	"html/template"
	"strings"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const googleLetters = `<span class="blue">G</span><span class="red">o</span><span class="yellow">o</span>` +
	`<span class="blue">g</span><span class="green">l</span><span class="red">e</span>`

const googleMarkup = `{{define "google"}}` +
	`<div class="chat search">` +
	`<p class="logo {{.LogoClass}}">{{if .Naver}}<span class="naver-green">NAVER</span>{{else}}` + googleLetters + `{{end}}</p>` +
	`<div class="search-wrap">` +
	`<p class="search-bar"><span>{{.Query}}</span></p>` +
	`{{if .Suggestions}}<div class="suggest-box">{{range .Suggestions}}<div class="suggest-item">{{.}}</div>{{end}}</div>{{end}}` +
	`{{if .Stats}}<p class="search-stats">{{.Stats}}</p>{{end}}` +
	`{{if .DidYouMean}}<p class="search-dym"><span class="search-dym1">Did you mean: </span><span class="search-dym2">{{.DidYouMean}}</span></p>{{end}}` +
	`</div>` +
	`{{template "watermark" .Watermark}}` +
	`</div>` +
	`{{end}}`

const defaultGoogleQuery = "search query"

var logoClasses = map[project.GoogleEngine]string{
	project.GoogleEngineModern:  "sans",
	project.GoogleEngineClassic: "old",
	project.GoogleEngineNaver:   "naver",
}

type googleView struct {
	LogoClass   string
	Naver       bool
	Query       template.HTML
	Suggestions []template.HTML
	Stats       template.HTML
	DidYouMean  template.HTML
	Watermark   bool
}

// googleHTML renders a single search box. Messages only contribute the
// fallback query.
func googleHTML(in Input) (string, error) {
	gs := in.Settings.Google
	engine := gs.EffectiveEngine()

	firstContent := ""
	if len(in.Messages) > 0 {
		firstContent = in.Messages[0].Content
	}

	view := googleView{
		LogoClass: logoClasses[engine],
		Naver:     engine == project.GoogleEngineNaver,
		Query:     safe(in.Clean, firstNonEmpty(gs.Query, firstContent, defaultGoogleQuery)),
		Watermark: in.Settings.Watermark,
	}

	lines := lo.Filter(gs.Suggestions, func(line string, _ int) bool { return strings.TrimSpace(line) != "" })
	view.Suggestions = lo.Map(lines, func(line string, _ int) template.HTML {
		return emphasize(safe(in.Clean, line))
	})

	if gs.ShowStats {
		view.Stats = safe(in.Clean, statsLine(gs.ResultsCount, gs.ResultsTime))
	}
	if gs.ShowDidYouMean {
		view.DidYouMean = safe(in.Clean, gs.DidYouMean)
	}

	return execute("google", view)
}

// statsLine formats "About N results (0.5 seconds)" from whichever parts are present.
func statsLine(count, elapsed string) string {
	count = strings.TrimSpace(count)
	elapsed = strings.TrimSpace(elapsed)
	switch {
	case count != "" && elapsed != "":
		return count + " (" + elapsed + ")"
	case elapsed != "":
		return "(" + elapsed + ")"
	default:
		return count
	}
}
