package skin

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const twitterMarkup = `{{define "twitter"}}` +
	`<div class="chat tweets">` +
	`{{range .Tweets}}<div class="tweet">` +
	`{{if .Avatar}}<img src="{{.Avatar}}" alt="{{.NameAlt}} avatar" class="avatar"/>{{end}}` +
	`<div class="head"><span class="name">{{.Name}}</span>` +
	`{{if .Verified}}<span class="verified" aria-label="Verified">✔</span>{{end}}` +
	`<span class="handle">{{.Handle}}</span><span class="bird" aria-hidden="true">🐦</span></div>` +
	`<div class="body">{{.Body}}{{with .Quote}}{{template "tweet-quote" .}}{{end}}</div>` +
	`{{if .TimeLine}}<div class="time-line">{{.TimeLine}}</div>{{end}}` +
	`{{if .Metrics}}<div class="metrics">{{range .Metrics}}<span class="metric {{.Class}}" title="{{.Title}}">{{.Icon}} {{.Count}}</span>{{end}}</div>{{end}}` +
	`{{if .Context}}<div class="context">{{.Context}}</div>{{end}}` +
	`</div>{{end}}` +
	`{{template "watermark" .Watermark}}` +
	`</div>` +
	`{{end}}` +
	`{{define "tweet-quote"}}` +
	`<div class="quote"><div class="quote-head">` +
	`{{if .Avatar}}<img src="{{.Avatar}}" alt="Quote avatar" class="quote-avatar"/>{{end}}` +
	`<span class="quote-name">{{.Name}}</span>` +
	`{{if .Verified}}<span class="quote-verified" aria-label="Verified">✔</span>{{end}}` +
	`{{if .Handle}}<span class="quote-handle">{{.Handle}}</span>{{end}}` +
	`</div><div class="quote-body">{{.Text}}` +
	`{{if .Image}}<img src="{{.Image}}" alt="Quote image" class="quote-image"/>{{end}}` +
	`</div></div>` +
	`{{end}}`

type twitterView struct {
	Tweets    []tweetView
	Watermark bool
}

type tweetView struct {
	Avatar   string
	NameAlt  string
	Name     template.HTML
	Verified bool
	Handle   string
	Body     template.HTML
	Quote    *quoteView
	TimeLine template.HTML
	Metrics  []metricView
	Context  template.HTML
}

type quoteView struct {
	Avatar   string
	Name     template.HTML
	Verified bool
	Handle   string
	Text     template.HTML
	Image    string
}

type metricView struct {
	Class string
	Title string
	Icon  string
	Count string
}

// twitterHTML renders every message as an independent post. The quote block,
// metrics and context line come from settings and repeat on each post.
func twitterHTML(in Input) (string, error) {
	ts := in.Settings.Twitter
	quote := buildQuote(in)
	metrics := buildMetrics(ts)
	context := safe(in.Clean, ts.ContextLinkText)

	view := twitterView{Watermark: in.Settings.Watermark}
	view.Tweets = lo.Map(in.Messages, func(m project.Message, _ int) tweetView {
		return tweetView{
			Avatar:   strings.TrimSpace(m.AvatarURL),
			NameAlt:  m.Sender,
			Name:     safe(in.Clean, m.Sender),
			Verified: ts.Verified,
			Handle:   tweetHandle(ts.Handle, m.Sender),
			Body:     highlightHashtags(safe(in.Clean, m.Content)),
			Quote:    quote,
			TimeLine: safe(in.Clean, firstNonEmpty(ts.Timestamp, m.Timestamp)),
			Metrics:  metrics,
			Context:  context,
		}
	})

	return execute("twitter", view)
}

// tweetHandle prefers the explicit handle and otherwise derives one from the sender.
func tweetHandle(explicit, sender string) string {
	if h := strings.TrimSpace(explicit); h != "" {
		return "@" + strings.TrimPrefix(h, "@")
	}
	return "@" + compactLower(sender)
}

func buildQuote(in Input) *quoteView {
	q := in.Settings.Twitter.Quote
	if !q.Enabled {
		return nil
	}
	view := &quoteView{
		Avatar:   strings.TrimSpace(q.Avatar),
		Name:     safe(in.Clean, q.Name),
		Verified: q.Verified,
		Text:     safe(in.Clean, q.Text),
		Image:    strings.TrimSpace(q.Image),
	}
	if h := strings.TrimSpace(q.Handle); h != "" {
		view.Handle = "@" + strings.TrimPrefix(h, "@")
	}
	return view
}

// buildMetrics includes a count when it is non-zero or when metrics are switched on.
func buildMetrics(ts project.TwitterSettings) []metricView {
	candidates := []struct {
		count int
		view  metricView
	}{
		{ts.Replies, metricView{Class: "replies", Title: "Replies", Icon: "↩"}},
		{ts.Retweets, metricView{Class: "retweets", Title: "Retweets", Icon: "🔁"}},
		{ts.Likes, metricView{Class: "likes", Title: "Likes", Icon: "❤"}},
	}

	var out []metricView
	for _, c := range candidates {
		if c.count == 0 && !ts.ShowMetrics {
			continue
		}
		v := c.view
		v.Count = strconv.Itoa(c.count)
		out = append(out, v)
	}
	return out
}
