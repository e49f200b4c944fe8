package skin

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body{margin:0;padding:24px;background:{{.Backdrop}};color:{{.Foreground}};}
{{.Style}}
</style>
</head>
<body>
<div id="workskin" style="width:{{.MountWidth}};margin:0 auto;">{{.Markup}}</div>
</body>
</html>
`))

// MobileWidthPx is the mount width used for phone-sized previews.
const MobileWidthPx = 375

type previewView struct {
	Title      string
	Backdrop   template.CSS
	Foreground template.CSS
	MountWidth template.CSS
	Style      template.CSS
	Markup     template.HTML
}

type previewConfig struct {
	widthPx int
	dark    bool
}

// PreviewOption configures the page built by Preview. The options shape the
// surrounding page only; the rendered skin is unaffected.
type PreviewOption func(*previewConfig)

// WithPreviewWidth fixes the mount width in pixels. Zero or less fills the page.
func WithPreviewWidth(px int) PreviewOption {
	return func(c *previewConfig) {
		c.widthPx = px
	}
}

// WithDarkBackdrop switches the page behind the mount to a dark backdrop.
func WithDarkBackdrop(dark bool) PreviewOption {
	return func(c *previewConfig) {
		c.dark = dark
	}
}

// Preview returns a standalone document that mounts the fragment inside the
// root scope element and injects the stylesheet verbatim.
func (e *Engine) Preview(p project.Project, opts ...PreviewOption) (string, error) {
	var cfg previewConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	markup, err := e.RenderMarkup(p)
	if err != nil {
		return "", err
	}
	style, err := e.RenderStyle(p)
	if err != nil {
		return "", err
	}

	view := previewView{
		Title:      fmt.Sprintf("skingen preview: %s", p.Variant),
		Backdrop:   "#fafafa",
		Foreground: "#111111",
		MountWidth: "100%",
		Style:      template.CSS(style),
		Markup:     template.HTML(markup),
	}
	if cfg.widthPx > 0 {
		view.MountWidth = template.CSS(fmt.Sprintf("%dpx", cfg.widthPx))
	}
	if cfg.dark {
		view.Backdrop = "#333333"
		view.Foreground = "#eeeeee"
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}
