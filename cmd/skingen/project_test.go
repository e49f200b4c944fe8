package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

func TestNewCommand_CreatesProject(t *testing.T) {
	w := newWorkspace(t)

	out := w.mustRun(t, "new", "twitter")
	assert.Contains(t, out, "(twitter)")

	p := w.load(t)
	assert.Equal(t, project.VariantTwitter, p.Variant)
	assert.Len(t, p.Messages, 2)
	assert.Equal(t, "you", p.Settings.Twitter.Handle)
}

func TestNewCommand_RefusesToOverwrite(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new")

	_, err := w.run(t, "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	w.mustRun(t, "new", "--force", "--empty", "note")
	p := w.load(t)
	assert.Equal(t, project.VariantNote, p.Variant)
	assert.Empty(t, p.Messages)
}

func TestNewCommand_UsesConfiguredDefaultVariant(t *testing.T) {
	w := newWorkspace(t)
	require.NoError(t, os.WriteFile(w.configPath, []byte("default_variant: discord\n"), 0o600))

	w.mustRun(t, "new")
	assert.Equal(t, project.VariantDiscord, w.load(t).Variant)
}

func TestNewCommand_UnknownVariant(t *testing.T) {
	w := newWorkspace(t)

	_, err := w.run(t, "new", "myspace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skingen variants")
}

func TestRenderCommand_PrintsMarkupAndStyle(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "ios")

	out := w.mustRun(t, "render")
	assert.Contains(t, out, `class="chat`)
	assert.Contains(t, out, "Where are you?")
	assert.Contains(t, out, "#workskin .chat{")
	assert.Less(t, strings.Index(out, "Where are you?"), strings.Index(out, "#workskin"))
}

func TestRenderCommand_Only(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "google")

	css := w.mustRun(t, "render", "--only", "css")
	assert.Contains(t, css, "#workskin")
	assert.NotContains(t, css, "<div")

	html := w.mustRun(t, "render", "--only", "html")
	assert.Contains(t, html, "<div")
	assert.NotContains(t, html, "#workskin .chat{")

	_, err := w.run(t, "render", "--only", "js")
	require.Error(t, err)
}

func TestRenderCommand_WritesFiles(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "discord")

	htmlPath := filepath.Join(w.dir, "out", "skin.html")
	cssPath := filepath.Join(w.dir, "out", "skin.css")
	out := w.mustRun(t, "render", "--html", htmlPath, "--css", cssPath)
	assert.Empty(t, out)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "dc-wrap")

	css, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	assert.Contains(t, string(css), "#workskin .chat.dc-wrap")
}

func TestRenderCommand_MalformedProject(t *testing.T) {
	w := newWorkspace(t)
	require.NoError(t, os.WriteFile(w.projectPath, []byte(`{"template": "ios", "settings": {}, "messages": {}}`), 0o600))

	_, err := w.run(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading project")
}

func TestPreviewCommand(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "instagram")

	page := w.mustRun(t, "preview", "-o", "-")
	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, `<div id="workskin" style="width:100%;`)
	assert.Contains(t, page, "background:#fafafa;")

	target := filepath.Join(w.dir, "preview.html")
	w.mustRun(t, "preview", "-o", target)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "instBody")
}

func TestPreviewCommand_PageFlags(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "ios")

	page := w.mustRun(t, "preview", "-o", "-", "--mobile", "--dark")
	assert.Contains(t, page, `<div id="workskin" style="width:375px;`)
	assert.Contains(t, page, "background:#333333;")

	page = w.mustRun(t, "preview", "-o", "-", "--width", "600")
	assert.Contains(t, page, `<div id="workskin" style="width:600px;`)
	assert.Contains(t, page, "background:#fafafa;")

	_, err := w.run(t, "preview", "-o", "-", "--width", "-5")
	require.Error(t, err)

	_, err = w.run(t, "preview", "-o", "-", "--width", "600", "--mobile")
	require.Error(t, err)
}

func TestVariantCommand(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "ios")

	assert.Equal(t, "ios\n", w.mustRun(t, "variant"))

	out := w.mustRun(t, "variant", "Discord")
	assert.Contains(t, out, "discord")

	p := w.load(t)
	assert.Equal(t, project.VariantDiscord, p.Variant)
	assert.Equal(t, "general", p.Settings.Discord.ChannelName)
	assert.Len(t, p.Messages, 2)

	_, err := w.run(t, "variant", "myspace")
	require.Error(t, err)
}

func TestVariantsCommand(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "note")

	out := w.mustRun(t, "variants")
	for _, v := range project.Variants() {
		assert.Contains(t, out, string(v))
	}
	assert.Contains(t, out, "System alerts")
	assert.Contains(t, out, "*")
}

func TestSetCommand(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "twitter")

	w.mustRun(t, "set", "twitterHandle", "gopher")
	w.mustRun(t, "set", "twitterLikes", "12")
	w.mustRun(t, "set", "watermark", "false")

	p := w.load(t)
	assert.Equal(t, "gopher", p.Settings.Twitter.Handle)
	assert.Equal(t, 12, p.Settings.Twitter.Likes)
	assert.False(t, p.Settings.Watermark)

	_, err := w.run(t, "set", "iosMode", "whatsapp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set --list")

	_, err = w.run(t, "set", "twitterHandle")
	require.Error(t, err)

	keys := w.mustRun(t, "set", "--list")
	assert.Contains(t, keys, "googleEngineVariant\n")
}

func TestRenderCommand_Check(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "new", "android")

	cssPath := filepath.Join(w.dir, "skin.css")
	_, err := w.run(t, "render", "--check", "--css", cssPath)
	require.Error(t, err)

	w.mustRun(t, "render", "--css", cssPath, "--only", "css")
	out := w.mustRun(t, "render", "--check", "--css", cssPath, "--only", "css")
	assert.Contains(t, out, "Up to date.")

	w.mustRun(t, "set", "maxWidthPx", "320")
	out, err = w.run(t, "render", "--check", "--css", cssPath, "--only", "css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")
	assert.Contains(t, out, "-#workskin .chat{width:100%;max-width:400px;")
	assert.Contains(t, out, "+#workskin .chat{width:100%;max-width:320px;")

	_, err = w.run(t, "render", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to compare")
}
