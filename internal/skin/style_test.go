package skin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

func renderCSS(t *testing.T, p project.Project) string {
	t.Helper()
	css, err := New().RenderStyle(p)
	require.NoError(t, err)
	return css
}

// requireScoped checks every top-level statement is a rule under the root
// scope or a workskin- keyframes block.
func requireScoped(t *testing.T, css string) {
	t.Helper()
	for _, line := range strings.Split(css, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "@keyframes workskin-") {
			continue
		}
		open := strings.Index(line, "{")
		require.Positive(t, open, "rule without a block: %q", line)
		require.True(t, strings.HasSuffix(line, "}"), "rule spans lines: %q", line)
		for _, selector := range strings.Split(line[:open], ",") {
			require.True(t, strings.HasPrefix(strings.TrimSpace(selector), RootSelector+" "), "unscoped selector %q", selector)
		}
	}
}

func TestRenderStyle_EveryVariantIsScoped(t *testing.T) {
	t.Parallel()

	for _, v := range project.Variants() {
		v := v
		t.Run(string(v), func(t *testing.T) {
			t.Parallel()

			p := sampleProject(v)
			p.Settings.MaxWidthPx = 280
			css := renderCSS(t, p)
			require.NotEmpty(t, css)
			requireScoped(t, css)
			assert.Contains(t, css, "max-width:280px")
			assert.Contains(t, css, "width:100%")
			assert.Contains(t, css, "min-width:0")
			assert.NotContains(t, css, "<no value>")
		})
	}
}

func TestRenderStyle_NoteAlignment(t *testing.T) {
	t.Parallel()

	p := sampleProject(project.VariantNote)
	p.Settings.Note.Alignment = project.NoteAlignRight

	css := renderCSS(t, p)
	assert.Contains(t, css, "#workskin .row{display:flex;justify-content:flex-end;")
	assert.Regexp(t, `#workskin dd\.bubble\{[^}]*text-align:right;`, css)

	p.Settings.Note.Alignment = ""
	css = renderCSS(t, p)
	assert.Contains(t, css, "justify-content:center;")
	assert.Regexp(t, `#workskin dd\.bubble\{[^}]*text-align:center;`, css)
}

func TestRenderStyle_NoteStylesDiffer(t *testing.T) {
	t.Parallel()

	seen := map[string]project.NoteStyle{}
	for _, style := range []project.NoteStyle{
		project.NoteStyleSystem, project.NoteStyleDocument, project.NoteStyleLetter, project.NoteStyleSimple,
	} {
		p := sampleProject(project.VariantNote)
		p.Settings.Note.Style = style
		css := renderCSS(t, p)
		prev, dup := seen[css]
		require.False(t, dup, "%s renders like %s", style, prev)
		seen[css] = style
	}
}

func TestRenderStyle_BubbleColors(t *testing.T) {
	t.Parallel()

	p := sampleProject(project.VariantIOS)
	p.Settings.SenderColor = "#ff0000"
	p.Settings.ReceiverColor = "#00ff00"
	p.Settings.BubbleOpacity = 0.5
	p.Settings.UseDarkNeutral = true

	css := renderCSS(t, p)
	assert.Contains(t, css, "dd.bubble.out{background:rgba(255, 0, 0, 0.5);")
	assert.Contains(t, css, "dd.bubble.in{background:rgba(0, 255, 0, 0.5);")
	assert.Contains(t, css, "background:rgba(255,255,255,0.08);")

	p.Settings.UseDarkNeutral = false
	assert.Contains(t, renderCSS(t, p), "background:transparent;")
}

func TestRenderStyle_IOSModeOverridesColors(t *testing.T) {
	t.Parallel()

	p := sampleProject(project.VariantIOS)
	p.Settings.SenderColor = "#ff0000"
	p.Settings.BubbleOpacity = 0.2
	p.Settings.Chat.IOSMode = project.IOSModeIMessage

	css := renderCSS(t, p)
	assert.Contains(t, css, "rgba(11, 147, 246, 1)")
	assert.Contains(t, css, "rgba(229, 229, 234, 1)")
	assert.NotContains(t, css, "rgba(255, 0, 0")

	p.Settings.Chat.IOSMode = project.IOSModeSMS
	assert.Contains(t, renderCSS(t, p), "rgba(52, 199, 89, 1)")

	android := sampleProject(project.VariantAndroid)
	android.Settings.SenderColor = "#ff0000"
	android.Settings.BubbleOpacity = 0.2
	android.Settings.Chat.IOSMode = project.IOSModeIMessage
	assert.Contains(t, renderCSS(t, android), "rgba(255, 0, 0, 0.2)")
}

func TestRenderStyle_DiscordModes(t *testing.T) {
	t.Parallel()

	p := sampleProject(project.VariantDiscord)
	p.Settings.Discord.DarkMode = nil
	assert.Contains(t, renderCSS(t, p), "background:#2B2D31;")

	p.Settings.Discord.DarkMode = project.Bool(false)
	assert.Contains(t, renderCSS(t, p), "background:#FFFFFF;")
}

func TestRenderStyle_TwitterAccent(t *testing.T) {
	t.Parallel()

	p := sampleProject(project.VariantTwitter)
	p.Settings.SenderColor = "#1DA1F2"
	assert.Contains(t, renderCSS(t, p), "#workskin .tweet .hashtag{color:#1DA1F2;}")
}
