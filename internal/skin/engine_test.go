package skin

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/sanitize"
	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"
)

func TestEngine_UnknownVariant(t *testing.T) {
	t.Parallel()

	p := sampleProject(project.Variant("myspace"))

	_, err := RenderMarkup(p)
	var variantErr *apperrors.VariantError
	require.ErrorAs(t, err, &variantErr)
	require.Equal(t, "myspace", variantErr.Variant)

	_, err = RenderStyle(p)
	require.ErrorAs(t, err, &variantErr)
}

func TestEngine_SwitchVariant(t *testing.T) {
	t.Parallel()

	e := New()
	p := project.New()
	p.Messages[0].Sender = "John Doe"

	switched, err := e.SwitchVariant(p, project.VariantTwitter)
	require.NoError(t, err)
	require.Equal(t, project.VariantTwitter, switched.Variant)
	require.Equal(t, "johndoe", switched.Settings.Twitter.Handle)
	require.Equal(t, project.VariantIOS, p.Variant)
	require.Empty(t, p.Settings.Twitter.Handle)

	_, err = e.SwitchVariant(p, project.Variant("myspace"))
	require.Error(t, err)
}

func TestEngine_WithSanitizer(t *testing.T) {
	t.Parallel()

	p := sampleProject(project.VariantIOS)
	p.Messages[0].Content = "a <b>bold</b> claim"

	policy := renderHTML(t, p)
	assert.Contains(t, policy, "a bold claim")

	escaped := renderHTML(t, p, WithSanitizer(sanitize.NewEscape()))
	assert.Contains(t, escaped, "a &lt;b&gt;bold&lt;/b&gt; claim")
}

func TestEngine_WithRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(stubRenderer(project.VariantIOS)))

	e := New(WithRegistry(reg))
	html, err := e.RenderMarkup(sampleProject(project.VariantIOS))
	require.NoError(t, err)
	require.Equal(t, `<div class="chat"></div>`, html)

	_, err = e.RenderMarkup(sampleProject(project.VariantAndroid))
	require.Error(t, err)
}

func TestEngine_RendersConcurrently(t *testing.T) {
	t.Parallel()

	e := New()
	p := sampleProject(project.VariantTwitter)
	wantHTML, err := e.RenderMarkup(p)
	require.NoError(t, err)
	wantCSS, err := e.RenderStyle(p)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			html, err := e.RenderMarkup(p)
			assert.NoError(t, err)
			assert.Equal(t, wantHTML, html)
		}()
		go func() {
			defer wg.Done()
			css, err := e.RenderStyle(p)
			assert.NoError(t, err)
			assert.Equal(t, wantCSS, css)
		}()
	}
	wg.Wait()
}

func TestEngine_Preview(t *testing.T) {
	t.Parallel()

	e := New()
	p := sampleProject(project.VariantIOS)
	doc, err := e.Preview(p)
	require.NoError(t, err)

	css, err := e.RenderStyle(p)
	require.NoError(t, err)
	html, err := e.RenderMarkup(p)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<div id="workskin" style="width:100%;margin:0 auto;">`+html+`</div>`)
	assert.Contains(t, doc, css)
	assert.Contains(t, doc, "background:#fafafa;")
}

func TestEngine_PreviewOptions(t *testing.T) {
	t.Parallel()

	e := New()
	p := sampleProject(project.VariantIOS)

	doc, err := e.Preview(p, WithPreviewWidth(MobileWidthPx), WithDarkBackdrop(true))
	require.NoError(t, err)
	assert.Contains(t, doc, `<div id="workskin" style="width:375px;margin:0 auto;">`)
	assert.Contains(t, doc, "background:#333333;")
	assert.Contains(t, doc, "color:#eeeeee;")

	doc, err = e.Preview(p, WithPreviewWidth(0), WithDarkBackdrop(false))
	require.NoError(t, err)
	assert.Contains(t, doc, `style="width:100%;margin:0 auto;"`)
	assert.Contains(t, doc, "background:#fafafa;")
}

func TestEngine_PreviewIgnoresSkinDarkMode(t *testing.T) {
	t.Parallel()

	e := New()
	p := sampleProject(project.VariantIOS)
	p.Settings.UseDarkNeutral = true

	doc, err := e.Preview(p)
	require.NoError(t, err)
	assert.Contains(t, doc, "background:#fafafa;")
	assert.NotContains(t, doc, "background:#333333;")

	style, err := e.RenderStyle(p)
	require.NoError(t, err)
	assert.Contains(t, doc, style)
}
