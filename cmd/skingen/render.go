package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/skin"
	"github.com/alexisbeaulieu97/skingen/pkg/diff"
)

const (
	renderOnlyHTML = "html"
	renderOnlyCSS  = "css"
)

type renderOptions struct {
	htmlPath string
	cssPath  string
	only     string
	check    bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the project's HTML fragment and scoped CSS",
		Long: "Render the project's HTML fragment and its stylesheet scoped under " + skin.RootSelector + ".\n" +
			"Both are printed to stdout unless written to files with --html and --css.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.htmlPath, "html", "", "Write the HTML fragment to this file")
	cmd.Flags().StringVar(&opts.cssPath, "css", "", "Write the stylesheet to this file")
	cmd.Flags().StringVar(&opts.only, "only", "", "Render only html or css")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare against the --html/--css files instead of writing them")

	return cmd
}

type renderOutput struct {
	markup string
	style  string
}

func runRender(cmd *cobra.Command, app *appContext, opts *renderOptions) error {
	only := strings.ToLower(strings.TrimSpace(opts.only))
	if only != "" && only != renderOnlyHTML && only != renderOnlyCSS {
		return newCommandError("render", "reading --only", fmt.Errorf("unknown output %q", opts.only), "Use --only html or --only css.")
	}

	p, err := app.loadProject("render")
	if err != nil {
		return err
	}

	out, err := renderBoth(cmd.Context(), app.Engine, p, only)
	if err != nil {
		return newCommandError("render", "rendering "+string(p.Variant), err, "Run 'skingen variant' to choose a supported template.")
	}

	app.Log.Info("rendered project", "variant", p.Variant, "html_bytes", len(out.markup), "css_bytes", len(out.style))

	if opts.check {
		return checkRender(cmd, app, opts, out, only)
	}

	var stdout bytes.Buffer
	if only != renderOnlyCSS {
		if err := emit(&stdout, opts.htmlPath, out.markup); err != nil {
			return newCommandError("render", "writing HTML", err, "Check that the output directory is writable.")
		}
	}
	if only != renderOnlyHTML {
		if stdout.Len() > 0 && opts.cssPath == "" {
			stdout.WriteString("\n")
		}
		if err := emit(&stdout, opts.cssPath, out.style); err != nil {
			return newCommandError("render", "writing CSS", err, "Check that the output directory is writable.")
		}
	}

	_, err = cmd.OutOrStdout().Write(stdout.Bytes())
	return err
}

// renderBoth renders markup and style concurrently. Both read the same
// immutable project.
func renderBoth(ctx context.Context, engine *skin.Engine, p project.Project, only string) (renderOutput, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	group, _ := errgroup.WithContext(ctx)

	var out renderOutput
	if only != renderOnlyCSS {
		group.Go(func() error {
			markup, err := engine.RenderMarkup(p)
			out.markup = markup
			return err
		})
	}
	if only != renderOnlyHTML {
		group.Go(func() error {
			style, err := engine.RenderStyle(p)
			out.style = style
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return renderOutput{}, err
	}
	return out, nil
}

// emit writes content to path, or appends it to stdout when path is empty.
func emit(stdout *bytes.Buffer, path, content string) error {
	if path == "" {
		stdout.WriteString(content)
		stdout.WriteString("\n")
		return nil
	}
	return writeFile(path, content+"\n")
}

// checkRender diffs the published files against a fresh render and fails
// when any of them is stale.
func checkRender(cmd *cobra.Command, app *appContext, opts *renderOptions, out renderOutput, only string) error {
	type target struct {
		path    string
		content string
	}

	var targets []target
	if only != renderOnlyCSS && opts.htmlPath != "" {
		targets = append(targets, target{path: opts.htmlPath, content: out.markup})
	}
	if only != renderOnlyHTML && opts.cssPath != "" {
		targets = append(targets, target{path: opts.cssPath, content: out.style})
	}
	if len(targets) == 0 {
		return newCommandError("check render", "choosing files", fmt.Errorf("nothing to compare"), "Pass --html and/or --css with --check.")
	}

	var stale []string
	for _, tg := range targets {
		published, err := os.ReadFile(tg.path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return newCommandError("check render", "reading "+tg.path, err, "Check the file permissions.")
		}

		unified := diff.Lines(string(published), tg.content+"\n", tg.path, "rendered")
		if unified == "" {
			app.Log.Debug("render up to date", "path", tg.path)
			continue
		}

		removed, added := diff.Stats(unified)
		app.Log.Warn("render out of date", "path", tg.path, "removed", removed, "added", added)
		fmt.Fprint(cmd.OutOrStdout(), unified)
		stale = append(stale, tg.path)
	}

	if len(stale) > 0 {
		return newCommandError("check render", "comparing published files", fmt.Errorf("%s out of date", strings.Join(stale, ", ")), "Run 'skingen render' with the same flags without --check to update them.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Up to date.")
	return nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
