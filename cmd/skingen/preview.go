package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skingen/internal/skin"
)

const defaultPreviewPath = "preview.html"

type previewOptions struct {
	output string
	width  int
	mobile bool
	dark   bool
}

func (o *previewOptions) pageOptions() []skin.PreviewOption {
	width := o.width
	if o.mobile {
		width = skin.MobileWidthPx
	}
	return []skin.PreviewOption{
		skin.WithPreviewWidth(width),
		skin.WithDarkBackdrop(o.dark),
	}
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write a standalone HTML page showing the rendered skin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultPreviewPath, "Preview file, or - for stdout")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Mount width in pixels (0 fills the page)")
	cmd.Flags().BoolVar(&opts.mobile, "mobile", false, fmt.Sprintf("Use a %dpx phone-sized mount", skin.MobileWidthPx))
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Show the skin on a dark backdrop")
	cmd.MarkFlagsMutuallyExclusive("width", "mobile")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, opts *previewOptions) error {
	p, err := app.loadProject("preview")
	if err != nil {
		return err
	}

	if opts.width < 0 {
		return newCommandError("preview", "checking --width", fmt.Errorf("width must not be negative, got %d", opts.width), "Pass a positive pixel width or 0 to fill the page.")
	}

	page, err := app.Engine.Preview(p, opts.pageOptions()...)
	if err != nil {
		return newCommandError("preview", "rendering "+string(p.Variant), err, "Run 'skingen variant' to choose a supported template.")
	}

	if opts.output == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), page)
		return nil
	}

	if err := writeFile(opts.output, page); err != nil {
		return newCommandError("preview", "writing "+opts.output, err, "Check that the output directory is writable.")
	}

	app.Log.Info("preview written", "path", opts.output, "variant", p.Variant)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.output)
	return nil
}
