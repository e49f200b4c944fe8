package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/skin"
	"github.com/alexisbeaulieu97/skingen/internal/tui/picker"
)

func newVariantCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variant [name]",
		Short: "Switch the project's template and apply its defaults",
		Long: "Switch the project's template and apply its defaults.\n" +
			"Without a name, an interactive picker opens on a terminal; otherwise the current template is printed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariant(cmd, rootFlags.app, args)
		},
	}

	return cmd
}

func runVariant(cmd *cobra.Command, app *appContext, args []string) error {
	p, err := app.loadProject("switch variant")
	if err != nil {
		return err
	}

	var target project.Variant
	switch {
	case len(args) == 1:
		target, err = project.ParseVariant(args[0])
		if err != nil {
			return newCommandError("switch variant", "resolving variant", err, "Run 'skingen variants' to list the templates.")
		}
	case interactive(cmd.InOrStdin(), cmd.OutOrStdout()):
		chosen, ok, err := picker.Run(pickerChoices(app.Engine.Registry()), p.Variant, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return newCommandError("switch variant", "running picker", err, "Pass the template name as an argument instead.")
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No change.")
			return nil
		}
		target = chosen
	default:
		fmt.Fprintln(cmd.OutOrStdout(), p.Variant)
		return nil
	}

	previous := p.Variant
	p, err = app.Engine.SwitchVariant(p, target)
	if err != nil {
		return newCommandError("switch variant", "applying defaults for "+string(target), err, "Run 'skingen variants' to list the templates.")
	}

	if err := app.saveProject("switch variant", p); err != nil {
		return err
	}

	app.Log.Info("variant switched", "from", previous, "to", p.Variant)
	fmt.Fprintf(cmd.OutOrStdout(), "Switched %s to %s\n", app.Store.Path, p.Variant)
	return nil
}

func pickerChoices(registry *skin.Registry) []picker.Choice {
	return lo.Map(registry.Renderers(), func(rd skin.Renderer, _ int) picker.Choice {
		return picker.Choice{Variant: rd.Variant, Description: rd.Description}
	})
}

func newVariantsCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(cmd, rootFlags.app)
		},
	}

	return cmd
}

func runVariants(cmd *cobra.Command, app *appContext) error {
	var current project.Variant
	if app.Store.Exists() {
		p, err := app.loadProject("list variants")
		if err != nil {
			return err
		}
		current = p.Variant
	}

	table := newTable(cmd, []string{"Variant", "Description", "Current"})
	for _, rd := range app.Engine.Registry().Renderers() {
		table.Append([]string{string(rd.Variant), rd.Description, lo.Ternary(rd.Variant == current, "*", "")})
	}
	table.Render()
	return nil
}

func newTable(cmd *cobra.Command, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}
