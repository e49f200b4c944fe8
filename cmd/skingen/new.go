package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

type newOptions struct {
	force bool
	empty bool
}

func newNewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new [variant]",
		Short: "Create a project file with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, rootFlags.app, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing project file")
	cmd.Flags().BoolVar(&opts.empty, "empty", false, "Start without the sample messages")

	return cmd
}

func runNew(cmd *cobra.Command, app *appContext, opts *newOptions, args []string) error {
	if app.Store.Exists() && !opts.force {
		return newCommandError("create project", app.Store.Path+" already exists", fmt.Errorf("refusing to overwrite"), "Pass --force to replace it or --project to pick another file.")
	}

	variant := app.Config.Variant()
	if len(args) == 1 {
		parsed, err := project.ParseVariant(args[0])
		if err != nil {
			return newCommandError("create project", "resolving variant", err, "Run 'skingen variants' to list the templates.")
		}
		variant = parsed
	}

	p := project.New()
	if opts.empty {
		p.Messages = nil
	}

	p, err := app.Engine.SwitchVariant(p, variant)
	if err != nil {
		return newCommandError("create project", "applying variant defaults", err, "Run 'skingen variants' to list the templates.")
	}

	if err := app.saveProject("create project", p); err != nil {
		return err
	}

	app.Log.Info("project created", "path", app.Store.Path, "variant", p.Variant)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", app.Store.Path, p.Variant)
	return nil
}
