package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skingen/internal/storage"
)

type setOptions struct {
	list bool
}

func newSetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting using its editor key",
		Long: "Change one setting using its flat editor key, for example 'skingen set twitterHandle gopher'.\n" +
			"Lists are comma separated, role presets take name=color entries, and three-state flags accept 'default'.",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(storage.SettingKeys(), "\n"))
				return nil
			}
			return runSet(cmd, rootFlags.app, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.list, "list", false, "List the accepted keys")

	return cmd
}

func runSet(cmd *cobra.Command, app *appContext, key, value string) error {
	p, err := app.loadProject("update setting")
	if err != nil {
		return err
	}

	settings, err := storage.SetSetting(p.Settings, key, value)
	if err != nil {
		return newCommandError("update setting", "setting "+key, err, "Run 'skingen set --list' to see the accepted keys.")
	}

	if err := app.saveProject("update setting", p.WithSettings(settings)); err != nil {
		return err
	}

	app.Log.Info("setting updated", "key", key, "value", value)
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}
