package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	projectPath string
	configPath  string
	envFile     string
	verbose     bool

	app *appContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "skingen",
		Short:         "Skingen renders chat and social-post work skins as scoped HTML and CSS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			flags.app = app
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.projectPath, "project", "p", "", "Project file (.json or .yaml, default skin.json)")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.skingen/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Optional .env file read before SKINGEN_* variables")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newNewCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVariantCmd(flags))
	cmd.AddCommand(newVariantsCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newMessageCmd(flags))
	cmd.AddCommand(newUploadCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
