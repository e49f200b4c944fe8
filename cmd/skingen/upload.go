package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/storage"
	"github.com/alexisbeaulieu97/skingen/internal/tui/task"
	"github.com/alexisbeaulieu97/skingen/internal/upload"
)

type uploadOptions struct {
	avatar  string
	attach  string
	alt     string
	setting string
}

func newUploadCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &uploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload <image>",
		Short: "Upload an image and print its hosted URL",
		Long: "Upload an image to the configured Cloudinary account and print its hosted URL.\n" +
			"The URL can be stored on a message avatar, as a message attachment, or in a setting.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, rootFlags.app, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.avatar, "avatar", "", "Use the URL as the avatar of this message <ref>")
	cmd.Flags().StringVar(&opts.attach, "attach", "", "Attach the image to this message <ref>")
	cmd.Flags().StringVar(&opts.alt, "alt", "", "Alt text for --attach")
	cmd.Flags().StringVar(&opts.setting, "setting", "", "Store the URL under this setting key, e.g. instagramImageUrl")

	return cmd
}

func runUpload(cmd *cobra.Command, app *appContext, opts *uploadOptions, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := upload.New(app.Config.UploadOptions())
	app.Log.Debug("uploading image", "file", path, "endpoint", client.URL())

	send := func(ctx context.Context) (string, error) {
		return client.UploadFile(ctx, path)
	}

	var (
		url string
		err error
	)
	if interactive(cmd.InOrStdin(), cmd.ErrOrStderr()) {
		url, err = task.Run(ctx, "Uploading "+path, send, cmd.InOrStdin(), cmd.ErrOrStderr())
	} else {
		url, err = send(ctx)
	}
	if err != nil {
		return newCommandError("upload image", "uploading "+path, err, "Check the file is an image and the upload settings in your config.")
	}

	app.Log.Info("image uploaded", "file", path, "url", url)
	fmt.Fprintln(cmd.OutOrStdout(), url)

	if opts.avatar == "" && opts.attach == "" && opts.setting == "" {
		return nil
	}
	return storeUploadedURL(app, opts, url)
}

func storeUploadedURL(app *appContext, opts *uploadOptions, url string) error {
	p, err := app.loadProject("store upload")
	if err != nil {
		return err
	}

	if opts.avatar != "" {
		if p, err = updateRef(p, opts.avatar, func(m project.Message) project.Message {
			m.AvatarURL = url
			return m
		}); err != nil {
			return err
		}
	}

	if opts.attach != "" {
		if p, err = updateRef(p, opts.attach, func(m project.Message) project.Message {
			m.Attachments = append(m.Attachments, project.Attachment{URL: url, Alt: strings.TrimSpace(opts.alt)})
			return m
		}); err != nil {
			return err
		}
	}

	if opts.setting != "" {
		settings, err := storage.SetSetting(p.Settings, opts.setting, url)
		if err != nil {
			return newCommandError("store upload", "setting "+opts.setting, err, "Run 'skingen set --list' to see the accepted keys.")
		}
		p = p.WithSettings(settings)
	}

	return app.saveProject("store upload", p)
}

func updateRef(p project.Project, ref string, fn func(project.Message) project.Message) (project.Project, error) {
	id, err := resolveMessage(p, ref)
	if err != nil {
		return p, newCommandError("store upload", "finding message "+ref, err, "Run 'skingen message list' to see the messages.")
	}
	return p.UpdateMessage(id, fn)
}
