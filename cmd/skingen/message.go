package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

func newMessageCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "message",
		Aliases: []string{"msg"},
		Short:   "Manage the project's messages",
		Long: "Manage the project's messages. Commands that take <ref> accept a 1-based\n" +
			"position, a full message ID, or a unique ID prefix.",
	}

	cmd.AddCommand(newMessageListCmd(rootFlags))
	cmd.AddCommand(newMessageAddCmd(rootFlags))
	cmd.AddCommand(newMessageEditCmd(rootFlags))
	cmd.AddCommand(newMessageDeleteCmd(rootFlags))
	cmd.AddCommand(newMessageMoveCmd(rootFlags))
	cmd.AddCommand(newMessageRoleCmd(rootFlags))

	return cmd
}

// messageFields are the editable message attributes shared by add and edit.
type messageFields struct {
	sender    string
	content   string
	outgoing  bool
	timestamp string
	avatar    string
	image     string
	imageAlt  string
	status    string
	reaction  string
	roleColor string
}

func (f *messageFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.sender, "sender", "s", "", "Display name of the author")
	cmd.Flags().StringVarP(&f.content, "content", "c", "", "Message text; *word* is emphasized")
	cmd.Flags().BoolVarP(&f.outgoing, "outgoing", "o", false, "Sent by the device owner")
	cmd.Flags().StringVarP(&f.timestamp, "time", "t", "", "Free-form timestamp")
	cmd.Flags().StringVar(&f.avatar, "avatar", "", "Avatar image URL")
	cmd.Flags().StringVar(&f.image, "image", "", "Attach an image URL (empty clears attachments)")
	cmd.Flags().StringVar(&f.imageAlt, "alt", "", "Alt text for --image")
	cmd.Flags().StringVar(&f.status, "status", "", "Delivery status: sending, sent, delivered or read")
	cmd.Flags().StringVar(&f.reaction, "reaction", "", "Reaction emoji")
	cmd.Flags().StringVar(&f.roleColor, "role-color", "", "Discord name color")
}

// apply copies every flag the user set onto m.
func (f *messageFields) apply(cmd *cobra.Command, m project.Message) (project.Message, error) {
	changed := cmd.Flags().Changed

	if changed("status") {
		status := project.Status(strings.ToLower(strings.TrimSpace(f.status)))
		if !status.Valid() {
			return m, fmt.Errorf("unknown status %q", f.status)
		}
		m.Status = status
	}
	if changed("sender") {
		m.Sender = f.sender
	}
	if changed("content") {
		m.Content = f.content
	}
	if changed("outgoing") {
		m.Outgoing = f.outgoing
	}
	if changed("time") {
		m.Timestamp = f.timestamp
	}
	if changed("avatar") {
		m.AvatarURL = f.avatar
	}
	if changed("image") {
		m.Attachments = nil
		if f.image != "" {
			m.Attachments = []project.Attachment{{URL: f.image, Alt: f.imageAlt}}
		}
	}
	if changed("reaction") {
		m.Reaction = f.reaction
	}
	if changed("role-color") {
		m.RoleColor = f.roleColor
	}
	return m, nil
}

func newMessageListCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List messages in display order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			p, err := app.loadProject("list messages")
			if err != nil {
				return err
			}
			if len(p.Messages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No messages yet.")
				fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'skingen message add --content <text>' to add one.")
				return nil
			}

			table := newTable(cmd, []string{"#", "ID", "Sender", "Dir", "Time", "Content"})
			for i, m := range p.Messages {
				table.Append([]string{
					strconv.Itoa(i + 1),
					shortID(m.ID),
					m.Sender,
					lo.Ternary(m.Outgoing, "out", "in"),
					m.Timestamp,
					truncateContent(m.Content, 48),
				})
			}
			table.Render()
			if !p.Variant.MessageDriven() {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s builds a single post from its settings; messages only seed its defaults.\n", p.Variant)
			}
			return nil
		},
	}
}

func newMessageAddCmd(rootFlags *rootFlags) *cobra.Command {
	fields := &messageFields{}
	var position int

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Append a message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			p, err := app.loadProject("add message")
			if err != nil {
				return err
			}

			m, err := fields.apply(cmd, project.Message{})
			if err != nil {
				return newCommandError("add message", "reading flags", err, "Use sending, sent, delivered or read for --status.")
			}
			if len(args) == 1 {
				m.Content = args[0]
			}
			if m.Sender == "" {
				m.Sender = lo.Ternary(m.Outgoing, "You", "Alice")
			}

			p = p.AddMessage(m)
			added := p.Messages[len(p.Messages)-1]
			if cmd.Flags().Changed("at") {
				if p, err = p.MoveMessage(added.ID, position-1); err != nil {
					return newCommandError("add message", "positioning message", err, "Use a 1-based position.")
				}
			}

			if err := app.saveProject("add message", p); err != nil {
				return err
			}
			app.Log.Info("message added", "id", added.ID, "sender", added.Sender)
			fmt.Fprintf(cmd.OutOrStdout(), "Added message %s\n", shortID(added.ID))
			return nil
		},
	}

	fields.register(cmd)
	cmd.Flags().IntVar(&position, "at", 0, "Insert at this 1-based position instead of appending")

	return cmd
}

func newMessageEditCmd(rootFlags *rootFlags) *cobra.Command {
	fields := &messageFields{}

	cmd := &cobra.Command{
		Use:   "edit <ref>",
		Short: "Change fields of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			p, err := app.loadProject("edit message")
			if err != nil {
				return err
			}
			id, err := resolveMessage(p, args[0])
			if err != nil {
				return newCommandError("edit message", "finding message "+args[0], err, "Run 'skingen message list' to see the messages.")
			}

			var applyErr error
			p, err = p.UpdateMessage(id, func(m project.Message) project.Message {
				updated, err := fields.apply(cmd, m)
				if err != nil {
					applyErr = err
					return m
				}
				return updated
			})
			if applyErr != nil {
				return newCommandError("edit message", "reading flags", applyErr, "Use sending, sent, delivered or read for --status.")
			}
			if err != nil {
				return newCommandError("edit message", "updating message", err, "Run 'skingen message list' to see the messages.")
			}

			if err := app.saveProject("edit message", p); err != nil {
				return err
			}
			app.Log.Info("message edited", "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated message %s\n", shortID(id))
			return nil
		},
	}

	fields.register(cmd)

	return cmd
}

func newMessageDeleteCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <ref>",
		Aliases: []string{"rm"},
		Short:   "Remove a message",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			p, err := app.loadProject("delete message")
			if err != nil {
				return err
			}
			id, err := resolveMessage(p, args[0])
			if err != nil {
				return newCommandError("delete message", "finding message "+args[0], err, "Run 'skingen message list' to see the messages.")
			}
			if p, err = p.DeleteMessage(id); err != nil {
				return newCommandError("delete message", "removing message", err, "Run 'skingen message list' to see the messages.")
			}

			if err := app.saveProject("delete message", p); err != nil {
				return err
			}
			app.Log.Info("message deleted", "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted message %s\n", shortID(id))
			return nil
		},
	}
}

func newMessageMoveCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "move <ref> <position>",
		Short: "Move a message to a 1-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return newCommandError("move message", "reading position", err, "Use a 1-based position.")
			}

			p, err := app.loadProject("move message")
			if err != nil {
				return err
			}
			id, err := resolveMessage(p, args[0])
			if err != nil {
				return newCommandError("move message", "finding message "+args[0], err, "Run 'skingen message list' to see the messages.")
			}
			if p, err = p.MoveMessage(id, position-1); err != nil {
				return newCommandError("move message", "reordering", err, "Run 'skingen message list' to see the messages.")
			}

			if err := app.saveProject("move message", p); err != nil {
				return err
			}
			app.Log.Info("message moved", "id", id, "position", position)
			fmt.Fprintf(cmd.OutOrStdout(), "Moved message %s\n", shortID(id))
			return nil
		},
	}
}

func newMessageRoleCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "role <ref> <preset>",
		Short: "Color a message's author with a Discord role preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			p, err := app.loadProject("apply role")
			if err != nil {
				return err
			}
			id, err := resolveMessage(p, args[0])
			if err != nil {
				return newCommandError("apply role", "finding message "+args[0], err, "Run 'skingen message list' to see the messages.")
			}
			if p, err = p.ApplyRolePreset(id, args[1]); err != nil {
				names := lo.Map(p.Settings.Discord.RolePresets, func(r project.RolePreset, _ int) string { return r.Name })
				return newCommandError("apply role", "applying preset "+args[1], err, "Known presets: "+strings.Join(names, ", ")+".")
			}

			if err := app.saveProject("apply role", p); err != nil {
				return err
			}
			app.Log.Info("role applied", "id", id, "preset", args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %s to message %s\n", args[1], shortID(id))
			return nil
		},
	}
}

// resolveMessage maps a 1-based position, full ID or unique ID prefix to an ID.
func resolveMessage(p project.Project, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty message reference")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(p.Messages) {
			return "", fmt.Errorf("position %d out of range 1-%d", n, len(p.Messages))
		}
		return p.Messages[n-1].ID, nil
	}

	if _, ok := p.Message(ref); ok {
		return ref, nil
	}

	matches := lo.Filter(p.Messages, func(m project.Message, _ int) bool { return strings.HasPrefix(m.ID, ref) })
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no message matches %q", ref)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("%q matches %d messages", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncateContent(content string, limit int) string {
	flat := strings.Join(strings.Fields(content), " ")
	runes := []rune(flat)
	if len(runes) <= limit {
		return flat
	}
	return string(runes[:limit-1]) + "…"
}
