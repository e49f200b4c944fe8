package storage

import (
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// document is the persisted envelope. Its keys match the browser editor's
// local-storage payload so projects move between the two unchanged.
type document struct {
	ID       string        `json:"id" yaml:"id"`
	Template string        `json:"template" yaml:"template" validate:"required,variant"`
	Settings *flatSettings `json:"settings" yaml:"settings" validate:"required"`
	Messages []flatMessage `json:"messages" yaml:"messages" validate:"required"`
}

type flatAttachment struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
	Alt  string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

type flatMessage struct {
	ID          string           `json:"id" yaml:"id"`
	Sender      string           `json:"sender" yaml:"sender"`
	AvatarURL   string           `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
	Content     string           `json:"content" yaml:"content"`
	Timestamp   string           `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Outgoing    bool             `json:"outgoing" yaml:"outgoing"`
	Attachments []flatAttachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	RoleColor   string           `json:"roleColor,omitempty" yaml:"roleColor,omitempty"`
	Status      string           `json:"status,omitempty" yaml:"status,omitempty"`
	Reaction    string           `json:"reaction,omitempty" yaml:"reaction,omitempty"`
}

type flatRolePreset struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// flatSettings mirrors the editor's single settings object with prefixed keys.
type flatSettings struct {
	BubbleOpacity  float64 `json:"bubbleOpacity" yaml:"bubbleOpacity"`
	SenderColor    string  `json:"senderColor" yaml:"senderColor"`
	ReceiverColor  string  `json:"receiverColor" yaml:"receiverColor"`
	FontFamily     string  `json:"fontFamily" yaml:"fontFamily"`
	MaxWidthPx     int     `json:"maxWidthPx" yaml:"maxWidthPx"`
	UseDarkNeutral bool    `json:"useDarkNeutral" yaml:"useDarkNeutral"`
	Watermark      bool    `json:"watermark" yaml:"watermark"`

	DerivedSenderColor   string `json:"derivedSenderColor,omitempty" yaml:"derivedSenderColor,omitempty"`
	DerivedReceiverColor string `json:"derivedReceiverColor,omitempty" yaml:"derivedReceiverColor,omitempty"`

	TwitterHandle          string `json:"twitterHandle,omitempty" yaml:"twitterHandle,omitempty"`
	TwitterVerified        bool   `json:"twitterVerified,omitempty" yaml:"twitterVerified,omitempty"`
	TwitterLikes           int    `json:"twitterLikes,omitempty" yaml:"twitterLikes,omitempty"`
	TwitterRetweets        int    `json:"twitterRetweets,omitempty" yaml:"twitterRetweets,omitempty"`
	TwitterReplies         int    `json:"twitterReplies,omitempty" yaml:"twitterReplies,omitempty"`
	TwitterContextLinkText string `json:"twitterContextLinkText,omitempty" yaml:"twitterContextLinkText,omitempty"`
	TwitterShowMetrics     bool   `json:"twitterShowMetrics,omitempty" yaml:"twitterShowMetrics,omitempty"`
	TwitterTimestamp       string `json:"twitterTimestamp,omitempty" yaml:"twitterTimestamp,omitempty"`
	TwitterQuoteEnabled    bool   `json:"twitterQuoteEnabled,omitempty" yaml:"twitterQuoteEnabled,omitempty"`
	TwitterQuoteAvatar     string `json:"twitterQuoteAvatar,omitempty" yaml:"twitterQuoteAvatar,omitempty"`
	TwitterQuoteName       string `json:"twitterQuoteName,omitempty" yaml:"twitterQuoteName,omitempty"`
	TwitterQuoteHandle     string `json:"twitterQuoteHandle,omitempty" yaml:"twitterQuoteHandle,omitempty"`
	TwitterQuoteVerified   bool   `json:"twitterQuoteVerified,omitempty" yaml:"twitterQuoteVerified,omitempty"`
	TwitterQuoteText       string `json:"twitterQuoteText,omitempty" yaml:"twitterQuoteText,omitempty"`
	TwitterQuoteImage      string `json:"twitterQuoteImage,omitempty" yaml:"twitterQuoteImage,omitempty"`

	GoogleQuery          string   `json:"googleQuery,omitempty" yaml:"googleQuery,omitempty"`
	GoogleSuggestions    []string `json:"googleSuggestions,omitempty" yaml:"googleSuggestions,omitempty"`
	GoogleShowStats      bool     `json:"googleShowStats,omitempty" yaml:"googleShowStats,omitempty"`
	GoogleResultsCount   string   `json:"googleResultsCount,omitempty" yaml:"googleResultsCount,omitempty"`
	GoogleResultsTime    string   `json:"googleResultsTime,omitempty" yaml:"googleResultsTime,omitempty"`
	GoogleShowDidYouMean bool     `json:"googleShowDidYouMean,omitempty" yaml:"googleShowDidYouMean,omitempty"`
	GoogleDidYouMean     string   `json:"googleDidYouMean,omitempty" yaml:"googleDidYouMean,omitempty"`
	GoogleEngineVariant  string   `json:"googleEngineVariant,omitempty" yaml:"googleEngineVariant,omitempty"`

	NoteStyle     string `json:"noteStyle,omitempty" yaml:"noteStyle,omitempty"`
	NoteAlignment string `json:"noteAlignment,omitempty" yaml:"noteAlignment,omitempty"`

	InstagramUsername      string `json:"instagramUsername,omitempty" yaml:"instagramUsername,omitempty"`
	InstagramAvatarURL     string `json:"instagramAvatarUrl,omitempty" yaml:"instagramAvatarUrl,omitempty"`
	InstagramImageURL      string `json:"instagramImageUrl,omitempty" yaml:"instagramImageUrl,omitempty"`
	InstagramCaption       string `json:"instagramCaption,omitempty" yaml:"instagramCaption,omitempty"`
	InstagramLocation      string `json:"instagramLocation,omitempty" yaml:"instagramLocation,omitempty"`
	InstagramShowLikes     bool   `json:"instagramShowLikes,omitempty" yaml:"instagramShowLikes,omitempty"`
	InstagramLikes         int    `json:"instagramLikes,omitempty" yaml:"instagramLikes,omitempty"`
	InstagramShowComments  bool   `json:"instagramShowComments,omitempty" yaml:"instagramShowComments,omitempty"`
	InstagramCommentsCount int    `json:"instagramCommentsCount,omitempty" yaml:"instagramCommentsCount,omitempty"`
	InstagramTimestamp     string `json:"instagramTimestamp,omitempty" yaml:"instagramTimestamp,omitempty"`

	DiscordChannelName string           `json:"discordChannelName,omitempty" yaml:"discordChannelName,omitempty"`
	DiscordServerName  string           `json:"discordServerName,omitempty" yaml:"discordServerName,omitempty"`
	DiscordShowHeader  *bool            `json:"discordShowHeader,omitempty" yaml:"discordShowHeader,omitempty"`
	DiscordDarkMode    *bool            `json:"discordDarkMode,omitempty" yaml:"discordDarkMode,omitempty"`
	DiscordRolePresets []flatRolePreset `json:"discordRolePresets,omitempty" yaml:"discordRolePresets,omitempty"`

	IOSMode           string `json:"iosMode,omitempty" yaml:"iosMode,omitempty"`
	ChatContactName   string `json:"chatContactName,omitempty" yaml:"chatContactName,omitempty"`
	ChatShowTyping    bool   `json:"chatShowTyping,omitempty" yaml:"chatShowTyping,omitempty"`
	ChatTypingName    string `json:"chatTypingName,omitempty" yaml:"chatTypingName,omitempty"`
	IOSShowDelivered  bool   `json:"iosShowDelivered,omitempty" yaml:"iosShowDelivered,omitempty"`
	IOSShowHeader     bool   `json:"iosShowHeader,omitempty" yaml:"iosShowHeader,omitempty"`
	AndroidShowStatus bool   `json:"androidShowStatus,omitempty" yaml:"androidShowStatus,omitempty"`
	AndroidStatusText string `json:"androidStatusText,omitempty" yaml:"androidStatusText,omitempty"`
	AndroidCheckmarks bool   `json:"androidCheckmarks,omitempty" yaml:"androidCheckmarks,omitempty"`
}

const attachmentTypeImage = "image"

func fromProject(p project.Project) document {
	return document{
		ID:       p.ID,
		Template: string(p.Variant),
		Settings: flattenSettings(p.Settings),
		Messages: lo.Map(p.Messages, func(m project.Message, _ int) flatMessage { return flattenMessage(m) }),
	}
}

func (d document) toProject() project.Project {
	return project.Project{
		ID:       d.ID,
		Variant:  project.Variant(d.Template),
		Settings: d.Settings.nest(),
		Messages: lo.Map(d.Messages, func(m flatMessage, _ int) project.Message { return m.nest() }),
	}
}

func flattenMessage(m project.Message) flatMessage {
	return flatMessage{
		ID:        m.ID,
		Sender:    m.Sender,
		AvatarURL: m.AvatarURL,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Outgoing:  m.Outgoing,
		Attachments: lo.Map(m.Attachments, func(a project.Attachment, _ int) flatAttachment {
			return flatAttachment{Type: attachmentTypeImage, URL: a.URL, Alt: a.Alt}
		}),
		RoleColor: m.RoleColor,
		Status:    string(m.Status),
		Reaction:  m.Reaction,
	}
}

func (m flatMessage) nest() project.Message {
	var attachments []project.Attachment
	if len(m.Attachments) > 0 {
		attachments = lo.Map(m.Attachments, func(a flatAttachment, _ int) project.Attachment {
			return project.Attachment{URL: a.URL, Alt: a.Alt}
		})
	}
	return project.Message{
		ID:          m.ID,
		Sender:      m.Sender,
		Content:     m.Content,
		Outgoing:    m.Outgoing,
		Timestamp:   m.Timestamp,
		AvatarURL:   m.AvatarURL,
		Attachments: attachments,
		RoleColor:   m.RoleColor,
		Status:      project.Status(m.Status),
		Reaction:    m.Reaction,
	}
}

func flattenSettings(s project.Settings) *flatSettings {
	return &flatSettings{
		BubbleOpacity:  s.BubbleOpacity,
		SenderColor:    s.SenderColor,
		ReceiverColor:  s.ReceiverColor,
		FontFamily:     s.FontFamily,
		MaxWidthPx:     s.MaxWidthPx,
		UseDarkNeutral: s.UseDarkNeutral,
		Watermark:      s.Watermark,

		DerivedSenderColor:   s.DerivedSenderColor,
		DerivedReceiverColor: s.DerivedReceiverColor,

		TwitterHandle:          s.Twitter.Handle,
		TwitterVerified:        s.Twitter.Verified,
		TwitterLikes:           s.Twitter.Likes,
		TwitterRetweets:        s.Twitter.Retweets,
		TwitterReplies:         s.Twitter.Replies,
		TwitterContextLinkText: s.Twitter.ContextLinkText,
		TwitterShowMetrics:     s.Twitter.ShowMetrics,
		TwitterTimestamp:       s.Twitter.Timestamp,
		TwitterQuoteEnabled:    s.Twitter.Quote.Enabled,
		TwitterQuoteAvatar:     s.Twitter.Quote.Avatar,
		TwitterQuoteName:       s.Twitter.Quote.Name,
		TwitterQuoteHandle:     s.Twitter.Quote.Handle,
		TwitterQuoteVerified:   s.Twitter.Quote.Verified,
		TwitterQuoteText:       s.Twitter.Quote.Text,
		TwitterQuoteImage:      s.Twitter.Quote.Image,

		GoogleQuery:          s.Google.Query,
		GoogleSuggestions:    append([]string(nil), s.Google.Suggestions...),
		GoogleShowStats:      s.Google.ShowStats,
		GoogleResultsCount:   s.Google.ResultsCount,
		GoogleResultsTime:    s.Google.ResultsTime,
		GoogleShowDidYouMean: s.Google.ShowDidYouMean,
		GoogleDidYouMean:     s.Google.DidYouMean,
		GoogleEngineVariant:  string(s.Google.Engine),

		NoteStyle:     string(s.Note.Style),
		NoteAlignment: string(s.Note.Alignment),

		InstagramUsername:      s.Instagram.Username,
		InstagramAvatarURL:     s.Instagram.AvatarURL,
		InstagramImageURL:      s.Instagram.ImageURL,
		InstagramCaption:       s.Instagram.Caption,
		InstagramLocation:      s.Instagram.Location,
		InstagramShowLikes:     s.Instagram.ShowLikes,
		InstagramLikes:         s.Instagram.Likes,
		InstagramShowComments:  s.Instagram.ShowComments,
		InstagramCommentsCount: s.Instagram.CommentsCount,
		InstagramTimestamp:     s.Instagram.Timestamp,

		DiscordChannelName: s.Discord.ChannelName,
		DiscordServerName:  s.Discord.ServerName,
		DiscordShowHeader:  s.Discord.ShowHeader,
		DiscordDarkMode:    s.Discord.DarkMode,
		DiscordRolePresets: lo.Map(s.Discord.RolePresets, func(r project.RolePreset, _ int) flatRolePreset {
			return flatRolePreset{Name: r.Name, Color: r.Color}
		}),

		IOSMode:           string(s.Chat.IOSMode),
		ChatContactName:   s.Chat.ContactName,
		ChatShowTyping:    s.Chat.ShowTyping,
		ChatTypingName:    s.Chat.TypingName,
		IOSShowDelivered:  s.Chat.IOSShowDelivered,
		IOSShowHeader:     s.Chat.IOSShowHeader,
		AndroidShowStatus: s.Chat.AndroidShowStatus,
		AndroidStatusText: s.Chat.AndroidStatusText,
		AndroidCheckmarks: s.Chat.AndroidCheckmarks,
	}
}

func (f *flatSettings) nest() project.Settings {
	s := project.Settings{
		BubbleOpacity:  f.BubbleOpacity,
		SenderColor:    f.SenderColor,
		ReceiverColor:  f.ReceiverColor,
		FontFamily:     f.FontFamily,
		MaxWidthPx:     f.MaxWidthPx,
		UseDarkNeutral: f.UseDarkNeutral,
		Watermark:      f.Watermark,

		DerivedSenderColor:   f.DerivedSenderColor,
		DerivedReceiverColor: f.DerivedReceiverColor,

		Chat: project.ChatSettings{
			IOSMode:           project.IOSMode(f.IOSMode),
			ContactName:       f.ChatContactName,
			ShowTyping:        f.ChatShowTyping,
			TypingName:        f.ChatTypingName,
			IOSShowDelivered:  f.IOSShowDelivered,
			IOSShowHeader:     f.IOSShowHeader,
			AndroidShowStatus: f.AndroidShowStatus,
			AndroidStatusText: f.AndroidStatusText,
			AndroidCheckmarks: f.AndroidCheckmarks,
		},
		Note: project.NoteSettings{
			Style:     project.NoteStyle(f.NoteStyle),
			Alignment: project.NoteAlignment(f.NoteAlignment),
		},
		Twitter: project.TwitterSettings{
			Handle:          f.TwitterHandle,
			Verified:        f.TwitterVerified,
			Likes:           f.TwitterLikes,
			Retweets:        f.TwitterRetweets,
			Replies:         f.TwitterReplies,
			ContextLinkText: f.TwitterContextLinkText,
			ShowMetrics:     f.TwitterShowMetrics,
			Timestamp:       f.TwitterTimestamp,
			Quote: project.TwitterQuote{
				Enabled:  f.TwitterQuoteEnabled,
				Avatar:   f.TwitterQuoteAvatar,
				Name:     f.TwitterQuoteName,
				Handle:   f.TwitterQuoteHandle,
				Verified: f.TwitterQuoteVerified,
				Text:     f.TwitterQuoteText,
				Image:    f.TwitterQuoteImage,
			},
		},
		Google: project.GoogleSettings{
			Query:          f.GoogleQuery,
			ShowStats:      f.GoogleShowStats,
			ResultsCount:   f.GoogleResultsCount,
			ResultsTime:    f.GoogleResultsTime,
			ShowDidYouMean: f.GoogleShowDidYouMean,
			DidYouMean:     f.GoogleDidYouMean,
			Engine:         project.GoogleEngine(f.GoogleEngineVariant),
		},
		Instagram: project.InstagramSettings{
			Username:      f.InstagramUsername,
			AvatarURL:     f.InstagramAvatarURL,
			ImageURL:      f.InstagramImageURL,
			Caption:       f.InstagramCaption,
			Location:      f.InstagramLocation,
			ShowLikes:     f.InstagramShowLikes,
			Likes:         f.InstagramLikes,
			ShowComments:  f.InstagramShowComments,
			CommentsCount: f.InstagramCommentsCount,
			Timestamp:     f.InstagramTimestamp,
		},
		Discord: project.DiscordSettings{
			ChannelName: f.DiscordChannelName,
			ServerName:  f.DiscordServerName,
			ShowHeader:  f.DiscordShowHeader,
			DarkMode:    f.DiscordDarkMode,
		},
	}
	if len(f.GoogleSuggestions) > 0 {
		s.Google.Suggestions = append([]string(nil), f.GoogleSuggestions...)
	}
	if len(f.DiscordRolePresets) > 0 {
		s.Discord.RolePresets = lo.Map(f.DiscordRolePresets, func(r flatRolePreset, _ int) project.RolePreset {
			return project.RolePreset{Name: r.Name, Color: r.Color}
		})
	}
	return s.Clone()
}
