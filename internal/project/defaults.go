package project

// DefaultSettings returns the settings a new project starts with.
func DefaultSettings() Settings {
	return Settings{
		BubbleOpacity:  0.9,
		SenderColor:    "#1d9bf0",
		ReceiverColor:  "#ececec",
		FontFamily:     "Arial, Helvetica, sans-serif",
		MaxWidthPx:     400,
		UseDarkNeutral: true,
		Watermark:      true,

		DerivedSenderColor:   "#1d9bf0",
		DerivedReceiverColor: "#ececec",

		Chat: ChatSettings{
			AndroidStatusText: "Online",
			AndroidCheckmarks: true,
		},
		Note: NoteSettings{
			Style:     NoteStyleSystem,
			Alignment: NoteAlignCenter,
		},
		Twitter: TwitterSettings{
			ContextLinkText: "People are talking about this",
			ShowMetrics:     true,
		},
		Google: GoogleSettings{
			Engine: GoogleEngineModern,
		},
		Discord: DiscordSettings{
			ChannelName: "general",
			ShowHeader:  Bool(true),
			DarkMode:    Bool(true),
			RolePresets: []RolePreset{
				{Name: "Admin", Color: "#ED4245"},
				{Name: "Moderator", Color: "#5865F2"},
				{Name: "Member", Color: "#B9BBBE"},
			},
		},
	}
}

// New creates a project with default settings and two sample messages.
func New() Project {
	return Project{
		ID:       NewID(),
		Variant:  VariantIOS,
		Settings: DefaultSettings(),
		Messages: []Message{
			{
				ID:        NewID(),
				Sender:    "You",
				Content:   "Where are you?",
				Outgoing:  true,
				Timestamp: "10:15",
			},
			{
				ID:        NewID(),
				Sender:    "Alice",
				Content:   "On my way.",
				Outgoing:  false,
				Timestamp: "10:15",
			},
		},
	}
}
