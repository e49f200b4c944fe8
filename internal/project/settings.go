package project

// Settings holds the shared fields plus one block per variant family. Blocks
// that the active variant does not read are kept so switching back restores them.
type Settings struct {
	BubbleOpacity  float64
	SenderColor    string
	ReceiverColor  string
	FontFamily     string
	MaxWidthPx     int
	UseDarkNeutral bool
	Watermark      bool

	// DerivedSenderColor and DerivedReceiverColor hold the colors last written
	// by a variant switch. A color that still equals its derived value was not
	// picked by the author. Empty means the origin is unknown.
	DerivedSenderColor   string
	DerivedReceiverColor string

	Chat      ChatSettings
	Note      NoteSettings
	Twitter   TwitterSettings
	Google    GoogleSettings
	Instagram InstagramSettings
	Discord   DiscordSettings
}

// IOSMode selects a fixed iOS palette.
type IOSMode string

const (
	IOSModeNone     IOSMode = ""
	IOSModeIMessage IOSMode = "imessage"
	IOSModeSMS      IOSMode = "sms"
)

// ChatSettings is read by the ios and android variants.
type ChatSettings struct {
	IOSMode           IOSMode
	ContactName       string
	ShowTyping        bool
	TypingName        string
	IOSShowDelivered  bool
	IOSShowHeader     bool
	AndroidShowStatus bool
	AndroidStatusText string
	AndroidCheckmarks bool
}

// NoteStyle is one of the note presentation presets.
type NoteStyle string

const (
	NoteStyleSystem   NoteStyle = "system"
	NoteStyleDocument NoteStyle = "document"
	NoteStyleLetter   NoteStyle = "letter"
	NoteStyleSimple   NoteStyle = "simple"
)

// NoteAlignment positions note rows.
type NoteAlignment string

const (
	NoteAlignCenter NoteAlignment = "center"
	NoteAlignLeft   NoteAlignment = "left"
	NoteAlignRight  NoteAlignment = "right"
)

// NoteSettings is read by the note variant.
type NoteSettings struct {
	Style     NoteStyle
	Alignment NoteAlignment
}

// EffectiveStyle returns the style, defaulting to system.
func (n NoteSettings) EffectiveStyle() NoteStyle {
	switch n.Style {
	case NoteStyleDocument, NoteStyleLetter, NoteStyleSimple:
		return n.Style
	default:
		return NoteStyleSystem
	}
}

// EffectiveAlignment returns the alignment, defaulting to center.
func (n NoteSettings) EffectiveAlignment() NoteAlignment {
	switch n.Alignment {
	case NoteAlignLeft, NoteAlignRight:
		return n.Alignment
	default:
		return NoteAlignCenter
	}
}

// TwitterSettings is read by the twitter variant.
type TwitterSettings struct {
	Handle          string
	Verified        bool
	Likes           int
	Retweets        int
	Replies         int
	ContextLinkText string
	ShowMetrics     bool
	Timestamp       string
	Quote           TwitterQuote
}

// TwitterQuote is the optional embedded post.
type TwitterQuote struct {
	Enabled  bool
	Avatar   string
	Name     string
	Handle   string
	Verified bool
	Text     string
	Image    string
}

// GoogleEngine selects the logo presentation of the google variant.
type GoogleEngine string

const (
	GoogleEngineModern  GoogleEngine = "google"
	GoogleEngineClassic GoogleEngine = "google-old"
	GoogleEngineNaver   GoogleEngine = "naver"
)

// GoogleSettings is read by the google variant.
type GoogleSettings struct {
	Query          string
	Suggestions    []string
	ShowStats      bool
	ResultsCount   string
	ResultsTime    string
	ShowDidYouMean bool
	DidYouMean     string
	Engine         GoogleEngine
}

// EffectiveEngine returns the engine, defaulting to the modern logo.
func (g GoogleSettings) EffectiveEngine() GoogleEngine {
	switch g.Engine {
	case GoogleEngineClassic, GoogleEngineNaver:
		return g.Engine
	default:
		return GoogleEngineModern
	}
}

// InstagramSettings is read by the instagram variant.
type InstagramSettings struct {
	Username      string
	AvatarURL     string
	ImageURL      string
	Caption       string
	Location      string
	ShowLikes     bool
	Likes         int
	ShowComments  bool
	CommentsCount int
	Timestamp     string
}

// RolePreset is a named color shortcut assignable to discord messages.
type RolePreset struct {
	Name  string
	Color string
}

// DiscordSettings is read by the discord variant. ShowHeader and DarkMode are
// three-state: nil means true.
type DiscordSettings struct {
	ChannelName string
	ServerName  string
	ShowHeader  *bool
	DarkMode    *bool
	RolePresets []RolePreset
}

// HeaderVisible reports whether the channel header is rendered.
func (d DiscordSettings) HeaderVisible() bool {
	return d.ShowHeader == nil || *d.ShowHeader
}

// Dark reports whether the dark palette is used.
func (d DiscordSettings) Dark() bool {
	return d.DarkMode == nil || *d.DarkMode
}

// Channel returns the channel name, defaulting to general.
func (d DiscordSettings) Channel() string {
	if d.ChannelName == "" {
		return "general"
	}
	return d.ChannelName
}

// Clone returns a deep copy so edits never alias slices or pointers.
func (s Settings) Clone() Settings {
	out := s
	if s.Google.Suggestions != nil {
		out.Google.Suggestions = append([]string(nil), s.Google.Suggestions...)
	}
	if s.Discord.RolePresets != nil {
		out.Discord.RolePresets = append([]RolePreset(nil), s.Discord.RolePresets...)
	}
	out.Discord.ShowHeader = cloneBool(s.Discord.ShowHeader)
	out.Discord.DarkMode = cloneBool(s.Discord.DarkMode)
	return out
}

// Bool returns a pointer to v, for three-state settings.
func Bool(v bool) *bool {
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
