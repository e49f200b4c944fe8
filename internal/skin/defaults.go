package skin

import (
	"strings"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// Platform accents written by the default rules. When a project carries no
// derived-color record, a color holding one of these (or nothing) is treated as
// not chosen by the author. An author who deliberately picks an accent value is
// then indistinguishable from a derived one until the next switch records it.
const (
	accentIOSSender       = "#1d9bf0"
	accentIOSReceiver     = "#ececec"
	accentAndroidSender   = "#dcf8c6"
	accentAndroidReceiver = "#ffffff"
	accentNoteSender      = "#4a5568"
	accentTwitterSender   = "#1DA1F2"
	accentTwitterReceiver = "#f5f8fa"
	accentGoogleSender    = "#4285F4"
	accentInstaSender     = "#E1306C"
	accentInstaReceiver   = "#FDFDFD"

	defaultInstagramTimestamp = "2 hours ago"
	defaultDiscordChannel     = "general"
)

var platformAccents = map[string]struct{}{}

func init() {
	for _, c := range []string{
		accentIOSSender, accentIOSReceiver,
		accentAndroidSender, accentAndroidReceiver,
		accentNoteSender,
		accentTwitterSender, accentTwitterReceiver,
		accentGoogleSender,
		accentInstaSender, accentInstaReceiver,
	} {
		platformAccents[strings.ToLower(c)] = struct{}{}
	}
}

// ApplyVariant derives variant defaults using the default registry.
func ApplyVariant(s project.Settings, v project.Variant, first *project.Message) project.Settings {
	return applyVariant(DefaultRegistry(), s, v, first)
}

func applyVariant(reg *Registry, s project.Settings, v project.Variant, first *project.Message) project.Settings {
	out := s.Clone()
	rd, err := reg.Lookup(v)
	if err != nil || rd.Defaults == nil {
		return out
	}
	return rd.Defaults(out, first)
}

// colorUnset reports whether c may be replaced by a variant accent. With a
// derived record only an exact match counts; without one the accent table
// decides.
func colorUnset(c, derived string) bool {
	c = normalizeColor(c)
	if c == "" {
		return true
	}
	if d := normalizeColor(derived); d != "" {
		return c == d
	}
	_, accent := platformAccents[c]
	return accent
}

func normalizeColor(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

// setColor writes accent into dst when the author has not chosen a color,
// recording it in derived.
func setColor(dst, derived *string, accent string) {
	if colorUnset(*dst, *derived) {
		*dst = accent
		*derived = accent
	}
}

func setSender(s *project.Settings, accent string) {
	setColor(&s.SenderColor, &s.DerivedSenderColor, accent)
}

func setReceiver(s *project.Settings, accent string) {
	setColor(&s.ReceiverColor, &s.DerivedReceiverColor, accent)
}

func setIfEmpty(dst *string, value string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = value
	}
}

// compactLower lowercases s and removes all whitespace.
func compactLower(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

func iosDefaults(s project.Settings, _ *project.Message) project.Settings {
	setSender(&s, accentIOSSender)
	setReceiver(&s, accentIOSReceiver)
	return s
}

func androidDefaults(s project.Settings, _ *project.Message) project.Settings {
	setSender(&s, accentAndroidSender)
	setReceiver(&s, accentAndroidReceiver)
	return s
}

func noteDefaults(s project.Settings, _ *project.Message) project.Settings {
	setSender(&s, accentNoteSender)
	return s
}

// twitterDefaults leaves Timestamp empty when unset: no default text is
// shown and the message timestamp is used at render time.
func twitterDefaults(s project.Settings, first *project.Message) project.Settings {
	setSender(&s, accentTwitterSender)
	setReceiver(&s, accentTwitterReceiver)
	if first != nil {
		setIfEmpty(&s.Twitter.Handle, compactLower(first.Sender))
	}
	return s
}

func googleDefaults(s project.Settings, first *project.Message) project.Settings {
	setSender(&s, accentGoogleSender)
	if first != nil {
		setIfEmpty(&s.Google.Query, first.Content)
	}
	return s
}

func instagramDefaults(s project.Settings, first *project.Message) project.Settings {
	setSender(&s, accentInstaSender)
	setReceiver(&s, accentInstaReceiver)
	if first != nil {
		setIfEmpty(&s.Instagram.Username, compactLower(first.Sender))
		setIfEmpty(&s.Instagram.Caption, first.Content)
	}
	setIfEmpty(&s.Instagram.Timestamp, defaultInstagramTimestamp)
	return s
}

// discordDefaults seeds the channel. ShowHeader and DarkMode are left as
// they are: nil already renders as true.
func discordDefaults(s project.Settings, _ *project.Message) project.Settings {
	setIfEmpty(&s.Discord.ChannelName, defaultDiscordChannel)
	return s
}
