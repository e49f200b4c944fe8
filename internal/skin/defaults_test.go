package skin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

func johnDoe() *project.Message {
	return &project.Message{ID: "m1", Sender: "John Doe", Content: "Best pancakes in town"}
}

func TestApplyVariant_IsIdempotent(t *testing.T) {
	t.Parallel()

	for _, v := range project.Variants() {
		v := v
		t.Run(string(v), func(t *testing.T) {
			t.Parallel()

			once := ApplyVariant(project.DefaultSettings(), v, johnDoe())
			twice := ApplyVariant(once, v, johnDoe())
			require.Equal(t, once, twice)
		})
	}
}

func TestApplyVariant_TwitterDerivesHandle(t *testing.T) {
	t.Parallel()

	s := ApplyVariant(project.DefaultSettings(), project.VariantTwitter, johnDoe())
	require.Equal(t, "johndoe", s.Twitter.Handle)
	require.Empty(t, s.Twitter.Timestamp)
	require.Equal(t, accentTwitterSender, s.SenderColor)
	require.Equal(t, accentTwitterReceiver, s.ReceiverColor)

	s.Twitter.Handle = "pancakefan"
	again := ApplyVariant(s, project.VariantTwitter, johnDoe())
	require.Equal(t, "pancakefan", again.Twitter.Handle)
}

func TestApplyVariant_DiscordChannel(t *testing.T) {
	t.Parallel()

	s := project.DefaultSettings()
	s.Discord.ChannelName = ""
	s.Discord.ShowHeader = nil

	switched := ApplyVariant(s, project.VariantDiscord, nil)
	require.Equal(t, "general", switched.Discord.ChannelName)
	require.Nil(t, switched.Discord.ShowHeader)
	require.True(t, switched.Discord.HeaderVisible())

	switched.Discord.ChannelName = "memes"
	back := ApplyVariant(switched, project.VariantIOS, nil)
	again := ApplyVariant(back, project.VariantDiscord, nil)
	require.Equal(t, "memes", again.Discord.ChannelName)
}

func TestApplyVariant_GoogleAndInstagramDerivations(t *testing.T) {
	t.Parallel()

	google := ApplyVariant(project.DefaultSettings(), project.VariantGoogle, johnDoe())
	assert.Equal(t, "Best pancakes in town", google.Google.Query)
	assert.Equal(t, accentGoogleSender, google.SenderColor)

	noFirst := ApplyVariant(project.DefaultSettings(), project.VariantGoogle, nil)
	assert.Empty(t, noFirst.Google.Query)

	insta := ApplyVariant(project.DefaultSettings(), project.VariantInstagram, johnDoe())
	assert.Equal(t, "johndoe", insta.Instagram.Username)
	assert.Equal(t, "Best pancakes in town", insta.Instagram.Caption)
	assert.Equal(t, "2 hours ago", insta.Instagram.Timestamp)
}

func TestApplyVariant_PreservesAuthorColors(t *testing.T) {
	t.Parallel()

	s := project.DefaultSettings()
	s.SenderColor = "#123456"

	android := ApplyVariant(s, project.VariantAndroid, nil)
	require.Equal(t, "#123456", android.SenderColor)
	require.Equal(t, accentAndroidReceiver, android.ReceiverColor)
}

func TestApplyVariant_SwapsPlatformAccents(t *testing.T) {
	t.Parallel()

	ios := ApplyVariant(project.Settings{}, project.VariantIOS, nil)
	require.Equal(t, accentIOSSender, ios.SenderColor)

	android := ApplyVariant(ios, project.VariantAndroid, nil)
	require.Equal(t, accentAndroidSender, android.SenderColor)
	require.Equal(t, accentAndroidReceiver, android.ReceiverColor)

	back := ApplyVariant(android, project.VariantIOS, nil)
	require.Equal(t, accentIOSSender, back.SenderColor)
}

func TestApplyVariant_KeepsAuthorColorMatchingAnotherAccent(t *testing.T) {
	t.Parallel()

	s := project.DefaultSettings()
	s.SenderColor = "#FFFFFF"

	note := ApplyVariant(s, project.VariantNote, nil)
	require.Equal(t, "#FFFFFF", note.SenderColor)
	require.Equal(t, "#1d9bf0", note.DerivedSenderColor)

	android := ApplyVariant(note, project.VariantAndroid, nil)
	require.Equal(t, "#FFFFFF", android.SenderColor)
	require.Equal(t, accentAndroidReceiver, android.ReceiverColor)
	require.Equal(t, accentAndroidReceiver, android.DerivedReceiverColor)
}

func TestApplyVariant_RecordsDerivedColors(t *testing.T) {
	t.Parallel()

	twitter := ApplyVariant(project.DefaultSettings(), project.VariantTwitter, nil)
	require.Equal(t, accentTwitterSender, twitter.DerivedSenderColor)
	require.Equal(t, accentTwitterReceiver, twitter.DerivedReceiverColor)

	// an edit after the switch is an author choice, even when it is an accent
	twitter.SenderColor = accentInstaSender
	google := ApplyVariant(twitter, project.VariantGoogle, nil)
	require.Equal(t, accentInstaSender, google.SenderColor)
}

func TestApplyVariant_UnknownOriginFallsBackToAccentTable(t *testing.T) {
	t.Parallel()

	legacy := project.Settings{SenderColor: accentAndroidReceiver, ReceiverColor: "#abcdef"}

	note := ApplyVariant(legacy, project.VariantNote, nil)
	require.Equal(t, accentNoteSender, note.SenderColor)
	require.Equal(t, accentNoteSender, note.DerivedSenderColor)

	ios := ApplyVariant(note, project.VariantIOS, nil)
	require.Equal(t, "#abcdef", ios.ReceiverColor)
	require.Empty(t, ios.DerivedReceiverColor)
}

func TestApplyVariant_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := project.DefaultSettings()
	s.Google.Suggestions = []string{"first"}

	out := ApplyVariant(s, project.VariantGoogle, johnDoe())
	out.Google.Suggestions[0] = "changed"
	*out.Discord.DarkMode = false

	require.Equal(t, "first", s.Google.Suggestions[0])
	require.True(t, *s.Discord.DarkMode)
	require.Empty(t, s.Google.Query)
}

func TestApplyVariant_UnknownVariantReturnsCopy(t *testing.T) {
	t.Parallel()

	s := project.DefaultSettings()
	out := ApplyVariant(s, project.Variant("myspace"), johnDoe())
	require.Equal(t, s, out)
}
