package skin

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

const instagramMarkup = `{{define "instagram"}}` +
	`<div class="chat insta">` +
	`<div class="inst"><div class="instBody">` +
	`<div class="instHead">` +
	`{{if .Avatar}}<img class="instAvatar" src="{{.Avatar}}" alt="{{.UserAlt}} avatar"/>{{end}}` +
	`<span class="instUser">{{.User}}</span>` +
	`{{if .Location}}<span class="instLocation">{{.Location}}</span>{{end}}` +
	`</div>` +
	`{{if .Image}}<img class="instImage" src="{{.Image}}" alt="Post image"/>{{end}}` +
	`<div class="instText">` +
	`{{if .Likes}}<span class="likes"><b>{{.Likes}}</b> likes</span><br/>{{end}}` +
	`<b>{{.User}}</b> {{.Caption}}` +
	`</div>` +
	`{{if .Comments}}<span class="comments-link">View all {{.Comments}} comments</span>{{end}}` +
	`{{if .Timestamp}}<span class="instTimestamp">{{.Timestamp}}</span>{{end}}` +
	`</div></div>` +
	`{{template "watermark" .Watermark}}` +
	`</div>` +
	`{{end}}`

const defaultInstagramUser = "user"

type instagramView struct {
	Avatar    string
	UserAlt   string
	User      template.HTML
	Location  template.HTML
	Image     string
	Likes     string
	Caption   template.HTML
	Comments  string
	Timestamp template.HTML
	Watermark bool
}

// instagramHTML renders a single post from the instagram settings, falling
// back to the first message for the user, caption, avatar and image.
func instagramHTML(in Input) (string, error) {
	is := in.Settings.Instagram

	var first project.Message
	if len(in.Messages) > 0 {
		first = in.Messages[0]
	}
	firstImage := ""
	if len(first.Attachments) > 0 {
		firstImage = first.Attachments[0].URL
	}

	user := firstNonEmpty(is.Username, first.Sender, defaultInstagramUser)
	view := instagramView{
		Avatar:    strings.TrimSpace(firstNonEmpty(is.AvatarURL, first.AvatarURL)),
		UserAlt:   user,
		User:      safe(in.Clean, user),
		Location:  safe(in.Clean, is.Location),
		Image:     strings.TrimSpace(firstNonEmpty(is.ImageURL, firstImage)),
		Caption:   safe(in.Clean, firstNonEmpty(is.Caption, first.Content)),
		Timestamp: safe(in.Clean, is.Timestamp),
		Watermark: in.Settings.Watermark,
	}
	if is.ShowLikes {
		view.Likes = strconv.Itoa(is.Likes)
	}
	if is.ShowComments && is.CommentsCount > 0 {
		view.Comments = strconv.Itoa(is.CommentsCount)
	}

	return execute("instagram", view)
}
