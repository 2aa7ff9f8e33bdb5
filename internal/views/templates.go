package views

import "html/template"

// The fragments mirror the page markup the stylesheet targets. Actions are
// wired through data attributes picked up by the page script, never through
// inline handlers built from user content.
var fragments = template.Must(template.New("fragments").Parse(`
{{define "placeholder"}}<p class="placeholder">{{.}}</p>{{end}}

{{define "stars"}}<div class="star-rating" data-kind="{{.Kind}}" data-id="{{.ID}}" data-avg="{{.Avg}}" data-fill="{{.Fill}}" data-count="{{.Count}}">
{{- range .Stars}}<span class="star{{if .Filled}} filled{{end}}" data-star="{{.Pos}}" title="⭐ {{.Pos}} yıldız ver">★</span>{{end -}}
<span class="rating-count">({{.Summary}})</span>
</div>{{end}}

{{define "post"}}<div class="post" data-post="{{.ID}}">
{{- if .Owner}}
<div class="post-actions">
<button class="mini-btn" data-action="edit-post" data-id="{{.ID}}" title="Düzenle">✏️</button>
<button class="mini-btn delete-btn" data-action="delete-post" data-id="{{.ID}}" title="Sil">🗑️</button>
</div>
{{- end}}
<div class="post-header">
<div class="post-avatar">{{.Avatar}}</div>
<div class="post-user"><b>@{{.User}}</b><div class="post-time">{{.Timestamp}}</div></div>
</div>
<p class="post-content">{{.Content}}</p>
<div class="post-stats">
<div>💬 {{.CommentCount}} yorum</div>
{{template "stars" .Rating}}
</div>
</div>{{end}}

{{define "feed"}}{{range .}}{{template "post" .}}{{end}}{{end}}

{{define "post-detail"}}{{template "post" .}}{{end}}

{{define "comment"}}<div class="comment" data-comment="{{.ID}}">
<div class="comment-avatar">{{.Avatar}}</div>
<div class="comment-body">
<div class="comment-header">
<b>@{{.Username}}</b>
<span class="comment-time">{{.Timestamp}}</span>
{{- if .Owner}}
<button class="mini-btn delete-btn" data-action="delete-comment" data-kind="{{.Rating.Kind}}" data-id="{{.ID}}" title="Sil">🗑️</button>
{{- end}}
</div>
<p class="comment-content">{{.Content}}</p>
{{template "stars" .Rating}}
</div>
</div>{{end}}

{{define "comments"}}{{range .}}{{template "comment" .}}{{end}}{{end}}

{{define "market"}}{{range .}}<div class="card clickable" data-action="open-asset" data-symbol="{{.Symbol}}" data-name="{{.Name}}">
<div class="card-logo">{{.Logo}}</div>
<div class="card-name">{{.Name}}</div>
<div class="price">{{.Value}}</div>
</div>
{{end}}{{end}}

{{define "calendar"}}{{range .}}<div class="economic-card" style="border-color: {{.Color}};">
<div class="economic-icon">{{.Icon}}</div>
<div class="economic-name">{{.Name}}</div>
<div class="economic-value" style="color: {{.Color}};">{{.Current}}</div>
<div class="economic-date">📅 {{.Next}}</div>
<div class="economic-description">{{.Description}}</div>
</div>
{{end}}{{end}}

{{define "profile"}}<div class="profile-header">
<div class="profile-avatar">{{if .ProfileImage}}<img src="{{.ProfileImage}}" alt="Profile">{{else}}{{.Avatar}}{{end}}</div>
<div class="profile-names">
<h2>@{{.Username}}</h2>
<div class="profile-fullname">{{.FullName}}</div>
{{if .Bio}}<p class="profile-bio">{{.Bio}}</p>{{end}}
</div>
{{if .Owner}}<button class="mini-btn" data-action="edit-profile" title="Profili düzenle">✏️</button>{{end}}
</div>
<div class="profile-stats">
<div>{{.TotalPosts}} gönderi</div>
<div>{{.TotalComments}} yorum</div>
<div>{{.JoinedYear}} yılından beri üye</div>
</div>
<div class="profile-posts">
{{- if .Posts}}{{range .Posts}}{{template "post" .}}{{end}}{{else}}{{template "placeholder" "` + EmptyProfilePosts + `"}}{{end}}
</div>{{end}}
`))
