package web

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ecetuna/finfeed/internal/snapshot"
)

type pageData struct {
	LoggedIn bool
	Username string
	Avatar   string
	Calendar template.HTML
	Market   template.HTML
	Feed     template.HTML
}

// The shell is server-rendered with the current snapshots so the first
// paint is never empty; the page script keeps the containers fresh from
// the fragment endpoints afterwards.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>FinFeed</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header class="topbar">
<div class="brand">📈 FinFeed</div>
<nav id="nav-links"{{if not .LoggedIn}} hidden{{end}}>
<a href="#" class="nav-link active" data-section="market">Piyasa</a>
<a href="#" class="nav-link" data-section="feed">Akış</a>
<a href="#" class="nav-link" data-section="profile">Profil</a>
</nav>
<div id="auth-ui"{{if .LoggedIn}} hidden{{end}}>
<button data-action="open-auth" data-mode="login">Giriş Yap</button>
<button data-action="open-auth" data-mode="reg">Kaydol</button>
</div>
<div id="user-ui"{{if not .LoggedIn}} hidden{{end}}>
<span id="user-avatar">{{.Avatar}}</span>
<span id="user-name">@{{.Username}}</span>
<button data-action="logout">Çıkış</button>
</div>
</header>
<main>
<section id="calendar-section">
<h2>📅 Ekonomik Takvim</h2>
<div id="economic-calendar">{{.Calendar}}</div>
</section>
<section id="market-section" class="section active">
<h2>💹 Piyasa</h2>
<div id="market-list">{{.Market}}</div>
</section>
<section id="feed-section" class="section">
<h2>🌍 Akış</h2>
<div id="post-box"{{if not .LoggedIn}} hidden{{end}}>
<textarea id="post-input" placeholder="Ne düşünüyorsun?"></textarea>
<button data-action="submit-post">Paylaş</button>
</div>
<div id="global-feed">{{.Feed}}</div>
</section>
<section id="profile-section" class="section">
<div id="profile-pane"></div>
</section>
</main>
<div id="asset-modal" class="modal" hidden>
<div id="chart-modal-box">
<div class="modal-header">
<span id="modal-title"></span>
<button data-action="toggle-fullscreen">⛶</button>
<button data-action="toggle-volume" id="volume-toggle">📊 Hacim: Açık</button>
<button data-action="close-asset">✕</button>
</div>
<div class="period-buttons">
<button class="period-btn active" data-period="daily">Günlük</button>
<button class="period-btn" data-period="weekly">Haftalık</button>
<button class="period-btn" data-period="monthly">Aylık</button>
</div>
<div id="candlestick-chart-container"></div>
<div id="comment-box"{{if not .LoggedIn}} hidden{{end}}>
<textarea id="comment-input" placeholder="Yorumunu yaz..."></textarea>
<button data-action="submit-asset-comment">Gönder</button>
</div>
<div id="comments-list"></div>
</div>
</div>
<div id="post-modal" class="modal" hidden>
<div class="modal-box">
<button data-action="close-post">✕</button>
<div id="post-detail-content"></div>
<div id="post-comment-box"{{if not .LoggedIn}} hidden{{end}}>
<textarea id="post-comment-input" placeholder="Yorumunu yaz..."></textarea>
<button data-action="submit-post-comment">Gönder</button>
</div>
<div id="post-comments-list"></div>
</div>
</div>
<div id="profile-edit-modal" class="modal" hidden>
<div class="modal-box">
<div class="modal-header">
<h3>Profili Düzenle</h3>
<button data-action="close-profile-edit">✕</button>
</div>
<textarea id="pe-bio" placeholder="Kendinden bahset..."></textarea>
<div class="avatar-picker">
<button class="avatar-option" data-action="pick-avatar" data-avatar="🦊">🦊</button>
<button class="avatar-option" data-action="pick-avatar" data-avatar="🐱">🐱</button>
<button class="avatar-option" data-action="pick-avatar" data-avatar="🐼">🐼</button>
<button class="avatar-option" data-action="pick-avatar" data-avatar="🦁">🦁</button>
<button class="avatar-option" data-action="pick-avatar" data-avatar="🚀">🚀</button>
<button class="avatar-option" data-action="pick-avatar" data-avatar="📈">📈</button>
</div>
<input id="pe-image" type="file" accept="image/*">
<button class="mini-btn" data-action="remove-image">Fotoğrafı kaldır</button>
<button data-action="save-profile">Kaydet</button>
</div>
</div>
<div id="auth-modal" class="modal" hidden>
<div class="modal-box">
<h3 id="auth-title"></h3>
<div id="reg-fields" hidden><input id="af-fn" placeholder="Ad Soyad"></div>
<input id="af-un" placeholder="Kullanıcı adı">
<input id="af-ps" type="password" placeholder="Şifre">
<button id="af-btn"></button>
</div>
</div>
<script src="https://unpkg.com/lightweight-charts@4.1.3/dist/lightweight-charts.standalone.production.js"></script>
<script src="/static/charts.js"></script>
<script src="/static/app.js"></script>
</body>
</html>
`))

func Index(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{}

		if _, ok := GetSession(r.Context()); ok {
			who, err := h.sessionBackend(r).CheckSession(r.Context())
			if err != nil {
				log.Error().Err(err).Msg("session check failed")
			} else if who.LoggedIn {
				data.LoggedIn = true
				data.Username = who.Username
				data.Avatar = who.Avatar
			}
		}

		data.Calendar, _ = h.snapshots.Get(snapshot.ViewCalendar)
		data.Market, _ = h.snapshots.Get(snapshot.ViewMarket)
		data.Feed, _ = h.snapshots.Get(snapshot.ViewFeed)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			log.Error().Err(err).Msg("page render failed")
		}
	}
}
