package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	r.Use(SessionMiddleware(h))

	r.Get("/", Index(h))
	r.Get("/session", CheckSession(h))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", Login(h))
		r.Post("/register", Register(h))
		r.Post("/logout", Logout(h))
	})

	r.Route("/fragment", func(r chi.Router) {
		r.Get("/feed", FeedFragment(h))
		r.Get("/market", MarketFragment(h))
		r.Get("/calendar", CalendarFragment(h))
		r.Get("/post/{id}", PostDetailFragment(h))
		r.Get("/post-comments/{id}", PostCommentsFragment(h))
		r.Get("/asset-comments/{symbol}", AssetCommentsFragment(h))
		r.Get("/profile", ProfileFragment(h))
		r.Get("/profile/{name}", ProfileFragment(h))
	})

	r.Route("/post", func(r chi.Router) {
		r.Post("/", CreatePost(h))
		r.Put("/{id}", UpdatePost(h))
		r.Delete("/{id}", DeletePost(h))
	})

	r.Route("/post-comment", func(r chi.Router) {
		r.Post("/", CreatePostComment(h))
		r.Delete("/{id}", DeletePostComment(h))
	})

	r.Route("/asset-comment", func(r chi.Router) {
		r.Post("/", CreateAssetComment(h))
		r.Delete("/{id}", DeleteAssetComment(h))
	})

	r.Post("/rate", Rate(h))
	r.Post("/profile/update", UpdateProfile(h))

	r.Route("/chart", func(r chi.Router) {
		r.Post("/open", OpenChart(h))
		r.Post("/period", ChangeChartPeriod(h))
		r.Post("/volume", ToggleChartVolume(h))
		r.Post("/resize", ResizeChart(h))
		r.Post("/close", CloseChart(h))
	})

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	wd, _ := os.Getwd()
	wd = filepath.Join(wd, h.Config.StaticDir)
	f := os.DirFS(wd)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}
