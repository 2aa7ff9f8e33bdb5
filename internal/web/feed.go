package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecetuna/finfeed/internal/rating"
	"github.com/ecetuna/finfeed/internal/snapshot"
	"github.com/ecetuna/finfeed/internal/validate"
	"github.com/ecetuna/finfeed/internal/views"
)

// FeedFragment serves the last polled feed rendering. The fragment is
// rendered for an anonymous viewer; ownership controls come from a
// per-viewer render when the viewer is logged in.
func FeedFragment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s, ok := GetSession(r.Context()); ok {
			posts, err := h.sessionBackend(r).Feed(r.Context())
			if err == nil {
				html, rerr := views.Feed(posts, s.Username)
				if rerr == nil {
					writeFragment(w, html)
					return
				}
			}
			// Fall back to the shared snapshot below.
		}

		html, ok := h.snapshots.Get(snapshot.ViewFeed)
		if !ok {
			writeFragment(w, "")
			return
		}
		writeFragment(w, html)
	}
}

func MarketFragment(h *Handler) http.HandlerFunc {
	return snapshotFragment(h, snapshot.ViewMarket)
}

func CalendarFragment(h *Handler) http.HandlerFunc {
	return snapshotFragment(h, snapshot.ViewCalendar)
}

func snapshotFragment(h *Handler, view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html, ok := h.snapshots.Get(view)
		if !ok {
			writeFragment(w, "")
			return
		}
		writeFragment(w, html)
	}
}

// PostDetailFragment renders the single-post card. The backend has no
// single-post endpoint, so the post is looked up in the feed.
func PostDetailFragment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid post id", http.StatusBadRequest)
			return
		}

		posts, err := h.sessionBackend(r).Feed(r.Context())
		if err != nil {
			writeFailure(w, err, "Gönderi yüklenemedi!")
			return
		}
		for _, p := range posts {
			if p.ID == id {
				html, err := views.PostDetail(p)
				if err != nil {
					http.Error(w, "render error", http.StatusInternalServerError)
					return
				}
				writeFragment(w, html)
				return
			}
		}
		http.NotFound(w, r)
	}
}

func PostCommentsFragment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid post id", http.StatusBadRequest)
			return
		}

		comments, err := h.sessionBackend(r).PostComments(r.Context(), id)
		if err != nil {
			writeFailure(w, err, "Yorumlar yüklenemedi!")
			return
		}

		viewer := ""
		if s, ok := GetSession(r.Context()); ok {
			viewer = s.Username
		}
		html, err := views.PostComments(comments, viewer)
		if err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}
		writeFragment(w, html)
	}
}

type contentRequest struct {
	Content string `json:"content"`
	PostID  int64  `json:"post_id"`
}

// CreatePost rejects whitespace-only content before any backend call.
func CreatePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contentRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := validate.Content(req.Content); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Lütfen bir içerik yazın!"})
			return
		}

		if err := h.sessionBackend(r).CreatePost(r.Context(), req.Content); err != nil {
			writeFailure(w, err, "Gönderi paylaşılamadı!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "feed"})
	}
}

func UpdatePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid post id", http.StatusBadRequest)
			return
		}
		var req contentRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := validate.Content(req.Content); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Lütfen bir içerik yazın!"})
			return
		}

		if err := h.sessionBackend(r).UpdatePost(r.Context(), id, req.Content); err != nil {
			writeFailure(w, err, "Gönderi düzenlenemedi!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "feed"})
	}
}

func DeletePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid post id", http.StatusBadRequest)
			return
		}
		if err := h.sessionBackend(r).DeletePost(r.Context(), id); err != nil {
			writeFailure(w, err, "Gönderi silinemedi!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "feed"})
	}
}

func CreatePostComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contentRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := validate.Content(req.Content); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Lütfen bir yorum yazın!"})
			return
		}

		if err := h.sessionBackend(r).CreatePostComment(r.Context(), req.PostID, req.Content); err != nil {
			writeFailure(w, err, "Yorum paylaşılamadı!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "post-comments"})
	}
}

func DeletePostComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid comment id", http.StatusBadRequest)
			return
		}
		if err := h.sessionBackend(r).DeletePostComment(r.Context(), id); err != nil {
			writeFailure(w, err, "Yorum silinemedi!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "post-comments"})
	}
}

type rateRequest struct {
	Kind   string `json:"kind"`
	ID     int64  `json:"id"`
	Rating int    `json:"rating"`
}

// Rate submits a vote and tells the page which view to re-fetch for the
// new server-side aggregate.
func Rate(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rateRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := validate.Rating(req.Rating); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Geçersiz oy"})
			return
		}

		refresh, err := rating.Submit(r.Context(), h.sessionBackend(r), rating.Kind(req.Kind), req.ID, req.Rating)
		if err != nil {
			writeFailure(w, err, "Oy kullanılamadı!")
			return
		}

		view := ""
		switch refresh {
		case rating.RefreshFeed:
			view = "feed"
		case rating.RefreshPostComments:
			view = "post-comments"
		case rating.RefreshAssetComments:
			view = "asset-comments"
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": view})
	}
}
