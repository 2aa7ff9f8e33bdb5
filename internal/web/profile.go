package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecetuna/finfeed/internal/domain"
	"github.com/ecetuna/finfeed/internal/validate"
	"github.com/ecetuna/finfeed/internal/views"
)

// ProfileFragment renders a user's profile pane. Without a name parameter
// it falls back to the viewer's own profile.
func ProfileFragment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "name")
		viewer := ""
		if s, ok := GetSession(r.Context()); ok {
			viewer = s.Username
		}
		if username == "" {
			username = viewer
		}
		if username == "" {
			http.Error(w, "no profile", http.StatusBadRequest)
			return
		}

		profile, err := h.sessionBackend(r).Profile(r.Context(), username)
		if err != nil {
			writeFailure(w, err, "Profil yüklenemedi!")
			return
		}

		html, err := views.Profile(profile, viewer)
		if err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}
		writeFragment(w, html)
	}
}

// UpdateProfile validates the edit buffer and forwards it. An uploaded
// image wins over the avatar emoji; picking an emoji clears a previously
// uploaded image.
func UpdateProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProfileUpdate
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if req.ProfileImage != "" {
			if err := validate.Image(req.ProfileImage); err != nil {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": imageError(err)})
				return
			}
			req.Avatar = ""
		} else if req.Avatar != "" {
			req.RemoveImage = true
		}

		if err := h.sessionBackend(r).UpdateProfile(r.Context(), req); err != nil {
			writeFailure(w, err, "Profil güncellenemedi!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "profile"})
	}
}

func imageError(err error) string {
	switch err {
	case validate.ErrImageTooBig:
		return "Fotoğraf boyutu 2MB'dan küçük olmalı!"
	default:
		return "Lütfen geçerli bir resim dosyası seçin!"
	}
}
