package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ecetuna/finfeed/internal/api"
)

// Session key names inside the cookie session.
const (
	sessionToken    = "backend_token"
	sessionUsername = "username"
	sessionAvatar   = "avatar"
)

// failurePrefix marks auth errors shown in the modal.
const failurePrefix = "❌ "

type Session struct {
	Token    string
	Username string
	Avatar   string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

// SessionMiddleware loads the stored backend session into the request
// context. An absent or empty session just means an anonymous request.
func SessionMiddleware(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := h.SessionManager.Load(r)
			token, err := session.GetString(sessionToken)
			if err == nil && token != "" {
				username, _ := session.GetString(sessionUsername)
				avatar, _ := session.GetString(sessionAvatar)
				ctx := context.WithValue(r.Context(), key{}, Session{
					Token:    token,
					Username: username,
					Avatar:   avatar,
				})
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

type authRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login proxies the credentials to the backend. On a domain error the
// modal stays open and shows the backend's text behind the failure marker;
// on success the page reloads into the authenticated state.
func Login(h *Handler) http.HandlerFunc {
	return h.authenticate(false)
}

func Register(h *Handler) http.HandlerFunc {
	return h.authenticate(true)
}

func (h *Handler) authenticate(register bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req authRequest
		if err := decodeBody(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": failurePrefix + "Geçersiz istek"})
			return
		}

		var token string
		var err error
		if register {
			token, err = h.backend.Register(ctx, req.FullName, req.Username, req.Password)
		} else {
			token, err = h.backend.Login(ctx, req.FullName, req.Username, req.Password)
		}
		if err != nil {
			writeAuthFailure(w, err)
			return
		}

		// The backend told us who we are; record it next to the token.
		who, err := h.backend.WithSession(token).CheckSession(ctx)
		if err != nil || !who.LoggedIn {
			log.Error().Err(err).Msg("session check after login failed")
			writeAuthFailure(w, err)
			return
		}

		session := h.SessionManager.Load(r)
		if err := session.PutString(w, sessionToken, token); err != nil {
			log.Error().Err(err).Msg("failed to persist session")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": failurePrefix + "Oturum açılamadı"})
			return
		}
		session.PutString(w, sessionUsername, who.Username)
		session.PutString(w, sessionAvatar, who.Avatar)

		writeJSON(w, http.StatusOK, map[string]any{"success": true, "reload": true})
	}
}

func writeAuthFailure(w http.ResponseWriter, err error) {
	msg := "Bağlantı hatası!"
	status := http.StatusBadGateway
	if err != nil && api.IsRemote(err) {
		msg = err.Error()
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]string{"error": failurePrefix + msg})
}

func Logout(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.sessionBackend(r).Logout(r.Context()); err != nil {
			log.Error().Err(err).Msg("backend logout failed")
		}

		session := h.SessionManager.Load(r)
		if err := session.Destroy(w); err != nil {
			log.Error().Err(err).Msg("session destroy failed")
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "reload": true})
	}
}

// CheckSession is the bootstrap call the page makes once on load.
func CheckSession(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); !ok {
			writeJSON(w, http.StatusOK, map[string]any{"logged_in": false})
			return
		}

		who, err := h.sessionBackend(r).CheckSession(r.Context())
		if err != nil {
			// Bootstrap errors are logged only; the page stays logged out.
			log.Error().Err(err).Msg("session check failed")
			writeJSON(w, http.StatusOK, map[string]any{"logged_in": false})
			return
		}
		if !who.LoggedIn {
			writeJSON(w, http.StatusOK, map[string]any{"logged_in": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"logged_in": true,
			"username":  who.Username,
			"avatar":    who.Avatar,
		})
	}
}
