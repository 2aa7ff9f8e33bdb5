package web

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/alexedwards/scs"
	"github.com/rs/zerolog/log"

	"github.com/ecetuna/finfeed/internal/api"
	"github.com/ecetuna/finfeed/internal/chart"
	"github.com/ecetuna/finfeed/internal/config"
	"github.com/ecetuna/finfeed/internal/snapshot"
	"github.com/ecetuna/finfeed/internal/state"
)

type Handler struct {
	Config         *config.Configuration
	SessionManager *scs.Manager

	backend   api.Backend
	snapshots *snapshot.Store
	charts    *chart.Controller
}

func New(st *state.State, charts *chart.Controller, manager *scs.Manager) Handler {
	return Handler{
		Config:         &st.Config,
		SessionManager: manager,
		backend:        st.Backend,
		snapshots:      st.Snapshots,
		charts:         charts,
	}
}

// sessionBackend returns the backend view bound to the requester's backend
// session cookie, or the anonymous view.
func (h *Handler) sessionBackend(r *http.Request) api.Backend {
	s, ok := GetSession(r.Context())
	if !ok {
		return h.backend
	}
	return h.backend.WithSession(s.Token)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("response encoding failed")
	}
}

// writeFailure maps the two error tiers onto the JSON shape the page script
// turns into an alert. Domain errors carry the backend's own text;
// transport failures get the generic fallback so internals do not leak.
func writeFailure(w http.ResponseWriter, err error, fallback string) {
	if api.IsRemote(err) {
		writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}
	log.Error().Err(err).Msg("backend call failed")
	writeJSON(w, http.StatusBadGateway, map[string]string{"error": fallback})
}

func writeFragment(w http.ResponseWriter, html template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
