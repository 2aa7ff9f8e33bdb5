package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecetuna/finfeed/internal/chart"
	"github.com/ecetuna/finfeed/internal/validate"
	"github.com/ecetuna/finfeed/internal/views"
)

func AssetCommentsFragment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		comments, err := h.sessionBackend(r).AssetComments(r.Context(), symbol)
		if err != nil {
			writeFailure(w, err, "Yorumlar yüklenemedi!")
			return
		}

		viewer := ""
		if s, ok := GetSession(r.Context()); ok {
			viewer = s.Username
		}
		html, err := views.AssetComments(comments, viewer)
		if err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}
		writeFragment(w, html)
	}
}

type assetCommentRequest struct {
	Symbol  string `json:"symbol"`
	Content string `json:"content"`
}

func CreateAssetComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assetCommentRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := validate.Content(req.Content); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Lütfen bir yorum yazın!"})
			return
		}

		if err := h.sessionBackend(r).CreateAssetComment(r.Context(), req.Symbol, req.Content); err != nil {
			writeFailure(w, err, "Yorum paylaşılamadı!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "asset-comments"})
	}
}

func DeleteAssetComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid comment id", http.StatusBadRequest)
			return
		}
		if err := h.sessionBackend(r).DeleteAssetComment(r.Context(), id); err != nil {
			writeFailure(w, err, "Yorum silinemedi!")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "refresh": "asset-comments"})
	}
}

type openChartRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// OpenChart enters the chart state for a symbol and returns the series
// payload for the charting collaborator. The comment thread is fetched by
// the page through its own fragment request.
func OpenChart(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openChartRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		payload, err := h.charts.Open(r.Context(), req.Symbol, req.Name)
		if err != nil {
			writeFailure(w, err, "Grafik yüklenemedi!")
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

type periodRequest struct {
	Period string `json:"period"`
}

func ChangeChartPeriod(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req periodRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		payload, err := h.charts.SetPeriod(r.Context(), req.Period)
		if err != nil {
			if errors.Is(err, chart.ErrUnknownPeriod) || errors.Is(err, chart.ErrNoChart) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeFailure(w, err, "Grafik yüklenemedi!")
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

func ToggleChartVolume(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.charts.ToggleVolume(r.Context())
		if err != nil {
			if errors.Is(err, chart.ErrNoChart) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeFailure(w, err, "Grafik yüklenemedi!")
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

type fullscreenRequest struct {
	Fullscreen bool `json:"fullscreen"`
}

func ResizeChart(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fullscreenRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := h.charts.Resize(req.Fullscreen); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func CloseChart(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.charts.Close()
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
