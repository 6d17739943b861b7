package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/Vovarama1992/voice_converter/internal/converter"
	"github.com/Vovarama1992/voice_converter/internal/session"
)

type SessionHandler struct {
	store   *session.Store
	settler *Settler
	log     *logger.ZapLogger
}

func NewSessionHandler(store *session.Store, settler *Settler, log *logger.ZapLogger) *SessionHandler {
	return &SessionHandler{store: store, settler: settler, log: log}
}

// POST /sessions
// body (необязательно): { "active_text": "...", "passive_text": "..." }
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var st converter.State
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, h.store.Create(st))
}

// GET /sessions/{session_id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Get(chi.URLParam(r, "session_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// PUT /sessions/{session_id}
// body: { "active_text": "...", "passive_text": "..." }
func (h *SessionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var st converter.State
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.store.Edit(chi.URLParam(r, "session_id"), st)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// POST /sessions/{session_id}/clear
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Clear(chi.URLParam(r, "session_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// POST /sessions/{session_id}/convert
func (h *SessionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	snap, out, err := h.store.Convert(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	requestID := h.settler.Settle(r.Context(), id, out)

	writeJSON(w, http.StatusOK, map[string]any{
		"request_id": requestID,
		"session":    snap,
		"outcome":    out,
	})
}

func (h *SessionHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.log.Log(logger.LogEntry{Level: "error", Message: "session error", Service: "delivery", Error: err})
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
