package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/Vovarama1992/voice_converter/internal/history"
)

type HistoryHandler struct {
	history *history.Service
	log     *logger.ZapLogger
}

func NewHistoryHandler(hist *history.Service, log *logger.ZapLogger) *HistoryHandler {
	return &HistoryHandler{history: hist, log: log}
}

type historyItem struct {
	history.Record
	Age string `json:"age"`
}

// GET /history?limit=20
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	recs, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "db error", Service: "delivery", Error: err})
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]historyItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, historyItem{Record: rec, Age: humanize.Time(rec.CreatedAt)})
	}
	writeJSON(w, http.StatusOK, out)
}
