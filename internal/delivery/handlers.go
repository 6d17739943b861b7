package delivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/rs/xid"

	"github.com/Vovarama1992/voice_converter/internal/converter"
	notificator "github.com/Vovarama1992/voice_converter/internal/error_notificator"
	"github.com/Vovarama1992/voice_converter/internal/history"
	"github.com/Vovarama1992/voice_converter/internal/voice"
)

// Settler — общий хвост любой конвертации: история + уведомление админу
type Settler struct {
	history  *history.Service
	notifier *notificator.Service
	log      *logger.ZapLogger
}

func NewSettler(hist *history.Service, n *notificator.Service, log *logger.ZapLogger) *Settler {
	return &Settler{history: hist, notifier: n, log: log}
}

func (s *Settler) Settle(ctx context.Context, sessionID string, out converter.Outcome) string {
	if out.Kind == converter.OutcomeSkipped {
		return ""
	}
	requestID := xid.New().String()

	if _, err := s.history.Record(ctx, requestID, sessionID, out); err != nil {
		s.log.Log(logger.LogEntry{Level: "error", Message: "history write failed", Service: "delivery", Error: err})
	}

	if out.Kind == converter.OutcomeFailure {
		go func() {
			if err := s.notifier.NotifyOutcome(context.Background(), requestID, out); err != nil {
				s.log.Log(logger.LogEntry{Level: "warn", Message: "admin notify failed", Service: "delivery", Error: err})
			}
		}()
	}
	return requestID
}

type ConvertHandler struct {
	newOrch func() *converter.Orchestrator
	settler *Settler
	log     *logger.ZapLogger
}

func NewConvertHandler(newOrch func() *converter.Orchestrator, settler *Settler, log *logger.ZapLogger) *ConvertHandler {
	return &ConvertHandler{
		newOrch: newOrch,
		settler: settler,
		log:     log,
	}
}

type convertResponse struct {
	RequestID  string            `json:"request_id,omitempty"`
	State      converter.State   `json:"state"`
	HasContent bool              `json:"has_content"`
	Loading    bool              `json:"loading"`
	Outcome    converter.Outcome `json:"outcome"`
}

// POST /convert
// body: { "active_text": "...", "passive_text": "..." }
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var st converter.State
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid json", Service: "delivery", Error: err})
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	orch := h.newOrch()
	next, out := orch.Convert(r.Context(), st)
	requestID := h.settler.Settle(r.Context(), "", out)

	writeJSON(w, http.StatusOK, convertResponse{
		RequestID:  requestID,
		State:      next,
		HasContent: next.HasContent(),
		Loading:    orch.Loading(),
		Outcome:    out,
	})
}

// POST /classify
// body: { "text": "The letter was sent by John" }
func (h *ConvertHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	label := voice.Classify(body.Text)
	writeJSON(w, http.StatusOK, map[string]any{
		"label":     label,
		"direction": voice.DirectionFor(label),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
