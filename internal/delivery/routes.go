package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hConv *ConvertHandler,
	hSess *SessionHandler,
	hHist *HistoryHandler,
	adminToken string,
) {
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("pong"))
		})

		// --- без состояния ---
		pr.Post("/classify", hConv.Classify)
		pr.Post("/convert", hConv.Convert)

		// --- сессии ---
		pr.Post("/sessions", hSess.Create)
		pr.Get("/sessions/{session_id}", hSess.Get)
		pr.Put("/sessions/{session_id}", hSess.Edit)
		pr.Post("/sessions/{session_id}/clear", hSess.Clear)
		pr.Post("/sessions/{session_id}/convert", hSess.Convert)

		// --- админка ---
		pr.With(AdminMiddleware(adminToken)).Get("/history", hHist.List)
	})
}
