package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"activity-signup-service/internal/service"
)

type Handler struct {
	Roster    *service.RosterService
	Log       *slog.Logger
	StaticDir string
}

func NewHandler(roster *service.RosterService, log *slog.Logger, staticDir string) *Handler {
	return &Handler{
		Roster:    roster,
		Log:       log,
		StaticDir: staticDir,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Статический фронтенд ходит в JSON API с другого origin при локальной разработке
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", h.handleHealth)
	r.Get("/", h.handleRoot)
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(h.StaticDir))))

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{activityName}/signup", h.handleSignup)
		r.Delete("/{activityName}/unregister", h.handleUnregister)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{Detail: appErr.Message}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
