package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	ctx := r.Context()
	roster, err := h.Roster.ListActivities(ctx)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(roster)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	activityName, err := parseActivityName(chi.URLParam(r, "activityName"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Roster.Signup(ctx, activityName, email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	activityName, err := parseActivityName(chi.URLParam(r, "activityName"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Roster.Unregister(ctx, activityName, email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
