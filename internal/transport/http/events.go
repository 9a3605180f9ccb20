package http

import (
	"encoding/json"
	"net/http"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
)

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Repo.ListEvents(r.Context())
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

// CreateEvent is find-or-create: the (stroke, distance, course) triple is
// unique and callers get the existing row back when it is already known.
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Stroke   string `json:"stroke"`
		Distance int    `json:"distance"`
		Course   string `json:"course"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	e := domain.Event{
		Stroke:   domain.Stroke(payload.Stroke),
		Distance: payload.Distance,
		Course:   domain.Course(payload.Course),
	}
	if err := e.Validate(); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	created, err := h.Repo.FindOrCreateEvent(r.Context(), e)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
