package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

func (h *Handlers) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name            string `json:"name"`
		Type            string `json:"team_type"`
		SanctioningBody string `json:"sanctioning_body"`
		LSC             string `json:"lsc"`
		Division        string `json:"division"`
		State           string `json:"state"`
		Country         string `json:"country"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	t := domain.Team{
		Name:            payload.Name,
		Type:            domain.TeamType(payload.Type),
		SanctioningBody: payload.SanctioningBody,
		LSC:             payload.LSC,
		Division:        payload.Division,
		State:           payload.State,
		Country:         payload.Country,
	}
	if t.Name == "" || !t.Type.Valid() {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "name and a valid team_type required")
		return
	}
	created, err := h.Repo.CreateTeam(r.Context(), t)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.GetTeam(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handlers) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.GetTeam(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	var payload struct {
		Name            *string `json:"name"`
		Type            *string `json:"team_type"`
		SanctioningBody *string `json:"sanctioning_body"`
		LSC             *string `json:"lsc"`
		Division        *string `json:"division"`
		State           *string `json:"state"`
		Country         *string `json:"country"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Name != nil {
		t.Name = *payload.Name
	}
	if payload.Type != nil {
		t.Type = domain.TeamType(*payload.Type)
		if !t.Type.Valid() {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "unknown team_type")
			return
		}
	}
	if payload.SanctioningBody != nil {
		t.SanctioningBody = *payload.SanctioningBody
	}
	if payload.LSC != nil {
		t.LSC = *payload.LSC
	}
	if payload.Division != nil {
		t.Division = *payload.Division
	}
	if payload.State != nil {
		t.State = *payload.State
	}
	if payload.Country != nil {
		t.Country = *payload.Country
	}
	updated, err := h.Repo.UpdateTeam(r.Context(), t)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteTeam(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SearchTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.TeamFilter{
		Type:            domain.TeamType(q.Get("team_type")),
		LSC:             q.Get("lsc"),
		SanctioningBody: q.Get("sanctioning_body"),
	}
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	f.Offset, _ = strconv.Atoi(q.Get("offset"))
	teams, err := h.Repo.SearchTeams(r.Context(), f)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}
