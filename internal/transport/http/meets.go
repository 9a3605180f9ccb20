package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

func (h *Handlers) CreateMeet(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name            string `json:"name"`
		Location        string `json:"location"`
		City            string `json:"city"`
		State           string `json:"state"`
		Country         string `json:"country"`
		StartDate       string `json:"start_date"`
		EndDate         string `json:"end_date"`
		Course          string `json:"course"`
		Lanes           int    `json:"lanes"`
		Indoor          bool   `json:"indoor"`
		SanctioningBody string `json:"sanctioning_body"`
		Type            string `json:"meet_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	start, err := parseDate(payload.StartDate)
	if err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDatePtr(payload.EndDate)
	if err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "end_date must be YYYY-MM-DD")
		return
	}
	m := domain.Meet{
		Name:            payload.Name,
		Location:        payload.Location,
		City:            payload.City,
		State:           payload.State,
		Country:         payload.Country,
		StartDate:       start,
		EndDate:         end,
		Course:          domain.Course(payload.Course),
		Lanes:           payload.Lanes,
		Indoor:          payload.Indoor,
		SanctioningBody: payload.SanctioningBody,
		Type:            domain.MeetType(payload.Type),
	}
	if m.Lanes == 0 {
		m.Lanes = 8
	}
	if err := m.Validate(); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	created, err := h.Repo.CreateMeet(r.Context(), m)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetMeet(w http.ResponseWriter, r *http.Request) {
	m, err := h.Repo.GetMeet(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) UpdateMeet(w http.ResponseWriter, r *http.Request) {
	m, err := h.Repo.GetMeet(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	var payload struct {
		Name            *string `json:"name"`
		Location        *string `json:"location"`
		City            *string `json:"city"`
		State           *string `json:"state"`
		Country         *string `json:"country"`
		StartDate       *string `json:"start_date"`
		EndDate         *string `json:"end_date"`
		Course          *string `json:"course"`
		Lanes           *int    `json:"lanes"`
		Indoor          *bool   `json:"indoor"`
		SanctioningBody *string `json:"sanctioning_body"`
		Type            *string `json:"meet_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Name != nil {
		m.Name = *payload.Name
	}
	if payload.Location != nil {
		m.Location = *payload.Location
	}
	if payload.City != nil {
		m.City = *payload.City
	}
	if payload.State != nil {
		m.State = *payload.State
	}
	if payload.Country != nil {
		m.Country = *payload.Country
	}
	if payload.StartDate != nil {
		start, err := parseDate(*payload.StartDate)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "start_date must be YYYY-MM-DD")
			return
		}
		m.StartDate = start
	}
	if payload.EndDate != nil {
		end, err := parseDatePtr(*payload.EndDate)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "end_date must be YYYY-MM-DD")
			return
		}
		m.EndDate = end
	}
	if payload.Course != nil {
		m.Course = domain.Course(*payload.Course)
	}
	if payload.Lanes != nil {
		m.Lanes = *payload.Lanes
	}
	if payload.Indoor != nil {
		m.Indoor = *payload.Indoor
	}
	if payload.SanctioningBody != nil {
		m.SanctioningBody = *payload.SanctioningBody
	}
	if payload.Type != nil {
		m.Type = domain.MeetType(*payload.Type)
	}
	if err := m.Validate(); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	updated, err := h.Repo.UpdateMeet(r.Context(), m)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteMeet(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteMeet(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SearchMeets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.MeetFilter{
		Course: domain.Course(q.Get("course")),
		Type:   domain.MeetType(q.Get("meet_type")),
	}
	var err error
	if f.StartFrom, err = parseDatePtr(q.Get("from")); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "from must be YYYY-MM-DD")
		return
	}
	if f.StartTo, err = parseDatePtr(q.Get("to")); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "to must be YYYY-MM-DD")
		return
	}
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	f.Offset, _ = strconv.Atoi(q.Get("offset"))
	meets, err := h.Repo.SearchMeets(r.Context(), f)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"meets": meets})
}

func (h *Handlers) AddMeetTeam(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TeamID string `json:"team_id"`
		IsHost bool   `json:"is_host"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	mt, err := h.Repo.AddMeetTeam(r.Context(), domain.MeetTeam{
		MeetID: mux.Vars(r)["id"],
		TeamID: payload.TeamID,
		IsHost: payload.IsHost,
	})
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mt)
}

func (h *Handlers) RemoveMeetTeam(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Repo.RemoveMeetTeam(r.Context(), vars["id"], vars["teamID"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListMeetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Repo.ListMeetTeams(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}
