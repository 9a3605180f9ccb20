package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

func (h *Handlers) CreateSwimmer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		DateOfBirth   string `json:"date_of_birth"`
		Gender        string `json:"gender"`
		UserID        string `json:"user_id"`
		USASwimmingID string `json:"usa_swimming_id"`
		SwimcloudURL  string `json:"swimcloud_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	dob, err := parseDate(payload.DateOfBirth)
	if err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "date_of_birth must be YYYY-MM-DD")
		return
	}
	s := domain.Swimmer{
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		DateOfBirth:   dob,
		Gender:        domain.Gender(payload.Gender),
		UserID:        payload.UserID,
		USASwimmingID: payload.USASwimmingID,
		SwimcloudURL:  payload.SwimcloudURL,
	}
	if s.FirstName == "" || s.LastName == "" || !s.Gender.Valid() {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "first_name, last_name and gender (M/F) required")
		return
	}
	created, err := h.Repo.CreateSwimmer(r.Context(), s)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetSwimmer(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.GetSwimmer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handlers) UpdateSwimmer(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.GetSwimmer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	var payload struct {
		FirstName     *string `json:"first_name"`
		LastName      *string `json:"last_name"`
		DateOfBirth   *string `json:"date_of_birth"`
		Gender        *string `json:"gender"`
		UserID        *string `json:"user_id"`
		USASwimmingID *string `json:"usa_swimming_id"`
		SwimcloudURL  *string `json:"swimcloud_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.FirstName != nil {
		s.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		s.LastName = *payload.LastName
	}
	if payload.DateOfBirth != nil {
		dob, err := parseDate(*payload.DateOfBirth)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "date_of_birth must be YYYY-MM-DD")
			return
		}
		s.DateOfBirth = dob
	}
	if payload.Gender != nil {
		s.Gender = domain.Gender(*payload.Gender)
		if !s.Gender.Valid() {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "gender must be M or F")
			return
		}
	}
	if payload.UserID != nil {
		s.UserID = *payload.UserID
	}
	if payload.USASwimmingID != nil {
		s.USASwimmingID = *payload.USASwimmingID
	}
	if payload.SwimcloudURL != nil {
		s.SwimcloudURL = *payload.SwimcloudURL
	}
	updated, err := h.Repo.UpdateSwimmer(r.Context(), s)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteSwimmer(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteSwimmer(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SearchSwimmers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.SwimmerFilter{
		Gender: domain.Gender(q.Get("gender")),
		TeamID: q.Get("team_id"),
		Name:   q.Get("name"),
	}
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	f.Offset, _ = strconv.Atoi(q.Get("offset"))
	swimmers, err := h.Repo.SearchSwimmers(r.Context(), f)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"swimmers": swimmers})
}

func (h *Handlers) AssignTeam(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TeamID    string `json:"team_id"`
		StartDate string `json:"start_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	start := time.Now().UTC()
	if payload.StartDate != "" {
		var err error
		if start, err = parseDate(payload.StartDate); err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "start_date must be YYYY-MM-DD")
			return
		}
	}
	st, err := h.Repo.AssignTeam(r.Context(), domain.SwimmerTeam{
		SwimmerID: mux.Vars(r)["id"],
		TeamID:    payload.TeamID,
		StartDate: start,
	})
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (h *Handlers) EndMembership(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TeamID  string `json:"team_id"`
		EndDate string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	end := time.Now().UTC()
	if payload.EndDate != "" {
		var err error
		if end, err = parseDate(payload.EndDate); err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "end_date must be YYYY-MM-DD")
			return
		}
	}
	if err := h.Repo.EndMembership(r.Context(), mux.Vars(r)["id"], payload.TeamID, end); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListSwimmerTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Repo.ListSwimmerTeams(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	now := time.Now().UTC()
	for i := range teams {
		teams[i].Current = teams[i].CurrentOn(now)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

func (h *Handlers) BestTimes(w http.ResponseWriter, r *http.Request) {
	best, err := h.Qualify.BestTimes(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.ucError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"best_times": best})
}

func (h *Handlers) Qualifications(w http.ResponseWriter, r *http.Request) {
	evals, err := h.Qualify.QualificationReport(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("sanctioning_body"))
	if err != nil {
		h.ucError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"qualifications": evals})
}
