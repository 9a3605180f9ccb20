package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

func (h *Handlers) CreateSwimTime(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SwimmerID string `json:"swimmer_id"`
		EventID   string `json:"event_id"`
		Stroke    string `json:"stroke"`
		Distance  int    `json:"distance"`
		Course    string `json:"course"`
		MeetID    string `json:"meet_id"`
		TeamID    string `json:"team_id"`
		SuitID    string `json:"suit_id"`
		Time      string `json:"time"`
		SwimDate  string `json:"swim_date"`
		Round     string `json:"round"`
		Lane      int    `json:"lane"`
		Place     int    `json:"place"`
		Official  *bool  `json:"official"`
		DQ        bool   `json:"dq"`
		DQReason  string `json:"dq_reason"`
		Splits    []struct {
			Distance int    `json:"distance"`
			Time     string `json:"time"`
		} `json:"splits"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}

	cs, err := domain.ParseClockTime(payload.Time)
	if err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	swimDate, err := parseDate(payload.SwimDate)
	if err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "swim_date must be YYYY-MM-DD")
		return
	}

	eventID := payload.EventID
	if eventID == "" {
		e := domain.Event{
			Stroke:   domain.Stroke(payload.Stroke),
			Distance: payload.Distance,
			Course:   domain.Course(payload.Course),
		}
		if err := e.Validate(); err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
			return
		}
		event, err := h.Repo.FindOrCreateEvent(r.Context(), e)
		if err != nil {
			h.repoError(w, err)
			return
		}
		eventID = event.ID
	}

	t := domain.SwimTime{
		SwimmerID:    payload.SwimmerID,
		EventID:      eventID,
		MeetID:       payload.MeetID,
		TeamID:       payload.TeamID,
		SuitID:       payload.SuitID,
		Centiseconds: cs,
		SwimDate:     swimDate,
		Round:        domain.Round(payload.Round),
		Lane:         payload.Lane,
		Place:        payload.Place,
		Official:     true,
		DQ:           payload.DQ,
		DQReason:     payload.DQReason,
	}
	if payload.Official != nil {
		t.Official = *payload.Official
	}
	for _, sp := range payload.Splits {
		spCS, err := domain.ParseClockTime(sp.Time)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "split: "+err.Error())
			return
		}
		t.Splits = append(t.Splits, domain.Split{Distance: sp.Distance, Centiseconds: spCS})
	}
	if err := t.Validate(); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	created, err := h.Repo.CreateSwimTime(r.Context(), t)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetSwimTime(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.GetSwimTime(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handlers) UpdateSwimTime(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.GetSwimTime(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	var payload struct {
		Time     *string `json:"time"`
		SwimDate *string `json:"swim_date"`
		Round    *string `json:"round"`
		Lane     *int    `json:"lane"`
		Place    *int    `json:"place"`
		Official *bool   `json:"official"`
		DQ       *bool   `json:"dq"`
		DQReason *string `json:"dq_reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Time != nil {
		cs, err := domain.ParseClockTime(*payload.Time)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
			return
		}
		t.Centiseconds = cs
	}
	if payload.SwimDate != nil {
		d, err := parseDate(*payload.SwimDate)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "swim_date must be YYYY-MM-DD")
			return
		}
		t.SwimDate = d
	}
	if payload.Round != nil {
		t.Round = domain.Round(*payload.Round)
	}
	if payload.Lane != nil {
		t.Lane = *payload.Lane
	}
	if payload.Place != nil {
		t.Place = *payload.Place
	}
	if payload.Official != nil {
		t.Official = *payload.Official
	}
	if payload.DQ != nil {
		t.DQ = *payload.DQ
	}
	if payload.DQReason != nil {
		t.DQReason = *payload.DQReason
	}
	if err := t.Validate(); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	updated, err := h.Repo.UpdateSwimTime(r.Context(), t)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteSwimTime(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteSwimTime(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SearchSwimTimes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.SwimTimeFilter{
		SwimmerID:    q.Get("swimmer_id"),
		EventID:      q.Get("event_id"),
		MeetID:       q.Get("meet_id"),
		TeamID:       q.Get("team_id"),
		Round:        domain.Round(q.Get("round")),
		OfficialOnly: q.Get("official_only") == "true",
		ExcludeDQ:    q.Get("exclude_dq") == "true",
	}
	var err error
	if f.From, err = parseDatePtr(q.Get("from")); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "from must be YYYY-MM-DD")
		return
	}
	if f.To, err = parseDatePtr(q.Get("to")); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "to must be YYYY-MM-DD")
		return
	}
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	f.Offset, _ = strconv.Atoi(q.Get("offset"))
	times, err := h.Repo.SearchSwimTimes(r.Context(), f)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"times": times})
}

// EvaluateSwimTime checks one recorded swim against every applicable cut.
func (h *Handlers) EvaluateSwimTime(w http.ResponseWriter, r *http.Request) {
	eval, err := h.Qualify.EvaluateSwim(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("sanctioning_body"))
	if err != nil {
		h.ucError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}
