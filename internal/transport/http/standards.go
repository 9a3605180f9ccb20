package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

type standardPayload struct {
	Stroke          string `json:"stroke"`
	Distance        int    `json:"distance"`
	Course          string `json:"course"`
	Gender          string `json:"gender"`
	AgeGroup        string `json:"age_group"`
	StandardName    string `json:"standard_name"`
	CutLevel        string `json:"cut_level"`
	SanctioningBody string `json:"sanctioning_body"`
	Time            string `json:"time"`
	QualifyingStart string `json:"qualifying_start"`
	QualifyingEnd   string `json:"qualifying_end"`
	EffectiveYear   int    `json:"effective_year"`
}

func (p standardPayload) toDomain(repoEvent domain.Event) (domain.TimeStandard, error) {
	cs, err := domain.ParseClockTime(p.Time)
	if err != nil {
		return domain.TimeStandard{}, err
	}
	start, err := parseDatePtr(p.QualifyingStart)
	if err != nil {
		return domain.TimeStandard{}, err
	}
	end, err := parseDatePtr(p.QualifyingEnd)
	if err != nil {
		return domain.TimeStandard{}, err
	}
	return domain.TimeStandard{
		Event:           repoEvent,
		Gender:          domain.Gender(p.Gender),
		AgeGroup:        p.AgeGroup,
		StandardName:    p.StandardName,
		CutLevel:        p.CutLevel,
		SanctioningBody: p.SanctioningBody,
		Centiseconds:    cs,
		QualifyingStart: start,
		QualifyingEnd:   end,
		EffectiveYear:   p.EffectiveYear,
	}, nil
}

func (h *Handlers) CreateStandard(w http.ResponseWriter, r *http.Request) {
	var payload standardPayload
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
	event, err := h.Repo.FindOrCreateEvent(r.Context(), e)
	if err != nil {
		h.repoError(w, err)
		return
	}
	ts, err := payload.toDomain(event)
	if err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if err := ts.Validate(); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	created, err := h.Repo.CreateStandard(r.Context(), ts)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetStandard(w http.ResponseWriter, r *http.Request) {
	ts, err := h.Repo.GetStandard(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

func (h *Handlers) UpdateStandard(w http.ResponseWriter, r *http.Request) {
	ts, err := h.Repo.GetStandard(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	var payload struct {
		AgeGroup        *string `json:"age_group"`
		StandardName    *string `json:"standard_name"`
		CutLevel        *string `json:"cut_level"`
		SanctioningBody *string `json:"sanctioning_body"`
		Time            *string `json:"time"`
		QualifyingStart *string `json:"qualifying_start"`
		QualifyingEnd   *string `json:"qualifying_end"`
		EffectiveYear   *int    `json:"effective_year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.AgeGroup != nil {
		ts.AgeGroup = *payload.AgeGroup
	}
	if payload.StandardName != nil {
		ts.StandardName = *payload.StandardName
	}
	if payload.CutLevel != nil {
		ts.CutLevel = *payload.CutLevel
	}
	if payload.SanctioningBody != nil {
		ts.SanctioningBody = *payload.SanctioningBody
	}
	if payload.Time != nil {
		cs, err := domain.ParseClockTime(*payload.Time)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
			return
		}
		ts.Centiseconds = cs
	}
	if payload.QualifyingStart != nil {
		start, err := parseDatePtr(*payload.QualifyingStart)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "qualifying_start must be YYYY-MM-DD")
			return
		}
		ts.QualifyingStart = start
	}
	if payload.QualifyingEnd != nil {
		end, err := parseDatePtr(*payload.QualifyingEnd)
		if err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "qualifying_end must be YYYY-MM-DD")
			return
		}
		ts.QualifyingEnd = end
	}
	if payload.EffectiveYear != nil {
		ts.EffectiveYear = *payload.EffectiveYear
	}
	if err := ts.Validate(); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	updated, err := h.Repo.UpdateStandard(r.Context(), ts)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteStandard(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteStandard(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SearchStandards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.StandardFilter{
		Stroke:          domain.Stroke(q.Get("stroke")),
		Course:          domain.Course(q.Get("course")),
		Gender:          domain.Gender(q.Get("gender")),
		AgeGroup:        q.Get("age_group"),
		SanctioningBody: q.Get("sanctioning_body"),
		StandardName:    q.Get("standard_name"),
	}
	f.Distance, _ = strconv.Atoi(q.Get("distance"))
	f.EffectiveYear, _ = strconv.Atoi(q.Get("effective_year"))
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	f.Offset, _ = strconv.Atoi(q.Get("offset"))
	standards, err := h.Repo.SearchStandards(r.Context(), f)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"standards": standards})
}
