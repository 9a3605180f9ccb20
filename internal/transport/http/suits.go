package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
)

// swimmerSuitView joins a suit with its model and the derived life numbers:
// share of the expected race lifespan used, races left, and whether the suit
// is past the model's peak-performance window.
type swimmerSuitView struct {
	domain.SwimmerSuit
	Model          domain.SuitModel `json:"model"`
	LifePercentage float64          `json:"life_percentage"`
	RemainingRaces int              `json:"remaining_races"`
	PastPeak       bool             `json:"past_peak"`
}

func (h *Handlers) suitView(r *http.Request, s domain.SwimmerSuit) (swimmerSuitView, error) {
	m, err := h.Repo.GetSuitModel(r.Context(), s.SuitModelID)
	if err != nil {
		return swimmerSuitView{}, err
	}
	return swimmerSuitView{
		SwimmerSuit:    s,
		Model:          m,
		LifePercentage: s.LifePercentage(m.ExpectedRacesTotal),
		RemainingRaces: s.RemainingRaces(m.ExpectedRacesTotal),
		PastPeak:       s.IsPastPeak(m.ExpectedRacesPeak),
	}, nil
}

func (h *Handlers) writeSuit(w http.ResponseWriter, r *http.Request, code int, s domain.SwimmerSuit) {
	view, err := h.suitView(r, s)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, code, view)
}

func (h *Handlers) CreateSuitModel(w http.ResponseWriter, r *http.Request) {
	var m domain.SuitModel
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if m.Brand == "" || m.ModelName == "" || !m.Type.Valid() {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "brand, model_name and a valid suit_type required")
		return
	}
	m.ID = ""
	created, err := h.Repo.CreateSuitModel(r.Context(), m)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetSuitModel(w http.ResponseWriter, r *http.Request) {
	m, err := h.Repo.GetSuitModel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) UpdateSuitModel(w http.ResponseWriter, r *http.Request) {
	m, err := h.Repo.GetSuitModel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	var payload struct {
		Brand              *string `json:"brand"`
		ModelName          *string `json:"model_name"`
		IsTechSuit         *bool   `json:"is_tech_suit"`
		ReleaseYear        *int    `json:"release_year"`
		MSRPCents          *int    `json:"msrp_cents"`
		ExpectedRacesPeak  *int    `json:"expected_races_peak"`
		ExpectedRacesTotal *int    `json:"expected_races_total"`
		FINAApproved       *bool   `json:"fina_approved"`
		Notes              *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Brand != nil {
		m.Brand = *payload.Brand
	}
	if payload.ModelName != nil {
		m.ModelName = *payload.ModelName
	}
	if payload.IsTechSuit != nil {
		m.IsTechSuit = *payload.IsTechSuit
	}
	if payload.ReleaseYear != nil {
		m.ReleaseYear = *payload.ReleaseYear
	}
	if payload.MSRPCents != nil {
		m.MSRPCents = *payload.MSRPCents
	}
	if payload.ExpectedRacesPeak != nil {
		m.ExpectedRacesPeak = *payload.ExpectedRacesPeak
	}
	if payload.ExpectedRacesTotal != nil {
		m.ExpectedRacesTotal = *payload.ExpectedRacesTotal
	}
	if payload.FINAApproved != nil {
		m.FINAApproved = *payload.FINAApproved
	}
	if payload.Notes != nil {
		m.Notes = *payload.Notes
	}
	updated, err := h.Repo.UpdateSuitModel(r.Context(), m)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteSuitModel(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteSuitModel(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListSuitModels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	models, err := h.Repo.ListSuitModels(r.Context(), q.Get("brand"), q.Get("tech_only") == "true")
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suit_models": models})
}

func (h *Handlers) CreateSwimmerSuit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SuitModelID        string `json:"suit_model_id"`
		Nickname           string `json:"nickname"`
		Size               string `json:"size"`
		Color              string `json:"color"`
		PurchaseDate       string `json:"purchase_date"`
		PurchasePriceCents int    `json:"purchase_price_cents"`
		PurchaseLocation   string `json:"purchase_location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	purchased, err := parseDatePtr(payload.PurchaseDate)
	if err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "purchase_date must be YYYY-MM-DD")
		return
	}
	s := domain.SwimmerSuit{
		SwimmerID:          mux.Vars(r)["id"],
		SuitModelID:        payload.SuitModelID,
		Nickname:           payload.Nickname,
		Size:               payload.Size,
		Color:              payload.Color,
		PurchaseDate:       purchased,
		PurchasePriceCents: payload.PurchasePriceCents,
		PurchaseLocation:   payload.PurchaseLocation,
		Condition:          domain.SuitNew,
	}
	created, err := h.Repo.CreateSwimmerSuit(r.Context(), s)
	if err != nil {
		h.repoError(w, err)
		return
	}
	h.writeSuit(w, r, http.StatusCreated, created)
}

func (h *Handlers) ListSwimmerSuits(w http.ResponseWriter, r *http.Request) {
	suits, err := h.Repo.ListSwimmerSuits(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("active_only") == "true")
	if err != nil {
		h.repoError(w, err)
		return
	}
	views := make([]swimmerSuitView, 0, len(suits))
	for _, s := range suits {
		view, err := h.suitView(r, s)
		if err != nil {
			h.repoError(w, err)
			return
		}
		views = append(views, view)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suits": views})
}

func (h *Handlers) GetSwimmerSuit(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.GetSwimmerSuit(r.Context(), mux.Vars(r)["suitID"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	h.writeSuit(w, r, http.StatusOK, s)
}

func (h *Handlers) WearSuit(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.IncrementWear(r.Context(), mux.Vars(r)["suitID"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	h.writeSuit(w, r, http.StatusOK, s)
}

func (h *Handlers) RaceSuit(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.IncrementRace(r.Context(), mux.Vars(r)["suitID"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	h.writeSuit(w, r, http.StatusOK, s)
}

func (h *Handlers) RetireSuit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Reason string `json:"reason"`
		Date   string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	on := time.Now().UTC()
	if payload.Date != "" {
		var err error
		if on, err = parseDate(payload.Date); err != nil {
			errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "date must be YYYY-MM-DD")
			return
		}
	}
	s, err := h.Repo.RetireSuit(r.Context(), mux.Vars(r)["suitID"], on, payload.Reason)
	if err != nil {
		h.repoError(w, err)
		return
	}
	h.writeSuit(w, r, http.StatusOK, s)
}

func (h *Handlers) DeleteSwimmerSuit(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteSwimmerSuit(r.Context(), mux.Vars(r)["suitID"]); err != nil {
		h.repoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
