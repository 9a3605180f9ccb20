package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) RequestFollow(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	var payload struct {
		SwimmerID string `json:"swimmer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	follow, err := h.Follows.Request(r.Context(), p, payload.SwimmerID)
	if err != nil {
		h.ucError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, follow)
}

func (h *Handlers) InviteFollow(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	var payload struct {
		FanID string `json:"fan_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	follow, err := h.Follows.Invite(r.Context(), p, payload.FanID)
	if err != nil {
		h.ucError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, follow)
}

func (h *Handlers) RespondFollow(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	var payload struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	follow, err := h.Follows.Respond(r.Context(), p, mux.Vars(r)["id"], payload.Approve)
	if err != nil {
		h.ucError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, follow)
}

// ListFollows shows the caller's own follow rows, from whichever side of the
// relationship they are on.
func (h *Handlers) ListFollows(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	if p.SwimmerID != "" {
		follows, err := h.Repo.ListFollowsBySwimmer(r.Context(), p.SwimmerID)
		if err != nil {
			h.repoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"follows": follows})
		return
	}
	follows, err := h.Repo.ListFollowsByFan(r.Context(), p.ID)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"follows": follows})
}
