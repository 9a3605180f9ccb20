package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
)

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	var payload struct {
		DisplayName *string `json:"display_name"`
		AvatarURL   *string `json:"avatar_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.DisplayName != nil {
		p.DisplayName = *payload.DisplayName
	}
	if payload.AvatarURL != nil {
		p.AvatarURL = *payload.AvatarURL
	}
	updated, err := h.Repo.UpdateProfile(r.Context(), p)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.ListProfiles(r.Context())
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *Handlers) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role      string `json:"role"`
		SwimmerID string `json:"swimmer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	role := domain.UserRole(payload.Role)
	if !role.Valid() {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "unknown role")
		return
	}
	p, err := h.Repo.GetProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.repoError(w, err)
		return
	}
	p.Role = role
	if payload.SwimmerID != "" {
		p.SwimmerID = payload.SwimmerID
	}
	updated, err := h.Repo.UpdateProfile(r.Context(), p)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	var payload struct {
		Email  string `json:"email"`
		Role   string `json:"role"`
		TeamID string `json:"team_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	inv, err := h.Invites.Create(r.Context(), p, payload.Email, domain.UserRole(payload.Role), payload.TeamID)
	if err != nil {
		h.ucError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *Handlers) ListInvitations(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	inviterID := p.ID
	if p.IsAdmin() {
		inviterID = r.URL.Query().Get("inviter_id")
	}
	invs, err := h.Repo.ListInvitations(r.Context(), inviterID)
	if err != nil {
		h.repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"invitations": invs})
}

// AcceptInvitation is the only unauthenticated write: it consumes a token
// and returns the new profile plus a bearer token for it.
func (h *Handlers) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Token       string `json:"token"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	profile, err := h.Invites.Accept(r.Context(), payload.Token, payload.DisplayName)
	if err != nil {
		h.ucError(w, err)
		return
	}
	token, err := h.Tokens.Mint(profile.ID, string(profile.Role))
	if err != nil {
		h.Log.Errorf("mint token: %v", err)
		errorResp(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": profile, "token": token})
}

func (h *Handlers) RevokeInvitation(w http.ResponseWriter, r *http.Request) {
	p, _ := ProfileFrom(r.Context())
	if err := h.Invites.Revoke(r.Context(), p, mux.Vars(r)["id"]); err != nil {
		h.ucError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
