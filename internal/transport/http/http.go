package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/silverbeer/swimcuttimes.com/internal/infra"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
	uc "github.com/silverbeer/swimcuttimes.com/internal/usecase"
)

// TokenService mints and checks bearer tokens. VerifySubject returns the
// user id a valid token names.
type TokenService interface {
	Mint(userID, role string) (string, error)
	VerifySubject(token string) (string, error)
}

type Handlers struct {
	Repo    repository.Repo
	Qualify *uc.QualifyUsecase
	Follows *uc.FollowUsecase
	Invites *uc.InviteUsecase
	Tokens  TokenService
	Log     infra.Logger
}

func NewHandlers(repo repository.Repo, qualify *uc.QualifyUsecase, follows *uc.FollowUsecase, invites *uc.InviteUsecase, tokens TokenService, log infra.Logger) *Handlers {
	return &Handlers{Repo: repo, Qualify: qualify, Follows: follows, Invites: invites, Tokens: tokens, Log: log}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func errorResp(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": map[string]string{"code": code, "message": msg}})
}

// repoError translates storage sentinels into HTTP responses.
func (h *Handlers) repoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		errorResp(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, repository.ErrConflict):
		errorResp(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, repository.ErrReference):
		errorResp(w, http.StatusNotFound, "REFERENCE_NOT_FOUND", err.Error())
	case errors.Is(err, repository.ErrCheckFail):
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	default:
		h.Log.Errorf("storage: %v", err)
		errorResp(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

// ucError translates usecase sentinels into HTTP responses.
func (h *Handlers) ucError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, uc.ErrNotFound):
		errorResp(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, uc.ErrConflict):
		errorResp(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, uc.ErrForbidden):
		errorResp(w, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, uc.ErrExpired):
		errorResp(w, http.StatusGone, "EXPIRED", err.Error())
	case errors.Is(err, uc.ErrInvalidInvite):
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	default:
		h.Log.Errorf("usecase: %v", err)
		errorResp(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
