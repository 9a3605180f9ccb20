package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

// FollowUsecase drives the fan/swimmer follow flow: fans request, swimmers
// invite, the other party responds.
type FollowUsecase struct {
	Repo repository.Repo
}

func NewFollowUsecase(r repository.Repo) *FollowUsecase {
	return &FollowUsecase{Repo: r}
}

// Request creates a pending follow initiated by a fan.
func (u *FollowUsecase) Request(ctx context.Context, user domain.UserProfile, swimmerID string) (domain.FanFollow, error) {
	if user.Role != domain.RoleFan {
		return domain.FanFollow{}, ErrForbidden
	}
	if _, err := u.Repo.GetSwimmer(ctx, swimmerID); err != nil {
		return domain.FanFollow{}, mapRepoErr(err)
	}
	if _, err := u.Repo.GetFollowByPair(ctx, user.ID, swimmerID); err == nil {
		return domain.FanFollow{}, ErrConflict
	} else if !errors.Is(err, repository.ErrNotFound) {
		return domain.FanFollow{}, err
	}

	follow, err := u.Repo.CreateFollow(ctx, domain.FanFollow{
		FanID:       user.ID,
		SwimmerID:   swimmerID,
		InitiatedBy: user.ID,
		Status:      domain.FollowPending,
	})
	if err != nil {
		return domain.FanFollow{}, mapFollowErr(err)
	}
	return follow, nil
}

// Invite creates a pending follow initiated by the swimmer behind the
// acting user's profile.
func (u *FollowUsecase) Invite(ctx context.Context, user domain.UserProfile, fanID string) (domain.FanFollow, error) {
	if user.Role != domain.RoleSwimmer || user.SwimmerID == "" {
		return domain.FanFollow{}, ErrForbidden
	}
	fan, err := u.Repo.GetProfile(ctx, fanID)
	if err != nil {
		return domain.FanFollow{}, mapRepoErr(err)
	}
	if fan.Role != domain.RoleFan {
		return domain.FanFollow{}, ErrForbidden
	}
	if _, err := u.Repo.GetFollowByPair(ctx, fanID, user.SwimmerID); err == nil {
		return domain.FanFollow{}, ErrConflict
	} else if !errors.Is(err, repository.ErrNotFound) {
		return domain.FanFollow{}, err
	}

	follow, err := u.Repo.CreateFollow(ctx, domain.FanFollow{
		FanID:       fanID,
		SwimmerID:   user.SwimmerID,
		InitiatedBy: user.ID,
		Status:      domain.FollowPending,
	})
	if err != nil {
		return domain.FanFollow{}, mapFollowErr(err)
	}
	return follow, nil
}

// Respond approves or denies a pending follow. Only the party that did not
// initiate it (or an admin) may respond.
func (u *FollowUsecase) Respond(ctx context.Context, user domain.UserProfile, followID string, approved bool) (domain.FanFollow, error) {
	follow, err := u.Repo.GetFollow(ctx, followID)
	if err != nil {
		return domain.FanFollow{}, mapRepoErr(err)
	}
	if follow.Status != domain.FollowPending {
		return domain.FanFollow{}, ErrConflict
	}
	if !user.IsAdmin() {
		if follow.IsRequest() {
			// Fan asked; the swimmer answers.
			if user.SwimmerID == "" || user.SwimmerID != follow.SwimmerID {
				return domain.FanFollow{}, ErrForbidden
			}
		} else {
			// Swimmer invited; the fan answers.
			if user.ID != follow.FanID {
				return domain.FanFollow{}, ErrForbidden
			}
		}
	}

	status := domain.FollowDenied
	if approved {
		status = domain.FollowApproved
	}
	updated, err := u.Repo.RespondFollow(ctx, followID, status, time.Now().UTC())
	if err != nil {
		return domain.FanFollow{}, mapRepoErr(err)
	}
	return updated, nil
}

func mapFollowErr(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return ErrConflict
	}
	if errors.Is(err, repository.ErrReference) {
		return ErrNotFound
	}
	return err
}
