package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

// DefaultInvitationTTL is how long a signup invitation stays usable.
const DefaultInvitationTTL = 14 * 24 * time.Hour

// InviteUsecase manages role-gated signup invitations.
type InviteUsecase struct {
	Repo repository.Repo
	TTL  time.Duration
}

func NewInviteUsecase(r repository.Repo) *InviteUsecase {
	return &InviteUsecase{Repo: r, TTL: DefaultInvitationTTL}
}

// Create issues a single-use invitation token. The inviter's role caps the
// invitee's role: admin invites anyone, coach invites swimmers and fans,
// swimmers invite fans.
func (u *InviteUsecase) Create(ctx context.Context, inviter domain.UserProfile, email string, role domain.UserRole, teamID string) (domain.Invitation, error) {
	if !role.Valid() || !strings.Contains(email, "@") {
		return domain.Invitation{}, ErrInvalidInvite
	}
	if !inviter.CanInvite(role) {
		return domain.Invitation{}, ErrForbidden
	}

	token, err := newInviteToken()
	if err != nil {
		return domain.Invitation{}, err
	}
	inv, err := u.Repo.CreateInvitation(ctx, domain.Invitation{
		InviterID: inviter.ID,
		Email:     strings.ToLower(email),
		Role:      role,
		Token:     token,
		Status:    domain.InvitePending,
		ExpiresAt: time.Now().UTC().Add(u.TTL),
		TeamID:    teamID,
	})
	if err != nil {
		return domain.Invitation{}, mapFollowErr(err)
	}
	return inv, nil
}

// Accept consumes a pending, unexpired token and creates the new user's
// profile with the invited role.
func (u *InviteUsecase) Accept(ctx context.Context, token, displayName string) (domain.UserProfile, error) {
	inv, err := u.Repo.GetInvitationByToken(ctx, token)
	if err != nil {
		return domain.UserProfile{}, mapRepoErr(err)
	}
	if inv.Status != domain.InvitePending {
		return domain.UserProfile{}, ErrConflict
	}
	if time.Now().UTC().After(inv.ExpiresAt) {
		return domain.UserProfile{}, ErrExpired
	}

	profile, err := u.Repo.AcceptInvitation(ctx, inv.ID, domain.UserProfile{
		Role:        inv.Role,
		DisplayName: displayName,
	})
	if err != nil {
		return domain.UserProfile{}, mapRepoErr(err)
	}
	return profile, nil
}

// Revoke cancels a pending invitation. Inviter or admin only.
func (u *InviteUsecase) Revoke(ctx context.Context, actor domain.UserProfile, invitationID string) error {
	inv, err := u.Repo.GetInvitation(ctx, invitationID)
	if err != nil {
		return mapRepoErr(err)
	}
	if !actor.IsAdmin() && inv.InviterID != actor.ID {
		return ErrForbidden
	}
	return mapRepoErr(u.Repo.RevokeInvitation(ctx, invitationID))
}

// ExpireStale sweeps pending invitations past their expiry.
func (u *InviteUsecase) ExpireStale(ctx context.Context) (int, error) {
	return u.Repo.ExpirePendingInvitations(ctx, time.Now().UTC())
}

func newInviteToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
