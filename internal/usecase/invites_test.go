package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

type inviteRepo struct {
	repository.Repo
	invitations map[string]domain.Invitation
	profiles    map[string]domain.UserProfile
	nextID      int
}

func newInviteRepo() *inviteRepo {
	return &inviteRepo{
		invitations: map[string]domain.Invitation{},
		profiles:    map[string]domain.UserProfile{},
	}
}

func (m *inviteRepo) CreateInvitation(_ context.Context, inv domain.Invitation) (domain.Invitation, error) {
	m.nextID++
	inv.ID = "inv-" + strconv.Itoa(m.nextID)
	inv.CreatedAt = time.Now()
	m.invitations[inv.ID] = inv
	return inv, nil
}

func (m *inviteRepo) GetInvitation(_ context.Context, id string) (domain.Invitation, error) {
	if inv, ok := m.invitations[id]; ok {
		return inv, nil
	}
	return domain.Invitation{}, repository.ErrNotFound
}

func (m *inviteRepo) GetInvitationByToken(_ context.Context, token string) (domain.Invitation, error) {
	for _, inv := range m.invitations {
		if inv.Token == token {
			return inv, nil
		}
	}
	return domain.Invitation{}, repository.ErrNotFound
}

func (m *inviteRepo) AcceptInvitation(_ context.Context, id string, p domain.UserProfile) (domain.UserProfile, error) {
	inv, ok := m.invitations[id]
	if !ok || inv.Status != domain.InvitePending {
		return domain.UserProfile{}, repository.ErrNotFound
	}
	inv.Status = domain.InviteAccepted
	m.invitations[id] = inv
	if p.ID == "" {
		p.ID = "user-" + strconv.Itoa(len(m.profiles)+1)
	}
	m.profiles[p.ID] = p
	return p, nil
}

func (m *inviteRepo) RevokeInvitation(_ context.Context, id string) error {
	inv, ok := m.invitations[id]
	if !ok || inv.Status != domain.InvitePending {
		return repository.ErrNotFound
	}
	inv.Status = domain.InviteRevoked
	m.invitations[id] = inv
	return nil
}

func (m *inviteRepo) ExpirePendingInvitations(_ context.Context, now time.Time) (int, error) {
	n := 0
	for id, inv := range m.invitations {
		if inv.Status == domain.InvitePending && inv.ExpiresAt.Before(now) {
			inv.Status = domain.InviteExpired
			m.invitations[id] = inv
			n++
		}
	}
	return n, nil
}

func TestInviteRoleHierarchy(t *testing.T) {
	uc := NewInviteUsecase(newInviteRepo())
	ctx := context.Background()

	cases := []struct {
		inviter domain.UserRole
		invitee domain.UserRole
		ok      bool
	}{
		{domain.RoleAdmin, domain.RoleCoach, true},
		{domain.RoleAdmin, domain.RoleAdmin, true},
		{domain.RoleCoach, domain.RoleSwimmer, true},
		{domain.RoleCoach, domain.RoleFan, true},
		{domain.RoleCoach, domain.RoleCoach, false},
		{domain.RoleSwimmer, domain.RoleFan, true},
		{domain.RoleSwimmer, domain.RoleSwimmer, false},
		{domain.RoleFan, domain.RoleFan, false},
	}
	for _, c := range cases {
		inviter := domain.UserProfile{ID: "u", Role: c.inviter}
		_, err := uc.Create(ctx, inviter, "kid@example.com", c.invitee, "")
		if c.ok && err != nil {
			t.Errorf("%s inviting %s: unexpected error %v", c.inviter, c.invitee, err)
		}
		if !c.ok && !errors.Is(err, ErrForbidden) {
			t.Errorf("%s inviting %s: err = %v, want ErrForbidden", c.inviter, c.invitee, err)
		}
	}
}

func TestInviteCreateValidation(t *testing.T) {
	uc := NewInviteUsecase(newInviteRepo())
	admin := domain.UserProfile{ID: "a", Role: domain.RoleAdmin}
	if _, err := uc.Create(context.Background(), admin, "not-an-email", domain.RoleFan, ""); !errors.Is(err, ErrInvalidInvite) {
		t.Errorf("bad email err = %v, want ErrInvalidInvite", err)
	}
	if _, err := uc.Create(context.Background(), admin, "a@b.com", "superuser", ""); !errors.Is(err, ErrInvalidInvite) {
		t.Errorf("bad role err = %v, want ErrInvalidInvite", err)
	}
}

func TestInviteAcceptFlow(t *testing.T) {
	repo := newInviteRepo()
	uc := NewInviteUsecase(repo)
	ctx := context.Background()
	admin := domain.UserProfile{ID: "a", Role: domain.RoleAdmin}

	inv, err := uc.Create(ctx, admin, "New@Example.com", domain.RoleSwimmer, "team-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inv.Email != "new@example.com" || inv.Status != domain.InvitePending {
		t.Errorf("invitation = %+v", inv)
	}
	if len(inv.Token) != 48 {
		t.Errorf("token %q: want 48 hex chars", inv.Token)
	}
	if _, err := hex.DecodeString(inv.Token); err != nil {
		t.Errorf("token %q is not hex: %v", inv.Token, err)
	}

	profile, err := uc.Accept(ctx, inv.Token, "New Swimmer")
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if profile.Role != domain.RoleSwimmer || profile.DisplayName != "New Swimmer" {
		t.Errorf("profile = %+v", profile)
	}

	// Token is single use.
	if _, err := uc.Accept(ctx, inv.Token, "Again"); !errors.Is(err, ErrConflict) {
		t.Errorf("second accept err = %v, want ErrConflict", err)
	}
}

func TestInviteAcceptExpired(t *testing.T) {
	repo := newInviteRepo()
	uc := NewInviteUsecase(repo)
	uc.TTL = -time.Hour // already expired on creation
	admin := domain.UserProfile{ID: "a", Role: domain.RoleAdmin}

	inv, err := uc.Create(context.Background(), admin, "late@example.com", domain.RoleFan, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.Accept(context.Background(), inv.Token, "Late"); !errors.Is(err, ErrExpired) {
		t.Errorf("err = %v, want ErrExpired", err)
	}
}

func TestInviteRevokePermissions(t *testing.T) {
	repo := newInviteRepo()
	uc := NewInviteUsecase(repo)
	ctx := context.Background()
	coach := domain.UserProfile{ID: "c1", Role: domain.RoleCoach}

	inv, err := uc.Create(ctx, coach, "kid@example.com", domain.RoleSwimmer, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stranger := domain.UserProfile{ID: "c2", Role: domain.RoleCoach}
	if err := uc.Revoke(ctx, stranger, inv.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger revoke err = %v, want ErrForbidden", err)
	}
	if err := uc.Revoke(ctx, coach, inv.ID); err != nil {
		t.Errorf("inviter revoke: %v", err)
	}
}

func TestExpireStale(t *testing.T) {
	repo := newInviteRepo()
	uc := NewInviteUsecase(repo)
	uc.TTL = -time.Minute
	admin := domain.UserProfile{ID: "a", Role: domain.RoleAdmin}
	if _, err := uc.Create(context.Background(), admin, "x@example.com", domain.RoleFan, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := uc.ExpireStale(context.Background())
	if err != nil || n != 1 {
		t.Errorf("ExpireStale = %d, %v; want 1, nil", n, err)
	}
}
