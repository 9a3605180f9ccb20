package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

type followRepo struct {
	repository.Repo
	swimmers map[string]domain.Swimmer
	profiles map[string]domain.UserProfile
	follows  map[string]domain.FanFollow
	nextID   int
}

func newFollowRepo() *followRepo {
	return &followRepo{
		swimmers: map[string]domain.Swimmer{"sw-1": {ID: "sw-1"}},
		profiles: map[string]domain.UserProfile{
			"fan-1":  {ID: "fan-1", Role: domain.RoleFan},
			"user-s": {ID: "user-s", Role: domain.RoleSwimmer, SwimmerID: "sw-1"},
		},
		follows: map[string]domain.FanFollow{},
	}
}

func (m *followRepo) GetSwimmer(_ context.Context, id string) (domain.Swimmer, error) {
	if s, ok := m.swimmers[id]; ok {
		return s, nil
	}
	return domain.Swimmer{}, repository.ErrNotFound
}

func (m *followRepo) GetProfile(_ context.Context, id string) (domain.UserProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return domain.UserProfile{}, repository.ErrNotFound
}

func (m *followRepo) GetFollow(_ context.Context, id string) (domain.FanFollow, error) {
	if f, ok := m.follows[id]; ok {
		return f, nil
	}
	return domain.FanFollow{}, repository.ErrNotFound
}

func (m *followRepo) GetFollowByPair(_ context.Context, fanID, swimmerID string) (domain.FanFollow, error) {
	for _, f := range m.follows {
		if f.FanID == fanID && f.SwimmerID == swimmerID {
			return f, nil
		}
	}
	return domain.FanFollow{}, repository.ErrNotFound
}

func (m *followRepo) CreateFollow(_ context.Context, f domain.FanFollow) (domain.FanFollow, error) {
	m.nextID++
	f.ID = "fo-" + string(rune('0'+m.nextID))
	f.CreatedAt = time.Now()
	m.follows[f.ID] = f
	return f, nil
}

func (m *followRepo) RespondFollow(_ context.Context, id string, status domain.FollowStatus, at time.Time) (domain.FanFollow, error) {
	f, ok := m.follows[id]
	if !ok || f.Status != domain.FollowPending {
		return domain.FanFollow{}, repository.ErrNotFound
	}
	f.Status = status
	f.RespondedAt = &at
	m.follows[id] = f
	return f, nil
}

func TestFollowRequestAndApprove(t *testing.T) {
	repo := newFollowRepo()
	uc := NewFollowUsecase(repo)
	ctx := context.Background()

	fan := repo.profiles["fan-1"]
	follow, err := uc.Request(ctx, fan, "sw-1")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if !follow.IsRequest() || follow.Status != domain.FollowPending {
		t.Errorf("follow = %+v", follow)
	}

	// Duplicate request conflicts.
	if _, err := uc.Request(ctx, fan, "sw-1"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate request err = %v, want ErrConflict", err)
	}

	// The fan cannot answer their own request.
	if _, err := uc.Respond(ctx, fan, follow.ID, true); !errors.Is(err, ErrForbidden) {
		t.Errorf("self-respond err = %v, want ErrForbidden", err)
	}

	swimmerUser := repo.profiles["user-s"]
	updated, err := uc.Respond(ctx, swimmerUser, follow.ID, true)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if updated.Status != domain.FollowApproved || updated.RespondedAt == nil {
		t.Errorf("updated = %+v", updated)
	}

	// No second response to a settled follow.
	if _, err := uc.Respond(ctx, swimmerUser, follow.ID, false); !errors.Is(err, ErrConflict) {
		t.Errorf("double respond err = %v, want ErrConflict", err)
	}
}

func TestFollowRequestNonFan(t *testing.T) {
	repo := newFollowRepo()
	uc := NewFollowUsecase(repo)
	coach := domain.UserProfile{ID: "c1", Role: domain.RoleCoach}
	if _, err := uc.Request(context.Background(), coach, "sw-1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestFollowRequestUnknownSwimmer(t *testing.T) {
	repo := newFollowRepo()
	uc := NewFollowUsecase(repo)
	fan := repo.profiles["fan-1"]
	if _, err := uc.Request(context.Background(), fan, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFollowInviteAndDeny(t *testing.T) {
	repo := newFollowRepo()
	uc := NewFollowUsecase(repo)
	ctx := context.Background()

	swimmerUser := repo.profiles["user-s"]
	follow, err := uc.Invite(ctx, swimmerUser, "fan-1")
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if !follow.IsInvite() {
		t.Errorf("follow should be an invite: %+v", follow)
	}

	// Only the invited fan responds.
	if _, err := uc.Respond(ctx, swimmerUser, follow.ID, true); !errors.Is(err, ErrForbidden) {
		t.Errorf("swimmer answering own invite: err = %v, want ErrForbidden", err)
	}
	updated, err := uc.Respond(ctx, repo.profiles["fan-1"], follow.ID, false)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if updated.Status != domain.FollowDenied {
		t.Errorf("status = %s, want denied", updated.Status)
	}
}

func TestFollowInviteTargetsFansOnly(t *testing.T) {
	repo := newFollowRepo()
	repo.profiles["coach-1"] = domain.UserProfile{ID: "coach-1", Role: domain.RoleCoach}
	uc := NewFollowUsecase(repo)
	swimmerUser := repo.profiles["user-s"]
	if _, err := uc.Invite(context.Background(), swimmerUser, "coach-1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestFollowAdminCanRespond(t *testing.T) {
	repo := newFollowRepo()
	uc := NewFollowUsecase(repo)
	ctx := context.Background()

	follow, err := uc.Request(ctx, repo.profiles["fan-1"], "sw-1")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	admin := domain.UserProfile{ID: "adm", Role: domain.RoleAdmin}
	if _, err := uc.Respond(ctx, admin, follow.ID, true); err != nil {
		t.Errorf("admin respond: %v", err)
	}
}
