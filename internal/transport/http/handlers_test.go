package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/infra"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
	uc "github.com/silverbeer/swimcuttimes.com/internal/usecase"
)

// mockRepo stubs just the storage methods a test touches; anything else
// panics through the embedded nil interface.
type mockRepo struct {
	repository.Repo
	profiles    map[string]domain.UserProfile
	swimmers    map[string]domain.Swimmer
	created     []domain.SwimTime
	follows     map[string]domain.FanFollow
	invites     map[string]domain.Invitation
	memberships []domain.SwimmerTeam
	suitModels  map[string]domain.SuitModel
	suits       map[string]domain.SwimmerSuit
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		profiles:   map[string]domain.UserProfile{},
		swimmers:   map[string]domain.Swimmer{},
		follows:    map[string]domain.FanFollow{},
		invites:    map[string]domain.Invitation{},
		suitModels: map[string]domain.SuitModel{},
		suits:      map[string]domain.SwimmerSuit{},
	}
}

func (m *mockRepo) GetProfile(_ context.Context, id string) (domain.UserProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return domain.UserProfile{}, repository.ErrNotFound
}

func (m *mockRepo) GetSwimmer(_ context.Context, id string) (domain.Swimmer, error) {
	if s, ok := m.swimmers[id]; ok {
		return s, nil
	}
	return domain.Swimmer{}, repository.ErrNotFound
}

func (m *mockRepo) CreateSwimmer(_ context.Context, s domain.Swimmer) (domain.Swimmer, error) {
	s.ID = "sw-new"
	m.swimmers[s.ID] = s
	return s, nil
}

func (m *mockRepo) CreateSwimTime(_ context.Context, t domain.SwimTime) (domain.SwimTime, error) {
	t.ID = "time-new"
	m.created = append(m.created, t)
	return t, nil
}

func (m *mockRepo) ListSwimmerTeams(_ context.Context, swimmerID string) ([]domain.SwimmerTeam, error) {
	var out []domain.SwimmerTeam
	for _, st := range m.memberships {
		if st.SwimmerID == swimmerID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m *mockRepo) GetSuitModel(_ context.Context, id string) (domain.SuitModel, error) {
	if sm, ok := m.suitModels[id]; ok {
		return sm, nil
	}
	return domain.SuitModel{}, repository.ErrNotFound
}

func (m *mockRepo) GetSwimmerSuit(_ context.Context, id string) (domain.SwimmerSuit, error) {
	if s, ok := m.suits[id]; ok {
		return s, nil
	}
	return domain.SwimmerSuit{}, repository.ErrNotFound
}

func (m *mockRepo) ListSwimmerSuits(_ context.Context, swimmerID string, activeOnly bool) ([]domain.SwimmerSuit, error) {
	var out []domain.SwimmerSuit
	for _, s := range m.suits {
		if s.SwimmerID != swimmerID {
			continue
		}
		if activeOnly && s.IsRetired() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *mockRepo) GetFollowByPair(_ context.Context, fanID, swimmerID string) (domain.FanFollow, error) {
	for _, f := range m.follows {
		if f.FanID == fanID && f.SwimmerID == swimmerID {
			return f, nil
		}
	}
	return domain.FanFollow{}, repository.ErrNotFound
}

func (m *mockRepo) CreateFollow(_ context.Context, f domain.FanFollow) (domain.FanFollow, error) {
	f.ID = "fl-new"
	m.follows[f.ID] = f
	return f, nil
}

func (m *mockRepo) GetInvitationByToken(_ context.Context, token string) (domain.Invitation, error) {
	for _, inv := range m.invites {
		if inv.Token == token {
			return inv, nil
		}
	}
	return domain.Invitation{}, repository.ErrNotFound
}

func (m *mockRepo) AcceptInvitation(_ context.Context, id string, p domain.UserProfile) (domain.UserProfile, error) {
	inv := m.invites[id]
	inv.Status = domain.InviteAccepted
	m.invites[id] = inv
	p.ID = "user-new"
	m.profiles[p.ID] = p
	return p, nil
}

// stubTokens maps "tok-<id>" to user id <id>.
type stubTokens struct{}

func (stubTokens) Mint(userID, _ string) (string, error) { return "tok-" + userID, nil }

func (stubTokens) VerifySubject(token string) (string, error) {
	if !strings.HasPrefix(token, "tok-") {
		return "", errors.New("bad token")
	}
	return strings.TrimPrefix(token, "tok-"), nil
}

func newTestServer(repo *mockRepo) http.Handler {
	h := NewHandlers(repo, uc.NewQualifyUsecase(repo), uc.NewFollowUsecase(repo), uc.NewInviteUsecase(repo), stubTokens{}, infra.NewStdLogger("test"))
	return NewRouter(h)
}

func doReq(t *testing.T, srv http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doReq(t, newTestServer(newMockRepo()), "GET", "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	repo := newMockRepo()
	srv := newTestServer(repo)

	if rec := doReq(t, srv, "GET", "/swimmers/sw-1", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	if rec := doReq(t, srv, "GET", "/swimmers/sw-1", "garbage", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}
	if rec := doReq(t, srv, "GET", "/swimmers/sw-1", "tok-ghost", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: status = %d, want 401", rec.Code)
	}
}

func TestRoleGates(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["fan"] = domain.UserProfile{ID: "fan", Role: domain.RoleFan}
	repo.profiles["coach"] = domain.UserProfile{ID: "coach", Role: domain.RoleCoach}
	srv := newTestServer(repo)

	payload := map[string]string{
		"first_name": "Katie", "last_name": "Ledecky",
		"date_of_birth": "1997-03-17", "gender": "F",
	}
	if rec := doReq(t, srv, "POST", "/swimmers", "tok-fan", payload); rec.Code != http.StatusForbidden {
		t.Errorf("fan create: status = %d, want 403", rec.Code)
	}
	rec := doReq(t, srv, "POST", "/swimmers", "tok-coach", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("coach create: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created domain.Swimmer
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.LastName != "Ledecky" {
		t.Errorf("created = %+v", created)
	}
}

func TestGetSwimmerNotFound(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["u"] = domain.UserProfile{ID: "u", Role: domain.RoleFan}
	srv := newTestServer(repo)

	if rec := doReq(t, srv, "GET", "/swimmers/missing", "tok-u", nil); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreateSwimTime(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["coach"] = domain.UserProfile{ID: "coach", Role: domain.RoleCoach}
	srv := newTestServer(repo)

	rec := doReq(t, srv, "POST", "/times", "tok-coach", map[string]interface{}{
		"swimmer_id": "sw-1",
		"event_id":   "ev-1",
		"meet_id":    "m-1",
		"team_id":    "t-1",
		"time":       "5:02.48",
		"swim_date":  "2025-01-10",
		"round":      "finals",
		"splits": []map[string]interface{}{
			{"distance": 50, "time": "27.80"},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d times", len(repo.created))
	}
	got := repo.created[0]
	if got.Centiseconds != 30248 || !got.Official || len(got.Splits) != 1 || got.Splits[0].Centiseconds != 2780 {
		t.Errorf("swim = %+v", got)
	}
}

func TestCreateSwimTimeBadClock(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["coach"] = domain.UserProfile{ID: "coach", Role: domain.RoleCoach}
	srv := newTestServer(repo)

	rec := doReq(t, srv, "POST", "/times", "tok-coach", map[string]interface{}{
		"swimmer_id": "sw-1", "event_id": "ev-1", "meet_id": "m-1", "team_id": "t-1",
		"time": "1:75.00", "swim_date": "2025-01-10",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestFollowRequest(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["fan"] = domain.UserProfile{ID: "fan", Role: domain.RoleFan}
	repo.swimmers["sw-1"] = domain.Swimmer{ID: "sw-1", FirstName: "A", LastName: "B"}
	srv := newTestServer(repo)

	rec := doReq(t, srv, "POST", "/follows/request", "tok-fan", map[string]string{"swimmer_id": "sw-1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var follow domain.FanFollow
	if err := json.Unmarshal(rec.Body.Bytes(), &follow); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if follow.Status != domain.FollowPending || !follow.IsRequest() {
		t.Errorf("follow = %+v", follow)
	}
}

func TestAcceptInvitationPublic(t *testing.T) {
	repo := newMockRepo()
	repo.invites["inv-1"] = domain.Invitation{
		ID: "inv-1", Token: "tkn", Role: domain.RoleFan,
		Status: domain.InvitePending, ExpiresAt: time.Now().Add(time.Hour),
	}
	srv := newTestServer(repo)

	rec := doReq(t, srv, "POST", "/auth/invitations/accept", "", map[string]string{
		"token": "tkn", "display_name": "New Fan",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		User  domain.UserProfile `json:"user"`
		Token string             `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Role != domain.RoleFan || resp.Token != "tok-user-new" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestListSwimmerTeamsCurrentFlag(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["u"] = domain.UserProfile{ID: "u", Role: domain.RoleFan}
	ended := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.memberships = []domain.SwimmerTeam{
		{ID: "st-open", SwimmerID: "sw-1", TeamID: "t-1", TeamName: "Bluefish"},
		{ID: "st-done", SwimmerID: "sw-1", TeamID: "t-2", TeamName: "Crimson HS", EndDate: &ended},
	}
	srv := newTestServer(repo)

	rec := doReq(t, srv, "GET", "/swimmers/sw-1/teams", "tok-u", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Teams []domain.SwimmerTeam `json:"teams"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	current := map[string]bool{}
	for _, st := range resp.Teams {
		current[st.ID] = st.Current
	}
	if !current["st-open"] {
		t.Error("open-ended membership not flagged current")
	}
	if current["st-done"] {
		t.Error("ended membership flagged current")
	}
}

func TestGetSwimmerSuitView(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["u"] = domain.UserProfile{ID: "u", Role: domain.RoleFan}
	repo.suitModels["sm-1"] = domain.SuitModel{
		ID: "sm-1", Brand: "TYR", ModelName: "Venzo", Type: domain.Kneeskin,
		IsTechSuit: true, ExpectedRacesPeak: 8, ExpectedRacesTotal: 12,
	}
	repo.suits["ss-1"] = domain.SwimmerSuit{
		ID: "ss-1", SwimmerID: "sw-1", SuitModelID: "sm-1",
		RaceCount: 9, Condition: domain.SuitWorn,
	}
	srv := newTestServer(repo)

	rec := doReq(t, srv, "GET", "/swimmers/sw-1/suits/ss-1", "tok-u", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var view struct {
		ID             string           `json:"id"`
		Model          domain.SuitModel `json:"model"`
		LifePercentage float64          `json:"life_percentage"`
		RemainingRaces int              `json:"remaining_races"`
		PastPeak       bool             `json:"past_peak"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.ID != "ss-1" || view.Model.ModelName != "Venzo" {
		t.Errorf("view = %+v", view)
	}
	if view.LifePercentage != 75.0 || view.RemainingRaces != 3 || !view.PastPeak {
		t.Errorf("life = %v, remaining = %d, past_peak = %v; want 75, 3, true",
			view.LifePercentage, view.RemainingRaces, view.PastPeak)
	}
}

func TestListSwimmerSuitsIncludesModel(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["u"] = domain.UserProfile{ID: "u", Role: domain.RoleFan}
	repo.suitModels["sm-1"] = domain.SuitModel{
		ID: "sm-1", Brand: "Speedo", ModelName: "LZR", Type: domain.Jammer,
		ExpectedRacesPeak: 10, ExpectedRacesTotal: 20,
	}
	repo.suits["ss-1"] = domain.SwimmerSuit{
		ID: "ss-1", SwimmerID: "sw-1", SuitModelID: "sm-1",
		RaceCount: 4, Condition: domain.SuitGood,
	}
	srv := newTestServer(repo)

	rec := doReq(t, srv, "GET", "/swimmers/sw-1/suits", "tok-u", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Suits []struct {
			Model          domain.SuitModel `json:"model"`
			LifePercentage float64          `json:"life_percentage"`
			RemainingRaces int              `json:"remaining_races"`
			PastPeak       bool             `json:"past_peak"`
		} `json:"suits"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Suits) != 1 {
		t.Fatalf("got %d suits, want 1", len(resp.Suits))
	}
	s := resp.Suits[0]
	if s.Model.Brand != "Speedo" || s.LifePercentage != 20.0 || s.RemainingRaces != 16 || s.PastPeak {
		t.Errorf("suit view = %+v", s)
	}
}

func TestAdminOnlyDelete(t *testing.T) {
	repo := newMockRepo()
	repo.profiles["coach"] = domain.UserProfile{ID: "coach", Role: domain.RoleCoach}
	srv := newTestServer(repo)

	if rec := doReq(t, srv, "DELETE", "/swimmers/sw-1", "tok-coach", nil); rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
