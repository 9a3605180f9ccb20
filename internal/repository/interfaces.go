package repository

import (
	"context"
	"errors"
	"time"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("already exists")
	ErrReference = errors.New("referenced record missing")
	ErrCheckFail = errors.New("constraint violated")
)

// SwimmerFilter narrows swimmer searches; zero values mean "any".
type SwimmerFilter struct {
	Gender domain.Gender
	TeamID string
	Name   string // substring match on first or last name
	Limit  int
	Offset int
}

type TeamFilter struct {
	Type            domain.TeamType
	LSC             string
	SanctioningBody string
	Limit           int
	Offset          int
}

type MeetFilter struct {
	Course    domain.Course
	Type      domain.MeetType
	StartFrom *time.Time
	StartTo   *time.Time
	Limit     int
	Offset    int
}

type SwimTimeFilter struct {
	SwimmerID    string
	EventID      string
	MeetID       string
	TeamID       string
	Round        domain.Round
	OfficialOnly bool
	ExcludeDQ    bool
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

type StandardFilter struct {
	Stroke          domain.Stroke
	Distance        int
	Course          domain.Course
	Gender          domain.Gender
	AgeGroup        string
	SanctioningBody string
	StandardName    string
	EffectiveYear   int
	Limit           int
	Offset          int
}

type SwimmerRepo interface {
	CreateSwimmer(ctx context.Context, s domain.Swimmer) (domain.Swimmer, error)
	GetSwimmer(ctx context.Context, id string) (domain.Swimmer, error)
	UpdateSwimmer(ctx context.Context, s domain.Swimmer) (domain.Swimmer, error)
	DeleteSwimmer(ctx context.Context, id string) error
	SearchSwimmers(ctx context.Context, f SwimmerFilter) ([]domain.Swimmer, error)

	AssignTeam(ctx context.Context, st domain.SwimmerTeam) (domain.SwimmerTeam, error)
	EndMembership(ctx context.Context, swimmerID, teamID string, end time.Time) error
	ListSwimmerTeams(ctx context.Context, swimmerID string) ([]domain.SwimmerTeam, error)
}

type TeamRepo interface {
	CreateTeam(ctx context.Context, t domain.Team) (domain.Team, error)
	GetTeam(ctx context.Context, id string) (domain.Team, error)
	UpdateTeam(ctx context.Context, t domain.Team) (domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	SearchTeams(ctx context.Context, f TeamFilter) ([]domain.Team, error)
}

type MeetRepo interface {
	CreateMeet(ctx context.Context, m domain.Meet) (domain.Meet, error)
	GetMeet(ctx context.Context, id string) (domain.Meet, error)
	UpdateMeet(ctx context.Context, m domain.Meet) (domain.Meet, error)
	DeleteMeet(ctx context.Context, id string) error
	SearchMeets(ctx context.Context, f MeetFilter) ([]domain.Meet, error)

	AddMeetTeam(ctx context.Context, mt domain.MeetTeam) (domain.MeetTeam, error)
	RemoveMeetTeam(ctx context.Context, meetID, teamID string) error
	ListMeetTeams(ctx context.Context, meetID string) ([]domain.MeetTeam, error)
}

type EventRepo interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	FindEvent(ctx context.Context, stroke domain.Stroke, distance int, course domain.Course) (domain.Event, error)
	FindOrCreateEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

type SwimTimeRepo interface {
	// CreateSwimTime inserts the swim and its splits in one transaction;
	// when a suit is referenced its race counter is bumped in the same tx.
	CreateSwimTime(ctx context.Context, t domain.SwimTime) (domain.SwimTime, error)
	GetSwimTime(ctx context.Context, id string) (domain.SwimTime, error)
	UpdateSwimTime(ctx context.Context, t domain.SwimTime) (domain.SwimTime, error)
	DeleteSwimTime(ctx context.Context, id string) error
	SearchSwimTimes(ctx context.Context, f SwimTimeFilter) ([]domain.SwimTime, error)
	// BestTimes returns the fastest valid swim per event for a swimmer.
	BestTimes(ctx context.Context, swimmerID string) ([]domain.SwimTime, error)
}

type StandardRepo interface {
	CreateStandard(ctx context.Context, ts domain.TimeStandard) (domain.TimeStandard, error)
	GetStandard(ctx context.Context, id string) (domain.TimeStandard, error)
	UpdateStandard(ctx context.Context, ts domain.TimeStandard) (domain.TimeStandard, error)
	DeleteStandard(ctx context.Context, id string) error
	SearchStandards(ctx context.Context, f StandardFilter) ([]domain.TimeStandard, error)
	// StandardsForEvents returns standards on any of the given events matching
	// gender, with age group treated as a wildcard when the standard has none,
	// and with the qualifying window containing the date (inclusive).
	StandardsForEvents(ctx context.Context, eventIDs []string, gender domain.Gender, ageGroup string, on time.Time, sanctioningBody string) ([]domain.TimeStandard, error)
}

type SuitRepo interface {
	CreateSuitModel(ctx context.Context, m domain.SuitModel) (domain.SuitModel, error)
	GetSuitModel(ctx context.Context, id string) (domain.SuitModel, error)
	UpdateSuitModel(ctx context.Context, m domain.SuitModel) (domain.SuitModel, error)
	DeleteSuitModel(ctx context.Context, id string) error
	ListSuitModels(ctx context.Context, brand string, techOnly bool) ([]domain.SuitModel, error)

	CreateSwimmerSuit(ctx context.Context, s domain.SwimmerSuit) (domain.SwimmerSuit, error)
	GetSwimmerSuit(ctx context.Context, id string) (domain.SwimmerSuit, error)
	ListSwimmerSuits(ctx context.Context, swimmerID string, activeOnly bool) ([]domain.SwimmerSuit, error)
	IncrementWear(ctx context.Context, id string) (domain.SwimmerSuit, error)
	IncrementRace(ctx context.Context, id string) (domain.SwimmerSuit, error)
	RetireSuit(ctx context.Context, id string, on time.Time, reason string) (domain.SwimmerSuit, error)
	DeleteSwimmerSuit(ctx context.Context, id string) error
}

type UserRepo interface {
	CreateProfile(ctx context.Context, p domain.UserProfile) (domain.UserProfile, error)
	GetProfile(ctx context.Context, id string) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, p domain.UserProfile) (domain.UserProfile, error)
	ListProfiles(ctx context.Context) ([]domain.UserProfile, error)

	CreateInvitation(ctx context.Context, inv domain.Invitation) (domain.Invitation, error)
	GetInvitation(ctx context.Context, id string) (domain.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)
	ListInvitations(ctx context.Context, inviterID string) ([]domain.Invitation, error)
	// AcceptInvitation flips a pending invitation to accepted and creates the
	// user profile in one transaction.
	AcceptInvitation(ctx context.Context, id string, p domain.UserProfile) (domain.UserProfile, error)
	RevokeInvitation(ctx context.Context, id string) error
	// ExpirePendingInvitations marks pending invitations past their expiry and
	// returns how many changed.
	ExpirePendingInvitations(ctx context.Context, now time.Time) (int, error)

	CreateFollow(ctx context.Context, f domain.FanFollow) (domain.FanFollow, error)
	GetFollow(ctx context.Context, id string) (domain.FanFollow, error)
	GetFollowByPair(ctx context.Context, fanID, swimmerID string) (domain.FanFollow, error)
	RespondFollow(ctx context.Context, id string, status domain.FollowStatus, at time.Time) (domain.FanFollow, error)
	ListFollowsByFan(ctx context.Context, fanID string) ([]domain.FanFollow, error)
	ListFollowsBySwimmer(ctx context.Context, swimmerID string) ([]domain.FanFollow, error)
}

// Repo is the full storage surface the service runs on.
type Repo interface {
	SwimmerRepo
	TeamRepo
	MeetRepo
	EventRepo
	SwimTimeRepo
	StandardRepo
	SuitRepo
	UserRepo
}
