package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCoach   UserRole = "coach"
	RoleSwimmer UserRole = "swimmer"
	RoleFan     UserRole = "fan"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleSwimmer, RoleFan:
		return true
	}
	return false
}

// UserProfile is the application-side profile for an authenticated user.
type UserProfile struct {
	ID          string    `json:"id"`
	Role        UserRole  `json:"role"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	SwimmerID   string    `json:"swimmer_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

func (u UserProfile) IsAdmin() bool { return u.Role == RoleAdmin }
func (u UserProfile) IsCoach() bool { return u.Role == RoleCoach }

// CanInvite encodes the role hierarchy: admin invites anyone, coach invites
// swimmers and fans, swimmers invite fans, fans invite nobody.
func (u UserProfile) CanInvite(role UserRole) bool {
	switch u.Role {
	case RoleAdmin:
		return role.Valid()
	case RoleCoach:
		return role == RoleSwimmer || role == RoleFan
	case RoleSwimmer:
		return role == RoleFan
	}
	return false
}

type InvitationStatus string

const (
	InvitePending  InvitationStatus = "pending"
	InviteAccepted InvitationStatus = "accepted"
	InviteExpired  InvitationStatus = "expired"
	InviteRevoked  InvitationStatus = "revoked"
)

// Invitation gates signup: a new account can only be created against a
// pending, unexpired invitation token.
type Invitation struct {
	ID         string           `json:"id"`
	InviterID  string           `json:"inviter_id"`
	Email      string           `json:"email"`
	Role       UserRole         `json:"role"`
	Token      string           `json:"token,omitempty"`
	Status     InvitationStatus `json:"status"`
	ExpiresAt  time.Time        `json:"expires_at"`
	AcceptedBy string           `json:"accepted_by,omitempty"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
	TeamID     string           `json:"team_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

type FollowStatus string

const (
	FollowPending  FollowStatus = "pending"
	FollowApproved FollowStatus = "approved"
	FollowDenied   FollowStatus = "denied"
)

// FanFollow is the fan-swimmer relationship. InitiatedBy distinguishes a
// fan's request from a swimmer's invite; the other party responds.
type FanFollow struct {
	ID          string       `json:"id"`
	FanID       string       `json:"fan_id"`
	SwimmerID   string       `json:"swimmer_id"`
	InitiatedBy string       `json:"initiated_by"`
	Status      FollowStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	RespondedAt *time.Time   `json:"responded_at,omitempty"`
}

func (f FanFollow) IsRequest() bool { return f.InitiatedBy == f.FanID }
func (f FanFollow) IsInvite() bool  { return f.InitiatedBy != f.FanID }
