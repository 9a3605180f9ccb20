package pg

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

const profileCols = "id, role, display_name, avatar_url, swimmer_id, created_at, updated_at"

func scanProfile(row interface{ Scan(...any) error }) (domain.UserProfile, error) {
	var u domain.UserProfile
	var displayName, avatarURL, swimmerID *string
	err := row.Scan(&u.ID, &u.Role, &displayName, &avatarURL, &swimmerID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.UserProfile{}, err
	}
	u.DisplayName = strOrEmpty(displayName)
	u.AvatarURL = strOrEmpty(avatarURL)
	u.SwimmerID = strOrEmpty(swimmerID)
	return u, nil
}

func (p *PGRepo) CreateProfile(ctx context.Context, u domain.UserProfile) (domain.UserProfile, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	_, err := p.pool.Exec(ctx, `
        INSERT INTO user_profiles (id, role, display_name, avatar_url, swimmer_id, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, u.ID, u.Role, nullStr(u.DisplayName), nullStr(u.AvatarURL), nullStr(u.SwimmerID), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return domain.UserProfile{}, mapErr(err)
	}
	return u, nil
}

func (p *PGRepo) GetProfile(ctx context.Context, id string) (domain.UserProfile, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+profileCols+" FROM user_profiles WHERE id=$1", id)
	u, err := scanProfile(row)
	if err != nil {
		return domain.UserProfile{}, mapErr(err)
	}
	return u, nil
}

func (p *PGRepo) UpdateProfile(ctx context.Context, u domain.UserProfile) (domain.UserProfile, error) {
	u.UpdatedAt = time.Now().UTC()
	tag, err := p.pool.Exec(ctx, `
        UPDATE user_profiles SET role=$2, display_name=$3, avatar_url=$4, swimmer_id=$5, updated_at=$6 WHERE id=$1
    `, u.ID, u.Role, nullStr(u.DisplayName), nullStr(u.AvatarURL), nullStr(u.SwimmerID), u.UpdatedAt)
	if err != nil {
		return domain.UserProfile{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.UserProfile{}, repository.ErrNotFound
	}
	return p.GetProfile(ctx, u.ID)
}

func (p *PGRepo) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := p.pool.Query(ctx, "SELECT "+profileCols+" FROM user_profiles ORDER BY created_at")
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.UserProfile
	for rows.Next() {
		u, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

const invitationCols = "id, inviter_id, email, role, token, status, expires_at, accepted_by, accepted_at, team_id, created_at"

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var inv domain.Invitation
	var acceptedBy, teamID *string
	err := row.Scan(&inv.ID, &inv.InviterID, &inv.Email, &inv.Role, &inv.Token, &inv.Status,
		&inv.ExpiresAt, &acceptedBy, &inv.AcceptedAt, &teamID, &inv.CreatedAt)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.AcceptedBy = strOrEmpty(acceptedBy)
	inv.TeamID = strOrEmpty(teamID)
	return inv, nil
}

func (p *PGRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) (domain.Invitation, error) {
	inv.ID = uuid.NewString()
	inv.CreatedAt = time.Now().UTC()
	_, err := p.pool.Exec(ctx, `
        INSERT INTO invitations (id, inviter_id, email, role, token, status, expires_at, team_id, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, inv.ID, inv.InviterID, inv.Email, inv.Role, inv.Token, inv.Status, inv.ExpiresAt, nullStr(inv.TeamID), inv.CreatedAt)
	if err != nil {
		return domain.Invitation{}, mapErr(err)
	}
	return inv, nil
}

func (p *PGRepo) GetInvitation(ctx context.Context, id string) (domain.Invitation, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+invitationCols+" FROM invitations WHERE id=$1", id)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapErr(err)
	}
	return inv, nil
}

func (p *PGRepo) GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+invitationCols+" FROM invitations WHERE token=$1", token)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapErr(err)
	}
	return inv, nil
}

func (p *PGRepo) ListInvitations(ctx context.Context, inviterID string) ([]domain.Invitation, error) {
	q := "SELECT " + invitationCols + " FROM invitations"
	var args []any
	if inviterID != "" {
		q += " WHERE inviter_id=$1"
		args = append(args, inviterID)
	}
	q += " ORDER BY created_at DESC"

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (p *PGRepo) AcceptInvitation(ctx context.Context, id string, u domain.UserProfile) (domain.UserProfile, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	tag, err := tx.Exec(ctx, `
        UPDATE invitations SET status='accepted', accepted_by=$2, accepted_at=$3
        WHERE id=$1 AND status='pending'
    `, id, u.ID, now)
	if err != nil {
		return domain.UserProfile{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.UserProfile{}, repository.ErrNotFound
	}

	u.CreatedAt, u.UpdatedAt = now, now
	_, err = tx.Exec(ctx, `
        INSERT INTO user_profiles (id, role, display_name, avatar_url, swimmer_id, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, u.ID, u.Role, nullStr(u.DisplayName), nullStr(u.AvatarURL), nullStr(u.SwimmerID), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return domain.UserProfile{}, mapErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.UserProfile{}, err
	}
	return u, nil
}

func (p *PGRepo) RevokeInvitation(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "UPDATE invitations SET status='revoked' WHERE id=$1 AND status='pending'", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) ExpirePendingInvitations(ctx context.Context, now time.Time) (int, error) {
	tag, err := p.pool.Exec(ctx, "UPDATE invitations SET status='expired' WHERE status='pending' AND expires_at < $1", now)
	if err != nil {
		return 0, mapErr(err)
	}
	return int(tag.RowsAffected()), nil
}

const followCols = "id, fan_id, swimmer_id, initiated_by, status, created_at, responded_at"

func scanFollow(row interface{ Scan(...any) error }) (domain.FanFollow, error) {
	var f domain.FanFollow
	err := row.Scan(&f.ID, &f.FanID, &f.SwimmerID, &f.InitiatedBy, &f.Status, &f.CreatedAt, &f.RespondedAt)
	if err != nil {
		return domain.FanFollow{}, err
	}
	return f, nil
}

func (p *PGRepo) CreateFollow(ctx context.Context, f domain.FanFollow) (domain.FanFollow, error) {
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now().UTC()
	_, err := p.pool.Exec(ctx, `
        INSERT INTO fan_follows (id, fan_id, swimmer_id, initiated_by, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)
    `, f.ID, f.FanID, f.SwimmerID, f.InitiatedBy, f.Status, f.CreatedAt)
	if err != nil {
		return domain.FanFollow{}, mapErr(err)
	}
	return f, nil
}

func (p *PGRepo) GetFollow(ctx context.Context, id string) (domain.FanFollow, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+followCols+" FROM fan_follows WHERE id=$1", id)
	f, err := scanFollow(row)
	if err != nil {
		return domain.FanFollow{}, mapErr(err)
	}
	return f, nil
}

func (p *PGRepo) GetFollowByPair(ctx context.Context, fanID, swimmerID string) (domain.FanFollow, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+followCols+" FROM fan_follows WHERE fan_id=$1 AND swimmer_id=$2", fanID, swimmerID)
	f, err := scanFollow(row)
	if err != nil {
		return domain.FanFollow{}, mapErr(err)
	}
	return f, nil
}

func (p *PGRepo) RespondFollow(ctx context.Context, id string, status domain.FollowStatus, at time.Time) (domain.FanFollow, error) {
	row := p.pool.QueryRow(ctx, `
        UPDATE fan_follows SET status=$2, responded_at=$3 WHERE id=$1 AND status='pending'
        RETURNING `+followCols, id, status, at)
	f, err := scanFollow(row)
	if err != nil {
		return domain.FanFollow{}, mapErr(err)
	}
	return f, nil
}

func (p *PGRepo) ListFollowsByFan(ctx context.Context, fanID string) ([]domain.FanFollow, error) {
	return p.listFollows(ctx, "fan_id", fanID)
}

func (p *PGRepo) ListFollowsBySwimmer(ctx context.Context, swimmerID string) ([]domain.FanFollow, error) {
	return p.listFollows(ctx, "swimmer_id", swimmerID)
}

func (p *PGRepo) listFollows(ctx context.Context, col, id string) ([]domain.FanFollow, error) {
	rows, err := p.pool.Query(ctx, "SELECT "+followCols+" FROM fan_follows WHERE "+col+"=$1 ORDER BY created_at DESC", id)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.FanFollow
	for rows.Next() {
		f, err := scanFollow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
