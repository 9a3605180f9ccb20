package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

const swimmerCols = "id, first_name, last_name, date_of_birth, gender, user_id, usa_swimming_id, swimcloud_url"

func scanSwimmer(row interface{ Scan(...any) error }) (domain.Swimmer, error) {
	var s domain.Swimmer
	var userID, usaID, swimcloud *string
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.DateOfBirth, &s.Gender, &userID, &usaID, &swimcloud)
	if err != nil {
		return domain.Swimmer{}, err
	}
	s.UserID = strOrEmpty(userID)
	s.USASwimmingID = strOrEmpty(usaID)
	s.SwimcloudURL = strOrEmpty(swimcloud)
	return s, nil
}

func (p *PGRepo) CreateSwimmer(ctx context.Context, s domain.Swimmer) (domain.Swimmer, error) {
	s.ID = uuid.NewString()
	_, err := p.pool.Exec(ctx, `
        INSERT INTO swimmers (id, first_name, last_name, date_of_birth, gender, user_id, usa_swimming_id, swimcloud_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, s.ID, s.FirstName, s.LastName, s.DateOfBirth, s.Gender, nullStr(s.UserID), nullStr(s.USASwimmingID), nullStr(s.SwimcloudURL))
	if err != nil {
		return domain.Swimmer{}, mapErr(err)
	}
	return s, nil
}

func (p *PGRepo) GetSwimmer(ctx context.Context, id string) (domain.Swimmer, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+swimmerCols+" FROM swimmers WHERE id=$1", id)
	s, err := scanSwimmer(row)
	if err != nil {
		return domain.Swimmer{}, mapErr(err)
	}
	return s, nil
}

func (p *PGRepo) UpdateSwimmer(ctx context.Context, s domain.Swimmer) (domain.Swimmer, error) {
	tag, err := p.pool.Exec(ctx, `
        UPDATE swimmers
        SET first_name=$2, last_name=$3, date_of_birth=$4, gender=$5, user_id=$6, usa_swimming_id=$7, swimcloud_url=$8
        WHERE id=$1
    `, s.ID, s.FirstName, s.LastName, s.DateOfBirth, s.Gender, nullStr(s.UserID), nullStr(s.USASwimmingID), nullStr(s.SwimcloudURL))
	if err != nil {
		return domain.Swimmer{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Swimmer{}, repository.ErrNotFound
	}
	return s, nil
}

func (p *PGRepo) DeleteSwimmer(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM swimmers WHERE id=$1", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) SearchSwimmers(ctx context.Context, f repository.SwimmerFilter) ([]domain.Swimmer, error) {
	q := "SELECT DISTINCT s.id, s.first_name, s.last_name, s.date_of_birth, s.gender, s.user_id, s.usa_swimming_id, s.swimcloud_url FROM swimmers s"
	var args []any
	var where []string
	if f.TeamID != "" {
		q += " JOIN swimmer_teams st ON st.swimmer_id = s.id"
		args = append(args, f.TeamID)
		where = append(where, fmt.Sprintf("st.team_id=$%d", len(args)))
	}
	if f.Gender != "" {
		args = append(args, f.Gender)
		where = append(where, fmt.Sprintf("s.gender=$%d", len(args)))
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where = append(where, fmt.Sprintf("(s.first_name ILIKE $%d OR s.last_name ILIKE $%d)", len(args), len(args)))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY s.last_name, s.first_name"
	q += limitOffset(&args, f.Limit, f.Offset)

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.Swimmer
	for rows.Next() {
		s, err := scanSwimmer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *PGRepo) AssignTeam(ctx context.Context, st domain.SwimmerTeam) (domain.SwimmerTeam, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.SwimmerTeam{}, err
	}
	defer tx.Rollback(ctx)

	// An open membership on the same team blocks a second assignment.
	var open bool
	err = tx.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM swimmer_teams WHERE swimmer_id=$1 AND team_id=$2 AND end_date IS NULL)
    `, st.SwimmerID, st.TeamID).Scan(&open)
	if err != nil {
		return domain.SwimmerTeam{}, mapErr(err)
	}
	if open {
		return domain.SwimmerTeam{}, repository.ErrConflict
	}

	st.ID = uuid.NewString()
	_, err = tx.Exec(ctx, `
        INSERT INTO swimmer_teams (id, swimmer_id, team_id, start_date, end_date)
        VALUES ($1,$2,$3,$4,$5)
    `, st.ID, st.SwimmerID, st.TeamID, st.StartDate, st.EndDate)
	if err != nil {
		return domain.SwimmerTeam{}, mapErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.SwimmerTeam{}, err
	}
	return st, nil
}

func (p *PGRepo) EndMembership(ctx context.Context, swimmerID, teamID string, end time.Time) error {
	tag, err := p.pool.Exec(ctx, `
        UPDATE swimmer_teams SET end_date=$3 WHERE swimmer_id=$1 AND team_id=$2 AND end_date IS NULL
    `, swimmerID, teamID, end)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) ListSwimmerTeams(ctx context.Context, swimmerID string) ([]domain.SwimmerTeam, error) {
	rows, err := p.pool.Query(ctx, `
        SELECT st.id, st.swimmer_id, st.team_id, t.name, st.start_date, st.end_date
        FROM swimmer_teams st
        JOIN teams t ON t.id = st.team_id
        WHERE st.swimmer_id=$1
        ORDER BY st.start_date DESC
    `, swimmerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.SwimmerTeam
	for rows.Next() {
		var st domain.SwimmerTeam
		if err := rows.Scan(&st.ID, &st.SwimmerID, &st.TeamID, &st.TeamName, &st.StartDate, &st.EndDate); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
