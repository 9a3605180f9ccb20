package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

const meetCols = "id, name, location, city, state, country, start_date, end_date, course, lanes, indoor, sanctioning_body, meet_type"

func scanMeet(row interface{ Scan(...any) error }) (domain.Meet, error) {
	var m domain.Meet
	var state *string
	err := row.Scan(&m.ID, &m.Name, &m.Location, &m.City, &state, &m.Country,
		&m.StartDate, &m.EndDate, &m.Course, &m.Lanes, &m.Indoor, &m.SanctioningBody, &m.Type)
	if err != nil {
		return domain.Meet{}, err
	}
	m.State = strOrEmpty(state)
	return m, nil
}

func (p *PGRepo) CreateMeet(ctx context.Context, m domain.Meet) (domain.Meet, error) {
	m.ID = uuid.NewString()
	_, err := p.pool.Exec(ctx, `
        INSERT INTO meets (id, name, location, city, state, country, start_date, end_date, course, lanes, indoor, sanctioning_body, meet_type)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    `, m.ID, m.Name, m.Location, m.City, nullStr(m.State), m.Country,
		m.StartDate, m.EndDate, m.Course, m.Lanes, m.Indoor, m.SanctioningBody, m.Type)
	if err != nil {
		return domain.Meet{}, mapErr(err)
	}
	return m, nil
}

func (p *PGRepo) GetMeet(ctx context.Context, id string) (domain.Meet, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+meetCols+" FROM meets WHERE id=$1", id)
	m, err := scanMeet(row)
	if err != nil {
		return domain.Meet{}, mapErr(err)
	}
	return m, nil
}

func (p *PGRepo) UpdateMeet(ctx context.Context, m domain.Meet) (domain.Meet, error) {
	tag, err := p.pool.Exec(ctx, `
        UPDATE meets
        SET name=$2, location=$3, city=$4, state=$5, country=$6, start_date=$7, end_date=$8,
            course=$9, lanes=$10, indoor=$11, sanctioning_body=$12, meet_type=$13
        WHERE id=$1
    `, m.ID, m.Name, m.Location, m.City, nullStr(m.State), m.Country, m.StartDate, m.EndDate,
		m.Course, m.Lanes, m.Indoor, m.SanctioningBody, m.Type)
	if err != nil {
		return domain.Meet{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Meet{}, repository.ErrNotFound
	}
	return m, nil
}

func (p *PGRepo) DeleteMeet(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM meets WHERE id=$1", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) SearchMeets(ctx context.Context, f repository.MeetFilter) ([]domain.Meet, error) {
	q := "SELECT " + meetCols + " FROM meets"
	var args []any
	var where []string
	if f.Course != "" {
		args = append(args, f.Course)
		where = append(where, fmt.Sprintf("course=$%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("meet_type=$%d", len(args)))
	}
	if f.StartFrom != nil {
		args = append(args, *f.StartFrom)
		where = append(where, fmt.Sprintf("start_date >= $%d", len(args)))
	}
	if f.StartTo != nil {
		args = append(args, *f.StartTo)
		where = append(where, fmt.Sprintf("start_date <= $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY start_date DESC"
	q += limitOffset(&args, f.Limit, f.Offset)

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.Meet
	for rows.Next() {
		m, err := scanMeet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (p *PGRepo) AddMeetTeam(ctx context.Context, mt domain.MeetTeam) (domain.MeetTeam, error) {
	mt.ID = uuid.NewString()
	_, err := p.pool.Exec(ctx, `
        INSERT INTO meet_teams (id, meet_id, team_id, is_host) VALUES ($1,$2,$3,$4)
    `, mt.ID, mt.MeetID, mt.TeamID, mt.IsHost)
	if err != nil {
		return domain.MeetTeam{}, mapErr(err)
	}
	return mt, nil
}

func (p *PGRepo) RemoveMeetTeam(ctx context.Context, meetID, teamID string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM meet_teams WHERE meet_id=$1 AND team_id=$2", meetID, teamID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) ListMeetTeams(ctx context.Context, meetID string) ([]domain.MeetTeam, error) {
	rows, err := p.pool.Query(ctx, "SELECT id, meet_id, team_id, is_host FROM meet_teams WHERE meet_id=$1", meetID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.MeetTeam
	for rows.Next() {
		var mt domain.MeetTeam
		if err := rows.Scan(&mt.ID, &mt.MeetID, &mt.TeamID, &mt.IsHost); err != nil {
			return nil, err
		}
		out = append(out, mt)
	}
	return out, rows.Err()
}
