package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

const teamCols = "id, name, team_type, sanctioning_body, lsc, division, state, country"

func scanTeam(row interface{ Scan(...any) error }) (domain.Team, error) {
	var t domain.Team
	var lsc, division, state, country *string
	err := row.Scan(&t.ID, &t.Name, &t.Type, &t.SanctioningBody, &lsc, &division, &state, &country)
	if err != nil {
		return domain.Team{}, err
	}
	t.LSC = strOrEmpty(lsc)
	t.Division = strOrEmpty(division)
	t.State = strOrEmpty(state)
	t.Country = strOrEmpty(country)
	return t, nil
}

func (p *PGRepo) CreateTeam(ctx context.Context, t domain.Team) (domain.Team, error) {
	t.ID = uuid.NewString()
	_, err := p.pool.Exec(ctx, `
        INSERT INTO teams (id, name, team_type, sanctioning_body, lsc, division, state, country)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, t.ID, t.Name, t.Type, t.SanctioningBody, nullStr(t.LSC), nullStr(t.Division), nullStr(t.State), nullStr(t.Country))
	if err != nil {
		return domain.Team{}, mapErr(err)
	}
	return t, nil
}

func (p *PGRepo) GetTeam(ctx context.Context, id string) (domain.Team, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+teamCols+" FROM teams WHERE id=$1", id)
	t, err := scanTeam(row)
	if err != nil {
		return domain.Team{}, mapErr(err)
	}
	return t, nil
}

func (p *PGRepo) UpdateTeam(ctx context.Context, t domain.Team) (domain.Team, error) {
	tag, err := p.pool.Exec(ctx, `
        UPDATE teams SET name=$2, team_type=$3, sanctioning_body=$4, lsc=$5, division=$6, state=$7, country=$8
        WHERE id=$1
    `, t.ID, t.Name, t.Type, t.SanctioningBody, nullStr(t.LSC), nullStr(t.Division), nullStr(t.State), nullStr(t.Country))
	if err != nil {
		return domain.Team{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Team{}, repository.ErrNotFound
	}
	return t, nil
}

func (p *PGRepo) DeleteTeam(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM teams WHERE id=$1", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) SearchTeams(ctx context.Context, f repository.TeamFilter) ([]domain.Team, error) {
	q := "SELECT " + teamCols + " FROM teams"
	var args []any
	var where []string
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("team_type=$%d", len(args)))
	}
	if f.LSC != "" {
		args = append(args, f.LSC)
		where = append(where, fmt.Sprintf("lsc=$%d", len(args)))
	}
	if f.SanctioningBody != "" {
		args = append(args, f.SanctioningBody)
		where = append(where, fmt.Sprintf("sanctioning_body=$%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY name"
	q += limitOffset(&args, f.Limit, f.Offset)

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
