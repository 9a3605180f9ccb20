package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

const swimTimeCols = "id, swimmer_id, event_id, meet_id, team_id, suit_id, time_centiseconds, swim_date, round, lane, place, official, dq, dq_reason"

func scanSwimTime(row interface{ Scan(...any) error }) (domain.SwimTime, error) {
	var t domain.SwimTime
	var suitID, round, dqReason *string
	var lane, place *int
	err := row.Scan(&t.ID, &t.SwimmerID, &t.EventID, &t.MeetID, &t.TeamID, &suitID,
		&t.Centiseconds, &t.SwimDate, &round, &lane, &place, &t.Official, &t.DQ, &dqReason)
	if err != nil {
		return domain.SwimTime{}, err
	}
	t.SuitID = strOrEmpty(suitID)
	t.Round = domain.Round(strOrEmpty(round))
	t.Lane = intOrZero(lane)
	t.Place = intOrZero(place)
	t.DQReason = strOrEmpty(dqReason)
	return t, nil
}

func (p *PGRepo) CreateSwimTime(ctx context.Context, t domain.SwimTime) (domain.SwimTime, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.SwimTime{}, err
	}
	defer tx.Rollback(ctx)

	t.ID = uuid.NewString()
	_, err = tx.Exec(ctx, `
        INSERT INTO swim_times (id, swimmer_id, event_id, meet_id, team_id, suit_id, time_centiseconds, swim_date, round, lane, place, official, dq, dq_reason)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
    `, t.ID, t.SwimmerID, t.EventID, t.MeetID, t.TeamID, nullStr(t.SuitID),
		t.Centiseconds, t.SwimDate, nullStr(string(t.Round)), nullInt(t.Lane), nullInt(t.Place),
		t.Official, t.DQ, nullStr(t.DQReason))
	if err != nil {
		return domain.SwimTime{}, mapErr(err)
	}

	for i := range t.Splits {
		t.Splits[i].ID = uuid.NewString()
		t.Splits[i].SwimTimeID = t.ID
		_, err = tx.Exec(ctx, `
            INSERT INTO splits (id, swim_time_id, distance, time_centiseconds) VALUES ($1,$2,$3,$4)
        `, t.Splits[i].ID, t.ID, t.Splits[i].Distance, t.Splits[i].Centiseconds)
		if err != nil {
			return domain.SwimTime{}, mapErr(err)
		}
	}

	// Racing a suit counts against its lifespan.
	if t.SuitID != "" {
		_, err = tx.Exec(ctx, "UPDATE swimmer_suits SET race_count = race_count + 1 WHERE id=$1", t.SuitID)
		if err != nil {
			return domain.SwimTime{}, mapErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.SwimTime{}, err
	}
	return t, nil
}

func (p *PGRepo) GetSwimTime(ctx context.Context, id string) (domain.SwimTime, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+swimTimeCols+" FROM swim_times WHERE id=$1", id)
	t, err := scanSwimTime(row)
	if err != nil {
		return domain.SwimTime{}, mapErr(err)
	}

	rows, err := p.pool.Query(ctx, `
        SELECT id, swim_time_id, distance, time_centiseconds FROM splits WHERE swim_time_id=$1 ORDER BY distance
    `, id)
	if err != nil {
		return domain.SwimTime{}, mapErr(err)
	}
	defer rows.Close()
	for rows.Next() {
		var s domain.Split
		if err := rows.Scan(&s.ID, &s.SwimTimeID, &s.Distance, &s.Centiseconds); err != nil {
			return domain.SwimTime{}, err
		}
		t.Splits = append(t.Splits, s)
	}
	return t, rows.Err()
}

func (p *PGRepo) UpdateSwimTime(ctx context.Context, t domain.SwimTime) (domain.SwimTime, error) {
	tag, err := p.pool.Exec(ctx, `
        UPDATE swim_times
        SET time_centiseconds=$2, swim_date=$3, suit_id=$4, round=$5, lane=$6, place=$7, official=$8, dq=$9, dq_reason=$10
        WHERE id=$1
    `, t.ID, t.Centiseconds, t.SwimDate, nullStr(t.SuitID), nullStr(string(t.Round)),
		nullInt(t.Lane), nullInt(t.Place), t.Official, t.DQ, nullStr(t.DQReason))
	if err != nil {
		return domain.SwimTime{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.SwimTime{}, repository.ErrNotFound
	}
	return t, nil
}

func (p *PGRepo) DeleteSwimTime(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM swim_times WHERE id=$1", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) SearchSwimTimes(ctx context.Context, f repository.SwimTimeFilter) ([]domain.SwimTime, error) {
	q := "SELECT " + swimTimeCols + " FROM swim_times"
	var args []any
	var where []string
	add := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.SwimmerID != "" {
		add("swimmer_id=$%d", f.SwimmerID)
	}
	if f.EventID != "" {
		add("event_id=$%d", f.EventID)
	}
	if f.MeetID != "" {
		add("meet_id=$%d", f.MeetID)
	}
	if f.TeamID != "" {
		add("team_id=$%d", f.TeamID)
	}
	if f.Round != "" {
		add("round=$%d", f.Round)
	}
	if f.From != nil {
		add("swim_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("swim_date <= $%d", *f.To)
	}
	if f.OfficialOnly {
		where = append(where, "official")
	}
	if f.ExcludeDQ {
		where = append(where, "NOT dq")
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY swim_date DESC, time_centiseconds"
	q += limitOffset(&args, f.Limit, f.Offset)

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.SwimTime
	for rows.Next() {
		t, err := scanSwimTime(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (p *PGRepo) BestTimes(ctx context.Context, swimmerID string) ([]domain.SwimTime, error) {
	rows, err := p.pool.Query(ctx, `
        SELECT DISTINCT ON (event_id) `+swimTimeCols+`
        FROM swim_times
        WHERE swimmer_id=$1 AND official AND NOT dq
        ORDER BY event_id, time_centiseconds, swim_date
    `, swimmerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.SwimTime
	for rows.Next() {
		t, err := scanSwimTime(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
