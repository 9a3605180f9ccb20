package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

// Standards always come back with their event joined in, the way the API
// serves them.
const standardCols = `ts.id, ts.gender, ts.age_group, ts.standard_name, ts.cut_level, ts.sanctioning_body,
        ts.time_centiseconds, ts.qualifying_start, ts.qualifying_end, ts.effective_year,
        e.id, e.stroke, e.distance, e.course`

func scanStandard(row interface{ Scan(...any) error }) (domain.TimeStandard, error) {
	var ts domain.TimeStandard
	var ageGroup *string
	err := row.Scan(&ts.ID, &ts.Gender, &ageGroup, &ts.StandardName, &ts.CutLevel, &ts.SanctioningBody,
		&ts.Centiseconds, &ts.QualifyingStart, &ts.QualifyingEnd, &ts.EffectiveYear,
		&ts.Event.ID, &ts.Event.Stroke, &ts.Event.Distance, &ts.Event.Course)
	if err != nil {
		return domain.TimeStandard{}, err
	}
	ts.AgeGroup = strOrEmpty(ageGroup)
	return ts, nil
}

func (p *PGRepo) CreateStandard(ctx context.Context, ts domain.TimeStandard) (domain.TimeStandard, error) {
	event, err := p.FindOrCreateEvent(ctx, ts.Event)
	if err != nil {
		return domain.TimeStandard{}, err
	}
	ts.Event = event

	ts.ID = uuid.NewString()
	_, err = p.pool.Exec(ctx, `
        INSERT INTO time_standards (id, event_id, gender, age_group, standard_name, cut_level, sanctioning_body,
                                    time_centiseconds, qualifying_start, qualifying_end, effective_year)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    `, ts.ID, event.ID, ts.Gender, nullStr(ts.AgeGroup), ts.StandardName, ts.CutLevel, ts.SanctioningBody,
		ts.Centiseconds, ts.QualifyingStart, ts.QualifyingEnd, ts.EffectiveYear)
	if err != nil {
		return domain.TimeStandard{}, mapErr(err)
	}
	return ts, nil
}

func (p *PGRepo) GetStandard(ctx context.Context, id string) (domain.TimeStandard, error) {
	row := p.pool.QueryRow(ctx, `
        SELECT `+standardCols+` FROM time_standards ts JOIN events e ON e.id = ts.event_id WHERE ts.id=$1
    `, id)
	ts, err := scanStandard(row)
	if err != nil {
		return domain.TimeStandard{}, mapErr(err)
	}
	return ts, nil
}

func (p *PGRepo) UpdateStandard(ctx context.Context, ts domain.TimeStandard) (domain.TimeStandard, error) {
	event, err := p.FindOrCreateEvent(ctx, ts.Event)
	if err != nil {
		return domain.TimeStandard{}, err
	}
	ts.Event = event

	tag, err := p.pool.Exec(ctx, `
        UPDATE time_standards
        SET event_id=$2, gender=$3, age_group=$4, standard_name=$5, cut_level=$6, sanctioning_body=$7,
            time_centiseconds=$8, qualifying_start=$9, qualifying_end=$10, effective_year=$11
        WHERE id=$1
    `, ts.ID, event.ID, ts.Gender, nullStr(ts.AgeGroup), ts.StandardName, ts.CutLevel, ts.SanctioningBody,
		ts.Centiseconds, ts.QualifyingStart, ts.QualifyingEnd, ts.EffectiveYear)
	if err != nil {
		return domain.TimeStandard{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.TimeStandard{}, repository.ErrNotFound
	}
	return ts, nil
}

func (p *PGRepo) DeleteStandard(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM time_standards WHERE id=$1", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) SearchStandards(ctx context.Context, f repository.StandardFilter) ([]domain.TimeStandard, error) {
	q := "SELECT " + standardCols + " FROM time_standards ts JOIN events e ON e.id = ts.event_id"
	var args []any
	var where []string
	add := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.Stroke != "" {
		add("e.stroke=$%d", f.Stroke)
	}
	if f.Distance != 0 {
		add("e.distance=$%d", f.Distance)
	}
	if f.Course != "" {
		add("e.course=$%d", f.Course)
	}
	if f.Gender != "" {
		add("ts.gender=$%d", f.Gender)
	}
	if f.AgeGroup != "" {
		add("ts.age_group=$%d", f.AgeGroup)
	}
	if f.SanctioningBody != "" {
		add("ts.sanctioning_body=$%d", f.SanctioningBody)
	}
	if f.StandardName != "" {
		add("ts.standard_name=$%d", f.StandardName)
	}
	if f.EffectiveYear != 0 {
		add("ts.effective_year=$%d", f.EffectiveYear)
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY ts.sanctioning_body, ts.standard_name, e.distance"
	q += limitOffset(&args, f.Limit, f.Offset)

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.TimeStandard
	for rows.Next() {
		ts, err := scanStandard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

func (p *PGRepo) StandardsForEvents(ctx context.Context, eventIDs []string, gender domain.Gender, ageGroup string, on time.Time, sanctioningBody string) ([]domain.TimeStandard, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	// NULL age_group means open to all ages; NULL window bounds are
	// open-ended; both window bounds are inclusive.
	q := `
        SELECT ` + standardCols + `
        FROM time_standards ts
        JOIN events e ON e.id = ts.event_id
        WHERE ts.event_id = ANY($1)
          AND ts.gender = $2
          AND (ts.age_group IS NULL OR ts.age_group = 'Open' OR ts.age_group = $3)
          AND (ts.qualifying_start IS NULL OR ts.qualifying_start <= $4)
          AND (ts.qualifying_end IS NULL OR ts.qualifying_end >= $4)`
	args := []any{eventIDs, gender, ageGroup, on}
	if sanctioningBody != "" {
		args = append(args, sanctioningBody)
		q += fmt.Sprintf(" AND ts.sanctioning_body = $%d", len(args))
	}
	q += " ORDER BY ts.time_centiseconds"

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.TimeStandard
	for rows.Next() {
		ts, err := scanStandard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}
