package pg

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

func (p *PGRepo) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	var e domain.Event
	err := p.pool.QueryRow(ctx, "SELECT id, stroke, distance, course FROM events WHERE id=$1", id).
		Scan(&e.ID, &e.Stroke, &e.Distance, &e.Course)
	if err != nil {
		return domain.Event{}, mapErr(err)
	}
	return e, nil
}

func (p *PGRepo) FindEvent(ctx context.Context, stroke domain.Stroke, distance int, course domain.Course) (domain.Event, error) {
	var e domain.Event
	err := p.pool.QueryRow(ctx, `
        SELECT id, stroke, distance, course FROM events WHERE stroke=$1 AND distance=$2 AND course=$3
    `, stroke, distance, course).Scan(&e.ID, &e.Stroke, &e.Distance, &e.Course)
	if err != nil {
		return domain.Event{}, mapErr(err)
	}
	return e, nil
}

func (p *PGRepo) FindOrCreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	found, err := p.FindEvent(ctx, e.Stroke, e.Distance, e.Course)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return domain.Event{}, err
	}

	e.ID = uuid.NewString()
	_, err = p.pool.Exec(ctx, "INSERT INTO events (id, stroke, distance, course) VALUES ($1,$2,$3,$4)",
		e.ID, e.Stroke, e.Distance, e.Course)
	if err != nil {
		// Lost a race with a concurrent insert: the row is there now.
		if errors.Is(mapErr(err), repository.ErrConflict) {
			return p.FindEvent(ctx, e.Stroke, e.Distance, e.Course)
		}
		return domain.Event{}, mapErr(err)
	}
	return e, nil
}

func (p *PGRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := p.pool.Query(ctx, "SELECT id, stroke, distance, course FROM events ORDER BY course, stroke, distance")
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Stroke, &e.Distance, &e.Course); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
