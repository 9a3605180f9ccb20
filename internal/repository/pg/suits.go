package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

const suitModelCols = "id, brand, model_name, suit_type, is_tech_suit, gender, release_year, msrp_cents, expected_races_peak, expected_races_total, fina_approved, notes"

func scanSuitModel(row interface{ Scan(...any) error }) (domain.SuitModel, error) {
	var m domain.SuitModel
	var releaseYear, msrp *int
	var notes *string
	err := row.Scan(&m.ID, &m.Brand, &m.ModelName, &m.Type, &m.IsTechSuit, &m.Gender,
		&releaseYear, &msrp, &m.ExpectedRacesPeak, &m.ExpectedRacesTotal, &m.FINAApproved, &notes)
	if err != nil {
		return domain.SuitModel{}, err
	}
	m.ReleaseYear = intOrZero(releaseYear)
	m.MSRPCents = intOrZero(msrp)
	m.Notes = strOrEmpty(notes)
	return m, nil
}

func (p *PGRepo) CreateSuitModel(ctx context.Context, m domain.SuitModel) (domain.SuitModel, error) {
	m.ID = uuid.NewString()
	_, err := p.pool.Exec(ctx, `
        INSERT INTO suit_models (id, brand, model_name, suit_type, is_tech_suit, gender, release_year, msrp_cents, expected_races_peak, expected_races_total, fina_approved, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, m.ID, m.Brand, m.ModelName, m.Type, m.IsTechSuit, m.Gender,
		nullInt(m.ReleaseYear), nullInt(m.MSRPCents), m.ExpectedRacesPeak, m.ExpectedRacesTotal, m.FINAApproved, nullStr(m.Notes))
	if err != nil {
		return domain.SuitModel{}, mapErr(err)
	}
	return m, nil
}

func (p *PGRepo) GetSuitModel(ctx context.Context, id string) (domain.SuitModel, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+suitModelCols+" FROM suit_models WHERE id=$1", id)
	m, err := scanSuitModel(row)
	if err != nil {
		return domain.SuitModel{}, mapErr(err)
	}
	return m, nil
}

func (p *PGRepo) UpdateSuitModel(ctx context.Context, m domain.SuitModel) (domain.SuitModel, error) {
	tag, err := p.pool.Exec(ctx, `
        UPDATE suit_models
        SET brand=$2, model_name=$3, suit_type=$4, is_tech_suit=$5, gender=$6, release_year=$7,
            msrp_cents=$8, expected_races_peak=$9, expected_races_total=$10, fina_approved=$11, notes=$12
        WHERE id=$1
    `, m.ID, m.Brand, m.ModelName, m.Type, m.IsTechSuit, m.Gender, nullInt(m.ReleaseYear),
		nullInt(m.MSRPCents), m.ExpectedRacesPeak, m.ExpectedRacesTotal, m.FINAApproved, nullStr(m.Notes))
	if err != nil {
		return domain.SuitModel{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.SuitModel{}, repository.ErrNotFound
	}
	return m, nil
}

func (p *PGRepo) DeleteSuitModel(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM suit_models WHERE id=$1", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (p *PGRepo) ListSuitModels(ctx context.Context, brand string, techOnly bool) ([]domain.SuitModel, error) {
	q := "SELECT " + suitModelCols + " FROM suit_models"
	var args []any
	var where []string
	if brand != "" {
		args = append(args, brand)
		where = append(where, fmt.Sprintf("brand=$%d", len(args)))
	}
	if techOnly {
		where = append(where, "is_tech_suit")
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY brand, model_name"

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.SuitModel
	for rows.Next() {
		m, err := scanSuitModel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const swimmerSuitCols = "id, swimmer_id, suit_model_id, nickname, size, color, purchase_date, purchase_price_cents, purchase_location, wear_count, race_count, condition, retired_date, retirement_reason"

func scanSwimmerSuit(row interface{ Scan(...any) error }) (domain.SwimmerSuit, error) {
	var s domain.SwimmerSuit
	var nickname, size, color, location, reason *string
	var price *int
	err := row.Scan(&s.ID, &s.SwimmerID, &s.SuitModelID, &nickname, &size, &color,
		&s.PurchaseDate, &price, &location, &s.WearCount, &s.RaceCount, &s.Condition, &s.RetiredDate, &reason)
	if err != nil {
		return domain.SwimmerSuit{}, err
	}
	s.Nickname = strOrEmpty(nickname)
	s.Size = strOrEmpty(size)
	s.Color = strOrEmpty(color)
	s.PurchaseLocation = strOrEmpty(location)
	s.PurchasePriceCents = intOrZero(price)
	s.RetirementReason = strOrEmpty(reason)
	return s, nil
}

func (p *PGRepo) CreateSwimmerSuit(ctx context.Context, s domain.SwimmerSuit) (domain.SwimmerSuit, error) {
	s.ID = uuid.NewString()
	if s.Condition == "" {
		s.Condition = domain.SuitNew
	}
	_, err := p.pool.Exec(ctx, `
        INSERT INTO swimmer_suits (id, swimmer_id, suit_model_id, nickname, size, color, purchase_date, purchase_price_cents, purchase_location, wear_count, race_count, condition)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, s.ID, s.SwimmerID, s.SuitModelID, nullStr(s.Nickname), nullStr(s.Size), nullStr(s.Color),
		s.PurchaseDate, nullInt(s.PurchasePriceCents), nullStr(s.PurchaseLocation), s.WearCount, s.RaceCount, s.Condition)
	if err != nil {
		return domain.SwimmerSuit{}, mapErr(err)
	}
	return s, nil
}

func (p *PGRepo) GetSwimmerSuit(ctx context.Context, id string) (domain.SwimmerSuit, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+swimmerSuitCols+" FROM swimmer_suits WHERE id=$1", id)
	s, err := scanSwimmerSuit(row)
	if err != nil {
		return domain.SwimmerSuit{}, mapErr(err)
	}
	return s, nil
}

func (p *PGRepo) ListSwimmerSuits(ctx context.Context, swimmerID string, activeOnly bool) ([]domain.SwimmerSuit, error) {
	q := "SELECT " + swimmerSuitCols + " FROM swimmer_suits WHERE swimmer_id=$1"
	if activeOnly {
		q += " AND condition <> 'retired'"
	}
	q += " ORDER BY purchase_date DESC NULLS LAST"

	rows, err := p.pool.Query(ctx, q, swimmerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	var out []domain.SwimmerSuit
	for rows.Next() {
		s, err := scanSwimmerSuit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *PGRepo) IncrementWear(ctx context.Context, id string) (domain.SwimmerSuit, error) {
	return p.bumpCounter(ctx, id, "wear_count")
}

func (p *PGRepo) IncrementRace(ctx context.Context, id string) (domain.SwimmerSuit, error) {
	return p.bumpCounter(ctx, id, "race_count")
}

func (p *PGRepo) bumpCounter(ctx context.Context, id, col string) (domain.SwimmerSuit, error) {
	row := p.pool.QueryRow(ctx, `
        UPDATE swimmer_suits SET `+col+` = `+col+` + 1 WHERE id=$1
        RETURNING `+swimmerSuitCols, id)
	s, err := scanSwimmerSuit(row)
	if err != nil {
		return domain.SwimmerSuit{}, mapErr(err)
	}
	return s, nil
}

func (p *PGRepo) RetireSuit(ctx context.Context, id string, on time.Time, reason string) (domain.SwimmerSuit, error) {
	row := p.pool.QueryRow(ctx, `
        UPDATE swimmer_suits SET condition='retired', retired_date=$2, retirement_reason=$3 WHERE id=$1
        RETURNING `+swimmerSuitCols, id, on, nullStr(reason))
	s, err := scanSwimmerSuit(row)
	if err != nil {
		return domain.SwimmerSuit{}, mapErr(err)
	}
	return s, nil
}

func (p *PGRepo) DeleteSwimmerSuit(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM swimmer_suits WHERE id=$1", id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
