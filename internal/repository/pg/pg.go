package pg

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

var _ repository.Repo = (*PGRepo)(nil)

type PGRepo struct {
	pool *pgxpool.Pool
}

func NewPGRepo(pool *pgxpool.Pool) *PGRepo {
	return &PGRepo{pool: pool}
}

// mapErr translates driver errors into the repository sentinels so callers
// never see pgconn details. Constraint names ride along for diagnostics.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w (%s)", repository.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w (%s)", repository.ErrReference, pgErr.ConstraintName)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w (%s)", repository.ErrCheckFail, pgErr.ConstraintName)
		case pgerrcode.NotNullViolation:
			return fmt.Errorf("%w (%s)", repository.ErrCheckFail, pgErr.ColumnName)
		}
	}
	return err
}

// limitOffset appends LIMIT/OFFSET clauses and their args when set.
func limitOffset(args *[]any, limit, offset int) string {
	s := ""
	if limit > 0 {
		*args = append(*args, limit)
		s += fmt.Sprintf(" LIMIT $%d", len(*args))
	}
	if offset > 0 {
		*args = append(*args, offset)
		s += fmt.Sprintf(" OFFSET $%d", len(*args))
	}
	return s
}

// nullStr maps "" to SQL NULL on the way in.
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullInt maps 0 to SQL NULL on the way in.
func nullInt(i int) any {
	if i == 0 {
		return nil
	}
	return i
}

// strOrEmpty unwraps a nullable text column.
func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
