package pg

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

func TestMapErr(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", pgx.ErrNoRows, repository.ErrNotFound},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "teams_name_team_type_key"}, repository.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "swim_times_meet_id_fkey"}, repository.ErrReference},
		{"check", &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "meets_lanes_check"}, repository.ErrCheckFail},
		{"not null", &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "name"}, repository.ErrCheckFail},
	}
	for _, c := range cases {
		if got := mapErr(c.in); !errors.Is(got, c.want) {
			t.Errorf("%s: mapErr = %v, want %v", c.name, got, c.want)
		}
	}

	other := errors.New("connection refused")
	if got := mapErr(other); got != other {
		t.Errorf("unknown error: mapErr = %v, want passthrough", got)
	}
	if mapErr(nil) != nil {
		t.Error("mapErr(nil) != nil")
	}
}

func TestNullHelpers(t *testing.T) {
	if nullStr("") != nil {
		t.Error(`nullStr("") should bind NULL`)
	}
	if nullStr("x") != "x" {
		t.Error(`nullStr("x") should bind the value`)
	}
	if nullInt(0) != nil {
		t.Error("nullInt(0) should bind NULL")
	}
	if nullInt(7) != 7 {
		t.Error("nullInt(7) should bind the value")
	}
	if strOrEmpty(nil) != "" {
		t.Error("strOrEmpty(nil) != \"\"")
	}
	if intOrZero(nil) != 0 {
		t.Error("intOrZero(nil) != 0")
	}
}

// Columns written through nullStr/nullInt receive explicit NULL for empty
// values, which NOT NULL rejects regardless of any column default. Keep the
// schema declarations nullable for exactly those columns.
func TestSchemaAllowsNullForOptionalColumns(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_schema.sql"))
	if err != nil {
		t.Skipf("schema file not available: %v", err)
	}
	schema := string(raw)

	optional := []string{
		// user_profiles
		"display_name", "avatar_url",
		// teams
		"lsc", "division",
		// suit_models
		"notes", "release_year", "msrp_cents",
		// swimmer_suits
		"nickname", "size", "color", "purchase_location",
		"purchase_price_cents", "retirement_reason",
	}
	for _, col := range optional {
		re := regexp.MustCompile(`(?m)^\s+` + col + `\s+\w+.*NOT NULL`)
		if re.MatchString(schema) {
			t.Errorf("column %s is NOT NULL but the repository binds NULL for empty values", col)
		}
	}
}
