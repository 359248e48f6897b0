package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// PGRepo keeps the single active profile in Postgres so it survives
// restarts. There is exactly one row, keyed by a fixed id.
type PGRepo struct {
	db *sql.DB
}

const profileRowID = 1

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{db: db}
}

func (r *PGRepo) Get(ctx context.Context) (Profile, error) {
	const q = `SELECT job_description, must_have, good_to_have, updated_at FROM profiles WHERE id = $1`

	var (
		jobDescription string
		mustHave       string
		goodToHave     string
		updatedAt      time.Time
	)
	err := r.db.QueryRowContext(ctx, q, profileRowID).Scan(&jobDescription, &mustHave, &goodToHave, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return Profile{
		JobDescription: jobDescription,
		MustHave:       splitSkills(mustHave),
		GoodToHave:     splitSkills(goodToHave),
		UpdatedAt:      updatedAt,
	}, nil
}

func (r *PGRepo) Put(ctx context.Context, p Profile) error {
	const q = `
INSERT INTO profiles (id, job_description, must_have, good_to_have, updated_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (id) DO UPDATE SET
    job_description = EXCLUDED.job_description,
    must_have = EXCLUDED.must_have,
    good_to_have = EXCLUDED.good_to_have,
    updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, q, profileRowID, p.JobDescription,
		strings.Join(p.MustHave, ","), strings.Join(p.GoodToHave, ","))
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
