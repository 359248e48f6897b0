package profiles

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"job_description", "must_have", "good_to_have", "updated_at"}).
		AddRow("Backend engineer", "python,linux", "docker", updated)
	mock.ExpectQuery(`SELECT job_description, must_have, good_to_have, updated_at FROM profiles`).
		WithArgs(1).
		WillReturnRows(rows)

	repo := NewPGRepo(db)
	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.JobDescription != "Backend engineer" {
		t.Fatalf("job description = %q", got.JobDescription)
	}
	if len(got.MustHave) != 2 || got.MustHave[0] != "python" || got.MustHave[1] != "linux" {
		t.Fatalf("must have = %v", got.MustHave)
	}
	if len(got.GoodToHave) != 1 || got.GoodToHave[0] != "docker" {
		t.Fatalf("good to have = %v", got.GoodToHave)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Fatalf("updated at = %v", got.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT job_description, must_have, good_to_have, updated_at FROM profiles`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"job_description", "must_have", "good_to_have", "updated_at"}))

	repo := NewPGRepo(db)
	if _, err := repo.Get(context.Background()); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoPutUpserts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO profiles`).
		WithArgs(1, "Backend engineer", "python,linux", "docker").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPGRepo(db)
	err = repo.Put(context.Background(), Profile{
		JobDescription: "Backend engineer",
		MustHave:       []string{"python", "linux"},
		GoodToHave:     []string{"docker"},
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
