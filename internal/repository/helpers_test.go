package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"videohub/config"
)

const aliceUUID = "3f0c2a4e-1d2b-4c5d-8e9f-0a1b2c3d4e5f"

var userColumns = []string{
	"uuid", "username", "email", "fullname", "avatar", "cover_image", "password_hash",
	"refresh_token", "refresh_token_issued_at", "created_at", "updated_at",
}

func newSQLMockDB(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &config.Database{DB: sqlx.NewDb(db, "postgres")}, mock
}

func aliceRow(fullname string) *sqlmock.Rows {
	now := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(userColumns).AddRow(
		aliceUUID, "alice", "alice@x.com", fullname, "https://cdn.example.com/a.png", "",
		"$2a$10$hash", nil, nil, now, now,
	)
}
