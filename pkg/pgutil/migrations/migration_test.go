package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/migrate"
)

// Test DAO for testing purposes
type testDao struct {
	bun.BaseModel `bun:"table:test_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
}

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreateSchema_IfNotExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "test_table"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := CreateSchema(context.Background(), db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDropTables_Cascade(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DROP TABLE IF EXISTS "test_table".*CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := DropTables(context.Background(), db, &testDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateExprIndex(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS "idx_test_lower_name" ON "test_table".*lower\(name\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := CreateExprIndex(context.Background(), db, &testDao{}, "idx_test_lower_name", "lower(name)"); err != nil {
		t.Fatalf("CreateExprIndex() failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateExprIndex_NilModel(t *testing.T) {
	db, _ := newMockDB(t)

	if err := CreateExprIndex(context.Background(), db, nil, "idx", "lower(name)"); err == nil {
		t.Fatal("expected error for nil model")
	}
}

func TestExecStatements_StopsAtFirstFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("SELECT 2").WillReturnError(errors.New("syntax error"))

	err := ExecStatements(context.Background(), db, "SELECT 1", "SELECT 2", "SELECT 3")
	if err == nil {
		t.Fatal("expected error from second statement")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRunMigrations_BadCommands(t *testing.T) {
	db, _ := newMockDB(t)
	migrator := migrate.NewMigrator(db, migrate.NewMigrations())

	if err := RunMigrations(context.Background(), migrator); err == nil {
		t.Fatal("expected error when no command is given")
	}
	if err := RunMigrations(context.Background(), migrator, "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
