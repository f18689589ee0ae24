package viewrecordinfra_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord/viewrecordinfra"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newRepo(t *testing.T) (*viewrecordinfra.PostgresViewRecordRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return viewrecordinfra.NewPostgresViewRecordRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestBatchCommitsInOneTransaction(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM view_records").WithArgs("old-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM view_records").WithArgs("old-2").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO view_records").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch := repo.Batch()
	batch.Delete("old-1")
	batch.Delete("old-2")
	batch.Set(viewrecord.ViewRecord{ID: "new-1", PostingID: "p-1", Date: "2024-05-01", ViewsIncrease: 7, CreatedAt: time.Now()})

	if err := batch.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchRollsBackOnFailure(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM view_records").WithArgs("old-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO view_records").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	batch := repo.Batch()
	batch.Delete("old-1")
	batch.Set(viewrecord.ViewRecord{ID: "new-1", PostingID: "p-1", Date: "2024-05-01", ViewsIncrease: 7})

	if err := batch.Commit(context.Background()); err == nil {
		t.Fatal("expected commit error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestEmptyBatchIsNoop(t *testing.T) {
	repo, mock := newRepo(t)
	if err := repo.Batch().Commit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
