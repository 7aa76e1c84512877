package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/models"
)

func newTestListRepo(t *testing.T) (*listRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &listRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var listRows = []string{"id", "username", "searched_address", "arrival_date", "departure_date"}

func testDates() (time.Time, time.Time) {
	arrival := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC)
	return arrival, departure
}

func TestCreateList_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	arrival, departure := testDates()
	list := models.DestinationList{
		Username:        "u1",
		SearchedAddress: "new york ny",
		ArrivalDate:     arrival,
		DepartureDate:   departure,
	}

	rows := sqlmock.NewRows(listRows).
		AddRow(int64(1), list.Username, list.SearchedAddress, arrival, departure)

	mock.ExpectQuery("INSERT INTO destination_lists").
		WithArgs(list.Username, list.SearchedAddress, arrival, departure).
		WillReturnRows(rows)

	created, err := repo.CreateList(context.Background(), list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected server-assigned id 1, got %d", created.ID)
	}
	if created.SearchedAddress != list.SearchedAddress {
		t.Errorf("expected address %q, got %q", list.SearchedAddress, created.SearchedAddress)
	}
}

func TestCreateList_UnknownOwner(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO destination_lists").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateList(context.Background(), models.DestinationList{Username: "ghost"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindListsForUser_Empty(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM destination_lists").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(listRows))

	lists, err := repo.FindListsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("expected empty slice, got %v", lists)
	}
}

func TestGetList_NotFound(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM destination_lists").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(listRows))

	_, err := repo.GetList(context.Background(), 99)
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestUpdateList_PartialFields(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	arrival, departure := testDates()
	updates := Updates{}.Add("searched_address", "paris france")

	rows := sqlmock.NewRows(listRows).
		AddRow(int64(2), "u1", "paris france", arrival, departure)

	mock.ExpectQuery(`UPDATE destination_lists SET searched_address = \$1 WHERE id = \$2`).
		WithArgs("paris france", int64(2)).
		WillReturnRows(rows)

	updated, err := repo.UpdateList(context.Background(), 2, updates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SearchedAddress != "paris france" {
		t.Errorf("unexpected updated list: %+v", updated)
	}
}

func TestDeleteList_NotFound(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM destination_lists").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteList(context.Background(), 42)
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}
