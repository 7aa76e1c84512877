package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRows = []string{"username", "first_name", "last_name", "email", "is_admin"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:  "u1",
		Password:  "hashed",
		FirstName: "U1First",
		LastName:  "U1Last",
		Email:     "u1@email.com",
	}

	rows := sqlmock.NewRows(userRows).
		AddRow(user.Username, user.FirstName, user.LastName, user.Email, false)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Password, user.FirstName, user.LastName, user.Email, false).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.Password != "" {
		t.Errorf("expected password to be absent from created user, got %q", created.Password)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "u1"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "u1"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindAllUsers_OrderedByUsername(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userRows).
		AddRow("u1", "U1First", "U1Last", "u1@email.com", false).
		AddRow("u2", "U2First", "U2Last", "u2@email.com", true)

	mock.ExpectQuery("SELECT .+ FROM users ORDER BY username ASC").
		WillReturnRows(rows)

	users, err := repo.FindAllUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "u1" || users[1].Username != "u2" {
		t.Errorf("unexpected user order: %v", users)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(userRows))

	_, err := repo.GetUser(context.Background(), "nope")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	updates := Updates{}.
		Add("first_name", "NewFirst").
		Add("email", "new@email.com")

	rows := sqlmock.NewRows(userRows).
		AddRow("u1", "NewFirst", "U1Last", "new@email.com", false)

	// set args come first, the identifying key last
	mock.ExpectQuery(`UPDATE users SET first_name = \$1, email = \$2 WHERE username = \$3`).
		WithArgs("NewFirst", "new@email.com", "u1").
		WillReturnRows(rows)

	updated, err := repo.UpdateUser(context.Background(), "u1", updates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FirstName != "NewFirst" || updated.Email != "new@email.com" {
		t.Errorf("unexpected updated user: %+v", updated)
	}
}

func TestUpdateUser_EmptyUpdates(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateUser(context.Background(), "u1", Updates{})
	if !errors.Is(err, ErrNoUpdateData) {
		t.Fatalf("expected ErrNoUpdateData, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users SET").
		WillReturnRows(sqlmock.NewRows(userRows))

	_, err := repo.UpdateUser(context.Background(), "nope", Updates{}.Add("email", "x@email.com"))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_SecondDeleteNotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteUser(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error on first delete: %v", err)
	}

	err := repo.DeleteUser(context.Background(), "u1")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on repeated delete, got %v", err)
	}
}
