package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.NewLogger("test")}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: db.logger}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userColumns = []string{"id", "email", "password_hash", "name", "avatar", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	ctx := context.Background()
	user := models.User{
		Email:        "gm@example.com",
		PasswordHash: "hash",
		Name:         "Mestre",
		Avatar:       models.DefaultAvatar,
	}

	rows := sqlmock.
		NewRows(userColumns).
		AddRow("9f2a", user.Email, user.PasswordHash, user.Name, user.Avatar, time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.PasswordHash, user.Name, user.Avatar).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "9f2a" {
		t.Errorf("expected ID=9f2a, got %s", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_EmailTaken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "gm@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, email, password_hash, name, avatar, created_at").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.
		NewRows(userColumns).
		AddRow("9f2a", "gm@example.com", "hash", "Mestre", "Sword", time.Now())

	mock.ExpectQuery("SELECT id, email, password_hash, name, avatar, created_at").
		WithArgs("9f2a").
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), "9f2a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Avatar != "Sword" {
		t.Errorf("expected avatar Sword, got %s", found.Avatar)
	}
}

func TestUpdateUserMeta_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("gone", "Novo Nome", "Moon").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUserMeta(context.Background(), "gone", "Novo Nome", "Moon")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUserMeta_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("9f2a", "Novo Nome", "Moon").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateUserMeta(context.Background(), "9f2a", "Novo Nome", "Moon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
