package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/turi333-pixel/Gigstar/entity"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("not found")
)

func CreateUsersTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		avatar VARCHAR(512) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
		);`)
	return err
}

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) UserRepo {
	return UserRepo{
		db: db,
	}
}

func (r UserRepo) Add(ctx context.Context, user entity.User, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users
		(user_id, username, email, password_hash, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		user.ID, user.Username, user.Email, passwordHash, user.Avatar, user.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return ErrEmailTaken
	}

	return err
}

func (r UserRepo) Get(ctx context.Context, userID string) (entity.User, error) {
	row := r.db.QueryRowxContext(ctx, `SELECT user_id, username, email, avatar, created_at
		FROM users WHERE user_id = $1`, userID)

	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Avatar, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, ErrNotFound
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("scanning row: %w", err)
	}

	return u, nil
}

// GetByEmail also returns the stored password hash for credential checks.
func (r UserRepo) GetByEmail(ctx context.Context, email string) (entity.User, string, error) {
	row := r.db.QueryRowxContext(ctx, `SELECT user_id, username, email, password_hash, avatar, created_at
		FROM users WHERE email = $1`, email)

	var u entity.User
	var hash string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &hash, &u.Avatar, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, "", ErrNotFound
	}
	if err != nil {
		return entity.User{}, "", fmt.Errorf("scanning row: %w", err)
	}

	return u, hash, nil
}
