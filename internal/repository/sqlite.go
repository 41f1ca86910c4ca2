package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

type sqliteUsers struct {
	conn *sql.DB
}

// NewSQLiteUserRepository - stores session records in the users table created by sqlite.Storage.Init.
func NewSQLiteUserRepository(conn *sql.DB) UserRepository {
	return &sqliteUsers{
		conn: conn,
	}
}

func (that *sqliteUsers) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (username, data) VALUES (?, ?)
		ON CONFLICT(username) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("can't marshal user: %w", err)
	}

	if _, err = that.conn.ExecContext(ctx, query, user.Username, string(data)); err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *sqliteUsers) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT data FROM users WHERE username = ?`

	var data string

	err := that.conn.QueryRowContext(ctx, query, username).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	var user entity.User
	if err = json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("can't unmarshal user: %w", err)
	}

	return &user, nil
}

func (that *sqliteUsers) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = ?`

	if _, err := that.conn.ExecContext(ctx, query, username); err != nil {
		return fmt.Errorf("can't delete user: %w", err)
	}

	return nil
}
