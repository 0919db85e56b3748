package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jakubK11/timereport/internal/domain/user"
	"github.com/jakubK11/timereport/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByUsername implements user.UserRepository.
func (u *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, username).Scan(&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to query user %s: %w", username, err)
	}

	return usr, nil
}
