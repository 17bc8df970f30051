package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/pickmate/fulfillment-api/internal/db"
	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Update(ctx context.Context, user *repository.User) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users
        SET
            name = $1,
            device_id = $2,
            updated_at = $3
        WHERE id = $4
    `, user.Name, user.DeviceID, user.UpdatedAt, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// EnsureSeedUser provisions the bootstrap account a fresh deployment
// needs before anyone can log in. The password is stored bcrypt-hashed;
// an existing username is left untouched so reruns are idempotent.
func (r *UserRepo) EnsureSeedUser(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.Exec(ctx, `
        INSERT INTO users (id, username, password, name, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
        ON CONFLICT (username) DO NOTHING
    `, uuid.NewString(), username, string(hash), username, now)
	if err != nil {
		return fmt.Errorf("failed to seed user %s: %w", username, err)
	}
	return nil
}

// Authenticate checks a username/password pair against the stored
// bcrypt hash. A missing user and a wrong password are both reported
// as ErrInvalidCredentials so callers cannot probe for usernames.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, repository.ErrInvalidCredentials
	}
	return &user, nil
}
