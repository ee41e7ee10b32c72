package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

const (
	createUserSQL     = `INSERT INTO users (email, name, password) VALUES ($1, $2, $3) RETURNING id`
	getUserByEmailSQL = `SELECT id, email, name, password FROM users WHERE email = $1`
	getUserByIDSQL    = `SELECT id, email, name, password FROM users WHERE id = $1`
)

// UserRepository persists reader accounts.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (domain.UserID, error) {
	var id int64
	err := r.db.QueryRow(ctx, createUserSQL, user.Email, user.Name, user.Credential).Scan(&id)
	if err != nil {
		return 0, storeErr("create user", err)
	}
	return domain.UserID(id), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, getUserByEmailSQL, email)
}

func (r *UserRepository) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	return r.getOne(ctx, getUserByIDSQL, int64(userID))
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var (
		id   int64
		user domain.User
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(&id, &user.Email, &user.Name, &user.Credential)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get user", err)
	}
	user.ID = domain.UserID(id)
	return &user, nil
}

// storeErr tags a persistence failure so handlers never mistake it for a
// credential or validation outcome.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domerrors.ErrStoreUnreachable, op, err)
}

// Ensure UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)
