package catalog_repo

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"protoparts/internal/domain/user"
	"protoparts/internal/infrastructure/storage/postgres"
)

const userTable = "users"

// UserRepo implements user.Repository.
type UserRepo struct {
	*BaseRepo[user.User, user.User]
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{
		BaseRepo: NewBaseRepo[user.User, user.User](txManager, Config{
			Table:   userTable,
			Entity:  "user",
			Columns: postgres.ExtractDBColumns[user.User](),
			Fields: Fields{
				user.FieldID:             col("id"),
				user.FieldUsername:       col("domain_identity"),
				user.FieldEmail:          col("email"),
				user.FieldName:           col("name"),
				user.FieldServiceAccount: col("service_account"),
				user.FieldCreatedAt:      col("created_at"),
			},
		}),
	}
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	u, err := r.BaseRepo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	return *u, nil
}

// GetByUsername retrieves a user by domain identity, ignoring case.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	q := r.rowSelect().Where(squirrel.Expr("lower("+col("domain_identity")+") = ?", strings.ToLower(username)))
	err := r.FindOne(ctx, &u, q, username)
	return u, err
}

// Create inserts the user and assigns its ID.
func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	id, err := r.Insert(ctx, u)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}
