package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type AdminUserRepository struct {
	db uow.DBTX
}

func NewAdminUserRepository(db uow.DBTX) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) Create(
	ctx context.Context,
	args repoargs.CreateAdminUser,
) (*domain.AdminUser, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO admin_users (username, password)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at, username, password`,
		args.Username, args.Password,
	)
	user, err := scanAdminUser(row)
	if err != nil {
		return nil, convertErr(err, "creating admin user `%s`", args.Username)
	}
	return user, nil
}

func (r *AdminUserRepository) FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, created_at, updated_at, username, password
		FROM admin_users
		WHERE username = $1`,
		username,
	)
	user, err := scanAdminUser(row)
	if err != nil {
		return nil, convertErr(err, "finding admin user by username `%s`", username)
	}
	return user, nil
}

// Count используется при регистрации: первый администратор создается без
// авторизации, все последующие - только действующим администратором.
func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting admin users")
	}
	return count, nil
}

func scanAdminUser(row rowScanner) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Username, &u.Password)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &u, nil
}
