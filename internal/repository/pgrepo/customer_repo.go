package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type CustomerRepository struct {
	db uow.DBTX
}

func NewCustomerRepository(db uow.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, created_at, updated_at, username, email, active`

func (r *CustomerRepository) List(
	ctx context.Context,
	filter repoargs.CustomerListFilter,
) ([]domain.Customer, int64, error) {
	p := filter.Pagination.Normalize()
	where := ` WHERE ($1 = '' OR username ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+where, filter.Search).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting customers")
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers`+where+`
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		filter.Search, p.Limit, filter.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing customers")
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if scanErr := rows.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Username, &c.Email, &c.Active); scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning customer row")
		}
		customers = append(customers, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating customer rows")
	}
	return customers, total, nil
}

func (r *CustomerRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRow(ctx, `
		UPDATE customers
		SET active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+customerColumns,
		id, active,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Username, &c.Email, &c.Active)
	if err != nil {
		return nil, convertErr(err, "setting active=%t for customer %d", active, id)
	}
	return &c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting customer %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting customer %d", id)
	}
	return nil
}
