package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type SellerRepository struct {
	db uow.DBTX
}

func NewSellerRepository(db uow.DBTX) *SellerRepository {
	return &SellerRepository{db: db}
}

const sellerColumns = `id, created_at, updated_at, shop_name, email, phone, city,
	bank_name, account_number, document_urls, status, restricted, orders_count, revenue, rating`

func (r *SellerRepository) List(
	ctx context.Context,
	filter repoargs.SellerListFilter,
) ([]domain.Seller, int64, error) {
	p := filter.Pagination.Normalize()
	where := `
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR shop_name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')`

	var total int64
	countErr := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sellers`+where, string(filter.Status), filter.Search).
		Scan(&total)
	if countErr != nil {
		return nil, 0, convertErr(countErr, "counting sellers")
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+sellerColumns+`
		FROM sellers`+where+`
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		string(filter.Status), filter.Search, p.Limit, filter.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing sellers")
	}
	defer rows.Close()

	var sellers []domain.Seller
	for rows.Next() {
		seller, scanErr := scanSeller(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning seller row")
		}
		sellers = append(sellers, *seller)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating seller rows")
	}
	return sellers, total, nil
}

func (r *SellerRepository) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sellerColumns+` FROM sellers WHERE id = $1`, id)
	seller, err := scanSeller(row)
	if err != nil {
		return nil, convertErr(err, "getting seller with id %d", id)
	}
	return seller, nil
}

// UpdateStatus переводит заявку продавца в новый статус только из состояния
// pending: повторное одобрение/отклонение вернет ErrRecordNotFound.
func (r *SellerRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.SellerStatusType,
) (*domain.Seller, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE sellers
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING `+sellerColumns,
		id, string(status), string(domain.SellerStatusPending),
	)
	seller, err := scanSeller(row)
	if err != nil {
		return nil, convertErr(err, "updating status for seller %d", id)
	}
	return seller, nil
}

func (r *SellerRepository) SetRestricted(ctx context.Context, id int64, restricted bool) (*domain.Seller, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE sellers
		SET restricted = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+sellerColumns,
		id, restricted,
	)
	seller, err := scanSeller(row)
	if err != nil {
		return nil, convertErr(err, "setting restricted=%t for seller %d", restricted, id)
	}
	return seller, nil
}

func scanSeller(row rowScanner) (*domain.Seller, error) {
	var s domain.Seller
	err := row.Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.ShopName, &s.Email, &s.Phone, &s.City,
		&s.BankName, &s.AccountNumber, &s.DocumentURLs, &s.Status, &s.Restricted,
		&s.OrdersCount, &s.Revenue, &s.Rating,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &s, nil
}
