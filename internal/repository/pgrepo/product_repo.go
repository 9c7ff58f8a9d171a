package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type ProductRepository struct {
	db uow.DBTX
}

func NewProductRepository(db uow.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, created_at, updated_at, seller_id, name, price, published`

func (r *ProductRepository) List(
	ctx context.Context,
	filter repoargs.ProductListFilter,
) ([]domain.Product, int64, error) {
	p := filter.Pagination.Normalize()
	where := `
		WHERE ($1 = 0 OR seller_id = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')`

	var total int64
	countErr := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, filter.SellerID, filter.Search).
		Scan(&total)
	if countErr != nil {
		return nil, 0, convertErr(countErr, "counting products")
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products`+where+`
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		filter.SellerID, filter.Search, p.Limit, filter.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning product row")
		}
		products = append(products, *product)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating product rows")
	}
	return products, total, nil
}

func (r *ProductRepository) SetPublished(ctx context.Context, id int64, published bool) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE products
		SET published = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+productColumns,
		id, published,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "setting published=%t for product %d", published, id)
	}
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting product %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting product %d", id)
	}
	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.SellerID, &p.Name, &p.Price, &p.Published)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}
