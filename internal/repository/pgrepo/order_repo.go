package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, created_at, updated_at, order_code, customer_id, seller_id, status, subtotal`

// List возвращает страницу заказов и общее количество под фильтром.
// Сортировка по дате создания по убыванию.
func (r *OrderRepository) List(
	ctx context.Context,
	filter repoargs.OrderListFilter,
) ([]domain.Order, int64, error) {
	p := filter.Pagination.Normalize()
	// пустые status/search отключают соответствующее условие
	where := `
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR order_code ILIKE '%' || $2 || '%')`

	var total int64
	countErr := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, string(filter.Status), filter.Search).
		Scan(&total)
	if countErr != nil {
		return nil, 0, convertErr(countErr, "counting orders")
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders`+where+`
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		string(filter.Status), filter.Search, p.Limit, filter.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning order row")
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating order rows")
	}
	return orders, total, nil
}

// GetWithItems возвращает заказ вместе с позициями.
func (r *OrderRepository) GetWithItems(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1`,
		id,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "getting order with id %d", id)
	}

	rows, itemsErr := r.db.Query(ctx, `
		SELECT id, order_id, product_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`,
		id,
	)
	if itemsErr != nil {
		return nil, convertErr(itemsErr, "getting items for order %d", id)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if scanErr := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Price, &item.Quantity,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning item for order %d", id)
		}
		order.Items = append(order.Items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating items for order %d", id)
	}
	return order, nil
}

func (r *OrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderColumns,
		id, string(status),
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating status for order %d", id)
	}
	return order, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.OrderCode,
		&o.CustomerID, &o.SellerID, &o.Status, &o.Subtotal,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &o, nil
}
