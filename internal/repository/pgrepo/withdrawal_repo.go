package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type WithdrawalRepository struct {
	db uow.DBTX
}

func NewWithdrawalRepository(db uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// seller_name денормализован в выборку: экран модерации выплат ищет по нему,
// и тянуть продавца отдельным запросом на каждую строку смысла нет.
const withdrawalSelect = `
	SELECT w.id, w.created_at, w.updated_at, w.seller_id, s.shop_name,
	       w.amount, w.bank_name, w.account_number, w.provider, w.status,
	       w.commission_amount, w.proof_image_path, w.attempts
	FROM withdrawal_requests w
	JOIN sellers s ON s.id = w.seller_id`

func (r *WithdrawalRepository) List(
	ctx context.Context,
	filter repoargs.WithdrawalListFilter,
) ([]domain.WithdrawalRequest, int64, error) {
	p := filter.Pagination.Normalize()
	where := ` WHERE ($1 = '' OR w.status = $1)`

	var total int64
	countErr := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM withdrawal_requests w`+where, string(filter.Status),
	).Scan(&total)
	if countErr != nil {
		return nil, 0, convertErr(countErr, "counting withdrawals")
	}

	rows, err := r.db.Query(ctx, withdrawalSelect+where+`
		ORDER BY w.created_at DESC
		LIMIT $2 OFFSET $3`,
		string(filter.Status), p.Limit, filter.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing withdrawals")
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		w, scanErr := scanWithdrawal(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning withdrawal row")
		}
		withdrawals = append(withdrawals, *w)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating withdrawal rows")
	}
	return withdrawals, total, nil
}

func (r *WithdrawalRepository) GetByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	row := r.db.QueryRow(ctx, withdrawalSelect+` WHERE w.id = $1`, id)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "getting withdrawal with id %d", id)
	}
	return w, nil
}

// Approve переводит pending заявку в approved и фиксирует комиссию. Условие на
// текущий статус защищает от двойного клика по кнопке Approve: вторая попытка
// получит ErrRecordNotFound.
func (r *WithdrawalRepository) Approve(
	ctx context.Context,
	args repoargs.WithdrawalApprove,
) (*domain.WithdrawalRequest, error) {
	return r.transition(ctx, args.ID, `
		UPDATE withdrawal_requests
		SET status = $2, commission_amount = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4`,
		args.ID, string(domain.PayoutStatusApproved), args.Commission, string(domain.PayoutStatusPending),
	)
}

func (r *WithdrawalRepository) Reject(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return r.transition(ctx, id, `
		UPDATE withdrawal_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, string(domain.PayoutStatusRejected), string(domain.PayoutStatusPending),
	)
}

func (r *WithdrawalRepository) MarkReleased(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return r.transition(ctx, id, `
		UPDATE withdrawal_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, string(domain.PayoutStatusReleased), string(domain.PayoutStatusApproved),
	)
}

func (r *WithdrawalRepository) MarkHeld(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return r.transition(ctx, id, `
		UPDATE withdrawal_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, string(domain.PayoutStatusHeld), string(domain.PayoutStatusApproved),
	)
}

// GetApprovedForDisbursement возвращает одобренные заявки для фонового
// процессора выплат, старые - первыми.
func (r *WithdrawalRepository) GetApprovedForDisbursement(
	ctx context.Context,
	limit uint,
) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, withdrawalSelect+`
		WHERE w.status = $1
		ORDER BY w.updated_at ASC
		LIMIT $2`,
		string(domain.PayoutStatusApproved), limit,
	)
	if err != nil {
		return nil, convertErr(err, "getting withdrawals for disbursement")
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		w, scanErr := scanWithdrawal(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning withdrawal for disbursement")
		}
		withdrawals = append(withdrawals, *w)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating withdrawals for disbursement")
	}
	return withdrawals, nil
}

func (r *WithdrawalRepository) IncrementAttempts(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE withdrawal_requests
		SET attempts = attempts + 1, updated_at = NOW()
		WHERE id = $1`,
		id,
	)
	if err != nil {
		return convertErr(err, "incrementing attempts for withdrawal %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "incrementing attempts for withdrawal %d", id)
	}
	return nil
}

func (r *WithdrawalRepository) AttachProof(ctx context.Context, id int64, path string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE withdrawal_requests
		SET proof_image_path = $2, updated_at = NOW()
		WHERE id = $1`,
		id, path,
	)
	if err != nil {
		return convertErr(err, "attaching proof to withdrawal %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "attaching proof to withdrawal %d", id)
	}
	return nil
}

// transition выполняет UPDATE со status-условием и перечитывает строку.
// Exec+перечитка вместо RETURNING: RETURNING не умеет JOIN для seller_name.
func (r *WithdrawalRepository) transition(
	ctx context.Context,
	id int64,
	query string,
	queryArgs ...any,
) (*domain.WithdrawalRequest, error) {
	tag, err := r.db.Exec(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "transitioning withdrawal %d", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, convertErr(errNoRowsAffected, "transitioning withdrawal %d", id)
	}
	return r.GetByID(ctx, id)
}

func scanWithdrawal(row rowScanner) (*domain.WithdrawalRequest, error) {
	var w domain.WithdrawalRequest
	err := row.Scan(
		&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.SellerID, &w.SellerName,
		&w.Amount, &w.BankName, &w.AccountNumber, &w.Provider, &w.Status,
		&w.CommissionAmount, &w.ProofImagePath, &w.Attempts,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}
