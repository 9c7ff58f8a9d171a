package repoargs

import (
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/shopspring/decimal"
)

type WithdrawalListFilter struct {
	Pagination
	Status domain.PayoutStatusType
}

// WithdrawalApprove фиксирует комиссию в момент одобрения заявки: ставка могла
// поменяться в конфигурации к моменту фактической выплаты.
type WithdrawalApprove struct {
	ID         int64
	Commission decimal.Decimal
}
