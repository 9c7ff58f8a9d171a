package repoargs

import "github.com/fsdevblog/groph-market/internal/domain"

type SellerListFilter struct {
	Pagination
	Status domain.SellerStatusType
	// Search подстрока для поиска по названию магазина и email.
	Search string
}

type CustomerListFilter struct {
	Pagination
	Search string
}

type ProductListFilter struct {
	Pagination
	// SellerID ноль - все продавцы.
	SellerID int64
	Search   string
}
