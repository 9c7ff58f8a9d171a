package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdminUser struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
}

type Seller struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ShopName      string
	Email         string
	Phone         string
	City          string
	BankName      string
	AccountNumber string
	// DocumentURLs ссылки на документы, приложенные к заявке продавца.
	DocumentURLs []string
	Status       SellerStatusType
	Restricted   bool
	OrdersCount  int64
	Revenue      decimal.Decimal
	Rating       decimal.Decimal
}

type Customer struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Email     string
	Active    bool
}

type Order struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	OrderCode  string
	CustomerID int64
	SellerID   int64
	Status     OrderStatusType
	Subtotal   decimal.Decimal
	Items      []OrderItem
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int32
}

type Product struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	SellerID  int64
	Name      string
	Price     decimal.Decimal
	Published bool
}

type WithdrawalRequest struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SellerID      int64
	SellerName    string
	Amount        decimal.Decimal
	BankName      string
	AccountNumber string
	Provider      string
	Status        PayoutStatusType
	// CommissionAmount комиссия площадки, зафиксированная при одобрении заявки.
	CommissionAmount decimal.Decimal
	// ProofImagePath путь к загруженному подтверждению выплаты (если есть).
	ProofImagePath string
	// Attempts количество неудачных попыток выплаты через платежный шлюз.
	Attempts uint
}

type Banner struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	ImageURL  string
	LinkURL   string
	StartsAt  time.Time
	EndsAt    time.Time
	Active    bool
	Audience  AudienceType
}

type Announcement struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Body      string
	StartsAt  time.Time
	EndsAt    time.Time
	Active    bool
	Audience  AudienceType
}

type AuditLogEntry struct {
	ID         int64
	CreatedAt  time.Time
	ActorID    int64
	Action     AuditActionType
	TargetKind string
	TargetID   string
	Details    string
	RequestID  string
}
