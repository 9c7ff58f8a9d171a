package domain

// StatusLabel пара "человекочитаемая подпись + css класс" для бейджей в админке.
type StatusLabel struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

var defaultStatusLabel = StatusLabel{Label: "Unknown", Class: "badge-muted"}

var orderStatusLabels = map[OrderStatusType]StatusLabel{
	OrderStatusPending:    {Label: "Pending", Class: "badge-warning"},
	OrderStatusProcessing: {Label: "Processing", Class: "badge-info"},
	OrderStatusShipped:    {Label: "Shipped", Class: "badge-primary"},
	OrderStatusDelivered:  {Label: "Delivered", Class: "badge-success"},
	OrderStatusCancelled:  {Label: "Cancelled", Class: "badge-danger"},
}

var payoutStatusLabels = map[PayoutStatusType]StatusLabel{
	PayoutStatusPending:  {Label: "Pending", Class: "badge-warning"},
	PayoutStatusApproved: {Label: "Approved", Class: "badge-info"},
	PayoutStatusReleased: {Label: "Released", Class: "badge-success"},
	PayoutStatusHeld:     {Label: "Held", Class: "badge-danger"},
	PayoutStatusRejected: {Label: "Rejected", Class: "badge-muted"},
}

var sellerStatusLabels = map[SellerStatusType]StatusLabel{
	SellerStatusPending:  {Label: "Pending review", Class: "badge-warning"},
	SellerStatusApproved: {Label: "Approved", Class: "badge-success"},
	SellerStatusRejected: {Label: "Rejected", Class: "badge-danger"},
}

// OrderStatusLabel тотальное отображение статуса заказа в подпись.
// Для неизвестных значений возвращается подпись по умолчанию, а не ошибка.
func OrderStatusLabel(s OrderStatusType) StatusLabel {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return defaultStatusLabel
}

func PayoutStatusLabel(s PayoutStatusType) StatusLabel {
	if l, ok := payoutStatusLabels[s]; ok {
		return l
	}
	return defaultStatusLabel
}

func SellerStatusLabel(s SellerStatusType) StatusLabel {
	if l, ok := sellerStatusLabels[s]; ok {
		return l
	}
	return defaultStatusLabel
}
