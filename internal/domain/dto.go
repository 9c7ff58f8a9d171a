package domain

type OrderStatusType string

const (
	OrderStatusPending    OrderStatusType = "pending"
	OrderStatusProcessing OrderStatusType = "processing"
	OrderStatusShipped    OrderStatusType = "shipped"
	OrderStatusDelivered  OrderStatusType = "delivered"
	OrderStatusCancelled  OrderStatusType = "cancelled"
)

// KnownOrderStatuses используется для валидации входящих статусов.
func KnownOrderStatuses() []OrderStatusType {
	return []OrderStatusType{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

type PayoutStatusType string

const (
	PayoutStatusPending  PayoutStatusType = "pending"
	PayoutStatusApproved PayoutStatusType = "approved"
	PayoutStatusReleased PayoutStatusType = "released"
	PayoutStatusHeld     PayoutStatusType = "held"
	PayoutStatusRejected PayoutStatusType = "rejected"
)

type SellerStatusType string

const (
	SellerStatusPending  SellerStatusType = "pending"
	SellerStatusApproved SellerStatusType = "approved"
	SellerStatusRejected SellerStatusType = "rejected"
)

type AudienceType string

const (
	AudienceAll       AudienceType = "all"
	AudienceCustomers AudienceType = "customers"
	AudienceSellers   AudienceType = "sellers"
)

type AuditActionType string

const (
	AuditActionOrderStatusChanged  AuditActionType = "order_status_changed"
	AuditActionSellerApproved      AuditActionType = "seller_approved"
	AuditActionSellerRejected      AuditActionType = "seller_rejected"
	AuditActionSellerRestricted    AuditActionType = "seller_restricted"
	AuditActionCustomerToggled     AuditActionType = "customer_toggled"
	AuditActionCustomerDeleted     AuditActionType = "customer_deleted"
	AuditActionProductToggled      AuditActionType = "product_toggled"
	AuditActionProductDeleted      AuditActionType = "product_deleted"
	AuditActionWithdrawalApproved  AuditActionType = "withdrawal_approved"
	AuditActionWithdrawalRejected  AuditActionType = "withdrawal_rejected"
	AuditActionWithdrawalReleased  AuditActionType = "withdrawal_released"
	AuditActionWithdrawalHeld      AuditActionType = "withdrawal_held"

	AuditActionWithdrawalProofAttached AuditActionType = "withdrawal_proof_attached"
	AuditActionBannerSaved         AuditActionType = "banner_saved"
	AuditActionBannerDeleted       AuditActionType = "banner_deleted"
	AuditActionAnnouncementSaved   AuditActionType = "announcement_saved"
	AuditActionAnnouncementDeleted AuditActionType = "announcement_deleted"
)
