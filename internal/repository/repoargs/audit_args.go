package repoargs

import "github.com/fsdevblog/groph-market/internal/domain"

// AuditAppend одна запись журнала действий администратора.
type AuditAppend struct {
	ActorID    int64
	Action     domain.AuditActionType
	TargetKind string
	TargetID   string
	Details    string
	RequestID  string
}

type AuditListFilter struct {
	Pagination
	Action  domain.AuditActionType
	ActorID int64
}

type CreateAdminUser struct {
	Username string
	Password string
}
