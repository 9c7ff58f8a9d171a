package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

// Actor администратор, от имени которого выполняется действие. RequestID
// связывает запись журнала с конкретным http запросом.
type Actor struct {
	ID        int64
	RequestID string
}

// appendAudit пишет запись журнала внутри той же транзакции, что и само
// действие: мутация без следа в журнале невозможна.
func appendAudit(
	ctx context.Context,
	tx uow.TX,
	actor Actor,
	action domain.AuditActionType,
	targetKind, targetID, details string,
) error {
	auditRepo, repoErr := uow.GetAs[AuditLogRepository](tx, uow.RepositoryName(repoargs.AuditLogRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	if _, err := auditRepo.Append(ctx, repoargs.AuditAppend{
		ActorID:    actor.ID,
		Action:     action,
		TargetKind: targetKind,
		TargetID:   targetID,
		Details:    details,
		RequestID:  actor.RequestID,
	}); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

// AuditService читающая сторона журнала.
type AuditService struct {
	auditRepo AuditLogRepository
}

func NewAuditService(u uow.UOW) (*AuditService, error) {
	auditRepo, err := uow.GetRepositoryAs[AuditLogRepository](u, uow.RepositoryName(repoargs.AuditLogRepoName))
	if err != nil {
		return nil, err
	}
	return &AuditService{auditRepo: auditRepo}, nil
}

func (s *AuditService) List(
	ctx context.Context,
	filter repoargs.AuditListFilter,
) ([]domain.AuditLogEntry, int64, error) {
	entries, total, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("listing audit entries: %w", err)
	}
	return entries, total, nil
}
