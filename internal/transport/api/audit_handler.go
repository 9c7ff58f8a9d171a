package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditSvs AuditServicer
}

func NewAuditHandler(auditSvs AuditServicer) *AuditHandler {
	return &AuditHandler{
		auditSvs: auditSvs,
	}
}

type AuditLogResponse struct {
	ID         int64                  `json:"ID"`
	CreatedAt  time.Time              `json:"createdAt"`
	ActorID    int64                  `json:"actorID"`
	Action     domain.AuditActionType `json:"action"`
	TargetKind string                 `json:"targetKind"`
	TargetID   string                 `json:"targetID"`
	Details    string                 `json:"details,omitempty"`
	RequestID  string                 `json:"requestID,omitempty"`
}

// Index GET RouteGroup + AuditLogsRoute. Фильтры: action, actorID, page, limit.
// Журнал только читается: записи создают сами сервисы внутри своих транзакций.
func (h *AuditHandler) Index(c *gin.Context) {
	actorID, _ := strconv.ParseInt(c.Query("actorID"), 10, 64)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, total, err := h.auditSvs.List(reqCtx, repoargs.AuditListFilter{
		Pagination: parsePagination(c),
		Action:     domain.AuditActionType(c.Query("action")),
		ActorID:    actorID,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		response[i] = AuditLogResponse{
			ID:         entry.ID,
			CreatedAt:  entry.CreatedAt,
			ActorID:    entry.ActorID,
			Action:     entry.Action,
			TargetKind: entry.TargetKind,
			TargetID:   entry.TargetID,
			Details:    entry.Details,
			RequestID:  entry.RequestID,
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": response, "total": total})
}
