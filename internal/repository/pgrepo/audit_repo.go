package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

// AuditLogRepository append-only журнал действий администраторов. Update/Delete
// методов нет намеренно.
type AuditLogRepository struct {
	db uow.DBTX
}

func NewAuditLogRepository(db uow.DBTX) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

const auditColumns = `id, created_at, COALESCE(actor_id, 0), action, target_kind, target_id, details, request_id`

func (r *AuditLogRepository) Append(
	ctx context.Context,
	args repoargs.AuditAppend,
) (*domain.AuditLogEntry, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO audit_log (actor_id, action, target_kind, target_id, details, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+auditColumns,
		actorIDOrNull(args.ActorID), string(args.Action), args.TargetKind, args.TargetID, args.Details, args.RequestID,
	)
	entry, err := scanAuditEntry(row)
	if err != nil {
		return nil, convertErr(err, "appending audit entry `%s`", args.Action)
	}
	return entry, nil
}

func (r *AuditLogRepository) List(
	ctx context.Context,
	filter repoargs.AuditListFilter,
) ([]domain.AuditLogEntry, int64, error) {
	p := filter.Pagination.Normalize()
	where := `
		WHERE ($1 = '' OR action = $1)
		  AND ($2 = 0 OR actor_id = $2)`

	var total int64
	countErr := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`+where, string(filter.Action), filter.ActorID).
		Scan(&total)
	if countErr != nil {
		return nil, 0, convertErr(countErr, "counting audit entries")
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+auditColumns+`
		FROM audit_log`+where+`
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		string(filter.Action), filter.ActorID, p.Limit, filter.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing audit entries")
	}
	defer rows.Close()

	var entries []domain.AuditLogEntry
	for rows.Next() {
		entry, scanErr := scanAuditEntry(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning audit row")
		}
		entries = append(entries, *entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating audit rows")
	}
	return entries, total, nil
}

// actorIDOrNull системные действия (выплаты фоновым обработчиком) идут с
// нулевым ActorID и пишутся как NULL: строки с id 0 в admin_users не бывает.
func actorIDOrNull(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func scanAuditEntry(row rowScanner) (*domain.AuditLogEntry, error) {
	var e domain.AuditLogEntry
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.ActorID, &e.Action,
		&e.TargetKind, &e.TargetID, &e.Details, &e.RequestID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &e, nil
}
