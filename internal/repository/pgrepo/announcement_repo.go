package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type AnnouncementRepository struct {
	db uow.DBTX
}

func NewAnnouncementRepository(db uow.DBTX) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

const announcementColumns = `id, created_at, updated_at, title, body, starts_at, ends_at, active, audience`

func (r *AnnouncementRepository) List(
	ctx context.Context,
	p repoargs.Pagination,
) ([]domain.Announcement, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting announcements")
	}

	norm := p.Normalize()
	rows, err := r.db.Query(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		norm.Limit, p.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing announcements")
	}
	defer rows.Close()

	var items []domain.Announcement
	for rows.Next() {
		item, scanErr := scanAnnouncement(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning announcement row")
		}
		items = append(items, *item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating announcement rows")
	}
	return items, total, nil
}

func (r *AnnouncementRepository) Create(
	ctx context.Context,
	args repoargs.AnnouncementSave,
) (*domain.Announcement, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO announcements (title, body, starts_at, ends_at, active, audience)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+announcementColumns,
		args.Title, args.Body, args.StartsAt, args.EndsAt, args.Active, string(args.Audience),
	)
	item, err := scanAnnouncement(row)
	if err != nil {
		return nil, convertErr(err, "creating announcement `%s`", args.Title)
	}
	return item, nil
}

func (r *AnnouncementRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.AnnouncementSave,
) (*domain.Announcement, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE announcements
		SET title = $2, body = $3, starts_at = $4, ends_at = $5, active = $6, audience = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+announcementColumns,
		id, args.Title, args.Body, args.StartsAt, args.EndsAt, args.Active, string(args.Audience),
	)
	item, err := scanAnnouncement(row)
	if err != nil {
		return nil, convertErr(err, "updating announcement %d", id)
	}
	return item, nil
}

func (r *AnnouncementRepository) Toggle(ctx context.Context, id int64) (*domain.Announcement, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE announcements
		SET active = NOT active, updated_at = NOW()
		WHERE id = $1
		RETURNING `+announcementColumns,
		id,
	)
	item, err := scanAnnouncement(row)
	if err != nil {
		return nil, convertErr(err, "toggling announcement %d", id)
	}
	return item, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting announcement %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting announcement %d", id)
	}
	return nil
}

func scanAnnouncement(row rowScanner) (*domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Title, &a.Body,
		&a.StartsAt, &a.EndsAt, &a.Active, &a.Audience,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
