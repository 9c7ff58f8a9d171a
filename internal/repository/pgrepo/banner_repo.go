package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type BannerRepository struct {
	db uow.DBTX
}

func NewBannerRepository(db uow.DBTX) *BannerRepository {
	return &BannerRepository{db: db}
}

const bannerColumns = `id, created_at, updated_at, title, image_url, link_url, starts_at, ends_at, active, audience`

func (r *BannerRepository) List(ctx context.Context, p repoargs.Pagination) ([]domain.Banner, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM banners`).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting banners")
	}

	norm := p.Normalize()
	rows, err := r.db.Query(ctx, `
		SELECT `+bannerColumns+`
		FROM banners
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		norm.Limit, p.Offset(),
	)
	if err != nil {
		return nil, 0, convertErr(err, "listing banners")
	}
	defer rows.Close()

	var banners []domain.Banner
	for rows.Next() {
		banner, scanErr := scanBanner(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning banner row")
		}
		banners = append(banners, *banner)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating banner rows")
	}
	return banners, total, nil
}

func (r *BannerRepository) Create(ctx context.Context, args repoargs.BannerSave) (*domain.Banner, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO banners (title, image_url, link_url, starts_at, ends_at, active, audience)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+bannerColumns,
		args.Title, args.ImageURL, args.LinkURL, args.StartsAt, args.EndsAt, args.Active, string(args.Audience),
	)
	banner, err := scanBanner(row)
	if err != nil {
		return nil, convertErr(err, "creating banner `%s`", args.Title)
	}
	return banner, nil
}

func (r *BannerRepository) Update(ctx context.Context, id int64, args repoargs.BannerSave) (*domain.Banner, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE banners
		SET title = $2, image_url = $3, link_url = $4, starts_at = $5, ends_at = $6,
		    active = $7, audience = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+bannerColumns,
		id, args.Title, args.ImageURL, args.LinkURL, args.StartsAt, args.EndsAt, args.Active, string(args.Audience),
	)
	banner, err := scanBanner(row)
	if err != nil {
		return nil, convertErr(err, "updating banner %d", id)
	}
	return banner, nil
}

func (r *BannerRepository) Toggle(ctx context.Context, id int64) (*domain.Banner, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE banners
		SET active = NOT active, updated_at = NOW()
		WHERE id = $1
		RETURNING `+bannerColumns,
		id,
	)
	banner, err := scanBanner(row)
	if err != nil {
		return nil, convertErr(err, "toggling banner %d", id)
	}
	return banner, nil
}

func (r *BannerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting banner %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting banner %d", id)
	}
	return nil
}

func scanBanner(row rowScanner) (*domain.Banner, error) {
	var b domain.Banner
	err := row.Scan(
		&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.Title, &b.ImageURL, &b.LinkURL,
		&b.StartsAt, &b.EndsAt, &b.Active, &b.Audience,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &b, nil
}
