package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type BannerService struct {
	uow        uow.UOW
	bannerRepo BannerRepository
}

func NewBannerService(u uow.UOW) (*BannerService, error) {
	bannerRepo, err := uow.GetRepositoryAs[BannerRepository](u, uow.RepositoryName(repoargs.BannerRepoName))
	if err != nil {
		return nil, err
	}
	return &BannerService{
		uow:        u,
		bannerRepo: bannerRepo,
	}, nil
}

func (s *BannerService) List(ctx context.Context, p repoargs.Pagination) ([]domain.Banner, int64, error) {
	banners, total, err := s.bannerRepo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("listing banners: %w", err)
	}
	return banners, total, nil
}

func (s *BannerService) Create(ctx context.Context, actor Actor, args repoargs.BannerSave) (*domain.Banner, error) {
	if err := validateScheduleWindow(args.StartsAt, args.EndsAt); err != nil {
		return nil, err
	}

	var banner *domain.Banner
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bannerRepo, repoErr := uow.GetAs[BannerRepository](tx, uow.RepositoryName(repoargs.BannerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		banner, createErr = bannerRepo.Create(c, args)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionBannerSaved,
			"banner", strconv.FormatInt(banner.ID, 10), args.Title)
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating banner: %w", txErr)
	}
	return banner, nil
}

func (s *BannerService) Update(
	ctx context.Context,
	actor Actor,
	id int64,
	args repoargs.BannerSave,
) (*domain.Banner, error) {
	if err := validateScheduleWindow(args.StartsAt, args.EndsAt); err != nil {
		return nil, err
	}

	var banner *domain.Banner
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bannerRepo, repoErr := uow.GetAs[BannerRepository](tx, uow.RepositoryName(repoargs.BannerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		banner, updErr = bannerRepo.Update(c, id, args)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionBannerSaved,
			"banner", strconv.FormatInt(id, 10), args.Title)
	})

	if txErr != nil {
		return nil, fmt.Errorf("updating banner: %w", txErr)
	}
	return banner, nil
}

// Toggle переключает видимость баннера.
func (s *BannerService) Toggle(ctx context.Context, actor Actor, id int64) (*domain.Banner, error) {
	var banner *domain.Banner
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bannerRepo, repoErr := uow.GetAs[BannerRepository](tx, uow.RepositoryName(repoargs.BannerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		banner, updErr = bannerRepo.Toggle(c, id)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionBannerSaved,
			"banner", strconv.FormatInt(id, 10), strconv.FormatBool(banner.Active))
	})

	if txErr != nil {
		return nil, fmt.Errorf("toggling banner: %w", txErr)
	}
	return banner, nil
}

func (s *BannerService) Delete(ctx context.Context, actor Actor, id int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bannerRepo, repoErr := uow.GetAs[BannerRepository](tx, uow.RepositoryName(repoargs.BannerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if delErr := bannerRepo.Delete(c, id); delErr != nil {
			return delErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionBannerDeleted,
			"banner", strconv.FormatInt(id, 10), "")
	})

	if txErr != nil {
		return fmt.Errorf("deleting banner: %w", txErr)
	}
	return nil
}

// validateScheduleWindow проверяет окно показа: конец строго позже начала.
// Нулевые даты допустимы - это бессрочное размещение.
func validateScheduleWindow(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return nil
	}
	if !endsAt.After(startsAt) {
		return fmt.Errorf("%w: ends %s is not after starts %s",
			domain.ErrScheduleWindow,
			endsAt.Format(time.RFC3339),
			startsAt.Format(time.RFC3339),
		)
	}
	return nil
}
