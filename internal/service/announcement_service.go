package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type AnnouncementService struct {
	uow              uow.UOW
	announcementRepo AnnouncementRepository
}

func NewAnnouncementService(u uow.UOW) (*AnnouncementService, error) {
	announcementRepo, err := uow.GetRepositoryAs[AnnouncementRepository](
		u, uow.RepositoryName(repoargs.AnnouncementRepoName))
	if err != nil {
		return nil, err
	}
	return &AnnouncementService{
		uow:              u,
		announcementRepo: announcementRepo,
	}, nil
}

func (s *AnnouncementService) List(
	ctx context.Context,
	p repoargs.Pagination,
) ([]domain.Announcement, int64, error) {
	announcements, total, err := s.announcementRepo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("listing announcements: %w", err)
	}
	return announcements, total, nil
}

func (s *AnnouncementService) Create(
	ctx context.Context,
	actor Actor,
	args repoargs.AnnouncementSave,
) (*domain.Announcement, error) {
	if err := validateScheduleWindow(args.StartsAt, args.EndsAt); err != nil {
		return nil, err
	}

	var ann *domain.Announcement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		announcementRepo, repoErr := uow.GetAs[AnnouncementRepository](
			tx, uow.RepositoryName(repoargs.AnnouncementRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		ann, createErr = announcementRepo.Create(c, args)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionAnnouncementSaved,
			"announcement", strconv.FormatInt(ann.ID, 10), args.Title)
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating announcement: %w", txErr)
	}
	return ann, nil
}

func (s *AnnouncementService) Update(
	ctx context.Context,
	actor Actor,
	id int64,
	args repoargs.AnnouncementSave,
) (*domain.Announcement, error) {
	if err := validateScheduleWindow(args.StartsAt, args.EndsAt); err != nil {
		return nil, err
	}

	var ann *domain.Announcement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		announcementRepo, repoErr := uow.GetAs[AnnouncementRepository](
			tx, uow.RepositoryName(repoargs.AnnouncementRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		ann, updErr = announcementRepo.Update(c, id, args)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionAnnouncementSaved,
			"announcement", strconv.FormatInt(id, 10), args.Title)
	})

	if txErr != nil {
		return nil, fmt.Errorf("updating announcement: %w", txErr)
	}
	return ann, nil
}

func (s *AnnouncementService) Toggle(ctx context.Context, actor Actor, id int64) (*domain.Announcement, error) {
	var ann *domain.Announcement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		announcementRepo, repoErr := uow.GetAs[AnnouncementRepository](
			tx, uow.RepositoryName(repoargs.AnnouncementRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		ann, updErr = announcementRepo.Toggle(c, id)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionAnnouncementSaved,
			"announcement", strconv.FormatInt(id, 10), strconv.FormatBool(ann.Active))
	})

	if txErr != nil {
		return nil, fmt.Errorf("toggling announcement: %w", txErr)
	}
	return ann, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, actor Actor, id int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		announcementRepo, repoErr := uow.GetAs[AnnouncementRepository](
			tx, uow.RepositoryName(repoargs.AnnouncementRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if delErr := announcementRepo.Delete(c, id); delErr != nil {
			return delErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionAnnouncementDeleted,
			"announcement", strconv.FormatInt(id, 10), "")
	})

	if txErr != nil {
		return fmt.Errorf("deleting announcement: %w", txErr)
	}
	return nil
}
