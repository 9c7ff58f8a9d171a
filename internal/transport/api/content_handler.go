package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
)

// BannersHandler и AnnouncementsHandler обслуживают витринный контент
// маркетплейса: баннеры со ссылками и текстовые объявления.

type BannersHandler struct {
	bannerSvs BannerServicer
}

func NewBannersHandler(bannerSvs BannerServicer) *BannersHandler {
	return &BannersHandler{
		bannerSvs: bannerSvs,
	}
}

type BannerParams struct {
	Title    string    `binding:"required,max_bytes=255"  json:"title"`
	ImageURL string    `binding:"required,max_bytes=500"  json:"imageURL"`
	LinkURL  string    `binding:"omitempty,max_bytes=500" json:"linkURL"`
	StartsAt time.Time `binding:"omitempty"               json:"startsAt"`
	EndsAt   time.Time `binding:"omitempty"               json:"endsAt"`
	Active   bool      `json:"active"`
	Audience string    `binding:"omitempty,oneof=all customers sellers" json:"audience"`
}

func (p BannerParams) toArgs() repoargs.BannerSave {
	audience := domain.AudienceType(p.Audience)
	if audience == "" {
		audience = domain.AudienceAll
	}
	return repoargs.BannerSave{
		Title:    p.Title,
		ImageURL: p.ImageURL,
		LinkURL:  p.LinkURL,
		StartsAt: p.StartsAt,
		EndsAt:   p.EndsAt,
		Active:   p.Active,
		Audience: audience,
	}
}

type BannerResponse struct {
	ID       int64               `json:"ID"`
	Title    string              `json:"title"`
	ImageURL string              `json:"imageURL"`
	LinkURL  string              `json:"linkURL,omitempty"`
	StartsAt time.Time           `json:"startsAt"`
	EndsAt   time.Time           `json:"endsAt"`
	Active   bool                `json:"active"`
	Audience domain.AudienceType `json:"audience"`
}

func newBannerResponse(banner domain.Banner) BannerResponse {
	return BannerResponse{
		ID:       banner.ID,
		Title:    banner.Title,
		ImageURL: banner.ImageURL,
		LinkURL:  banner.LinkURL,
		StartsAt: banner.StartsAt,
		EndsAt:   banner.EndsAt,
		Active:   banner.Active,
		Audience: banner.Audience,
	}
}

// Index GET RouteGroup + BannersRoute.
func (h *BannersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	banners, total, err := h.bannerSvs.List(reqCtx, parsePagination(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]BannerResponse, len(banners))
	for i, banner := range banners {
		response[i] = newBannerResponse(banner)
	}

	c.JSON(http.StatusOK, gin.H{"items": response, "total": total})
}

// Create POST RouteGroup + BannersRoute.
func (h *BannersHandler) Create(c *gin.Context) {
	var params BannerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	banner, err := h.bannerSvs.Create(reqCtx, currentActor(c), params.toArgs())
	if err != nil {
		if errors.Is(err, domain.ErrScheduleWindow) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newBannerResponse(*banner))
}

// Update PUT RouteGroup + BannersRoute + /:id.
func (h *BannersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params BannerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	banner, err := h.bannerSvs.Update(reqCtx, currentActor(c), id, params.toArgs())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleWindow):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newBannerResponse(*banner))
}

// Toggle PATCH RouteGroup + BannersRoute + /:id/toggle.
func (h *BannersHandler) Toggle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	banner, err := h.bannerSvs.Toggle(reqCtx, currentActor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newBannerResponse(*banner))
}

// Destroy DELETE RouteGroup + BannersRoute + /:id.
func (h *BannersHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.bannerSvs.Delete(reqCtx, currentActor(c), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

type AnnouncementsHandler struct {
	announcementSvs AnnouncementServicer
}

func NewAnnouncementsHandler(announcementSvs AnnouncementServicer) *AnnouncementsHandler {
	return &AnnouncementsHandler{
		announcementSvs: announcementSvs,
	}
}

type AnnouncementParams struct {
	Title    string    `binding:"required,max_bytes=255"  json:"title"`
	Body     string    `binding:"required,max_bytes=5000" json:"body"`
	StartsAt time.Time `binding:"omitempty"               json:"startsAt"`
	EndsAt   time.Time `binding:"omitempty"               json:"endsAt"`
	Active   bool      `json:"active"`
	Audience string    `binding:"omitempty,oneof=all customers sellers" json:"audience"`
}

func (p AnnouncementParams) toArgs() repoargs.AnnouncementSave {
	audience := domain.AudienceType(p.Audience)
	if audience == "" {
		audience = domain.AudienceAll
	}
	return repoargs.AnnouncementSave{
		Title:    p.Title,
		Body:     p.Body,
		StartsAt: p.StartsAt,
		EndsAt:   p.EndsAt,
		Active:   p.Active,
		Audience: audience,
	}
}

type AnnouncementResponse struct {
	ID       int64               `json:"ID"`
	Title    string              `json:"title"`
	Body     string              `json:"body"`
	StartsAt time.Time           `json:"startsAt"`
	EndsAt   time.Time           `json:"endsAt"`
	Active   bool                `json:"active"`
	Audience domain.AudienceType `json:"audience"`
}

func newAnnouncementResponse(ann domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:       ann.ID,
		Title:    ann.Title,
		Body:     ann.Body,
		StartsAt: ann.StartsAt,
		EndsAt:   ann.EndsAt,
		Active:   ann.Active,
		Audience: ann.Audience,
	}
}

// Index GET RouteGroup + AnnouncementsRoute.
func (h *AnnouncementsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	announcements, total, err := h.announcementSvs.List(reqCtx, parsePagination(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]AnnouncementResponse, len(announcements))
	for i, ann := range announcements {
		response[i] = newAnnouncementResponse(ann)
	}

	c.JSON(http.StatusOK, gin.H{"items": response, "total": total})
}

// Create POST RouteGroup + AnnouncementsRoute.
func (h *AnnouncementsHandler) Create(c *gin.Context) {
	var params AnnouncementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ann, err := h.announcementSvs.Create(reqCtx, currentActor(c), params.toArgs())
	if err != nil {
		if errors.Is(err, domain.ErrScheduleWindow) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newAnnouncementResponse(*ann))
}

// Update PUT RouteGroup + AnnouncementsRoute + /:id.
func (h *AnnouncementsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params AnnouncementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ann, err := h.announcementSvs.Update(reqCtx, currentActor(c), id, params.toArgs())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleWindow):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newAnnouncementResponse(*ann))
}

// Toggle PATCH RouteGroup + AnnouncementsRoute + /:id/toggle.
func (h *AnnouncementsHandler) Toggle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ann, err := h.announcementSvs.Toggle(reqCtx, currentActor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newAnnouncementResponse(*ann))
}

// Destroy DELETE RouteGroup + AnnouncementsRoute + /:id.
func (h *AnnouncementsHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.announcementSvs.Delete(reqCtx, currentActor(c), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}
