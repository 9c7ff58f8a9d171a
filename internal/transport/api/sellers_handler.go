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

type SellersHandler struct {
	sellerSvs SellerServicer
}

func NewSellersHandler(sellerSvs SellerServicer) *SellersHandler {
	return &SellersHandler{
		sellerSvs: sellerSvs,
	}
}

type SellerResponse struct {
	ID            int64                   `json:"ID"`
	CreatedAt     time.Time               `json:"createdAt"`
	ShopName      string                  `json:"shopName"`
	Email         string                  `json:"email"`
	Phone         string                  `json:"phone"`
	City          string                  `json:"city"`
	BankName      string                  `json:"bankName"`
	AccountNumber string                  `json:"accountNumber"`
	DocumentURLs  []string                `json:"documentURLs,omitempty"`
	Status        domain.SellerStatusType `json:"status"`
	StatusLabel   domain.StatusLabel      `json:"statusLabel"`
	Restricted    bool                    `json:"restricted"`
	OrdersCount   int64                   `json:"ordersCount"`
	Revenue       float64                 `json:"revenue"`
	Rating        float64                 `json:"rating"`
}

func newSellerResponse(seller domain.Seller) SellerResponse {
	return SellerResponse{
		ID:            seller.ID,
		CreatedAt:     seller.CreatedAt,
		ShopName:      seller.ShopName,
		Email:         seller.Email,
		Phone:         seller.Phone,
		City:          seller.City,
		BankName:      seller.BankName,
		AccountNumber: seller.AccountNumber,
		DocumentURLs:  seller.DocumentURLs,
		Status:        seller.Status,
		StatusLabel:   domain.SellerStatusLabel(seller.Status),
		Restricted:    seller.Restricted,
		OrdersCount:   seller.OrdersCount,
		Revenue:       seller.Revenue.InexactFloat64(),
		Rating:        seller.Rating.InexactFloat64(),
	}
}

func sellersResponse(sellers []domain.Seller) []SellerResponse {
	response := make([]SellerResponse, len(sellers))
	for i, seller := range sellers {
		response[i] = newSellerResponse(seller)
	}
	return response
}

// Index GET RouteGroup + SellersRoute. Фильтры: status, search (магазин/email),
// page, limit.
func (h *SellersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sellers, total, err := h.sellerSvs.List(reqCtx, repoargs.SellerListFilter{
		Pagination: parsePagination(c),
		Status:     domain.SellerStatusType(c.Query("status")),
		Search:     c.Query("search"),
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": sellersResponse(sellers), "total": total})
}

// Applications GET RouteGroup + SellerApplicationsRoute. Заявки на модерации.
func (h *SellersHandler) Applications(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sellers, total, err := h.sellerSvs.Applications(reqCtx, parsePagination(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": sellersResponse(sellers), "total": total})
}

// Show GET RouteGroup + SellersRoute + /:id.
func (h *SellersHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	seller, err := h.sellerSvs.Get(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newSellerResponse(*seller))
}

// Approve POST RouteGroup + SellersRoute + /:id/approve. Заявка не в статусе
// pending даст 404.
func (h *SellersHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	seller, err := h.sellerSvs.Approve(reqCtx, currentActor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newSellerResponse(*seller))
}

type RejectParams struct {
	Reason string `binding:"omitempty,max_bytes=500" json:"reason"`
}

// Reject POST RouteGroup + SellersRoute + /:id/reject.
func (h *SellersHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params RejectParams
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
			return
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	seller, err := h.sellerSvs.Reject(reqCtx, currentActor(c), id, params.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newSellerResponse(*seller))
}

type RestrictParams struct {
	Restricted *bool `binding:"required" json:"restricted"`
}

// Restrict POST RouteGroup + SellersRoute + /:id/restrict.
func (h *SellersHandler) Restrict(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params RestrictParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	seller, err := h.sellerSvs.SetRestricted(reqCtx, currentActor(c), id, *params.Restricted)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newSellerResponse(*seller))
}
