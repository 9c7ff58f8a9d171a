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

type WithdrawalsHandler struct {
	withdrawalSvs WithdrawalServicer
}

func NewWithdrawalsHandler(withdrawalSvs WithdrawalServicer) *WithdrawalsHandler {
	return &WithdrawalsHandler{
		withdrawalSvs: withdrawalSvs,
	}
}

type WithdrawalResponse struct {
	ID               int64                   `json:"ID"`
	CreatedAt        time.Time               `json:"createdAt"`
	SellerID         int64                   `json:"sellerID"`
	SellerName       string                  `json:"sellerName"`
	Amount           float64                 `json:"amount"`
	BankName         string                  `json:"bankName"`
	AccountNumber    string                  `json:"accountNumber"`
	Provider         string                  `json:"provider"`
	Status           domain.PayoutStatusType `json:"status"`
	StatusLabel      domain.StatusLabel      `json:"statusLabel"`
	CommissionAmount float64                 `json:"commissionAmount"`
	ProofImagePath   string                  `json:"proofImagePath,omitempty"`
}

func newWithdrawalResponse(w domain.WithdrawalRequest) WithdrawalResponse {
	return WithdrawalResponse{
		ID:               w.ID,
		CreatedAt:        w.CreatedAt,
		SellerID:         w.SellerID,
		SellerName:       w.SellerName,
		Amount:           w.Amount.InexactFloat64(),
		BankName:         w.BankName,
		AccountNumber:    w.AccountNumber,
		Provider:         w.Provider,
		Status:           w.Status,
		StatusLabel:      domain.PayoutStatusLabel(w.Status),
		CommissionAmount: w.CommissionAmount.InexactFloat64(),
		ProofImagePath:   w.ProofImagePath,
	}
}

// Index GET PaymentsGroup + WithdrawalsRoute. Фильтры: status, page, limit и
// search - подстрока сразу по нескольким полям заявки.
func (h *WithdrawalsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, total, err := h.withdrawalSvs.List(reqCtx, repoargs.WithdrawalListFilter{
		Pagination: parsePagination(c),
		Status:     domain.PayoutStatusType(c.Query("status")),
	}, c.Query("search"))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		response[i] = newWithdrawalResponse(w)
	}

	c.JSON(http.StatusOK, gin.H{"items": response, "total": total})
}

// Status GET PaymentsGroup + /:id/status. Данные заявки для модалки проверки
// платежа.
func (h *WithdrawalsHandler) Status(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	w, err := h.withdrawalSvs.Get(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newWithdrawalResponse(*w))
}

// Approve POST PaymentsGroup + /:id/approve. Фиксирует комиссию и ставит
// заявку в очередь на перечисление. Повторное нажатие даст 404: заявка уже не
// в статусе pending.
func (h *WithdrawalsHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	w, err := h.withdrawalSvs.Approve(reqCtx, currentActor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newWithdrawalResponse(*w))
}

// Reject POST PaymentsGroup + /:id/reject.
func (h *WithdrawalsHandler) Reject(c *gin.Context) {
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

	w, err := h.withdrawalSvs.Reject(reqCtx, currentActor(c), id, params.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newWithdrawalResponse(*w))
}

type AttachProofParams struct {
	Path string `binding:"required,max_bytes=500" json:"path"`
}

// AttachProof POST PaymentsGroup + /:id/proof. Привязывает загруженное через
// /upload/temp подтверждение к заявке.
func (h *WithdrawalsHandler) AttachProof(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params AttachProofParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.withdrawalSvs.AttachProof(reqCtx, currentActor(c), id, params.Path); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}
