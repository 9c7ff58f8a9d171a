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

type CustomersHandler struct {
	customerSvs CustomerServicer
}

func NewCustomersHandler(customerSvs CustomerServicer) *CustomersHandler {
	return &CustomersHandler{
		customerSvs: customerSvs,
	}
}

type CustomerResponse struct {
	ID        int64     `json:"ID"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"login"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
}

func newCustomerResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		CreatedAt: customer.CreatedAt,
		Username:  customer.Username,
		Email:     customer.Email,
		Active:    customer.Active,
	}
}

// Index GET RouteGroup + UsersRoute. Фильтры: search (логин/email), page, limit.
func (h *CustomersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, total, err := h.customerSvs.List(reqCtx, repoargs.CustomerListFilter{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		response[i] = newCustomerResponse(customer)
	}

	c.JSON(http.StatusOK, gin.H{"items": response, "total": total})
}

type CustomerToggleParams struct {
	Active *bool `binding:"required" json:"active"`
}

// Toggle PATCH RouteGroup + UsersRoute + /:id/toggle. Блокировка/разблокировка.
func (h *CustomersHandler) Toggle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params CustomerToggleParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.SetActive(reqCtx, currentActor(c), id, *params.Active)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newCustomerResponse(*customer))
}

// Destroy DELETE RouteGroup + UsersRoute + /:id.
func (h *CustomersHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.customerSvs.Delete(reqCtx, currentActor(c), id); err != nil {
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
