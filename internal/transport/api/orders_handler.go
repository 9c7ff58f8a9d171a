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

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderItemResponse struct {
	ProductID int64   `json:"productID"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
}

type OrderResponse struct {
	ID          int64                  `json:"ID"`
	CreatedAt   time.Time              `json:"createdAt"`
	OrderCode   string                 `json:"number"`
	CustomerID  int64                  `json:"customerID"`
	SellerID    int64                  `json:"sellerID"`
	Status      domain.OrderStatusType `json:"status"`
	StatusLabel domain.StatusLabel     `json:"statusLabel"`
	Subtotal    float64                `json:"subtotal"`
	Items       []OrderItemResponse    `json:"items,omitempty"`
}

func newOrderResponse(order domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:          order.ID,
		CreatedAt:   order.CreatedAt,
		OrderCode:   order.OrderCode,
		CustomerID:  order.CustomerID,
		SellerID:    order.SellerID,
		Status:      order.Status,
		StatusLabel: domain.OrderStatusLabel(order.Status),
		Subtotal:    order.Subtotal.InexactFloat64(),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
		})
	}
	return resp
}

// Index GET RouteGroup + OrdersRoute. Фильтры: status, search (по коду заказа),
// page, limit.
func (o *OrdersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, total, err := o.orderSvs.List(reqCtx, repoargs.OrderListFilter{
		Pagination: parsePagination(c),
		Status:     domain.OrderStatusType(c.Query("status")),
		Search:     c.Query("search"),
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = newOrderResponse(order)
	}

	c.JSON(http.StatusOK, gin.H{"items": response, "total": total})
}

// Show GET RouteGroup + OrdersRoute + /:id. Заказ вместе с позициями.
func (o *OrdersHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(*order))
}

type OrderStatusParams struct {
	Status domain.OrderStatusType `binding:"required" json:"status"`
}

// UpdateStatus PATCH RouteGroup + OrdersRoute + /:id/status.
func (o *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params OrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if !isKnownOrderStatus(params.Status) {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.UpdateStatus(reqCtx, currentActor(c), id, params.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidStatusTransition):
			_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(*order))
}

func isKnownOrderStatus(status domain.OrderStatusType) bool {
	for _, known := range domain.KnownOrderStatuses() {
		if status == known {
			return true
		}
	}
	return false
}
