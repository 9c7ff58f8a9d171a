package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
)

type ProductsHandler struct {
	productSvs ProductServicer
}

func NewProductsHandler(productSvs ProductServicer) *ProductsHandler {
	return &ProductsHandler{
		productSvs: productSvs,
	}
}

type ProductResponse struct {
	ID        int64     `json:"ID"`
	CreatedAt time.Time `json:"createdAt"`
	SellerID  int64     `json:"sellerID"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Published bool      `json:"published"`
}

func newProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		CreatedAt: product.CreatedAt,
		SellerID:  product.SellerID,
		Name:      product.Name,
		Price:     product.Price.InexactFloat64(),
		Published: product.Published,
	}
}

// Index GET RouteGroup + ProductsRoute. Фильтры: sellerID, search, page, limit.
func (h *ProductsHandler) Index(c *gin.Context) {
	sellerID, _ := strconv.ParseInt(c.Query("sellerID"), 10, 64)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, total, err := h.productSvs.List(reqCtx, repoargs.ProductListFilter{
		Pagination: parsePagination(c),
		SellerID:   sellerID,
		Search:     c.Query("search"),
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = newProductResponse(product)
	}

	c.JSON(http.StatusOK, gin.H{"items": response, "total": total})
}

type ProductPublishParams struct {
	Published *bool `binding:"required" json:"published"`
}

// Publish PATCH RouteGroup + ProductsRoute + /:id/publish.
func (h *ProductsHandler) Publish(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params ProductPublishParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.productSvs.SetPublished(reqCtx, currentActor(c), id, *params.Published)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(*product))
}

// Destroy DELETE RouteGroup + ProductsRoute + /:id.
func (h *ProductsHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.productSvs.Delete(reqCtx, currentActor(c), id); err != nil {
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
