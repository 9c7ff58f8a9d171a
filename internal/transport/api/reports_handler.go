package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	reportSvs ReportServicer
}

func NewReportsHandler(reportSvs ReportServicer) *ReportsHandler {
	return &ReportsHandler{
		reportSvs: reportSvs,
	}
}

type CommissionReportResponse struct {
	From                string  `json:"from,omitempty"`
	To                  string  `json:"to,omitempty"`
	OrdersCount         int64   `json:"ordersCount"`
	TotalRevenue        float64 `json:"totalRevenue"`
	ProjectedCommission float64 `json:"projectedCommission"`
	CollectedCommission float64 `json:"collectedCommission"`
	PendingCommission   float64 `json:"pendingCommission"`
	SellerEarnings      float64 `json:"sellerEarnings"`
}

// Commission GET RouteGroup + ReportsCommissionRoute. Query: from, to в
// формате 2006-01-02.
func (h *ReportsHandler) Commission(c *gin.Context) {
	period, parseErr := parsePeriod(c)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.reportSvs.Commission(reqCtx, period)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := CommissionReportResponse{
		OrdersCount:         report.OrdersCount,
		TotalRevenue:        report.TotalRevenue.InexactFloat64(),
		ProjectedCommission: report.ProjectedCommission.InexactFloat64(),
		CollectedCommission: report.CollectedCommission.InexactFloat64(),
		PendingCommission:   report.PendingCommission.InexactFloat64(),
		SellerEarnings:      report.SellerEarnings.InexactFloat64(),
	}
	if !report.Period.From.IsZero() {
		response.From = report.Period.From.Format("2006-01-02")
	}
	if !report.Period.To.IsZero() {
		response.To = report.Period.To.AddDate(0, 0, -1).Format("2006-01-02")
	}

	c.JSON(http.StatusOK, response)
}

type DashboardResponse struct {
	Orders             int64  `json:"orders"`
	Sellers            int64  `json:"sellers"`
	PendingSellers     int64  `json:"pendingSellers"`
	Customers          int64  `json:"customers"`
	Products           int64  `json:"products"`
	PendingWithdrawals int64  `json:"pendingWithdrawals"`
	Revenue            string `json:"revenue"`
}

// Dashboard GET RouteGroup + DashboardRoute. Выручка отдается сразу в
// компактном виде ("₱2.3M").
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dashboard, err := h.reportSvs.Dashboard(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Orders:             dashboard.Counts.Orders,
		Sellers:            dashboard.Counts.Sellers,
		PendingSellers:     dashboard.Counts.PendingSellers,
		Customers:          dashboard.Counts.Customers,
		Products:           dashboard.Counts.Products,
		PendingWithdrawals: dashboard.Counts.PendingWithdrawals,
		Revenue:            dashboard.RevenueCompact,
	})
}
