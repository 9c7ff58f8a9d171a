package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getAdminIDFromContext берет из контекста gin ID текущего администратора. ID
// устанавливается в middlewares.AuthRequired. В случае, если значения в
// контексте нет или ошибка утверждения типа - вернется 0.
func getAdminIDFromContext(c *gin.Context) int64 {
	adminIDStr, exist := c.Get(middlewares.CurrentAdminIDKey)
	if !exist {
		return 0
	}
	adminID, ok := adminIDStr.(int64)
	if !ok {
		return 0
	}
	return adminID
}

// currentActor собирает действующее лицо для записи в журнал.
func currentActor(c *gin.Context) service.Actor {
	return service.Actor{
		ID:        getAdminIDFromContext(c),
		RequestID: middlewares.GetRequestID(c),
	}
}

// parseIDParam разбирает числовой :id из пути. При мусоре в параметре
// прерывает запрос со статусом 404.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) repoargs.Pagination {
	page, _ := strconv.ParseUint(c.DefaultQuery("page", "1"), 10, 32)
	limit, _ := strconv.ParseUint(c.DefaultQuery("limit", "20"), 10, 32)
	return repoargs.Pagination{Page: uint(page), Limit: uint(limit)}.Normalize()
}

// parsePeriod разбирает границы периода отчета из query параметров from/to в
// формате 2006-01-02. Пустые значения дают открытую границу.
func parsePeriod(c *gin.Context) (repoargs.ReportPeriod, error) {
	var period repoargs.ReportPeriod
	const layout = "2006-01-02"

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(layout, from)
		if err != nil {
			return period, err //nolint:wrapcheck
		}
		period.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(layout, to)
		if err != nil {
			return period, err //nolint:wrapcheck
		}
		// верхняя граница включает весь день
		period.To = t.AddDate(0, 0, 1)
	}
	return period, nil
}
