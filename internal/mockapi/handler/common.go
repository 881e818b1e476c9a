package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/movaro/console/internal/mockapi/fixtures"
)

// pageResponse is the list envelope shared by every collection endpoint.
type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func newPage[T any](items []T, total int, q fixtures.Query) pageResponse[T] {
	page, limit := q.Normalize()
	return pageResponse[T]{Items: items, Total: total, Page: page, Limit: limit}
}

// listQuery extracts the shared filter/search/pagination parameters.
func listQuery(c echo.Context) fixtures.Query {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return fixtures.Query{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	}
}

// Health handles GET /health — liveness probe.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
