package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard error envelope returned on all 4xx/5xx
// responses. It is rendered by the central error handler; Fields is present
// only for field-keyed validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// pageParams reads ?page= and ?limit= with zero values left for the service
// layer to normalize.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
