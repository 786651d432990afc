package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/pkg/paging"
)

// envelope is the body of every successful response.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	Pages   *int64      `json:"pages,omitempty"`
}

// errorBody is the body of every failed response.
type errorBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

func respondPage(c echo.Context, data interface{}, meta paging.Meta) error {
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Count:   &meta.Count,
		Total:   &meta.Total,
		Page:    &meta.Page,
		Pages:   &meta.Pages,
	})
}

// respondList is for unpaged lists, count only.
func respondList[T any](c echo.Context, items []T) error {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Data: items, Count: &n})
}
