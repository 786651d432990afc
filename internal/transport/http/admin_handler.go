package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/app/admin/queries/list_events"
	"github.com/light-bringer/estate-service/internal/app/admin/queries/site_stats"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// AdminHandler serves /api/admin.
type AdminHandler struct {
	stats  *site_stats.Query
	events *list_events.Query
}

func NewAdminHandler(stats *site_stats.Query, events *list_events.Query) *AdminHandler {
	return &AdminHandler{stats: stats, events: events}
}

func (h *AdminHandler) Register(g *echo.Group, a *Authenticator) {
	g.Use(a.Required, Roles(auth.RoleAdmin))

	g.GET("/stats", h.siteStats)
	g.GET("/events", h.listEvents)
}

func (h *AdminHandler) siteStats(c echo.Context) error {
	stats, err := h.stats.Execute(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}

func (h *AdminHandler) listEvents(c echo.Context) error {
	res, err := h.events.Execute(c.Request().Context(), &list_events.Request{
		Caller:      caller(c),
		EventType:   c.QueryParam("type"),
		AggregateID: c.QueryParam("aggregateId"),
		Status:      c.QueryParam("status"),
		Page:        c.QueryParam("page"),
		Limit:       c.QueryParam("limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, res.Events, res.Meta)
}
