package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers groups the route handlers mounted under /api.
type Handlers struct {
	Auth       *AuthHandler
	Properties *PropertyHandler
	Agents     *AgentHandler
	Contact    *ContactHandler
	Upload     *UploadHandler
	Admin      *AdminHandler
}

// ServerConfig controls the cross-cutting middleware.
type ServerConfig struct {
	Development bool
	CORSOrigins []string
	BodyLimit   string // e.g. "60M"
}

// NewServer builds the REST server. Nil handlers are skipped.
func NewServer(cfg ServerConfig, a *Authenticator, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Development)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	if h.Auth != nil {
		h.Auth.Register(api.Group("/auth"), a)
	}
	if h.Properties != nil {
		h.Properties.Register(api.Group("/properties"), a)
	}
	if h.Agents != nil {
		h.Agents.Register(api.Group("/agents"), a)
	}
	if h.Contact != nil {
		h.Contact.Register(api.Group("/contact"), a)
	}
	if h.Upload != nil {
		h.Upload.Register(api.Group("/upload"), a)
	}
	if h.Admin != nil {
		h.Admin.Register(api.Group("/admin"), a)
	}
	return e
}
