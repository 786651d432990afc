package http

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

var (
	errNoToken    = apperr.Kind(apperr.ErrUnauthenticated, errors.New("not authorized, no token"))
	errRoleDenied = errors.New("your role is not allowed to access this resource")
)

// Authenticator resolves the caller from a bearer header or the auth cookie.
type Authenticator struct {
	tokens     *auth.TokenManager
	cookieName string
	lookup     auth.Lookup
}

func NewAuthenticator(tokens *auth.TokenManager, cookieName string) *Authenticator {
	return &Authenticator{tokens: tokens, cookieName: cookieName}
}

// WithLookup makes every verified token resolve to the stored account, so
// the stored role wins over the one in the token.
func (a *Authenticator) WithLookup(l auth.Lookup) *Authenticator {
	a.lookup = l
	return a
}

func (a *Authenticator) token(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(a.cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (a *Authenticator) resolve(c echo.Context, raw string) (auth.Principal, error) {
	p, err := a.tokens.Verify(raw)
	if err != nil {
		return auth.Principal{}, err
	}
	if a.lookup == nil {
		return p, nil
	}
	return a.lookup.Principal(c.Request().Context(), p.UserID)
}

func (a *Authenticator) attach(c echo.Context, p auth.Principal) {
	c.SetRequest(c.Request().WithContext(auth.WithPrincipal(c.Request().Context(), p)))
}

// Required rejects requests without a valid token.
func (a *Authenticator) Required(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := a.token(c)
		if raw == "" {
			return errNoToken
		}
		p, err := a.resolve(c, raw)
		if err != nil {
			return err
		}
		a.attach(c, p)
		return next(c)
	}
}

// Optional attaches the caller when a valid token is present and otherwise
// continues anonymously.
func (a *Authenticator) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if raw := a.token(c); raw != "" {
			if p, err := a.resolve(c, raw); err == nil {
				a.attach(c, p)
			}
		}
		return next(c)
	}
}

// Roles must run after Required.
func Roles(roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := auth.FromContext(c.Request().Context())
			if !ok {
				return errNoToken
			}
			for _, r := range roles {
				if p.Role == r {
					return next(c)
				}
			}
			return apperr.Kind(apperr.ErrForbidden, errRoleDenied)
		}
	}
}

func caller(c echo.Context) auth.Principal {
	p, _ := auth.FromContext(c.Request().Context())
	return p
}

// optionalCaller returns nil for anonymous requests.
func optionalCaller(c echo.Context) *auth.Principal {
	if p, ok := auth.FromContext(c.Request().Context()); ok {
		return &p
	}
	return nil
}
