package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/app/account/queries/me"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/change_password"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/login"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/register"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/update_profile"
)

// AuthUseCases are the use cases behind the auth routes.
type AuthUseCases struct {
	Register       *register.Interactor
	Login          *login.Interactor
	UpdateProfile  *update_profile.Interactor
	ChangePassword *change_password.Interactor
	Me             *me.Query
}

// CookieConfig controls the session cookie set on sign-in.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler serves /api/auth.
type AuthHandler struct {
	uc     AuthUseCases
	cookie CookieConfig
}

func NewAuthHandler(uc AuthUseCases, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

type sessionResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      *contracts.UserDTO `json:"user"`
}

func (h *AuthHandler) Register(g *echo.Group, a *Authenticator) {
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)

	g.GET("/me", h.me, a.Required)
	g.PUT("/profile", h.updateProfile, a.Required)
	g.PUT("/password", h.changePassword, a.Required)
}

func (h *AuthHandler) register(c echo.Context) error {
	var body struct {
		Name         string            `json:"name"`
		Email        string            `json:"email"`
		Password     string            `json:"password"`
		Phone        string            `json:"phone"`
		IsAgent      bool              `json:"isAgent"`
		AgentProfile *agentProfileBody `json:"agentProfile"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}

	reg := &domain.Registration{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Phone:    body.Phone,
	}
	if body.IsAgent || body.AgentProfile != nil {
		var in domain.AgentProfileInput
		if body.AgentProfile != nil {
			in = body.AgentProfile.input()
		}
		reg.Agent = &in
	}

	session, err := h.uc.Register.Execute(c.Request().Context(), reg)
	if err != nil {
		return err
	}
	return h.startSession(c, http.StatusCreated, session)
}

func (h *AuthHandler) login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	session, err := h.uc.Login.Execute(c.Request().Context(), &login.Request{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return err
	}
	return h.startSession(c, http.StatusOK, session)
}

func (h *AuthHandler) startSession(c echo.Context, status int, s *contracts.Session) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return respond(c, status, sessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      contracts.NewUserDTO(s.User),
	})
}

// logout clears the cookie. Tokens are stateless, so a copied bearer token
// stays valid until it expires.
func (h *AuthHandler) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return respondMessage(c, "logged out")
}

func (h *AuthHandler) me(c echo.Context) error {
	dto, err := h.uc.Me.Execute(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *AuthHandler) updateProfile(c echo.Context) error {
	var body struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	user, err := h.uc.UpdateProfile.Execute(c.Request().Context(), &update_profile.Request{
		Caller: caller(c),
		Name:   body.Name,
		Phone:  body.Phone,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contracts.NewUserDTO(user))
}

func (h *AuthHandler) changePassword(c echo.Context) error {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	if err := h.uc.ChangePassword.Execute(c.Request().Context(), &change_password.Request{
		Caller:          caller(c),
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	}); err != nil {
		return err
	}
	return respondMessage(c, "password updated")
}
