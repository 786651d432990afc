package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/app/account/queries/get_agent"
	"github.com/light-bringer/estate-service/internal/app/account/queries/list_agents"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/rate_agent"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/update_agent_profile"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/verify_agent"
	"github.com/light-bringer/estate-service/internal/app/property/queries/agent_dashboard"
	"github.com/light-bringer/estate-service/internal/app/property/queries/agent_properties"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// AgentUseCases are the use cases behind the agent routes.
type AgentUseCases struct {
	// Commands
	UpdateProfile *update_agent_profile.Interactor
	Rate          *rate_agent.Interactor
	Verify        *verify_agent.Interactor

	// Queries
	List       *list_agents.Query
	Get        *get_agent.Query
	Properties *agent_properties.Query
	Dashboard  *agent_dashboard.Query
}

// AgentHandler serves /api/agents.
type AgentHandler struct {
	uc AgentUseCases
}

func NewAgentHandler(uc AgentUseCases) *AgentHandler {
	return &AgentHandler{uc: uc}
}

type agentProfileBody struct {
	LicenseNumber         *string              `json:"licenseNumber"`
	ExperienceYears       *int64               `json:"experienceYears"`
	Specializations       *[]string            `json:"specializations"`
	Bio                   *string              `json:"bio"`
	Phone                 *string              `json:"phone"`
	Address               *domain.AgentAddress `json:"address"`
	ProfileImage          *string              `json:"profileImage"`
	VerificationDocuments *[]domain.Document   `json:"verificationDocuments"`
}

func (b agentProfileBody) input() domain.AgentProfileInput {
	return domain.AgentProfileInput{
		LicenseNumber:         b.LicenseNumber,
		ExperienceYears:       b.ExperienceYears,
		Specializations:       b.Specializations,
		Bio:                   b.Bio,
		Phone:                 b.Phone,
		Address:               b.Address,
		ProfileImage:          b.ProfileImage,
		VerificationDocuments: b.VerificationDocuments,
	}
}

// Register mounts the routes. Static segments are registered before /:id.
func (h *AgentHandler) Register(g *echo.Group, a *Authenticator) {
	g.GET("", h.list)
	g.GET("/dashboard", h.dashboard, a.Required, Roles(auth.RoleAgent, auth.RoleAdmin))
	g.PUT("/profile", h.updateProfile, a.Required, Roles(auth.RoleAgent))

	g.GET("/:id", h.get)
	g.GET("/:id/properties", h.properties)
	g.POST("/:id/rate", h.rate, a.Required)
	g.PATCH("/:id/verify", h.verify, a.Required, Roles(auth.RoleAdmin))
}

func (h *AgentHandler) list(c echo.Context) error {
	res, err := h.uc.List.Execute(c.Request().Context(), &list_agents.Request{
		Filter: list_agents.Filter{
			City:           c.QueryParam("city"),
			Specialization: c.QueryParam("specialization"),
			Verified:       c.QueryParam("verified"),
			Search:         c.QueryParam("search"),
		},
		Sort:  c.QueryParam("sort"),
		Order: c.QueryParam("order"),
		Page:  c.QueryParam("page"),
		Limit: c.QueryParam("limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, res.Agents, res.Meta)
}

func (h *AgentHandler) get(c echo.Context) error {
	dto, err := h.uc.Get.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *AgentHandler) properties(c echo.Context) error {
	res, err := h.uc.Properties.Execute(c.Request().Context(), &agent_properties.Request{
		AgentID: c.Param("id"),
		Sort:    c.QueryParam("sort"),
		Order:   c.QueryParam("order"),
		Page:    c.QueryParam("page"),
		Limit:   c.QueryParam("limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, res.Properties, res.Meta)
}

func (h *AgentHandler) dashboard(c echo.Context) error {
	dash, err := h.uc.Dashboard.Execute(c.Request().Context(), &agent_dashboard.Request{
		Caller:  caller(c),
		AgentID: c.QueryParam("agentId"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dash)
}

func (h *AgentHandler) updateProfile(c echo.Context) error {
	var body agentProfileBody
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	user, err := h.uc.UpdateProfile.Execute(c.Request().Context(), &update_agent_profile.Request{
		Caller:  caller(c),
		Profile: body.input(),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contracts.NewUserDTO(user))
}

func (h *AgentHandler) rate(c echo.Context) error {
	var body struct {
		Rating int `json:"rating"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	rating, err := h.uc.Rate.Execute(c.Request().Context(), &rate_agent.Request{
		Caller:  caller(c),
		AgentID: c.Param("id"),
		Rating:  body.Rating,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contracts.RatingDTO{Average: rating.Average, Count: rating.Count})
}

func (h *AgentHandler) verify(c echo.Context) error {
	var body struct {
		Verified bool `json:"verified"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	user, err := h.uc.Verify.Execute(c.Request().Context(), &verify_agent.Request{
		Caller:   caller(c),
		AgentID:  c.Param("id"),
		Verified: body.Verified,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contracts.NewUserDTO(user))
}
