package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/app/contact/queries/contact_stats"
	"github.com/light-bringer/estate-service/internal/app/contact/queries/list_contacts"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/add_note"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/delete_contact"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/open_contact"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/submit_contact"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/triage_contact"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// ContactUseCases are the use cases behind the contact routes.
type ContactUseCases struct {
	// Commands
	Submit *submit_contact.Interactor
	Open   *open_contact.Interactor
	Triage *triage_contact.Interactor
	Note   *add_note.Interactor
	Delete *delete_contact.Interactor

	// Queries
	List  *list_contacts.Query
	Stats *contact_stats.Query
}

// ContactHandler serves /api/contact.
type ContactHandler struct {
	uc ContactUseCases
}

func NewContactHandler(uc ContactUseCases) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) Register(g *echo.Group, a *Authenticator) {
	g.POST("", h.submit)

	admin := g.Group("", a.Required, Roles(auth.RoleAdmin))
	admin.GET("", h.list)
	admin.GET("/stats", h.stats)
	admin.GET("/:id", h.get)
	admin.PUT("/:id", h.triage)
	admin.POST("/:id/notes", h.addNote)
	admin.DELETE("/:id", h.delete)
}

func (h *ContactHandler) submit(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Subject  string `json:"subject"`
		Message  string `json:"message"`
		Category string `json:"category"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	contact, err := h.uc.Submit.Execute(c.Request().Context(), &domain.Submission{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Subject:  body.Subject,
		Message:  body.Message,
		Category: domain.Category(body.Category),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "thank you for contacting us, we will get back to you soon",
		Data:    map[string]string{"id": contact.ID()},
	})
}

func (h *ContactHandler) list(c echo.Context) error {
	res, err := h.uc.List.Execute(c.Request().Context(), &list_contacts.Request{
		Caller: caller(c),
		Filter: list_contacts.Filter{
			Status:   c.QueryParam("status"),
			Category: c.QueryParam("category"),
			Priority: c.QueryParam("priority"),
		},
		Page:  c.QueryParam("page"),
		Limit: c.QueryParam("limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, res.Contacts, res.Meta)
}

func (h *ContactHandler) stats(c echo.Context) error {
	stats, err := h.uc.Stats.Execute(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}

func (h *ContactHandler) get(c echo.Context) error {
	contact, err := h.uc.Open.Execute(c.Request().Context(), &open_contact.Request{
		Caller:    caller(c),
		ContactID: c.Param("id"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contracts.NewContactDTO(contact))
}

func (h *ContactHandler) triage(c echo.Context) error {
	var body struct {
		Status     *string `json:"status"`
		Priority   *string `json:"priority"`
		AssignedTo *string `json:"assignedTo"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}

	t := domain.Triage{AssignedTo: body.AssignedTo}
	if body.Status != nil {
		s := domain.Status(*body.Status)
		t.Status = &s
	}
	if body.Priority != nil {
		p := domain.Priority(*body.Priority)
		t.Priority = &p
	}

	contact, err := h.uc.Triage.Execute(c.Request().Context(), &triage_contact.Request{
		Caller:    caller(c),
		ContactID: c.Param("id"),
		Triage:    t,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contracts.NewContactDTO(contact))
}

func (h *ContactHandler) addNote(c echo.Context) error {
	var body struct {
		Note string `json:"note"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	contact, err := h.uc.Note.Execute(c.Request().Context(), &add_note.Request{
		Caller:    caller(c),
		ContactID: c.Param("id"),
		Note:      body.Note,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, contracts.NewContactDTO(contact))
}

func (h *ContactHandler) delete(c echo.Context) error {
	if err := h.uc.Delete.Execute(c.Request().Context(), &delete_contact.Request{
		Caller:    caller(c),
		ContactID: c.Param("id"),
	}); err != nil {
		return err
	}
	return respondMessage(c, "contact deleted")
}
