package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/app/property/queries/featured_properties"
	"github.com/light-bringer/estate-service/internal/app/property/queries/get_property"
	"github.com/light-bringer/estate-service/internal/app/property/queries/list_inquiries"
	"github.com/light-bringer/estate-service/internal/app/property/queries/list_properties"
	"github.com/light-bringer/estate-service/internal/app/property/queries/price_history"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/add_images"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/change_status"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/create_property"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/delete_property"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/remove_image"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/set_primary_image"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/submit_inquiry"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/track_engagement"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/update_property"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// PropertyUseCases are the use cases behind the property routes.
type PropertyUseCases struct {
	// Commands
	Create       *create_property.Interactor
	Update       *update_property.Interactor
	ChangeStatus *change_status.Interactor
	Delete       *delete_property.Interactor
	AddImages    *add_images.Interactor
	RemoveImage  *remove_image.Interactor
	SetPrimary   *set_primary_image.Interactor
	Inquire      *submit_inquiry.Interactor
	Track        *track_engagement.Interactor

	// Queries
	List         *list_properties.Query
	Featured     *featured_properties.Query
	Get          *get_property.Query
	Inquiries    *list_inquiries.Query
	PriceHistory *price_history.Query
}

// PropertyHandler serves /api/properties.
type PropertyHandler struct {
	uc          PropertyUseCases
	uploadBytes int64
}

func NewPropertyHandler(uc PropertyUseCases, uploadBytes int64) *PropertyHandler {
	return &PropertyHandler{uc: uc, uploadBytes: uploadBytes}
}

// Register mounts the routes. Static segments are registered before /:id.
func (h *PropertyHandler) Register(g *echo.Group, a *Authenticator) {
	agents := Roles(auth.RoleAgent, auth.RoleAdmin)

	g.GET("", h.list, a.Optional)
	g.GET("/featured", h.featured)
	g.POST("", h.create, a.Required, agents)

	g.GET("/:id", h.get, a.Optional)
	g.PUT("/:id", h.update, a.Required)
	g.PATCH("/:id/status", h.changeStatus, a.Required)
	g.DELETE("/:id", h.delete, a.Required)

	g.POST("/:id/images", h.addImages, a.Required)
	g.DELETE("/:id/images/:imageId", h.removeImage, a.Required)
	g.PUT("/:id/images/:imageId/primary", h.setPrimary, a.Required)

	g.POST("/:id/inquiries", h.inquire, a.Optional)
	g.GET("/:id/inquiries", h.inquiries, a.Required)
	g.POST("/:id/track", h.track)
	g.GET("/:id/price-history", h.priceHistory, a.Optional)
}

func (h *PropertyHandler) list(c echo.Context) error {
	res, err := h.uc.List.Execute(c.Request().Context(), &list_properties.Request{
		Filter: list_properties.Filter{
			Type:         c.QueryParam("type"),
			ListingType:  c.QueryParam("listingType"),
			City:         c.QueryParam("city"),
			State:        c.QueryParam("state"),
			MinBedrooms:  c.QueryParam("minBedrooms"),
			MinBathrooms: c.QueryParam("minBathrooms"),
			MinPrice:     c.QueryParam("minPrice"),
			MaxPrice:     c.QueryParam("maxPrice"),
			Search:       c.QueryParam("search"),
			Amenities:    c.QueryParam("amenities"),
			Featured:     c.QueryParam("featured"),
			Status:       c.QueryParam("status"),
			Mine:         c.QueryParam("mine") == "true",
		},
		Sort:   c.QueryParam("sort"),
		Order:  c.QueryParam("order"),
		Page:   c.QueryParam("page"),
		Limit:  c.QueryParam("limit"),
		Caller: optionalCaller(c),
	})
	if err != nil {
		return err
	}
	return respondPage(c, res.Properties, res.Meta)
}

func (h *PropertyHandler) featured(c echo.Context) error {
	props, err := h.uc.Featured.Execute(c.Request().Context())
	if err != nil {
		return err
	}
	return respondList(c, props)
}

func (h *PropertyHandler) get(c echo.Context) error {
	dto, err := h.uc.Get.Execute(c.Request().Context(), &get_property.Request{
		PropertyID: c.Param("id"),
		Caller:     optionalCaller(c),
		CountView:  true,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

// reload returns the listing as its owner sees it after a write.
func (h *PropertyHandler) reload(c echo.Context, status int, propertyID string) error {
	p := caller(c)
	dto, err := h.uc.Get.Execute(c.Request().Context(), &get_property.Request{PropertyID: propertyID, Caller: &p})
	if err != nil {
		return err
	}
	return respond(c, status, dto)
}

func (h *PropertyHandler) create(c echo.Context) error {
	var body propertyBody
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	id, err := h.uc.Create.Execute(c.Request().Context(), &create_property.Request{
		Caller:  caller(c),
		Details: body.details(),
	})
	if err != nil {
		return err
	}
	return h.reload(c, http.StatusCreated, id)
}

func (h *PropertyHandler) update(c echo.Context) error {
	var body updateBody
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	id := c.Param("id")
	if err := h.uc.Update.Execute(c.Request().Context(), &update_property.Request{
		PropertyID: id,
		Caller:     caller(c),
		Update:     body.update(),
	}); err != nil {
		return err
	}
	return h.reload(c, http.StatusOK, id)
}

func (h *PropertyHandler) changeStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	id := c.Param("id")
	if err := h.uc.ChangeStatus.Execute(c.Request().Context(), &change_status.Request{
		PropertyID: id,
		Caller:     caller(c),
		Status:     domain.Status(body.Status),
	}); err != nil {
		return err
	}
	return h.reload(c, http.StatusOK, id)
}

func (h *PropertyHandler) delete(c echo.Context) error {
	if err := h.uc.Delete.Execute(c.Request().Context(), &delete_property.Request{
		PropertyID: c.Param("id"),
		Caller:     caller(c),
	}); err != nil {
		return err
	}
	return respondMessage(c, "property deleted")
}

func (h *PropertyHandler) addImages(c echo.Context) error {
	files, form, err := multipartFiles(c, "images", h.uploadBytes)
	if err != nil {
		return err
	}
	defer form.RemoveAll()

	images, err := h.uc.AddImages.Execute(c.Request().Context(), &add_images.Request{
		PropertyID: c.Param("id"),
		Caller:     caller(c),
		Files:      files,
		Captions:   form.Value["captions"],
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, imageDTOs(images))
}

func (h *PropertyHandler) removeImage(c echo.Context) error {
	images, err := h.uc.RemoveImage.Execute(c.Request().Context(), &remove_image.Request{
		PropertyID: c.Param("id"),
		ImageID:    c.Param("imageId"),
		Caller:     caller(c),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, imageDTOs(images))
}

func (h *PropertyHandler) setPrimary(c echo.Context) error {
	images, err := h.uc.SetPrimary.Execute(c.Request().Context(), &set_primary_image.Request{
		PropertyID: c.Param("id"),
		ImageID:    c.Param("imageId"),
		Caller:     caller(c),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, imageDTOs(images))
}

func (h *PropertyHandler) inquire(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	inq, err := h.uc.Inquire.Execute(c.Request().Context(), &submit_inquiry.Request{
		PropertyID: c.Param("id"),
		Caller:     optionalCaller(c),
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		Message:    body.Message,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, inq)
}

func (h *PropertyHandler) inquiries(c echo.Context) error {
	res, err := h.uc.Inquiries.Execute(c.Request().Context(), &list_inquiries.Request{
		PropertyID: c.Param("id"),
		Caller:     caller(c),
		Page:       c.QueryParam("page"),
		Limit:      c.QueryParam("limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, res.Inquiries, res.Meta)
}

func (h *PropertyHandler) track(c echo.Context) error {
	var body struct {
		Event string `json:"event"`
	}
	if err := bindJSON(c, &body); err != nil {
		return err
	}
	if err := h.uc.Track.Execute(c.Request().Context(), &track_engagement.Request{
		PropertyID: c.Param("id"),
		Event:      body.Event,
	}); err != nil {
		return err
	}
	return respondMessage(c, "tracked")
}

func (h *PropertyHandler) priceHistory(c echo.Context) error {
	records, err := h.uc.PriceHistory.Execute(c.Request().Context(), &price_history.Request{
		PropertyID: c.Param("id"),
		Caller:     optionalCaller(c),
	})
	if err != nil {
		return err
	}
	return respondList(c, records)
}
