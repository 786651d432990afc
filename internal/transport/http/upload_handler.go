package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/app/property/usecases/delete_media"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/upload_media"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// UploadHandler serves /api/upload for files not yet attached to a listing.
type UploadHandler struct {
	upload      *upload_media.Interactor
	remove      *delete_media.Interactor
	uploadBytes int64
}

func NewUploadHandler(upload *upload_media.Interactor, remove *delete_media.Interactor, uploadBytes int64) *UploadHandler {
	return &UploadHandler{upload: upload, remove: remove, uploadBytes: uploadBytes}
}

// Register mounts the routes. Public ids contain the folder, so the delete
// route matches the rest of the path.
func (h *UploadHandler) Register(g *echo.Group, a *Authenticator) {
	agents := Roles(auth.RoleAgent, auth.RoleAdmin)

	g.POST("/images", h.uploadImages, a.Required, agents)
	g.DELETE("/images/*", h.deleteImage, a.Required, agents)
}

func (h *UploadHandler) uploadImages(c echo.Context) error {
	files, form, err := multipartFiles(c, "images", h.uploadBytes)
	if err != nil {
		return err
	}
	defer form.RemoveAll()

	objects, err := h.upload.Execute(c.Request().Context(), &upload_media.Request{
		Caller: caller(c),
		Files:  files,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, objects)
}

func (h *UploadHandler) deleteImage(c echo.Context) error {
	if err := h.remove.Execute(c.Request().Context(), &delete_media.Request{
		Caller:   caller(c),
		PublicID: c.Param("*"),
	}); err != nil {
		return err
	}
	return respondMessage(c, "image deleted")
}
