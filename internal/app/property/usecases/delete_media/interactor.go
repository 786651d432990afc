package delete_media

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/media"
)

// Request names the object to delete.
type Request struct {
	Caller   auth.Principal
	PublicID string
}

// Interactor deletes an uploaded file by its public id.
type Interactor struct {
	uploader *media.Uploader
}

// NewInteractor creates a new delete media interactor.
func NewInteractor(uploader *media.Uploader) *Interactor {
	return &Interactor{uploader: uploader}
}

// Execute deletes the object. Only ids under the upload folder are accepted.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if !req.Caller.CanList() {
		return domain.ErrNotAgent
	}
	if req.PublicID == "" || !i.uploader.InFolder(req.PublicID) {
		return apperr.Invalid("publicId", "unknown image id")
	}
	return i.uploader.Delete(ctx, req.PublicID)
}
