package upload_media

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/media"
)

// Request carries the files of one upload.
type Request struct {
	Caller auth.Principal
	Files  []media.File
}

// Interactor uploads files that are not yet attached to a listing.
type Interactor struct {
	uploader *media.Uploader
	limits   media.Limits
}

// NewInteractor creates a new upload media interactor.
func NewInteractor(uploader *media.Uploader, limits media.Limits) *Interactor {
	return &Interactor{uploader: uploader, limits: limits}
}

// Execute validates and uploads the files in parallel. Files already on the
// host when one upload fails are not rolled back.
func (i *Interactor) Execute(ctx context.Context, req *Request) ([]media.Object, error) {
	if !req.Caller.CanList() {
		return nil, domain.ErrNotAgent
	}
	if err := i.limits.Validate(req.Files); err != nil {
		return nil, err
	}
	return i.uploader.UploadAll(ctx, req.Files)
}
