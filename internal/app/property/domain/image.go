package domain

import "time"

// Image is one picture of a listing stored on the media host.
type Image struct {
	ID        string
	URL       string
	PublicID  string
	Caption   string
	IsPrimary bool
	Position  int64
	CreatedAt time.Time
}

// Images returns a copy of the images in display order.
func (p *Property) Images() []Image {
	out := make([]Image, len(p.images))
	copy(out, p.images)
	return out
}

// PrimaryImage returns the primary image, if any.
func (p *Property) PrimaryImage() (Image, bool) {
	for _, img := range p.images {
		if img.IsPrimary {
			return img, true
		}
	}
	return Image{}, false
}

// AddImages appends images after the existing ones. The IsPrimary flag of
// the input is ignored; when the listing has no primary image the first
// added image becomes primary.
func (p *Property) AddImages(images []Image, now time.Time) {
	if len(images) == 0 {
		return
	}

	_, hasPrimary := p.PrimaryImage()
	next := p.nextPosition()
	for i, img := range images {
		img.IsPrimary = !hasPrimary && i == 0
		img.Position = next + int64(i)
		p.images = append(p.images, img)
	}

	p.imagesChanged(now)
}

// RemoveImage removes the image and returns it so the caller can delete
// the remote object. Removing the primary image promotes the first
// remaining image.
func (p *Property) RemoveImage(imageID string, now time.Time) (Image, error) {
	idx := p.imageIndex(imageID)
	if idx < 0 {
		return Image{}, ErrImageNotFound
	}

	removed := p.images[idx]
	p.images = append(p.images[:idx], p.images[idx+1:]...)
	p.removedImages = append(p.removedImages, removed.ID)

	if removed.IsPrimary && len(p.images) > 0 {
		p.images[0].IsPrimary = true
	}

	p.imagesChanged(now)
	return removed, nil
}

// SetPrimaryImage makes imageID the only primary image.
func (p *Property) SetPrimaryImage(imageID string, now time.Time) error {
	idx := p.imageIndex(imageID)
	if idx < 0 {
		return ErrImageNotFound
	}
	if p.images[idx].IsPrimary {
		return nil
	}

	for i := range p.images {
		p.images[i].IsPrimary = i == idx
	}

	p.imagesChanged(now)
	return nil
}

func (p *Property) imageIndex(imageID string) int {
	for i, img := range p.images {
		if img.ID == imageID {
			return i
		}
	}
	return -1
}

func (p *Property) nextPosition() int64 {
	var max int64 = -1
	for _, img := range p.images {
		if img.Position > max {
			max = img.Position
		}
	}
	return max + 1
}

func (p *Property) imagesChanged(now time.Time) {
	p.updatedAt = now
	p.changes.MarkDirty(FieldImages)

	ev := &PropertyImagesChangedEvent{
		PropertyID: p.id,
		ImageCount: len(p.images),
		ChangedAt:  now,
	}
	if primary, ok := p.PrimaryImage(); ok {
		ev.PrimaryImageID = primary.ID
	}
	p.recordEvent(ev)
}
