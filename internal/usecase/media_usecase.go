package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"go-profilepage-backend/pkg/apperror"
	"go-profilepage-backend/pkg/logger"
	"go-profilepage-backend/pkg/media"
)

const (
	imageMaxDimension = 1200
	imageJPEGQuality  = 80
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// GIFs skip re-encoding: a JPEG copy would drop the animation.
var compressibleTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaUsecase uploads profile images to the media host and returns the
// durable URL the profile stores as image_url.
type MediaUsecase interface {
	UploadImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, error)
}

type mediaUsecase struct {
	store   media.Store
	maxSize int64
}

// NewMediaUsecase creates a new media usecase. A nil store means the media
// host is not configured; uploads then fail with a clear message instead
// of a panic.
func NewMediaUsecase(store media.Store, maxSize int64) MediaUsecase {
	return &mediaUsecase{store: store, maxSize: maxSize}
}

func (u *mediaUsecase) UploadImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, error) {
	if u.store == nil {
		return "", apperror.New(http.StatusServiceUnavailable, "Image uploads are not available", nil)
	}
	if !allowedImageTypes[contentType] {
		return "", apperror.BadRequest("Only JPEG, PNG, GIF and WebP images are supported")
	}
	if size > u.maxSize {
		return "", apperror.BadRequest(fmt.Sprintf("Image must be smaller than %d MB", u.maxSize/(1024*1024)))
	}

	data, err := io.ReadAll(io.LimitReader(body, u.maxSize))
	if err != nil {
		return "", apperror.BadRequest("Could not read uploaded file")
	}

	// Shrink the image before it hits storage; a failed compression falls
	// back to the original bytes rather than failing the upload.
	if compressibleTypes[contentType] {
		compressed, err := media.CompressImage(data, imageMaxDimension, imageJPEGQuality)
		if err != nil {
			logger.Log.Warn("Image compression failed, using original", "filename", filename, "error", err)
		} else {
			logger.Log.Debug("Image compressed", "from_bytes", len(data), "to_bytes", len(compressed))
			data = compressed
			contentType = "image/jpeg"
			filename = strings.TrimSuffix(filename, path.Ext(filename)) + ".jpg"
		}
	}

	url, err := u.store.Upload(ctx, filename, contentType, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return url, nil
}
