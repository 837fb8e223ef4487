package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"go-profilepage-backend/internal/usecase"
	"go-profilepage-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMediaStore struct {
	lastFilename    string
	lastContentType string
	lastBody        []byte
}

func (f *fakeMediaStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	f.lastFilename = filename
	f.lastContentType = contentType
	f.lastBody, _ = io.ReadAll(body)
	return "https://cdn.example.com/profile-images/abc.jpg", nil
}

func encodedPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()
	store := &fakeMediaStore{}
	uc := usecase.NewMediaUsecase(store, 5*1024*1024)

	t.Run("Should compress an image and store it as JPEG", func(t *testing.T) {
		data := encodedPNG(t, 2000, 1000)
		url, err := uc.UploadImage(ctx, "avatar.png", "image/png", int64(len(data)), bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/profile-images/abc.jpg", url)
		assert.Equal(t, "image/jpeg", store.lastContentType)
		assert.Equal(t, "avatar.jpg", store.lastFilename)

		stored, err := jpeg.Decode(bytes.NewReader(store.lastBody))
		require.NoError(t, err)
		assert.Equal(t, 1200, stored.Bounds().Dx())
		assert.Equal(t, 600, stored.Bounds().Dy())
	})

	t.Run("Should fall back to the original bytes when decoding fails", func(t *testing.T) {
		_, err := uc.UploadImage(ctx, "avatar.png", "image/png", 10, strings.NewReader("fake-bytes"))
		assert.NoError(t, err)
		assert.Equal(t, "image/png", store.lastContentType)
		assert.Equal(t, "avatar.png", store.lastFilename)
		assert.Equal(t, []byte("fake-bytes"), store.lastBody)
	})

	t.Run("Should leave GIFs untouched", func(t *testing.T) {
		_, err := uc.UploadImage(ctx, "loop.gif", "image/gif", 9, strings.NewReader("gif-bytes"))
		assert.NoError(t, err)
		assert.Equal(t, "image/gif", store.lastContentType)
		assert.Equal(t, "loop.gif", store.lastFilename)
	})

	t.Run("Should reject non-image content types", func(t *testing.T) {
		_, err := uc.UploadImage(ctx, "notes.pdf", "application/pdf", 1024, strings.NewReader("fake"))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Should reject oversized files", func(t *testing.T) {
		_, err := uc.UploadImage(ctx, "huge.png", "image/png", 6*1024*1024, strings.NewReader("fake"))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Should fail clearly when the media host is not configured", func(t *testing.T) {
		unconfigured := usecase.NewMediaUsecase(nil, 5*1024*1024)
		_, err := unconfigured.UploadImage(ctx, "avatar.png", "image/png", 1024, strings.NewReader("fake"))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 503, appErr.Code)
	})
}
