package v1

import (
	"net/http"

	"go-profilepage-backend/internal/delivery/http/response"
	"go-profilepage-backend/internal/usecase"
	"go-profilepage-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUC usecase.MediaUsecase
}

// NewMediaHandler registers media upload routes
func NewMediaHandler(protected *gin.RouterGroup, mediaUC usecase.MediaUsecase) {
	handler := &MediaHandler{mediaUC: mediaUC}
	protected.POST("/media/images", handler.UploadImage)
}

// UploadImage godoc
// @Summary Upload a profile image
// @Description Store an image on the media host and return its durable URL
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (JPEG, PNG, GIF or WebP, max 5MB)"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /media/images [post]
// @Security BearerAuth
func (h *MediaHandler) UploadImage(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file form field is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer file.Close()

	url, err := h.mediaUC.UploadImage(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Image uploaded", gin.H{"url": url})
}
