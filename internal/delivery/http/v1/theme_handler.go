package v1

import (
	"net/http"

	"go-profilepage-backend/internal/delivery/http/response"
	"go-profilepage-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct{}

// NewThemeHandler registers the theme descriptor route
func NewThemeHandler(public *gin.RouterGroup) {
	handler := &ThemeHandler{}
	public.GET("/themes", handler.ListThemes)
}

// ListThemes godoc
// @Summary List available themes
// @Description Theme descriptors the picker and the public page render from
// @Tags Public
// @Produce json
// @Success 200 {object} response.Response{data=[]domain.ThemeStyle}
// @Router /themes [get]
func (h *ThemeHandler) ListThemes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Available themes", domain.ThemeStyles())
}
