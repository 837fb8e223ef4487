package v1

import (
	"net/http"

	"go-profilepage-backend/internal/delivery/http/response"
	"go-profilepage-backend/internal/domain"
	"go-profilepage-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers profile routes
func NewProfileHandler(
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
	profileUC domain.ProfileUsecase,
) {
	handler := &ProfileHandler{profileUC: profileUC}

	// Public routes
	public.GET("/p/:slug", handler.GetPublicProfile)

	// Protected owner routes
	profiles := protected.Group("/profiles")
	{
		profiles.GET("", handler.ListProfiles)
		profiles.POST("", handler.CreateProfile)
		profiles.GET("/slug-available", handler.CheckSlug)
		profiles.GET("/:id", handler.GetProfile)
		profiles.PUT("/:id", handler.UpdateProfile)
		profiles.DELETE("/:id", handler.DeleteProfile)
	}
}

func callerID(c *gin.Context) (string, bool) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return "", false
	}
	return userID, true
}

// ListProfiles godoc
// @Summary List own profiles
// @Description Retrieve all profiles owned by the caller, newest first
// @Tags Profiles
// @Produce json
// @Success 200 {object} response.Response{data=[]domain.Profile}
// @Failure 401 {object} response.Response
// @Router /profiles [get]
// @Security BearerAuth
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profiles := h.profileUC.ListOwn(c.Request.Context(), userID)
	response.Success(c, http.StatusOK, "Profiles retrieved", profiles)
}

// GetProfile godoc
// @Summary Get one profile for editing
// @Description Retrieve a profile by id. Only the owner may access it.
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.Response{data=domain.Profile}
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profiles/{id} [get]
// @Security BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := h.profileUC.GetForEdit(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// CreateProfile godoc
// @Summary Create a profile
// @Description Validate the payload, check slug availability and create a profile owned by the caller
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body domain.ProfileInput true "Profile data"
// @Success 201 {object} response.Response{data=domain.Profile}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profiles [post]
// @Security BearerAuth
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input domain.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.Create(c.Request.Context(), userID, &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// UpdateProfile godoc
// @Summary Update a profile
// @Description Fully replace the mutable fields of an owned profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body domain.ProfileInput true "Profile data"
// @Success 200 {object} response.Response{data=domain.Profile}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profiles/{id} [put]
// @Security BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input domain.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.Update(c.Request.Context(), userID, c.Param("id"), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// DeleteProfile godoc
// @Summary Delete a profile
// @Description Permanently remove an owned profile. Irreversible.
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profiles/{id} [delete]
// @Security BearerAuth
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.profileUC.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted", nil)
}

// CheckSlug godoc
// @Summary Check slug availability
// @Description The editor form calls this while typing to warn before submit
// @Tags Profiles
// @Produce json
// @Param slug query string true "Candidate slug"
// @Param exclude query string false "Profile id to exclude (when editing)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profiles/slug-available [get]
// @Security BearerAuth
func (h *ProfileHandler) CheckSlug(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	slug := c.Query("slug")
	if slug == "" {
		c.Error(apperror.BadRequest("slug query parameter is required"))
		return
	}

	available := h.profileUC.IsSlugAvailable(c.Request.Context(), slug, c.Query("exclude"))
	response.Success(c, http.StatusOK, "Slug availability", gin.H{"available": available})
}

// GetPublicProfile godoc
// @Summary Get a public profile page
// @Description Retrieve the public page payload for a slug. Private profiles return 404.
// @Tags Public
// @Produce json
// @Param slug path string true "Profile slug"
// @Success 200 {object} response.Response{data=domain.PublicProfile}
// @Failure 404 {object} response.Response
// @Router /p/{slug} [get]
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.profileUC.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}
