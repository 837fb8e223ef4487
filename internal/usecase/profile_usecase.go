package usecase

import (
	"context"
	"errors"

	"go-profilepage-backend/internal/domain"
	"go-profilepage-backend/pkg/apperror"
	"go-profilepage-backend/pkg/logger"
	"go-profilepage-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const slugTakenMessage = "This slug is already taken. Please choose another one."

type profileUsecase struct {
	repo        domain.ProfileRepository
	validate    *validator.Validate
	frontendURL string
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate, frontendURL string) domain.ProfileUsecase {
	return &profileUsecase{
		repo:        repo,
		validate:    validate,
		frontendURL: frontendURL,
	}
}

// checkInput validates the payload and returns nil or a field-keyed
// validation error. Pure check, no store access.
func (u *profileUsecase) checkInput(input *domain.ProfileInput) error {
	fields := map[string]string{}
	if err := u.validate.Struct(input); err != nil {
		for k, v := range validation.Fields(err) {
			fields[k] = v
		}
	}
	for k, v := range validation.CheckSocialLinks(input.SocialLinks, domain.SocialPlatforms) {
		fields[k] = v
	}
	if len(fields) > 0 {
		return apperror.Validation(fields)
	}
	return nil
}

// IsSlugAvailable reports whether a slug is free, excluding one profile id
// when editing. Store errors report unavailable (fail closed) so a broken
// store can never hand out a conflicting slug.
func (u *profileUsecase) IsSlugAvailable(ctx context.Context, slug string, excludeID string) bool {
	count, err := u.repo.CountBySlug(ctx, slug, excludeID)
	if err != nil {
		logger.Log.Error("Slug availability check failed", "slug", slug, "error", err)
		return false
	}
	return count == 0
}

// ListOwn returns the owner's profiles, newest first. Store failures
// degrade to an empty list so the dashboard still renders.
func (u *profileUsecase) ListOwn(ctx context.Context, userID string) []domain.Profile {
	profiles, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Error("Failed to list profiles", "user_id", userID, "error", err)
		return []domain.Profile{}
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles
}

// GetForEdit returns a profile for the edit flow. Callers other than the
// owner get Forbidden, which the frontend turns into a redirect.
func (u *profileUsecase) GetForEdit(ctx context.Context, userID, id string) (*domain.Profile, error) {
	// A malformed id cannot match anything; reject it here so the store
	// never sees a value that fails the uuid cast.
	if uuid.Validate(id) != nil {
		return nil, apperror.NotFound("Profile not found")
	}
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	if profile.UserID != userID {
		return nil, apperror.Forbidden("You can only edit your own profiles")
	}
	return profile, nil
}

// GetBySlug returns the public page payload for a slug. Private profiles
// are indistinguishable from absent ones.
func (u *profileUsecase) GetBySlug(ctx context.Context, slug string) (*domain.PublicProfile, error) {
	profile, err := u.repo.GetBySlugPublic(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile.PublicView(u.frontendURL), nil
}

// Create validates the payload, checks slug availability and inserts a new
// profile owned by the calling identity. The id and timestamps are
// server-assigned.
func (u *profileUsecase) Create(ctx context.Context, userID string, input *domain.ProfileInput) (*domain.Profile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if err := u.checkInput(input); err != nil {
		return nil, err
	}
	if !u.IsSlugAvailable(ctx, input.Slug, "") {
		return nil, apperror.FieldError("slug", slugTakenMessage)
	}

	profile := &domain.Profile{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Slug:        input.Slug,
		ImageURL:    input.ImageURL,
		Theme:       input.Theme,
		SocialLinks: input.SocialLinks.Normalize(),
		IsPublic:    input.Public(),
	}

	if err := u.repo.Insert(ctx, profile); err != nil {
		// Lost the race between the availability check and the write;
		// the unique constraint caught it.
		if errors.Is(err, domain.ErrSlugTaken) {
			return nil, apperror.FieldError("slug", slugTakenMessage)
		}
		return nil, err
	}
	return profile, nil
}

// Update validates the payload, re-checks slug availability excluding the
// profile's own id, and fully replaces the mutable fields. Owner is
// immutable; a different caller gets Forbidden.
func (u *profileUsecase) Update(ctx context.Context, userID, id string, input *domain.ProfileInput) (*domain.Profile, error) {
	profile, err := u.GetForEdit(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkInput(input); err != nil {
		return nil, err
	}
	if !u.IsSlugAvailable(ctx, input.Slug, id) {
		return nil, apperror.FieldError("slug", slugTakenMessage)
	}

	profile.Name = input.Name
	profile.Description = input.Description
	profile.Slug = input.Slug
	profile.ImageURL = input.ImageURL
	profile.Theme = input.Theme
	profile.SocialLinks = input.SocialLinks.Normalize()
	profile.IsPublic = input.Public()

	if err := u.repo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			return nil, apperror.FieldError("slug", slugTakenMessage)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// Delete removes a profile by id after verifying ownership. Irreversible,
// no soft delete.
func (u *profileUsecase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.GetForEdit(ctx, userID, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}
	return nil
}
