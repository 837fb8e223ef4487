package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-profilepage-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfileRepo is an in-memory store enforcing the same contract as the
// Postgres repository: unique slugs and the public filter on slug lookups.
type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) ListByUser(ctx context.Context, userID string) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range f.profiles {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) GetBySlugPublic(ctx context.Context, slug string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Slug == slug && p.IsPublic {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) CountBySlug(ctx context.Context, slug string, excludeID string) (int, error) {
	count := 0
	for _, p := range f.profiles {
		if p.Slug == slug && p.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeProfileRepo) Insert(ctx context.Context, profile *domain.Profile) error {
	if n, _ := f.CountBySlug(ctx, profile.Slug, profile.ID); n > 0 {
		return domain.ErrSlugTaken
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		return domain.ErrNotFound
	}
	if n, _ := f.CountBySlug(ctx, profile.Slug, profile.ID); n > 0 {
		return domain.ErrSlugTaken
	}
	profile.UpdatedAt = time.Now()
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.profiles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.profiles, id)
	return nil
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(newFakeProfileRepo())

	isPublic := true
	created, err := uc.Create(ctx, "user_jane", &domain.ProfileInput{
		Name:        "Jane Smith",
		Description: "Product Designer & Illustrator",
		Slug:        "jane-smith",
		Theme:       domain.ThemeMinimal,
		SocialLinks: domain.SocialLinks{"twitter": "https://twitter.com/jane"},
		IsPublic:    &isPublic,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Immediate public lookup returns the created record
	page, err := uc.GetBySlug(ctx, "jane-smith")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", page.Name)
	assert.Equal(t, "minimal", page.Theme.Name)

	// A second profile cannot take the same slug
	_, err = uc.Create(ctx, "user_other", &domain.ProfileInput{
		Name:        "Other Jane",
		Description: "A different Jane entirely",
		Slug:        "jane-smith",
		Theme:       domain.ThemeDark,
	})
	appErr := fieldErr(t, err)
	assert.Contains(t, appErr.Fields, "slug")

	// Flipping visibility off makes the public lookup miss
	private := false
	_, err = uc.Update(ctx, "user_jane", created.ID, &domain.ProfileInput{
		Name:        "Jane Smith",
		Description: "Product Designer & Illustrator",
		Slug:        "jane-smith",
		Theme:       domain.ThemeMinimal,
		SocialLinks: domain.SocialLinks{"twitter": "https://twitter.com/jane"},
		IsPublic:    &private,
	})
	require.NoError(t, err)

	_, err = uc.GetBySlug(ctx, "jane-smith")
	appErr = fieldErr(t, err)
	assert.Equal(t, 404, appErr.Code)

	// The owner still sees it in the edit flow
	profile, err := uc.GetForEdit(ctx, "user_jane", created.ID)
	require.NoError(t, err)
	assert.False(t, profile.IsPublic)

	// Delete, then get-by-id yields not-found
	require.NoError(t, uc.Delete(ctx, "user_jane", created.ID))
	_, err = uc.GetForEdit(ctx, "user_jane", created.ID)
	appErr = fieldErr(t, err)
	assert.Equal(t, 404, appErr.Code)

	// The slug is free again
	assert.True(t, uc.IsSlugAvailable(ctx, "jane-smith", ""))
}
