package domain

import (
	"context"
	"time"
)

// Themes a profile page can be rendered with.
const (
	ThemeMinimal  = "minimal"
	ThemeGradient = "gradient"
	ThemeDark     = "dark"
)

// Themes lists the valid theme names in picker order.
var Themes = []string{ThemeMinimal, ThemeGradient, ThemeDark}

// SocialPlatforms lists the supported social link platforms in the order
// the public page renders them.
var SocialPlatforms = []string{
	"twitter",
	"facebook",
	"instagram",
	"linkedin",
	"github",
	"youtube",
	"website",
}

// SocialLinks maps a platform name to a profile URL. Values may be empty
// in form input; Normalize drops them before persistence.
type SocialLinks map[string]string

// Normalize returns a copy with empty values removed. A nil receiver
// yields an empty, non-nil map so the column is always valid JSON.
func (s SocialLinks) Normalize() SocialLinks {
	out := make(SocialLinks, len(s))
	for platform, url := range s {
		if url != "" {
			out[platform] = url
		}
	}
	return out
}

// Ordered returns the non-empty links in canonical platform order.
func (s SocialLinks) Ordered() []SocialLink {
	var links []SocialLink
	for _, platform := range SocialPlatforms {
		if url, ok := s[platform]; ok && url != "" {
			links = append(links, SocialLink{Platform: platform, URL: url})
		}
	}
	return links
}

// SocialLink is one rendered link on the public page.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Profile is a shareable profile page owned by a single user and reachable
// publicly at /p/{slug} while is_public is true.
type Profile struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Slug        string      `json:"slug"`
	ImageURL    *string     `json:"image_url"`
	Theme       string      `json:"theme"`
	SocialLinks SocialLinks `json:"social_links"`
	IsPublic    bool        `json:"is_public"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ProfileInput carries the mutable fields of a profile as submitted by the
// editor form. The owner and identifier are never taken from input.
type ProfileInput struct {
	Name        string      `json:"name" validate:"required,min=2"`
	Description string      `json:"description" validate:"required,min=10"`
	Slug        string      `json:"slug" validate:"required,min=3,max=50,slug"`
	ImageURL    *string     `json:"image_url"`
	Theme       string      `json:"theme" validate:"required,oneof=minimal gradient dark"`
	SocialLinks SocialLinks `json:"social_links"`
	IsPublic    *bool       `json:"is_public"`
}

// Public reports the submitted visibility, defaulting to public when the
// field is absent.
func (in *ProfileInput) Public() bool {
	if in.IsPublic == nil {
		return true
	}
	return *in.IsPublic
}

// PublicProfile is the payload served for the public slug page: the profile
// fields a visitor may see plus the presentation data the page renders from.
type PublicProfile struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Slug        string       `json:"slug"`
	ImageURL    *string      `json:"image_url"`
	Theme       ThemeStyle   `json:"theme"`
	SocialLinks []SocialLink `json:"social_links"`
	ShareURL    string       `json:"share_url"`
}

// PublicView projects a profile into its public page payload. Only links
// with non-empty values are included.
func (p *Profile) PublicView(frontendURL string) *PublicProfile {
	return &PublicProfile{
		Name:        p.Name,
		Description: p.Description,
		Slug:        p.Slug,
		ImageURL:    p.ImageURL,
		Theme:       ThemeStyleFor(p.Theme),
		SocialLinks: p.SocialLinks.Ordered(),
		ShareURL:    frontendURL + "/" + p.Slug,
	}
}

// ProfileRepository defines storage operations over the profiles table.
type ProfileRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetBySlugPublic(ctx context.Context, slug string) (*Profile, error)
	CountBySlug(ctx context.Context, slug string, excludeID string) (int, error)
	Insert(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id string) error
}

// ProfileUsecase defines the profile lifecycle operations.
type ProfileUsecase interface {
	// Owner operations (protected)
	ListOwn(ctx context.Context, userID string) []Profile
	GetForEdit(ctx context.Context, userID, id string) (*Profile, error)
	Create(ctx context.Context, userID string, input *ProfileInput) (*Profile, error)
	Update(ctx context.Context, userID, id string, input *ProfileInput) (*Profile, error)
	Delete(ctx context.Context, userID, id string) error
	IsSlugAvailable(ctx context.Context, slug string, excludeID string) bool
	// Public operations
	GetBySlug(ctx context.Context, slug string) (*PublicProfile, error)
}
