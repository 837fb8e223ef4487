package domain_test

import (
	"testing"

	"go-profilepage-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSocialLinksNormalize(t *testing.T) {
	links := domain.SocialLinks{
		"twitter": "https://twitter.com/jane",
		"github":  "",
		"website": "https://jane.dev",
	}
	assert.Equal(t, domain.SocialLinks{
		"twitter": "https://twitter.com/jane",
		"website": "https://jane.dev",
	}, links.Normalize())

	var nilLinks domain.SocialLinks
	assert.NotNil(t, nilLinks.Normalize())
	assert.Empty(t, nilLinks.Normalize())
}

func TestSocialLinksOrdered(t *testing.T) {
	links := domain.SocialLinks{
		"website": "https://jane.dev",
		"twitter": "https://twitter.com/jane",
		"youtube": "",
	}
	// Canonical platform order, empty values skipped
	assert.Equal(t, []domain.SocialLink{
		{Platform: "twitter", URL: "https://twitter.com/jane"},
		{Platform: "website", URL: "https://jane.dev"},
	}, links.Ordered())
}

func TestProfileInputPublicDefault(t *testing.T) {
	in := &domain.ProfileInput{}
	assert.True(t, in.Public())

	private := false
	in.IsPublic = &private
	assert.False(t, in.Public())
}

func TestPublicView(t *testing.T) {
	p := &domain.Profile{
		ID:          "p1",
		UserID:      "user1",
		Name:        "Jane Smith",
		Description: "Product Designer & Illustrator",
		Slug:        "jane-smith",
		Theme:       domain.ThemeGradient,
		SocialLinks: domain.SocialLinks{"twitter": "https://twitter.com/jane", "github": ""},
		IsPublic:    true,
	}

	view := p.PublicView("https://pages.example.com")
	assert.Equal(t, "https://pages.example.com/jane-smith", view.ShareURL)
	assert.Equal(t, domain.ThemeGradient, view.Theme.Name)
	assert.Len(t, view.SocialLinks, 1)
}

func TestThemeStyleFor(t *testing.T) {
	assert.Equal(t, "#121212", domain.ThemeStyleFor(domain.ThemeDark).Background)
	// Unknown themes fall back to minimal
	assert.Equal(t, domain.ThemeMinimal, domain.ThemeStyleFor("neon").Name)
}

func TestThemeStylesOrder(t *testing.T) {
	styles := domain.ThemeStyles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	assert.Equal(t, domain.Themes, names)
}
