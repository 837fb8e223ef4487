package validation_test

import (
	"testing"

	"go-profilepage-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type slugPayload struct {
	Slug string `json:"slug" validate:"required,min=3,max=50,slug"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidSlug(t *testing.T) {
	v := newValidate()

	valid := []string{"abc", "jane-smith", "user_42", "a-b_c-123"}
	for _, slug := range valid {
		assert.NoError(t, v.Struct(slugPayload{Slug: slug}), slug)
	}

	invalid := []string{"AB", "Jane", "jane smith", "jane.smith", "héllo", "ab"}
	for _, slug := range invalid {
		assert.Error(t, v.Struct(slugPayload{Slug: slug}), slug)
	}
}

func TestFieldsUsesJSONNamesAndMessages(t *testing.T) {
	v := newValidate()

	err := v.Struct(slugPayload{Slug: "jane.smith"})
	fields := validation.Fields(err)
	assert.Equal(t, map[string]string{
		"slug": "Slug can only contain lowercase letters, numbers, hyphens, and underscores.",
	}, fields)

	err = v.Struct(slugPayload{Slug: "ab"})
	fields = validation.Fields(err)
	assert.Equal(t, "Slug must be at least 3 characters.", fields["slug"])
}

func TestFieldsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, validation.Fields(assert.AnError))
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, validation.IsAbsoluteURL("https://twitter.com/jane"))
	assert.True(t, validation.IsAbsoluteURL("http://example.com"))
	assert.False(t, validation.IsAbsoluteURL("not-a-url"))
	assert.False(t, validation.IsAbsoluteURL("/relative/path"))
	assert.False(t, validation.IsAbsoluteURL("twitter.com/jane"))
}

func TestCheckSocialLinks(t *testing.T) {
	platforms := []string{"twitter", "github", "website"}

	t.Run("Should accept known platforms with valid or empty URLs", func(t *testing.T) {
		fields := validation.CheckSocialLinks(map[string]string{
			"twitter": "https://twitter.com/jane",
			"github":  "",
		}, platforms)
		assert.Nil(t, fields)
	})

	t.Run("Should key violations by platform", func(t *testing.T) {
		fields := validation.CheckSocialLinks(map[string]string{
			"twitter": "not-a-url",
			"myspace": "https://myspace.com/jane",
		}, platforms)
		assert.Equal(t, "Link must be a valid URL.", fields["social_links.twitter"])
		assert.Contains(t, fields["social_links.myspace"], "Unknown platform")
	})
}
