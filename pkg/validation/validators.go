package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Slug rule: lowercase alphanumeric plus hyphen and underscore. Length is
// enforced separately by min/max tags so each violation gets its own message.
var slugRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

// RegisterValidators registers custom validators to the validator instance
// and makes reported field names follow the json tags, so validation errors
// line up with the payload the frontend submitted.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("slug", ValidSlug)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidSlug validates the slug character set.
func ValidSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// IsAbsoluteURL reports whether s parses as an absolute URL with a host.
// Social link values are plain map entries, so they are checked through
// CheckSocialLinks rather than a struct tag.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
